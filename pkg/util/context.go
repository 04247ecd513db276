package util

import (
	"context"
)

type key string

const (
	runIDKey    = key("run-id")
	symbolKey   = key("symbol")
	feedFileKey = key("feed-file")
)

// FieldsFromContext extracts the values this package stores in a context.
type FieldsFromContext struct{}

// Fields returns a map of the key-value pairs that this library has set into `context`.
func (f *FieldsFromContext) Fields(ctx context.Context) map[string]interface{} {
	mapFields := make(map[string]interface{})
	mapFields["request_id"] = GetRequestID(ctx)
	if id := GetRunID(ctx); id != "" {
		mapFields["run_id"] = id
	}
	if symbol := GetSymbol(ctx); symbol != "" {
		mapFields["symbol"] = symbol
	}
	if file := GetFeedFile(ctx); file != "" {
		mapFields["feed_file"] = file
	}

	return mapFields
}

// WithRequestID returns a context with request id
func WithRequestID(ctx context.Context, id string) context.Context {
	return ContextWithRequestID(ctx, id)
}

// WithRunID returns a context carrying the loader run id
func WithRunID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, runIDKey, id)
}

// WithSymbol returns a context carrying the security symbol being processed
func WithSymbol(ctx context.Context, symbol string) context.Context {
	return context.WithValue(ctx, symbolKey, symbol)
}

// WithFeedFile returns a context carrying the feed file path
func WithFeedFile(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, feedFileKey, path)
}

// GetRequestID returns request id from context
func GetRequestID(ctx context.Context) string {
	return FromContext(ctx)
}

// GetRunID returns run id from context
// will return empty string if not present
func GetRunID(ctx context.Context) string {
	id, _ := ctx.Value(runIDKey).(string)
	return id
}

// GetSymbol returns symbol from context
// will return empty string if not present
func GetSymbol(ctx context.Context) string {
	symbol, _ := ctx.Value(symbolKey).(string)
	return symbol
}

// GetFeedFile returns feed file from context
// will return empty string if not present
func GetFeedFile(ctx context.Context) string {
	file, _ := ctx.Value(feedFileKey).(string)
	return file
}
