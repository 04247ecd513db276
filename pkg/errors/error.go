package errors

import (
	"bytes"
	"reflect"
	"strings"
)

// ErrorCode represents a specific error code in the system.
type ErrorCode string

const (
	// GeneralInternalServerError represents a generic internal error.
	GeneralInternalServerError ErrorCode = "general_internal_server_error"
	// GeneralBadRequestError represents invalid caller input.
	GeneralBadRequestError ErrorCode = "general_bad_request_error"
	// GeneralRepositoryError represents a generic repository error.
	GeneralRepositoryError ErrorCode = "general_repository_error"

	// ConfigInvalidError represents a configuration value that cannot be used.
	ConfigInvalidError ErrorCode = "config_invalid_error"

	// FeedOpenError represents a failure to open or map the feed source.
	FeedOpenError ErrorCode = "feed_open_error"
	// FeedDateError represents a feed whose trading day cannot be determined.
	FeedDateError ErrorCode = "feed_date_error"

	// EventLogWriteError represents a failure to persist order events.
	EventLogWriteError ErrorCode = "event_log_write_error"
	// EventLogReadError represents a failure to read order events back.
	EventLogReadError ErrorCode = "event_log_read_error"
	// EventLogTableError represents a failure to create a per-security event table.
	EventLogTableError ErrorCode = "event_log_table_error"

	// SnapshotGetError represents a failure to fetch a snapshot blob.
	SnapshotGetError ErrorCode = "snapshot_get_error"
	// SnapshotPutError represents a failure to store a snapshot blob.
	SnapshotPutError ErrorCode = "snapshot_put_error"
	// SnapshotListError represents a failure to enumerate snapshot keys.
	SnapshotListError ErrorCode = "snapshot_list_error"
	// SnapshotBackendError represents an unknown snapshot backend.
	SnapshotBackendError ErrorCode = "snapshot_backend_error"

	// PublisherError represents a failure to publish a book event.
	PublisherError ErrorCode = "publisher_error"

	// RedisConfigError represents an error when the Redis configuration is invalid or nil.
	RedisConfigError ErrorCode = "redis_config_error"
	// RedisConnectionError represents an error when connecting to Redis.
	RedisConnectionError ErrorCode = "redis_connection_error"
	// RedisDisconnectionError represents an error when disconnecting from Redis.
	RedisDisconnectionError ErrorCode = "redis_disconnection_error"
	// RedisPingError represents an error when pinging Redis.
	RedisPingError ErrorCode = "redis_pinging_error"
	// RedisGetError represents an error when getting a value from Redis.
	RedisGetError ErrorCode = "redis_get_error"
	// RedisSetError represents an error when setting a value in Redis.
	RedisSetError ErrorCode = "redis_set_error"
	// RedisDelError represents an error when deleting a value from Redis.
	RedisDelError ErrorCode = "redis_del_error"
	// RedisScanError represents an error when scanning keys in Redis.
	RedisScanError ErrorCode = "redis_scan_error"

	// PebbleOpenError represents an error when opening the embedded store.
	PebbleOpenError ErrorCode = "pebble_open_error"
)

// BaseError is an `error` type containing an array of ErrorDetails.
type BaseError struct {
	details []*ErrorDetails
}

// NewBaseError create BaseError with ErrorDetails
func NewBaseError(details ...*ErrorDetails) *BaseError {
	return &BaseError{details: details}
}

// AddErrorDetails add more ErrorDetails to BaseError
func (b *BaseError) AddErrorDetails(errors ...*ErrorDetails) {
	b.details = append(b.details, errors...)
}

// GetDetails get array ErrorDetails on BaseError
func (b *BaseError) GetDetails() []*ErrorDetails {
	return b.details
}

// HasDetails reports whether any ErrorDetails were collected.
func (b *BaseError) HasDetails() bool {
	return len(b.details) > 0
}

// Error implement error interface
func (b *BaseError) Error() string {
	buff := bytes.NewBufferString("")

	buff.WriteString("Error on\n")
	for _, err := range b.details {
		buff.WriteString("code: ")
		buff.WriteString(err.Code)
		buff.WriteString("; error: ")
		buff.WriteString(err.Error())
		buff.WriteString("; field: ")
		buff.WriteString(err.Field)
		buff.WriteString("; object: ")
		if err.Object != nil {
			buff.WriteString(reflect.TypeOf(err.Object).String())
		}
		buff.WriteString("\n")
	}

	return strings.TrimSpace(buff.String())
}

// IsAllCodeEqual check if all ErrorDetails code is equal with given code
func (b *BaseError) IsAllCodeEqual(code string) bool {
	if len(b.details) == 0 {
		return false
	}

	for _, d := range b.GetDetails() {
		if d.Code != code {
			return false
		}
	}
	return true
}

// IsAnyCodeEqual check if any ErrorDetails code is equal with given code
func (b *BaseError) IsAnyCodeEqual(code string) bool {
	for _, d := range b.GetDetails() {
		if d.Code == code {
			return true
		}
	}
	return false
}
