package ordereventv1

import (
	"context"
	"time"
)

// Repository persists order events in one table per symbol.
//
//go:generate mockgen -source repository.go -destination=mock/repository_mock.go -package=ordereventv1_mock
type Repository interface {
	// EnsureTable creates the symbol's table when missing and reports whether it did.
	EnsureTable(ctx context.Context, stock string) (bool, error)
	// StoreBatch appends events and returns the number of rows written.
	StoreBatch(ctx context.Context, stock string, events []Event) (int64, error)
	// GetRange returns events with from <= ts <= to ordered by (ts, seq).
	GetRange(ctx context.Context, stock string, from, to time.Time) ([]Event, error)
}
