package orderevent

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	ordereventv1 "github.com/muhammadchandra19/nasdaq-itch/internal/domain/order-event/v1"
	"github.com/muhammadchandra19/nasdaq-itch/pkg/errors"
	"github.com/muhammadchandra19/nasdaq-itch/pkg/questdb"
)

const (
	columns     = "ts, seq, type, reference, original_reference, new_reference, is_buy, shares, price"
	columnCount = 9

	// DefaultInsertChunk bounds the rows per INSERT statement.
	DefaultInsertChunk = 1000
)

// Repository stores order events in QuestDB, one table per symbol.
type Repository struct {
	client questdb.QuestDBClient
	chunk  int

	mu     sync.Mutex
	tables map[string]struct{}
}

// Ensure Repository implements ordereventv1.Repository
var _ ordereventv1.Repository = (*Repository)(nil)

// NewRepository creates a new order event repository.
func NewRepository(client questdb.QuestDBClient) *Repository {
	return &Repository{
		client: client,
		chunk:  DefaultInsertChunk,
		tables: make(map[string]struct{}),
	}
}

func tableIdent(stock string) string {
	return pgx.Identifier{ordereventv1.TableName(stock)}.Sanitize()
}

// EnsureTable creates the symbol's table unless it is already known.
func (r *Repository) EnsureTable(ctx context.Context, stock string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tables[stock]; ok {
		return false, nil
	}

	exists, err := r.client.TableExists(ctx, ordereventv1.TableName(stock))
	if err != nil {
		return false, errors.NewErrorDetails("failed to check event table", string(errors.EventLogTableError), stock).WithCause(err)
	}

	if !exists {
		query := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			ts TIMESTAMP,
			seq LONG,
			type INT,
			reference LONG,
			original_reference LONG,
			new_reference LONG,
			is_buy BOOLEAN,
			shares LONG,
			price DOUBLE
		) TIMESTAMP(ts) PARTITION BY DAY`, tableIdent(stock))

		if err := r.client.Exec(ctx, query); err != nil {
			return false, errors.NewErrorDetails("failed to create event table", string(errors.EventLogTableError), stock).WithCause(err)
		}
	}

	r.tables[stock] = struct{}{}
	return !exists, nil
}

// StoreBatch inserts events with multi-row INSERT statements.
func (r *Repository) StoreBatch(ctx context.Context, stock string, events []ordereventv1.Event) (int64, error) {
	var written int64
	for start := 0; start < len(events); start += r.chunk {
		end := min(start+r.chunk, len(events))
		query, args := insertStatement(stock, events[start:end])

		if err := r.client.Exec(ctx, query, args...); err != nil {
			return written, errors.NewErrorDetails("failed to store order events", string(errors.EventLogWriteError), stock).WithCause(err)
		}
		written += int64(end - start)
	}
	return written, nil
}

func insertStatement(stock string, events []ordereventv1.Event) (string, []any) {
	var sb strings.Builder
	args := make([]any, 0, len(events)*columnCount)

	fmt.Fprintf(&sb, "INSERT INTO %s (%s) VALUES ", tableIdent(stock), columns)
	for i, ev := range events {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteByte('(')
		for c := 0; c < columnCount; c++ {
			if c > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "$%d", i*columnCount+c+1)
		}
		sb.WriteByte(')')

		args = append(args, rowValues(ev)...)
	}
	return sb.String(), args
}

func rowValues(ev ordereventv1.Event) []any {
	var ref, orig, next *int64
	if ev.IsReplace() {
		orig = ptr(int64(ev.OriginalReference))
		next = ptr(int64(ev.NewReference))
	} else {
		ref = ptr(int64(ev.Reference))
	}

	return []any{
		ev.Timestamp.UTC(),
		int64(ev.Seq),
		int32(ev.Type),
		ref,
		orig,
		next,
		ev.IsBuy,
		int64(ev.Shares),
		ev.Price,
	}
}

func ptr[T any](v T) *T {
	return &v
}

// GetRange returns events with from <= ts <= to ordered by (ts, seq).
func (r *Repository) GetRange(ctx context.Context, stock string, from, to time.Time) ([]ordereventv1.Event, error) {
	exists, err := r.client.TableExists(ctx, ordereventv1.TableName(stock))
	if err != nil {
		return nil, errors.NewErrorDetails("failed to check event table", string(errors.EventLogReadError), stock).WithCause(err)
	}
	if !exists {
		return nil, errors.NewErrorDetails("no event table for symbol", string(errors.EventLogReadError), stock)
	}

	query := fmt.Sprintf("SELECT %s FROM %s WHERE ts >= $1 AND ts <= $2 ORDER BY ts, seq", columns, tableIdent(stock))

	rows, err := r.client.Query(ctx, query, from.UTC(), to.UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to query order events: %w", err)
	}
	defer rows.Close()

	var events []ordereventv1.Event
	for rows.Next() {
		var (
			ev              ordereventv1.Event
			seq, shares     int64
			typ             int32
			ref, orig, next *int64
		)
		if err := rows.Scan(&ev.Timestamp, &seq, &typ, &ref, &orig, &next, &ev.IsBuy, &shares, &ev.Price); err != nil {
			return nil, fmt.Errorf("failed to scan order event: %w", err)
		}

		ev.Seq = uint64(seq)
		ev.Type = byte(typ)
		ev.Shares = uint32(shares)
		ev.Reference = deref(ref)
		ev.OriginalReference = deref(orig)
		ev.NewReference = deref(next)
		events = append(events, ev)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return events, nil
}

func deref(v *int64) uint64 {
	if v == nil {
		return 0
	}
	return uint64(*v)
}
