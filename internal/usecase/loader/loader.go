package loader

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	enginev1 "github.com/muhammadchandra19/nasdaq-itch/internal/domain/engine/v1"
	itchv1 "github.com/muhammadchandra19/nasdaq-itch/internal/domain/itch/v1"
	ordereventv1 "github.com/muhammadchandra19/nasdaq-itch/internal/domain/order-event/v1"
	snapshotv1 "github.com/muhammadchandra19/nasdaq-itch/internal/domain/snapshot/v1"
	"github.com/muhammadchandra19/nasdaq-itch/pkg/errors"
	"github.com/muhammadchandra19/nasdaq-itch/pkg/logger"
	"github.com/muhammadchandra19/nasdaq-itch/pkg/util"
)

// EventRowBytes is the encoded width of one event row.
const EventRowBytes = 8 + 8 + 4 + 8 + 8 + 8 + 1 + 4 + 8

// Options tune a load.
type Options struct {
	// TradingDay is midnight of the session in the exchange time zone.
	TradingDay time.Time
	// BatchSize is the number of buffered events that triggers a flush.
	BatchSize int
	// LiveSymbols are tracked with in-memory books during the load.
	LiveSymbols []string
	// SnapshotInterval spaces live-book snapshots.
	SnapshotInterval time.Duration
}

// Loader is the application stage of an ingestion run: it resolves
// symbols, writes order events and keeps optional live books.
type Loader struct {
	events    ordereventv1.Repository
	snapshots snapshotv1.Store
	logger    logger.Interface
	opts      Options

	locate  map[uint16]string
	batches map[string][]ordereventv1.Event
	pending int
	seq     uint64
	live    map[string]*LiveBook

	mu     sync.Mutex
	status ordereventv1.WriteStatus
}

// LiveBook is an engine fed during the load.
type LiveBook struct {
	Engine    *enginev1.Engine
	Applied   uint64
	Missed    uint64
	Snapshots uint64

	next time.Time
}

// NewLoader creates a loader. snapshots may be nil when no live symbols are set.
func NewLoader(events ordereventv1.Repository, snapshots snapshotv1.Store, log logger.Interface, opts Options) *Loader {
	if opts.BatchSize <= 0 {
		opts.BatchSize = 10000
	}
	if opts.SnapshotInterval <= 0 {
		opts.SnapshotInterval = snapshotv1.DefaultInterval
	}

	l := &Loader{
		events:    events,
		snapshots: snapshots,
		logger:    log,
		opts:      opts,
		locate:    make(map[uint16]string),
		batches:   make(map[string][]ordereventv1.Event),
		live:      make(map[string]*LiveBook),
	}
	for _, s := range opts.LiveSymbols {
		l.live[strings.ToLower(s)] = &LiveBook{Engine: enginev1.NewEngine()}
	}
	return l
}

// Handle consumes one decoded message. It must be called from a single goroutine.
func (l *Loader) Handle(ctx context.Context, msg itchv1.Message) error {
	l.seq++

	if dir, ok := msg.(*itchv1.StockDirectory); ok {
		l.locate[dir.Meta.StockLocate] = dir.Stock.String()
		return nil
	}

	rec, ok := enginev1.FromMessage(msg)
	if !ok {
		return nil
	}

	stock, ok := l.locate[msg.Header().StockLocate]
	if !ok {
		l.mu.Lock()
		l.status.Unmatched++
		l.mu.Unlock()
		return nil
	}

	ts := msg.Header().Timestamp.On(l.opts.TradingDay)
	if book, ok := l.live[stock]; ok {
		l.applyLive(ctx, stock, book, ts, rec)
	}

	l.batches[stock] = append(l.batches[stock], ordereventv1.NewEvent(ts, l.seq, rec))
	l.pending++
	if l.pending >= l.opts.BatchSize {
		return l.Flush(ctx)
	}
	return nil
}

func (l *Loader) applyLive(ctx context.Context, stock string, book *LiveBook, ts time.Time, rec enginev1.OrderRecord) {
	boundary := util.FloorTo(ts, l.opts.SnapshotInterval)
	if book.next.IsZero() {
		book.next = boundary.Add(l.opts.SnapshotInterval)
	} else if !ts.Before(book.next) {
		l.storeSnapshot(ctx, stock, book, boundary)
		book.next = boundary.Add(l.opts.SnapshotInterval)
	}

	book.Applied++
	if !book.Engine.Apply(rec) {
		book.Missed++
	}
}

// storeSnapshot saves the state holding every event before at.
func (l *Loader) storeSnapshot(ctx context.Context, stock string, book *LiveBook, at time.Time) {
	if l.snapshots == nil {
		return
	}

	key := snapshotv1.Key(stock, at)
	if err := l.snapshots.Put(ctx, key, book.Engine.SerializeState()); err != nil {
		l.logger.ErrorContext(ctx, err,
			logger.Field{Key: "action", Value: "store_live_snapshot"},
			logger.Field{Key: "key", Value: key},
		)
		l.mu.Lock()
		l.status.Errors++
		l.mu.Unlock()
		return
	}
	book.Snapshots++
}

// Flush writes every buffered event, creating tables on first use.
func (l *Loader) Flush(ctx context.Context) error {
	if l.pending == 0 {
		return nil
	}

	stocks := make([]string, 0, len(l.batches))
	for stock, batch := range l.batches {
		if len(batch) > 0 {
			stocks = append(stocks, stock)
		}
	}
	slices.Sort(stocks)

	for _, stock := range stocks {
		if err := l.write(ctx, stock, l.batches[stock]); err != nil {
			return err
		}
		l.batches[stock] = l.batches[stock][:0]
	}
	l.pending = 0
	return nil
}

func (l *Loader) write(ctx context.Context, stock string, batch []ordereventv1.Event) error {
	created, err := l.events.EnsureTable(ctx, stock)
	if err != nil {
		l.fail(ctx, "ensure_table", stock, err)
		return errors.TracerFromError(err)
	}

	written, err := l.events.StoreBatch(ctx, stock, batch)

	l.mu.Lock()
	if created {
		l.status.TablesCreated++
	}
	l.status.RowsWritten += uint64(written)
	l.status.BytesWritten += uint64(written) * EventRowBytes
	l.mu.Unlock()

	if err != nil {
		l.fail(ctx, "store_batch", stock, err)
		return errors.TracerFromError(err)
	}
	return nil
}

func (l *Loader) fail(ctx context.Context, action, stock string, err error) {
	l.mu.Lock()
	l.status.Errors++
	l.mu.Unlock()

	l.logger.ErrorContext(ctx, err,
		logger.Field{Key: "action", Value: action},
		logger.Field{Key: "stock", Value: stock},
	)
}

// Status returns a copy of the write counters. Safe for concurrent use.
func (l *Loader) Status() ordereventv1.WriteStatus {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.status
}

// LiveBooks returns the live books by symbol.
func (l *Loader) LiveBooks() map[string]*LiveBook {
	return l.live
}

// Symbols returns the number of resolved stock locates.
func (l *Loader) Symbols() int {
	return len(l.locate)
}
