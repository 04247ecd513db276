package replay

import (
	"context"
	"strings"
	"time"

	bookpublisherv1 "github.com/muhammadchandra19/nasdaq-itch/internal/domain/book-publisher/v1"
	enginev1 "github.com/muhammadchandra19/nasdaq-itch/internal/domain/engine/v1"
	ordereventv1 "github.com/muhammadchandra19/nasdaq-itch/internal/domain/order-event/v1"
	snapshotv1 "github.com/muhammadchandra19/nasdaq-itch/internal/domain/snapshot/v1"
	"github.com/muhammadchandra19/nasdaq-itch/pkg/errors"
	"github.com/muhammadchandra19/nasdaq-itch/pkg/logger"
	"github.com/muhammadchandra19/nasdaq-itch/pkg/util"
)

// Request asks for the book of Stock as of At.
type Request struct {
	Stock string
	At    time.Time
	// PointInTime starts from the newest snapshot not after floor(At) and
	// stores one at floor(At) for later queries. Without it the replay runs
	// from day open and never reads or writes snapshots.
	PointInTime bool
	// Publish sends the resulting book to the configured publisher.
	Publish   bool
	Collapsed bool
}

// Result is a replayed engine and what it took to build it.
type Result struct {
	Stock  string
	At     time.Time
	Engine *enginev1.Engine

	// SnapshotKey is the restored snapshot, empty when replay started at day open.
	SnapshotKey string
	From        time.Time
	Fetched     int
	Processed   uint64
	Missed      uint64
	Stored      bool

	FetchTime time.Duration
	ApplyTime time.Duration
}

// Usecase reconstructs order books at arbitrary instants.
type Usecase struct {
	events    ordereventv1.Repository
	snapshots snapshotv1.Store
	publisher bookpublisherv1.Publisher
	logger    logger.Interface
	interval  time.Duration
	location  *time.Location
}

// Option configures the use case.
type Option func(u *Usecase)

// WithPublisher enables book publication.
func WithPublisher(p bookpublisherv1.Publisher) Option {
	return func(u *Usecase) {
		u.publisher = p
	}
}

// WithInterval sets the snapshot interval.
func WithInterval(interval time.Duration) Option {
	return func(u *Usecase) {
		if interval > 0 {
			u.interval = interval
		}
	}
}

// WithLocation sets the exchange time zone that defines the trading day.
func WithLocation(loc *time.Location) Option {
	return func(u *Usecase) {
		if loc != nil {
			u.location = loc
		}
	}
}

// NewUsecase creates a replay use case.
func NewUsecase(events ordereventv1.Repository, snapshots snapshotv1.Store, log logger.Interface, opts ...Option) *Usecase {
	u := &Usecase{
		events:    events,
		snapshots: snapshots,
		logger:    log,
		interval:  snapshotv1.DefaultInterval,
		location:  time.UTC,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Replay restores the newest usable snapshot not after floor(At) when
// PointInTime is set, then applies the stored events up to At in (timestamp, sequence) order.
func (u *Usecase) Replay(ctx context.Context, req Request) (*Result, error) {
	stock := strings.ToLower(req.Stock)
	ctx = util.WithSymbol(ctx, stock)

	dayStart := util.StartOfDay(req.At.In(u.location))
	bestAt := util.FloorTo(req.At, u.interval)
	bestKey := snapshotv1.KeyFor(stock, req.At, u.interval)

	res := &Result{Stock: stock, At: req.At, Engine: enginev1.NewEngine(), From: dayStart}

	var snapAt time.Time
	if req.PointInTime {
		var err error
		if snapAt, err = u.restore(ctx, stock, dayStart, bestAt, res); err != nil {
			return nil, err
		}
	}

	started := time.Now()
	events, err := u.events.GetRange(ctx, stock, res.From, req.At)
	if err != nil {
		u.logger.ErrorContext(ctx, err, logger.Field{Key: "action", Value: "get_events"})
		return nil, errors.TracerFromError(err)
	}
	res.Fetched = len(events)
	res.FetchTime = time.Since(started)

	capture := req.PointInTime && len(events) > 0 && (res.SnapshotKey == "" || snapAt.Before(bestAt))

	var blob []byte
	started = time.Now()
	res.Engine.Reserve(len(events))
	for _, ev := range events {
		if capture && blob == nil && !ev.Timestamp.Before(bestAt) {
			blob = res.Engine.SerializeState()
		}
		res.Processed++
		if !res.Engine.Apply(ev.Record()) {
			res.Missed++
		}
	}
	res.ApplyTime = time.Since(started)

	if capture {
		if blob == nil {
			blob = res.Engine.SerializeState()
		}
		if err := u.snapshots.Put(ctx, bestKey, blob); err != nil {
			u.logger.ErrorContext(ctx, err,
				logger.Field{Key: "action", Value: "store_snapshot"},
				logger.Field{Key: "key", Value: bestKey},
			)
		} else {
			res.Stored = true
		}
	}

	u.logger.InfoContext(ctx, "replay complete",
		logger.Field{Key: "action", Value: "replay"},
		logger.Field{Key: "snapshot", Value: res.SnapshotKey},
		logger.Field{Key: "fetched", Value: res.Fetched},
		logger.Field{Key: "missed", Value: res.Missed},
		logger.Field{Key: "stored", Value: res.Stored},
	)

	if req.Publish && u.publisher != nil {
		ev := bookpublisherv1.NewBookEvent(stock, req.At, res.Engine, req.Collapsed)
		ev.Processed = res.Processed
		ev.Missed = res.Missed
		if err := u.publisher.Publish(ctx, ev); err != nil {
			return res, errors.TracerFromError(err)
		}
	}

	return res, nil
}

// restore loads the latest snapshot of the session not after bestAt into
// res.Engine. A missing or corrupt snapshot leaves a fresh engine and the
// replay starting at dayStart.
func (u *Usecase) restore(ctx context.Context, stock string, dayStart, bestAt time.Time, res *Result) (time.Time, error) {
	var keys []string
	for _, prefix := range snapshotv1.DayPrefixes(stock, dayStart, bestAt) {
		found, err := u.snapshots.Keys(ctx, prefix)
		if err != nil {
			u.logger.ErrorContext(ctx, err, logger.Field{Key: "action", Value: "list_snapshots"})
			return time.Time{}, errors.TracerFromError(err)
		}
		for _, key := range found {
			if at, err := snapshotv1.ParseKeyTime(key); err == nil && !at.Before(dayStart) {
				keys = append(keys, key)
			}
		}
	}

	key, ok := snapshotv1.SelectLatest(keys, snapshotv1.Key(stock, bestAt))
	if !ok {
		return time.Time{}, nil
	}

	blob, err := u.snapshots.Get(ctx, key)
	if err != nil {
		u.logger.ErrorContext(ctx, err, logger.Field{Key: "action", Value: "get_snapshot"})
		return time.Time{}, errors.TracerFromError(err)
	}
	if blob == nil || !res.Engine.DeserializeState(blob) {
		u.logger.WarnContext(ctx, "snapshot unusable, replaying from day start",
			logger.Field{Key: "action", Value: "restore_snapshot"},
			logger.Field{Key: "key", Value: key},
		)
		res.Engine = enginev1.NewEngine()
		return time.Time{}, nil
	}

	at, _ := snapshotv1.ParseKeyTime(key)
	res.SnapshotKey = key
	res.From = at
	return at, nil
}
