package loader

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/dustin/go-humanize"

	bookpublisherv1 "github.com/muhammadchandra19/nasdaq-itch/internal/domain/book-publisher/v1"
	itchv1 "github.com/muhammadchandra19/nasdaq-itch/internal/domain/itch/v1"
	ordereventv1 "github.com/muhammadchandra19/nasdaq-itch/internal/domain/order-event/v1"
	snapshotv1 "github.com/muhammadchandra19/nasdaq-itch/internal/domain/snapshot/v1"
	loadrun "github.com/muhammadchandra19/nasdaq-itch/internal/infrastructure/questdb/load-run"
	loaderuc "github.com/muhammadchandra19/nasdaq-itch/internal/usecase/loader"
	"github.com/muhammadchandra19/nasdaq-itch/internal/usecase/pipeline"
	"github.com/muhammadchandra19/nasdaq-itch/pkg/errors"
	"github.com/muhammadchandra19/nasdaq-itch/pkg/logger"
	"github.com/muhammadchandra19/nasdaq-itch/pkg/util"
)

// Report summarizes one load.
type Report struct {
	Run     *loadrun.LoadRun
	Read    itchv1.ReadStats
	Write   ordereventv1.WriteStatus
	// Symbols is the number of stock locates resolved from the directory.
	Symbols int
	// Yields counts producer waits that gave up the processor.
	Yields  uint64
	Elapsed time.Duration
}

// Service loads one ITCH feed file into the event log.
type Service struct {
	events    ordereventv1.Repository
	snapshots snapshotv1.Store
	runs      loadrun.LoadRunRepository
	publisher bookpublisherv1.Publisher
	logger    logger.Interface
	options   *Options
	now       func() time.Time
}

// NewService creates a loader service. snapshots and publisher may be nil.
func NewService(
	events ordereventv1.Repository,
	snapshots snapshotv1.Store,
	runs loadrun.LoadRunRepository,
	publisher bookpublisherv1.Publisher,
	log logger.Interface,
	options *Options,
) *Service {
	if options == nil {
		options = DefaultOptions()
	}
	if options.Location == nil {
		options.Location = time.UTC
	}

	return &Service{
		events:    events,
		snapshots: snapshots,
		runs:      runs,
		publisher: publisher,
		logger:    log,
		options:   options,
		now:       time.Now,
	}
}

// Load decodes the feed at path and writes its order events.
func (s *Service) Load(ctx context.Context, path string) (*Report, error) {
	ctx = util.WithFeedFile(ctx, path)

	day := s.options.TradingDay
	if day.IsZero() {
		var err error
		day, err = util.TradingDayFromFileName(path, s.options.Location)
		if err != nil {
			return nil, errors.NewErrorDetails("cannot determine trading day", string(errors.FeedDateError), path).WithCause(err)
		}
	}

	src, err := OpenSource(path)
	if err != nil {
		s.logger.ErrorContext(ctx, err, logger.Field{Key: "action", Value: "open_feed"})
		return nil, err
	}
	defer src.Close()

	run := loadrun.NewLoadRun(path, day, s.now())
	ctx = util.WithRunID(ctx, run.ID)
	if err := s.runs.Record(ctx, run); err != nil {
		return nil, errors.TracerFromError(err)
	}

	s.logger.InfoContext(ctx, "loading feed",
		logger.Field{Key: "action", Value: "load"},
		logger.Field{Key: "size", Value: humanize.Bytes(uint64(src.Size()))},
		logger.Field{Key: "trading_day", Value: day.Format("2006-01-02")},
	)

	consumer := loaderuc.NewLoader(s.events, s.snapshots, s.logger, loaderuc.Options{
		TradingDay:       day,
		BatchSize:        s.options.BatchSize,
		LiveSymbols:      s.options.LiveSymbols,
		SnapshotInterval: s.options.SnapshotInterval,
	})

	status := &itchv1.ReadStatus{}
	p := pipeline.New(s.logger,
		pipeline.WithCapacity(s.options.QueueCapacity),
		pipeline.WithSpinLimit(s.options.SpinLimit),
		pipeline.WithStatus(status),
	)

	stop := s.report(ctx, status, consumer)
	_, runErr := p.Run(ctx, src.Bytes(), consumer.Handle)
	if runErr == nil {
		runErr = consumer.Flush(ctx)
	}
	stop()

	if runErr == nil {
		s.publishLive(ctx, day, consumer)
	}

	read := status.Snapshot()
	write := consumer.Status()
	run.Messages = read.Read + read.Skipped
	run.Loaded = read.Loaded
	run.Skipped = read.Skipped
	run.Stalls = read.Stall
	run.Unmatched = write.Unmatched
	run.RowsWritten = write.RowsWritten
	run.Errors = write.Errors
	run.Finish(s.now(), runErr)

	if err := s.runs.Record(context.WithoutCancel(ctx), run); err != nil {
		s.logger.ErrorContext(ctx, err, logger.Field{Key: "action", Value: "record_run"})
	}

	report := &Report{
		Run:     run,
		Read:    read,
		Write:   write,
		Symbols: consumer.Symbols(),
		Yields:  p.Backoff().Yields(),
		Elapsed: run.Elapsed(s.now()),
	}
	s.logger.InfoContext(ctx, "feed loaded",
		logger.Field{Key: "action", Value: "load"},
		logger.Field{Key: "status", Value: string(run.Status)},
		logger.Field{Key: "read", Value: humanize.Comma(int64(read.Read))},
		logger.Field{Key: "skipped", Value: humanize.Comma(int64(read.Skipped))},
		logger.Field{Key: "stalls", Value: humanize.Comma(int64(read.Stall))},
		logger.Field{Key: "yields", Value: humanize.Comma(int64(report.Yields))},
		logger.Field{Key: "symbols", Value: report.Symbols},
		logger.Field{Key: "rows_written", Value: humanize.Comma(int64(write.RowsWritten))},
		logger.Field{Key: "bytes_written", Value: humanize.Bytes(write.BytesWritten)},
		logger.Field{Key: "unmatched", Value: write.Unmatched},
		logger.Field{Key: "elapsed", Value: report.Elapsed.String()},
	)

	if runErr != nil {
		return report, errors.TracerFromError(runErr)
	}
	return report, nil
}

// report logs progress every ReportInterval until the returned stop is called.
func (s *Service) report(ctx context.Context, status *itchv1.ReadStatus, consumer *loaderuc.Loader) func() {
	if s.options.ReportInterval <= 0 {
		return func() {}
	}

	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		ticker := time.NewTicker(s.options.ReportInterval)
		defer ticker.Stop()

		for {
			select {
			case <-done:
				return
			case <-ctx.Done():
				return
			case <-ticker.C:
				read := status.Snapshot()
				write := consumer.Status()
				s.logger.InfoContext(ctx, "progress",
					logger.Field{Key: "action", Value: "report"},
					logger.Field{Key: "percent", Value: int(read.Progress() * 100)},
					logger.Field{Key: "bytes_read", Value: humanize.Bytes(read.BytesRead)},
					logger.Field{Key: "read", Value: read.Read},
					logger.Field{Key: "stalls", Value: read.Stall},
					logger.Field{Key: "rows_written", Value: write.RowsWritten},
				)
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			close(done)
			wg.Wait()
		})
	}
}

// publishLive sends the end-of-feed book of every live symbol.
func (s *Service) publishLive(ctx context.Context, day time.Time, consumer *loaderuc.Loader) {
	if s.publisher == nil {
		return
	}

	books := consumer.LiveBooks()
	stocks := make([]string, 0, len(books))
	for stock := range books {
		stocks = append(stocks, stock)
	}
	sort.Strings(stocks)

	for _, stock := range stocks {
		book := books[stock]
		ev := bookpublisherv1.NewBookEvent(stock, day.Add(24*time.Hour), book.Engine, true)
		ev.Processed = book.Applied
		ev.Missed = book.Missed
		if err := s.publisher.Publish(ctx, ev); err != nil {
			s.logger.ErrorContext(ctx, err,
				logger.Field{Key: "action", Value: "publish_live_book"},
				logger.Field{Key: "stock", Value: stock},
			)
		}
	}
}

// Options returns the service options; changes apply to the next Load.
func (s *Service) Options() *Options {
	return s.options
}

// LoadRun returns the latest recorded state of a previous run.
func (s *Service) LoadRun(ctx context.Context, id string) (*loadrun.LoadRun, error) {
	run, err := s.runs.GetByID(util.WithRunID(ctx, id), id)
	if err != nil {
		return nil, errors.TracerFromError(err)
	}
	if run == nil {
		return nil, errors.NewErrorDetails("load run not found", string(errors.GeneralBadRequestError), id)
	}
	return run, nil
}
