package bootstrap

import (
	apploader "github.com/muhammadchandra19/nasdaq-itch/internal/app/loader"
	"github.com/muhammadchandra19/nasdaq-itch/internal/usecase/replay"
)

// Usecase is the set of application entry points.
type Usecase struct {
	ReplayUsecase *replay.Usecase
	LoaderService *apploader.Service
}

// registerUsecase registers the usecase.
func (b *Bootstrap) registerUsecase() {
	cfg := b.Config

	replayOpts := []replay.Option{
		replay.WithInterval(cfg.Snapshot.Interval),
		replay.WithLocation(cfg.Location()),
	}
	if b.Infrastructure.Publisher != nil {
		replayOpts = append(replayOpts, replay.WithPublisher(b.Infrastructure.Publisher))
	}
	b.Usecase.ReplayUsecase = replay.NewUsecase(
		b.Repository.OrderEventRepository,
		b.Infrastructure.Snapshots,
		b.Logger,
		replayOpts...,
	)

	opts := apploader.DefaultOptions()
	opts.QueueCapacity = cfg.Loader.QueueCapacity
	opts.SpinLimit = cfg.Loader.SpinLimit
	opts.BatchSize = cfg.Loader.BatchSize
	opts.ReportInterval = cfg.Loader.ReportInterval
	opts.Location = cfg.Location()
	opts.LiveSymbols = cfg.Loader.LiveSymbols
	opts.SnapshotInterval = cfg.Snapshot.Interval

	b.Usecase.LoaderService = apploader.NewService(
		b.Repository.OrderEventRepository,
		b.Infrastructure.Snapshots,
		b.Repository.LoadRunRepository,
		b.Infrastructure.Publisher,
		b.Logger,
		opts,
	)
}
