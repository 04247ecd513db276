package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/muhammadchandra19/nasdaq-itch/internal/bootstrap"
	"github.com/muhammadchandra19/nasdaq-itch/pkg/config"
	"github.com/muhammadchandra19/nasdaq-itch/pkg/grpclib/health"
	"github.com/muhammadchandra19/nasdaq-itch/pkg/logger"
	"github.com/muhammadchandra19/nasdaq-itch/pkg/questdb"
)

const serviceName = "itch-loader"

var cfg *config.Config
var log *logger.Logger

func init() {
	var err error
	cfg = &config.Config{}
	if err = config.Load(cfg); err != nil {
		panic(err)
	}
	if err = cfg.Validate(); err != nil {
		panic(err)
	}

	log, err = logger.NewLogger(logger.WithLoggingLevel(logger.ParseLevel(cfg.App.LogLevel)))
	if err != nil {
		panic(err)
	}
}

func main() {
	var (
		file  = flag.String("file", "", "ITCH 5.0 feed file, named MMDDYYYY.*")
		date  = flag.String("date", "", "Trading day YYYY-MM-DD (default: parsed from the file name)")
		live  = flag.String("live", "", "Comma-separated symbols to keep live books and snapshots for")
		runID = flag.String("run", "", "Show the recorded state of a previous run and exit")
	)
	flag.Parse()

	if *runID != "" {
		if err := show(*runID); err != nil {
			log.Error(err, logger.Field{Key: "action", Value: "show_run"})
			_ = log.Sync()
			os.Exit(1)
		}
		_ = log.Sync()
		return
	}

	if *file == "" && flag.NArg() > 0 {
		*file = flag.Arg(0)
	}
	if *file == "" {
		flag.Usage()
		os.Exit(2)
	}
	if *live != "" {
		cfg.Loader.LiveSymbols = strings.Split(*live, ",")
	}

	if err := run(*file, *date); err != nil {
		log.Error(err, logger.Field{Key: "action", Value: "load_feed"})
		_ = log.Sync()
		os.Exit(1)
	}
	_ = log.Sync()
}

func run(file, date string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case sig := <-sigChan:
			log.Info("Received shutdown signal", logger.Field{Key: "signal", Value: sig.String()})
			cancel()
		case <-ctx.Done():
		}
	}()

	qclient, err := questdb.NewClient(ctx, cfg.QuestDB)
	if err != nil {
		return err
	}
	defer qclient.Close()

	b := &bootstrap.Bootstrap{}
	if err := b.Init(ctx, bootstrap.BootstrapConfig{Config: cfg, QuestDB: qclient, Logger: log}); err != nil {
		return err
	}
	defer b.Close()

	svc := b.Usecase.LoaderService
	if date != "" {
		day, err := time.ParseInLocation("2006-01-02", date, cfg.Location())
		if err != nil {
			return err
		}
		svc.Options().TradingDay = day
	}

	var healthDone chan struct{}
	if cfg.Health.Enabled {
		hs := health.NewServer()
		hs.SetServing(serviceName)
		healthDone = make(chan struct{})
		go func() {
			defer close(healthDone)
			if err := hs.Serve(ctx, cfg.Health.Address); err != nil {
				log.Error(err, logger.Field{Key: "action", Value: "serve_health"})
			}
		}()
	}

	log.Info("Loader started",
		logger.Field{Key: "file", Value: file},
		logger.Field{Key: "snapshot_backend", Value: cfg.Snapshot.Backend},
		logger.Field{Key: "live_symbols", Value: cfg.Loader.LiveSymbols},
	)

	report, err := svc.Load(ctx, file)
	cancel()

	if healthDone != nil {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()
		select {
		case <-healthDone:
		case <-shutdownCtx.Done():
			log.Warn("Health server did not stop in time")
		}
	}

	if report != nil {
		log.Info("Loader finished",
			logger.Field{Key: "run_id", Value: report.Run.ID},
			logger.Field{Key: "status", Value: string(report.Run.Status)},
			logger.Field{Key: "bytes", Value: humanize.Bytes(report.Read.BytesRead)},
			logger.Field{Key: "messages", Value: humanize.Comma(int64(report.Read.Read))},
			logger.Field{Key: "rows", Value: humanize.Comma(int64(report.Write.RowsWritten))},
			logger.Field{Key: "elapsed", Value: report.Elapsed.String()},
		)
	}
	return err
}

func show(id string) error {
	ctx := context.Background()

	qclient, err := questdb.NewClient(ctx, cfg.QuestDB)
	if err != nil {
		return err
	}
	defer qclient.Close()

	b := &bootstrap.Bootstrap{}
	if err := b.Init(ctx, bootstrap.BootstrapConfig{Config: cfg, QuestDB: qclient, Logger: log}); err != nil {
		return err
	}
	defer b.Close()

	run, err := b.Usecase.LoaderService.LoadRun(ctx, id)
	if err != nil {
		return err
	}

	log.Info("Load run",
		logger.Field{Key: "run_id", Value: run.ID},
		logger.Field{Key: "file", Value: run.File},
		logger.Field{Key: "trading_day", Value: run.TradingDay.Format("2006-01-02")},
		logger.Field{Key: "status", Value: string(run.Status)},
		logger.Field{Key: "messages", Value: humanize.Comma(int64(run.Messages))},
		logger.Field{Key: "rows", Value: humanize.Comma(int64(run.RowsWritten))},
		logger.Field{Key: "errors", Value: run.Errors},
		logger.Field{Key: "elapsed", Value: run.Elapsed(time.Now()).String()},
	)
	return nil
}
