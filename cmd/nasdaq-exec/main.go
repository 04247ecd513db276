package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/muhammadchandra19/nasdaq-itch/internal/bootstrap"
	enginev1 "github.com/muhammadchandra19/nasdaq-itch/internal/domain/engine/v1"
	"github.com/muhammadchandra19/nasdaq-itch/internal/usecase/printer"
	"github.com/muhammadchandra19/nasdaq-itch/internal/usecase/replay"
	"github.com/muhammadchandra19/nasdaq-itch/pkg/config"
	"github.com/muhammadchandra19/nasdaq-itch/pkg/logger"
	"github.com/muhammadchandra19/nasdaq-itch/pkg/questdb"
	"github.com/muhammadchandra19/nasdaq-itch/pkg/util"
)

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

	// Book output goes to stdout; keep the log on stderr.
	log, err = logger.NewLogger(
		logger.WithLoggingLevel(logger.ParseLevel(cfg.App.LogLevel)),
		logger.WithOutputPaths([]string{"stderr"}),
	)
	if err != nil {
		panic(err)
	}
}

func main() {
	var (
		stock       = flag.String("stock", "", "Security symbol, e.g. AAPL")
		when        = flag.String("when", "", "Instant YYYY-MM-DDTHH:MM:SS in the exchange time zone")
		collapsed   = flag.Bool("collapsed", false, "Print one row per price level")
		pointInTime = flag.Bool("point-in-time", true, "Start from the nearest snapshot and store one at the interval boundary; false replays from day open")
		publish     = flag.Bool("publish", false, "Publish the book to the configured topic")
	)
	flag.Parse()

	if *stock == "" || *when == "" {
		flag.Usage()
		os.Exit(2)
	}

	at, err := time.ParseInLocation("2006-01-02T15:04:05", *when, cfg.Location())
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid -when %q: %v\n", *when, err)
		os.Exit(2)
	}

	req := replay.Request{
		Stock:       *stock,
		At:          at,
		PointInTime: *pointInTime,
		Publish:     *publish,
		Collapsed:   *collapsed,
	}
	if err := run(req); err != nil {
		log.Error(err, logger.Field{Key: "action", Value: "query_book"})
		_ = log.Sync()
		os.Exit(1)
	}
	_ = log.Sync()
}

func run(req replay.Request) error {
	started := time.Now()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx = util.WithRequestID(ctx, "")

	if req.Publish {
		cfg.Publisher.Enabled = true
	}

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

	res, err := b.Usecase.ReplayUsecase.Replay(ctx, req)
	if err != nil {
		return err
	}

	p := printer.New(os.Stdout)
	p.Summary(printer.Summary{
		Stock:       res.Stock,
		At:          res.At,
		SnapshotKey: res.SnapshotKey,
		Processed:   res.Processed,
		Missed:      res.Missed,
		PointInTime: req.PointInTime,
	})

	built := time.Now()
	buy, sell := res.Engine.BuyBook(), res.Engine.SellBook()
	if req.Collapsed {
		p.Collapsed(enginev1.CollapseBook(buy), enginev1.CollapseBook(sell))
	} else {
		p.Detailed(buy, sell)
	}

	p.Timings(printer.Timings{
		Total:  time.Since(started),
		Fetch:  res.FetchTime,
		Engine: res.ApplyTime,
		Build:  time.Since(built),
	})
	return nil
}
