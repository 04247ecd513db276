package main

import (
	"context"
	"flag"
	"os"

	"github.com/muhammadchandra19/nasdaq-itch/internal/infrastructure/questdb/migrations"
	"github.com/muhammadchandra19/nasdaq-itch/pkg/config"
	"github.com/muhammadchandra19/nasdaq-itch/pkg/logger"
	"github.com/muhammadchandra19/nasdaq-itch/pkg/migration"
	"github.com/muhammadchandra19/nasdaq-itch/pkg/questdb"
)

func main() {
	var (
		direction = flag.String("direction", "up", "Migration direction: up or down")
		steps     = flag.Int("steps", 0, "Number of steps to migrate (0 = all, up only)")
	)
	flag.Parse()

	ctx := context.Background()

	log, err := logger.NewLogger()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	cfg := &config.Config{}
	if err := config.Load(cfg); err != nil {
		log.Error(err, logger.Field{Key: "action", Value: "load_config"})
		os.Exit(1)
	}

	client, err := questdb.NewClient(ctx, cfg.QuestDB)
	if err != nil {
		log.Error(err, logger.Field{Key: "action", Value: "connect_questdb"})
		os.Exit(1)
	}
	defer client.Close()

	runner := migration.NewRunner(client, migrations.FS(), log)
	if err := runner.EnsureMigrationTable(ctx); err != nil {
		log.Error(err, logger.Field{Key: "action", Value: "ensure_migration_table"})
		os.Exit(1)
	}

	var n int
	switch *direction {
	case "up":
		n, err = runner.MigrateUp(ctx, *steps)
	case "down":
		n, err = runner.MigrateDown(ctx, *steps)
	default:
		log.Warn("Invalid direction, use 'up' or 'down'", logger.Field{Key: "direction", Value: *direction})
		os.Exit(2)
	}
	if err != nil {
		log.Error(err,
			logger.Field{Key: "action", Value: "migrate"},
			logger.Field{Key: "direction", Value: *direction},
			logger.Field{Key: "applied", Value: n},
		)
		os.Exit(1)
	}

	log.Info("Migration completed",
		logger.Field{Key: "direction", Value: *direction},
		logger.Field{Key: "applied", Value: n},
	)
}
