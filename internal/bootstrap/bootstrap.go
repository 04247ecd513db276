package bootstrap

import (
	"context"

	"github.com/muhammadchandra19/nasdaq-itch/pkg/config"
	"github.com/muhammadchandra19/nasdaq-itch/pkg/logger"
	"github.com/muhammadchandra19/nasdaq-itch/pkg/questdb"
)

// Bootstrap wires the event log, snapshot store, publisher and use cases.
type Bootstrap struct {
	Usecase        Usecase
	Logger         logger.Interface
	Repository     Repository
	Infrastructure Infrastructure

	Config  *config.Config
	QuestDB questdb.QuestDBClient
}

// BootstrapConfig is the config for the bootstrap.
type BootstrapConfig struct {
	Config  *config.Config
	QuestDB questdb.QuestDBClient
	Logger  logger.Interface
}

// Init initializes the bootstrap. Close releases what Init opened.
func (b *Bootstrap) Init(ctx context.Context, cfg BootstrapConfig) error {
	b.Config = cfg.Config
	b.QuestDB = cfg.QuestDB
	b.Logger = cfg.Logger

	if err := b.registerInfrastructure(ctx); err != nil {
		return err
	}
	b.registerRepository()
	b.registerUsecase()

	return nil
}

// Close shuts down the snapshot store and publisher.
func (b *Bootstrap) Close() {
	if b.Infrastructure.Publisher != nil {
		if err := b.Infrastructure.Publisher.Close(); err != nil {
			b.Logger.Error(err, logger.Field{Key: "action", Value: "close_publisher"})
		}
	}
	if b.Infrastructure.Snapshots != nil {
		if err := b.Infrastructure.Snapshots.Close(); err != nil {
			b.Logger.Error(err, logger.Field{Key: "action", Value: "close_snapshot_store"})
		}
	}
}
