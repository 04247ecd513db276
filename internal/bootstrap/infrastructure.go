package bootstrap

import (
	"context"
	"fmt"
	"strings"

	"github.com/cockroachdb/pebble/vfs"

	bookpublisherv1 "github.com/muhammadchandra19/nasdaq-itch/internal/domain/book-publisher/v1"
	snapshotv1 "github.com/muhammadchandra19/nasdaq-itch/internal/domain/snapshot/v1"
	kafkapublisher "github.com/muhammadchandra19/nasdaq-itch/internal/infrastructure/kafka/book-publisher"
	pebblesnapshot "github.com/muhammadchandra19/nasdaq-itch/internal/infrastructure/pebble/snapshot"
	redissnapshot "github.com/muhammadchandra19/nasdaq-itch/internal/infrastructure/redis/snapshot"
	saramapublisher "github.com/muhammadchandra19/nasdaq-itch/internal/infrastructure/sarama/book-publisher"
	"github.com/muhammadchandra19/nasdaq-itch/pkg/config"
	"github.com/muhammadchandra19/nasdaq-itch/pkg/errors"
	"github.com/muhammadchandra19/nasdaq-itch/pkg/logger"
	"github.com/muhammadchandra19/nasdaq-itch/pkg/redis"
)

// Infrastructure holds the pluggable backends.
type Infrastructure struct {
	Snapshots snapshotv1.Store
	// Publisher is nil when publication is disabled.
	Publisher bookpublisherv1.Publisher
}

func (b *Bootstrap) registerInfrastructure(ctx context.Context) error {
	snapshots, err := NewSnapshotStore(ctx, b.Config, b.Logger)
	if err != nil {
		return err
	}
	b.Infrastructure.Snapshots = snapshots

	if !b.Config.Publisher.Enabled {
		return nil
	}

	publisher, err := NewPublisher(b.Config.Publisher, b.Logger)
	if err != nil {
		_ = snapshots.Close()
		return err
	}
	b.Infrastructure.Publisher = publisher

	return nil
}

// NewSnapshotStore opens the configured snapshot backend.
func NewSnapshotStore(ctx context.Context, cfg *config.Config, log logger.Interface) (snapshotv1.Store, error) {
	switch strings.ToLower(cfg.Snapshot.Backend) {
	case config.SnapshotBackendRedis:
		client := redis.NewClient(log, &cfg.Redis)
		if err := client.Connect(ctx); err != nil {
			return nil, err
		}
		return redissnapshot.NewStore(client, log, cfg.Redis.DefaultTTL), nil
	case config.SnapshotBackendPebble:
		store, err := pebblesnapshot.Open(cfg.Pebble.Dir, vfs.Default)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, errors.NewErrorDetails(
			fmt.Sprintf("unknown snapshot backend %q", cfg.Snapshot.Backend),
			string(errors.SnapshotBackendError), "SNAPSHOT_BACKEND")
	}
}

// NewPublisher creates the configured book publisher.
func NewPublisher(cfg config.PublisherConfig, log logger.Interface) (bookpublisherv1.Publisher, error) {
	switch strings.ToLower(cfg.Driver) {
	case config.PublisherDriverKafkaGo:
		return kafkapublisher.NewPublisher(cfg, log), nil
	case config.PublisherDriverSarama:
		publisher, err := saramapublisher.NewPublisher(cfg, log)
		if err != nil {
			return nil, err
		}
		return publisher, nil
	default:
		return nil, errors.NewErrorDetails(
			fmt.Sprintf("unknown publisher driver %q", cfg.Driver),
			string(errors.ConfigInvalidError), "PUBLISHER_DRIVER")
	}
}
