package bootstrap

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muhammadchandra19/nasdaq-itch/pkg/config"
	"github.com/muhammadchandra19/nasdaq-itch/pkg/errors"
	"github.com/muhammadchandra19/nasdaq-itch/pkg/logger"
	questdb_mock "github.com/muhammadchandra19/nasdaq-itch/pkg/questdb/mock"
)

func pebbleConfig(t *testing.T) *config.Config {
	return &config.Config{
		Pebble:   config.PebbleConfig{Dir: t.TempDir()},
		Snapshot: config.SnapshotConfig{Backend: config.SnapshotBackendPebble, Interval: 15 * time.Minute},
		Publisher: config.PublisherConfig{
			Driver:  config.PublisherDriverKafkaGo,
			Brokers: []string{"localhost:9092"},
			Topic:   "order-books",
		},
		Loader: config.LoaderConfig{QueueCapacity: 16, SpinLimit: 8, BatchSize: 100, Timezone: "America/New_York"},
	}
}

func TestBootstrap_Init(t *testing.T) {
	testCases := []struct {
		name     string
		cfgFn    func(cfg *config.Config)
		assertFn func(t *testing.T, b *Bootstrap, err error)
	}{
		{
			name: "pebble without publisher",
			assertFn: func(t *testing.T, b *Bootstrap, err error) {
				require.NoError(t, err)
				assert.NotNil(t, b.Infrastructure.Snapshots)
				assert.Nil(t, b.Infrastructure.Publisher)
				assert.NotNil(t, b.Repository.OrderEventRepository)
				assert.NotNil(t, b.Repository.LoadRunRepository)
				assert.NotNil(t, b.Usecase.ReplayUsecase)
				require.NotNil(t, b.Usecase.LoaderService)

				opts := b.Usecase.LoaderService.Options()
				assert.Equal(t, 16, opts.QueueCapacity)
				assert.Equal(t, 100, opts.BatchSize)
				assert.Equal(t, "America/New_York", opts.Location.String())
			},
		},
		{
			name: "pebble with kafka-go publisher",
			cfgFn: func(cfg *config.Config) {
				cfg.Publisher.Enabled = true
			},
			assertFn: func(t *testing.T, b *Bootstrap, err error) {
				require.NoError(t, err)
				assert.NotNil(t, b.Infrastructure.Publisher)
			},
		},
		{
			name: "unknown snapshot backend",
			cfgFn: func(cfg *config.Config) {
				cfg.Snapshot.Backend = "memcached"
			},
			assertFn: func(t *testing.T, b *Bootstrap, err error) {
				require.Error(t, err)
				assert.True(t, errors.ErrorCodeEquals(err, string(errors.SnapshotBackendError)))
			},
		},
		{
			name: "unknown publisher driver",
			cfgFn: func(cfg *config.Config) {
				cfg.Publisher.Enabled = true
				cfg.Publisher.Driver = "nats"
			},
			assertFn: func(t *testing.T, b *Bootstrap, err error) {
				require.Error(t, err)
				assert.True(t, errors.ErrorCodeEquals(err, string(errors.ConfigInvalidError)))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			cfg := pebbleConfig(t)
			if tc.cfgFn != nil {
				tc.cfgFn(cfg)
			}

			b := &Bootstrap{}
			err := b.Init(context.Background(), BootstrapConfig{
				Config:  cfg,
				QuestDB: questdb_mock.NewMockQuestDBClient(ctrl),
				Logger:  logger.NewNop(),
			})
			tc.assertFn(t, b, err)
			if err == nil {
				b.Close()
			}
		})
	}
}
