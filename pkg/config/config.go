package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/muhammadchandra19/nasdaq-itch/pkg/errors"
	"github.com/muhammadchandra19/nasdaq-itch/pkg/questdb"
	"github.com/muhammadchandra19/nasdaq-itch/pkg/redis"
)

// Snapshot backends.
const (
	SnapshotBackendRedis  = "redis"
	SnapshotBackendPebble = "pebble"
)

// Publisher drivers.
const (
	PublisherDriverKafkaGo = "kafka-go"
	PublisherDriverSarama  = "sarama"
)

// Config represents the application configuration.
type Config struct {
	App       AppConfig       `envPrefix:"APP_"`
	QuestDB   questdb.Config  `envPrefix:"QUESTDB_"`
	Redis     redis.Config    `envPrefix:"REDIS_"`
	Pebble    PebbleConfig    `envPrefix:"PEBBLE_"`
	Snapshot  SnapshotConfig  `envPrefix:"SNAPSHOT_"`
	Publisher PublisherConfig `envPrefix:"PUBLISHER_"`
	Loader    LoaderConfig    `envPrefix:"LOADER_"`
	Health    HealthConfig    `envPrefix:"HEALTH_"`
}

// AppConfig represents the application configuration.
type AppConfig struct {
	Name        string `env:"NAME" envDefault:"nasdaq-itch"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
}

// PebbleConfig configures the embedded snapshot store.
type PebbleConfig struct {
	Dir string `env:"DIR" envDefault:"./data/snapshots"`
}

// SnapshotConfig selects the snapshot backend and cadence.
type SnapshotConfig struct {
	Backend  string        `env:"BACKEND" envDefault:"redis"`
	Interval time.Duration `env:"INTERVAL" envDefault:"15m"`
}

// PublisherConfig configures book publication.
type PublisherConfig struct {
	Enabled      bool          `env:"ENABLED" envDefault:"false"`
	Driver       string        `env:"DRIVER" envDefault:"kafka-go"`
	Brokers      []string      `env:"BROKERS" envSeparator:"," envDefault:"localhost:9092"`
	Topic        string        `env:"TOPIC" envDefault:"order-books"`
	BatchTimeout time.Duration `env:"BATCH_TIMEOUT" envDefault:"10ms"`
	MaxRetries   int           `env:"MAX_RETRIES" envDefault:"5"`
}

// LoaderConfig tunes the ingestion pipeline and event-log writer.
type LoaderConfig struct {
	QueueCapacity  int           `env:"QUEUE_CAPACITY" envDefault:"65536"`
	SpinLimit      int           `env:"SPIN_LIMIT" envDefault:"64"`
	BatchSize      int           `env:"BATCH_SIZE" envDefault:"10000"`
	ReportInterval time.Duration `env:"REPORT_INTERVAL" envDefault:"1s"`
	LiveSymbols    []string      `env:"LIVE_SYMBOLS" envSeparator:","`
	Timezone       string        `env:"TIMEZONE" envDefault:"America/New_York"`
}

// HealthConfig configures the gRPC health endpoint.
type HealthConfig struct {
	Enabled bool   `env:"ENABLED" envDefault:"true"`
	Address string `env:"ADDRESS" envDefault:":8880"`
}

// Validate checks values that env tags cannot express.
func (c *Config) Validate() error {
	errs := errors.NewBaseError()

	switch strings.ToLower(c.Snapshot.Backend) {
	case SnapshotBackendRedis, SnapshotBackendPebble:
	default:
		errs.AddErrorDetails(errors.NewErrorDetails(
			fmt.Sprintf("unknown snapshot backend %q", c.Snapshot.Backend),
			string(errors.ConfigInvalidError), "SNAPSHOT_BACKEND"))
	}

	if c.Snapshot.Interval <= 0 {
		errs.AddErrorDetails(errors.NewErrorDetails(
			"snapshot interval must be positive", string(errors.ConfigInvalidError), "SNAPSHOT_INTERVAL"))
	}

	switch strings.ToLower(c.Publisher.Driver) {
	case PublisherDriverKafkaGo, PublisherDriverSarama:
	default:
		errs.AddErrorDetails(errors.NewErrorDetails(
			fmt.Sprintf("unknown publisher driver %q", c.Publisher.Driver),
			string(errors.ConfigInvalidError), "PUBLISHER_DRIVER"))
	}

	if c.Loader.QueueCapacity < 1 {
		errs.AddErrorDetails(errors.NewErrorDetails(
			"queue capacity must be at least 1", string(errors.ConfigInvalidError), "LOADER_QUEUE_CAPACITY"))
	}

	if c.Loader.BatchSize < 1 {
		errs.AddErrorDetails(errors.NewErrorDetails(
			"batch size must be at least 1", string(errors.ConfigInvalidError), "LOADER_BATCH_SIZE"))
	}

	if _, err := time.LoadLocation(c.Loader.Timezone); err != nil {
		errs.AddErrorDetails(errors.NewErrorDetails(
			err.Error(), string(errors.ConfigInvalidError), "LOADER_TIMEZONE"))
	}

	if errs.HasDetails() {
		return errs
	}
	return nil
}

// Location returns the loader's trading-day time zone, falling back to UTC.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Loader.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
