package loader

import "time"

// Options represents configuration options for the loader service.
type Options struct {
	QueueCapacity  int
	SpinLimit      int
	BatchSize      int
	ReportInterval time.Duration

	// Location is the exchange time zone of feed timestamps.
	Location *time.Location
	// TradingDay overrides the date parsed from the feed file name.
	TradingDay time.Time

	LiveSymbols      []string
	SnapshotInterval time.Duration
}

// DefaultOptions returns the default loader options.
func DefaultOptions() *Options {
	return &Options{
		QueueCapacity:    1 << 16,
		SpinLimit:        64,
		BatchSize:        10000,
		ReportInterval:   time.Second,
		Location:         time.UTC,
		SnapshotInterval: 15 * time.Minute,
	}
}
