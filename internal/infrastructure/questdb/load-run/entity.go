package loadrun

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// Status of a loader run.
type Status string

const (
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// LoadRun is the audit record of one loader invocation.
type LoadRun struct {
	ID         string
	File       string
	TradingDay time.Time
	Status     Status

	Messages    uint64
	Loaded      uint64
	Skipped     uint64
	Stalls      uint64
	Unmatched   uint64
	RowsWritten uint64
	Errors      uint64

	StartedAt  time.Time
	FinishedAt time.Time
}

// NewLoadRun starts a run for a feed file.
func NewLoadRun(file string, tradingDay, startedAt time.Time) *LoadRun {
	return &LoadRun{
		ID:         ulid.Make().String(),
		File:       file,
		TradingDay: tradingDay,
		Status:     StatusRunning,
		StartedAt:  startedAt,
	}
}

// Finish marks the run done, failed when err is set.
func (r *LoadRun) Finish(at time.Time, err error) {
	r.FinishedAt = at
	r.Status = StatusCompleted
	if err != nil {
		r.Status = StatusFailed
	}
}

// Elapsed returns the run duration so far.
func (r *LoadRun) Elapsed(now time.Time) time.Duration {
	if !r.FinishedAt.IsZero() {
		return r.FinishedAt.Sub(r.StartedAt)
	}
	return now.Sub(r.StartedAt)
}
