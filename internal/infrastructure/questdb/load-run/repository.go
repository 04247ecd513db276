package loadrun

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/muhammadchandra19/nasdaq-itch/pkg/questdb"
)

// Repository stores load runs in the load_runs table. Rows are
// append-only; the latest row per id is the current state.
type Repository struct {
	client questdb.QuestDBClient
	now    func() time.Time
}

var _ LoadRunRepository = (*Repository)(nil)

// NewRepository creates a new load run repository.
func NewRepository(client questdb.QuestDBClient) *Repository {
	return &Repository{
		client: client,
		now:    time.Now,
	}
}

// Record appends the current state of a run.
func (r *Repository) Record(ctx context.Context, run *LoadRun) error {
	query := `INSERT INTO load_runs (id, file, trading_day, status, messages, loaded, skipped, stalls, unmatched, rows_written, errors, started_at, finished_at, recorded_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	var finished *time.Time
	if !run.FinishedAt.IsZero() {
		at := run.FinishedAt.UTC()
		finished = &at
	}

	err := r.client.Exec(ctx, query,
		run.ID, run.File, run.TradingDay.UTC(), string(run.Status),
		int64(run.Messages), int64(run.Loaded), int64(run.Skipped), int64(run.Stalls),
		int64(run.Unmatched), int64(run.RowsWritten), int64(run.Errors),
		run.StartedAt.UTC(), finished, r.now().UTC())

	if err != nil {
		return fmt.Errorf("failed to record load run: %w", err)
	}

	return nil
}

// GetByID returns the latest recorded state of a run.
func (r *Repository) GetByID(ctx context.Context, id string) (*LoadRun, error) {
	query := `SELECT id, file, trading_day, status, messages, loaded, skipped, stalls, unmatched, rows_written, errors, started_at, finished_at
			  FROM load_runs WHERE id = $1 ORDER BY recorded_at DESC LIMIT 1`

	var (
		run                               LoadRun
		status                            string
		messages, loaded, skipped, stalls int64
		unmatched, rowsWritten, errs      int64
		finished                          *time.Time
	)

	err := r.client.QueryRow(ctx, query, id).Scan(
		&run.ID, &run.File, &run.TradingDay, &status,
		&messages, &loaded, &skipped, &stalls,
		&unmatched, &rowsWritten, &errs,
		&run.StartedAt, &finished,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get load run: %w", err)
	}

	run.Status = Status(status)
	run.Messages = uint64(messages)
	run.Loaded = uint64(loaded)
	run.Skipped = uint64(skipped)
	run.Stalls = uint64(stalls)
	run.Unmatched = uint64(unmatched)
	run.RowsWritten = uint64(rowsWritten)
	run.Errors = uint64(errs)
	if finished != nil {
		run.FinishedAt = *finished
	}

	return &run, nil
}
