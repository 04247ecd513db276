package migration

import (
	"context"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/muhammadchandra19/nasdaq-itch/pkg/logger"
	"github.com/muhammadchandra19/nasdaq-itch/pkg/questdb"
)

const (
	directionUp   = "up"
	directionDown = "down"
)

// Migration represents a database migration
type Migration struct {
	ID        string
	Name      string
	Timestamp time.Time
	UpSQL     string
	DownSQL   string
}

// Runner applies migrations read from an fs.FS to QuestDB.
//
// QuestDB has no row deletes, so the schema_migrations table is an append-only
// journal: the latest direction recorded for an id decides whether it is applied.
type Runner struct {
	client questdb.QuestDBClient
	source fs.FS
	logger logger.Interface
}

// NewRunner creates a new migration runner reading *.up.sql / *.down.sql from source.
func NewRunner(client questdb.QuestDBClient, source fs.FS, log logger.Interface) *Runner {
	return &Runner{
		client: client,
		source: source,
		logger: log,
	}
}

// EnsureMigrationTable creates the schema_migrations journal if it doesn't exist
func (r *Runner) EnsureMigrationTable(ctx context.Context) error {
	return r.client.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			id SYMBOL,
			name STRING,
			direction SYMBOL,
			applied_at TIMESTAMP
		) TIMESTAMP(applied_at) PARTITION BY MONTH;
	`)
}

// GetAppliedMigrations returns the ids whose latest journal entry is "up".
func (r *Runner) GetAppliedMigrations(ctx context.Context) (map[string]bool, error) {
	rows, err := r.client.Query(ctx, "SELECT id, direction FROM schema_migrations ORDER BY applied_at")
	if err != nil {
		return nil, fmt.Errorf("failed to read schema_migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[string]bool)
	for rows.Next() {
		var id, direction string
		if err := rows.Scan(&id, &direction); err != nil {
			return nil, fmt.Errorf("failed to scan schema_migrations: %w", err)
		}
		applied[id] = direction == directionUp
	}

	return applied, rows.Err()
}

// LoadMigrations loads all migrations from the source, ordered by id.
func (r *Runner) LoadMigrations() ([]Migration, error) {
	upFiles, err := fs.Glob(r.source, "*.up.sql")
	if err != nil {
		return nil, err
	}
	sort.Strings(upFiles)

	migrations := make([]Migration, 0, len(upFiles))
	for _, upFile := range upFiles {
		m, err := r.parseMigration(upFile)
		if err != nil {
			return nil, fmt.Errorf("failed to parse migration %s: %w", upFile, err)
		}
		migrations = append(migrations, m)
	}

	return migrations, nil
}

func (r *Runner) parseMigration(upFile string) (Migration, error) {
	upContent, err := fs.ReadFile(r.source, upFile)
	if err != nil {
		return Migration{}, err
	}

	id := strings.TrimSuffix(path.Base(upFile), ".up.sql")
	name := id
	timestamp := time.Unix(0, 0).UTC()

	// Format: YYYYMMDDHHMMSS_name
	if stamp, rest, ok := strings.Cut(id, "_"); ok {
		name = rest
		if ts, err := time.Parse("20060102150405", stamp); err == nil {
			timestamp = ts
		}
	}

	var downSQL string
	downFile := strings.TrimSuffix(upFile, ".up.sql") + ".down.sql"
	if downContent, err := fs.ReadFile(r.source, downFile); err == nil {
		downSQL = strings.TrimSpace(string(downContent))
	}

	return Migration{
		ID:        id,
		Name:      name,
		Timestamp: timestamp,
		UpSQL:     strings.TrimSpace(string(upContent)),
		DownSQL:   downSQL,
	}, nil
}

// MigrateUp applies pending migrations; steps <= 0 applies all of them.
func (r *Runner) MigrateUp(ctx context.Context, steps int) (int, error) {
	migrations, err := r.LoadMigrations()
	if err != nil {
		return 0, err
	}

	applied, err := r.GetAppliedMigrations(ctx)
	if err != nil {
		return 0, err
	}

	var toApply []Migration
	for _, m := range migrations {
		if !applied[m.ID] {
			toApply = append(toApply, m)
		}
	}
	if steps > 0 && len(toApply) > steps {
		toApply = toApply[:steps]
	}

	done := 0
	for _, m := range toApply {
		if m.UpSQL == "" {
			r.logger.WarnContext(ctx, "migration has no up statements", logger.Field{Key: "migration", Value: m.ID})
			continue
		}

		if err := r.execAll(ctx, m.UpSQL); err != nil {
			return done, fmt.Errorf("failed to apply migration %s: %w", m.ID, err)
		}
		if err := r.record(ctx, m, directionUp); err != nil {
			return done, err
		}

		r.logger.InfoContext(ctx, "applied migration", logger.Field{Key: "migration", Value: m.ID})
		done++
	}

	return done, nil
}

// MigrateDown reverts the most recent applied migrations.
func (r *Runner) MigrateDown(ctx context.Context, steps int) (int, error) {
	if steps <= 0 {
		return 0, fmt.Errorf("steps must be greater than 0 for down migrations")
	}

	migrations, err := r.LoadMigrations()
	if err != nil {
		return 0, err
	}

	applied, err := r.GetAppliedMigrations(ctx)
	if err != nil {
		return 0, err
	}

	var toRevert []Migration
	for i := len(migrations) - 1; i >= 0 && len(toRevert) < steps; i-- {
		if applied[migrations[i].ID] {
			toRevert = append(toRevert, migrations[i])
		}
	}

	done := 0
	for _, m := range toRevert {
		if m.DownSQL == "" {
			return done, fmt.Errorf("no down statements for migration %s", m.ID)
		}

		if err := r.execAll(ctx, m.DownSQL); err != nil {
			return done, fmt.Errorf("failed to revert migration %s: %w", m.ID, err)
		}
		if err := r.record(ctx, m, directionDown); err != nil {
			return done, err
		}

		r.logger.InfoContext(ctx, "reverted migration", logger.Field{Key: "migration", Value: m.ID})
		done++
	}

	return done, nil
}

func (r *Runner) record(ctx context.Context, m Migration, direction string) error {
	err := r.client.Exec(ctx,
		"INSERT INTO schema_migrations (id, name, direction, applied_at) VALUES ($1, $2, $3, now())",
		m.ID, m.Name, direction,
	)
	if err != nil {
		return fmt.Errorf("failed to record migration %s: %w", m.ID, err)
	}
	return nil
}

// execAll runs each ';'-terminated statement separately; QuestDB's PG wire
// endpoint rejects multi-statement strings.
func (r *Runner) execAll(ctx context.Context, sql string) error {
	for _, stmt := range SplitStatements(sql) {
		if err := r.client.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// SplitStatements drops comment lines and splits on trailing semicolons.
func SplitStatements(sql string) []string {
	var (
		statements []string
		current    strings.Builder
	)

	flush := func() {
		if stmt := strings.TrimSpace(current.String()); stmt != "" {
			statements = append(statements, strings.TrimSuffix(stmt, ";"))
		}
		current.Reset()
	}

	for _, line := range strings.Split(sql, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "--") {
			continue
		}
		current.WriteString(line)
		current.WriteString("\n")
		if strings.HasSuffix(line, ";") {
			flush()
		}
	}
	flush()

	return statements
}
