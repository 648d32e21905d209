package database

import (
	"context"
	"database/sql"
	"fmt"
	"slices"
	"sort"
	"strings"
	"time"
)

type MigrationStatus struct {
	ID          string
	Description string
	Applied     bool
	AppliedAt   *time.Time
	Batch       int
}

// Runner applies and reverts migrations, recording every applied migration
// in schema_migrations together with the batch it ran in.
type Runner struct {
	db     *sql.DB
	driver string
}

func NewRunner(db *sql.DB, driver string) *Runner {
	return &Runner{db: db, driver: sqlDriver(driver)}
}

const migrationTableSQL = `
CREATE TABLE IF NOT EXISTS schema_migrations (
    id VARCHAR(255) PRIMARY KEY,
    description TEXT NOT NULL,
    applied_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    batch INTEGER NOT NULL
);
`

const migrationTableIndexSQL = `
CREATE INDEX IF NOT EXISTS idx_schema_migrations_batch ON schema_migrations(batch);
`

func (r *Runner) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, migrationTableSQL); err != nil {
		return ErrFailedToCreateSchemaMigrationsTable.WithCause(err)
	}
	if _, err := r.db.ExecContext(ctx, migrationTableIndexSQL); err != nil {
		return ErrFailedToCreateSchemaMigrationsIndex.WithCause(err)
	}
	return nil
}

// Pending returns the migrations not applied yet, in the order Migrate would
// run them.
func (r *Runner) Pending(ctx context.Context, migrations []Migration) ([]Migration, error) {
	sorted, err := sortMigrations(migrations)
	if err != nil {
		return nil, err
	}

	if err := r.Init(ctx); err != nil {
		return nil, err
	}

	applied, err := r.applied(ctx)
	if err != nil {
		return nil, err
	}

	done := make(map[string]bool, len(applied))
	for _, a := range applied {
		done[a.ID] = true
	}

	var pending []Migration
	for _, m := range sorted {
		if !done[m.ID()] {
			pending = append(pending, m)
		}
	}
	return pending, nil
}

// Migrate applies every pending migration in a single new batch. Either all
// of them are recorded or none is.
func (r *Runner) Migrate(ctx context.Context, migrations []Migration) ([]Migration, error) {
	pending, err := r.Pending(ctx, migrations)
	if err != nil || len(pending) == 0 {
		return nil, err
	}

	applied, err := r.applied(ctx)
	if err != nil {
		return nil, err
	}
	batch := nextBatch(applied)

	err = r.transaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		for _, m := range pending {
			if err := r.up(ctx, tx, m, batch); err != nil {
				return ErrMigrationFailed.
					WithDetail("id", m.ID()).
					WithDetail("reason", err.Error()).
					WithCause(err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return pending, nil
}

// Rollback reverts the last steps batches, newest migration first.
func (r *Runner) Rollback(ctx context.Context, steps int, migrations []Migration) ([]MigrationStatus, error) {
	if steps < 1 {
		return nil, ErrInvalidStep.WithDetail("step", steps)
	}
	return r.revert(ctx, steps, migrations)
}

// Reset reverts every applied migration.
func (r *Runner) Reset(ctx context.Context, migrations []Migration) ([]MigrationStatus, error) {
	return r.revert(ctx, 0, migrations)
}

// Status lists known and applied migrations ordered by ID. Applied
// migrations missing from the given list are reported too.
func (r *Runner) Status(ctx context.Context, migrations []Migration) ([]MigrationStatus, error) {
	sorted, err := sortMigrations(migrations)
	if err != nil {
		return nil, err
	}

	if err := r.Init(ctx); err != nil {
		return nil, err
	}

	applied, err := r.applied(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]MigrationStatus, len(applied))
	for _, a := range applied {
		byID[a.ID] = a
	}

	statuses := make([]MigrationStatus, 0, len(sorted)+len(applied))
	for _, m := range sorted {
		if a, ok := byID[m.ID()]; ok {
			statuses = append(statuses, a)
			delete(byID, m.ID())
			continue
		}
		statuses = append(statuses, MigrationStatus{ID: m.ID(), Description: m.Description()})
	}
	for _, a := range byID {
		statuses = append(statuses, a)
	}

	sort.SliceStable(statuses, func(i, j int) bool {
		return statuses[i].ID < statuses[j].ID
	})
	return statuses, nil
}

func (r *Runner) revert(ctx context.Context, batches int, migrations []Migration) ([]MigrationStatus, error) {
	if err := r.Init(ctx); err != nil {
		return nil, err
	}

	applied, err := r.applied(ctx)
	if err != nil {
		return nil, err
	}

	list := rollbackList(applied, batches)
	if len(list) == 0 {
		return nil, nil
	}

	byID := make(map[string]Migration, len(migrations))
	for _, m := range migrations {
		byID[m.ID()] = m
	}

	err = r.transaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		for _, status := range list {
			if err := r.down(ctx, tx, status, byID[status.ID]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (r *Runner) up(ctx context.Context, tx *sql.Tx, migration Migration, batch int) error {
	for _, query := range migration.Up() {
		if !executable(query) {
			continue
		}
		if _, err := tx.ExecContext(ctx, query); err != nil {
			return ErrFailedToExecuteQuery.
				WithDetail("query", query).
				WithCause(err)
		}
	}

	_, err := tx.ExecContext(ctx,
		r.bind("INSERT INTO schema_migrations (id, description, batch) VALUES (?, ?, ?)"),
		migration.ID(), migration.Description(), batch)
	return err
}

func (r *Runner) down(ctx context.Context, tx *sql.Tx, status MigrationStatus, migration Migration) error {
	if migration != nil {
		for _, query := range migration.Down() {
			if !executable(query) {
				continue
			}
			if _, err := tx.ExecContext(ctx, query); err != nil {
				return ErrMigrationFailed.
					WithDetail("id", status.ID).
					WithDetail("reason", "rollback query failed: "+err.Error()).
					WithCause(err)
			}
		}
	}

	if _, err := tx.ExecContext(ctx, r.bind("DELETE FROM schema_migrations WHERE id = ?"), status.ID); err != nil {
		return ErrMigrationFailed.
			WithDetail("id", status.ID).
			WithDetail("reason", "failed to delete migration record").
			WithCause(err)
	}
	return nil
}

func (r *Runner) applied(ctx context.Context) ([]MigrationStatus, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id, description, applied_at, batch FROM schema_migrations ORDER BY batch, id")
	if err != nil {
		return nil, ErrFailedToGetAppliedMigrations.WithCause(err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var migrations []MigrationStatus
	for rows.Next() {
		var (
			m         MigrationStatus
			appliedAt time.Time
		)
		if err := rows.Scan(&m.ID, &m.Description, &appliedAt, &m.Batch); err != nil {
			return nil, ErrFailedToGetAppliedMigrations.WithCause(err)
		}
		m.Applied = true
		m.AppliedAt = &appliedAt
		migrations = append(migrations, m)
	}
	if err := rows.Err(); err != nil {
		return nil, ErrFailedToGetAppliedMigrations.WithCause(err)
	}
	return migrations, nil
}

func (r *Runner) transaction(ctx context.Context, fn func(ctx context.Context, tx *sql.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return ErrTransactionFailed.WithDetail("reason", "failed to begin").WithCause(err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(ctx, tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return ErrTransactionFailed.
				WithDetail("reason", "failed to rollback after error").
				WithCause(fmt.Errorf("original: %w, rollback: %v", err, rbErr))
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return ErrTransactionFailed.WithDetail("reason", "failed to commit").WithCause(err)
	}
	return nil
}

func (r *Runner) bind(query string) string {
	return Rebind(r.driver, query)
}

func sortMigrations(migrations []Migration) ([]Migration, error) {
	seen := make(map[string]bool, len(migrations))
	for _, m := range migrations {
		if seen[m.ID()] {
			return nil, ErrDuplicateMigration.WithDetail("id", m.ID())
		}
		seen[m.ID()] = true
	}

	sorted := slices.Clone(migrations)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].ID() < sorted[j].ID()
	})
	return sorted, nil
}

// rollbackList picks the migrations of the newest batches, newest first. A
// batches value below one selects everything.
func rollbackList(applied []MigrationStatus, batches int) []MigrationStatus {
	var numbers []int
	for _, a := range applied {
		if !slices.Contains(numbers, a.Batch) {
			numbers = append(numbers, a.Batch)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(numbers)))
	if batches > 0 && batches < len(numbers) {
		numbers = numbers[:batches]
	}

	var list []MigrationStatus
	for _, a := range applied {
		if slices.Contains(numbers, a.Batch) {
			list = append(list, a)
		}
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].Batch > list[j].Batch ||
			(list[i].Batch == list[j].Batch && list[i].ID > list[j].ID)
	})
	return list
}

func nextBatch(applied []MigrationStatus) int {
	maxBatch := 0
	for _, m := range applied {
		if m.Batch > maxBatch {
			maxBatch = m.Batch
		}
	}
	return maxBatch + 1
}

func executable(query string) bool {
	trimmed := strings.TrimSpace(query)
	return trimmed != "" && !strings.HasPrefix(trimmed, "--")
}
