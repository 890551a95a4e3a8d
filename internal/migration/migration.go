package migration

import (
	"context"

	"econdash/internal/errors"

	"github.com/jmoiron/sqlx"
)

// MigrationRunner handles database schema migrations. Statements are kept to
// the SQL subset shared by postgres and sqlite.
type MigrationRunner struct {
	version string
}

// NewRunner creates a new migration runner
func NewRunner() *MigrationRunner {
	return &MigrationRunner{
		version: "1.0.0",
	}
}

// Version returns the migration version
func (r *MigrationRunner) Version() string {
	return r.version
}

// Run executes all database migrations in the correct order
func (r *MigrationRunner) Run(ctx context.Context, db *sqlx.DB) error {
	if err := r.createDashboardViewsTable(ctx, db); err != nil {
		return errors.DatabaseError("failed to create dashboard_views table", err)
	}

	if err := r.createComparisonsTable(ctx, db); err != nil {
		return errors.DatabaseError("failed to create comparisons table", err)
	}

	if err := r.createIndexes(ctx, db); err != nil {
		return errors.DatabaseError("failed to create indexes", err)
	}

	return nil
}

func (r *MigrationRunner) createDashboardViewsTable(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS dashboard_views (
			id VARCHAR(36) PRIMARY KEY,
			dashboard_key VARCHAR(16) NOT NULL,
			viewed_at_ms BIGINT NOT NULL
		)
	`)
	return err
}

func (r *MigrationRunner) createComparisonsTable(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS comparisons (
			id VARCHAR(36) PRIMARY KEY,
			country1 VARCHAR(64) NOT NULL,
			country2 VARCHAR(64) NOT NULL,
			metrics TEXT NOT NULL,
			created_at_ms BIGINT NOT NULL
		)
	`)
	return err
}

func (r *MigrationRunner) createIndexes(ctx context.Context, db *sqlx.DB) error {
	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_dashboard_views_key ON dashboard_views(dashboard_key)`,
		`CREATE INDEX IF NOT EXISTS idx_dashboard_views_viewed_at ON dashboard_views(viewed_at_ms)`,
		`CREATE INDEX IF NOT EXISTS idx_comparisons_created_at ON comparisons(created_at_ms)`,
	}
	for _, stmt := range indexes {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
