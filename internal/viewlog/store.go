// Package viewlog records which dashboards and comparisons visitors open.
package viewlog

import (
	"context"
	"log"
	"strings"
	"time"

	"econdash/internal/config"
	"econdash/internal/errors"
	"econdash/internal/migration"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// View is one dashboard render
type View struct {
	ID           string    `db:"id" json:"id"`
	DashboardKey string    `db:"dashboard_key" json:"dashboard_key"`
	ViewedAt     time.Time `db:"-" json:"viewed_at"`
	ViewedAtMs   int64     `db:"viewed_at_ms" json:"-"`
}

// Count is the number of views of one dashboard
type Count struct {
	DashboardKey string `db:"dashboard_key" json:"dashboard_key"`
	Views        int64  `db:"views" json:"views"`
}

// Comparison is one generated country comparison
type Comparison struct {
	ID          string    `db:"id" json:"id"`
	Country1    string    `db:"country1" json:"country1"`
	Country2    string    `db:"country2" json:"country2"`
	Metrics     string    `db:"metrics" json:"-"`
	CreatedAtMs int64     `db:"created_at_ms" json:"-"`
	CreatedAt   time.Time `db:"-" json:"created_at"`
}

// MetricNames splits the stored metric list
func (c Comparison) MetricNames() []string {
	if c.Metrics == "" {
		return nil
	}
	return strings.Split(c.Metrics, "|")
}

// Store persists view events through sqlx
type Store struct {
	db  *sqlx.DB
	now func() time.Time
}

// Open connects to the view log database and applies migrations.
// An empty sqlite URL opens a private in-memory database.
func Open(ctx context.Context, cfg config.DatabaseConfig) (*Store, error) {
	driver, url := cfg.Driver, cfg.URL
	if driver == "" {
		driver = config.InferDriver(url)
	}
	if driver == config.DriverSQLite && url == "" {
		url = ":memory:"
	}

	db, err := sqlx.ConnectContext(ctx, driver, url)
	if err != nil {
		return nil, errors.DatabaseError("failed to connect to view log database", err)
	}
	if driver == config.DriverSQLite {
		// one connection keeps an in-memory database alive and serialises writers
		db.SetMaxOpenConns(1)
	}

	runner := migration.NewRunner()
	if err := runner.Run(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	log.Printf("[ViewLog] Connected using %s driver (schema %s)", driver, runner.Version())
	return NewStore(db), nil
}

// NewStore wraps an already migrated database
func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db, now: time.Now}
}

// Close closes the underlying database
func (s *Store) Close() error {
	return s.db.Close()
}

// RecordView stores one dashboard render
func (s *Store) RecordView(ctx context.Context, dashboardKey string) (*View, error) {
	now := s.now()
	view := &View{
		ID:           uuid.NewString(),
		DashboardKey: dashboardKey,
		ViewedAt:     time.UnixMilli(now.UnixMilli()),
		ViewedAtMs:   now.UnixMilli(),
	}

	query := s.db.Rebind(`INSERT INTO dashboard_views (id, dashboard_key, viewed_at_ms) VALUES (?, ?, ?)`)
	if _, err := s.db.ExecContext(ctx, query, view.ID, view.DashboardKey, view.ViewedAtMs); err != nil {
		return nil, errors.DatabaseError("failed to record dashboard view", err)
	}
	return view, nil
}

// Counts returns view totals per dashboard, most viewed first
func (s *Store) Counts(ctx context.Context) ([]Count, error) {
	var counts []Count
	err := s.db.SelectContext(ctx, &counts, `
		SELECT dashboard_key, COUNT(*) AS views
		FROM dashboard_views
		GROUP BY dashboard_key
		ORDER BY views DESC, dashboard_key ASC
	`)
	if err != nil {
		return nil, errors.DatabaseError("failed to count dashboard views", err)
	}
	return counts, nil
}

// Recent returns the latest views, newest first
func (s *Store) Recent(ctx context.Context, limit int) ([]View, error) {
	var views []View
	query := s.db.Rebind(`
		SELECT id, dashboard_key, viewed_at_ms
		FROM dashboard_views
		ORDER BY viewed_at_ms DESC, id ASC
		LIMIT ?
	`)
	if err := s.db.SelectContext(ctx, &views, query, limit); err != nil {
		return nil, errors.DatabaseError("failed to list recent views", err)
	}
	for i := range views {
		views[i].ViewedAt = time.UnixMilli(views[i].ViewedAtMs)
	}
	return views, nil
}

// RecordComparison stores which countries and metrics were compared
func (s *Store) RecordComparison(ctx context.Context, country1, country2 string, metrics []string) (*Comparison, error) {
	now := s.now()
	c := &Comparison{
		ID:          uuid.NewString(),
		Country1:    country1,
		Country2:    country2,
		Metrics:     strings.Join(metrics, "|"),
		CreatedAtMs: now.UnixMilli(),
		CreatedAt:   time.UnixMilli(now.UnixMilli()),
	}

	query := s.db.Rebind(`INSERT INTO comparisons (id, country1, country2, metrics, created_at_ms) VALUES (?, ?, ?, ?, ?)`)
	if _, err := s.db.ExecContext(ctx, query, c.ID, c.Country1, c.Country2, c.Metrics, c.CreatedAtMs); err != nil {
		return nil, errors.DatabaseError("failed to record comparison", err)
	}
	return c, nil
}

// RecentComparisons returns the latest comparisons, newest first
func (s *Store) RecentComparisons(ctx context.Context, limit int) ([]Comparison, error) {
	var comparisons []Comparison
	query := s.db.Rebind(`
		SELECT id, country1, country2, metrics, created_at_ms
		FROM comparisons
		ORDER BY created_at_ms DESC, id ASC
		LIMIT ?
	`)
	if err := s.db.SelectContext(ctx, &comparisons, query, limit); err != nil {
		return nil, errors.DatabaseError("failed to list comparisons", err)
	}
	for i := range comparisons {
		comparisons[i].CreatedAt = time.UnixMilli(comparisons[i].CreatedAtMs)
	}
	return comparisons, nil
}
