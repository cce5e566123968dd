package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"github.com/fairlink/careerfair-api/internal/infrastructure/db/sqlite/migrations"
)

const timeLayout = "2006-01-02 15:04:05"

// Store wraps the SQLite database handle shared by the repositories.
type Store struct {
	DB     *sql.DB
	logger zerolog.Logger
}

// Open creates the database file if needed, applies pending migrations and
// seeds sample data. A migration failure is logged but does not prevent the
// store from being returned: the server still serves whatever the current
// schema supports.
func Open(ctx context.Context, path string, logger zerolog.Logger) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// A single connection sidesteps SQLITE_BUSY between concurrent writers.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set busy_timeout: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	store := &Store{DB: db, logger: logger}
	if err := store.migrate(ctx); err != nil {
		logger.Error().Err(err).Msg("database migration failed, continuing with current schema")
	}
	if err := store.seedSampleJobs(ctx); err != nil {
		logger.Error().Err(err).Msg("seeding sample job opportunities failed")
	}

	logger.Info().Str("path", path).Msg("connected to SQLite database")
	return store, nil
}

func (s *Store) migrate(ctx context.Context) error {
	migrations.Logger = s.logger

	goose.SetBaseFS(migrations.Embed)
	goose.SetLogger(gooseLogger{s.logger})
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set dialect: %w", err)
	}
	if err := goose.UpContext(ctx, s.DB, "."); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

// seedSampleJobs inserts a handful of job opportunities when the table is
// empty. It runs on every startup, outside the migration ledger, so an
// emptied table is repopulated on the next boot.
func (s *Store) seedSampleJobs(ctx context.Context) error {
	var count int
	if err := s.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM job_opportunities`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, job := range sampleJobs {
		_, err := s.DB.ExecContext(ctx, `
			INSERT INTO job_opportunities (title, description, salaryMin, salaryMax, salaryCurrency, status)
			VALUES (?, ?, ?, ?, ?, 'active')`,
			job.title, job.description, job.salaryMin, job.salaryMax, job.currency,
		)
		if err != nil {
			return err
		}
	}
	s.logger.Info().Int("count", len(sampleJobs)).Msg("seeded sample job opportunities")
	return nil
}

type sampleJob struct {
	title       string
	description string
	salaryMin   int64
	salaryMax   int64
	currency    string
}

// The seeded postings mirror the launch catalog: no owning company, no fair.
var sampleJobs = []sampleJob{
	{
		title:       "Senior Software Developer",
		description: "Lead development of complex software solutions, mentor junior developers, and architect scalable systems. Requires 5+ years of experience in modern programming languages and frameworks.",
		salaryMin:   120000,
		salaryMax:   180000,
		currency:    "USD",
	},
	{
		title:       "Junior Software Developer",
		description: "Build and maintain web applications, collaborate with cross-functional teams, and learn from experienced developers. Perfect for recent graduates or developers with 1-2 years of experience.",
		salaryMin:   60000,
		salaryMax:   90000,
		currency:    "USD",
	},
	{
		title:       "Software Debugger",
		description: "Identify, analyze, and resolve software bugs and issues. Work closely with development teams to ensure code quality and system stability. Strong problem-solving skills required.",
		salaryMin:   70000,
		salaryMax:   100000,
		currency:    "USD",
	},
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.DB.Close()
}

// Ping reports whether the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.DB.PingContext(ctx)
}

// gooseLogger adapts zerolog to goose's logger interface.
type gooseLogger struct {
	l zerolog.Logger
}

func (g gooseLogger) Fatalf(format string, v ...interface{}) {
	g.l.Error().Msgf(format, v...)
}

func (g gooseLogger) Printf(format string, v ...interface{}) {
	g.l.Debug().Msgf(format, v...)
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

// parseTime accepts the layouts that have historically landed in the
// database: the CURRENT_TIMESTAMP format plus RFC 3339 variants.
func parseTime(s string) time.Time {
	for _, layout := range []string{timeLayout, time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
