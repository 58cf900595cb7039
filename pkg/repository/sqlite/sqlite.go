package sqlite

import (
	"database/sql"
	"embed"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/m-mizutani/goerr/v2"
	_ "github.com/mattn/go-sqlite3"

	"github.com/focuspoint-lab/focuspoint/pkg/domain/interfaces"
	"github.com/focuspoint-lab/focuspoint/pkg/utils/dates"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// ErrNotFound is returned when a record does not exist
var ErrNotFound = interfaces.ErrRecordNotFound

// dayLayout is the TEXT encoding of calendar dates in the database
const dayLayout = "2006-01-02"

// SQLite is the sqlite-backed repository
type SQLite struct {
	db           *sql.DB
	categories   *categoryRepository
	projects     *projectRepository
	milestones   *milestoneRepository
	dependencies *dependencyRepository
	actions      *actionRepository
	reports      *reportFileRepository
}

var _ interfaces.Repository = &SQLite{}

// New opens (or creates) the sqlite database at path and runs all
// pending migrations.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open sqlite database", goerr.V("path", path))
	}

	if err := runMigrations(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &SQLite{
		db:           db,
		categories:   &categoryRepository{db: db},
		projects:     &projectRepository{db: db},
		milestones:   &milestoneRepository{db: db},
		dependencies: &dependencyRepository{db: db},
		actions:      &actionRepository{db: db},
		reports:      &reportFileRepository{db: db},
	}, nil
}

// Migrate runs all pending migrations against the database at path
// without keeping the connection open.
func Migrate(path string) error {
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on")
	if err != nil {
		return goerr.Wrap(err, "failed to open sqlite database", goerr.V("path", path))
	}
	defer db.Close()

	return runMigrations(db)
}

func runMigrations(db *sql.DB) error {
	driver, err := migratesqlite.WithInstance(db, &migratesqlite.Config{})
	if err != nil {
		return goerr.Wrap(err, "failed to create migration driver")
	}

	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return goerr.Wrap(err, "failed to load embedded migrations")
	}

	m, err := migrate.NewWithInstance("iofs", source, "sqlite3", driver)
	if err != nil {
		return goerr.Wrap(err, "failed to create migrator")
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return goerr.Wrap(err, "failed to run migrations")
	}
	return nil
}

func (s *SQLite) Categories() interfaces.CategoryRepository {
	return s.categories
}

func (s *SQLite) Projects() interfaces.ProjectRepository {
	return s.projects
}

func (s *SQLite) Milestones() interfaces.MilestoneRepository {
	return s.milestones
}

func (s *SQLite) Dependencies() interfaces.DependencyRepository {
	return s.dependencies
}

func (s *SQLite) Actions() interfaces.ActionRepository {
	return s.actions
}

func (s *SQLite) Reports() interfaces.ReportFileRepository {
	return s.reports
}

func (s *SQLite) Close() error {
	return s.db.Close()
}

// encodeDay formats a calendar date for storage
func encodeDay(t time.Time) string {
	return dates.Midnight(t).Format(dayLayout)
}

// decodeDay parses a stored calendar date
func decodeDay(s string) (time.Time, error) {
	t, err := time.ParseInLocation(dayLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, goerr.Wrap(err, "corrupted date column", goerr.V("value", s))
	}
	return t, nil
}

// limitClause appends a LIMIT clause when limit is positive
func limitClause(query string, limit int) string {
	if limit > 0 {
		return fmt.Sprintf("%s LIMIT %d", query, limit)
	}
	return query
}
