// Package postgres implements store.RosterStore backed by PostgreSQL, for
// deployments that want the roster in a shared database instead of a local
// snapshot file. Save keeps the whole-snapshot contract: the table is
// replaced in a single transaction on every write.
package postgres

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq"

	"github.com/alfredjeanlab/rollcall/internal/model"
	"github.com/alfredjeanlab/rollcall/internal/store"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Store implements store.RosterStore backed by a PostgreSQL database.
type Store struct {
	db *sql.DB
}

// Compile-time check that Store implements store.RosterStore.
var _ store.RosterStore = (*Store)(nil)

// New opens a connection to the PostgreSQL database at the given URL,
// configures the connection pool, and runs any pending migrations.
func New(databaseURL string) (*Store, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{db: db}, nil
}

func runMigrations(db *sql.DB) error {
	sourceDriver, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("create migration source: %w", err)
	}

	dbDriver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("create migration db driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", sourceDriver, "postgres", dbDriver)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("apply migrations: %w", err)
	}

	return nil
}

// Load returns the roster in stored display order. Query failures degrade
// to an empty roster, matching the snapshot store's start-fresh contract.
func (s *Store) Load(ctx context.Context) ([]model.Student, error) {
	students, err := queryLoadRoster(ctx, s.db)
	if err != nil {
		return nil, nil
	}
	return students, nil
}

// Save replaces the entire roster inside one transaction.
func (s *Store) Save(ctx context.Context, students []model.Student) error {
	return queryReplaceRoster(ctx, s.db, students)
}

// Clear removes every row.
func (s *Store) Clear(ctx context.Context) error {
	return queryClearRoster(ctx, s.db)
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}
