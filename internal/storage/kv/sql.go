package kv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/futurama-catalog/internal/dbx"
	"github.com/dmitrijs2005/futurama-catalog/internal/storage/kv/migrations"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

// Dialect describes how to talk to one SQL engine.
type Dialect struct {
	Name       string // goose dialect and migrations subdirectory
	Driver     string // database/sql driver name
	rebind     func(string) string
	lockSuffix string
}

var (
	// SQLite uses the pure-Go modernc driver.
	SQLite = Dialect{Name: "sqlite3", Driver: "sqlite", rebind: func(q string) string { return q }}

	// Postgres uses pgx through its database/sql adapter.
	Postgres = Dialect{Name: "postgres", Driver: "pgx", rebind: dbx.RebindDollar, lockSuffix: " FOR UPDATE"}
)

func (d Dialect) migrationsDir() string {
	if d.Name == Postgres.Name {
		return "postgres"
	}
	return "sqlite"
}

// SQLStore implements Store over a "metadata" table.
type SQLStore struct {
	db      *sql.DB
	dialect Dialect
}

// NewSQLStore wraps an already migrated database.
func NewSQLStore(db *sql.DB, dialect Dialect) *SQLStore {
	return &SQLStore{db: db, dialect: dialect}
}

// RunMigrations applies the embedded goose migrations for the dialect.
func RunMigrations(ctx context.Context, db *sql.DB, dialect Dialect) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect(dialect.Name); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, dialect.migrationsDir())
}

// OpenSQL opens dsn with the dialect's driver, applies migrations and
// returns a ready store.
func OpenSQL(ctx context.Context, dialect Dialect, dsn string) (*SQLStore, error) {
	db, err := sql.Open(dialect.Driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	if dialect.Driver == SQLite.Driver {
		// a single connection serializes writers and keeps :memory: databases coherent
		db.SetMaxOpenConns(1)
	}

	if err := RunMigrations(ctx, db, dialect); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}
	return NewSQLStore(db, dialect), nil
}

// Close releases the underlying database.
func (s *SQLStore) Close() error {
	return s.db.Close()
}

// Get implements Store.
func (s *SQLStore) Get(ctx context.Context, key string) ([]byte, error) {
	return s.get(ctx, s.db, key, "")
}

// Set implements Store.
func (s *SQLStore) Set(ctx context.Context, key string, value []byte) error {
	return s.set(ctx, s.db, key, value)
}

// Update implements Store. The read and the write share one transaction.
// The row is claimed first so that the locking read has something to lock
// even when the key does not exist yet; an empty value reads as absent.
func (s *SQLStore) Update(ctx context.Context, key string, fn func(current []byte) ([]byte, error)) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.claim(ctx, tx, key); err != nil {
			return err
		}
		current, err := s.get(ctx, tx, key, s.dialect.lockSuffix)
		if err != nil {
			return err
		}
		if len(current) == 0 {
			current = nil
		}
		next, err := fn(current)
		if err != nil {
			return err
		}
		return s.set(ctx, tx, key, next)
	})
}

func (s *SQLStore) claim(ctx context.Context, q dbx.DBTX, key string) error {
	query := s.dialect.rebind(`INSERT INTO metadata (key, value) VALUES (?, ?) ON CONFLICT (key) DO NOTHING`)
	if _, err := q.ExecContext(ctx, query, key, []byte{}); err != nil {
		return fmt.Errorf("failed to claim kv[%s]: %w", key, err)
	}
	return nil
}

func (s *SQLStore) get(ctx context.Context, q dbx.DBTX, key, suffix string) ([]byte, error) {
	var value []byte
	query := s.dialect.rebind(`SELECT value FROM metadata WHERE key = ?` + suffix)
	err := q.QueryRowContext(ctx, query, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get kv[%s]: %w", key, err)
	}
	return value, nil
}

func (s *SQLStore) set(ctx context.Context, q dbx.DBTX, key string, value []byte) error {
	if value == nil {
		value = []byte{}
	}
	query := s.dialect.rebind(`
		INSERT INTO metadata (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`)
	if _, err := q.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to set kv[%s]: %w", key, err)
	}
	return nil
}
