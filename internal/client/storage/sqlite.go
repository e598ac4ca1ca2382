package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/ecocollect/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/ecocollect/internal/filex"

	_ "modernc.org/sqlite"
)

// SQLite persists values in a local database file through the metadata
// repository.
type SQLite struct {
	db   *sql.DB
	repo metadata.Repository
}

// OpenSQLite opens (creating if needed) the database at dsn and applies the
// schema migrations.
func OpenSQLite(ctx context.Context, dsn, namespace string) (*SQLite, error) {
	if _, err := filex.EnsureParentDir(dsn); err != nil {
		return nil, fmt.Errorf("failed to prepare data directory: %w", err)
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite: %w", err)
	}
	// one connection keeps ":memory:" databases shared across calls
	db.SetMaxOpenConns(1)

	if err := metadata.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return NewSQLite(db, metadata.NewSQLiteRepository(db, namespace)), nil
}

// NewSQLite wraps an already migrated database.
func NewSQLite(db *sql.DB, repo metadata.Repository) *SQLite {
	return &SQLite{db: db, repo: repo}
}

func (s *SQLite) Get(ctx context.Context, key string) (string, bool, error) {
	return s.repo.Get(ctx, key)
}

func (s *SQLite) Set(ctx context.Context, key, value string) error {
	return s.repo.Set(ctx, key, value)
}

func (s *SQLite) Remove(ctx context.Context, key string) error {
	return s.repo.Delete(ctx, key)
}

func (s *SQLite) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
