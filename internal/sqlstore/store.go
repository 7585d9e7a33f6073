// Package sqlstore implements the entity command interface against the
// application's local SQLite inventory database using bun.
package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	_ "github.com/mattn/go-sqlite3"

	"github.com/goliatone/go-query-cache/inventory"
)

// Store wraps the bun handle for the inventory database. One page-fetch
// method per entity family; each satisfies inventory.PageFetcher for its
// element type.
type Store struct {
	db *bun.DB
}

// Open opens (or creates) the SQLite database at dsn and returns a store
// over it. Use ":memory:" for an ephemeral database.
func Open(dsn string) (*Store, error) {
	sqldb, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	return NewStore(bun.NewDB(sqldb, sqlitedialect.New())), nil
}

// NewStore builds a store over an existing bun handle.
func NewStore(db *bun.DB) *Store {
	return &Store{db: db}
}

// DB exposes the underlying bun handle for write paths and migrations.
func (s *Store) DB() *bun.DB {
	return s.db
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// CreateSchema creates the inventory tables if they do not exist. The
// desktop application runs this at startup before any command is served.
func (s *Store) CreateSchema(ctx context.Context) error {
	models := []any{
		(*inventory.Product)(nil),
		(*inventory.Supplier)(nil),
		(*inventory.Customer)(nil),
		(*inventory.Invoice)(nil),
	}

	for _, model := range models {
		if _, err := s.db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("create table for %T: %w", model, err)
		}
	}
	return nil
}
