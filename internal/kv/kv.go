// Package kv is a Postgres-backed blob store: codec-encoded block payloads
// keyed by block number. Grounded on the reference implementation's sqlx
// KV trait (get/set on a single (k INTEGER, v BYTEA) table), rebuilt here
// on database/sql and github.com/lib/pq.
package kv

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

// Store persists opaque byte blobs under a uint32 key.
type Store interface {
	Get(ctx context.Context, k uint32) ([]byte, bool, error)
	Set(ctx context.Context, k uint32, v []byte) error
}

// PostgresStore is a Store backed by a single Postgres table.
type PostgresStore struct {
	db    *sql.DB
	table string
}

// Open connects to databaseURL and ensures table exists, creating it if
// necessary. The caller owns the returned *PostgresStore and should Close
// it when done.
func Open(ctx context.Context, databaseURL, table string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("kv: open: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("kv: ping: %w", err)
	}

	createStmt := fmt.Sprintf(
		`CREATE TABLE IF NOT EXISTS %s ("k" INTEGER, "v" BYTEA, PRIMARY KEY ("k"))`, table)
	if _, err := db.ExecContext(ctx, createStmt); err != nil {
		db.Close()
		return nil, fmt.Errorf("kv: create table: %w", err)
	}

	return &PostgresStore{db: db, table: table}, nil
}

// Close releases the underlying connection pool.
func (s *PostgresStore) Close() error { return s.db.Close() }

// Get returns the stored bytes for k, or ok=false if no row exists.
func (s *PostgresStore) Get(ctx context.Context, k uint32) ([]byte, bool, error) {
	query := fmt.Sprintf(`SELECT v FROM %s WHERE k=$1 LIMIT 1`, s.table)
	var v []byte
	err := s.db.QueryRowContext(ctx, query, int32(k)).Scan(&v)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("kv: get %d: %w", k, err)
	}
	return v, true, nil
}

// Set inserts or replaces the value stored under k.
func (s *PostgresStore) Set(ctx context.Context, k uint32, v []byte) error {
	query := fmt.Sprintf(
		`INSERT INTO %s (k, v) VALUES ($1, $2) ON CONFLICT (k) DO UPDATE SET v=$2`, s.table)
	if _, err := s.db.ExecContext(ctx, query, int32(k), v); err != nil {
		return fmt.Errorf("kv: set %d: %w", k, err)
	}
	return nil
}

var _ Store = (*PostgresStore)(nil)
