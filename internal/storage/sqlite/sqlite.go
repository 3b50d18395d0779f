// Package sqlite implements storage.Store on a single SQLite table.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/Domje/Arc-Looterputer/internal/logger"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS kv_store (
	key        TEXT PRIMARY KEY,
	value      BLOB NOT NULL,
	updated_at INTEGER NOT NULL
)`

const (
	queryGet    = `SELECT value FROM kv_store WHERE key = ?`
	queryUpsert = `INSERT INTO kv_store (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	queryDelete = `DELETE FROM kv_store WHERE key = ?`
)

// Error messages
const (
	ErrMsgOpenFailed   = "failed to open sqlite database %s: %w"
	ErrMsgSchemaFailed = "failed to create kv_store table: %w"
	ErrMsgGetFailed    = "failed to read key %s: %w"
	ErrMsgSetFailed    = "failed to write key %s: %w"
	ErrMsgDeleteFailed = "failed to delete key %s: %w"
)

// LogMsgOpened is logged once the database is ready.
const LogMsgOpened = "SQLite store opened"

// Store is a storage.Store backed by a SQLite file.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path. Use ":memory:" for a
// throwaway database.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf(ErrMsgOpenFailed, path, err)
	}
	// SQLite serialises writers; one connection also keeps ":memory:" databases
	// from splitting across connections.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf(ErrMsgSchemaFailed, err)
	}

	logger.Info(LogMsgOpened, "path", path)
	return &Store{db: db}, nil
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, queryGet, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf(ErrMsgGetFailed, key, err)
	}
	return value, true, nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	if _, err := s.db.ExecContext(ctx, queryUpsert, key, value, time.Now().Unix()); err != nil {
		return fmt.Errorf(ErrMsgSetFailed, key, err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, queryDelete, key); err != nil {
		return fmt.Errorf(ErrMsgDeleteFailed, key, err)
	}
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Close() error {
	return s.db.Close()
}
