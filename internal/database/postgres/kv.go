// Package postgres implements storage.Store on a PostgreSQL kv_store table.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// KVStore is a storage.Store backed by a pgx pool. Closing the store closes
// the pool.
type KVStore struct {
	pool *pgxpool.Pool
}

// NewKVStore wraps a migrated pool.
func NewKVStore(pool *pgxpool.Pool) *KVStore {
	return &KVStore{pool: pool}
}

func (s *KVStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value string
	err := s.pool.QueryRow(ctx, queryGet, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf(ErrMsgGetFailed, key, err)
	}
	return []byte(value), true, nil
}

func (s *KVStore) Set(ctx context.Context, key string, value []byte) error {
	if _, err := s.pool.Exec(ctx, queryUpsert, key, string(value)); err != nil {
		return fmt.Errorf(ErrMsgSetFailed, key, err)
	}
	return nil
}

func (s *KVStore) Delete(ctx context.Context, key string) error {
	if _, err := s.pool.Exec(ctx, queryDelete, key); err != nil {
		return fmt.Errorf(ErrMsgDeleteFailed, key, err)
	}
	return nil
}

func (s *KVStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *KVStore) Close() error {
	s.pool.Close()
	return nil
}
