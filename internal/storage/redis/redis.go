// Package redis implements storage.Store on a Redis server.
package redis

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultPrefix namespaces keys written by this application.
const DefaultPrefix = "looterputer:"

const connectionTimeout = 5 * time.Second

// Error messages
const (
	ErrMsgPingFailed = "failed to reach redis at %s: %w"
)

// Options contains configuration for the Redis store.
type Options struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

// Store is a storage.Store backed by Redis strings.
type Store struct {
	client *redis.Client
	prefix string
}

// New connects to Redis and verifies the connection. Addr may be a plain
// host:port or a redis:// URL.
func New(ctx context.Context, opts Options) (*Store, error) {
	addr := opts.Addr
	if parsed, err := url.Parse(opts.Addr); err == nil && parsed.Scheme == "redis" {
		addr = parsed.Host
	}
	prefix := opts.Prefix
	if prefix == "" {
		prefix = DefaultPrefix
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, connectionTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf(ErrMsgPingFailed, addr, err)
	}

	return &Store{client: client, prefix: prefix}, nil
}

func (s *Store) key(k string) string {
	return s.prefix + k
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := s.client.Get(ctx, s.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return val, true, nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	return s.client.Set(ctx, s.key(key), value, 0).Err()
}

func (s *Store) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, s.key(key)).Err()
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *Store) Close() error {
	return s.client.Close()
}
