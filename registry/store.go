package registry

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// ErrNotFound is returned by [Store.Get] when no value exists for the key.
var ErrNotFound = errors.New("invalidation record not found")

// ErrStoreUnavailable wraps transport-level store failures so callers can
// separate "no record" from "could not ask".
var ErrStoreUnavailable = errors.New("invalidation store unavailable")

// Store is the minimal key/value service the registry persists into. The
// handle is injected and caller-owned: the registry never constructs,
// pools, or closes it. No transactions or multi-key atomicity are required.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// DefaultRedisPrefix namespaces invalidation keys in a shared Redis.
const DefaultRedisPrefix = "grv:"

// RedisStore is the production [Store] on top of a shared Redis client.
type RedisStore struct {
	redis  redis.UniversalClient
	prefix string
}

// NewRedisStore wraps an externally owned Redis client. prefix namespaces
// all keys; empty means [DefaultRedisPrefix].
func NewRedisStore(client redis.UniversalClient, prefix string) *RedisStore {
	if prefix == "" {
		prefix = DefaultRedisPrefix
	}
	return &RedisStore{redis: client, prefix: prefix}
}

func (s *RedisStore) key(k string) string {
	return s.prefix + k
}

// Get returns the stored value, [ErrNotFound] when the key is absent, or a
// wrapped [ErrStoreUnavailable] on transport failure.
func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	value, err := s.redis.Get(ctx, s.key(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return value, nil
}

// Set writes the value with no TTL; retention policy belongs to the store
// operator, not the core.
func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	if err := s.redis.Set(ctx, s.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}

// Delete removes the key. Deleting an absent key is not an error.
func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := s.redis.Del(ctx, s.key(key)).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}
