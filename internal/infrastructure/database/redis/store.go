package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hfashion/storefront/internal/infrastructure/storage"
	"github.com/redis/go-redis/v9"
)

// KeyPrefix namespaces storefront documents in a shared Redis
const KeyPrefix = "hfashion:"

// Store keeps session documents as Redis strings. Carts expire after the
// configured TTL; orders, wishlists and profiles are kept indefinitely.
type Store struct {
	client  redis.Cmdable
	cartTTL time.Duration
}

// NewStore creates a Redis-backed document store
func NewStore(client redis.Cmdable, cartTTL time.Duration) *Store {
	return &Store{client: client, cartTTL: cartTTL}
}

func (s *Store) Read(ctx context.Context, key string) ([]byte, error) {
	raw, err := s.client.Get(ctx, KeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}
	return raw, nil
}

func (s *Store) Write(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, KeyPrefix+key, value, s.ttl(key)).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (s *Store) ttl(key string) time.Duration {
	if storage.DocOf(key) == storage.DocCart {
		return s.cartTTL
	}
	return 0
}
