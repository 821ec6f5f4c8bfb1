package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"wallet-ledger/internal/core/ports"

	goredis "github.com/redis/go-redis/v9"
)

var _ ports.IdempotencyCache = (*IdempotencyCache)(nil)

// IdempotencyCache remembers settled QR receipts and business payment
// confirmations. It is a fast path only: the ledger rows stay authoritative.
type IdempotencyCache struct {
	client *goredis.Client
	prefix string
}

// NewIdempotencyCache creates a new Redis-backed idempotency cache. Keys live
// under "<keyPrefix>:idem:"; an empty keyPrefix means "ledger".
func NewIdempotencyCache(client *goredis.Client, keyPrefix string) *IdempotencyCache {
	return &IdempotencyCache{
		client: client,
		prefix: keyspace(keyPrefix, idempotencySpace),
	}
}

// Get retrieves a cached marker by key.
// Returns nil, nil if the key does not exist.
func (c *IdempotencyCache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis idempotency get: %w", err)
	}
	return val, nil
}

// Set stores a marker with TTL.
func (c *IdempotencyCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, c.prefix+key, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis idempotency set: %w", err)
	}
	return nil
}
