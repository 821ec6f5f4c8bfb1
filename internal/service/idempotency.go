package service

import (
	"context"
	"time"

	"wallet-ledger/internal/core/ports"

	"github.com/rs/zerolog"
)

// Key prefixes of the idempotency cache.
const (
	qrReceiveKeyPrefix       = "qr_receive:"
	businessConfirmKeyPrefix = "business_confirm:"
)

// seen reports whether key is already marked in the cache. Cache failures are
// logged and treated as a miss; the durable store decides.
func seen(ctx context.Context, cache ports.IdempotencyCache, log zerolog.Logger, key string) bool {
	if cache == nil {
		return false
	}
	cached, err := cache.Get(ctx, key)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("redis idempotency check failed, falling through to DB")
		return false
	}
	return cached != nil
}

// mark records key after a successful commit. Best-effort.
func mark(ctx context.Context, cache ports.IdempotencyCache, log zerolog.Logger, key, value string, ttl time.Duration) {
	if cache == nil {
		return
	}
	if err := cache.Set(ctx, key, []byte(value), ttl); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("failed to cache idempotency in redis")
	}
}
