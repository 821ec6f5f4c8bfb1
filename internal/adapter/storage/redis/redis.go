package redis

import (
	"context"
	"fmt"
	"strings"

	"wallet-ledger/config"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const (
	clientName        = "wallet-ledger"
	defaultKeyPrefix  = "ledger"
	idempotencySpace  = "idem"
	rateLimitKeySpace = "ratelimit"
)

// clientOptions maps the ledger's redis config onto go-redis options.
func clientOptions(cfg config.RedisConfig) *goredis.Options {
	return &goredis.Options{
		Addr:       cfg.Addr(),
		Password:   cfg.Password,
		DB:         cfg.DB,
		ClientName: clientName,
	}
}

// NewClient creates a Redis client and verifies connectivity.
func NewClient(ctx context.Context, cfg config.RedisConfig, log zerolog.Logger) (*goredis.Client, error) {
	client := goredis.NewClient(clientOptions(cfg))

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("pinging redis at %s: %w", cfg.Addr(), err)
	}

	log.Info().
		Str("addr", cfg.Addr()).
		Int("db", cfg.DB).
		Str("key_prefix", keyspace(cfg.KeyPrefix, "")).
		Msg("Redis connection established")

	return client, nil
}

// keyspace joins the configured prefix and a component namespace into the
// leading part of a key, e.g. "ledger:idem:".
func keyspace(prefix, space string) string {
	prefix = strings.Trim(prefix, ":")
	if prefix == "" {
		prefix = defaultKeyPrefix
	}
	if space == "" {
		return prefix + ":"
	}
	return prefix + ":" + space + ":"
}
