package redis

import (
	"context"
	"strconv"
	"testing"

	"wallet-ledger/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientOptions(t *testing.T) {
	opts := clientOptions(config.RedisConfig{
		Host:     "redis.example.com",
		Port:     6380,
		Password: "secret",
		DB:       3,
	})

	assert.Equal(t, "redis.example.com:6380", opts.Addr)
	assert.Equal(t, "secret", opts.Password)
	assert.Equal(t, 3, opts.DB)
	assert.Equal(t, "wallet-ledger", opts.ClientName)
}

func TestKeyspace(t *testing.T) {
	tests := []struct {
		prefix, space, want string
	}{
		{"", "idem", "ledger:idem:"},
		{"ledger", "ratelimit", "ledger:ratelimit:"},
		{"family-b:", "idem", "family-b:idem:"},
		{"tenant", "", "tenant:"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, keyspace(tt.prefix, tt.space), "keyspace(%q, %q)", tt.prefix, tt.space)
	}
}

func TestNewClient(t *testing.T) {
	s := miniredis.RunT(t)
	cfg := config.RedisConfig{Host: s.Host(), Port: mustPort(t, s)}

	client, err := NewClient(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)
	defer client.Close()

	// Two ledgers sharing the server keep their markers apart.
	ctx := context.Background()
	a := NewIdempotencyCache(client, "ledger-a")
	b := NewIdempotencyCache(client, "ledger-b")
	require.NoError(t, a.Set(ctx, "qr_receive:tx-1", []byte("t-1"), 0))

	got, err := b.Get(ctx, "qr_receive:tx-1")
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.True(t, s.Exists("ledger-a:idem:qr_receive:tx-1"))
}

func TestNewClient_Unreachable(t *testing.T) {
	s := miniredis.RunT(t)
	cfg := config.RedisConfig{Host: s.Host(), Port: mustPort(t, s)}
	s.Close()

	_, err := NewClient(context.Background(), cfg, zerolog.Nop())
	assert.ErrorContains(t, err, "pinging redis")
}

func mustPort(t *testing.T, s *miniredis.Miniredis) int {
	t.Helper()
	port, err := strconv.Atoi(s.Port())
	require.NoError(t, err)
	return port
}
