package service

import (
	"context"
	"testing"
	"time"

	"wallet-ledger/internal/core/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "test-jwt-secret-key-for-unit-tests"

func newSessionService(h *harness, secret string, expiry time.Duration) *JWTSessionService {
	return NewJWTSessionService(h.repos.Wallets, h.repos.Exercices, secret, expiry, "test-issuer")
}

func TestJWTSessionService_OpenAndResolve(t *testing.T) {
	h := newHarness(t)
	w := h.wallet(t, "main", domain.WalletTypePersonal, 0)
	svc := newSessionService(h, testJWTSecret, time.Hour)

	tokenStr, expiresAt, err := svc.Open(context.Background(), w.ID, 0)
	require.NoError(t, err)
	assert.NotEmpty(t, tokenStr)
	assert.True(t, expiresAt.After(time.Now()))

	session, err := svc.Resolve(tokenStr)
	require.NoError(t, err)
	assert.Equal(t, domain.Session{WalletID: w.ID, Year: testYear}, *session)
}

func TestJWTSessionService_OpenErrors(t *testing.T) {
	h := newHarness(t)
	w := h.wallet(t, "main", domain.WalletTypePersonal, 0)
	svc := newSessionService(h, testJWTSecret, time.Hour)

	_, _, err := svc.Open(context.Background(), "missing", 0)
	assertAppError(t, err, "NF_001")
	_, _, err = svc.Open(context.Background(), w.ID, 1990)
	assertAppError(t, err, "NF_001")
}

func TestJWTSessionService_ExpiredToken(t *testing.T) {
	h := newHarness(t)
	w := h.wallet(t, "main", domain.WalletTypePersonal, 0)
	// Negative expiry = already expired
	svc := newSessionService(h, testJWTSecret, -1*time.Hour)

	tokenStr, _, err := svc.Open(context.Background(), w.ID, testYear)
	require.NoError(t, err)

	_, err = svc.Resolve(tokenStr)
	assertAppError(t, err, "STATE_006")
}

func TestJWTSessionService_InvalidSignature(t *testing.T) {
	h := newHarness(t)
	w := h.wallet(t, "main", domain.WalletTypePersonal, 0)
	svc1 := newSessionService(h, "secret-1", time.Hour)
	svc2 := newSessionService(h, "secret-2", time.Hour)

	tokenStr, _, err := svc1.Open(context.Background(), w.ID, 0)
	require.NoError(t, err)

	_, err = svc2.Resolve(tokenStr)
	assertAppError(t, err, "STATE_006")
}

func TestJWTSessionService_MissingYearClaim(t *testing.T) {
	h := newHarness(t)
	svc := newSessionService(h, testJWTSecret, time.Hour)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "wallet",
		"iss": "test-issuer",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	tokenStr, err := token.SignedString([]byte(testJWTSecret))
	require.NoError(t, err)

	_, err = svc.Resolve(tokenStr)
	assertAppError(t, err, "STATE_006")
}

func TestJWTSessionService_GarbageToken(t *testing.T) {
	h := newHarness(t)
	svc := newSessionService(h, testJWTSecret, time.Hour)

	for _, tok := range []string{"", "not.a.valid.jwt"} {
		_, err := svc.Resolve(tok)
		assertAppError(t, err, "STATE_006")
	}
}
