package service

import (
	"context"
	"fmt"
	"time"

	"wallet-ledger/internal/core/domain"
	"wallet-ledger/internal/core/ports"
	"wallet-ledger/pkg/apperror"

	"github.com/golang-jwt/jwt/v5"
)

// JWTSessionService implements ports.SessionService using HS256 JWT. The
// token carries the active wallet and fiscal year so every engine call
// receives them explicitly.
type JWTSessionService struct {
	wallets   ports.WalletRepository
	exercices ports.ExerciceRepository
	secret    []byte
	expiry    time.Duration
	issuer    string
}

// NewJWTSessionService creates a new JWT session service.
func NewJWTSessionService(
	wallets ports.WalletRepository,
	exercices ports.ExerciceRepository,
	secret string,
	expiry time.Duration,
	issuer string,
) *JWTSessionService {
	return &JWTSessionService{
		wallets:   wallets,
		exercices: exercices,
		secret:    []byte(secret),
		expiry:    expiry,
		issuer:    issuer,
	}
}

// Open issues a token for walletID in year. Year 0 selects the current year.
func (s *JWTSessionService) Open(ctx context.Context, walletID string, year int) (string, time.Time, error) {
	w, err := s.wallets.GetByID(ctx, walletID)
	if err != nil {
		return "", time.Time{}, apperror.StorageError(fmt.Errorf("get wallet: %w", err))
	}
	if w == nil {
		return "", time.Time{}, apperror.ErrNotFound("wallet")
	}

	var ex *domain.Exercice
	if year == 0 {
		ex, err = s.exercices.Latest(ctx)
	} else {
		ex, err = s.exercices.Get(ctx, year)
	}
	if err != nil {
		return "", time.Time{}, apperror.StorageError(fmt.Errorf("get exercice: %w", err))
	}
	if ex == nil {
		return "", time.Time{}, apperror.ErrNotFound("exercice")
	}

	now := time.Now()
	expiresAt := now.Add(s.expiry)
	claims := jwt.MapClaims{
		"sub":  w.ID,
		"year": ex.Year,
		"iat":  now.Unix(),
		"exp":  expiresAt.Unix(),
		"iss":  s.issuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("signing token: %w", err))
	}
	return tokenString, expiresAt, nil
}

// Resolve parses and validates a token, returning the session it carries.
func (s *JWTSessionService) Resolve(tokenString string) (*domain.Session, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(s.issuer))
	if err != nil {
		appErr := apperror.ErrInvalidSession()
		appErr.Err = err
		return nil, appErr
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, apperror.ErrInvalidSession()
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return nil, apperror.ErrInvalidSession()
	}
	// JSON numbers decode as float64.
	year, ok := claims["year"].(float64)
	if !ok || year <= 0 {
		return nil, apperror.ErrInvalidSession()
	}

	return &domain.Session{WalletID: sub, Year: int(year)}, nil
}
