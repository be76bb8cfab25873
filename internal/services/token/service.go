// Package token issues and verifies stateless bearer tokens.
//
// Tokens are HS256-signed JWTs carrying a subject and an expiry. There is no
// server-side session or revocation list; expiry is the only invalidation.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mcoot/snakegame-go/internal/dependencies/clock"
)

// Errors
var (
	ErrInvalidToken     = errors.New("invalid token")
	ErrExpiredToken     = errors.New("token has expired")
	ErrInvalidSignature = errors.New("invalid token signature")
)

// AlgorithmHS256 is the only supported signing algorithm identifier
const AlgorithmHS256 = "HS256"

// Config holds configuration for the token service
type Config struct {
	// Secret is the process-wide signing key (required)
	Secret string
	// Algorithm is the signing algorithm identifier; empty defaults to HS256
	Algorithm string
	// TTL is the default token lifetime; zero defaults to 30 minutes
	TTL time.Duration
}

// DefaultConfig returns default token configuration (secret must still be set)
func DefaultConfig() Config {
	return Config{
		Algorithm: AlgorithmHS256,
		TTL:       30 * time.Minute,
	}
}

// Service signs and verifies bearer tokens
type Service struct {
	secret []byte
	ttl    time.Duration
	clock  clock.Clock
}

// New creates a token Service from cfg.
// It fails if the secret is empty or the algorithm is unsupported.
func New(cfg Config, clk clock.Clock) (*Service, error) {
	if cfg.Secret == "" {
		return nil, errors.New("token signing secret is required")
	}
	if cfg.Algorithm != "" && cfg.Algorithm != AlgorithmHS256 {
		return nil, fmt.Errorf("unsupported signing algorithm: %s", cfg.Algorithm)
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = DefaultConfig().TTL
	}

	return &Service{
		secret: []byte(cfg.Secret),
		ttl:    ttl,
		clock:  clk,
	}, nil
}

// TTL returns the configured default token lifetime
func (s *Service) TTL() time.Duration {
	return s.ttl
}

// Issue signs a token for subject that expires after ttl
func (s *Service) Issue(subject string, ttl time.Duration) (string, error) {
	now := s.clock.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Verify checks signature integrity and expiry and returns the token's subject.
// Malformed tokens, bad signatures, and expired tokens fail with distinct
// errors; callers surface all of them uniformly as unauthorized.
func (s *Service) Verify(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidSignature
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.clock.Now))

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", ErrExpiredToken
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return "", ErrInvalidSignature
		default:
			return "", ErrInvalidToken
		}
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}

	return claims.Subject, nil
}
