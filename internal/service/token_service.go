package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/guttosm/drone-fulfillment/internal/domain/dto"
)

var (
	// ErrInvalidToken is returned when a token is malformed, expired or wrongly signed.
	ErrInvalidToken = errors.New("invalid or expired token")
	// ErrTokenSigningDisabled is returned when no signing secret is configured.
	ErrTokenSigningDisabled = errors.New("token signing is not configured")
)

// TokenService issues and validates operator tokens.
type TokenService interface {
	// IssueToken signs a token for subject with the given roles.
	IssueToken(subject string, roles []string) (string, time.Time, error)
	// ValidateToken checks signature, issuer and expiry and returns the claims.
	ValidateToken(ctx context.Context, tokenString string) (*dto.Claims, error)
}

// TokenConfig holds configuration for the token service.
type TokenConfig struct {
	SecretKey string
	Issuer    string
	TTL       time.Duration
}

// claimsWithJWT embeds the registered claims next to the application claims.
type claimsWithJWT struct {
	Roles []string `json:"roles"`
	jwt.RegisteredClaims
}

// TokenServiceImpl signs HS256 tokens with a shared secret.
type TokenServiceImpl struct {
	secretKey []byte
	issuer    string
	ttl       time.Duration
	now       func() time.Time
}

// NewTokenService creates a new token service.
func NewTokenService(cfg TokenConfig) *TokenServiceImpl {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 8 * time.Hour
	}
	return &TokenServiceImpl{
		secretKey: []byte(cfg.SecretKey),
		issuer:    cfg.Issuer,
		ttl:       ttl,
		now:       time.Now,
	}
}

// TTL returns the lifetime of issued tokens.
func (s *TokenServiceImpl) TTL() time.Duration {
	return s.ttl
}

// IssueToken signs a token for subject.
func (s *TokenServiceImpl) IssueToken(subject string, roles []string) (string, time.Time, error) {
	if len(s.secretKey) == 0 {
		return "", time.Time{}, ErrTokenSigningDisabled
	}

	now := s.now()
	expiresAt := now.Add(s.ttl)
	claims := &claimsWithJWT{
		Roles: roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    s.issuer,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secretKey)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// ValidateToken parses tokenString and returns its claims.
func (s *TokenServiceImpl) ValidateToken(_ context.Context, tokenString string) (*dto.Claims, error) {
	if len(s.secretKey) == 0 {
		return nil, ErrTokenSigningDisabled
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &claimsWithJWT{}, func(*jwt.Token) (interface{}, error) {
		return s.secretKey, nil
	}, opts...)
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*claimsWithJWT)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return &dto.Claims{Subject: claims.Subject, Roles: claims.Roles}, nil
}
