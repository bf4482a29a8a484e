// File: internal/service/token.go
package service

import (
	"errors"
	"fmt"
	"time"

	"student-registry/internal/apperrors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	timeNow         = time.Now
	parseWithClaims = jwt.ParseWithClaims
	newTokenID      = uuid.NewString
)

// Claims is the JWT payload. Subject carries the username and ID the token id
// used for revocation. Role is informational; access checks re-read the user.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type TokenConfig struct {
	Secret    string
	Algorithm string
	TTL       time.Duration
	Issuer    string
}

// TokenManager signs and verifies session tokens with one HMAC key.
type TokenManager struct {
	secret []byte
	method jwt.SigningMethod
	ttl    time.Duration
	issuer string
}

func NewTokenManager(cfg TokenConfig) (*TokenManager, error) {
	if cfg.Secret == "" {
		return nil, errors.New("jwt secret not set")
	}
	method, ok := jwt.GetSigningMethod(cfg.Algorithm).(*jwt.SigningMethodHMAC)
	if !ok {
		return nil, fmt.Errorf("unsupported jwt algorithm %q", cfg.Algorithm)
	}
	if cfg.TTL <= 0 {
		return nil, fmt.Errorf("jwt ttl must be positive, got %s", cfg.TTL)
	}
	return &TokenManager{
		secret: []byte(cfg.Secret),
		method: method,
		ttl:    cfg.TTL,
		issuer: cfg.Issuer,
	}, nil
}

// Issue signs a token for username and returns it with its expiry.
func (m *TokenManager) Issue(username, role string) (string, time.Time, error) {
	now := timeNow()
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        newTokenID(),
			Subject:   username,
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(m.method, claims).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, claims.ExpiresAt.Time, nil
}

// Verify parses tokenString and checks signature, algorithm, expiry and
// issuer. Every failure wraps apperrors.ErrInvalidToken.
func (m *TokenManager) Verify(tokenString string) (*Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{m.method.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(timeNow),
	}
	if m.issuer != "" {
		opts = append(opts, jwt.WithIssuer(m.issuer))
	}

	token, err := parseWithClaims(tokenString, &Claims{}, func(*jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}
	if claims.Subject == "" || claims.ID == "" {
		return nil, fmt.Errorf("%w: missing sub or jti", apperrors.ErrInvalidToken)
	}
	return claims, nil
}
