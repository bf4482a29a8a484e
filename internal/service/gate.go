// File: internal/service/gate.go
package service

import (
	"context"
	"errors"
	"fmt"

	"student-registry/internal/apperrors"
	"student-registry/internal/cache"
	"student-registry/internal/logger"
	"student-registry/internal/model"
	"student-registry/internal/store"
)

const revokedPrefix = "revoked:"

// Gate turns a bearer token into the live user record. Nothing is cached
// between calls, so role and active changes apply on the next request.
type Gate struct {
	tokens  *TokenManager
	users   store.Users
	revoked cache.Cache
}

func NewGate(tokens *TokenManager, users store.Users, revoked cache.Cache) *Gate {
	return &Gate{tokens: tokens, users: users, revoked: revoked}
}

// Authenticate verifies token, rejects revoked sessions and loads the user.
func (g *Gate) Authenticate(ctx context.Context, token string) (*model.User, *Claims, error) {
	claims, err := g.tokens.Verify(token)
	if err != nil {
		return nil, nil, err
	}

	revoked, err := g.isRevoked(ctx, claims.ID)
	if err != nil {
		return nil, nil, err
	}
	if revoked {
		logger.Debug().Str("jti", claims.ID).Str("username", claims.Subject).Msg("revoked token rejected")
		return nil, nil, apperrors.ErrUnauthenticated
	}

	user, err := g.users.GetUserByUsername(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, nil, apperrors.ErrUnauthenticated
		}
		return nil, nil, err
	}
	if !user.IsActive {
		return nil, nil, apperrors.ErrInactiveAccount
	}
	return user, claims, nil
}

// RequireRole returns user unchanged when it holds role.
func (g *Gate) RequireRole(user *model.User, role string) (*model.User, error) {
	if user == nil || user.Role != role {
		return nil, apperrors.ErrForbidden
	}
	return user, nil
}

// Revoke blocks the session until the token would have expired anyway.
func (g *Gate) Revoke(ctx context.Context, claims *Claims) error {
	if claims.ExpiresAt == nil {
		return nil
	}
	ttl := claims.ExpiresAt.Time.Sub(timeNow())
	if ttl <= 0 {
		return nil
	}
	if err := g.revoked.Set(ctx, revokedPrefix+claims.ID, 1, ttl).Err(); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}

func (g *Gate) isRevoked(ctx context.Context, jti string) (bool, error) {
	err := g.revoked.Get(ctx, revokedPrefix+jti).Err()
	switch {
	case err == nil:
		return true, nil
	case cache.IsMiss(err):
		return false, nil
	default:
		return false, fmt.Errorf("check revocation: %w", err)
	}
}
