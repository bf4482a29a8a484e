package middleware

import (
	"context"
	"strings"

	"student-registry/internal/apperrors"
	"student-registry/internal/handler"
	"student-registry/internal/model"
	"student-registry/internal/service"

	"github.com/labstack/echo/v4"
)

const (
	ContextUserKey   = "user"
	ContextClaimsKey = "claims"
)

// Gate is what the auth middleware needs from service.Gate.
type Gate interface {
	Authenticate(ctx context.Context, token string) (*model.User, *service.Claims, error)
	RequireRole(user *model.User, role string) (*model.User, error)
}

func bearerToken(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return "", apperrors.ErrUnauthenticated
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", apperrors.ErrUnauthenticated
	}
	return strings.TrimSpace(parts[1]), nil
}

// RequireAuth resolves the bearer token to the live user and stores the user
// and the token claims on the context.
func RequireAuth(gate Gate) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := bearerToken(c)
			if err != nil {
				return handler.WriteError(c, err)
			}
			user, claims, err := gate.Authenticate(c.Request().Context(), token)
			if err != nil {
				return handler.WriteError(c, err)
			}
			c.Set(ContextUserKey, user)
			c.Set(ContextClaimsKey, claims)
			return next(c)
		}
	}
}

// RequireRole must run after RequireAuth.
func RequireRole(gate Gate, role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := CurrentUser(c)
			if user == nil {
				return handler.WriteError(c, apperrors.ErrUnauthenticated)
			}
			if _, err := gate.RequireRole(user, role); err != nil {
				return handler.WriteError(c, err)
			}
			return next(c)
		}
	}
}

func CurrentUser(c echo.Context) *model.User {
	u, _ := c.Get(ContextUserKey).(*model.User)
	return u
}

func CurrentClaims(c echo.Context) *service.Claims {
	cl, _ := c.Get(ContextClaimsKey).(*service.Claims)
	return cl
}
