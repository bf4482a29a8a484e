// File: internal/service/account.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"student-registry/internal/apperrors"
	"student-registry/internal/model"
	"student-registry/internal/store"
	"student-registry/internal/worker"
)

// Session is the result of a successful login.
type Session struct {
	Token     string
	ExpiresAt time.Time
	User      *model.User
}

// Accounts registers users and logs them in.
type Accounts struct {
	users   store.Users
	tokens  *TokenManager
	hashers worker.Pool
}

// NewAccounts runs bcrypt work on hashers; a nil pool runs it inline.
func NewAccounts(users store.Users, tokens *TokenManager, hashers worker.Pool) *Accounts {
	return &Accounts{users: users, tokens: tokens, hashers: hashers}
}

// Register creates an active user with role "user". The caller cannot pick the role.
func (a *Accounts) Register(ctx context.Context, username, password string) (*model.User, error) {
	return a.create(ctx, username, password, model.RoleUser)
}

// Login checks credentials and issues a session token. Unknown usernames and
// wrong passwords fail the same way with ErrInvalidCredentials.
func (a *Accounts) Login(ctx context.Context, username, password string) (*Session, error) {
	user, err := a.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			if err := a.offload(ctx, func() { burnCompare(password) }); err != nil {
				return nil, err
			}
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	var ok bool
	if err := a.offload(ctx, func() { ok = VerifyPassword(password, user.PasswordHash) }); err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresAt, err := a.tokens.Issue(user.Username, user.Role)
	if err != nil {
		return nil, err
	}
	return &Session{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

// EnsureAdmin creates an admin account unless one already exists.
// It reports whether an account was created.
func (a *Accounts) EnsureAdmin(ctx context.Context, username, password string) (bool, error) {
	exists, err := a.users.AdminExists(ctx)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}
	if _, err := a.create(ctx, username, password, model.RoleAdmin); err != nil {
		return false, err
	}
	return true, nil
}

func (a *Accounts) create(ctx context.Context, username, password, role string) (*model.User, error) {
	var hash string
	var hashErr error
	if err := a.offload(ctx, func() { hash, hashErr = HashPassword(password) }); err != nil {
		return nil, err
	}
	if hashErr != nil {
		return nil, fmt.Errorf("hash password: %w", hashErr)
	}
	user := &model.User{
		Username:     username,
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
	}
	if err := a.users.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (a *Accounts) offload(ctx context.Context, fn func()) error {
	if a.hashers == nil {
		fn()
		return nil
	}
	return a.hashers.Do(ctx, fn)
}
