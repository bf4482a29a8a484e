// File: internal/store/postgres/user.go
package postgres

import (
	"context"
	"errors"
	"fmt"

	"student-registry/internal/apperrors"
	"student-registry/internal/model"

	"github.com/jackc/pgx/v5"
)

func (s *Store) CreateUser(ctx context.Context, u *model.User) error {
	row := s.db.QueryRow(ctx,
		`INSERT INTO users (username, password_hash, role, is_active)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		u.Username,
		u.PasswordHash,
		u.Role,
		u.IsActive,
	)
	if err := row.Scan(&u.ID, &u.CreatedAt); err != nil {
		if isDuplicate(err, usernameConstraint) {
			return fmt.Errorf("CreateUser: %w", apperrors.ErrDuplicateUsername)
		}
		return fmt.Errorf("CreateUser: %w", err)
	}
	return nil
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	row := s.db.QueryRow(ctx,
		`SELECT id, username, password_hash, role, is_active, created_at
		 FROM users WHERE username = $1`,
		username,
	)
	u := &model.User{}
	if err := row.Scan(
		&u.ID,
		&u.Username,
		&u.PasswordHash,
		&u.Role,
		&u.IsActive,
		&u.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("GetUserByUsername: %w", apperrors.ErrUserNotFound)
		}
		return nil, fmt.Errorf("GetUserByUsername: %w", err)
	}
	return u, nil
}

func (s *Store) AdminExists(ctx context.Context) (bool, error) {
	var exists bool
	row := s.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE role = $1)`,
		model.RoleAdmin,
	)
	if err := row.Scan(&exists); err != nil {
		return false, fmt.Errorf("AdminExists: %w", err)
	}
	return exists, nil
}
