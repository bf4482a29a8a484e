package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"student-registry/internal/apperrors"
	"student-registry/internal/model"
)

var timeNow = time.Now

func (s *Store) CreateUser(ctx context.Context, u *model.User) error {
	createdAt := timeNow().UTC()
	result, err := s.DB.ExecContext(ctx,
		"INSERT INTO users (username, password_hash, role, is_active, created_at) VALUES (?, ?, ?, ?, ?)",
		u.Username,
		u.PasswordHash,
		u.Role,
		u.IsActive,
		createdAt,
	)
	if err != nil {
		if isDuplicate(err) {
			return fmt.Errorf("CreateUser: %w", apperrors.ErrDuplicateUsername)
		}
		return fmt.Errorf("CreateUser: exec: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("CreateUser: last insert id: %w", err)
	}
	u.ID = id
	u.CreatedAt = createdAt
	return nil
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	u := &model.User{}
	err := s.DB.QueryRowContext(ctx,
		"SELECT id, username, password_hash, role, is_active, created_at FROM users WHERE username = ? LIMIT 1",
		username,
	).Scan(
		&u.ID,
		&u.Username,
		&u.PasswordHash,
		&u.Role,
		&u.IsActive,
		&u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("GetUserByUsername: %w", apperrors.ErrUserNotFound)
		}
		return nil, fmt.Errorf("GetUserByUsername: scan: %w", err)
	}
	return u, nil
}

func (s *Store) AdminExists(ctx context.Context) (bool, error) {
	var exists bool
	err := s.DB.QueryRowContext(ctx,
		"SELECT EXISTS (SELECT 1 FROM users WHERE role = ?)",
		model.RoleAdmin,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("AdminExists: %w", err)
	}
	return exists, nil
}
