// File: internal/store/postgres/user_test.go
package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"student-registry/internal/apperrors"
	"student-registry/internal/database"
	"student-registry/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
)

func TestUserStore(t *testing.T) {
	now := time.Now().UTC()
	sample := &model.User{
		ID:           7,
		Username:     "alice",
		PasswordHash: "hash123",
		Role:         model.RoleUser,
		IsActive:     true,
		CreatedAt:    now,
	}

	t.Run("CreateUser fills id and created_at", func(t *testing.T) {
		var gotArgs []any
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
				gotArgs = args
				return &fakeUserRow{user: &model.User{ID: 42, CreatedAt: now}}
			},
		}
		u := &model.User{Username: "bob", PasswordHash: "h", Role: model.RoleUser, IsActive: true}
		require.NoError(t, New(db).CreateUser(context.Background(), u))
		require.Equal(t, int64(42), u.ID)
		require.Equal(t, now, u.CreatedAt)
		require.Equal(t, []any{"bob", "h", model.RoleUser, true}, gotArgs)
	})

	t.Run("CreateUser duplicate username", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeUserRow{scanErr: uniqueErr(usernameConstraint)}
			},
		}
		err := New(db).CreateUser(context.Background(), &model.User{Username: "alice"})
		require.ErrorIs(t, err, apperrors.ErrDuplicateUsername)
	})

	t.Run("CreateUser other error", func(t *testing.T) {
		boom := errors.New("boom")
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeUserRow{scanErr: boom}
			},
		}
		err := New(db).CreateUser(context.Background(), &model.User{})
		require.ErrorIs(t, err, boom)
		require.NotErrorIs(t, err, apperrors.ErrDuplicateUsername)
	})

	t.Run("GetUserByUsername success", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
				require.Equal(t, []any{"alice"}, args)
				return &fakeUserRow{user: sample}
			},
		}
		u, err := New(db).GetUserByUsername(context.Background(), "alice")
		require.NoError(t, err)
		require.Equal(t, sample, u)
	})

	t.Run("GetUserByUsername not found", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeUserRow{scanErr: pgx.ErrNoRows}
			},
		}
		u, err := New(db).GetUserByUsername(context.Background(), "ghost")
		require.ErrorIs(t, err, apperrors.ErrUserNotFound)
		require.Nil(t, u)
	})

	t.Run("AdminExists", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
				require.Equal(t, []any{model.RoleAdmin}, args)
				return &fakeUserRow{exists: true}
			},
		}
		ok, err := New(db).AdminExists(context.Background())
		require.NoError(t, err)
		require.True(t, ok)
	})

	t.Run("AdminExists error", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeUserRow{scanErr: errors.New("conn reset")}
			},
		}
		_, err := New(db).AdminExists(context.Background())
		require.Error(t, err)
	})
}

func TestStorePingClose(t *testing.T) {
	pinged, closed := false, false
	db := &database.FakeDB{
		PingFn:  func(context.Context) error { pinged = true; return nil },
		CloseFn: func() { closed = true },
	}
	s := New(db)
	require.NoError(t, s.Ping(context.Background()))
	require.NoError(t, s.Close())
	require.True(t, pinged)
	require.True(t, closed)
}
