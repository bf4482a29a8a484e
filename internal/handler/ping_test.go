package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"student-registry/internal/cache"
	"student-registry/internal/database"
	"student-registry/internal/store/sqlite"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestPingHandler(t *testing.T) {
	e := echo.New()

	t.Run("db unhealthy", func(t *testing.T) {
		db := &database.FakeDB{
			PingFn: func(ctx context.Context) error { return errors.New("fail") },
		}
		cch := &cache.FakeCache{}
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		rec := httptest.NewRecorder()
		ctx := e.NewContext(req, rec)
		err := PingHandler(db, cch)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.Contains(t, rec.Body.String(), "database unhealthy")
	})

	t.Run("cache unhealthy", func(t *testing.T) {
		dbCalled := false
		db := &database.FakeDB{
			PingFn: func(ctx context.Context) error { dbCalled = true; return nil },
		}
		cch := &cache.FakeCache{SetFn: func(ctx context.Context, key string, val any, exp time.Duration) *redis.StatusCmd {
			return redis.NewStatusResult("", errors.New("set"))
		}}
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		rec := httptest.NewRecorder()
		ctx := e.NewContext(req, rec)
		err := PingHandler(db, cch)(ctx)
		require.NoError(t, err)
		require.True(t, dbCalled)
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.Contains(t, rec.Body.String(), "cache unhealthy")
	})

	t.Run("ok", func(t *testing.T) {
		dbCalled := false
		cacheCalled := false
		db := &database.FakeDB{
			PingFn: func(ctx context.Context) error { dbCalled = true; return nil },
		}
		cch := &cache.FakeCache{SetFn: func(ctx context.Context, key string, val any, exp time.Duration) *redis.StatusCmd {
			cacheCalled = true
			return redis.NewStatusResult("OK", nil)
		}}
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		rec := httptest.NewRecorder()
		ctx := e.NewContext(req, rec)
		err := PingHandler(db, cch)(ctx)
		require.NoError(t, err)
		require.True(t, dbCalled)
		require.True(t, cacheCalled)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "pong")
	})
}

func TestPingHandlerSQLiteStore(t *testing.T) {
	e := echo.New()
	st, err := sqlite.New(sqlite.Memory)
	require.NoError(t, err)

	var keys []string
	cch := &cache.FakeCache{SetFn: func(_ context.Context, key string, _ any, _ time.Duration) *redis.StatusCmd {
		keys = append(keys, key)
		return redis.NewStatusResult("OK", nil)
	}}
	h := PingHandler(st, cch)

	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(httptest.NewRequest(http.MethodGet, "/ping", nil), rec)))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, []string{"ping"}, keys)

	// a closed store fails before the cache is touched
	require.NoError(t, st.Close())
	rec = httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(httptest.NewRequest(http.MethodGet, "/ping", nil), rec)))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Contains(t, rec.Body.String(), "database unhealthy")
	require.Len(t, keys, 1)
}
