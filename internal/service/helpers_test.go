package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"student-registry/internal/cache"
	"student-registry/internal/store/sqlite"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func restoreGlobals() {
	bcryptGenerateFromPassword = bcrypt.GenerateFromPassword
	bcryptCompareHashAndPassword = bcrypt.CompareHashAndPassword
	timeNow = time.Now
	parseWithClaims = jwt.ParseWithClaims
	newTokenID = uuid.NewString
}

// fastHashing drops bcrypt to its minimum cost for the duration of the test.
func fastHashing(t *testing.T) {
	t.Helper()
	t.Cleanup(restoreGlobals)
	bcryptGenerateFromPassword = func(p []byte, _ int) ([]byte, error) {
		return bcrypt.GenerateFromPassword(p, bcrypt.MinCost)
	}
}

func newStore(t *testing.T) *sqlite.Store {
	t.Helper()
	s, err := sqlite.New(sqlite.Memory)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func newTokens(t *testing.T) *TokenManager {
	t.Helper()
	m, err := NewTokenManager(TokenConfig{Secret: "test-secret", Algorithm: "HS256", TTL: time.Hour, Issuer: "student-registry"})
	require.NoError(t, err)
	return m
}

// memCache is a cache.FakeCache backed by a map. TTLs are recorded, not enforced.
type memCache struct {
	mu   sync.Mutex
	data map[string]string
	ttls map[string]time.Duration
}

func newMemCache() (*memCache, *cache.FakeCache) {
	m := &memCache{data: map[string]string{}, ttls: map[string]time.Duration{}}
	return m, &cache.FakeCache{
		GetFn: func(ctx context.Context, key string) *redis.StringCmd {
			m.mu.Lock()
			defer m.mu.Unlock()
			v, ok := m.data[key]
			if !ok {
				return redis.NewStringResult("", redis.Nil)
			}
			return redis.NewStringResult(v, nil)
		},
		SetFn: func(ctx context.Context, key string, value any, ttl time.Duration) *redis.StatusCmd {
			m.mu.Lock()
			defer m.mu.Unlock()
			m.data[key] = "1"
			m.ttls[key] = ttl
			return redis.NewStatusResult("OK", nil)
		},
	}
}
