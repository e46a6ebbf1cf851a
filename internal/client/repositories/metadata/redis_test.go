package metadata

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Set TECHBLOG_TEST_REDIS_ADDR (e.g. 127.0.0.1:6379) to run against a real
// server.
func redisRepo(t *testing.T) *RedisRepository {
	t.Helper()
	addr := os.Getenv("TECHBLOG_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TECHBLOG_TEST_REDIS_ADDR not set")
	}
	ctx := context.Background()
	c, err := DialRedis(ctx, addr)
	require.NoError(t, err)

	r := NewRedisRepository(c, "techblog:test:"+uuid.NewString())
	t.Cleanup(func() {
		_ = r.Clear(context.Background())
		_ = c.Close()
	})
	return r
}

func TestRedisRepository_RoundTrip(t *testing.T) {
	r := redisRepo(t)
	ctx := context.Background()

	v, err := r.Get(ctx, "token")
	require.NoError(t, err)
	assert.Nil(t, v)

	require.NoError(t, r.SetMany(ctx, map[string][]byte{"token": []byte("tok1"), "user": []byte(`{"id":"u1"}`)}))
	v, err = r.Get(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, []byte("tok1"), v)

	require.NoError(t, r.Set(ctx, "extra", []byte("x")))
	require.NoError(t, r.DeleteMany(ctx, "token", "user"))

	m, err := r.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string][]byte{"extra": []byte("x")}, m)

	require.NoError(t, r.Delete(ctx, "extra"))
	m, err = r.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, m)
}

func TestDialRedis_Unreachable(t *testing.T) {
	_, err := DialRedis(context.Background(), "127.0.0.1:1")
	require.Error(t, err)
}
