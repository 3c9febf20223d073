package session

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourorg/housing-site/internal/redisx"
)

func TestRedisMirror(t *testing.T) {
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR not set")
	}
	client := redisx.New(addr, "", 0)
	defer client.Close()
	ctx := context.Background()
	require.NoError(t, client.Ping(ctx))

	mirror := &RedisMirror{Redis: client, TTL: time.Minute}
	sid := uuid.NewString()

	_, ok, err := mirror.LoadSelection(ctx, sid)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, mirror.SaveSelection(ctx, sid, 2))
	id, ok, err := mirror.LoadSelection(ctx, sid)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 2, id)

	require.NoError(t, client.Rdb.Expire(ctx, mirror.key(sid), time.Second).Err())
	require.NoError(t, mirror.TouchSelection(ctx, sid))
	ttl, err := client.Rdb.TTL(ctx, mirror.key(sid)).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, 30*time.Second)

	require.NoError(t, mirror.ClearSelection(ctx, sid))
	_, ok, err = mirror.LoadSelection(ctx, sid)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, mirror.TouchSelection(ctx, sid))
	_, ok, err = mirror.LoadSelection(ctx, sid)
	require.NoError(t, err)
	assert.False(t, ok)
}
