package inmemory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/profiq/gitlab-connector/pkg/cache"
)

func TestInMemoryCache(t *testing.T) {
	c, err := NewCache(&Config{DefaultExpiration: 300, CleanupInterval: 600})
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("miss returns ErrKeyNotFound", func(t *testing.T) {
		_, err := c.Get(ctx, "absent")
		assert.ErrorIs(t, err, cache.ErrKeyNotFound)
	})

	t.Run("set then get", func(t *testing.T) {
		require.NoError(t, c.Set(ctx, "k", "v", cache.NoExpiration))
		val, err := c.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, "v", val)
	})

	t.Run("delete removes the key", func(t *testing.T) {
		require.NoError(t, c.Set(ctx, "doomed", "v", cache.NoExpiration))
		require.NoError(t, c.Delete(ctx, "doomed"))
		_, err := c.Get(ctx, "doomed")
		assert.ErrorIs(t, err, cache.ErrKeyNotFound)
	})

	t.Run("expired entry is a miss", func(t *testing.T) {
		require.NoError(t, c.Set(ctx, "ephemeral", "v", 10*time.Millisecond))
		time.Sleep(20 * time.Millisecond)
		_, err := c.Get(ctx, "ephemeral")
		assert.ErrorIs(t, err, cache.ErrKeyNotFound)
	})
}

func TestKeys(t *testing.T) {
	c, err := NewCache(nil)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "token:hostA:jdoe", "t1", cache.NoExpiration))
	require.NoError(t, c.Set(ctx, "token:hostB:jdoe", "t2", cache.NoExpiration))
	require.NoError(t, c.Set(ctx, "other:hostA", "x", cache.NoExpiration))

	keys, err := c.Keys(ctx, "token:*")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"token:hostA:jdoe", "token:hostB:jdoe"}, keys)

	keys, err = c.Keys(ctx, "nomatch:*")
	require.NoError(t, err)
	assert.Empty(t, keys)
}
