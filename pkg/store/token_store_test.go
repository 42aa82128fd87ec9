package store

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/profiq/gitlab-connector/pkg/cache"
	"github.com/profiq/gitlab-connector/pkg/cache/inmemory"
	rediscache "github.com/profiq/gitlab-connector/pkg/cache/redis"
)

func setupTokenStore(t *testing.T) (*TokenStore, cache.Cache) {
	t.Helper()
	c, err := inmemory.NewCache(&inmemory.Config{
		DefaultExpiration: 300,
		CleanupInterval:   600,
	})
	require.NoError(t, err)
	return newTokenStore(c), c
}

func TestTokenStore_GetAndSet(t *testing.T) {
	tests := []struct {
		name      string
		host      string
		login     string
		setupFunc func(t *testing.T, store *TokenStore, c cache.Cache)
		wantToken string
		wantNil   bool
		wantErr   bool
	}{
		{
			name:      "miss returns nil without error",
			host:      "https://gitlab.example.com",
			login:     "jdoe",
			setupFunc: func(t *testing.T, store *TokenStore, c cache.Cache) {},
			wantNil:   true,
		},
		{
			name:  "hit returns the stored token",
			host:  "https://gitlab.example.com",
			login: "jdoe",
			setupFunc: func(t *testing.T, store *TokenStore, c cache.Cache) {
				err := store.Set(context.Background(), "https://gitlab.example.com", "jdoe", "token-123")
				require.NoError(t, err)
			},
			wantToken: "token-123",
		},
		{
			name:  "tokens are scoped per host",
			host:  "https://gitlab.other.com",
			login: "jdoe",
			setupFunc: func(t *testing.T, store *TokenStore, c cache.Cache) {
				err := store.Set(context.Background(), "https://gitlab.example.com", "jdoe", "token-123")
				require.NoError(t, err)
			},
			wantNil: true,
		},
		{
			name:  "tokens are scoped per login",
			host:  "https://gitlab.example.com",
			login: "other",
			setupFunc: func(t *testing.T, store *TokenStore, c cache.Cache) {
				err := store.Set(context.Background(), "https://gitlab.example.com", "jdoe", "token-123")
				require.NoError(t, err)
			},
			wantNil: true,
		},
		{
			name:  "set overwrites an existing token",
			host:  "https://gitlab.example.com",
			login: "jdoe",
			setupFunc: func(t *testing.T, store *TokenStore, c cache.Cache) {
				ctx := context.Background()
				require.NoError(t, store.Set(ctx, "https://gitlab.example.com", "jdoe", "old-token"))
				require.NoError(t, store.Set(ctx, "https://gitlab.example.com", "jdoe", "new-token"))
			},
			wantToken: "new-token",
		},
		{
			name:  "invalid JSON returns error",
			host:  "https://gitlab.example.com",
			login: "corrupt",
			setupFunc: func(t *testing.T, store *TokenStore, c cache.Cache) {
				err := c.Set(context.Background(), "token:https://gitlab.example.com:corrupt", "invalid json{{{", cache.NoExpiration)
				require.NoError(t, err)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, c := setupTokenStore(t)
			tt.setupFunc(t, store, c)

			got, err := store.Get(context.Background(), tt.host, tt.login)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.wantNil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.wantToken, got.Token)
			assert.False(t, got.ResolvedAt.IsZero())
		})
	}
}

func TestTokenStore_Delete(t *testing.T) {
	store, _ := setupTokenStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "https://gitlab.example.com", "jdoe", "token-123"))
	require.NoError(t, store.Delete(ctx, "https://gitlab.example.com", "jdoe"))

	got, err := store.Get(ctx, "https://gitlab.example.com", "jdoe")
	require.NoError(t, err)
	assert.Nil(t, got)

	// deleting an absent entry is a no-op
	assert.NoError(t, store.Delete(ctx, "https://gitlab.example.com", "jdoe"))
}

func TestTokenStore_Exists(t *testing.T) {
	store, _ := setupTokenStore(t)
	ctx := context.Background()

	exists, err := store.Exists(ctx, "https://gitlab.example.com", "jdoe")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, store.Set(ctx, "https://gitlab.example.com", "jdoe", "token-123"))

	exists, err = store.Exists(ctx, "https://gitlab.example.com", "jdoe")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestTokenStore_KeyPrefix(t *testing.T) {
	store, c := setupTokenStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "https://gitlab.example.com", "jdoe", "token-123"))

	val, err := c.Get(ctx, "token:https://gitlab.example.com:jdoe")
	assert.NoError(t, err)
	assert.NotNil(t, val)

	_, err = c.Get(ctx, "https://gitlab.example.com:jdoe")
	assert.Error(t, err)
}

func TestTokenStore_RedisBackend(t *testing.T) {
	srv := miniredis.RunT(t)

	c, err := rediscache.NewCache(context.Background(), &rediscache.Config{
		Address: srv.Addr(),
	})
	require.NoError(t, err)

	store := New(c)
	ctx := context.Background()

	require.NoError(t, store.Token.Set(ctx, "https://gitlab.example.com", "jdoe", "token-123"))

	got, err := store.Token.Get(ctx, "https://gitlab.example.com", "jdoe")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "token-123", got.Token)

	require.NoError(t, store.Token.Delete(ctx, "https://gitlab.example.com", "jdoe"))
	got, err = store.Token.Get(ctx, "https://gitlab.example.com", "jdoe")
	require.NoError(t, err)
	assert.Nil(t, got)
}
