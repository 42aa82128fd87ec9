package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/profiq/gitlab-connector/pkg/cache"
)

// ResolvedToken is the cached result of one credential exchange.
type ResolvedToken struct {
	Token      string    `json:"token"`
	ResolvedAt time.Time `json:"resolved_at"`
}

// TokenStore handles resolved-token cache operations with a "token:" prefix.
// NOTE: This store does NOT handle locking - callers must ensure proper synchronization
type TokenStore struct {
	cache cache.Cache
}

// newTokenStore creates a new TokenStore instance
func newTokenStore(c cache.Cache) *TokenStore {
	return &TokenStore{
		cache: c,
	}
}

// tokenKey returns the prefixed cache key for a host+login pair
func (s *TokenStore) tokenKey(host, login string) string {
	return "token:" + host + ":" + login
}

// Get returns the resolved token for host+login, or nil on a miss.
func (s *TokenStore) Get(ctx context.Context, host, login string) (*ResolvedToken, error) {
	key := s.tokenKey(host, login)
	val, err := s.cache.Get(ctx, key)
	if err != nil {
		if errors.Is(err, cache.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, err
	}

	resolved := &ResolvedToken{}
	if err := json.Unmarshal([]byte(val.(string)), resolved); err != nil {
		return nil, fmt.Errorf("failed to unmarshal resolved token: %w", err)
	}
	return resolved, nil
}

// Set stores the resolved token for host+login with no expiration.
func (s *TokenStore) Set(ctx context.Context, host, login, token string) error {
	key := s.tokenKey(host, login)

	data, err := json.Marshal(&ResolvedToken{
		Token:      token,
		ResolvedAt: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal resolved token: %w", err)
	}

	if err := s.cache.Set(ctx, key, string(data), cache.NoExpiration); err != nil {
		return fmt.Errorf("failed to set resolved token in cache: %w", err)
	}
	return nil
}

// Delete removes the token for host+login.
func (s *TokenStore) Delete(ctx context.Context, host, login string) error {
	return s.cache.Delete(ctx, s.tokenKey(host, login))
}

// Exists reports whether a token is stored for host+login.
func (s *TokenStore) Exists(ctx context.Context, host, login string) (bool, error) {
	resolved, err := s.Get(ctx, host, login)
	if err != nil {
		return false, err
	}
	return resolved != nil, nil
}
