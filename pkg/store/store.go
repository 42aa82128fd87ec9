package store

import (
	"github.com/profiq/gitlab-connector/pkg/cache"
)

// Store groups the connector's cache-backed stores behind one object.
// It encapsulates key prefixing and JSON serialization.
// NOTE: This store does NOT handle locking - callers are responsible for proper synchronization
type Store struct {
	Token TokenStoreInterface
}

// New creates a new Store instance with all sub-stores initialized
func New(cache cache.Cache) *Store {
	return &Store{
		Token: newTokenStore(cache),
	}
}

// Compile-time interface compliance checks
var _ TokenStoreInterface = (*TokenStore)(nil)
