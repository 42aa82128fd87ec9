package store

import "context"

// TokenStoreInterface defines the cache operations for resolved private
// tokens. A token is keyed by the GitLab host and the login it was
// exchanged for, so one process can hold sessions against several hosts.
type TokenStoreInterface interface {
	// Get returns the resolved token for host+login, or nil when the
	// store holds none. A miss is not an error.
	Get(ctx context.Context, host, login string) (*ResolvedToken, error)

	// Set stores the resolved token for host+login for the lifetime of
	// the process.
	Set(ctx context.Context, host, login, token string) error

	// Delete removes the token for host+login. Deleting an absent entry
	// is not an error.
	Delete(ctx context.Context, host, login string) error

	// Exists reports whether a token is stored for host+login.
	Exists(ctx context.Context, host, login string) (bool, error)
}
