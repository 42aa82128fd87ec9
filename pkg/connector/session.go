/*
Copyright 2025.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package connector implements the managed session lifecycle: Open
// resolves a private token (stored, cached, or exchanged for
// username/password) and builds the authenticated handle, Close discards
// it, IsOpen reports the state, and CheckReachable probes connectivity
// with guaranteed teardown.
//
// The handle is an immutable value swapped behind a RWMutex, so
// concurrent Open/Close/IsOpen calls are well-defined.
package connector

import (
	"context"
	"strings"
	"sync"

	"github.com/gojek/heimdall/v7"
	"github.com/sirupsen/logrus"

	"github.com/profiq/gitlab-connector/pkg/cerrors"
	glclient "github.com/profiq/gitlab-connector/pkg/clients/gitlab"
	"github.com/profiq/gitlab-connector/pkg/config"
	"github.com/profiq/gitlab-connector/pkg/logger"
	"github.com/profiq/gitlab-connector/pkg/request/httpclient"
	"github.com/profiq/gitlab-connector/pkg/store"
)

// Session owns the connector configuration and the authenticated handle.
// One Session maps to one configured connector instance in the host; its
// methods are safe for concurrent use.
type Session struct {
	mu     sync.RWMutex
	cfg    *config.ConnectorConfig
	handle *glclient.Client

	tokens     store.TokenStoreInterface
	httpClient heimdall.Doer
}

// Option customizes a Session.
type Option func(*Session)

// WithTokenStore caches resolved tokens in the given store so repeated
// Open calls for the same host+login skip the credential exchange.
func WithTokenStore(tokens store.TokenStoreInterface) Option {
	return func(s *Session) {
		s.tokens = tokens
	}
}

// WithHTTPClient replaces the HTTP client used for the token exchange.
func WithHTTPClient(client heimdall.Doer) Option {
	return func(s *Session) {
		s.httpClient = client
	}
}

// NewSession creates a disconnected session for the given configuration.
func NewSession(cfg *config.ConnectorConfig, opts ...Option) (*Session, error) {
	if cfg == nil {
		return nil, cerrors.NewConfiguration("connector configuration is required")
	}

	s := &Session{cfg: cfg}
	for _, opt := range opts {
		opt(s)
	}

	if s.httpClient == nil {
		defaults := config.Default()
		// no retrier: connect failures surface immediately
		client, err := httpclient.InitializeClient(
			"gitlab-session",
			defaults.Pool,
			defaults.Hystrix,
			nil,
			0,
			nil,
		)
		if err != nil {
			return nil, err
		}
		s.httpClient = client
	}

	return s, nil
}

// Open authenticates against the configured host and builds the handle.
// username and password are only required when the configuration holds no
// private token. The resolved token is kept in the configuration (and the
// token store, when one is attached) for subsequent opens.
func (s *Session) Open(ctx context.Context, username, password string) error {
	s.mu.RLock()
	host := s.cfg.Host
	token := s.cfg.Token
	s.mu.RUnlock()

	log := logger.Logger(ctx).WithFields(logrus.Fields{
		"service": "connector",
		"host":    host,
	})

	log.Trace("checking gitlab host")
	if strings.TrimSpace(host) == "" {
		log.Error("host cannot be empty")
		return cerrors.NewConfiguration("host cannot be empty")
	}
	if !strings.HasPrefix(host, "https://") && !strings.HasPrefix(host, "http://") {
		log.Error("host has to begin with http:// or https://")
		return cerrors.NewConfiguration(`host has to begin with "http://" or "https://"`)
	}

	if strings.TrimSpace(token) == "" {
		log.Trace("no private token configured, resolving via username and password")

		if strings.TrimSpace(username) == "" {
			log.Error("username cannot be empty")
			return cerrors.NewCredential("username cannot be empty")
		}
		if strings.TrimSpace(password) == "" {
			log.Error("password cannot be empty")
			return cerrors.NewCredential("password cannot be empty")
		}

		resolved, err := s.cachedToken(ctx, host, username)
		if err != nil {
			return err
		}
		if resolved != "" {
			log.Debug("reusing cached private token")
			token = resolved
		} else {
			token, err = s.exchangeToken(ctx, host, username, password)
			if err != nil {
				return err
			}
			s.storeToken(ctx, host, username, token)
		}
	}
	log.Trace("private token resolved")

	handle, err := glclient.NewClient(s.cfg, token)
	if err != nil {
		return cerrors.NewConfiguration(err.Error())
	}

	s.mu.Lock()
	s.cfg.Token = token
	s.handle = handle
	s.mu.Unlock()
	log.Debug("session opened")
	return nil
}

// Close discards the handle unconditionally. It is idempotent and safe to
// call on an already closed session.
func (s *Session) Close() {
	s.mu.Lock()
	s.handle = nil
	s.mu.Unlock()
}

// IsOpen reports whether the session holds a live handle.
func (s *Session) IsOpen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.handle != nil
}

// Client returns the live handle, or a ConnectionClosedError when the
// session is not open. Holding on to a handle across Close is rejected at
// the next Client call, not silently tolerated.
func (s *Session) Client() (*glclient.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.handle == nil {
		return nil, cerrors.NewConnectionClosed()
	}
	return s.handle, nil
}

// CheckReachable opens the session, reports the outcome and always closes
// again, on the failure path included. The session ends up disconnected
// whatever happens; hosts wanting a persistent session call Open instead.
func (s *Session) CheckReachable(ctx context.Context, username, password string) error {
	log := logger.Logger(ctx).WithFields(logrus.Fields{
		"service": "connector",
		"host":    s.cfg.Host,
	})
	defer s.Close()

	log.Trace("probing connectivity")
	if err := s.Open(ctx, username, password); err != nil {
		log.WithError(err).Error("connectivity probe failed")
		return err
	}
	log.Debug("connectivity probe successful")
	return nil
}

// cachedToken looks the login up in the token store, when one is attached.
func (s *Session) cachedToken(ctx context.Context, host, username string) (string, error) {
	if s.tokens == nil {
		return "", nil
	}
	resolved, err := s.tokens.Get(ctx, host, username)
	if err != nil {
		return "", err
	}
	if resolved == nil {
		return "", nil
	}
	return resolved.Token, nil
}

// storeToken records the resolved token; a store failure only logs, the
// session is usable without the cache.
func (s *Session) storeToken(ctx context.Context, host, username, token string) {
	if s.tokens == nil {
		return
	}
	if err := s.tokens.Set(ctx, host, username, token); err != nil {
		logger.Logger(ctx).WithError(err).Warn("failed to cache resolved token")
	}
}
