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

// Package inmemory implements cache.Cache on top of patrickmn/go-cache.
package inmemory

import (
	"context"
	"path"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/profiq/gitlab-connector/pkg/cache"
)

// Config holds the in-memory backend settings, in seconds.
type Config struct {
	DefaultExpiration int `yaml:"defaultExpiration" json:"defaultExpiration"`
	CleanupInterval   int `yaml:"cleanupInterval" json:"cleanupInterval"`
}

type inMemoryCache struct {
	backend *gocache.Cache
}

// NewCache creates an in-memory cache with the configured default
// expiration and cleanup interval.
func NewCache(cfg *Config) (cache.Cache, error) {
	defaultExpiration := gocache.NoExpiration
	cleanupInterval := time.Duration(0)
	if cfg != nil {
		if cfg.DefaultExpiration > 0 {
			defaultExpiration = time.Duration(cfg.DefaultExpiration) * time.Second
		}
		if cfg.CleanupInterval > 0 {
			cleanupInterval = time.Duration(cfg.CleanupInterval) * time.Second
		}
	}
	return &inMemoryCache{
		backend: gocache.New(defaultExpiration, cleanupInterval),
	}, nil
}

func (c *inMemoryCache) Get(_ context.Context, key string) (interface{}, error) {
	value, found := c.backend.Get(key)
	if !found {
		return nil, cache.ErrKeyNotFound
	}
	return value, nil
}

func (c *inMemoryCache) Set(_ context.Context, key string, value interface{}, expiration time.Duration) error {
	if expiration == cache.NoExpiration {
		expiration = gocache.NoExpiration
	}
	c.backend.Set(key, value, expiration)
	return nil
}

func (c *inMemoryCache) Delete(_ context.Context, key string) error {
	c.backend.Delete(key)
	return nil
}

func (c *inMemoryCache) Keys(_ context.Context, pattern string) ([]string, error) {
	keys := make([]string, 0)
	for key := range c.backend.Items() {
		matched, err := path.Match(pattern, key)
		if err != nil {
			return nil, err
		}
		if matched {
			keys = append(keys, key)
		}
	}
	return keys, nil
}
