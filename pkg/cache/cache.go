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

// Package cache defines the cache abstraction used by the token store,
// with in-memory and redis backends selected by configuration.
package cache

import (
	"context"
	"errors"
	"time"
)

// NoExpiration marks an entry that never expires.
const NoExpiration time.Duration = -1

// ErrKeyNotFound is returned by Get when the key is absent.
var ErrKeyNotFound = errors.New("key not found in cache")

// Cache is the minimal surface the connector needs from a cache backend.
type Cache interface {
	// Get returns the value stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) (interface{}, error)

	// Set stores value under key with the given expiration.
	// Use NoExpiration for entries that must survive the whole process.
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Keys returns all keys matching a glob-style pattern.
	Keys(ctx context.Context, pattern string) ([]string, error)
}
