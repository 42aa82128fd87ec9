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

// Package config loads the connector configuration from a YAML file with
// environment-variable overrides, via viper.
package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/profiq/gitlab-connector/pkg/cache"
	"github.com/profiq/gitlab-connector/pkg/cache/inmemory"
	rediscache "github.com/profiq/gitlab-connector/pkg/cache/redis"
	"github.com/profiq/gitlab-connector/pkg/request/httpclient"
	"github.com/profiq/gitlab-connector/pkg/utils"
)

// ConnectorConfig holds the session configuration: the target GitLab host
// and the credential material used to build the authenticated handle.
type ConnectorConfig struct {
	// Host is the GitLab instance URL, scheme included,
	// e.g. "https://gitlab.com".
	Host string `yaml:"host" json:"host"`
	// Token is the private token. When set, Open skips the
	// username/password exchange.
	Token string `yaml:"token" json:"token"`
	// SkipTLSVerify disables certificate verification on the handle
	// when non-nil and true. Nil keeps the transport default.
	SkipTLSVerify *bool `yaml:"skipTLSVerify" json:"skipTLSVerify"`
	// RequestTimeout caps each API request when non-nil.
	RequestTimeout *time.Duration `yaml:"requestTimeout" json:"requestTimeout"`
}

// CacheConfig selects and configures the token-store backend.
type CacheConfig struct {
	// Backend is "inmemory" (default) or "redis".
	Backend  string           `yaml:"backend" json:"backend"`
	InMemory *inmemory.Config `yaml:"inmemory" json:"inmemory"`
	Redis    *rediscache.Config `yaml:"redis" json:"redis"`
}

// AppConfig is the root configuration object.
type AppConfig struct {
	Connector ConnectorConfig                    `yaml:"connector" json:"connector"`
	Cache     CacheConfig                        `yaml:"cache" json:"cache"`
	Pool      httpclient.ConnectionPoolConfig    `yaml:"pool" json:"pool"`
	Hystrix   httpclient.HystrixResiliencyConfig `yaml:"hystrix" json:"hystrix"`
}

// Load reads the configuration file at path (YAML). Environment variables
// prefixed with CONNECTOR_ override file values, with dots mapped to
// underscores (e.g. CONNECTOR_CONNECTOR_HOST).
func Load(path string) (*AppConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("connector")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	cfg := &AppConfig{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	return cfg, nil
}

// Default returns a configuration with the same defaults Load applies,
// without touching the filesystem.
func Default() *AppConfig {
	v := viper.New()
	setDefaults(v)
	cfg := &AppConfig{}
	// defaults only, cannot fail
	_ = v.Unmarshal(cfg)
	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("connector.host", "https://gitlab.com")
	v.SetDefault("cache.backend", "inmemory")
	v.SetDefault("cache.inmemory.defaultExpiration", 0)
	v.SetDefault("cache.inmemory.cleanupInterval", 0)
	v.SetDefault("pool.maxIdleConns", 100)
	v.SetDefault("pool.maxIdleConnsPerHost", 10)
	v.SetDefault("pool.idleConnTimeoutSeconds", 90)
	v.SetDefault("pool.requestTimeoutSeconds", 30)
	v.SetDefault("hystrix.maxConcurrentRequests", 100)
	v.SetDefault("hystrix.errorPercentThreshold", 25)
	v.SetDefault("hystrix.sleepWindowMillis", 5000)
	v.SetDefault("hystrix.requestVolumeThreshold", 20)
	v.SetDefault("hystrix.timeoutMillis", 30000)
}

// ConnectorFromMap builds a ConnectorConfig from an untyped property map,
// the shape embedding hosts usually hand connection parameters over in.
func ConnectorFromMap(properties map[string]interface{}) (*ConnectorConfig, error) {
	cfg := &ConnectorConfig{}
	if err := utils.MapToStruct(properties, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse connector properties: %w", err)
	}
	return cfg, nil
}

// BuildCache constructs the cache backend selected by the configuration.
func (c *CacheConfig) BuildCache(ctx context.Context) (cache.Cache, error) {
	switch strings.ToLower(c.Backend) {
	case "", "inmemory":
		return inmemory.NewCache(c.InMemory)
	case "redis":
		return rediscache.NewCache(ctx, c.Redis)
	default:
		return nil, fmt.Errorf("unknown cache backend %q", c.Backend)
	}
}
