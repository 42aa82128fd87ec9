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

// Package httpclient builds heimdall-backed HTTP clients with connection
// pooling, hystrix resiliency settings and opentracing instrumentation.
package httpclient

import (
	"crypto/tls"
	"net/http"
	"time"

	"github.com/gojek/heimdall/v7"
	"github.com/gojek/heimdall/v7/hystrix"
	"github.com/opentracing-contrib/go-stdlib/nethttp"
)

// ConnectionPoolConfig tunes the underlying http.Transport.
type ConnectionPoolConfig struct {
	MaxIdleConns           int `yaml:"maxIdleConns" json:"maxIdleConns"`
	MaxIdleConnsPerHost    int `yaml:"maxIdleConnsPerHost" json:"maxIdleConnsPerHost"`
	IdleConnTimeoutSeconds int `yaml:"idleConnTimeoutSeconds" json:"idleConnTimeoutSeconds"`
	RequestTimeoutSeconds  int `yaml:"requestTimeoutSeconds" json:"requestTimeoutSeconds"`
}

// HystrixResiliencyConfig tunes the hystrix circuit breaker.
type HystrixResiliencyConfig struct {
	MaxConcurrentRequests  int `yaml:"maxConcurrentRequests" json:"maxConcurrentRequests"`
	ErrorPercentThreshold  int `yaml:"errorPercentThreshold" json:"errorPercentThreshold"`
	SleepWindowMillis      int `yaml:"sleepWindowMillis" json:"sleepWindowMillis"`
	RequestVolumeThreshold int `yaml:"requestVolumeThreshold" json:"requestVolumeThreshold"`
	TimeoutMillis          int `yaml:"timeoutMillis" json:"timeoutMillis"`
}

// InitializeClient builds a hystrix-wrapped HTTP client named commandName.
// retrier may be nil when the caller wants no retries; tlsConfig may be nil
// to keep the transport defaults.
func InitializeClient(
	commandName string,
	poolCfg ConnectionPoolConfig,
	hystrixCfg HystrixResiliencyConfig,
	retrier heimdall.Retriable,
	retryCount int,
	tlsConfig *tls.Config,
) (heimdall.Doer, error) {
	transport := &http.Transport{
		MaxIdleConns:        poolCfg.MaxIdleConns,
		MaxIdleConnsPerHost: poolCfg.MaxIdleConnsPerHost,
		IdleConnTimeout:     time.Duration(poolCfg.IdleConnTimeoutSeconds) * time.Second,
	}
	if tlsConfig != nil {
		transport.TLSClientConfig = tlsConfig
	}

	httpClient := &http.Client{
		Timeout:   time.Duration(poolCfg.RequestTimeoutSeconds) * time.Second,
		Transport: &nethttp.Transport{RoundTripper: transport},
	}

	opts := []hystrix.Option{
		hystrix.WithCommandName(commandName),
		hystrix.WithHTTPClient(httpClient),
		hystrix.WithHTTPTimeout(time.Duration(poolCfg.RequestTimeoutSeconds) * time.Second),
		hystrix.WithHystrixTimeout(time.Duration(hystrixCfg.TimeoutMillis) * time.Millisecond),
		hystrix.WithMaxConcurrentRequests(hystrixCfg.MaxConcurrentRequests),
		hystrix.WithErrorPercentThreshold(hystrixCfg.ErrorPercentThreshold),
		hystrix.WithSleepWindow(hystrixCfg.SleepWindowMillis),
		hystrix.WithRequestVolumeThreshold(hystrixCfg.RequestVolumeThreshold),
	}
	if retrier != nil {
		opts = append(opts,
			hystrix.WithRetrier(retrier),
			hystrix.WithRetryCount(retryCount),
		)
	}

	return hystrix.NewClient(opts...), nil
}
