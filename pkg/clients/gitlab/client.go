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

// Package gitlab wraps the GitLab SDK behind the connector's operation
// façade: every exported method validates its identifiers, delegates to
// the SDK with the request context, and maps an absent single resource to
// a NotFoundError. List operations return empty results verbatim.
package gitlab

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	gitlab "gitlab.com/gitlab-org/api/client-go"

	"github.com/profiq/gitlab-connector/pkg/config"
	"github.com/profiq/gitlab-connector/pkg/logger"
)

// NewClient builds the authenticated handle for the configured host with
// the given private token. The optional TLS-verification bypass and
// request timeout from the configuration are applied to the transport.
func NewClient(cfg *config.ConnectorConfig, token string) (*Client, error) {
	if cfg == nil || cfg.Host == "" {
		return nil, fmt.Errorf("missing required connection parameters for gitlab backend")
	}
	if token == "" {
		return nil, fmt.Errorf("missing private token for gitlab backend")
	}

	host := strings.TrimSuffix(cfg.Host, "/")
	baseURL := fmt.Sprintf("%s/api/v4", host)

	httpClient := &http.Client{}
	if cfg.SkipTLSVerify != nil && *cfg.SkipTLSVerify {
		httpClient.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true}, // #nosec G402 -- operator opt-in
		}
	}
	if cfg.RequestTimeout != nil && *cfg.RequestTimeout > time.Duration(0) {
		httpClient.Timeout = *cfg.RequestTimeout
	}

	client, err := gitlab.NewClient(token,
		gitlab.WithBaseURL(baseURL),
		gitlab.WithHTTPClient(httpClient),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create gitlab client: %w", err)
	}

	return &Client{
		gitlabClient: client,
		host:         host,
	}, nil
}

// log returns a contextual entry tagged with the backend name.
func (c *Client) log(ctx context.Context, fields logrus.Fields) *logrus.Entry {
	entry := logger.Logger(ctx).WithField("service", backendName)
	if len(fields) > 0 {
		entry = entry.WithFields(fields)
	}
	return entry
}
