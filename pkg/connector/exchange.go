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

package connector

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/profiq/gitlab-connector/pkg/cerrors"
	"github.com/profiq/gitlab-connector/pkg/logger"
	"github.com/profiq/gitlab-connector/pkg/request"
)

const sessionEndpoint = "/api/v4/session"

type sessionResponse struct {
	PrivateToken string `json:"private_token"`
}

// exchangeToken trades username/password for a private token via the
// session endpoint. Transport failures map to ConnectivityError, rejected
// or unusable credentials to AuthenticationError.
func (s *Session) exchangeToken(ctx context.Context, host, username, password string) (string, error) {
	log := logger.Logger(ctx).WithFields(logrus.Fields{
		"service": "connector",
		"host":    host,
		"login":   username,
	})
	log.Debug("exchanging credentials for private token")

	form := url.Values{}
	form.Set("login", username)
	form.Set("password", password)

	req, err := request.NewRequest(ctx, http.MethodPost,
		strings.TrimSuffix(host, "/")+sessionEndpoint,
		[]byte(form.Encode()))
	if err != nil {
		return "", cerrors.NewConnectivity(host, err)
	}
	req.SetHeaders(map[string]string{
		"Content-Type": "application/x-www-form-urlencoded",
	})

	body, statusCode, err := req.MakeRequest(s.httpClient, "connector.session.TokenExchange", "gitlab")
	if err != nil {
		log.WithError(err).Error("token exchange request failed")
		return "", cerrors.NewConnectivity(host, err)
	}

	switch {
	case statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden:
		log.Error("credentials rejected")
		return "", cerrors.NewAuthentication("invalid username or password")
	case statusCode < 200 || statusCode > 299:
		log.WithField("status", statusCode).Error("unexpected token exchange status")
		return "", cerrors.NewConnectivity(host, fmt.Errorf("unexpected status %d from session endpoint", statusCode))
	}

	var resp sessionResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		log.WithError(err).Error("malformed session response")
		return "", cerrors.NewConnectivity(host, err)
	}
	if strings.TrimSpace(resp.PrivateToken) == "" {
		log.Error("session response carries no private token")
		return "", cerrors.NewAuthentication("session response carries no private token")
	}

	log.Debug("private token resolved from credentials")
	return resp.PrivateToken, nil
}
