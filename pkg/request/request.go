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

// Package request wraps outbound HTTP calls issued outside the GitLab SDK,
// traced with opentracing and executed through a heimdall Doer.
package request

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/gojek/heimdall/v7"

	"github.com/profiq/gitlab-connector/pkg/telemetry"
)

// Request is a single outbound HTTP request bound to a context.
type Request struct {
	ctx context.Context
	req *http.Request
}

// NewRequest builds a Request for the given method and URL. body may be
// empty.
func NewRequest(ctx context.Context, method, url string, body []byte) (*Request, error) {
	httpReq, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build %s request for %s: %w", method, url, err)
	}
	return &Request{ctx: ctx, req: httpReq}, nil
}

// SetHeaders sets the given headers on the request, replacing any existing
// values for the same keys.
func (r *Request) SetHeaders(headers map[string]string) {
	for key, value := range headers {
		r.req.Header.Set(key, value)
	}
}

// MakeRequest executes the request via the given Doer and returns the
// response body and status code. A non-2xx status is not an error here;
// callers decide what the status means for them.
func (r *Request) MakeRequest(client heimdall.Doer, operation, backend string) ([]byte, int, error) {
	span, _ := telemetry.StartSpan(r.ctx, operation, backend)

	resp, err := client.Do(r.req)
	if err != nil {
		telemetry.FinishSpan(span, err)
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		telemetry.FinishSpan(span, err)
		return nil, resp.StatusCode, fmt.Errorf("failed to read response body: %w", err)
	}

	telemetry.FinishSpan(span, nil)
	return body, resp.StatusCode, nil
}
