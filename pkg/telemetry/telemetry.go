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

// Package telemetry carries the opentracing span helpers used around
// outbound HTTP calls and the session lifecycle.
package telemetry

import (
	"context"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	otlog "github.com/opentracing/opentracing-go/log"
)

const (
	TagBackend   = "connector.backend"
	TagOperation = "connector.operation"
	TagHost      = "connector.host"
)

// StartSpan starts a child span of whatever span ctx carries, tagged with
// the backend and operation names. The returned context carries the span.
func StartSpan(ctx context.Context, operation, backend string) (opentracing.Span, context.Context) {
	span, spanCtx := opentracing.StartSpanFromContext(ctx, operation)
	span.SetTag(TagBackend, backend)
	span.SetTag(TagOperation, operation)
	return span, spanCtx
}

// FinishSpan marks the span with the error (if any) and finishes it.
func FinishSpan(span opentracing.Span, err error) {
	if err != nil {
		ext.Error.Set(span, true)
		span.LogFields(otlog.Error(err))
	}
	span.Finish()
}
