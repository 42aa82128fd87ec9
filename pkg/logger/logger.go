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

// Package logger provides a context-scoped logrus entry. Call sites fetch
// the entry with Logger(ctx) and add their own fields; a correlation ID is
// attached once per context so all lines of one invocation can be joined.
package logger

import (
	"context"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type contextKey struct{}

var loggerKey = contextKey{}

var defaultLogger = newDefaultLogger()

func newDefaultLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.JSONFormatter{})
	l.SetLevel(levelFromEnv())
	return l
}

func levelFromEnv() logrus.Level {
	lvl, err := logrus.ParseLevel(strings.ToLower(os.Getenv("LOG_LEVEL")))
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}

// SetLevel adjusts the level of the package-wide logger.
func SetLevel(level logrus.Level) {
	defaultLogger.SetLevel(level)
}

// NewContext returns a child context carrying a logger entry with the
// given fields plus a fresh correlation ID.
func NewContext(ctx context.Context, fields logrus.Fields) context.Context {
	entry := defaultLogger.WithField("correlation_id", uuid.NewString())
	if len(fields) > 0 {
		entry = entry.WithFields(fields)
	}
	return context.WithValue(ctx, loggerKey, entry)
}

// WithEntry returns a child context carrying the given entry.
func WithEntry(ctx context.Context, entry *logrus.Entry) context.Context {
	return context.WithValue(ctx, loggerKey, entry)
}

// Logger returns the entry attached to ctx, or an entry on the default
// logger when the context carries none.
func Logger(ctx context.Context) *logrus.Entry {
	if ctx != nil {
		if entry, ok := ctx.Value(loggerKey).(*logrus.Entry); ok {
			return entry
		}
	}
	return logrus.NewEntry(defaultLogger)
}
