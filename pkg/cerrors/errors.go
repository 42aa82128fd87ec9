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

// Package cerrors defines the connector error taxonomy. Every failure the
// session lifecycle or an operation can surface falls into one of the
// categories below; callers classify with errors.As.
package cerrors

import "fmt"

// ConfigurationError reports a malformed connector configuration, such as
// a blank or scheme-less host URL. It is raised before any network I/O.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "configuration error: " + e.Reason
}

// NewConfiguration returns a ConfigurationError with the given reason.
func NewConfiguration(reason string) error {
	return &ConfigurationError{Reason: reason}
}

// CredentialError reports missing credential material: no stored token and
// a blank username or password. Raised before any network I/O.
type CredentialError struct {
	Reason string
}

func (e *CredentialError) Error() string {
	return "credential error: " + e.Reason
}

// NewCredential returns a CredentialError with the given reason.
func NewCredential(reason string) error {
	return &CredentialError{Reason: reason}
}

// ConnectivityError reports that the configured host could not be reached,
// either during the token exchange or during an operation.
type ConnectivityError struct {
	Host string
	Err  error
}

func (e *ConnectivityError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot connect to %q: %v", e.Host, e.Err)
	}
	return fmt.Sprintf("cannot connect to %q", e.Host)
}

func (e *ConnectivityError) Unwrap() error {
	return e.Err
}

// NewConnectivity returns a ConnectivityError for the given host wrapping
// the underlying transport error.
func NewConnectivity(host string, err error) error {
	return &ConnectivityError{Host: host, Err: err}
}

// AuthenticationError reports that the host answered the credential
// exchange but did not yield a usable token, or rejected the credentials.
type AuthenticationError struct {
	Reason string
}

func (e *AuthenticationError) Error() string {
	return "authentication error: " + e.Reason
}

// NewAuthentication returns an AuthenticationError with the given reason.
func NewAuthentication(reason string) error {
	return &AuthenticationError{Reason: reason}
}

// NotFoundError reports that a remote call succeeded but the requested
// resource is absent. It applies to fetch-by-id style operations only;
// list operations return empty collections as a legitimate result.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found or empty result"
}

// NewNotFound returns a NotFoundError for the named resource.
func NewNotFound(resource string) error {
	return &NotFoundError{Resource: resource}
}

// ConnectionClosedError reports use of a session after Close (or before
// Open). This is a programming error on the caller's side.
type ConnectionClosedError struct{}

func (e *ConnectionClosedError) Error() string {
	return "connector session is not open"
}

// NewConnectionClosed returns a ConnectionClosedError.
func NewConnectionClosed() error {
	return &ConnectionClosedError{}
}
