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

package gitlab

import (
	gitlab "gitlab.com/gitlab-org/api/client-go"
)

const backendName = "gitlab"

// Client is the authenticated handle. It is an immutable value bound to
// one host and token; the session swaps whole Client instances rather
// than mutating one in place.
type Client struct {
	gitlabClient *gitlab.Client
	host         string
}

// Host returns the GitLab instance URL this handle is bound to.
func (c *Client) Host() string {
	return c.host
}
