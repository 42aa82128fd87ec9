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
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	gitlab "gitlab.com/gitlab-org/api/client-go"

	"github.com/profiq/gitlab-connector/pkg/cerrors"
)

// GetProjectHook fetches a single project hook.
func (c *Client) GetProjectHook(ctx context.Context, projectID, hookID int) (*gitlab.ProjectHook, error) {
	log := c.log(ctx, logrus.Fields{"projectID": projectID, "hookID": hookID})
	log.Debug("fetching project hook")

	hook, _, err := c.gitlabClient.Projects.GetProjectHook(projectID, hookID, gitlab.WithContext(ctx))
	if err != nil {
		log.WithError(err).Error("error fetching project hook")
		return nil, err
	}
	if hook == nil {
		return nil, cerrors.NewNotFound(fmt.Sprintf("hook %d of project %d", hookID, projectID))
	}
	return hook, nil
}

// GetProjectHooks lists the hooks of a project.
func (c *Client) GetProjectHooks(ctx context.Context, projectID int) ([]*gitlab.ProjectHook, error) {
	log := c.log(ctx, logrus.Fields{"projectID": projectID})
	log.Debug("fetching project hooks")

	hooks, _, err := c.gitlabClient.Projects.ListProjectHooks(projectID, &gitlab.ListProjectHooksOptions{}, gitlab.WithContext(ctx))
	if err != nil {
		log.WithError(err).Error("error fetching project hooks")
		return nil, err
	}
	return hooks, nil
}

// AddProjectHook registers a webhook with event flags taken from opts.
func (c *Client) AddProjectHook(ctx context.Context, projectID int, opts *gitlab.AddProjectHookOptions) (*gitlab.ProjectHook, error) {
	if opts == nil || opts.URL == nil || *opts.URL == "" {
		return nil, cerrors.NewConfiguration("hook URL is required")
	}

	log := c.log(ctx, logrus.Fields{"projectID": projectID, "url": *opts.URL})
	log.Debug("adding project hook")

	hook, _, err := c.gitlabClient.Projects.AddProjectHook(projectID, opts, gitlab.WithContext(ctx))
	if err != nil {
		log.WithError(err).Error("error adding project hook")
		return nil, err
	}
	if hook == nil {
		return nil, cerrors.NewNotFound(fmt.Sprintf("created hook on project %d", projectID))
	}
	return hook, nil
}

// AddDefaultProjectHook registers a push-events webhook with the remote
// defaults for everything else.
func (c *Client) AddDefaultProjectHook(ctx context.Context, projectID int, url string) (*gitlab.ProjectHook, error) {
	return c.AddProjectHook(ctx, projectID, &gitlab.AddProjectHookOptions{
		URL:        gitlab.Ptr(url),
		PushEvents: gitlab.Ptr(true),
	})
}

// EditProjectHook updates a webhook.
func (c *Client) EditProjectHook(ctx context.Context, projectID, hookID int, opts *gitlab.EditProjectHookOptions) (*gitlab.ProjectHook, error) {
	if opts == nil || opts.URL == nil || *opts.URL == "" {
		return nil, cerrors.NewConfiguration("hook URL is required")
	}

	log := c.log(ctx, logrus.Fields{"projectID": projectID, "hookID": hookID})
	log.Debug("editing project hook")

	hook, _, err := c.gitlabClient.Projects.EditProjectHook(projectID, hookID, opts, gitlab.WithContext(ctx))
	if err != nil {
		log.WithError(err).Error("error editing project hook")
		return nil, err
	}
	if hook == nil {
		return nil, cerrors.NewNotFound(fmt.Sprintf("hook %d of project %d", hookID, projectID))
	}
	return hook, nil
}

// DeleteProjectHook removes a webhook from a project.
func (c *Client) DeleteProjectHook(ctx context.Context, projectID, hookID int) error {
	log := c.log(ctx, logrus.Fields{"projectID": projectID, "hookID": hookID})
	log.Debug("deleting project hook")

	_, err := c.gitlabClient.Projects.DeleteProjectHook(projectID, hookID, gitlab.WithContext(ctx))
	if err != nil {
		log.WithError(err).Error("error deleting project hook")
		return err
	}
	return nil
}

// GetSystemHooks lists the instance-wide hooks. Requires an administrator
// token.
func (c *Client) GetSystemHooks(ctx context.Context) ([]*gitlab.Hook, error) {
	log := c.log(ctx, nil)
	log.Debug("fetching system hooks")

	hooks, _, err := c.gitlabClient.SystemHooks.ListHooks(gitlab.WithContext(ctx))
	if err != nil {
		log.WithError(err).Error("error fetching system hooks")
		return nil, err
	}
	return hooks, nil
}

// AddSystemHook registers an instance-wide hook. Requires an
// administrator token.
func (c *Client) AddSystemHook(ctx context.Context, url string) (*gitlab.Hook, error) {
	if url == "" {
		return nil, cerrors.NewConfiguration("hook URL is required")
	}

	log := c.log(ctx, logrus.Fields{"url": url})
	log.Debug("adding system hook")

	hook, _, err := c.gitlabClient.SystemHooks.AddHook(&gitlab.AddHookOptions{
		URL: gitlab.Ptr(url),
	}, gitlab.WithContext(ctx))
	if err != nil {
		log.WithError(err).Error("error adding system hook")
		return nil, err
	}
	if hook == nil {
		return nil, cerrors.NewNotFound("created system hook")
	}
	return hook, nil
}

// DeleteSystemHook removes an instance-wide hook. Requires an
// administrator token.
func (c *Client) DeleteSystemHook(ctx context.Context, hookID int) error {
	log := c.log(ctx, logrus.Fields{"hookID": hookID})
	log.Debug("deleting system hook")

	_, err := c.gitlabClient.SystemHooks.DeleteHook(hookID, gitlab.WithContext(ctx))
	if err != nil {
		log.WithError(err).Error("error deleting system hook")
		return err
	}
	return nil
}
