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

// GetProject fetches a single project by ID.
func (c *Client) GetProject(ctx context.Context, projectID int) (*gitlab.Project, error) {
	log := c.log(ctx, logrus.Fields{"projectID": projectID})
	log.Debug("fetching project")

	project, _, err := c.gitlabClient.Projects.GetProject(projectID, nil, gitlab.WithContext(ctx))
	if err != nil {
		log.WithError(err).Error("error fetching project")
		return nil, err
	}
	if project == nil {
		return nil, cerrors.NewNotFound(fmt.Sprintf("project %d", projectID))
	}
	return project, nil
}

// GetProjects lists the projects the authenticated user is a member of.
func (c *Client) GetProjects(ctx context.Context) ([]*gitlab.Project, error) {
	log := c.log(ctx, nil)
	log.Debug("fetching accessible projects")

	projects, _, err := c.gitlabClient.Projects.ListProjects(&gitlab.ListProjectsOptions{
		Membership: gitlab.Ptr(true),
	}, gitlab.WithContext(ctx))
	if err != nil {
		log.WithError(err).Error("error fetching accessible projects")
		return nil, err
	}
	return projects, nil
}

// GetAllProjects lists every project visible to the authenticated user,
// not just memberships. On an administrator token this is the full
// instance inventory.
func (c *Client) GetAllProjects(ctx context.Context) ([]*gitlab.Project, error) {
	log := c.log(ctx, nil)
	log.Debug("fetching all visible projects")

	projects, _, err := c.gitlabClient.Projects.ListProjects(&gitlab.ListProjectsOptions{}, gitlab.WithContext(ctx))
	if err != nil {
		log.WithError(err).Error("error fetching all visible projects")
		return nil, err
	}
	return projects, nil
}

// GetProjectsWithSudo lists the projects of another user, impersonated
// via sudo. Requires an administrator token.
func (c *Client) GetProjectsWithSudo(ctx context.Context, userID int) ([]*gitlab.Project, error) {
	log := c.log(ctx, logrus.Fields{"userID": userID})
	log.Debug("fetching projects via sudo")

	projects, _, err := c.gitlabClient.Projects.ListProjects(&gitlab.ListProjectsOptions{
		Membership: gitlab.Ptr(true),
	}, gitlab.WithContext(ctx), gitlab.WithSudo(userID))
	if err != nil {
		log.WithError(err).Error("error fetching projects via sudo")
		return nil, err
	}
	return projects, nil
}

// CreateProject creates a project owned by the authenticated user.
func (c *Client) CreateProject(ctx context.Context, opts *gitlab.CreateProjectOptions) (*gitlab.Project, error) {
	if opts == nil || opts.Name == nil || *opts.Name == "" {
		return nil, cerrors.NewConfiguration("project name is required")
	}

	log := c.log(ctx, logrus.Fields{"projectName": *opts.Name})
	log.Debug("creating project")

	project, _, err := c.gitlabClient.Projects.CreateProject(opts, gitlab.WithContext(ctx))
	if err != nil {
		log.WithError(err).Error("error creating project")
		return nil, err
	}
	if project == nil {
		return nil, cerrors.NewNotFound(fmt.Sprintf("created project %s", *opts.Name))
	}
	return project, nil
}

// CreateUserProject creates a project owned by another user. Requires an
// administrator token.
func (c *Client) CreateUserProject(ctx context.Context, userID int, opts *gitlab.CreateProjectForUserOptions) (*gitlab.Project, error) {
	if opts == nil || opts.Name == nil || *opts.Name == "" {
		return nil, cerrors.NewConfiguration("project name is required")
	}

	log := c.log(ctx, logrus.Fields{"userID": userID, "projectName": *opts.Name})
	log.Debug("creating project for user")

	project, _, err := c.gitlabClient.Projects.CreateProjectForUser(userID, opts, gitlab.WithContext(ctx))
	if err != nil {
		log.WithError(err).Error("error creating project for user")
		return nil, err
	}
	if project == nil {
		return nil, cerrors.NewNotFound(fmt.Sprintf("created project %s", *opts.Name))
	}
	return project, nil
}

// UpdateProject edits an existing project.
func (c *Client) UpdateProject(ctx context.Context, projectID int, opts *gitlab.EditProjectOptions) (*gitlab.Project, error) {
	if opts == nil {
		return nil, cerrors.NewConfiguration("project edit options are required")
	}

	log := c.log(ctx, logrus.Fields{"projectID": projectID})
	log.Debug("updating project")

	project, _, err := c.gitlabClient.Projects.EditProject(projectID, opts, gitlab.WithContext(ctx))
	if err != nil {
		log.WithError(err).Error("error updating project")
		return nil, err
	}
	if project == nil {
		return nil, cerrors.NewNotFound(fmt.Sprintf("project %d", projectID))
	}
	return project, nil
}

// DeleteProject schedules a project for deletion.
func (c *Client) DeleteProject(ctx context.Context, projectID int) error {
	log := c.log(ctx, logrus.Fields{"projectID": projectID})
	log.Debug("deleting project")

	_, err := c.gitlabClient.Projects.DeleteProject(projectID, nil, gitlab.WithContext(ctx))
	if err != nil {
		log.WithError(err).Error("error deleting project")
		return err
	}
	return nil
}

// TransferProject moves a project into the given namespace.
func (c *Client) TransferProject(ctx context.Context, projectID int, namespace string) (*gitlab.Project, error) {
	if namespace == "" {
		return nil, cerrors.NewConfiguration("target namespace is required")
	}

	log := c.log(ctx, logrus.Fields{"projectID": projectID, "namespace": namespace})
	log.Debug("transferring project")

	project, _, err := c.gitlabClient.Projects.TransferProject(projectID, &gitlab.TransferProjectOptions{
		Namespace: gitlab.Ptr(namespace),
	}, gitlab.WithContext(ctx))
	if err != nil {
		log.WithError(err).Error("error transferring project")
		return nil, err
	}
	if project == nil {
		return nil, cerrors.NewNotFound(fmt.Sprintf("project %d", projectID))
	}
	return project, nil
}
