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

// GetGroup fetches a single group by ID.
func (c *Client) GetGroup(ctx context.Context, groupID int) (*gitlab.Group, error) {
	log := c.log(ctx, logrus.Fields{"groupID": groupID})
	log.Debug("fetching group")

	group, _, err := c.gitlabClient.Groups.GetGroup(groupID, nil, gitlab.WithContext(ctx))
	if err != nil {
		log.WithError(err).Error("error fetching group")
		return nil, err
	}
	if group == nil {
		return nil, cerrors.NewNotFound(fmt.Sprintf("group %d", groupID))
	}
	return group, nil
}

// GetGroups lists the groups visible to the authenticated user.
func (c *Client) GetGroups(ctx context.Context) ([]*gitlab.Group, error) {
	log := c.log(ctx, nil)
	log.Debug("fetching groups")

	groups, _, err := c.gitlabClient.Groups.ListGroups(&gitlab.ListGroupsOptions{}, gitlab.WithContext(ctx))
	if err != nil {
		log.WithError(err).Error("error fetching groups")
		return nil, err
	}
	return groups, nil
}

// GetGroupProjects lists the projects of a group.
func (c *Client) GetGroupProjects(ctx context.Context, groupID int) ([]*gitlab.Project, error) {
	log := c.log(ctx, logrus.Fields{"groupID": groupID})
	log.Debug("fetching group projects")

	projects, _, err := c.gitlabClient.Groups.ListGroupProjects(groupID, &gitlab.ListGroupProjectsOptions{}, gitlab.WithContext(ctx))
	if err != nil {
		log.WithError(err).Error("error fetching group projects")
		return nil, err
	}
	return projects, nil
}

// CreateGroup creates a group.
func (c *Client) CreateGroup(ctx context.Context, opts *gitlab.CreateGroupOptions) (*gitlab.Group, error) {
	if opts == nil || opts.Name == nil || *opts.Name == "" {
		return nil, cerrors.NewConfiguration("group name is required")
	}

	log := c.log(ctx, logrus.Fields{"groupName": *opts.Name})
	log.Debug("creating group")

	group, _, err := c.gitlabClient.Groups.CreateGroup(opts, gitlab.WithContext(ctx))
	if err != nil {
		log.WithError(err).Error("error creating group")
		return nil, err
	}
	if group == nil {
		return nil, cerrors.NewNotFound(fmt.Sprintf("created group %s", *opts.Name))
	}
	return group, nil
}

// CreateGroupWithSudo creates a group on behalf of another user. Requires
// an administrator token.
func (c *Client) CreateGroupWithSudo(ctx context.Context, opts *gitlab.CreateGroupOptions, sudoUser string) (*gitlab.Group, error) {
	if opts == nil || opts.Name == nil || *opts.Name == "" {
		return nil, cerrors.NewConfiguration("group name is required")
	}
	if sudoUser == "" {
		return nil, cerrors.NewConfiguration("sudo user is required")
	}

	log := c.log(ctx, logrus.Fields{"groupName": *opts.Name, "sudoUser": sudoUser})
	log.Debug("creating group via sudo")

	group, _, err := c.gitlabClient.Groups.CreateGroup(opts, gitlab.WithContext(ctx), gitlab.WithSudo(sudoUser))
	if err != nil {
		log.WithError(err).Error("error creating group via sudo")
		return nil, err
	}
	if group == nil {
		return nil, cerrors.NewNotFound(fmt.Sprintf("created group %s", *opts.Name))
	}
	return group, nil
}

// DeleteGroup schedules a group for deletion.
func (c *Client) DeleteGroup(ctx context.Context, groupID int) error {
	log := c.log(ctx, logrus.Fields{"groupID": groupID})
	log.Debug("deleting group")

	_, err := c.gitlabClient.Groups.DeleteGroup(groupID, nil, gitlab.WithContext(ctx))
	if err != nil {
		log.WithError(err).Error("error deleting group")
		return err
	}
	return nil
}
