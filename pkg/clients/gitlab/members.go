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

// GetGroupMembers lists the direct members of a group.
func (c *Client) GetGroupMembers(ctx context.Context, groupID int) ([]*gitlab.GroupMember, error) {
	log := c.log(ctx, logrus.Fields{"groupID": groupID})
	log.Debug("fetching group members")

	members, _, err := c.gitlabClient.Groups.ListGroupMembers(groupID, &gitlab.ListGroupMembersOptions{}, gitlab.WithContext(ctx))
	if err != nil {
		log.WithError(err).Error("error fetching group members")
		return nil, err
	}
	return members, nil
}

// GetNamespaceMembers lists every member of a namespace, inherited
// memberships included.
func (c *Client) GetNamespaceMembers(ctx context.Context, namespaceID int) ([]*gitlab.GroupMember, error) {
	log := c.log(ctx, logrus.Fields{"namespaceID": namespaceID})
	log.Debug("fetching namespace members")

	members, _, err := c.gitlabClient.Groups.ListAllGroupMembers(namespaceID, &gitlab.ListGroupMembersOptions{}, gitlab.WithContext(ctx))
	if err != nil {
		log.WithError(err).Error("error fetching namespace members")
		return nil, err
	}
	return members, nil
}

// AddGroupMember adds a user to a group with the given access level.
func (c *Client) AddGroupMember(ctx context.Context, groupID, userID int, accessLevel gitlab.AccessLevelValue) (*gitlab.GroupMember, error) {
	log := c.log(ctx, logrus.Fields{
		"groupID":     groupID,
		"userID":      userID,
		"accessLevel": accessLevel,
	})
	log.Debug("adding group member")

	member, _, err := c.gitlabClient.GroupMembers.AddGroupMember(groupID, &gitlab.AddGroupMemberOptions{
		UserID:      gitlab.Ptr(userID),
		AccessLevel: gitlab.Ptr(accessLevel),
	}, gitlab.WithContext(ctx))
	if err != nil {
		log.WithError(err).Error("error adding group member")
		return nil, err
	}
	if member == nil {
		return nil, cerrors.NewNotFound(fmt.Sprintf("member %d of group %d", userID, groupID))
	}
	return member, nil
}

// DeleteGroupMember removes a user from a group.
func (c *Client) DeleteGroupMember(ctx context.Context, groupID, userID int) error {
	log := c.log(ctx, logrus.Fields{"groupID": groupID, "userID": userID})
	log.Debug("removing group member")

	_, err := c.gitlabClient.GroupMembers.RemoveGroupMember(groupID, userID, nil, gitlab.WithContext(ctx))
	if err != nil {
		log.WithError(err).Error("error removing group member")
		return err
	}
	return nil
}

// GetProjectMembers lists the direct members of a project.
func (c *Client) GetProjectMembers(ctx context.Context, projectID int) ([]*gitlab.ProjectMember, error) {
	log := c.log(ctx, logrus.Fields{"projectID": projectID})
	log.Debug("fetching project members")

	members, _, err := c.gitlabClient.ProjectMembers.ListProjectMembers(projectID, &gitlab.ListProjectMembersOptions{}, gitlab.WithContext(ctx))
	if err != nil {
		log.WithError(err).Error("error fetching project members")
		return nil, err
	}
	return members, nil
}

// AddProjectMember adds a user to a project with the given access level.
func (c *Client) AddProjectMember(ctx context.Context, projectID, userID int, accessLevel gitlab.AccessLevelValue) (*gitlab.ProjectMember, error) {
	log := c.log(ctx, logrus.Fields{
		"projectID":   projectID,
		"userID":      userID,
		"accessLevel": accessLevel,
	})
	log.Debug("adding project member")

	member, _, err := c.gitlabClient.ProjectMembers.AddProjectMember(projectID, &gitlab.AddProjectMemberOptions{
		UserID:      userID,
		AccessLevel: gitlab.Ptr(accessLevel),
	}, gitlab.WithContext(ctx))
	if err != nil {
		log.WithError(err).Error("error adding project member")
		return nil, err
	}
	if member == nil {
		return nil, cerrors.NewNotFound(fmt.Sprintf("member %d of project %d", userID, projectID))
	}
	return member, nil
}

// DeleteProjectMember removes a user from a project.
func (c *Client) DeleteProjectMember(ctx context.Context, projectID, userID int) error {
	log := c.log(ctx, logrus.Fields{"projectID": projectID, "userID": userID})
	log.Debug("removing project member")

	_, err := c.gitlabClient.ProjectMembers.DeleteProjectMember(projectID, userID, gitlab.WithContext(ctx))
	if err != nil {
		log.WithError(err).Error("error removing project member")
		return err
	}
	return nil
}
