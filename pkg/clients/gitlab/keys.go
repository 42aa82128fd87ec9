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

// GetSSHKey fetches a single SSH key by its ID.
func (c *Client) GetSSHKey(ctx context.Context, keyID int) (*gitlab.SSHKey, error) {
	log := c.log(ctx, logrus.Fields{"keyID": keyID})
	log.Debug("fetching ssh key")

	key, _, err := c.gitlabClient.Users.GetSSHKey(keyID, gitlab.WithContext(ctx))
	if err != nil {
		log.WithError(err).Error("error fetching ssh key")
		return nil, err
	}
	if key == nil {
		return nil, cerrors.NewNotFound(fmt.Sprintf("ssh key %d", keyID))
	}
	return key, nil
}

// GetSSHKeys lists the SSH keys of a user. Requires an administrator
// token.
func (c *Client) GetSSHKeys(ctx context.Context, userID int) ([]*gitlab.SSHKey, error) {
	log := c.log(ctx, logrus.Fields{"userID": userID})
	log.Debug("fetching ssh keys for user")

	keys, _, err := c.gitlabClient.Users.ListSSHKeysForUser(userID, &gitlab.ListSSHKeysForUserOptions{}, gitlab.WithContext(ctx))
	if err != nil {
		log.WithError(err).Error("error fetching ssh keys for user")
		return nil, err
	}
	return keys, nil
}

// CreateSSHKey adds an SSH key to a user. Requires an administrator
// token.
func (c *Client) CreateSSHKey(ctx context.Context, userID int, title, key string) (*gitlab.SSHKey, error) {
	if title == "" || key == "" {
		return nil, cerrors.NewConfiguration("ssh key title and key material are required")
	}

	log := c.log(ctx, logrus.Fields{"userID": userID, "title": title})
	log.Debug("adding ssh key for user")

	sshKey, _, err := c.gitlabClient.Users.AddSSHKeyForUser(userID, &gitlab.AddSSHKeyOptions{
		Title: gitlab.Ptr(title),
		Key:   gitlab.Ptr(key),
	}, gitlab.WithContext(ctx))
	if err != nil {
		log.WithError(err).Error("error adding ssh key for user")
		return nil, err
	}
	if sshKey == nil {
		return nil, cerrors.NewNotFound(fmt.Sprintf("created ssh key %s", title))
	}
	return sshKey, nil
}

// DeleteSSHKey removes an SSH key from a user. Requires an administrator
// token.
func (c *Client) DeleteSSHKey(ctx context.Context, userID, keyID int) error {
	log := c.log(ctx, logrus.Fields{"userID": userID, "keyID": keyID})
	log.Debug("deleting ssh key")

	_, err := c.gitlabClient.Users.DeleteSSHKeyForUser(userID, keyID, gitlab.WithContext(ctx))
	if err != nil {
		log.WithError(err).Error("error deleting ssh key")
		return err
	}
	return nil
}

// GetDeployKeys lists the deploy keys of a project.
func (c *Client) GetDeployKeys(ctx context.Context, projectID int) ([]*gitlab.ProjectDeployKey, error) {
	log := c.log(ctx, logrus.Fields{"projectID": projectID})
	log.Debug("fetching deploy keys")

	keys, _, err := c.gitlabClient.DeployKeys.ListProjectDeployKeys(projectID, &gitlab.ListProjectDeployKeysOptions{}, gitlab.WithContext(ctx))
	if err != nil {
		log.WithError(err).Error("error fetching deploy keys")
		return nil, err
	}
	return keys, nil
}

// CreateDeployKey adds a deploy key to a project.
func (c *Client) CreateDeployKey(ctx context.Context, projectID int, title, key string) (*gitlab.ProjectDeployKey, error) {
	if title == "" || key == "" {
		return nil, cerrors.NewConfiguration("deploy key title and key material are required")
	}

	log := c.log(ctx, logrus.Fields{"projectID": projectID, "title": title})
	log.Debug("adding deploy key")

	deployKey, _, err := c.gitlabClient.DeployKeys.AddDeployKey(projectID, &gitlab.AddDeployKeyOptions{
		Title: gitlab.Ptr(title),
		Key:   gitlab.Ptr(key),
	}, gitlab.WithContext(ctx))
	if err != nil {
		log.WithError(err).Error("error adding deploy key")
		return nil, err
	}
	if deployKey == nil {
		return nil, cerrors.NewNotFound(fmt.Sprintf("created deploy key %s", title))
	}
	return deployKey, nil
}

// DeleteDeployKey removes a deploy key from a project.
func (c *Client) DeleteDeployKey(ctx context.Context, projectID, keyID int) error {
	log := c.log(ctx, logrus.Fields{"projectID": projectID, "keyID": keyID})
	log.Debug("deleting deploy key")

	_, err := c.gitlabClient.DeployKeys.DeleteDeployKey(projectID, keyID, gitlab.WithContext(ctx))
	if err != nil {
		log.WithError(err).Error("error deleting deploy key")
		return err
	}
	return nil
}
