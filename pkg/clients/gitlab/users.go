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

// GetUser fetches a single user by ID.
func (c *Client) GetUser(ctx context.Context, userID int) (*gitlab.User, error) {
	log := c.log(ctx, logrus.Fields{"userID": userID})
	log.Debug("fetching user")

	user, _, err := c.gitlabClient.Users.GetUser(userID, gitlab.GetUsersOptions{}, gitlab.WithContext(ctx))
	if err != nil {
		log.WithError(err).Error("error fetching user")
		return nil, err
	}
	if user == nil {
		return nil, cerrors.NewNotFound(fmt.Sprintf("user %d", userID))
	}
	return user, nil
}

// GetUserWithSudo fetches the user record behind a username by
// impersonating it. Requires an administrator token.
func (c *Client) GetUserWithSudo(ctx context.Context, username string) (*gitlab.User, error) {
	if username == "" {
		return nil, cerrors.NewConfiguration("username is required")
	}

	log := c.log(ctx, logrus.Fields{"username": username})
	log.Debug("fetching user via sudo")

	user, _, err := c.gitlabClient.Users.CurrentUser(gitlab.WithContext(ctx), gitlab.WithSudo(username))
	if err != nil {
		log.WithError(err).Error("error fetching user via sudo")
		return nil, err
	}
	if user == nil {
		return nil, cerrors.NewNotFound(fmt.Sprintf("user %s", username))
	}
	return user, nil
}

// GetCurrentUser fetches the user the session token belongs to.
func (c *Client) GetCurrentUser(ctx context.Context) (*gitlab.User, error) {
	log := c.log(ctx, nil)
	log.Debug("fetching current user")

	user, _, err := c.gitlabClient.Users.CurrentUser(gitlab.WithContext(ctx))
	if err != nil {
		log.WithError(err).Error("error fetching current user")
		return nil, err
	}
	if user == nil {
		return nil, cerrors.NewNotFound("current user")
	}
	return user, nil
}

// FindUsers searches users by email or username fragment.
func (c *Client) FindUsers(ctx context.Context, emailOrUsername string) ([]*gitlab.User, error) {
	if emailOrUsername == "" {
		return nil, cerrors.NewConfiguration("search term is required")
	}

	log := c.log(ctx, logrus.Fields{"search": emailOrUsername})
	log.Debug("searching users")

	users, _, err := c.gitlabClient.Users.ListUsers(&gitlab.ListUsersOptions{
		Search: gitlab.Ptr(emailOrUsername),
	}, gitlab.WithContext(ctx))
	if err != nil {
		log.WithError(err).Error("error searching users")
		return nil, err
	}
	return users, nil
}

// CreateUser provisions a new user. Requires an administrator token.
func (c *Client) CreateUser(ctx context.Context, opts *gitlab.CreateUserOptions) (*gitlab.User, error) {
	if opts == nil || opts.Email == nil || *opts.Email == "" {
		return nil, cerrors.NewConfiguration("user email is required")
	}

	log := c.log(ctx, logrus.Fields{"email": *opts.Email})
	log.Debug("creating user")

	user, _, err := c.gitlabClient.Users.CreateUser(opts, gitlab.WithContext(ctx))
	if err != nil {
		log.WithError(err).Error("error creating user")
		return nil, err
	}
	if user == nil {
		return nil, cerrors.NewNotFound(fmt.Sprintf("created user %s", *opts.Email))
	}
	return user, nil
}

// DeleteUser removes a user. Requires an administrator token.
func (c *Client) DeleteUser(ctx context.Context, userID int) error {
	log := c.log(ctx, logrus.Fields{"userID": userID})
	log.Debug("deleting user")

	_, err := c.gitlabClient.Users.DeleteUser(userID, gitlab.WithContext(ctx))
	if err != nil {
		log.WithError(err).Error("error deleting user")
		return err
	}
	return nil
}

// BlockUser blocks a user. Requires an administrator token.
func (c *Client) BlockUser(ctx context.Context, userID int) error {
	log := c.log(ctx, logrus.Fields{"userID": userID})
	log.Debug("blocking user")

	if err := c.gitlabClient.Users.BlockUser(userID, gitlab.WithContext(ctx)); err != nil {
		log.WithError(err).Error("error blocking user")
		return err
	}
	return nil
}

// UnblockUser unblocks a user. Requires an administrator token.
func (c *Client) UnblockUser(ctx context.Context, userID int) error {
	log := c.log(ctx, logrus.Fields{"userID": userID})
	log.Debug("unblocking user")

	if err := c.gitlabClient.Users.UnblockUser(userID, gitlab.WithContext(ctx)); err != nil {
		log.WithError(err).Error("error unblocking user")
		return err
	}
	return nil
}
