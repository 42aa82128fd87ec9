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

// GetBranch fetches a single branch by name.
func (c *Client) GetBranch(ctx context.Context, projectID int, branchName string) (*gitlab.Branch, error) {
	if branchName == "" {
		return nil, cerrors.NewConfiguration("branch name is required")
	}

	log := c.log(ctx, logrus.Fields{"projectID": projectID, "branch": branchName})
	log.Debug("fetching branch")

	branch, _, err := c.gitlabClient.Branches.GetBranch(projectID, branchName, gitlab.WithContext(ctx))
	if err != nil {
		log.WithError(err).Error("error fetching branch")
		return nil, err
	}
	if branch == nil {
		return nil, cerrors.NewNotFound(fmt.Sprintf("branch %s of project %d", branchName, projectID))
	}
	return branch, nil
}

// GetBranches lists the branches of a project.
func (c *Client) GetBranches(ctx context.Context, projectID int) ([]*gitlab.Branch, error) {
	log := c.log(ctx, logrus.Fields{"projectID": projectID})
	log.Debug("fetching branches")

	branches, _, err := c.gitlabClient.Branches.ListBranches(projectID, &gitlab.ListBranchesOptions{}, gitlab.WithContext(ctx))
	if err != nil {
		log.WithError(err).Error("error fetching branches")
		return nil, err
	}
	return branches, nil
}

// CreateBranch creates a branch pointing at ref.
func (c *Client) CreateBranch(ctx context.Context, projectID int, branchName, ref string) (*gitlab.Branch, error) {
	if branchName == "" || ref == "" {
		return nil, cerrors.NewConfiguration("branch name and ref are required")
	}

	log := c.log(ctx, logrus.Fields{"projectID": projectID, "branch": branchName, "ref": ref})
	log.Debug("creating branch")

	branch, _, err := c.gitlabClient.Branches.CreateBranch(projectID, &gitlab.CreateBranchOptions{
		Branch: gitlab.Ptr(branchName),
		Ref:    gitlab.Ptr(ref),
	}, gitlab.WithContext(ctx))
	if err != nil {
		log.WithError(err).Error("error creating branch")
		return nil, err
	}
	if branch == nil {
		return nil, cerrors.NewNotFound(fmt.Sprintf("created branch %s", branchName))
	}
	return branch, nil
}

// DeleteBranch removes a branch.
func (c *Client) DeleteBranch(ctx context.Context, projectID int, branchName string) error {
	if branchName == "" {
		return cerrors.NewConfiguration("branch name is required")
	}

	log := c.log(ctx, logrus.Fields{"projectID": projectID, "branch": branchName})
	log.Debug("deleting branch")

	_, err := c.gitlabClient.Branches.DeleteBranch(projectID, branchName, gitlab.WithContext(ctx))
	if err != nil {
		log.WithError(err).Error("error deleting branch")
		return err
	}
	return nil
}

// ProtectBranch protects a branch with the instance default access
// levels.
func (c *Client) ProtectBranch(ctx context.Context, projectID int, branchName string) error {
	if branchName == "" {
		return cerrors.NewConfiguration("branch name is required")
	}

	log := c.log(ctx, logrus.Fields{"projectID": projectID, "branch": branchName})
	log.Debug("protecting branch")

	_, _, err := c.gitlabClient.ProtectedBranches.ProtectRepositoryBranches(projectID,
		&gitlab.ProtectRepositoryBranchesOptions{
			Name: gitlab.Ptr(branchName),
		}, gitlab.WithContext(ctx))
	if err != nil {
		log.WithError(err).Error("error protecting branch")
		return err
	}
	return nil
}

// UnprotectBranch removes the protection from a branch.
func (c *Client) UnprotectBranch(ctx context.Context, projectID int, branchName string) error {
	if branchName == "" {
		return cerrors.NewConfiguration("branch name is required")
	}

	log := c.log(ctx, logrus.Fields{"projectID": projectID, "branch": branchName})
	log.Debug("unprotecting branch")

	_, err := c.gitlabClient.ProtectedBranches.UnprotectRepositoryBranches(projectID, branchName, gitlab.WithContext(ctx))
	if err != nil {
		log.WithError(err).Error("error unprotecting branch")
		return err
	}
	return nil
}
