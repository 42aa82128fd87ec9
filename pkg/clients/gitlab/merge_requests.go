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

// GetMergeRequest fetches a single merge request.
func (c *Client) GetMergeRequest(ctx context.Context, projectID, mergeRequestIID int) (*gitlab.MergeRequest, error) {
	log := c.log(ctx, logrus.Fields{"projectID": projectID, "mergeRequestIID": mergeRequestIID})
	log.Debug("fetching merge request")

	mr, _, err := c.gitlabClient.MergeRequests.GetMergeRequest(projectID, mergeRequestIID, nil, gitlab.WithContext(ctx))
	if err != nil {
		log.WithError(err).Error("error fetching merge request")
		return nil, err
	}
	if mr == nil {
		return nil, cerrors.NewNotFound(fmt.Sprintf("merge request %d of project %d", mergeRequestIID, projectID))
	}
	return mr, nil
}

// GetMergeRequests lists the merge requests of a project, any state.
func (c *Client) GetMergeRequests(ctx context.Context, projectID int) ([]*gitlab.BasicMergeRequest, error) {
	log := c.log(ctx, logrus.Fields{"projectID": projectID})
	log.Debug("fetching merge requests")

	mrs, _, err := c.gitlabClient.MergeRequests.ListProjectMergeRequests(projectID,
		&gitlab.ListProjectMergeRequestsOptions{}, gitlab.WithContext(ctx))
	if err != nil {
		log.WithError(err).Error("error fetching merge requests")
		return nil, err
	}
	return mrs, nil
}

// GetOpenMergeRequests lists only the open merge requests of a project.
func (c *Client) GetOpenMergeRequests(ctx context.Context, projectID int) ([]*gitlab.BasicMergeRequest, error) {
	log := c.log(ctx, logrus.Fields{"projectID": projectID})
	log.Debug("fetching open merge requests")

	mrs, _, err := c.gitlabClient.MergeRequests.ListProjectMergeRequests(projectID,
		&gitlab.ListProjectMergeRequestsOptions{
			State: gitlab.Ptr("opened"),
		}, gitlab.WithContext(ctx))
	if err != nil {
		log.WithError(err).Error("error fetching open merge requests")
		return nil, err
	}
	return mrs, nil
}

// GetMergeRequestChanges returns the file diffs of a merge request.
func (c *Client) GetMergeRequestChanges(ctx context.Context, projectID, mergeRequestIID int) ([]*gitlab.MergeRequestDiff, error) {
	log := c.log(ctx, logrus.Fields{"projectID": projectID, "mergeRequestIID": mergeRequestIID})
	log.Debug("fetching merge request changes")

	diffs, _, err := c.gitlabClient.MergeRequests.ListMergeRequestDiffs(projectID, mergeRequestIID,
		&gitlab.ListMergeRequestDiffsOptions{}, gitlab.WithContext(ctx))
	if err != nil {
		log.WithError(err).Error("error fetching merge request changes")
		return nil, err
	}
	return diffs, nil
}

// GetMergeRequestCommits lists the commits a merge request carries.
func (c *Client) GetMergeRequestCommits(ctx context.Context, projectID, mergeRequestIID int) ([]*gitlab.Commit, error) {
	log := c.log(ctx, logrus.Fields{"projectID": projectID, "mergeRequestIID": mergeRequestIID})
	log.Debug("fetching merge request commits")

	commits, _, err := c.gitlabClient.MergeRequests.GetMergeRequestCommits(projectID, mergeRequestIID,
		&gitlab.GetMergeRequestCommitsOptions{}, gitlab.WithContext(ctx))
	if err != nil {
		log.WithError(err).Error("error fetching merge request commits")
		return nil, err
	}
	return commits, nil
}

// CreateMergeRequest opens a merge request.
func (c *Client) CreateMergeRequest(ctx context.Context, projectID int, opts *gitlab.CreateMergeRequestOptions) (*gitlab.MergeRequest, error) {
	if opts == nil || opts.SourceBranch == nil || *opts.SourceBranch == "" ||
		opts.TargetBranch == nil || *opts.TargetBranch == "" {
		return nil, cerrors.NewConfiguration("source and target branches are required")
	}
	if opts.Title == nil || *opts.Title == "" {
		return nil, cerrors.NewConfiguration("merge request title is required")
	}

	log := c.log(ctx, logrus.Fields{
		"projectID":    projectID,
		"sourceBranch": *opts.SourceBranch,
		"targetBranch": *opts.TargetBranch,
	})
	log.Debug("creating merge request")

	mr, _, err := c.gitlabClient.MergeRequests.CreateMergeRequest(projectID, opts, gitlab.WithContext(ctx))
	if err != nil {
		log.WithError(err).Error("error creating merge request")
		return nil, err
	}
	if mr == nil {
		return nil, cerrors.NewNotFound(fmt.Sprintf("created merge request on project %d", projectID))
	}
	return mr, nil
}

// UpdateMergeRequest edits a merge request.
func (c *Client) UpdateMergeRequest(ctx context.Context, projectID, mergeRequestIID int, opts *gitlab.UpdateMergeRequestOptions) (*gitlab.MergeRequest, error) {
	if opts == nil {
		return nil, cerrors.NewConfiguration("merge request update options are required")
	}

	log := c.log(ctx, logrus.Fields{"projectID": projectID, "mergeRequestIID": mergeRequestIID})
	log.Debug("updating merge request")

	mr, _, err := c.gitlabClient.MergeRequests.UpdateMergeRequest(projectID, mergeRequestIID, opts, gitlab.WithContext(ctx))
	if err != nil {
		log.WithError(err).Error("error updating merge request")
		return nil, err
	}
	if mr == nil {
		return nil, cerrors.NewNotFound(fmt.Sprintf("merge request %d of project %d", mergeRequestIID, projectID))
	}
	return mr, nil
}

// AcceptMergeRequest merges a merge request. opts may be nil for a plain
// merge with the remote defaults.
func (c *Client) AcceptMergeRequest(ctx context.Context, projectID, mergeRequestIID int, opts *gitlab.AcceptMergeRequestOptions) (*gitlab.MergeRequest, error) {
	log := c.log(ctx, logrus.Fields{"projectID": projectID, "mergeRequestIID": mergeRequestIID})
	log.Debug("accepting merge request")

	mr, _, err := c.gitlabClient.MergeRequests.AcceptMergeRequest(projectID, mergeRequestIID, opts, gitlab.WithContext(ctx))
	if err != nil {
		log.WithError(err).Error("error accepting merge request")
		return nil, err
	}
	if mr == nil {
		return nil, cerrors.NewNotFound(fmt.Sprintf("merge request %d of project %d", mergeRequestIID, projectID))
	}
	return mr, nil
}
