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
	"time"

	"github.com/sirupsen/logrus"
	gitlab "gitlab.com/gitlab-org/api/client-go"

	"github.com/profiq/gitlab-connector/pkg/cerrors"
)

// GetCommit fetches a single commit by hash.
func (c *Client) GetCommit(ctx context.Context, projectID int, commitHash string) (*gitlab.Commit, error) {
	if commitHash == "" {
		return nil, cerrors.NewConfiguration("commit hash is required")
	}

	log := c.log(ctx, logrus.Fields{"projectID": projectID, "commitHash": commitHash})
	log.Debug("fetching commit")

	commit, _, err := c.gitlabClient.Commits.GetCommit(projectID, commitHash, nil, gitlab.WithContext(ctx))
	if err != nil {
		log.WithError(err).Error("error fetching commit")
		return nil, err
	}
	if commit == nil {
		return nil, cerrors.NewNotFound(fmt.Sprintf("commit %s of project %d", commitHash, projectID))
	}
	return commit, nil
}

// GetCommits lists the commits of a branch.
func (c *Client) GetCommits(ctx context.Context, projectID int, branchOrTag string) ([]*gitlab.Commit, error) {
	log := c.log(ctx, logrus.Fields{"projectID": projectID, "ref": branchOrTag})
	log.Debug("fetching commits")

	opts := &gitlab.ListCommitsOptions{}
	if branchOrTag != "" {
		opts.RefName = gitlab.Ptr(branchOrTag)
	}

	commits, _, err := c.gitlabClient.Commits.ListCommits(projectID, opts, gitlab.WithContext(ctx))
	if err != nil {
		log.WithError(err).Error("error fetching commits")
		return nil, err
	}
	return commits, nil
}

// GetLastCommits lists the commits of a ref made since the given time.
func (c *Client) GetLastCommits(ctx context.Context, projectID int, branchOrTag string, since time.Time) ([]*gitlab.Commit, error) {
	log := c.log(ctx, logrus.Fields{"projectID": projectID, "ref": branchOrTag, "since": since})
	log.Debug("fetching last commits")

	opts := &gitlab.ListCommitsOptions{
		Since: gitlab.Ptr(since),
	}
	if branchOrTag != "" {
		opts.RefName = gitlab.Ptr(branchOrTag)
	}

	commits, _, err := c.gitlabClient.Commits.ListCommits(projectID, opts, gitlab.WithContext(ctx))
	if err != nil {
		log.WithError(err).Error("error fetching last commits")
		return nil, err
	}
	return commits, nil
}

// GetProjectCommits lists the commits on the default branch.
func (c *Client) GetProjectCommits(ctx context.Context, projectID int) ([]*gitlab.Commit, error) {
	return c.GetCommits(ctx, projectID, "")
}

// GetCommitDiffs returns the diffs introduced by a commit.
func (c *Client) GetCommitDiffs(ctx context.Context, projectID int, commitHash string) ([]*gitlab.Diff, error) {
	if commitHash == "" {
		return nil, cerrors.NewConfiguration("commit hash is required")
	}

	log := c.log(ctx, logrus.Fields{"projectID": projectID, "commitHash": commitHash})
	log.Debug("fetching commit diffs")

	diffs, _, err := c.gitlabClient.Commits.GetCommitDiff(projectID, commitHash, &gitlab.GetCommitDiffOptions{}, gitlab.WithContext(ctx))
	if err != nil {
		log.WithError(err).Error("error fetching commit diffs")
		return nil, err
	}
	return diffs, nil
}

// GetCommitComments lists the comments on a commit.
func (c *Client) GetCommitComments(ctx context.Context, projectID int, commitHash string) ([]*gitlab.CommitComment, error) {
	if commitHash == "" {
		return nil, cerrors.NewConfiguration("commit hash is required")
	}

	log := c.log(ctx, logrus.Fields{"projectID": projectID, "commitHash": commitHash})
	log.Debug("fetching commit comments")

	comments, _, err := c.gitlabClient.Commits.GetCommitComments(projectID, commitHash,
		&gitlab.GetCommitCommentsOptions{}, gitlab.WithContext(ctx))
	if err != nil {
		log.WithError(err).Error("error fetching commit comments")
		return nil, err
	}
	return comments, nil
}

// CreateCommitComment posts a comment on a commit.
func (c *Client) CreateCommitComment(ctx context.Context, projectID int, commitHash, note string) (*gitlab.CommitComment, error) {
	if commitHash == "" || note == "" {
		return nil, cerrors.NewConfiguration("commit hash and note are required")
	}

	log := c.log(ctx, logrus.Fields{"projectID": projectID, "commitHash": commitHash})
	log.Debug("creating commit comment")

	comment, _, err := c.gitlabClient.Commits.PostCommitComment(projectID, commitHash, &gitlab.PostCommitCommentOptions{
		Note: gitlab.Ptr(note),
	}, gitlab.WithContext(ctx))
	if err != nil {
		log.WithError(err).Error("error creating commit comment")
		return nil, err
	}
	if comment == nil {
		return nil, cerrors.NewNotFound(fmt.Sprintf("created comment on commit %s", commitHash))
	}
	return comment, nil
}

// GetCommitStatuses lists the CI statuses reported for a commit.
func (c *Client) GetCommitStatuses(ctx context.Context, projectID int, commitHash string) ([]*gitlab.CommitStatus, error) {
	if commitHash == "" {
		return nil, cerrors.NewConfiguration("commit hash is required")
	}

	log := c.log(ctx, logrus.Fields{"projectID": projectID, "commitHash": commitHash})
	log.Debug("fetching commit statuses")

	statuses, _, err := c.gitlabClient.Commits.GetCommitStatuses(projectID, commitHash,
		&gitlab.GetCommitStatusesOptions{}, gitlab.WithContext(ctx))
	if err != nil {
		log.WithError(err).Error("error fetching commit statuses")
		return nil, err
	}
	return statuses, nil
}

// SetCommitStatus reports a CI status on a commit.
func (c *Client) SetCommitStatus(ctx context.Context, projectID int, commitHash string, opts *gitlab.SetCommitStatusOptions) (*gitlab.CommitStatus, error) {
	if commitHash == "" {
		return nil, cerrors.NewConfiguration("commit hash is required")
	}
	if opts == nil || opts.State == "" {
		return nil, cerrors.NewConfiguration("commit status state is required")
	}

	log := c.log(ctx, logrus.Fields{
		"projectID":  projectID,
		"commitHash": commitHash,
		"state":      opts.State,
	})
	log.Debug("setting commit status")

	status, _, err := c.gitlabClient.Commits.SetCommitStatus(projectID, commitHash, opts, gitlab.WithContext(ctx))
	if err != nil {
		log.WithError(err).Error("error setting commit status")
		return nil, err
	}
	if status == nil {
		return nil, cerrors.NewNotFound(fmt.Sprintf("status of commit %s", commitHash))
	}
	return status, nil
}
