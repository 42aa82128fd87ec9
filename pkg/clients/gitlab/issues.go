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

// GetIssue fetches a single project issue.
func (c *Client) GetIssue(ctx context.Context, projectID, issueIID int) (*gitlab.Issue, error) {
	log := c.log(ctx, logrus.Fields{"projectID": projectID, "issueIID": issueIID})
	log.Debug("fetching issue")

	issue, _, err := c.gitlabClient.Issues.GetIssue(projectID, issueIID, gitlab.WithContext(ctx))
	if err != nil {
		log.WithError(err).Error("error fetching issue")
		return nil, err
	}
	if issue == nil {
		return nil, cerrors.NewNotFound(fmt.Sprintf("issue %d of project %d", issueIID, projectID))
	}
	return issue, nil
}

// GetIssues lists the issues of a project.
func (c *Client) GetIssues(ctx context.Context, projectID int) ([]*gitlab.Issue, error) {
	log := c.log(ctx, logrus.Fields{"projectID": projectID})
	log.Debug("fetching issues")

	issues, _, err := c.gitlabClient.Issues.ListProjectIssues(projectID, &gitlab.ListProjectIssuesOptions{}, gitlab.WithContext(ctx))
	if err != nil {
		log.WithError(err).Error("error fetching issues")
		return nil, err
	}
	return issues, nil
}

// CreateIssue opens a new issue on a project.
func (c *Client) CreateIssue(ctx context.Context, projectID int, opts *gitlab.CreateIssueOptions) (*gitlab.Issue, error) {
	if opts == nil || opts.Title == nil || *opts.Title == "" {
		return nil, cerrors.NewConfiguration("issue title is required")
	}

	log := c.log(ctx, logrus.Fields{"projectID": projectID, "title": *opts.Title})
	log.Debug("creating issue")

	issue, _, err := c.gitlabClient.Issues.CreateIssue(projectID, opts, gitlab.WithContext(ctx))
	if err != nil {
		log.WithError(err).Error("error creating issue")
		return nil, err
	}
	if issue == nil {
		return nil, cerrors.NewNotFound(fmt.Sprintf("created issue on project %d", projectID))
	}
	return issue, nil
}

// UpdateIssue edits an issue, including state transitions via the
// StateEvent option.
func (c *Client) UpdateIssue(ctx context.Context, projectID, issueIID int, opts *gitlab.UpdateIssueOptions) (*gitlab.Issue, error) {
	if opts == nil {
		return nil, cerrors.NewConfiguration("issue update options are required")
	}

	log := c.log(ctx, logrus.Fields{"projectID": projectID, "issueIID": issueIID})
	log.Debug("updating issue")

	issue, _, err := c.gitlabClient.Issues.UpdateIssue(projectID, issueIID, opts, gitlab.WithContext(ctx))
	if err != nil {
		log.WithError(err).Error("error updating issue")
		return nil, err
	}
	if issue == nil {
		return nil, cerrors.NewNotFound(fmt.Sprintf("issue %d of project %d", issueIID, projectID))
	}
	return issue, nil
}
