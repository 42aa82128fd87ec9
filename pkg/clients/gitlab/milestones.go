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

// GetMilestones lists the milestones of a project.
func (c *Client) GetMilestones(ctx context.Context, projectID int) ([]*gitlab.Milestone, error) {
	log := c.log(ctx, logrus.Fields{"projectID": projectID})
	log.Debug("fetching milestones")

	milestones, _, err := c.gitlabClient.Milestones.ListMilestones(projectID, &gitlab.ListMilestonesOptions{}, gitlab.WithContext(ctx))
	if err != nil {
		log.WithError(err).Error("error fetching milestones")
		return nil, err
	}
	return milestones, nil
}

// CreateMilestone creates a milestone.
func (c *Client) CreateMilestone(ctx context.Context, projectID int, opts *gitlab.CreateMilestoneOptions) (*gitlab.Milestone, error) {
	if opts == nil || opts.Title == nil || *opts.Title == "" {
		return nil, cerrors.NewConfiguration("milestone title is required")
	}

	log := c.log(ctx, logrus.Fields{"projectID": projectID, "title": *opts.Title})
	log.Debug("creating milestone")

	milestone, _, err := c.gitlabClient.Milestones.CreateMilestone(projectID, opts, gitlab.WithContext(ctx))
	if err != nil {
		log.WithError(err).Error("error creating milestone")
		return nil, err
	}
	if milestone == nil {
		return nil, cerrors.NewNotFound(fmt.Sprintf("created milestone %s", *opts.Title))
	}
	return milestone, nil
}

// UpdateMilestone edits a milestone, including close/activate transitions
// via the StateEvent option.
func (c *Client) UpdateMilestone(ctx context.Context, projectID, milestoneID int, opts *gitlab.UpdateMilestoneOptions) (*gitlab.Milestone, error) {
	if opts == nil {
		return nil, cerrors.NewConfiguration("milestone update options are required")
	}

	log := c.log(ctx, logrus.Fields{"projectID": projectID, "milestoneID": milestoneID})
	log.Debug("updating milestone")

	milestone, _, err := c.gitlabClient.Milestones.UpdateMilestone(projectID, milestoneID, opts, gitlab.WithContext(ctx))
	if err != nil {
		log.WithError(err).Error("error updating milestone")
		return nil, err
	}
	if milestone == nil {
		return nil, cerrors.NewNotFound(fmt.Sprintf("milestone %d of project %d", milestoneID, projectID))
	}
	return milestone, nil
}
