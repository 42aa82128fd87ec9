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

// GetLabels lists the labels of a project.
func (c *Client) GetLabels(ctx context.Context, projectID int) ([]*gitlab.Label, error) {
	log := c.log(ctx, logrus.Fields{"projectID": projectID})
	log.Debug("fetching labels")

	labels, _, err := c.gitlabClient.Labels.ListLabels(projectID, &gitlab.ListLabelsOptions{}, gitlab.WithContext(ctx))
	if err != nil {
		log.WithError(err).Error("error fetching labels")
		return nil, err
	}
	return labels, nil
}

// CreateLabel creates a label with the given color.
func (c *Client) CreateLabel(ctx context.Context, projectID int, name, color string) (*gitlab.Label, error) {
	if name == "" || color == "" {
		return nil, cerrors.NewConfiguration("label name and color are required")
	}

	log := c.log(ctx, logrus.Fields{"projectID": projectID, "label": name, "color": color})
	log.Debug("creating label")

	label, _, err := c.gitlabClient.Labels.CreateLabel(projectID, &gitlab.CreateLabelOptions{
		Name:  gitlab.Ptr(name),
		Color: gitlab.Ptr(color),
	}, gitlab.WithContext(ctx))
	if err != nil {
		log.WithError(err).Error("error creating label")
		return nil, err
	}
	if label == nil {
		return nil, cerrors.NewNotFound(fmt.Sprintf("created label %s", name))
	}
	return label, nil
}

// UpdateLabel renames a label and/or changes its color.
func (c *Client) UpdateLabel(ctx context.Context, projectID int, oldName, newName, color string) (*gitlab.Label, error) {
	if oldName == "" {
		return nil, cerrors.NewConfiguration("label name is required")
	}
	if newName == "" && color == "" {
		return nil, cerrors.NewConfiguration("a new name or a new color is required")
	}

	log := c.log(ctx, logrus.Fields{"projectID": projectID, "label": oldName})
	log.Debug("updating label")

	opts := &gitlab.UpdateLabelOptions{}
	if newName != "" {
		opts.NewName = gitlab.Ptr(newName)
	}
	if color != "" {
		opts.Color = gitlab.Ptr(color)
	}

	label, _, err := c.gitlabClient.Labels.UpdateLabel(projectID, oldName, opts, gitlab.WithContext(ctx))
	if err != nil {
		log.WithError(err).Error("error updating label")
		return nil, err
	}
	if label == nil {
		return nil, cerrors.NewNotFound(fmt.Sprintf("label %s of project %d", oldName, projectID))
	}
	return label, nil
}

// DeleteLabel removes a label by name.
func (c *Client) DeleteLabel(ctx context.Context, projectID int, name string) error {
	if name == "" {
		return cerrors.NewConfiguration("label name is required")
	}

	log := c.log(ctx, logrus.Fields{"projectID": projectID, "label": name})
	log.Debug("deleting label")

	_, err := c.gitlabClient.Labels.DeleteLabel(projectID, name, nil, gitlab.WithContext(ctx))
	if err != nil {
		log.WithError(err).Error("error deleting label")
		return err
	}
	return nil
}
