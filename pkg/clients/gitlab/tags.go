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

	"github.com/sirupsen/logrus"
	gitlab "gitlab.com/gitlab-org/api/client-go"

	"github.com/profiq/gitlab-connector/pkg/cerrors"
)

// GetTags lists the tags of a project.
func (c *Client) GetTags(ctx context.Context, projectID int) ([]*gitlab.Tag, error) {
	log := c.log(ctx, logrus.Fields{"projectID": projectID})
	log.Debug("fetching tags")

	tags, _, err := c.gitlabClient.Tags.ListTags(projectID, &gitlab.ListTagsOptions{}, gitlab.WithContext(ctx))
	if err != nil {
		log.WithError(err).Error("error fetching tags")
		return nil, err
	}
	return tags, nil
}

// DeleteTag removes a tag.
func (c *Client) DeleteTag(ctx context.Context, projectID int, tagName string) error {
	if tagName == "" {
		return cerrors.NewConfiguration("tag name is required")
	}

	log := c.log(ctx, logrus.Fields{"projectID": projectID, "tag": tagName})
	log.Debug("deleting tag")

	_, err := c.gitlabClient.Tags.DeleteTag(projectID, tagName, gitlab.WithContext(ctx))
	if err != nil {
		log.WithError(err).Error("error deleting tag")
		return err
	}
	return nil
}
