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

// GetIssueNote fetches a single note on an issue.
func (c *Client) GetIssueNote(ctx context.Context, projectID, issueIID, noteID int) (*gitlab.Note, error) {
	log := c.log(ctx, logrus.Fields{"projectID": projectID, "issueIID": issueIID, "noteID": noteID})
	log.Debug("fetching issue note")

	note, _, err := c.gitlabClient.Notes.GetIssueNote(projectID, issueIID, noteID, gitlab.WithContext(ctx))
	if err != nil {
		log.WithError(err).Error("error fetching issue note")
		return nil, err
	}
	if note == nil {
		return nil, cerrors.NewNotFound(fmt.Sprintf("note %d of issue %d", noteID, issueIID))
	}
	return note, nil
}

// GetIssueNotes lists the notes on an issue.
func (c *Client) GetIssueNotes(ctx context.Context, projectID, issueIID int) ([]*gitlab.Note, error) {
	log := c.log(ctx, logrus.Fields{"projectID": projectID, "issueIID": issueIID})
	log.Debug("fetching issue notes")

	notes, _, err := c.gitlabClient.Notes.ListIssueNotes(projectID, issueIID, &gitlab.ListIssueNotesOptions{}, gitlab.WithContext(ctx))
	if err != nil {
		log.WithError(err).Error("error fetching issue notes")
		return nil, err
	}
	return notes, nil
}

// CreateIssueNote posts a note on an issue.
func (c *Client) CreateIssueNote(ctx context.Context, projectID, issueIID int, message string) (*gitlab.Note, error) {
	if message == "" {
		return nil, cerrors.NewConfiguration("note message is required")
	}

	log := c.log(ctx, logrus.Fields{"projectID": projectID, "issueIID": issueIID})
	log.Debug("creating issue note")

	note, _, err := c.gitlabClient.Notes.CreateIssueNote(projectID, issueIID, &gitlab.CreateIssueNoteOptions{
		Body: gitlab.Ptr(message),
	}, gitlab.WithContext(ctx))
	if err != nil {
		log.WithError(err).Error("error creating issue note")
		return nil, err
	}
	if note == nil {
		return nil, cerrors.NewNotFound(fmt.Sprintf("created note on issue %d", issueIID))
	}
	return note, nil
}

// GetMergeRequestNotes lists the notes on a merge request.
func (c *Client) GetMergeRequestNotes(ctx context.Context, projectID, mergeRequestIID int) ([]*gitlab.Note, error) {
	log := c.log(ctx, logrus.Fields{"projectID": projectID, "mergeRequestIID": mergeRequestIID})
	log.Debug("fetching merge request notes")

	notes, _, err := c.gitlabClient.Notes.ListMergeRequestNotes(projectID, mergeRequestIID,
		&gitlab.ListMergeRequestNotesOptions{}, gitlab.WithContext(ctx))
	if err != nil {
		log.WithError(err).Error("error fetching merge request notes")
		return nil, err
	}
	return notes, nil
}

// CreateMergeRequestNote posts a note on a merge request.
func (c *Client) CreateMergeRequestNote(ctx context.Context, projectID, mergeRequestIID int, message string) (*gitlab.Note, error) {
	if message == "" {
		return nil, cerrors.NewConfiguration("note message is required")
	}

	log := c.log(ctx, logrus.Fields{"projectID": projectID, "mergeRequestIID": mergeRequestIID})
	log.Debug("creating merge request note")

	note, _, err := c.gitlabClient.Notes.CreateMergeRequestNote(projectID, mergeRequestIID,
		&gitlab.CreateMergeRequestNoteOptions{
			Body: gitlab.Ptr(message),
		}, gitlab.WithContext(ctx))
	if err != nil {
		log.WithError(err).Error("error creating merge request note")
		return nil, err
	}
	if note == nil {
		return nil, cerrors.NewNotFound(fmt.Sprintf("created note on merge request %d", mergeRequestIID))
	}
	return note, nil
}

// UpdateMergeRequestNote edits a note on a merge request.
func (c *Client) UpdateMergeRequestNote(ctx context.Context, projectID, mergeRequestIID, noteID int, message string) (*gitlab.Note, error) {
	if message == "" {
		return nil, cerrors.NewConfiguration("note message is required")
	}

	log := c.log(ctx, logrus.Fields{
		"projectID":       projectID,
		"mergeRequestIID": mergeRequestIID,
		"noteID":          noteID,
	})
	log.Debug("updating merge request note")

	note, _, err := c.gitlabClient.Notes.UpdateMergeRequestNote(projectID, mergeRequestIID, noteID,
		&gitlab.UpdateMergeRequestNoteOptions{
			Body: gitlab.Ptr(message),
		}, gitlab.WithContext(ctx))
	if err != nil {
		log.WithError(err).Error("error updating merge request note")
		return nil, err
	}
	if note == nil {
		return nil, cerrors.NewNotFound(fmt.Sprintf("note %d of merge request %d", noteID, mergeRequestIID))
	}
	return note, nil
}
