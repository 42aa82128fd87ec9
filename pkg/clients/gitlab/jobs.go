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
	"io"

	"github.com/sirupsen/logrus"
	gitlab "gitlab.com/gitlab-org/api/client-go"

	"github.com/profiq/gitlab-connector/pkg/cerrors"
)

// GetProjectJobs lists the CI jobs of a project.
func (c *Client) GetProjectJobs(ctx context.Context, projectID int) ([]*gitlab.Job, error) {
	log := c.log(ctx, logrus.Fields{"projectID": projectID})
	log.Debug("fetching project jobs")

	jobs, _, err := c.gitlabClient.Jobs.ListProjectJobs(projectID, &gitlab.ListJobsOptions{}, gitlab.WithContext(ctx))
	if err != nil {
		log.WithError(err).Error("error fetching project jobs")
		return nil, err
	}
	return jobs, nil
}

// GetProjectJob fetches a single CI job.
func (c *Client) GetProjectJob(ctx context.Context, projectID, jobID int) (*gitlab.Job, error) {
	log := c.log(ctx, logrus.Fields{"projectID": projectID, "jobID": jobID})
	log.Debug("fetching job")

	job, _, err := c.gitlabClient.Jobs.GetJob(projectID, jobID, gitlab.WithContext(ctx))
	if err != nil {
		log.WithError(err).Error("error fetching job")
		return nil, err
	}
	if job == nil {
		return nil, cerrors.NewNotFound(fmt.Sprintf("job %d of project %d", jobID, projectID))
	}
	return job, nil
}

// GetCommitJobs lists the CI jobs run for a commit, across all of its
// pipelines.
func (c *Client) GetCommitJobs(ctx context.Context, projectID int, commitHash string) ([]*gitlab.Job, error) {
	if commitHash == "" {
		return nil, cerrors.NewConfiguration("commit hash is required")
	}

	log := c.log(ctx, logrus.Fields{"projectID": projectID, "commitHash": commitHash})
	log.Debug("fetching commit jobs")

	pipelines, _, err := c.gitlabClient.Pipelines.ListProjectPipelines(projectID,
		&gitlab.ListProjectPipelinesOptions{
			SHA: gitlab.Ptr(commitHash),
		}, gitlab.WithContext(ctx))
	if err != nil {
		log.WithError(err).Error("error fetching commit pipelines")
		return nil, err
	}

	jobs := make([]*gitlab.Job, 0)
	for _, pipeline := range pipelines {
		pipelineJobs, _, err := c.gitlabClient.Jobs.ListPipelineJobs(projectID, pipeline.ID,
			&gitlab.ListJobsOptions{}, gitlab.WithContext(ctx))
		if err != nil {
			log.WithError(err).WithField("pipelineID", pipeline.ID).Error("error fetching pipeline jobs")
			return nil, err
		}
		jobs = append(jobs, pipelineJobs...)
	}
	return jobs, nil
}

// GetJobArtifacts downloads the artifact archive of a job.
func (c *Client) GetJobArtifacts(ctx context.Context, projectID, jobID int) ([]byte, error) {
	log := c.log(ctx, logrus.Fields{"projectID": projectID, "jobID": jobID})
	log.Debug("fetching job artifacts")

	reader, _, err := c.gitlabClient.Jobs.GetJobArtifacts(projectID, jobID, gitlab.WithContext(ctx))
	if err != nil {
		log.WithError(err).Error("error fetching job artifacts")
		return nil, err
	}
	if reader == nil {
		return nil, cerrors.NewNotFound(fmt.Sprintf("artifacts of job %d", jobID))
	}

	artifacts, err := io.ReadAll(reader)
	if err != nil {
		log.WithError(err).Error("error reading job artifacts")
		return nil, err
	}
	return artifacts, nil
}
