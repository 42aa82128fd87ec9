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

// GetRepositoryTree lists the repository tree at the given path and ref.
// Both path and ref may be empty for the repository root on the default
// branch.
func (c *Client) GetRepositoryTree(ctx context.Context, projectID int, path, ref string) ([]*gitlab.TreeNode, error) {
	log := c.log(ctx, logrus.Fields{"projectID": projectID, "path": path, "ref": ref})
	log.Debug("fetching repository tree")

	opts := &gitlab.ListTreeOptions{}
	if path != "" {
		opts.Path = gitlab.Ptr(path)
	}
	if ref != "" {
		opts.Ref = gitlab.Ptr(ref)
	}

	tree, _, err := c.gitlabClient.Repositories.ListTree(projectID, opts, gitlab.WithContext(ctx))
	if err != nil {
		log.WithError(err).Error("error fetching repository tree")
		return nil, err
	}
	return tree, nil
}

// GetRawFileContent downloads one file from the repository at the given
// ref.
func (c *Client) GetRawFileContent(ctx context.Context, projectID int, filePath, ref string) ([]byte, error) {
	if filePath == "" {
		return nil, cerrors.NewConfiguration("file path is required")
	}

	log := c.log(ctx, logrus.Fields{"projectID": projectID, "filePath": filePath, "ref": ref})
	log.Debug("fetching raw file content")

	opts := &gitlab.GetRawFileOptions{}
	if ref != "" {
		opts.Ref = gitlab.Ptr(ref)
	}

	content, _, err := c.gitlabClient.RepositoryFiles.GetRawFile(projectID, filePath, opts, gitlab.WithContext(ctx))
	if err != nil {
		log.WithError(err).Error("error fetching raw file content")
		return nil, err
	}
	if content == nil {
		return nil, cerrors.NewNotFound("file " + filePath)
	}
	return content, nil
}

// GetRawBlobContent downloads a raw blob by SHA.
func (c *Client) GetRawBlobContent(ctx context.Context, projectID int, sha string) ([]byte, error) {
	if sha == "" {
		return nil, cerrors.NewConfiguration("blob sha is required")
	}

	log := c.log(ctx, logrus.Fields{"projectID": projectID, "sha": sha})
	log.Debug("fetching raw blob content")

	content, _, err := c.gitlabClient.Repositories.RawBlobContent(projectID, sha, gitlab.WithContext(ctx))
	if err != nil {
		log.WithError(err).Error("error fetching raw blob content")
		return nil, err
	}
	if content == nil {
		return nil, cerrors.NewNotFound("blob " + sha)
	}
	return content, nil
}

// GetFileArchive downloads an archive of the repository.
func (c *Client) GetFileArchive(ctx context.Context, projectID int) ([]byte, error) {
	log := c.log(ctx, logrus.Fields{"projectID": projectID})
	log.Debug("fetching repository archive")

	archive, _, err := c.gitlabClient.Repositories.Archive(projectID, &gitlab.ArchiveOptions{}, gitlab.WithContext(ctx))
	if err != nil {
		log.WithError(err).Error("error fetching repository archive")
		return nil, err
	}
	if archive == nil {
		return nil, cerrors.NewNotFound("repository archive")
	}
	return archive, nil
}
