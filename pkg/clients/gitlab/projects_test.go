package gitlab

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/profiq/gitlab-connector/pkg/cerrors"
)

func TestGetProject(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v4/projects/1", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		writeJSON(t, w, http.StatusOK, `{"id":1,"name":"usersync","path_with_namespace":"platform/usersync"}`)
	})
	client := setupClient(t, mux)

	project, err := client.GetProject(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, project.ID)
	assert.Equal(t, "usersync", project.Name)
}

func TestGetProjectNotFound(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v4/projects/42", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusNotFound, `{"message":"404 Project Not Found"}`)
	})
	client := setupClient(t, mux)

	_, err := client.GetProject(context.Background(), 42)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestGetProjectsEmptyListIsNotAnError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v4/projects", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, `[]`)
	})
	client := setupClient(t, mux)

	projects, err := client.GetProjects(context.Background())
	require.NoError(t, err)
	assert.Empty(t, projects)
}

func TestGetProjectsFiltersByMembership(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v4/projects", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "true", r.URL.Query().Get("membership"))
		writeJSON(t, w, http.StatusOK, `[{"id":1,"name":"usersync"},{"id":2,"name":"pipelines"}]`)
	})
	client := setupClient(t, mux)

	projects, err := client.GetProjects(context.Background())
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, "pipelines", projects[1].Name)
}

func TestCreateProjectRequiresName(t *testing.T) {
	// no server: validation fails before any request is issued
	client, err := NewClient(&testConfig, "test-token")
	require.NoError(t, err)

	_, err = client.CreateProject(context.Background(), nil)
	require.Error(t, err)

	cfgErr := &cerrors.ConfigurationError{}
	assert.ErrorAs(t, err, &cfgErr)
}

func TestDeleteProject(t *testing.T) {
	var deleted bool
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v4/projects/7", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		deleted = true
		writeJSON(t, w, http.StatusAccepted, `{"message":"202 Accepted"}`)
	})
	client := setupClient(t, mux)

	require.NoError(t, client.DeleteProject(context.Background(), 7))
	assert.True(t, deleted)
}

func TestTransferProjectRequiresNamespace(t *testing.T) {
	client, err := NewClient(&testConfig, "test-token")
	require.NoError(t, err)

	_, err = client.TransferProject(context.Background(), 7, "")
	require.Error(t, err)

	cfgErr := &cerrors.ConfigurationError{}
	assert.ErrorAs(t, err, &cfgErr)
}
