package gitlab

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/profiq/gitlab-connector/pkg/cerrors"
)

func TestCreateLabel(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v4/projects/1/labels", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)

		var payload map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "bug", payload["name"])
		assert.Equal(t, "#ff0000", payload["color"])

		writeJSON(t, w, http.StatusCreated, `{"id":10,"name":"bug","color":"#ff0000"}`)
	})
	client := setupClient(t, mux)

	label, err := client.CreateLabel(context.Background(), 1, "bug", "#ff0000")
	require.NoError(t, err)
	assert.Equal(t, "bug", label.Name)
}

func TestCreateLabelValidation(t *testing.T) {
	client, err := NewClient(&testConfig, "test-token")
	require.NoError(t, err)

	for _, tc := range []struct {
		name  string
		label string
		color string
	}{
		{name: "missing name", color: "#ff0000"},
		{name: "missing color", label: "bug"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := client.CreateLabel(context.Background(), 1, tc.label, tc.color)
			require.Error(t, err)

			cfgErr := &cerrors.ConfigurationError{}
			assert.ErrorAs(t, err, &cfgErr)
		})
	}
}

func TestUpdateLabel(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v4/projects/1/labels/bug", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)

		var payload map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "defect", payload["new_name"])
		assert.Equal(t, "#00ff00", payload["color"])

		writeJSON(t, w, http.StatusOK, `{"id":10,"name":"defect","color":"#00ff00"}`)
	})
	client := setupClient(t, mux)

	label, err := client.UpdateLabel(context.Background(), 1, "bug", "defect", "#00ff00")
	require.NoError(t, err)
	assert.Equal(t, "defect", label.Name)
	assert.Equal(t, "#00ff00", label.Color)
}

func TestUpdateLabelValidation(t *testing.T) {
	client, err := NewClient(&testConfig, "test-token")
	require.NoError(t, err)

	t.Run("missing name", func(t *testing.T) {
		_, err := client.UpdateLabel(context.Background(), 1, "", "defect", "")
		require.Error(t, err)

		cfgErr := &cerrors.ConfigurationError{}
		assert.ErrorAs(t, err, &cfgErr)
	})

	t.Run("nothing to change", func(t *testing.T) {
		_, err := client.UpdateLabel(context.Background(), 1, "bug", "", "")
		require.Error(t, err)

		cfgErr := &cerrors.ConfigurationError{}
		assert.ErrorAs(t, err, &cfgErr)
	})
}

func TestGetLabelsEmptyListIsNotAnError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v4/projects/1/labels", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, `[]`)
	})
	client := setupClient(t, mux)

	labels, err := client.GetLabels(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, labels)
}
