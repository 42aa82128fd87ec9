package gitlab

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gitlab "gitlab.com/gitlab-org/api/client-go"
)

func TestGetGroupMembers(t *testing.T) {
	t.Run("returns direct members", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/api/v4/groups/3/members", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			writeJSON(t, w, http.StatusOK,
				`[{"id":5,"username":"jdoe","access_level":30},{"id":6,"username":"asmith","access_level":40}]`)
		})
		client := setupClient(t, mux)

		members, err := client.GetGroupMembers(context.Background(), 3)
		require.NoError(t, err)
		require.Len(t, members, 2)
		assert.Equal(t, "jdoe", members[0].Username)
		assert.Equal(t, gitlab.MaintainerPermissions, members[1].AccessLevel)
	})

	t.Run("empty list is not an error", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/api/v4/groups/3/members", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, http.StatusOK, `[]`)
		})
		client := setupClient(t, mux)

		members, err := client.GetGroupMembers(context.Background(), 3)
		require.NoError(t, err)
		assert.Empty(t, members)
	})
}

func TestGetNamespaceMembers(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v4/groups/3/members/all", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		writeJSON(t, w, http.StatusOK,
			`[{"id":5,"username":"jdoe","access_level":30},{"id":7,"username":"inherited","access_level":10}]`)
	})
	client := setupClient(t, mux)

	members, err := client.GetNamespaceMembers(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.Equal(t, "inherited", members[1].Username)
}

func TestAddGroupMember(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v4/groups/3/members", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)

		var payload map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.EqualValues(t, 5, payload["user_id"])
		assert.EqualValues(t, 30, payload["access_level"])

		writeJSON(t, w, http.StatusCreated, `{"id":5,"username":"jdoe","access_level":30}`)
	})
	client := setupClient(t, mux)

	member, err := client.AddGroupMember(context.Background(), 3, 5, gitlab.DeveloperPermissions)
	require.NoError(t, err)
	assert.Equal(t, "jdoe", member.Username)
}

func TestDeleteGroupMember(t *testing.T) {
	var removed bool
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v4/groups/3/members/5", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		removed = true
		w.WriteHeader(http.StatusNoContent)
	})
	client := setupClient(t, mux)

	require.NoError(t, client.DeleteGroupMember(context.Background(), 3, 5))
	assert.True(t, removed)
}
