package gitlab

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/profiq/gitlab-connector/pkg/cerrors"
)

func TestGetUser(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v4/users/5", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, `{"id":5,"username":"jdoe","name":"John Doe"}`)
	})
	client := setupClient(t, mux)

	user, err := client.GetUser(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "jdoe", user.Username)
}

func TestGetCurrentUser(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v4/user", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-token", r.Header.Get("PRIVATE-TOKEN"))
		writeJSON(t, w, http.StatusOK, `{"id":1,"username":"owner"}`)
	})
	client := setupClient(t, mux)

	user, err := client.GetCurrentUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "owner", user.Username)
}

func TestGetUserWithSudo(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v4/user", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "jdoe", r.Header.Get("SUDO"))
		writeJSON(t, w, http.StatusOK, `{"id":5,"username":"jdoe"}`)
	})
	client := setupClient(t, mux)

	user, err := client.GetUserWithSudo(context.Background(), "jdoe")
	require.NoError(t, err)
	assert.Equal(t, 5, user.ID)
}

func TestGetUserWithSudoRequiresUsername(t *testing.T) {
	client, err := NewClient(&testConfig, "test-token")
	require.NoError(t, err)

	_, err = client.GetUserWithSudo(context.Background(), "")
	require.Error(t, err)

	cfgErr := &cerrors.ConfigurationError{}
	assert.ErrorAs(t, err, &cfgErr)
}

func TestFindUsers(t *testing.T) {
	t.Run("empty result is not an error", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/api/v4/users", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, http.StatusOK, `[]`)
		})
		client := setupClient(t, mux)

		users, err := client.FindUsers(context.Background(), "nobody@example.com")
		require.NoError(t, err)
		assert.Empty(t, users)
	})

	t.Run("search term is forwarded", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/api/v4/users", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "jdoe", r.URL.Query().Get("search"))
			writeJSON(t, w, http.StatusOK, `[{"id":5,"username":"jdoe"}]`)
		})
		client := setupClient(t, mux)

		users, err := client.FindUsers(context.Background(), "jdoe")
		require.NoError(t, err)
		require.Len(t, users, 1)
		assert.Equal(t, "jdoe", users[0].Username)
	})

	t.Run("blank search term is rejected", func(t *testing.T) {
		client, err := NewClient(&testConfig, "test-token")
		require.NoError(t, err)

		_, err = client.FindUsers(context.Background(), "")
		require.Error(t, err)

		cfgErr := &cerrors.ConfigurationError{}
		assert.ErrorAs(t, err, &cfgErr)
	})
}

func TestBlockUser(t *testing.T) {
	var blocked bool
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v4/users/5/block", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		blocked = true
		w.WriteHeader(http.StatusCreated)
	})
	client := setupClient(t, mux)

	require.NoError(t, client.BlockUser(context.Background(), 5))
	assert.True(t, blocked)
}
