package gitlab

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/profiq/gitlab-connector/pkg/config"
)

// testConfig is a valid configuration for tests that never reach the
// network.
var testConfig = config.ConnectorConfig{Host: "https://gitlab.example.com"}

// setupClient points a handle at a fake GitLab API served by mux.
func setupClient(t *testing.T, mux *http.ServeMux) *Client {
	t.Helper()
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client, err := NewClient(&config.ConnectorConfig{Host: server.URL}, "test-token")
	require.NoError(t, err)
	return client
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, body string) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err := w.Write([]byte(body))
	require.NoError(t, err)
}

func TestNewClient(t *testing.T) {
	testCases := []struct {
		name    string
		cfg     *config.ConnectorConfig
		token   string
		wantErr string
	}{
		{
			name:    "nil configuration",
			cfg:     nil,
			token:   "test-token",
			wantErr: "missing required connection parameters",
		},
		{
			name:    "missing host",
			cfg:     &config.ConnectorConfig{},
			token:   "test-token",
			wantErr: "missing required connection parameters",
		},
		{
			name:    "missing token",
			cfg:     &config.ConnectorConfig{Host: "https://gitlab.example.com"},
			wantErr: "missing private token",
		},
		{
			name:  "valid parameters",
			cfg:   &config.ConnectorConfig{Host: "https://gitlab.example.com"},
			token: "test-token",
		},
		{
			name:  "trailing slash is trimmed",
			cfg:   &config.ConnectorConfig{Host: "https://gitlab.example.com/"},
			token: "test-token",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			client, err := NewClient(tc.cfg, tc.token)

			if tc.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "https://gitlab.example.com", client.Host())
		})
	}
}
