package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapToStruct(t *testing.T) {
	type target struct {
		Host    string        `yaml:"host"`
		Token   string        `yaml:"token"`
		Timeout time.Duration `yaml:"timeout"`
		Nested  struct {
			Enabled bool `yaml:"enabled"`
		} `yaml:"nested"`
	}

	t.Run("converts nested maps", func(t *testing.T) {
		out := target{}
		err := MapToStruct(map[string]interface{}{
			"host":  "https://gitlab.example.com",
			"token": "abc",
			"nested": map[string]interface{}{
				"enabled": true,
			},
		}, &out)
		require.NoError(t, err)
		assert.Equal(t, "https://gitlab.example.com", out.Host)
		assert.Equal(t, "abc", out.Token)
		assert.True(t, out.Nested.Enabled)
	})

	t.Run("unknown keys are ignored", func(t *testing.T) {
		out := target{}
		err := MapToStruct(map[string]interface{}{
			"host":       "https://gitlab.example.com",
			"surplusKey": 42,
		}, &out)
		require.NoError(t, err)
		assert.Equal(t, "https://gitlab.example.com", out.Host)
	})

	t.Run("type mismatch returns error", func(t *testing.T) {
		out := target{}
		err := MapToStruct(map[string]interface{}{
			"nested": "not a map",
		}, &out)
		assert.Error(t, err)
	})

	t.Run("nil input leaves the target zeroed", func(t *testing.T) {
		out := target{}
		err := MapToStruct(nil, &out)
		require.NoError(t, err)
		assert.Equal(t, target{}, out)
	})
}
