package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"SERVER_PORT", "USERS_COLLECTION", "AGENTS_COLLECTION", "AGENT_INBOX_COLLECTION", "CATEGORIES_COLLECTION"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "HushUsers", cfg.UsersCollection)
	assert.Equal(t, "Hushhagents", cfg.AgentsCollection)
	assert.Equal(t, "HushhAgents", cfg.AgentInboxCollection)
	assert.Equal(t, "agent_categories", cfg.CategoriesCollection)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("AGENTS_COLLECTION", "agents")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, "agents", cfg.AgentsCollection)
}

func TestClientOption(t *testing.T) {
	t.Run("inline json wins", func(t *testing.T) {
		cfg := &Config{ServiceAccountJSON: `{"type":"service_account"}`, ServiceAccountPath: "/does/not/exist.json"}
		opt, err := cfg.ClientOption()
		require.NoError(t, err)
		assert.NotNil(t, opt)
	})

	t.Run("missing file", func(t *testing.T) {
		cfg := &Config{ServiceAccountPath: filepath.Join(t.TempDir(), "missing.json")}
		_, err := cfg.ClientOption()
		assert.Error(t, err)
	})

	t.Run("existing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "serviceAccountKey.json")
		require.NoError(t, os.WriteFile(path, []byte("{}"), 0o600))

		cfg := &Config{ServiceAccountPath: path}
		opt, err := cfg.ClientOption()
		require.NoError(t, err)
		assert.NotNil(t, opt)
	})
}

func TestIsDevelopment(t *testing.T) {
	t.Setenv("ENVIRONMENT", "")
	os.Unsetenv("ENVIRONMENT")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.IsDevelopment())

	t.Setenv("ENVIRONMENT", "production")
	cfg, err = Load()
	require.NoError(t, err)
	assert.False(t, cfg.IsDevelopment())
}
