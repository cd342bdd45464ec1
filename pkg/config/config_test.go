package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", cfg.PropertyAPI.BaseURL)
	assert.Equal(t, "/api/properties", cfg.PropertyAPI.CreatePath)
	assert.Equal(t, 30*time.Second, cfg.PropertyAPI.Timeout)
	assert.Equal(t, 3, cfg.PropertyAPI.MaxRetries)
	assert.Equal(t, 2*time.Second, cfg.PropertyAPI.RetryDelay)
	assert.Equal(t, "file", cfg.TokenStore.Driver)
	assert.Equal(t, "memory", cfg.Sandbox.Store)
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	path := writeConfig(t, `
property_api:
  base_url: https://api.example.com
  create_path: /v2/properties
  timeout: 10s
  max_retries: 5
  retry_delay: 500ms
token_store:
  driver: redis
  key: session
  redis:
    host: cache.internal
    port: 6380
sandbox:
  port: 9090
  fail_first: 2
`)
	t.Setenv("PROPERTY_API_MAX_RETRIES", "1")
	t.Setenv("REDIS_DB", "4")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.com", cfg.PropertyAPI.BaseURL)
	assert.Equal(t, "/v2/properties", cfg.PropertyAPI.CreatePath)
	assert.Equal(t, 10*time.Second, cfg.PropertyAPI.Timeout)
	assert.Equal(t, 1, cfg.PropertyAPI.MaxRetries)
	assert.Equal(t, 500*time.Millisecond, cfg.PropertyAPI.RetryDelay)
	assert.Equal(t, "redis", cfg.TokenStore.Driver)
	assert.Equal(t, "cache.internal", cfg.TokenStore.Redis.Host)
	assert.Equal(t, 6380, cfg.TokenStore.Redis.Port)
	assert.Equal(t, 4, cfg.TokenStore.Redis.DB)
	assert.Equal(t, 9090, cfg.Sandbox.Port)
	assert.Equal(t, 2, cfg.Sandbox.FailFirst)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
		env  map[string]string
	}{
		{name: "bad_url", body: "property_api:\n  base_url: not a url\n"},
		{name: "negative_retries", body: "property_api:\n  max_retries: -1\n"},
		{name: "unknown_driver", body: "token_store:\n  driver: sqlite\n"},
		{name: "malformed_yaml", body: "property_api: [\n"},
		{name: "bad_env_port", env: map[string]string{"REDIS_PORT": "sixty"}},
		{name: "unknown_store", body: "sandbox:\n  store: sqlite\n"},
		{name: "mongo_without_database", body: "sandbox:\n  store: mongo\n  mongo:\n    database: \"\"\n"},
		{name: "bad_mongo_uri", env: map[string]string{"SANDBOX_STORE": "mongo", "MONGO_URI": "http://db:27017"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := LoadConfig(writeConfig(t, tt.body))
			require.Error(t, err)
		})
	}
}

func TestLoadConfig_MongoStoreFromEnv(t *testing.T) {
	t.Setenv("SANDBOX_STORE", "mongo")
	t.Setenv("MONGO_URI", "mongodb://db.internal:27017")
	t.Setenv("MONGO_DB_NAME", "listings")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "mongo", cfg.Sandbox.Store)
	assert.Equal(t, "mongodb://db.internal:27017", cfg.Sandbox.Mongo.URI)
	assert.Equal(t, "listings", cfg.Sandbox.Mongo.Database)
	assert.Equal(t, 10*time.Second, cfg.Sandbox.Mongo.ConnectTimeout)
}
