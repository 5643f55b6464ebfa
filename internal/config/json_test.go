package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	jsonBody := `{
		"app": { "version": "2.0.0", "debug_endpoint": true },
		"auth": {
			"bcrypt_cost": 11,
			"session_ttl": "45m",
			"session_issuer": "portal",
			"cookie_name": "sid",
			"cookie_secure": true
		},
		"secret_key": "s3cret",
		"cloudant": {
			"apikey": "key",
			"url": "https://example.cloudant.test",
			"iam_url": "https://iam.test/token",
			"connect_attempts": 4,
			"retry_delay": "500ms",
			"call_timeout": "2s",
			"reconnect_cooldown": "10s",
			"collections": ["users"]
		},
		"fallback": { "driver": "sqlite", "dsn": "file:x?mode=memory" },
		"server": {
			"http_address": "localhost:8080",
			"grpc_address": "localhost:9090",
			"request_timeout": "30s",
			"allowed_origins": ["http://a.test"]
		},
		"log_level": "debug"
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "2.0.0", cfg.App.Version)
	assert.True(t, cfg.App.DebugEndpoint)
	assert.Equal(t, 11, cfg.Auth.BcryptCost)
	assert.Equal(t, 45*time.Minute, cfg.Auth.SessionTTL)
	assert.Equal(t, "portal", cfg.Auth.SessionIssuer)
	assert.Equal(t, "sid", cfg.Auth.CookieName)
	assert.True(t, cfg.Auth.CookieSecure)
	assert.Equal(t, "s3cret", cfg.SecretKey)
	assert.Equal(t, "key", cfg.Cloudant.APIKey)
	assert.Equal(t, "https://example.cloudant.test", cfg.Cloudant.URL)
	assert.Equal(t, "https://iam.test/token", cfg.Cloudant.IAMURL)
	assert.Equal(t, 4, cfg.Cloudant.ConnectAttempts)
	assert.Equal(t, 500*time.Millisecond, cfg.Cloudant.RetryDelay)
	assert.Equal(t, 2*time.Second, cfg.Cloudant.CallTimeout)
	assert.Equal(t, 10*time.Second, cfg.Cloudant.ReconnectCooldown)
	assert.Equal(t, []string{"users"}, cfg.Cloudant.Collections)
	assert.Equal(t, "sqlite", cfg.Fallback.Driver)
	assert.Equal(t, "file:x?mode=memory", cfg.Fallback.DSN)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "localhost:9090", cfg.Server.GRPCAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, []string{"http://a.test"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	cfg, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))

	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"server":`), 0o600))

	cfg, err := parseJSON(p)

	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"auth":{"session_ttl":"soon"}}`), 0o600))

	_, err := parseJSON(p)

	require.Error(t, err)
}

func TestParseJSON_NumericDurationIsNanoseconds(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"cloudant":{"retry_delay":1000000}}`), 0o600))

	cfg, err := parseJSON(p)

	require.NoError(t, err)
	assert.Equal(t, time.Millisecond, cfg.Cloudant.RetryDelay)
}

func TestParseJSON_EmptyObject(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{}`), 0o600))

	cfg, err := parseJSON(p)

	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}
