package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvBaseURL, EnvToken, EnvVerifySSL, EnvLogLevel} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "http://homeassistant.local:8123", cfg.BaseURL)
	assert.True(t, cfg.VerifySSL)
	assert.Equal(t, 30*time.Second, cfg.CallTimeout.Std())
	assert.Equal(t, 2, cfg.ReadRetries)
}

func TestLoadMissingDefaultFileIsFine(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "casa.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default().BaseURL, cfg.BaseURL)
}

func TestLoadYAMLFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "casa.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
base_url: http://ha.example.net:8123
token: file-token
verify_ssl: false
call_timeout: 5s
log_level: debug
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://ha.example.net:8123", cfg.BaseURL)
	assert.Equal(t, "file-token", cfg.Token)
	assert.False(t, cfg.VerifySSL)
	assert.Equal(t, 5*time.Second, cfg.CallTimeout.Std())
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
}

func TestEnvOverridesFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "casa.yaml")
	require.NoError(t, os.WriteFile(path, []byte("token: file-token\n"), 0o644))

	t.Setenv(EnvToken, "env-token")
	t.Setenv(EnvBaseURL, "https://ha.example.net")
	t.Setenv(EnvVerifySSL, "False")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "env-token", cfg.Token)
	assert.Equal(t, "https://ha.example.net", cfg.BaseURL)
	assert.False(t, cfg.VerifySSL)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "casa.yaml")
	require.NoError(t, os.WriteFile(path, []byte("token: [unclosed"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestValidateRequiresToken(t *testing.T) {
	cfg := Default()
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvToken)

	cfg.Token = "secret"
	require.NoError(t, cfg.Validate())
}
