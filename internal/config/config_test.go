package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		yaml      string
		envVars   map[string]string
		wantErr   string
		checkFunc func(t *testing.T, cfg *Config)
	}{
		{
			name: "valid minimal config",
			yaml: `
threecommas:
  api_key: key
  api_secret: secret
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "key", cfg.ThreeCommas.APIKey)
				assert.Equal(t, "secret", cfg.ThreeCommas.APISecret)
			},
		},
		{
			name: "defaults applied for optional fields",
			yaml: `
threecommas:
  api_key: key
  api_secret: secret
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "https://api.3commas.io", cfg.ThreeCommas.BaseURL)
				assert.Equal(t, "127.0.0.1", cfg.MockServer.Host)
				assert.Equal(t, 8089, cfg.MockServer.Port)
				assert.Equal(t, 30*time.Second, cfg.MockServer.ReadTimeout)
				assert.Equal(t, 30*time.Second, cfg.MockServer.WriteTimeout)
				assert.Empty(t, cfg.MockServer.FixturesDir)
				assert.Equal(t, "info", cfg.Logging.Level)
				assert.Equal(t, "text", cfg.Logging.Format)
			},
		},
		{
			name: "env var substitution",
			yaml: `
threecommas:
  api_key: "${TEST_3C_KEY}"
  api_secret: "${TEST_3C_SECRET}"
`,
			envVars: map[string]string{
				"TEST_3C_KEY":    "env-key",
				"TEST_3C_SECRET": "env-secret",
			},
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "env-key", cfg.ThreeCommas.APIKey)
				assert.Equal(t, "env-secret", cfg.ThreeCommas.APISecret)
			},
		},
		{
			name: "missing required api_key",
			yaml: `
threecommas:
  api_secret: secret
`,
			wantErr: "threecommas.api_key is required",
		},
		{
			name: "missing required api_secret",
			yaml: `
threecommas:
  api_key: key
`,
			wantErr: "threecommas.api_secret is required",
		},
		{
			name: "relative base_url",
			yaml: `
threecommas:
  api_key: key
  api_secret: secret
  base_url: api.3commas.io
`,
			wantErr: `threecommas.base_url must be an absolute URL (got "api.3commas.io")`,
		},
		{
			name: "invalid logging level",
			yaml: `
threecommas:
  api_key: key
  api_secret: secret
logging:
  level: trace
`,
			wantErr: `logging.level must be one of: debug, info, warn, error (got "trace")`,
		},
		{
			name: "invalid logging format",
			yaml: `
threecommas:
  api_key: key
  api_secret: secret
logging:
  format: xml
`,
			wantErr: `logging.format must be one of: text, json (got "xml")`,
		},
		{
			name: "invalid mock server port",
			yaml: `
threecommas:
  api_key: key
  api_secret: secret
mock_server:
  port: 70000
`,
			wantErr: "mock_server.port out of range (got 70000)",
		},
		{
			name:    "invalid YAML",
			yaml:    `{{{not valid yaml`,
			wantErr: "parsing config YAML",
		},
		{
			name: "full config with overrides",
			yaml: `
threecommas:
  api_key: key
  api_secret: secret
  base_url: http://127.0.0.1:8089
mock_server:
  host: 0.0.0.0
  port: 9090
  read_timeout: 60s
  write_timeout: 45s
  fixtures_dir: ./testdata
logging:
  level: debug
  format: json
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "http://127.0.0.1:8089", cfg.ThreeCommas.BaseURL)
				assert.Equal(t, "0.0.0.0", cfg.MockServer.Host)
				assert.Equal(t, 9090, cfg.MockServer.Port)
				assert.Equal(t, 60*time.Second, cfg.MockServer.ReadTimeout)
				assert.Equal(t, 45*time.Second, cfg.MockServer.WriteTimeout)
				assert.Equal(t, "./testdata", cfg.MockServer.FixturesDir)
				assert.Equal(t, "debug", cfg.Logging.Level)
				assert.Equal(t, "json", cfg.Logging.Format)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Only parallelize tests that don't modify env vars.
			if len(tt.envVars) == 0 {
				t.Parallel()
			}

			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			dir := t.TempDir()
			path := filepath.Join(dir, "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0o644))

			cfg, err := Load(path)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, cfg)

			if tt.checkFunc != nil {
				tt.checkFunc(t, cfg)
			}
		})
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	t.Parallel()

	_, err := Load("/nonexistent/path/config.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestLoad_MultipleErrorsJoined(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: loud\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "threecommas.api_key is required")
	assert.Contains(t, err.Error(), "threecommas.api_secret is required")
	assert.Contains(t, err.Error(), "logging.level must be one of")
}

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvAPIKey, "env-key")
	t.Setenv(EnvAPISecret, "env-secret")
	t.Setenv(EnvBaseURL, "")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.ThreeCommas.APIKey)
	assert.Equal(t, "env-secret", cfg.ThreeCommas.APISecret)
	assert.Equal(t, "https://api.3commas.io", cfg.ThreeCommas.BaseURL)
}

func TestFromEnv_MissingCredentials(t *testing.T) {
	t.Setenv(EnvAPIKey, "")
	t.Setenv(EnvAPISecret, "")

	_, err := FromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "threecommas.api_key is required")
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("TEST_DOTENV_KEY=from-file\n"), 0o600))

	// Registers cleanup so the variable does not leak into other tests.
	t.Setenv("TEST_DOTENV_KEY", "")
	require.NoError(t, os.Unsetenv("TEST_DOTENV_KEY"))

	require.NoError(t, LoadDotEnv(path, filepath.Join(dir, "missing.env")))
	assert.Equal(t, "from-file", os.Getenv("TEST_DOTENV_KEY"))
}

func TestLoadDotEnv_DoesNotOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("TEST_DOTENV_KEEP=from-file\n"), 0o600))
	t.Setenv("TEST_DOTENV_KEEP", "from-env")

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "from-env", os.Getenv("TEST_DOTENV_KEEP"))
}

func TestThreeCommasConfig_String(t *testing.T) {
	t.Parallel()

	c := ThreeCommasConfig{APIKey: "abcdefgh", APISecret: "topsecret", BaseURL: "https://api.3commas.io"}
	s := c.String()
	assert.Contains(t, s, "abcd****")
	assert.NotContains(t, s, "efgh")
	assert.NotContains(t, s, "topsecret")
}
