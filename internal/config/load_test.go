package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnvVars = []string{
	"PORT",
	"TASKS_SERVER_PORT",
	"TASKS_SERVER_LOG_LEVEL",
	"TASKS_SERVER_SHUTDOWN_TIMEOUT_SECONDS",
}

// setupEnv clears every configuration variable, then applies envVars.
// Everything is restored when the test finishes.
func setupEnv(t *testing.T, envVars map[string]string) {
	t.Helper()

	for _, name := range configEnvVars {
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))
	}
	for name, value := range envVars {
		t.Setenv(name, value)
	}
}

// TestLoadDefaults verifies the defaults used when nothing is configured.
func TestLoadDefaults(t *testing.T) {
	setupEnv(t, nil)

	cfg, err := LoadWithEnvFile("")

	require.NoError(t, err, "Load() should not return an error with default values")
	require.NotNil(t, cfg)
	assert.Equal(t, 8080, cfg.Server.Port, "Default server port should be 8080")
	assert.Equal(t, "info", cfg.Server.LogLevel, "Default log level should be 'info'")
	assert.Equal(t, 10, cfg.Server.ShutdownTimeoutSeconds)
}

// TestLoadFromEnv verifies that values are read from environment variables.
func TestLoadFromEnv(t *testing.T) {
	setupEnv(t, map[string]string{
		"PORT":                                  "9090",
		"TASKS_SERVER_LOG_LEVEL":                "debug",
		"TASKS_SERVER_SHUTDOWN_TIMEOUT_SECONDS": "3",
	})

	cfg, err := Load()

	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, 9090, cfg.Server.Port, "Server port should be loaded from PORT")
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, 3, cfg.Server.ShutdownTimeoutSeconds)
}

func TestLoadPortPrecedence(t *testing.T) {
	t.Run("prefixed fallback", func(t *testing.T) {
		setupEnv(t, map[string]string{"TASKS_SERVER_PORT": "7070"})

		cfg, err := LoadWithEnvFile("")

		require.NoError(t, err)
		assert.Equal(t, 7070, cfg.Server.Port)
	})

	t.Run("PORT wins", func(t *testing.T) {
		setupEnv(t, map[string]string{"PORT": "6060", "TASKS_SERVER_PORT": "7070"})

		cfg, err := LoadWithEnvFile("")

		require.NoError(t, err)
		assert.Equal(t, 6060, cfg.Server.Port)
	})

	t.Run("PORT from env file wins over prefixed variable", func(t *testing.T) {
		setupEnv(t, map[string]string{"TASKS_SERVER_PORT": "7070"})
		t.Cleanup(func() { os.Unsetenv("PORT") })

		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("PORT=5055\n"), 0o600))

		cfg, err := LoadWithEnvFile(path)

		require.NoError(t, err)
		assert.Equal(t, 5055, cfg.Server.Port)
	})

	t.Run("PORT is bound first", func(t *testing.T) {
		names := envBindings()["server.port"]

		require.NotEmpty(t, names)
		assert.Equal(t, "PORT", names[0])
	})
}

func TestLoadFromEnvFile(t *testing.T) {
	setupEnv(t, map[string]string{"TASKS_SERVER_LOG_LEVEL": "error"})
	t.Cleanup(func() { os.Unsetenv("PORT") })

	path := filepath.Join(t.TempDir(), ".env")
	contents := "PORT=5055\nTASKS_SERVER_LOG_LEVEL=debug\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	cfg, err := LoadWithEnvFile(path)

	require.NoError(t, err)
	assert.Equal(t, 5055, cfg.Server.Port, "Port should come from the env file")
	assert.Equal(t, "error", cfg.Server.LogLevel, "Environment should win over the env file")
}

func TestLoadMissingEnvFile(t *testing.T) {
	setupEnv(t, nil)

	cfg, err := LoadWithEnvFile(filepath.Join(t.TempDir(), "missing.env"))

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
}

// TestLoadValidationErrors verifies that invalid values are rejected.
func TestLoadValidationErrors(t *testing.T) {
	testCases := []struct {
		name           string
		envVars        map[string]string
		errorSubstring string
	}{
		{
			name:           "Port out of range",
			envVars:        map[string]string{"PORT": "999999"},
			errorSubstring: "validation failed",
		},
		{
			name:           "Negative port",
			envVars:        map[string]string{"PORT": "-1"},
			errorSubstring: "validation failed",
		},
		{
			name:           "Invalid log level",
			envVars:        map[string]string{"TASKS_SERVER_LOG_LEVEL": "invalid-level"},
			errorSubstring: "validation failed",
		},
		{
			name:           "Zero shutdown timeout",
			envVars:        map[string]string{"TASKS_SERVER_SHUTDOWN_TIMEOUT_SECONDS": "0"},
			errorSubstring: "validation failed",
		},
		{
			name:           "Non-numeric port",
			envVars:        map[string]string{"PORT": "eighty"},
			errorSubstring: "failed to unmarshal",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			setupEnv(t, tc.envVars)

			cfg, err := LoadWithEnvFile("")

			require.Error(t, err, "Load() should return an error with invalid configuration")
			assert.Contains(t, err.Error(), tc.errorSubstring)
			assert.Nil(t, cfg, "Config should be nil when an error occurs")
		})
	}
}
