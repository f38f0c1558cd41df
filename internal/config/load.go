package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
)

const (
	// EnvPrefix is the prefix for environment variables read by Load.
	EnvPrefix = "TASKS"

	// DefaultEnvFile is the dotenv file Load reads from the working directory.
	DefaultEnvFile = ".env"
)

// envBindings maps each configuration key to the environment variables
// that can set it, highest precedence first.
func envBindings() map[string][]string {
	return map[string][]string{
		"server.port":                     {"PORT", EnvPrefix + "_SERVER_PORT"},
		"server.log_level":                {EnvPrefix + "_SERVER_LOG_LEVEL"},
		"server.shutdown_timeout_seconds": {EnvPrefix + "_SERVER_SHUTDOWN_TIMEOUT_SECONDS"},
	}
}

// Load configuration from the environment, after loading DefaultEnvFile if
// it exists. Variables already set in the environment take precedence over
// values from the file.
func Load() (*Config, error) {
	return LoadWithEnvFile(DefaultEnvFile)
}

// LoadWithEnvFile is Load with an explicit dotenv path. A missing file is
// not an error; an empty path skips the file entirely.
func LoadWithEnvFile(path string) (*Config, error) {
	// Load the dotenv file; variables already in the environment are kept
	if path != "" {
		if err := gotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read env file %s: %w", path, err)
		}
	}

	v := viper.New()

	// Set defaults
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.shutdown_timeout_seconds", 10)

	// Bind each key explicitly. Viper checks the names of a binding in
	// order, so PORT wins over the prefixed fallback.
	for key, names := range envBindings() {
		if err := v.BindEnv(append([]string{key}, names...)...); err != nil {
			return nil, fmt.Errorf("failed to bind environment variables for %s: %w", key, err)
		}
	}

	// Unmarshal into the config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	// Validate the populated configuration
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}
