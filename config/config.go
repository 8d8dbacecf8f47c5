// Package config loads client configuration from the environment, with an
// optional YAML file for local overrides. The backend base URL and the
// Google OAuth client id are build/deploy inputs, everything else has a
// usable default.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	// APIURL is the base URL of the LEARNLY backend.
	APIURL string `yaml:"api_url" env:"LEARNLY_API_URL" env-default:"http://localhost:8000"`

	// GoogleClientID enables the Google sign-in flow when set.
	GoogleClientID string `yaml:"google_client_id" env:"LEARNLY_GOOGLE_CLIENT_ID"`

	// StateDir holds the persisted session record. Defaults to
	// ~/.learnly when empty.
	StateDir string `yaml:"state_dir" env:"LEARNLY_STATE_DIR"`

	LogLevel string `yaml:"log_level" env:"LEARNLY_LOG_LEVEL" env-default:"warn"`
	Env      string `yaml:"env" env:"LEARNLY_ENV" env-default:"production"`

	// RequestTimeout bounds every single HTTP call, refresh included.
	RequestTimeout time.Duration `yaml:"request_timeout" env:"LEARNLY_REQUEST_TIMEOUT" env-default:"30s"`

	Otel OtelConfig `yaml:"otel"`
}

// OtelConfig enables tracing of outgoing backend calls.
type OtelConfig struct {
	Enabled  bool   `yaml:"enabled" env:"LEARNLY_OTEL_ENABLED" env-default:"false"`
	Endpoint string `yaml:"endpoint" env:"LEARNLY_OTEL_ENDPOINT"`
}

// Load reads configuration from the given YAML path, or from the
// environment alone when path is empty.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	} else {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("reading environment: %w", err)
		}
	}

	if cfg.StateDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolving home directory: %w", err)
		}
		cfg.StateDir = filepath.Join(home, ".learnly")
	}

	return &cfg, nil
}
