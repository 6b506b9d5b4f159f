// Package config loads client configuration from an optional YAML file and
// the environment. Environment variables win; absent configuration falls
// back to the local development API.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// DefaultAPIURL is used when no base URL is configured.
const DefaultAPIURL = "http://localhost:3000/api"

// Config holds everything the client needs to reach the API and keep
// local state.
type Config struct {
	APIURL            string        `envconfig:"API_URL" yaml:"api_url"`
	Timeout           time.Duration `envconfig:"TIMEOUT" yaml:"timeout"`
	RequestsPerSecond float64       `envconfig:"REQUESTS_PER_SECOND" yaml:"requests_per_second"`
	Debug             bool          `envconfig:"DEBUG" yaml:"debug"`
	StatePath         string        `envconfig:"STATE_PATH" yaml:"state_path"`
	DownloadDir       string        `envconfig:"DOWNLOAD_DIR" yaml:"download_dir"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		APIURL:            DefaultAPIURL,
		Timeout:           20 * time.Second,
		RequestsPerSecond: 20,
	}
}

// Load builds the effective configuration: defaults, then the config file
// if one exists, then BM_* environment variables.
func Load() (Config, error) {
	cfg := Default()

	path, err := FilePath()
	if err == nil {
		if ferr := applyFile(path, &cfg); ferr != nil && !errors.Is(ferr, os.ErrNotExist) {
			return Config{}, fmt.Errorf("read config file %s: %w", path, ferr)
		}
	}

	if err := envconfig.Process("bm", &cfg); err != nil {
		return Config{}, fmt.Errorf("process environment: %w", err)
	}

	if cfg.APIURL == "" {
		cfg.APIURL = DefaultAPIURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 20 * time.Second
	}
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = 20
	}

	return cfg, nil
}

// FilePath returns the location of the optional YAML config file.
func FilePath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// StateDBPath resolves where the local state database lives.
func (c Config) StateDBPath() (string, error) {
	if c.StatePath != "" {
		return c.StatePath, nil
	}
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "state.db"), nil
}

func configDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "bm"), nil
}

func applyFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
