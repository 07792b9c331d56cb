package stockexplorer

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v2"
)

// Config holds the tool settings read from the optional YAML config file.
type Config struct {
	// HTTPTimeout is the timeout in seconds applied to provider requests.
	HTTPTimeout int `yaml:"http_timeout_seconds"`
	// DisableCache turns off the daily on-disk HTTP response cache.
	DisableCache bool `yaml:"disable_cache"`
	// ChartDir is the directory where HTML charts are written.
	ChartDir string `yaml:"chart_dir"`
}

// DefaultConfig returns the settings used when no config file is present.
func DefaultConfig() Config {
	return Config{HTTPTimeout: 10, ChartDir: "."}
}

// LoadConfig reads the YAML file at path over the defaults. A missing file is
// not an error: the defaults are returned.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	content, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("cannot parse config file %q: %w", path, err)
	}
	if cfg.HTTPTimeout <= 0 {
		cfg.HTTPTimeout = DefaultConfig().HTTPTimeout
	}
	if cfg.ChartDir == "" {
		cfg.ChartDir = DefaultConfig().ChartDir
	}
	return cfg, nil
}

// Timeout returns the HTTP timeout as a duration.
func (c Config) Timeout() time.Duration { return time.Duration(c.HTTPTimeout) * time.Second }
