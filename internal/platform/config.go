package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the optional per-vault configuration file.
const ConfigFileName = "config.yaml"

// fileConfig is the on-disk configuration. All fields are optional;
// explicit options win over the file, the file wins over defaults.
type fileConfig struct {
	Model       string  `yaml:"model"`
	Temperature float64 `yaml:"temperature"`
	MaxTokens   int     `yaml:"max_tokens"`
	Timeout     string  `yaml:"timeout"` // Go duration string, e.g. "30s"
	BaseURL     string  `yaml:"base_url"`
}

// loadFileConfig reads the vault's config file if present.
// A missing file yields a zero config, not an error.
func loadFileConfig(dir string) (fileConfig, error) {
	var cfg fileConfig

	data, err := os.ReadFile(filepath.Join(dir, ConfigFileName))
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read %s: %w", ConfigFileName, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", ConfigFileName, err)
	}
	return cfg, nil
}

// timeoutDuration parses the file's timeout field. Empty means unset.
func (c fileConfig) timeoutDuration() (time.Duration, error) {
	if c.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout %q in %s: %w", c.Timeout, ConfigFileName, err)
	}
	return d, nil
}
