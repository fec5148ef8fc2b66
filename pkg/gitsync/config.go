package gitsync

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// FileConfig is the optional on-disk configuration. Environment variables
// and flags override whatever it sets.
type FileConfig struct {
	Endpoint     string `yaml:"endpoint"`
	Model        string `yaml:"model"`
	Timeout      string `yaml:"timeout"`
	MaxDiffBytes int    `yaml:"max_diff_bytes"`
	Remote       string `yaml:"remote"`
	Public       *bool  `yaml:"public"`
}

// DefaultConfigPath returns ~/.config/gitsync/config.yaml, or "" when the
// home directory cannot be resolved.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "gitsync", "config.yaml")
}

// LoadFileConfig reads the YAML config file. A missing file is not an
// error, the zero config applies.
func LoadFileConfig(path string) (*FileConfig, error) {
	if path == "" {
		return &FileConfig{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &FileConfig{}, nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var config FileConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return &config, nil
}

// Apply copies the file values onto settings. Unset values never override.
func (c *FileConfig) Apply(settings *Settings) error {
	if c.Endpoint != "" {
		settings.Endpoint = c.Endpoint
	}
	if c.Model != "" {
		settings.Model = c.Model
	}
	if c.Timeout != "" {
		timeout, err := time.ParseDuration(c.Timeout)
		if err != nil {
			return fmt.Errorf("invalid timeout %q in config file: %w", c.Timeout, err)
		}
		settings.Timeout = timeout
	}
	if c.MaxDiffBytes > 0 {
		settings.MaxDiffBytes = c.MaxDiffBytes
	}
	if c.Remote != "" {
		settings.Remote = c.Remote
	}
	if c.Public != nil {
		settings.Public = *c.Public
	}
	return nil
}

// ApplyEnv overlays environment variables onto settings. The API key comes
// exclusively from here.
func ApplyEnv(settings *Settings) error {
	settings.APIKey = os.Getenv("OPENROUTER_API_KEY")

	if endpoint := os.Getenv("GITSYNC_ENDPOINT"); endpoint != "" {
		settings.Endpoint = endpoint
	}
	if model := os.Getenv("GITSYNC_MODEL"); model != "" {
		settings.Model = model
	}
	if timeout := os.Getenv("GITSYNC_TIMEOUT"); timeout != "" {
		parsed, err := time.ParseDuration(timeout)
		if err != nil {
			return fmt.Errorf("invalid GITSYNC_TIMEOUT %q: %w", timeout, err)
		}
		settings.Timeout = parsed
	}
	if remote := os.Getenv("GITSYNC_REMOTE"); remote != "" {
		settings.Remote = remote
	}
	return nil
}
