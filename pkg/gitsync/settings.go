package gitsync

import (
	"fmt"
	"time"
)

const (
	DefaultEndpoint     = "https://openrouter.ai/api/v1"
	DefaultModel        = "google/gemini-2.5-flash-lite"
	DefaultTimeout      = 30 * time.Second
	DefaultMaxDiffBytes = 8000
	DefaultRemote       = "origin"
)

// Settings configures a single run. The API key travels here so nothing in
// the pipeline reads the environment past construction.
type Settings struct {
	Endpoint     string
	APIKey       string
	Model        string
	Timeout      time.Duration
	MaxDiffBytes int
	Message      string
	Remote       string
	DryRun       bool
	NoPush       bool
	AssumeYes    bool
	Public       bool
}

// NewSettings returns settings with all defaults applied.
func NewSettings() *Settings {
	return &Settings{
		Endpoint:     DefaultEndpoint,
		Model:        DefaultModel,
		Timeout:      DefaultTimeout,
		MaxDiffBytes: DefaultMaxDiffBytes,
		Remote:       DefaultRemote,
	}
}

func (s *Settings) Validate() error {
	if s == nil {
		return fmt.Errorf("settings cannot be nil")
	}
	if s.Endpoint == "" {
		return fmt.Errorf("endpoint cannot be empty")
	}
	if s.Model == "" {
		return fmt.Errorf("model cannot be empty")
	}
	if s.Timeout <= 0 {
		return fmt.Errorf("timeout must be greater than zero")
	}
	if s.MaxDiffBytes <= 0 {
		return fmt.Errorf("max diff size must be greater than zero")
	}
	if s.Remote == "" {
		return fmt.Errorf("remote name cannot be empty")
	}
	return nil
}
