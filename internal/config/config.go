// Package config loads the service configuration from YAML, with secrets
// taken from the environment.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server struct {
		Port        int `yaml:"port"`
		MetricsPort int `yaml:"metrics_port"`
	} `yaml:"server"`

	Database struct {
		Path string `yaml:"path"`
	} `yaml:"database"`

	Submission struct {
		BaseURL string `yaml:"base_url"`
	} `yaml:"submission"`

	Suggestions struct {
		// Provider selects the server-ranked suggestion backend:
		// "off", "http" or "openai".
		Provider string `yaml:"provider"`
		BaseURL  string `yaml:"base_url"`
		Model    string `yaml:"model"`
	} `yaml:"suggestions"`

	Onboarding struct {
		// ForceAllItems pins the overview to the all-items phase; debug
		// override only.
		ForceAllItems bool `yaml:"force_all_items"`
	} `yaml:"onboarding"`

	// Secrets, environment only
	JWTSecret           string `yaml:"-"`
	OpenAIKey           string `yaml:"-"`
	SubmissionAuthToken string `yaml:"-"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{}
	cfg.Server.Port = 8080
	cfg.Server.MetricsPort = 9090
	cfg.Database.Path = "quartermaster.db"
	cfg.Submission.BaseURL = "http://localhost:9000"
	cfg.Suggestions.Provider = "off"
	cfg.Suggestions.Model = "gpt-4-turbo-preview"
	return cfg
}

// Load reads the YAML file at path, falling back to defaults when the
// file does not exist, then overlays environment secrets.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Run on defaults
	case err != nil:
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	cfg.JWTSecret = os.Getenv("QM_JWT_SECRET")
	cfg.OpenAIKey = os.Getenv("OPENAI_API_KEY")
	cfg.SubmissionAuthToken = os.Getenv("QM_SUBMISSION_TOKEN")
	return cfg, nil
}
