// Package config loads run configuration from a YAML file with
// environment-variable and built-in defaults layered underneath.
//
// Precedence, lowest to highest: built-in defaults, environment variables
// (OPENAI_API_KEY, OPENAI_BASE_URL), the YAML file, then any flag
// overrides applied by the caller.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LLMConfig holds LLM provider settings.
type LLMConfig struct {
	// Model is the completion model identifier.
	Model string `yaml:"model"`

	// BaseURL overrides the API endpoint for OpenAI-compatible services.
	BaseURL string `yaml:"base_url"`

	// APIKey authenticates API requests.
	APIKey string `yaml:"api_key"`

	// TimeoutSeconds bounds each individual completion call.
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

// BrowserConfig holds browser session settings.
type BrowserConfig struct {
	// Headless controls whether the browser runs without a window.
	// Headed is the default so users can watch the agent work.
	Headless bool `yaml:"headless"`

	// TimeoutMS is the default timeout for page operations.
	TimeoutMS float64 `yaml:"timeout_ms"`
}

// GuardConfig holds semantic guard settings.
type GuardConfig struct {
	// DenyPatterns are glob patterns (e.g. "*.suspicious.example/*");
	// a navigation URL matching any pattern is blocked before the
	// built-in intent rules run.
	DenyPatterns []string `yaml:"deny_patterns"`
}

// Config is the full run configuration.
type Config struct {
	LLM     LLMConfig     `yaml:"llm"`
	Browser BrowserConfig `yaml:"browser"`
	Guard   GuardConfig   `yaml:"guard"`

	// MaxPlanSteps caps how many steps a generated plan may carry.
	// Longer plans are truncated, never rejected.
	MaxPlanSteps int `yaml:"max_plan_steps"`
}

// Default returns the built-in configuration with environment fallbacks
// applied.
func Default() *Config {
	return &Config{
		LLM: LLMConfig{
			Model:          "gpt-4o",
			BaseURL:        os.Getenv("OPENAI_BASE_URL"),
			APIKey:         os.Getenv("OPENAI_API_KEY"),
			TimeoutSeconds: 120,
		},
		Browser: BrowserConfig{
			Headless:  false,
			TimeoutMS: 30000,
		},
		MaxPlanSteps: 12,
	}
}

// Load reads the YAML file at path on top of the defaults. An empty path
// returns the defaults unchanged; a missing or unreadable file is an
// error so typos in -config are not silently ignored.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, cfg.Validate()
}

// Validate checks invariants that would otherwise surface as confusing
// runtime failures.
func (c *Config) Validate() error {
	if c.LLM.TimeoutSeconds <= 0 {
		return fmt.Errorf("llm.timeout_seconds must be positive, got %d", c.LLM.TimeoutSeconds)
	}
	if c.Browser.TimeoutMS <= 0 {
		return fmt.Errorf("browser.timeout_ms must be positive, got %v", c.Browser.TimeoutMS)
	}
	if c.MaxPlanSteps <= 0 {
		return fmt.Errorf("max_plan_steps must be positive, got %d", c.MaxPlanSteps)
	}
	return nil
}
