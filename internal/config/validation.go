package config

import (
	"fmt"
)

// Validate checks config values for correctness.
// Returns an error listing every invalid value.
func (c *Config) Validate() error {
	var errs []string

	switch c.Provider {
	case ProviderOpenAI:
		if c.APIKey == "" {
			errs = append(errs, EnvOpenAIKey+" is required")
		}
	case ProviderGemini:
		if c.APIKey == "" {
			errs = append(errs, EnvGeminiKey+" is required")
		}
	default:
		errs = append(errs, fmt.Sprintf("provider must be %q or %q, got %q", ProviderOpenAI, ProviderGemini, c.Provider))
	}

	if c.TimeoutMs < 1 {
		errs = append(errs, "timeout_ms must be a positive integer")
	}
	if c.OutputDir == "" {
		errs = append(errs, "output_dir must not be empty")
	}

	// Models
	if c.Models.Default == "" {
		errs = append(errs, "models.default must not be empty")
	}
	if c.Models.Reasoning == "" {
		errs = append(errs, "models.reasoning must not be empty")
	}

	// Logging
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Sprintf("log.level must be one of debug, info, warn, error, got %q", c.Log.Level))
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Sprintf("log.format must be text or json, got %q", c.Log.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed: %v", errs)
	}

	return nil
}
