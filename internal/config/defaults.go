package config

import "time"

// Provider names accepted in Config.Provider.
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// Config holds all application configuration values.
// Defaults are set in DefaultConfig() and can be overridden via dotfile,
// then via environment variables.
// NOTE: The API key is only ever read from the environment.
type Config struct {
	Provider string `json:"provider"` // Default: "openai"
	APIKey   string `json:"-"`
	BaseURL  string `json:"base_url"` // Default: "" (SDK default endpoint)

	Models ModelsConfig `json:"models"`

	TimeoutMs       int    `json:"timeout_ms"`        // Default: 60000 (base timeout, scaled per call class)
	CancelOnTimeout bool   `json:"cancel_on_timeout"` // Default: false (abandoned calls keep running)
	OutputDir       string `json:"output_dir"`        // Default: "./openai-output"

	Log         LogConfig `json:"log"`
	MetricsAddr string    `json:"metrics_addr"` // Default: "" (metrics endpoint disabled)
}

// ModelsConfig holds the default model per tool role.
// Empty values are filled from the selected provider's defaults after loading.
type ModelsConfig struct {
	Default       string `json:"default"`       // Default: gpt-4.1 / gemini-2.5-flash
	Reasoning     string `json:"reasoning"`     // Default: o4-mini / gemini-2.5-pro
	Image         string `json:"image"`         // Default: gpt-image-1
	Speech        string `json:"speech"`        // Default: gpt-4o-mini-tts
	Transcription string `json:"transcription"` // Default: gpt-4o-transcribe
}

type LogConfig struct {
	Level  string `json:"level"`  // Default: "info"
	Format string `json:"format"` // Default: "text"
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Provider:  ProviderOpenAI,
		TimeoutMs: 60000,
		OutputDir: "./openai-output",
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// providerModelDefaults returns the per-role model defaults for a provider.
func providerModelDefaults(provider string) ModelsConfig {
	if provider == ProviderGemini {
		return ModelsConfig{
			Default:       "gemini-2.5-flash",
			Reasoning:     "gemini-2.5-pro",
			Image:         "gpt-image-1",
			Speech:        "gpt-4o-mini-tts",
			Transcription: "gemini-2.5-flash",
		}
	}
	return ModelsConfig{
		Default:       "gpt-4.1",
		Reasoning:     "o4-mini",
		Image:         "gpt-image-1",
		Speech:        "gpt-4o-mini-tts",
		Transcription: "gpt-4o-transcribe",
	}
}

// fillModelDefaults sets every empty model role to the provider default.
func (c *Config) fillModelDefaults() {
	d := providerModelDefaults(c.Provider)
	if c.Models.Default == "" {
		c.Models.Default = d.Default
	}
	if c.Models.Reasoning == "" {
		c.Models.Reasoning = d.Reasoning
	}
	if c.Models.Image == "" {
		c.Models.Image = d.Image
	}
	if c.Models.Speech == "" {
		c.Models.Speech = d.Speech
	}
	if c.Models.Transcription == "" {
		c.Models.Transcription = d.Transcription
	}
}

// Timeout returns the base timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutMs) * time.Millisecond
}
