package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	// ConfigDir is the directory name under ~/.config
	ConfigDir = "oaimcp"
	// ConfigFile is the config file name
	ConfigFile = "config.json"
)

// Environment variable names.
const (
	EnvOpenAIKey          = "OPENAI_API_KEY"
	EnvGeminiKey          = "GEMINI_API_KEY"
	EnvProvider           = "OAIMCP_PROVIDER"
	EnvBaseURL            = "OPENAI_BASE_URL"
	EnvDefaultModel       = "OPENAI_DEFAULT_MODEL"
	EnvReasoningModel     = "OPENAI_REASONING_MODEL"
	EnvImageModel         = "OPENAI_IMAGE_MODEL"
	EnvSpeechModel        = "OPENAI_SPEECH_MODEL"
	EnvTranscriptionModel = "OPENAI_TRANSCRIPTION_MODEL"
	EnvTimeout            = "OPENAI_TIMEOUT"
	EnvCancelOnTimeout    = "OPENAI_CANCEL_ON_TIMEOUT"
	EnvOutputDir          = "OPENAI_OUTPUT_DIR"
	EnvLogLevel           = "OAIMCP_LOG_LEVEL"
	EnvLogFormat          = "OAIMCP_LOG_FORMAT"
	EnvMetricsAddr        = "OAIMCP_METRICS_ADDR"
)

// FileSystem abstracts file operations for testability
type FileSystem interface {
	UserHomeDir() (string, error)
	ReadFile(path string) ([]byte, error)
}

// Environment abstracts environment variable lookup for testability
type Environment interface {
	LookupEnv(key string) (string, bool)
}

// ConfigFileReader implements FileSystem using the real OS for config loading
type ConfigFileReader struct{}

func (ConfigFileReader) UserHomeDir() (string, error) {
	return os.UserHomeDir()
}

func (ConfigFileReader) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// OSEnvironment implements Environment using the process environment
type OSEnvironment struct{}

func (OSEnvironment) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// Loader handles configuration loading with injected dependencies
type Loader struct {
	fs  FileSystem
	env Environment
}

// NewLoader creates a production Loader using the real filesystem and environment
func NewLoader() *Loader {
	return &Loader{fs: ConfigFileReader{}, env: OSEnvironment{}}
}

// NewLoaderWith creates a Loader with a custom filesystem and environment (for testing)
func NewLoaderWith(fs FileSystem, env Environment) *Loader {
	return &Loader{fs: fs, env: env}
}

// Load builds the configuration in three layers: defaults, then
// ~/.config/oaimcp/config.json, then environment variables.
// A missing dotfile is not an error.
// Returns an error for parse errors, permission issues, malformed environment
// values, or validation failures (including a missing API key).
//
// NOTE: The dotfile is unmarshalled directly over the defaults, so explicit zero
// values in the file override defaults while missing keys leave them untouched.
func (l *Loader) Load() (*Config, error) {
	cfg := DefaultConfig()

	if err := l.loadDotfile(cfg); err != nil {
		return nil, err
	}

	if err := l.applyEnv(cfg); err != nil {
		return nil, err
	}

	cfg.fillModelDefaults()

	// Validate the merged configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (l *Loader) loadDotfile(cfg *Config) error {
	homeDir, err := l.fs.UserHomeDir()
	if err != nil {
		return nil // Use defaults if can't get home dir
	}

	configPath := filepath.Join(homeDir, ".config", ConfigDir, ConfigFile)

	data, err := l.fs.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read %s: %w", configPath, err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", configPath, err)
	}
	return nil
}

// applyEnv overlays environment variables onto cfg.
// Malformed values are collected and reported together.
func (l *Loader) applyEnv(cfg *Config) error {
	var errs []string

	str := func(key string, dst *string) {
		if v, ok := l.env.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}

	str(EnvProvider, &cfg.Provider)
	cfg.Provider = strings.ToLower(cfg.Provider)

	switch cfg.Provider {
	case ProviderGemini:
		str(EnvGeminiKey, &cfg.APIKey)
	default:
		str(EnvOpenAIKey, &cfg.APIKey)
	}

	str(EnvBaseURL, &cfg.BaseURL)
	str(EnvDefaultModel, &cfg.Models.Default)
	str(EnvReasoningModel, &cfg.Models.Reasoning)
	str(EnvImageModel, &cfg.Models.Image)
	str(EnvSpeechModel, &cfg.Models.Speech)
	str(EnvTranscriptionModel, &cfg.Models.Transcription)
	str(EnvOutputDir, &cfg.OutputDir)
	str(EnvLogLevel, &cfg.Log.Level)
	str(EnvLogFormat, &cfg.Log.Format)
	str(EnvMetricsAddr, &cfg.MetricsAddr)

	if v, ok := l.env.LookupEnv(EnvTimeout); ok && strings.TrimSpace(v) != "" {
		ms, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s must be a positive integer, got %q", EnvTimeout, v))
		} else {
			cfg.TimeoutMs = ms
		}
	}

	if v, ok := l.env.LookupEnv(EnvCancelOnTimeout); ok && strings.TrimSpace(v) != "" {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s must be a boolean, got %q", EnvCancelOnTimeout, v))
		} else {
			cfg.CancelOnTimeout = b
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed: %v", errs)
	}
	return nil
}

// Load is a convenience function using the default loader
func Load() (*Config, error) {
	return NewLoader().Load()
}
