package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Config is the fully-resolved configuration for one quill invocation.
// Every field has a defined value after [Resolve]; the record is not
// mutated afterwards and is rebuilt from scratch on every process start.
type Config struct {
	Provider      string          `yaml:"ai_provider"`
	Model         string          `yaml:"model"`
	LightModel    bool            `yaml:"light_model"`
	BaseURL       string          `yaml:"ai_base_url"`
	Temperature   float64         `yaml:"temperature"`
	MaxTokens     int             `yaml:"max_tokens"`
	SystemPrompt  string          `yaml:"system_prompt"`
	Format        string          `yaml:"format"`
	Debug         bool            `yaml:"debug"`
	RedactSecrets bool            `yaml:"redact_secrets"`
	Cache         CacheConfig     `yaml:"cache"`
	RateLimit     RateLimitConfig `yaml:"rate_limit"`
}

// CacheConfig controls response caching behavior.
type CacheConfig struct {
	Enabled    bool   `yaml:"enabled"`
	Dir        string `yaml:"dir,omitempty"`
	TTLSeconds int    `yaml:"ttl_seconds"`
}

// RateLimitConfig controls client-side request throttling.
type RateLimitConfig struct {
	RPS   float64 `yaml:"rps"`
	Burst int     `yaml:"burst"`
}

// Default returns a Config with all defaults applied. It is total:
// every recognized setting has a concrete value here, which guarantees
// that resolution always terminates with a fully-populated record.
func Default() Config {
	return Config{
		Provider:      "openai",
		Model:         "",
		LightModel:    false,
		BaseURL:       "",
		Temperature:   0.5,
		MaxTokens:     4096,
		SystemPrompt:  "You are a helpful assistant.",
		Format:        "markdown",
		Debug:         false,
		RedactSecrets: true,
		Cache: CacheConfig{
			Enabled:    true,
			TTLSeconds: 86400,
		},
		RateLimit: RateLimitConfig{
			RPS:   5,
			Burst: 10,
		},
	}
}

// LocalFileName is the project-local config file looked up in the
// working directory.
const LocalFileName = ".quill.yaml"

// ConfigDir returns the platform-appropriate config directory for quill.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "quill"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "quill"), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "quill"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "quill"), nil
	default:
		return filepath.Join(home, ".config", "quill"), nil
	}
}

// GlobalPath returns the full path to the global config file.
func GlobalPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Save writes the config to the given path, creating parent directories
// as needed.
func Save(cfg Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// exampleConfig is the commented starter file written by Init.
const exampleConfig = `# quill configuration
# Copy this to .quill.yaml in a project directory, or keep it as the
# global config. Settings here are overridden by environment variables
# (QUILL_*) and CLI flags.

ai_provider: openai # openai, anthropic, gemini, groq, ollama
model: ""           # empty = provider default model
light_model: false  # use the lighter/faster model variant
ai_base_url: ""     # custom base URL for self-hosted or compatible endpoints
temperature: 0.5    # response creativity (0.0-2.0)
max_tokens: 4096
system_prompt: "You are a helpful assistant."
format: markdown    # markdown, text, json
debug: false
redact_secrets: true

cache:
  enabled: true
  ttl_seconds: 86400

rate_limit:
  rps: 5
  burst: 10
`

// Init writes the commented example config to path. It refuses to
// overwrite an existing file.
func Init(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	return os.WriteFile(path, []byte(exampleConfig), 0o644)
}

// SetField sets a single config field by its file key name. Returns an
// error for unknown keys or values that do not coerce to the field type.
func SetField(cfg *Config, key, value string) error {
	switch key {
	case "ai_provider":
		cfg.Provider = value
	case "model":
		cfg.Model = value
	case "light_model":
		b, err := coerceBool(key, value)
		if err != nil {
			return err
		}
		cfg.LightModel = b
	case "ai_base_url":
		cfg.BaseURL = value
	case "temperature":
		f, err := coerceFloat(key, value)
		if err != nil {
			return err
		}
		cfg.Temperature = f
	case "max_tokens":
		n, err := coerceInt(key, value)
		if err != nil {
			return err
		}
		cfg.MaxTokens = n
	case "system_prompt":
		cfg.SystemPrompt = value
	case "format":
		cfg.Format = value
	case "debug":
		b, err := coerceBool(key, value)
		if err != nil {
			return err
		}
		cfg.Debug = b
	case "redact_secrets":
		b, err := coerceBool(key, value)
		if err != nil {
			return err
		}
		cfg.RedactSecrets = b
	case "cache.enabled":
		b, err := coerceBool(key, value)
		if err != nil {
			return err
		}
		cfg.Cache.Enabled = b
	case "cache.dir":
		cfg.Cache.Dir = value
	case "cache.ttl_seconds":
		n, err := coerceInt(key, value)
		if err != nil {
			return err
		}
		cfg.Cache.TTLSeconds = n
	case "rate_limit.rps":
		f, err := coerceFloat(key, value)
		if err != nil {
			return err
		}
		cfg.RateLimit.RPS = f
	case "rate_limit.burst":
		n, err := coerceInt(key, value)
		if err != nil {
			return err
		}
		cfg.RateLimit.Burst = n
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}
