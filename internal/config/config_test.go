package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Provider != "openai" {
		t.Errorf("Default provider = %q, want %q", cfg.Provider, "openai")
	}
	if cfg.Model != "" {
		t.Errorf("Default model = %q, want empty", cfg.Model)
	}
	if cfg.LightModel {
		t.Error("Default lightModel should be false")
	}
	if cfg.Temperature != 0.5 {
		t.Errorf("Default temperature = %v, want 0.5", cfg.Temperature)
	}
	if cfg.MaxTokens != 4096 {
		t.Errorf("Default maxTokens = %d, want 4096", cfg.MaxTokens)
	}
	if cfg.SystemPrompt != "You are a helpful assistant." {
		t.Errorf("Default systemPrompt = %q", cfg.SystemPrompt)
	}
	if cfg.Format != "markdown" {
		t.Errorf("Default format = %q, want %q", cfg.Format, "markdown")
	}
	if cfg.Debug {
		t.Error("Default debug should be false")
	}
	if !cfg.RedactSecrets {
		t.Error("Default redactSecrets should be true")
	}
	if !cfg.Cache.Enabled {
		t.Error("Default cache.enabled should be true")
	}
	if cfg.Cache.TTLSeconds != 86400 {
		t.Errorf("Default cache.ttlSeconds = %d, want 86400", cfg.Cache.TTLSeconds)
	}
	if cfg.RateLimit.RPS != 5 || cfg.RateLimit.Burst != 10 {
		t.Errorf("Default rate limit = %v/%d, want 5/10", cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}
}

func TestSetField(t *testing.T) {
	cfg := Default()

	tests := []struct {
		key   string
		value string
	}{
		{"ai_provider", "anthropic"},
		{"model", "claude-sonnet-4-6"},
		{"light_model", "true"},
		{"ai_base_url", "http://localhost:11434"},
		{"temperature", "1.2"},
		{"max_tokens", "1000"},
		{"system_prompt", "You are a pirate."},
		{"format", "json"},
		{"debug", "true"},
		{"redact_secrets", "false"},
		{"cache.enabled", "false"},
		{"cache.dir", "/tmp/quill-cache"},
		{"cache.ttl_seconds", "3600"},
		{"rate_limit.rps", "2.5"},
		{"rate_limit.burst", "4"},
	}

	for _, tt := range tests {
		if err := SetField(&cfg, tt.key, tt.value); err != nil {
			t.Errorf("SetField(%q, %q) error: %v", tt.key, tt.value, err)
		}
	}

	if cfg.Provider != "anthropic" {
		t.Errorf("Provider = %q, want %q", cfg.Provider, "anthropic")
	}
	if !cfg.LightModel {
		t.Error("LightModel should be true")
	}
	if cfg.Temperature != 1.2 {
		t.Errorf("Temperature = %v, want 1.2", cfg.Temperature)
	}
	if cfg.MaxTokens != 1000 {
		t.Errorf("MaxTokens = %d, want 1000", cfg.MaxTokens)
	}
	if cfg.Cache.Enabled {
		t.Error("Cache.Enabled should be false")
	}
	if cfg.Cache.TTLSeconds != 3600 {
		t.Errorf("Cache.TTLSeconds = %d, want 3600", cfg.Cache.TTLSeconds)
	}
	if cfg.RateLimit.RPS != 2.5 || cfg.RateLimit.Burst != 4 {
		t.Errorf("RateLimit = %v/%d, want 2.5/4", cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}
}

func TestSetField_UnknownKey(t *testing.T) {
	cfg := Default()
	if err := SetField(&cfg, "nonexistent", "value"); err == nil {
		t.Error("Expected error for unknown key")
	}
}

func TestSetField_BadValue(t *testing.T) {
	cfg := Default()
	err := SetField(&cfg, "temperature", "warm")
	if err == nil {
		t.Fatal("Expected error for non-numeric temperature")
	}
	te, ok := err.(*TypeError)
	if !ok {
		t.Fatalf("error type = %T, want *TypeError", err)
	}
	if te.Field != "temperature" {
		t.Errorf("TypeError field = %q, want %q", te.Field, "temperature")
	}
	if te.Value != "warm" {
		t.Errorf("TypeError value = %q, want %q", te.Value, "warm")
	}
}

func TestConfigDir_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-test")
	dir, err := ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir error: %v", err)
	}
	if dir != "/tmp/xdg-test/quill" {
		t.Errorf("ConfigDir = %q, want %q", dir, "/tmp/xdg-test/quill")
	}
}

func TestGlobalPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-test")
	path, err := GlobalPath()
	if err != nil {
		t.Fatalf("GlobalPath error: %v", err)
	}
	if path != "/tmp/xdg-test/quill/config.yaml" {
		t.Errorf("GlobalPath = %q, want %q", path, "/tmp/xdg-test/quill/config.yaml")
	}
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := Default()
	cfg.Provider = "gemini"
	cfg.Model = "gemini-2.5-flash"
	cfg.Temperature = 0.9

	if err := Save(cfg, path); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	vals, err := FileValues(path)
	if err != nil {
		t.Fatalf("FileValues error: %v", err)
	}
	if vals.Provider == nil || *vals.Provider != "gemini" {
		t.Errorf("Provider = %v, want gemini", vals.Provider)
	}
	if vals.Model == nil || *vals.Model != "gemini-2.5-flash" {
		t.Errorf("Model = %v, want gemini-2.5-flash", vals.Model)
	}
	if vals.Temperature == nil || *vals.Temperature != 0.9 {
		t.Errorf("Temperature = %v, want 0.9", vals.Temperature)
	}
}

func TestInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := Init(path); err != nil {
		t.Fatalf("Init error: %v", err)
	}

	// The example must itself be a loadable config.
	vals, err := FileValues(path)
	if err != nil {
		t.Fatalf("FileValues on example config: %v", err)
	}
	if vals.Provider == nil || *vals.Provider != "openai" {
		t.Errorf("example provider = %v, want openai", vals.Provider)
	}

	// Second Init must refuse to overwrite.
	if err := Init(path); err == nil {
		t.Error("Expected error when config file already exists")
	}
}

func TestInit_CreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "quill", "config.yaml")
	if err := Init(path); err != nil {
		t.Fatalf("Init error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("config file not created: %v", err)
	}
}
