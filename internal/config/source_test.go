package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".quill.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing test config: %v", err)
	}
	return path
}

func TestFileValues_Missing(t *testing.T) {
	vals, err := FileValues(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file should not error, got: %v", err)
	}
	if vals != (Values{}) {
		t.Errorf("missing file should yield empty values, got %+v", vals)
	}
}

func TestFileValues_Empty(t *testing.T) {
	path := writeFile(t, "")
	vals, err := FileValues(path)
	if err != nil {
		t.Fatalf("empty file should not error, got: %v", err)
	}
	if vals != (Values{}) {
		t.Errorf("empty file should yield empty values, got %+v", vals)
	}
}

func TestFileValues_WhitespaceOnly(t *testing.T) {
	path := writeFile(t, "\n\n  \n")
	vals, err := FileValues(path)
	if err != nil {
		t.Fatalf("whitespace-only file should not error, got: %v", err)
	}
	if vals != (Values{}) {
		t.Errorf("whitespace-only file should yield empty values, got %+v", vals)
	}
}

func TestFileValues_Unreadable(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}
	path := writeFile(t, "ai_provider: openai\n")
	if err := os.Chmod(path, 0o000); err != nil {
		t.Fatalf("chmod: %v", err)
	}
	_, err := FileValues(path)
	var ioErr *IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("error = %v, want *IOError", err)
	}
	if ioErr.Path != path {
		t.Errorf("IOError path = %q, want %q", ioErr.Path, path)
	}
}

func TestFileValues_MalformedYAML(t *testing.T) {
	path := writeFile(t, "ai_provider: [unclosed\n")
	_, err := FileValues(path)
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("error = %v, want *ParseError", err)
	}
	if parseErr.Path != path {
		t.Errorf("ParseError path = %q, want %q", parseErr.Path, path)
	}
}

func TestFileValues_TemperatureNotANumber(t *testing.T) {
	path := writeFile(t, `temperature: "abc"`+"\n")
	_, err := FileValues(path)
	var typeErr *TypeError
	if !errors.As(err, &typeErr) {
		t.Fatalf("error = %v, want *TypeError", err)
	}
	if typeErr.Field != "temperature" {
		t.Errorf("TypeError field = %q, want %q", typeErr.Field, "temperature")
	}
	if typeErr.Value != "abc" {
		t.Errorf("TypeError value = %q, want %q", typeErr.Value, "abc")
	}
}

func TestFileValues_UnknownKeysIgnored(t *testing.T) {
	path := writeFile(t, "ai_provider: ollama\nfuture_setting: whatever\nanother: 42\n")
	vals, err := FileValues(path)
	if err != nil {
		t.Fatalf("FileValues error: %v", err)
	}
	if vals.Provider == nil || *vals.Provider != "ollama" {
		t.Errorf("Provider = %v, want ollama", vals.Provider)
	}
}

func TestFileValues_AllFields(t *testing.T) {
	path := writeFile(t, `
ai_provider: anthropic
model: claude-sonnet-4-6
light_model: true
ai_base_url: http://localhost:8080
temperature: 1.5
max_tokens: 2000
system_prompt: Be terse.
format: json
debug: true
redact_secrets: false
cache:
  enabled: false
  dir: /tmp/c
  ttl_seconds: 60
rate_limit:
  rps: 1.5
  burst: 3
`)
	vals, err := FileValues(path)
	if err != nil {
		t.Fatalf("FileValues error: %v", err)
	}
	if vals.Provider == nil || *vals.Provider != "anthropic" {
		t.Errorf("Provider = %v", vals.Provider)
	}
	if vals.LightModel == nil || !*vals.LightModel {
		t.Errorf("LightModel = %v, want true", vals.LightModel)
	}
	if vals.Temperature == nil || *vals.Temperature != 1.5 {
		t.Errorf("Temperature = %v, want 1.5", vals.Temperature)
	}
	if vals.MaxTokens == nil || *vals.MaxTokens != 2000 {
		t.Errorf("MaxTokens = %v, want 2000", vals.MaxTokens)
	}
	if vals.RedactSecrets == nil || *vals.RedactSecrets {
		t.Errorf("RedactSecrets = %v, want false", vals.RedactSecrets)
	}
	if vals.CacheEnabled == nil || *vals.CacheEnabled {
		t.Errorf("CacheEnabled = %v, want false", vals.CacheEnabled)
	}
	if vals.CacheDir == nil || *vals.CacheDir != "/tmp/c" {
		t.Errorf("CacheDir = %v, want /tmp/c", vals.CacheDir)
	}
	if vals.CacheTTL == nil || *vals.CacheTTL != 60 {
		t.Errorf("CacheTTL = %v, want 60", vals.CacheTTL)
	}
	if vals.RateRPS == nil || *vals.RateRPS != 1.5 {
		t.Errorf("RateRPS = %v, want 1.5", vals.RateRPS)
	}
	if vals.RateBurst == nil || *vals.RateBurst != 3 {
		t.Errorf("RateBurst = %v, want 3", vals.RateBurst)
	}
}

func TestFileValues_IntegerTemperature(t *testing.T) {
	// A whole-number temperature decodes as an int; it must still land
	// in the float field.
	path := writeFile(t, "temperature: 1\n")
	vals, err := FileValues(path)
	if err != nil {
		t.Fatalf("FileValues error: %v", err)
	}
	if vals.Temperature == nil || *vals.Temperature != 1.0 {
		t.Errorf("Temperature = %v, want 1.0", vals.Temperature)
	}
}

func TestFileValues_QuotedNumber(t *testing.T) {
	path := writeFile(t, `temperature: "0.7"`+"\n")
	vals, err := FileValues(path)
	if err != nil {
		t.Fatalf("FileValues error: %v", err)
	}
	if vals.Temperature == nil || *vals.Temperature != 0.7 {
		t.Errorf("Temperature = %v, want 0.7", vals.Temperature)
	}
}

func TestFileValues_CacheNotAMapping(t *testing.T) {
	path := writeFile(t, "cache: yes\n")
	_, err := FileValues(path)
	var typeErr *TypeError
	if !errors.As(err, &typeErr) {
		t.Fatalf("error = %v, want *TypeError", err)
	}
	if typeErr.Field != "cache" {
		t.Errorf("TypeError field = %q, want %q", typeErr.Field, "cache")
	}
}

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestEnvValues(t *testing.T) {
	vals, err := EnvValues(lookupFrom(map[string]string{
		"QUILL_AI_PROVIDER": "groq",
		"QUILL_MODEL":       "llama-3.3-70b-versatile",
		"QUILL_LIGHT_MODEL": "true",
		"QUILL_TEMPERATURE": "0.9",
		"QUILL_MAX_TOKENS":  "512",
		"QUILL_FORMAT":      "text",
		"QUILL_DEBUG":       "1",
		"UNRELATED":         "ignored",
	}))
	if err != nil {
		t.Fatalf("EnvValues error: %v", err)
	}
	if vals.Provider == nil || *vals.Provider != "groq" {
		t.Errorf("Provider = %v, want groq", vals.Provider)
	}
	if vals.LightModel == nil || !*vals.LightModel {
		t.Errorf("LightModel = %v, want true", vals.LightModel)
	}
	if vals.Temperature == nil || *vals.Temperature != 0.9 {
		t.Errorf("Temperature = %v, want 0.9", vals.Temperature)
	}
	if vals.MaxTokens == nil || *vals.MaxTokens != 512 {
		t.Errorf("MaxTokens = %v, want 512", vals.MaxTokens)
	}
	if vals.Debug == nil || !*vals.Debug {
		t.Errorf("Debug = %v, want true", vals.Debug)
	}
	if vals.BaseURL != nil {
		t.Errorf("BaseURL should be unset, got %v", *vals.BaseURL)
	}
}

func TestEnvValues_BadTemperature(t *testing.T) {
	_, err := EnvValues(lookupFrom(map[string]string{
		"QUILL_TEMPERATURE": "hot",
	}))
	var typeErr *TypeError
	if !errors.As(err, &typeErr) {
		t.Fatalf("error = %v, want *TypeError", err)
	}
	if typeErr.Field != "temperature" {
		t.Errorf("TypeError field = %q, want %q", typeErr.Field, "temperature")
	}
	if typeErr.Value != "hot" {
		t.Errorf("TypeError value = %q, want %q", typeErr.Value, "hot")
	}
}

func TestEnvValues_EmptyEnvironment(t *testing.T) {
	vals, err := EnvValues(lookupFrom(nil))
	if err != nil {
		t.Fatalf("EnvValues error: %v", err)
	}
	if vals != (Values{}) {
		t.Errorf("empty environment should yield empty values, got %+v", vals)
	}
}
