package ai

import (
	"errors"
	"fmt"
)

// Providers supported by the template, in display order.
var Providers = []string{"openai", "anthropic", "gemini", "groq", "ollama"}

// defaultModels maps each provider to its default model.
var defaultModels = map[string]string{
	"openai":    "gpt-5.2",
	"anthropic": "claude-sonnet-4-6",
	"gemini":    "gemini-2.5-pro",
	"groq":      "llama-3.3-70b-versatile",
	"ollama":    "llama3.3",
}

// lightModels maps each provider to its lighter/faster variant.
var lightModels = map[string]string{
	"openai":    "gpt-4.1-mini",
	"anthropic": "claude-haiku-4-5",
	"gemini":    "gemini-2.5-flash",
	"groq":      "llama-3.1-8b-instant",
	"ollama":    "llama3.2",
}

// keyEnvNames maps providers to the environment variable holding their
// API key. Providers absent from this map need no key.
var keyEnvNames = map[string]string{
	"openai":    "OPENAI_API_KEY",
	"anthropic": "ANTHROPIC_API_KEY",
	"gemini":    "GOOGLE_API_KEY",
	"groq":      "GROQ_API_KEY",
}

// ModelName picks the model to use: an explicit model wins, then the
// light variant if requested, then the provider default.
func ModelName(provider, model string, light bool) string {
	if model != "" {
		return model
	}
	if light {
		if m, ok := lightModels[provider]; ok {
			return m
		}
	}
	return defaultModels[provider]
}

// CredentialError reports a missing API key for a provider.
type CredentialError struct {
	Provider string
	EnvVar   string
}

func (e *CredentialError) Error() string {
	return fmt.Sprintf("missing %s environment variable for provider %s", e.EnvVar, e.Provider)
}

// IsCredentialError checks whether an error is a missing-key error,
// used to pick the auth exit code.
func IsCredentialError(err error) bool {
	var ce *CredentialError
	return errors.As(err, &ce)
}

// RequireCredentials verifies the API key for the provider is present
// in the environment. The lookup is injected so tests never touch the
// real process environment. Local providers (ollama) need no key.
func RequireCredentials(provider string, lookup func(string) (string, bool)) error {
	envVar, ok := keyEnvNames[provider]
	if !ok {
		return nil
	}
	if v, ok := lookup(envVar); !ok || v == "" {
		return &CredentialError{Provider: provider, EnvVar: envVar}
	}
	return nil
}
