package config

import "os"

// Resolve merges partial records into one effective Config. Sources are
// given highest precedence first; for each setting the first record
// that supplies a value wins, and the built-in defaults cover anything
// no source supplied. The fold is deterministic and has no side
// effects, so resolving the same sources twice yields identical
// configs.
func Resolve(sources ...Source) Config {
	cfg := Default()
	for i := len(sources) - 1; i >= 0; i-- {
		apply(&cfg, sources[i].Values)
	}
	return cfg
}

func apply(dst *Config, v Values) {
	if v.Provider != nil {
		dst.Provider = *v.Provider
	}
	if v.Model != nil {
		dst.Model = *v.Model
	}
	if v.LightModel != nil {
		dst.LightModel = *v.LightModel
	}
	if v.BaseURL != nil {
		dst.BaseURL = *v.BaseURL
	}
	if v.Temperature != nil {
		dst.Temperature = *v.Temperature
	}
	if v.MaxTokens != nil {
		dst.MaxTokens = *v.MaxTokens
	}
	if v.SystemPrompt != nil {
		dst.SystemPrompt = *v.SystemPrompt
	}
	if v.Format != nil {
		dst.Format = *v.Format
	}
	if v.Debug != nil {
		dst.Debug = *v.Debug
	}
	if v.RedactSecrets != nil {
		dst.RedactSecrets = *v.RedactSecrets
	}
	if v.CacheEnabled != nil {
		dst.Cache.Enabled = *v.CacheEnabled
	}
	if v.CacheDir != nil {
		dst.Cache.Dir = *v.CacheDir
	}
	if v.CacheTTL != nil {
		dst.Cache.TTLSeconds = *v.CacheTTL
	}
	if v.RateRPS != nil {
		dst.RateLimit.RPS = *v.RateRPS
	}
	if v.RateBurst != nil {
		dst.RateLimit.Burst = *v.RateBurst
	}
}

// LoadOptions selects the input channels for one resolution pass. Zero
// values pick the standard locations and the real process environment.
type LoadOptions struct {
	// CLI holds values from flags the user explicitly passed.
	CLI Values
	// LocalPath overrides the project-local config file location.
	LocalPath string
	// GlobalPath overrides the global config file location.
	GlobalPath string
	// LookupEnv overrides environment lookups; defaults to os.LookupEnv.
	LookupEnv func(string) (string, bool)
}

// Load builds the effective config for this invocation. Any source that
// is present but broken (unreadable, malformed, or carrying an
// uncoercible value) aborts resolution; a broken file is a louder
// signal than an absent one and is never masked by defaults.
func Load(opts LoadOptions) (Config, error) {
	localPath := opts.LocalPath
	if localPath == "" {
		localPath = LocalFileName
	}
	local, err := FileValues(localPath)
	if err != nil {
		return Config{}, err
	}

	globalPath := opts.GlobalPath
	if globalPath == "" {
		globalPath, err = GlobalPath()
		if err != nil {
			return Config{}, err
		}
	}
	global, err := FileValues(globalPath)
	if err != nil {
		return Config{}, err
	}

	lookup := opts.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}
	env, err := EnvValues(lookup)
	if err != nil {
		return Config{}, err
	}

	return Resolve(
		Source{Name: "cli", Values: opts.CLI},
		Source{Name: "local file", Values: local},
		Source{Name: "global file", Values: global},
		Source{Name: "environment", Values: env},
	), nil
}
