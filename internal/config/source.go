package config

import (
	"bytes"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Values is a partial configuration record produced by a single source.
// A nil pointer means the source did not supply that setting.
type Values struct {
	Provider      *string
	Model         *string
	LightModel    *bool
	BaseURL       *string
	Temperature   *float64
	MaxTokens     *int
	SystemPrompt  *string
	Format        *string
	Debug         *bool
	RedactSecrets *bool
	CacheEnabled  *bool
	CacheDir      *string
	CacheTTL      *int
	RateRPS       *float64
	RateBurst     *int
}

// Source pairs a partial record with the name of the channel it came
// from, for diagnostics.
type Source struct {
	Name   string
	Values Values
}

// FileValues reads a YAML config file into a partial record.
//
// A missing file yields an empty record and no error. An empty or
// whitespace-only file likewise yields an empty record. A file that
// exists but cannot be read fails with [IOError]; malformed YAML fails
// with [ParseError]; a value that does not coerce to its field type
// fails with [TypeError]. Unrecognized keys are ignored.
func FileValues(path string) (Values, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Values{}, nil
		}
		return Values{}, &IOError{Path: path, Err: err}
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return Values{}, nil
	}
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Values{}, &ParseError{Path: path, Err: err}
	}
	return valuesFromMap(raw)
}

func valuesFromMap(raw map[string]any) (Values, error) {
	var v Values
	for key, val := range raw {
		switch key {
		case "ai_provider":
			s, err := anyString(key, val)
			if err != nil {
				return Values{}, err
			}
			v.Provider = &s
		case "model":
			s, err := anyString(key, val)
			if err != nil {
				return Values{}, err
			}
			v.Model = &s
		case "light_model":
			b, err := anyBool(key, val)
			if err != nil {
				return Values{}, err
			}
			v.LightModel = &b
		case "ai_base_url":
			s, err := anyString(key, val)
			if err != nil {
				return Values{}, err
			}
			v.BaseURL = &s
		case "temperature":
			f, err := anyFloat(key, val)
			if err != nil {
				return Values{}, err
			}
			v.Temperature = &f
		case "max_tokens":
			n, err := anyInt(key, val)
			if err != nil {
				return Values{}, err
			}
			v.MaxTokens = &n
		case "system_prompt":
			s, err := anyString(key, val)
			if err != nil {
				return Values{}, err
			}
			v.SystemPrompt = &s
		case "format":
			s, err := anyString(key, val)
			if err != nil {
				return Values{}, err
			}
			v.Format = &s
		case "debug":
			b, err := anyBool(key, val)
			if err != nil {
				return Values{}, err
			}
			v.Debug = &b
		case "redact_secrets":
			b, err := anyBool(key, val)
			if err != nil {
				return Values{}, err
			}
			v.RedactSecrets = &b
		case "cache":
			if err := cacheFromMap(&v, key, val); err != nil {
				return Values{}, err
			}
		case "rate_limit":
			if err := rateFromMap(&v, key, val); err != nil {
				return Values{}, err
			}
		}
		// Unknown keys fall through untouched so old binaries tolerate
		// config files written for newer ones.
	}
	return v, nil
}

func cacheFromMap(v *Values, section string, val any) error {
	m, ok := val.(map[string]any)
	if !ok {
		return &TypeError{Field: section, Value: fmt.Sprint(val), Err: fmt.Errorf("expected a mapping")}
	}
	for key, sub := range m {
		switch key {
		case "enabled":
			b, err := anyBool(section+".enabled", sub)
			if err != nil {
				return err
			}
			v.CacheEnabled = &b
		case "dir":
			s, err := anyString(section+".dir", sub)
			if err != nil {
				return err
			}
			v.CacheDir = &s
		case "ttl_seconds":
			n, err := anyInt(section+".ttl_seconds", sub)
			if err != nil {
				return err
			}
			v.CacheTTL = &n
		}
	}
	return nil
}

func rateFromMap(v *Values, section string, val any) error {
	m, ok := val.(map[string]any)
	if !ok {
		return &TypeError{Field: section, Value: fmt.Sprint(val), Err: fmt.Errorf("expected a mapping")}
	}
	for key, sub := range m {
		switch key {
		case "rps":
			f, err := anyFloat(section+".rps", sub)
			if err != nil {
				return err
			}
			v.RateRPS = &f
		case "burst":
			n, err := anyInt(section+".burst", sub)
			if err != nil {
				return err
			}
			v.RateBurst = &n
		}
	}
	return nil
}

// EnvValues reads QUILL_* environment variables into a partial record
// using the injected lookup, so resolution stays a pure function of its
// inputs and tests never touch the real process environment.
func EnvValues(lookup func(string) (string, bool)) (Values, error) {
	var v Values
	if s, ok := lookup("QUILL_AI_PROVIDER"); ok {
		v.Provider = &s
	}
	if s, ok := lookup("QUILL_MODEL"); ok {
		v.Model = &s
	}
	if s, ok := lookup("QUILL_LIGHT_MODEL"); ok {
		b, err := coerceBool("light_model", s)
		if err != nil {
			return Values{}, err
		}
		v.LightModel = &b
	}
	if s, ok := lookup("QUILL_AI_BASE_URL"); ok {
		v.BaseURL = &s
	}
	if s, ok := lookup("QUILL_TEMPERATURE"); ok {
		f, err := coerceFloat("temperature", s)
		if err != nil {
			return Values{}, err
		}
		v.Temperature = &f
	}
	if s, ok := lookup("QUILL_MAX_TOKENS"); ok {
		n, err := coerceInt("max_tokens", s)
		if err != nil {
			return Values{}, err
		}
		v.MaxTokens = &n
	}
	if s, ok := lookup("QUILL_SYSTEM_PROMPT"); ok {
		v.SystemPrompt = &s
	}
	if s, ok := lookup("QUILL_FORMAT"); ok {
		v.Format = &s
	}
	if s, ok := lookup("QUILL_DEBUG"); ok {
		b, err := coerceBool("debug", s)
		if err != nil {
			return Values{}, err
		}
		v.Debug = &b
	}
	if s, ok := lookup("QUILL_REDACT_SECRETS"); ok {
		b, err := coerceBool("redact_secrets", s)
		if err != nil {
			return Values{}, err
		}
		v.RedactSecrets = &b
	}
	return v, nil
}

// String coercers for env and CLI channels, where everything arrives as
// a string.

func coerceBool(field, s string) (bool, error) {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, &TypeError{Field: field, Value: s, Err: err}
	}
	return b, nil
}

func coerceFloat(field, s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &TypeError{Field: field, Value: s, Err: err}
	}
	return f, nil
}

func coerceInt(field, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &TypeError{Field: field, Value: s, Err: err}
	}
	return n, nil
}

// Coercers for YAML values, which arrive already typed by the decoder.
// Scalars that decoded as strings are re-coerced so that quoted numbers
// still load, while a string that is not a number fails with the field
// name attached.

func anyString(field string, val any) (string, error) {
	switch t := val.(type) {
	case string:
		return t, nil
	case nil:
		return "", nil
	default:
		return "", &TypeError{Field: field, Value: fmt.Sprint(val), Err: fmt.Errorf("expected a string")}
	}
}

func anyBool(field string, val any) (bool, error) {
	switch t := val.(type) {
	case bool:
		return t, nil
	case string:
		return coerceBool(field, t)
	default:
		return false, &TypeError{Field: field, Value: fmt.Sprint(val), Err: fmt.Errorf("expected a boolean")}
	}
}

func anyFloat(field string, val any) (float64, error) {
	switch t := val.(type) {
	case float64:
		return t, nil
	case int:
		return float64(t), nil
	case string:
		return coerceFloat(field, t)
	default:
		return 0, &TypeError{Field: field, Value: fmt.Sprint(val), Err: fmt.Errorf("expected a number")}
	}
}

func anyInt(field string, val any) (int, error) {
	switch t := val.(type) {
	case int:
		return t, nil
	case string:
		return coerceInt(field, t)
	default:
		return 0, &TypeError{Field: field, Value: fmt.Sprint(val), Err: fmt.Errorf("expected an integer")}
	}
}
