// Package config loads and merges quill configuration from multiple sources.
//
// Precedence (highest to lowest):
//  1. CLI flags
//  2. Local config file (.quill.yaml in the working directory)
//  3. Global config file ($XDG_CONFIG_HOME/quill/config.yaml)
//  4. Environment variables (QUILL_AI_PROVIDER, QUILL_MODEL, etc.)
//  5. Built-in defaults
//
// Resolution is a single pure merge pass over partial [Values] records;
// the defaults are total, so every field of the resulting [Config] is
// always populated. An absent file or key is silently skipped; a file
// that is malformed, unreadable, or carries an uncoercible value fails
// loudly with [ParseError], [IOError], or [TypeError] respectively.
//
// Use [Load] to obtain a merged [Config], [Init] to write a commented
// example config file, and [SetField] to update a single key.
package config
