// Package redact strips likely secrets from prompt text before it is
// sent to an AI provider.
//
// Detection is heuristic: regex patterns for common API key, token, and
// credential shapes. Redaction is applied to outbound prompts when the
// redact_secrets config setting is on (the default), so pasting a file
// that happens to contain a key does not ship it to a third party.
package redact
