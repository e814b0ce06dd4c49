// Package cache provides a file-based cache for AI responses.
//
// Entries are keyed by a SHA-256 hash over provider, model, system
// prompt, and prompt, so repeating the same question to the same model
// answers from disk instead of re-billing the provider. Entries expire
// after a configurable TTL.
package cache
