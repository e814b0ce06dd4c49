// Package ai wraps the multi-provider client library
// github.com/recera/gai behind a small surface sized for a CLI.
//
// The library owns all provider protocol handling, streaming assembly,
// and retry/backoff; this package only selects a provider and model
// from the resolved config, validates that the required API key is
// present, applies the library's retry and rate-limit middleware, and
// adds response caching and prompt redaction on top.
//
// Use [New] to build a [Client], then [Client.Generate] for blocking
// requests or [Client.Stream] for incremental output. The task helpers
// (Summarize, Translate, AnalyzeCode) are the template's example
// prompts, meant to be replaced in derived projects.
package ai
