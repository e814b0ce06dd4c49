// Quill is a starter template for AI-powered CLI applications.
//
// It wires a layered configuration resolver, multi-provider AI access,
// response caching, secret redaction, and formatted output behind a
// small set of example commands meant to be replaced with your own.
//
// Usage:
//
//	quill ask -p "Explain goroutines"   # one-shot prompt
//	quill chat                          # interactive session
//	quill summarize notes.txt           # example task command
//	quill config init                   # write a starter config file
//	quill models doctor                 # validate provider credentials
//
// Configuration resolves with CLI flags winning over the project-local
// .quill.yaml, the global config file, QUILL_* environment variables,
// and built-in defaults, in that order.
package main
