// Package cli wires together the Cobra command tree for the quill
// binary.
//
// It defines the root command and all subcommands (ask, chat, config,
// models, cache, summarize, translate, analyze, version), binds flags,
// resolves configuration, invokes the AI client, and returns
// deterministic exit codes.
package cli
