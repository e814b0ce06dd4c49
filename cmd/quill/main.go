package main

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/probello/quill/internal/cli"
)

func main() {
	loadDotenv()
	os.Exit(cli.Run())
}

// loadDotenv loads API keys from a project-local .env, then from
// ~/.quill.env. Variables already set in the environment win; a missing
// file is not an error.
func loadDotenv() {
	_ = godotenv.Load()
	if home, err := os.UserHomeDir(); err == nil {
		_ = godotenv.Load(filepath.Join(home, ".quill.env"))
	}
}
