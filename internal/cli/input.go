package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// readPrompt reads the prompt from the first available source: the
// --prompt flag, the --input-file flag, then stdin.
func readPrompt(prompt, inputFile string, stdin io.Reader) (string, error) {
	if prompt != "" {
		return prompt, nil
	}
	if inputFile != "" {
		data, err := os.ReadFile(inputFile)
		if err != nil {
			return "", fmt.Errorf("reading input file: %w", err)
		}
		return strings.TrimSpace(string(data)), nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	content := strings.TrimSpace(string(data))
	if content == "" {
		return "", errors.New("no prompt provided: use --prompt, --input-file, or pipe to stdin")
	}
	return content, nil
}
