package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/probello/quill/internal/ai"
	"github.com/probello/quill/internal/logging"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive chat session",
	Long: "Start an interactive chat session with the configured AI provider.\n" +
		"Type 'quit', 'exit', or 'q' to end the session.",
	Example: `  quill chat
  quill chat -s "You are a coding assistant"
  quill chat -m claude-sonnet-4-6`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		log := logging.New(cfg.Debug)
		defer log.Sync()

		client, err := ai.New(cfg, log)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			if ai.IsCredentialError(err) {
				exitCode = ExitAuthError
			} else {
				exitCode = ExitRuntimeError
			}
			return nil
		}

		fmt.Fprintf(os.Stderr, "Chatting with %s/%s. Type 'quit' or 'exit' to end the session.\n\n",
			cfg.Provider, client.Model())

		ctx := context.Background()
		scanner := bufio.NewScanner(os.Stdin)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

		for {
			fmt.Fprint(os.Stderr, "You: ")
			if !scanner.Scan() {
				fmt.Fprintln(os.Stderr, "\nGoodbye!")
				return nil
			}
			input := strings.TrimSpace(scanner.Text())
			switch strings.ToLower(input) {
			case "quit", "exit", "q":
				fmt.Fprintln(os.Stderr, "Goodbye!")
				return nil
			case "":
				continue
			}

			fmt.Fprint(os.Stderr, "AI: ")
			if err := client.Stream(ctx, cfg.SystemPrompt, input, os.Stdout); err != nil {
				fmt.Fprintf(os.Stderr, "\nError: %v\n", err)
				exitCode = ExitRuntimeError
				return nil
			}
			fmt.Fprintln(os.Stdout)
			fmt.Fprintln(os.Stdout)
		}
	},
}

func init() {
	addAIFlags(chatCmd)
}
