package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/probello/quill/internal/ai"
	"github.com/probello/quill/internal/config"
	"github.com/probello/quill/internal/logging"
	"github.com/probello/quill/internal/output"
)

var (
	flagPrompt    string
	flagInputFile string
	flagStream    bool
	flagOut       string
)

var askCmd = &cobra.Command{
	Use:   "ask",
	Short: "Send a prompt to the AI and print the response",
	Long: "Send a prompt to the configured AI provider and print the response.\n\n" +
		"The prompt comes from --prompt, --input-file, or stdin, in that order.",
	Example: `  quill ask -p "Hello, world!"
  quill ask -i prompt.txt
  echo "Hello!" | quill ask
  quill ask -p "Explain AI" -s "You are a teacher"
  quill ask -p "Write a story" --stream`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		runAsk(cfg)
		return nil
	},
}

func runAsk(cfg config.Config) {
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
		return
	}

	prompt, err := readPrompt(flagPrompt, flagInputFile, os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitUsageError
		return
	}

	ctx := context.Background()

	if flagStream {
		if err := client.Stream(ctx, cfg.SystemPrompt, prompt, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "\nError: %v\n", err)
			exitCode = ExitRuntimeError
			return
		}
		fmt.Fprintln(os.Stdout)
		return
	}

	res, err := client.Generate(ctx, cfg.SystemPrompt, prompt)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitRuntimeError
		return
	}

	writeResult(cfg, client.Model(), res, flagOut)
}

func writeResult(cfg config.Config, model string, res ai.Result, outPath string) {
	resp := &output.Response{
		Text:         res.Text,
		Provider:     cfg.Provider,
		Model:        model,
		InputTokens:  res.InputTokens,
		OutputTokens: res.OutputTokens,
		ElapsedMs:    res.ElapsedMs,
		Cached:       res.Cached,
	}
	if err := output.WriteResponse(resp, cfg.Format, outPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		exitCode = ExitRuntimeError
	}
}

func init() {
	addAIFlags(askCmd)
	askCmd.Flags().StringVarP(&flagPrompt, "prompt", "p", "", "Prompt to send (use quotes for multi-word prompts)")
	askCmd.Flags().StringVarP(&flagInputFile, "input-file", "i", "", "Read prompt from file")
	askCmd.Flags().BoolVar(&flagStream, "stream", false, "Stream the response in real time")
	askCmd.Flags().StringVar(&flagOut, "out", "", "Output file path (default: stdout)")
}
