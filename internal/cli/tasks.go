package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/probello/quill/internal/ai"
	"github.com/probello/quill/internal/config"
	"github.com/probello/quill/internal/logging"
)

// Example task commands built on the ai helpers. Replace these with
// your application's real commands when using quill as a template.

var flagTaskOut string

var summarizeCmd = &cobra.Command{
	Use:   "summarize <file>",
	Short: "Summarize a text file",
	Example: `  quill summarize notes.txt
  quill summarize report.md --out summary.md`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		runTask(cfg, func(ctx context.Context, client *ai.Client) (ai.Result, error) {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return ai.Result{}, fmt.Errorf("reading %s: %w", args[0], err)
			}
			return client.Summarize(ctx, string(data))
		})
		return nil
	},
}

var translateCmd = &cobra.Command{
	Use:   "translate <text> <language>",
	Short: "Translate text to another language",
	Example: `  quill translate "Hello, world!" French
  quill translate "Guten Morgen" English -o text`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		runTask(cfg, func(ctx context.Context, client *ai.Client) (ai.Result, error) {
			return client.Translate(ctx, args[0], args[1])
		})
		return nil
	},
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Analyze a source code file",
	Example: `  quill analyze main.go
  quill analyze script.py --out review.md`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		runTask(cfg, func(ctx context.Context, client *ai.Client) (ai.Result, error) {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return ai.Result{}, fmt.Errorf("reading %s: %w", args[0], err)
			}
			return client.AnalyzeCode(ctx, string(data))
		})
		return nil
	},
}

// runTask runs one generate-style task and writes the formatted result.
func runTask(cfg config.Config, task func(context.Context, *ai.Client) (ai.Result, error)) {
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

	res, err := task(context.Background(), client)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitRuntimeError
		return
	}

	writeResult(cfg, client.Model(), res, flagTaskOut)
}

func init() {
	for _, cmd := range []*cobra.Command{summarizeCmd, translateCmd, analyzeCmd} {
		addAIFlags(cmd)
		cmd.Flags().StringVar(&flagTaskOut, "out", "", "Output file path (default: stdout)")
	}
}
