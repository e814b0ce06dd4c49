package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/probello/quill/internal/ai"
	"github.com/probello/quill/internal/logging"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "Provider and model management",
}

var modelsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List supported providers and their default models",
	Run: func(cmd *cobra.Command, args []string) {
		for _, p := range ai.Providers {
			fmt.Fprintf(os.Stdout, "%s:\n", p)
			fmt.Fprintf(os.Stdout, "  default: %s\n", ai.ModelName(p, "", false))
			fmt.Fprintf(os.Stdout, "  light:   %s\n", ai.ModelName(p, "", true))
			fmt.Fprintln(os.Stdout)
		}
	},
}

var modelsDoctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Validate provider credentials and connectivity",
	Long: "Check that the configured provider has credentials available and\n" +
		"answers a minimal request. Use --ai-provider to check a different\n" +
		"provider than the configured one.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		fmt.Fprintf(os.Stdout, "Checking %s...\n", cfg.Provider)

		log := logging.New(cfg.Debug)
		defer log.Sync()

		// Keep the probe cheap and uncached.
		cfg.MaxTokens = 10
		cfg.Cache.Enabled = false

		client, err := ai.New(cfg, log)
		if err != nil {
			fmt.Fprintf(os.Stderr, "FAIL: %v\n", err)
			if ai.IsCredentialError(err) {
				exitCode = ExitAuthError
			} else {
				exitCode = ExitRuntimeError
			}
			return nil
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if _, err := client.Generate(ctx, "Respond with exactly: ok", "ping"); err != nil {
			fmt.Fprintf(os.Stderr, "FAIL: %v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}

		fmt.Fprintf(os.Stdout, "OK: %s is configured and responding (model %s)\n", cfg.Provider, client.Model())
		return nil
	},
}

func init() {
	addAIFlags(modelsDoctorCmd)
	modelsCmd.AddCommand(modelsListCmd)
	modelsCmd.AddCommand(modelsDoctorCmd)
}
