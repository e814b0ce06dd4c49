package cli

import (
	"github.com/spf13/cobra"

	"github.com/probello/quill/internal/config"
)

// Shared AI flags
var (
	flagProvider     string
	flagModel        string
	flagLightModel   bool
	flagBaseURL      string
	flagTemperature  float64
	flagMaxTokens    int
	flagSystemPrompt string
	flagFormat       string
	flagDebug        bool
	flagNoCache      bool
)

func addAIFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&flagProvider, "ai-provider", "a", "", "AI provider (openai, anthropic, gemini, groq, ollama)")
	cmd.Flags().StringVarP(&flagModel, "model", "m", "", "Model name (overrides config)")
	cmd.Flags().BoolVarP(&flagLightModel, "light-model", "l", false, "Use the lighter/faster model variant")
	cmd.Flags().StringVarP(&flagBaseURL, "ai-base-url", "b", "", "Override the provider base URL")
	cmd.Flags().Float64VarP(&flagTemperature, "temperature", "t", 0, "Response creativity (0.0-2.0)")
	cmd.Flags().IntVar(&flagMaxTokens, "max-tokens", 0, "Maximum response tokens")
	cmd.Flags().StringVarP(&flagSystemPrompt, "system-prompt", "s", "", "System prompt to use")
	cmd.Flags().StringVarP(&flagFormat, "output", "o", "", "Output format (markdown, text, json)")
	cmd.Flags().BoolVar(&flagDebug, "debug", false, "Enable debug output")
	cmd.Flags().BoolVar(&flagNoCache, "no-cache", false, "Bypass the response cache")
}

// buildCLIValues converts explicitly-passed flags into a partial config
// record. Cobra's Changed check distinguishes an explicit zero (for
// example --temperature 0) from an unset flag, so only flags the user
// actually passed participate in resolution.
func buildCLIValues(cmd *cobra.Command) config.Values {
	var v config.Values
	f := cmd.Flags()
	if f.Changed("ai-provider") {
		v.Provider = &flagProvider
	}
	if f.Changed("model") {
		v.Model = &flagModel
	}
	if f.Changed("light-model") {
		v.LightModel = &flagLightModel
	}
	if f.Changed("ai-base-url") {
		v.BaseURL = &flagBaseURL
	}
	if f.Changed("temperature") {
		v.Temperature = &flagTemperature
	}
	if f.Changed("max-tokens") {
		v.MaxTokens = &flagMaxTokens
	}
	if f.Changed("system-prompt") {
		v.SystemPrompt = &flagSystemPrompt
	}
	if f.Changed("output") {
		v.Format = &flagFormat
	}
	if f.Changed("debug") {
		v.Debug = &flagDebug
	}
	if f.Changed("no-cache") && flagNoCache {
		disabled := false
		v.CacheEnabled = &disabled
	}
	return v
}

// loadConfig resolves the effective config for this invocation.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	return config.Load(config.LoadOptions{CLI: buildCLIValues(cmd)})
}
