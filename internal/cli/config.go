package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/probello/quill/internal/config"
)

var flagConfigLocal bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage quill configuration",
}

// targetConfigPath picks the file the config subcommands operate on:
// the project-local file with --local, the global file otherwise.
func targetConfigPath() (string, error) {
	if flagConfigLocal {
		return config.LocalFileName, nil
	}
	return config.GlobalPath()
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a commented starter configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := targetConfigPath()
		if err != nil {
			return err
		}
		if err := config.Init(path); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}
		fmt.Fprintf(os.Stdout, "Config file created at %s\n", path)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Example: `  quill config set ai_provider anthropic
  quill config set temperature 0.7
  quill config set cache.ttl_seconds 3600
  quill config set --local model gpt-4.1-mini`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := targetConfigPath()
		if err != nil {
			return err
		}

		// Start from whatever the file already holds, defaults for the rest.
		vals, err := config.FileValues(path)
		if err != nil {
			return err
		}
		cfg := config.Resolve(config.Source{Name: "file", Values: vals})

		if err := config.SetField(&cfg, args[0], args[1]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitUsageError
			return nil
		}

		if err := config.Save(cfg, path); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}

		fmt.Fprintf(os.Stdout, "Set %s = %s in %s\n", args[0], args[1], path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Long: "Show the fully-resolved configuration after applying all sources:\n" +
		"CLI flags, the local file, the global file, environment variables,\n" +
		"and built-in defaults.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return err
		}
		fmt.Fprint(os.Stdout, string(data))
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print config file locations",
	RunE: func(cmd *cobra.Command, args []string) error {
		global, err := config.GlobalPath()
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "global: %s\n", global)
		fmt.Fprintf(os.Stdout, "local:  %s (looked up in the working directory)\n", config.LocalFileName)
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&flagConfigLocal, "local", false, "Operate on the project-local "+config.LocalFileName)
	configSetCmd.Flags().BoolVar(&flagConfigLocal, "local", false, "Operate on the project-local "+config.LocalFileName)
	addAIFlags(configShowCmd)

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
}
