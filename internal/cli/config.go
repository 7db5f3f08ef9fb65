package cli

import (
	"fmt"

	"github.com/amoilanen/cliff/internal/config"
	"github.com/spf13/cobra"
)

var addModel config.Model

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configured LLM models",
}

var configAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Register an LLM model endpoint",
	Long: `Register an LLM model endpoint. The first model added becomes the default.

Examples:
  cliff config add --name gpt --provider openai --api-url https://api.openai.com/v1 --api-key sk-... --model-identifier gpt-4o
  cliff config add --name local --api-url http://localhost:8080/completion \
    --request-format '{"model": "{{model}}", "prompt": "{{prompt}}"}' \
    --response-json-path '$.content'`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		cfg.AddModel(addModel)
		if err := cfg.Save(); err != nil {
			return err
		}
		fmt.Printf("Model '%s' added.\n", addModel.Name)
		return nil
	},
}

var configSetDefaultCmd = &cobra.Command{
	Use:   "set-default <name>",
	Short: "Set the default model",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if err := cfg.SetDefault(args[0]); err != nil {
			return err
		}
		if err := cfg.Save(); err != nil {
			return err
		}
		fmt.Printf("Default model set to '%s'.\n", args[0])
		return nil
	},
}

var configSetCurrentCmd = &cobra.Command{
	Use:   "set-current <name>",
	Short: "Override the model used by upcoming commands",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if err := cfg.SetCurrent(args[0]); err != nil {
			return err
		}
		if err := cfg.Save(); err != nil {
			return err
		}
		fmt.Printf("Current model for this session set to '%s'.\n", args[0])
		return nil
	},
}

var configClearCurrentCmd = &cobra.Command{
	Use:   "clear-current",
	Short: "Clear the current model override",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		cfg.ClearCurrent()
		if err := cfg.Save(); err != nil {
			return err
		}
		fmt.Println("Current model selection cleared. Using default model.")
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured models",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if len(cfg.Models) == 0 {
			fmt.Println("No models configured.")
			return nil
		}
		fmt.Println("Configured Models:")
		for _, name := range cfg.ModelNames() {
			m := cfg.Models[name]
			defaultMarker := ""
			if name == cfg.DefaultModel {
				defaultMarker = " (default)"
			}
			currentMarker := ""
			if name == cfg.CurrentModel && cfg.CurrentModel != cfg.DefaultModel {
				currentMarker = " (current)"
			}
			key := "Not Set"
			if m.APIKey != "" {
				key = "Set"
			}
			identifier := m.ModelIdentifier
			if identifier == "" {
				identifier = "Not Set"
			}
			fmt.Printf("  - %s%s%s: URL=%s, Key=%s, Identifier=%s\n",
				name, defaultMarker, currentMarker, m.APIURL, key, identifier)
		}
		active := "None"
		if m := cfg.ActiveModel(); m != nil {
			active = m.Name
		}
		fmt.Printf("\nActive model for next command (unless overridden): %s\n", active)
		return nil
	},
}

var configDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a configured model",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if err := cfg.Delete(args[0]); err != nil {
			return err
		}
		if err := cfg.Save(); err != nil {
			return err
		}
		fmt.Printf("Model '%s' deleted.\n", args[0])
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.Path()
		if err != nil {
			return err
		}
		fmt.Printf("Config file path: %q\n", path)
		return nil
	},
}

func init() {
	configAddCmd.Flags().StringVar(&addModel.Name, "name", "", "model name")
	configAddCmd.Flags().StringVar(&addModel.APIURL, "api-url", "", "endpoint URL (base URL for the openai provider)")
	configAddCmd.Flags().StringVar(&addModel.APIKey, "api-key", "", "API key")
	configAddCmd.Flags().StringVar(&addModel.APIKeyHeader, "api-key-header", "", "custom auth header, e.g. 'x-api-key: {{api_key}}' (default is bearer auth)")
	configAddCmd.Flags().StringVar(&addModel.ModelIdentifier, "model-identifier", "", "model name sent to the API")
	configAddCmd.Flags().StringVar(&addModel.RequestFormat, "request-format", "", "request body template with {{prompt}} and {{model}} placeholders")
	configAddCmd.Flags().StringVar(&addModel.ResponseJSONPath, "response-json-path", "", "JSONPath of the answer in the response")
	configAddCmd.Flags().StringVar(&addModel.Provider, "provider", "", "provider backend: template (default) or openai")
	configAddCmd.MarkFlagRequired("name")
	configAddCmd.MarkFlagRequired("api-url")

	configCmd.AddCommand(configAddCmd)
	configCmd.AddCommand(configSetDefaultCmd)
	configCmd.AddCommand(configSetCurrentCmd)
	configCmd.AddCommand(configClearCurrentCmd)
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configDeleteCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}
