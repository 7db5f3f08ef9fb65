// Package cli wires the cliff commands: one-shot questions, plan-and-execute
// runs, an interactive session, and model configuration.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	version        = "0.1.0"
	modelFlag      string
	contextSources []string
)

var rootCmd = &cobra.Command{
	Use:   "cliff",
	Short: "CLIFF: Command Line Interface Friendly & Facilitator",
	Long: `CLIFF turns natural-language instructions into typed action plans and
executes them step by step against your machine, asking before each step.

Get started:
  cliff config add --name gpt --api-url https://api.openai.com/v1 --api-key sk-... --provider openai --model-identifier gpt-4o
  cliff ask "What does EXDEV mean when renaming a file?"
  cliff act "Collect all TODO comments under ./src into TODO.md"
  cliff session`,
	Version: version,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&modelFlag, "model", "m", "", "model to use for this invocation (overrides default/current)")
	rootCmd.PersistentFlags().StringSliceVarP(&contextSources, "context", "c", nil, "comma-delimited files or URLs to send as context")
	rootCmd.SetVersionTemplate(fmt.Sprintf("cliff version %s\n", version))
}
