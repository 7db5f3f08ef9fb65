package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/amoilanen/cliff/internal/display"
	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask the configured LLM a one-shot question",
	Long: `Ask the configured LLM a one-shot question and print its answer.

Examples:
  cliff ask "What does EXDEV mean when renaming a file?"
  cliff ask -c notes.md,https://example.com/changelog "Summarize the open items"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d := display.New()
		client, err := newPlanner(d)
		if err != nil {
			return err
		}

		answer, err := client.Ask(context.Background(), strings.Join(args, " "), contextSources)
		if err != nil {
			return err
		}
		d.Response(answer)
		fmt.Fprintln(d.Out())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(askCmd)
}
