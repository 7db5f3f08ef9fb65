package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/amoilanen/cliff/internal/display"
	"github.com/spf13/cobra"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Interactive question session carrying conversation history",
	Long: `Start an interactive session with the configured LLM. Every question
carries the conversation so far, so follow-ups work. Type "exit" to end.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d := display.New()
		client, err := newPlanner(d)
		if err != nil {
			return err
		}

		in := bufio.NewReader(os.Stdin)
		var history []string

		fmt.Fprintln(d.Out(), "Ask your questions (or type 'exit' to end):")
		for {
			fmt.Fprint(d.Out(), "> ")
			line, err := in.ReadString('\n')
			if err != nil && !errors.Is(err, io.EOF) {
				return fmt.Errorf("failed to read question: %w", err)
			}
			question := strings.TrimSpace(line)
			if question == "exit" || (errors.Is(err, io.EOF) && question == "") {
				fmt.Fprintln(d.Out(), "Ending session.")
				return nil
			}
			if question == "" {
				continue
			}

			prompt := question
			if len(history) > 0 {
				prompt = fmt.Sprintf("%s\nConversation History:\n%s", question, strings.Join(history, "\n"))
			}
			answer, err := client.Ask(context.Background(), prompt, contextSources)
			if err != nil {
				d.Errorf("Error: %v", err)
				continue
			}
			d.Response(answer)
			fmt.Fprintln(d.Out())

			history = append(history, fmt.Sprintf("User: %s\nLLM: %s", question, answer))
			d.Separator()
		}
	},
}

func init() {
	rootCmd.AddCommand(sessionCmd)
}
