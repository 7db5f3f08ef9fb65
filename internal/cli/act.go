package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/amoilanen/cliff/internal/action"
	"github.com/amoilanen/cliff/internal/config"
	"github.com/amoilanen/cliff/internal/display"
	"github.com/amoilanen/cliff/internal/executor"
	"github.com/amoilanen/cliff/internal/logs"
	"github.com/spf13/cobra"
)

var actAutoConfirm bool

var actCmd = &cobra.Command{
	Use:   "act <instruction>",
	Short: "Plan the instruction with the LLM and execute it step by step",
	Long: `Ask the LLM for a step-by-step plan toward the instruction, show it,
and execute it action by action. Each step asks for confirmation; answer
"all" to approve the rest of the run. When a step fails, the failure is fed
back to the LLM and a replacement plan takes over.

Examples:
  cliff act "Rename every .txt file under ./notes to .md"
  cliff act --auto-confirm "Create a Makefile with build and test targets"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		instruction := strings.Join(args, " ")

		d := display.New()
		client, err := newPlanner(d)
		if err != nil {
			return err
		}

		// Ctrl-C aborts the step in flight instead of killing the process
		// mid-write.
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(sigChan)
		go func() {
			<-sigChan
			cancel()
		}()

		hist := &action.History{}
		plan, err := client.Plan(ctx, instruction, contextSources, hist)
		if err != nil {
			return fmt.Errorf("failed to get plan from LLM: %w", err)
		}
		d.ShowPlan(plan)

		var transcript *logs.Transcript
		if dir, err := config.LogsDir(); err == nil {
			transcript = logs.Start(dir, instruction)
		}
		defer transcript.Close()

		runner := executor.New(executor.Config{
			Planner:    client,
			Display:    d,
			Transcript: transcript,
		})
		_, err = runner.ExecutePlan(ctx, plan, hist, actAutoConfirm)
		return err
	},
}

func init() {
	actCmd.Flags().BoolVar(&actAutoConfirm, "auto-confirm", false, "execute every step without asking")
	rootCmd.AddCommand(actCmd)
}
