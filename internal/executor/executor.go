// Package executor runs plans step by step: it gates each action behind
// user confirmation, dispatches approved actions to their effects, records
// every outcome in the shared history, and recovers from failures by asking
// the planner for a replacement plan.
package executor

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/amoilanen/cliff/internal/action"
	"github.com/amoilanen/cliff/internal/display"
	"github.com/amoilanen/cliff/internal/logs"
)

// Planner produces plans and single actions from the LLM. The executor
// calls back into it for sub-plans, delegated file edits, and recovery
// after a failed step.
type Planner interface {
	Plan(ctx context.Context, instruction string, contextSources []string, hist *action.History) (*action.Plan, error)
	SingleAction(ctx context.Context, instruction string, hist *action.History) (*action.Action, error)
	AskWithHistory(ctx context.Context, question string, hist *action.History) (string, error)
}

// Config carries the collaborators a Runner needs. Zero values get
// sensible defaults: stdin for input, a stdout/stderr display, a plain
// HTTP client, and no transcript.
type Config struct {
	Planner    Planner
	Display    *display.Display
	Input      io.Reader
	HTTPClient *http.Client
	Transcript *logs.Transcript
}

// Runner executes plans. One Runner handles a whole run, including any
// sub-plans and recovery plans it spawns; they all share the Runner's
// history, confirmation state, and input stream.
type Runner struct {
	planner    Planner
	display    *display.Display
	gate       *Gate
	stdin      *bufio.Reader
	http       *http.Client
	transcript *logs.Transcript
}

func New(cfg Config) *Runner {
	d := cfg.Display
	if d == nil {
		d = display.New()
	}
	in := cfg.Input
	if in == nil {
		in = os.Stdin
	}
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{}
	}
	reader := bufio.NewReader(in)
	return &Runner{
		planner:    cfg.Planner,
		display:    d,
		gate:       NewGate(reader, d.Out()),
		stdin:      reader,
		http:       client,
		transcript: cfg.Transcript,
	}
}

// ExecutePlan runs every step of the plan in order, appending each outcome
// to hist. It returns the final auto-confirm state so a caller that nested
// this execution keeps any "all" promotion the user made inside it.
//
// A failed step does not abort the run: the failure is recorded, the
// remaining steps are discarded, and the planner is asked for a new plan
// toward the original objective, which is then executed in place of the
// rest. Only an unreachable planner ends the run with an error.
func (r *Runner) ExecutePlan(ctx context.Context, plan *action.Plan, hist *action.History, autoConfirm bool) (bool, error) {
	r.display.ExecutingPlan()
	if len(plan.Steps) == 0 {
		r.display.NoActionsToExecute()
		return autoConfirm, nil
	}
	for i := range plan.Steps {
		a := &plan.Steps[i]
		r.display.Step(i+1, len(plan.Steps), a)

		var approved bool
		var err error
		autoConfirm, approved, err = r.gate.Confirm(autoConfirm)
		if err != nil {
			return autoConfirm, err
		}
		if !approved {
			r.display.SkippingStep(i + 1)
			r.transcript.Skip(a)
			continue
		}

		output, newAuto, err := r.dispatch(ctx, a, hist, autoConfirm)
		autoConfirm = newAuto
		if err != nil {
			r.display.ActionFailed(a, err)
			errOutput := "ERROR: " + err.Error()
			hist.Append(*a, &errOutput)
			r.transcript.Error(a, err)

			instruction := fmt.Sprintf("Action %s failed with error: %s. The history of previous actions is provided. Generate a new plan to achieve the original objective, taking this failure into account.", a, err)
			r.display.RecoveryRequested()
			newPlan, planErr := r.planner.Plan(ctx, instruction, nil, hist)
			if planErr != nil {
				r.display.RecoveryFailed(planErr)
				return autoConfirm, fmt.Errorf("failed to get recovery plan from LLM after action failure: %w", planErr)
			}
			r.display.RecoveryReceived()
			r.display.ShowPlan(newPlan)
			r.transcript.Recovery(instruction)
			return r.ExecutePlan(ctx, newPlan, hist, autoConfirm)
		}

		hist.Append(*a, output)
		r.transcript.Record(a, output)
	}
	r.display.PlanFinished()
	return autoConfirm, nil
}
