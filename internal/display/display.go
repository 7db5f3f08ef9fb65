// Package display renders proposed plans, step banners, and status
// messages for the cliff CLI.
package display

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/amoilanen/cliff/internal/action"
)

// snippetLen caps file content previews in plan listings.
const snippetLen = 50

// Display handles all CLI output for plans and execution progress.
type Display struct {
	theme     *Theme
	out       io.Writer
	errOut    io.Writer
	termWidth int
}

// New creates a Display writing to stdout and stderr.
func New() *Display {
	return NewWithWriters(os.Stdout, os.Stderr, color.NoColor)
}

// NewWithWriters creates a Display writing to the given writers.
func NewWithWriters(out, errOut io.Writer, noColor bool) *Display {
	d := &Display{
		out:       out,
		errOut:    errOut,
		termWidth: getTerminalWidth(),
	}
	if noColor {
		d.theme = NoColorTheme()
	} else {
		d.theme = DefaultTheme()
	}
	return d
}

// getTerminalWidth returns the terminal width, defaulting to 80
func getTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width < 40 {
		return 80
	}
	if width > 120 {
		return 120 // Cap at 120 for readability
	}
	return width
}

// Theme returns the current theme for external use
func (d *Display) Theme() *Theme {
	return d.theme
}

// Out returns the writer standard output lines go to
func (d *Display) Out() io.Writer {
	return d.out
}

// ShowPlan prints the plan thought and its numbered steps. Step numbers
// come from each action's own action_idx, not from slice positions.
func (d *Display) ShowPlan(p *action.Plan) {
	fmt.Fprintln(d.out, "\n--- Proposed Plan ---")
	if p.Thought != nil {
		fmt.Fprintf(d.out, "Thought: %s\n", *p.Thought)
	}
	if len(p.Steps) == 0 {
		fmt.Fprintln(d.out, "No actions planned.")
		return
	}
	for i := range p.Steps {
		d.showStep(&p.Steps[i])
	}
	fmt.Fprintln(d.out, "--------------------")
}

func (d *Display) showStep(a *action.Action) {
	switch a.Type {
	case action.TypeCreateFile:
		fmt.Fprintf(d.out, "%d. Create file '%s' with content:\n%s\n", a.Idx, a.Path, a.Content)
	case action.TypeRunCommand:
		fmt.Fprintf(d.out, "%d. Run command: `%s`\n", a.Idx, a.Command)
	case action.TypeSearchWeb:
		fmt.Fprintf(d.out, "%d. Search web for: '%s'\n", a.Idx, a.Query)
	case action.TypeAskUser:
		fmt.Fprintf(d.out, "%d. Ask user: '%s'\n", a.Idx, a.Question)
	case action.TypeAskLLMToReplaceFileLines:
		fmt.Fprintf(d.out, "%d. Ask LLM to generate ReplaceFileLines action for path: '%s'\n", a.Idx, a.Path)
	case action.TypeDeleteFile:
		fmt.Fprintf(d.out, "%d. Delete file: '%s'\n", a.Idx, a.Path)
	case action.TypeOverwriteFileContents:
		fmt.Fprintf(d.out, "%d. Edit file '%s' with content:\n%s\n", a.Idx, a.Path, a.Content)
	case action.TypeAskLLM:
		fmt.Fprintf(d.out, "%d. Ask LLM with prompt: '%s'\n", a.Idx, a.Prompt)
	case action.TypeAskLLMForPlan:
		fmt.Fprintf(d.out, "%d. Ask LLM for sub-plan:\n  Instruction: %s\n  Context Sources: %q\n", a.Idx, a.Instruction, a.ContextSources)
	case action.TypeAskLLMToCreateFile:
		fmt.Fprintf(d.out, "%d. Ask LLM to generate CreateFile action for path: '%s'\n", a.Idx, a.Path)
	case action.TypeReadFile:
		fmt.Fprintf(d.out, "%d. Read file: '%s'\n", a.Idx, a.Path)
	case action.TypeFindFiles:
		fmt.Fprintf(d.out, "%d. Find files matching pattern: '%s'\n", a.Idx, a.Pattern)
	case action.TypeReadWebPage:
		fmt.Fprintf(d.out, "%d. Read web page: '%s'\n", a.Idx, a.URL)
	case action.TypeReplaceFileLines:
		fmt.Fprintf(d.out, "%d. Replace lines %d to %d in file '%s' with content: '%s'\n",
			a.Idx, lineNum(a.FromLineIdx), lineNum(a.UntilLineIdx), a.Path, snippet(a.ReplacementLines))
	case action.TypeAskLLMToOverwriteFileContents:
		fmt.Fprintf(d.out, "%d. Ask LLM to generate OverwriteFileContents action for path: '%s'\n", a.Idx, a.Path)
	case action.TypeAppendToFile:
		fmt.Fprintf(d.out, "%d. Append to file '%s' with content: '%s'\n", a.Idx, a.Path, snippet(a.Content))
	case action.TypeMoveFile:
		fmt.Fprintf(d.out, "%d. Move file from '%s' to '%s'\n", a.Idx, a.Source, a.Destination)
	case action.TypeCopyFile:
		fmt.Fprintf(d.out, "%d. Copy file from '%s' to '%s'\n", a.Idx, a.Source, a.Destination)
	case action.TypeListDirectory:
		fmt.Fprintf(d.out, "%d. List directory '%s'\n", a.Idx, a.Path)
	case action.TypeCheckPathExists:
		fmt.Fprintf(d.out, "%d. Check if path exists '%s'\n", a.Idx, a.Path)
	default:
		fmt.Fprintf(d.out, "%d. %s\n", a.Idx, a)
	}
}

// ExecutingPlan prints the plan execution header.
func (d *Display) ExecutingPlan() {
	fmt.Fprintln(d.out, "\n--- Executing Plan ---")
}

// NoActionsToExecute prints the empty-plan notice.
func (d *Display) NoActionsToExecute() {
	fmt.Fprintln(d.out, "No actions to execute.")
}

// Step prints the banner for step number i of total.
func (d *Display) Step(i, total int, a *action.Action) {
	fmt.Fprintf(d.out, "\n--- Step %d/%d: %s ---\n", i, total, a)
}

// SkippingStep prints the notice for a declined step.
func (d *Display) SkippingStep(i int) {
	fmt.Fprintf(d.out, "Skipping step %d.\n", i)
}

// PlanFinished prints the plan completion footer.
func (d *Display) PlanFinished() {
	fmt.Fprintln(d.out, "\n--- Plan Execution Finished ---")
}

// SubPlanStart prints the sub-plan execution header.
func (d *Display) SubPlanStart() {
	fmt.Fprintln(d.out, "--- Starting Sub-Plan Execution ---")
}

// SubPlanFinished prints the sub-plan completion footer.
func (d *Display) SubPlanFinished() {
	fmt.Fprintln(d.out, "--- Sub-Plan Execution Finished ---")
}

// ActionFailed reports a failed action on the error stream.
func (d *Display) ActionFailed(a *action.Action, err error) {
	fmt.Fprintln(d.errOut, d.theme.Error(fmt.Sprintf("Action %s failed: %v", a, err)))
}

// RecoveryRequested prints the notice that a new plan is being requested.
func (d *Display) RecoveryRequested() {
	fmt.Fprintln(d.out, "Asking LLM for a new plan due to error...")
}

// RecoveryReceived prints the notice that a new plan arrived.
func (d *Display) RecoveryReceived() {
	fmt.Fprintln(d.out, "Received new plan from LLM.")
}

// RecoveryFailed reports a failed recovery planning call on the error stream.
func (d *Display) RecoveryFailed(err error) {
	fmt.Fprintln(d.errOut, d.theme.Error(fmt.Sprintf("Failed to get a new plan from LLM: %v", err)))
}

// Response prints an LLM response in the response color.
func (d *Display) Response(text string) {
	fmt.Fprintln(d.out, d.theme.Response(text))
}

// Warningf prints a warning message.
func (d *Display) Warningf(format string, args ...interface{}) {
	fmt.Fprintln(d.out, d.theme.Warning(fmt.Sprintf(format, args...)))
}

// Errorf prints an error message on the error stream.
func (d *Display) Errorf(format string, args ...interface{}) {
	fmt.Fprintln(d.errOut, d.theme.Error(fmt.Sprintf(format, args...)))
}

// Separator prints a dim horizontal rule across the terminal width.
func (d *Display) Separator() {
	fmt.Fprintln(d.out, d.theme.Dim(strings.Repeat("─", d.termWidth)))
}

// snippet shortens file content previews, keeping the first snippetLen
// characters and marking the cut with an ellipsis.
func snippet(s string) string {
	runes := []rune(s)
	if len(runes) <= snippetLen {
		return s
	}
	return string(runes[:snippetLen]) + "..."
}

func lineNum(p *uint) uint {
	if p == nil {
		return 0
	}
	return *p
}
