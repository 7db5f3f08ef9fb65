// Package logs writes per-run markdown transcripts of executed plans.
package logs

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/amoilanen/cliff/internal/action"
)

// Transcript records the steps of one act run as they happen. A nil
// *Transcript is valid and records nothing; transcript trouble must never
// interrupt a run, so creation failures just disable recording.
type Transcript struct {
	file *os.File
}

// Start opens a transcript for an instruction under dir. The filename
// carries the start time and a short random id so concurrent runs never
// collide. Returns nil when the transcript cannot be created.
func Start(dir, instruction string) *Transcript {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil
	}
	now := time.Now()
	shortID := uuid.NewString()[:8]
	name := fmt.Sprintf("%s-%s-%s.md", now.Format("2006-01-02"), now.Format("15-04-05"), shortID)
	file, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return nil
	}
	fmt.Fprintf(file, "# Run %s\n\nInstruction: %s\n\n---\n\n", now.Format("2006-01-02 15:04:05"), instruction)
	return &Transcript{file: file}
}

// Record logs one executed step and its output, if any.
func (t *Transcript) Record(a *action.Action, output *string) {
	if t == nil {
		return
	}
	if output != nil {
		fmt.Fprintf(t.file, "- %s\n  output: %s\n", a, *output)
	} else {
		fmt.Fprintf(t.file, "- %s\n", a)
	}
}

// Skip logs a step the user declined.
func (t *Transcript) Skip(a *action.Action) {
	if t == nil {
		return
	}
	fmt.Fprintf(t.file, "- SKIPPED %s\n", a)
}

// Error logs a failed step.
func (t *Transcript) Error(a *action.Action, err error) {
	if t == nil {
		return
	}
	fmt.Fprintf(t.file, "- ERROR %s: %v\n", a, err)
}

// Recovery marks the point where a recovery plan replaced the remaining
// steps of the current plan.
func (t *Transcript) Recovery(instruction string) {
	if t == nil {
		return
	}
	fmt.Fprintf(t.file, "\n## Recovery\n\n%s\n\n---\n\n", instruction)
}

// Close closes the transcript file.
func (t *Transcript) Close() {
	if t == nil {
		return
	}
	t.file.Close()
}
