package executor

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Gate asks the user to approve each step before it runs.
type Gate struct {
	in  *bufio.Reader
	out io.Writer
}

func NewGate(in *bufio.Reader, out io.Writer) *Gate {
	return &Gate{in: in, out: out}
}

// Confirm prompts for approval of the next step. It returns the possibly
// promoted auto-confirm state and whether the step was approved. Answering
// "all" approves the step and every later one in this run, including steps
// of recovery plans and sub-plans. Anything other than yes or all skips the
// step; end of input counts as a skip.
func (g *Gate) Confirm(autoConfirm bool) (bool, bool, error) {
	if autoConfirm {
		return true, true, nil
	}
	fmt.Fprint(g.out, "Execute this step? (y/N/all): ")
	line, err := g.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return autoConfirm, false, fmt.Errorf("failed to read confirmation: %w", err)
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return autoConfirm, true, nil
	case "a", "all":
		return true, true, nil
	default:
		return autoConfirm, false, nil
	}
}
