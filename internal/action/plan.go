package action

import (
	"encoding/json"
	"fmt"
)

// Plan is an ordered sequence of actions plus the planner's optional
// rationale. Step order is execution order. A plan is immutable once
// created; a recovery plan supersedes it rather than mutating it.
type Plan struct {
	Thought *string  `json:"thought"`
	Steps   []Action `json:"steps"`
}

// Record is one executed step and the output it produced, if any. Failed
// steps are recorded with an "ERROR: " prefixed output.
type Record struct {
	Action Action  `json:"action"`
	Output *string `json:"output"`
}

// History is the append-only log of everything a run has done. One History
// is shared by reference across nested sub-plan executions and recovery
// plans; it is the only memory the planner has of the run so far.
type History struct {
	Records []Record
}

// Append adds one record. Entries are never reordered or removed.
func (h *History) Append(a Action, output *string) {
	h.Records = append(h.Records, Record{Action: a, Output: output})
}

// Len returns the number of recorded steps.
func (h *History) Len() int {
	return len(h.Records)
}

// JSON renders the history for embedding in planner prompts.
func (h *History) JSON() string {
	if len(h.Records) == 0 {
		return "[]"
	}
	data, err := json.MarshalIndent(h.Records, "", "  ")
	if err != nil {
		return fmt.Sprintf("error serializing history: %v", err)
	}
	return string(data)
}
