// Package action defines the typed protocol between the planner and the
// executor: the closed set of actions, plans, and the execution history that
// accumulates as a plan runs.
package action

import (
	"fmt"
	"strings"
)

// Action is one typed unit of work. The Type field selects the variant;
// only the fields belonging to that variant are meaningful (and only those
// are serialized). Idx is an advisory label assigned by the planner, never
// an array index.
type Action struct {
	Type             Type     `json:"action"`
	Idx              uint     `json:"action_idx"`
	Path             string   `json:"path,omitempty"`
	Content          string   `json:"content,omitempty"`
	Query            string   `json:"query,omitempty"`
	URL              string   `json:"url,omitempty"`
	Command          string   `json:"command,omitempty"`
	Question         string   `json:"question,omitempty"`
	Prompt           string   `json:"prompt,omitempty"`
	Instruction      string   `json:"instruction,omitempty"`
	ContextSources   []string `json:"context_sources,omitempty"`
	Pattern          string   `json:"pattern,omitempty"`
	FromLineIdx      *uint    `json:"from_line_idx,omitempty"`
	UntilLineIdx     *uint    `json:"until_line_idx,omitempty"`
	ReplacementLines string   `json:"replacement_lines,omitempty"`
	Source           string   `json:"source,omitempty"`
	Destination      string   `json:"destination,omitempty"`
}

// String renders the action with its variant name and fields, for step
// banners, history context sent to the planner, and error messages.
func (a Action) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s{action_idx: %d", a.Type.Name(), a.Idx)
	switch a.Type {
	case TypeCreateFile, TypeOverwriteFileContents, TypeAppendToFile:
		fmt.Fprintf(&b, ", path: %q, content: %q", a.Path, a.Content)
	case TypeAskLLMToCreateFile, TypeAskLLMToOverwriteFileContents, TypeAskLLMToReplaceFileLines,
		TypeDeleteFile, TypeReadFile, TypeListDirectory, TypeCheckPathExists:
		fmt.Fprintf(&b, ", path: %q", a.Path)
	case TypeSearchWeb:
		fmt.Fprintf(&b, ", query: %q", a.Query)
	case TypeReadWebPage:
		fmt.Fprintf(&b, ", url: %q", a.URL)
	case TypeRunCommand:
		fmt.Fprintf(&b, ", command: %q", a.Command)
	case TypeAskUser:
		fmt.Fprintf(&b, ", question: %q", a.Question)
	case TypeAskLLM:
		fmt.Fprintf(&b, ", prompt: %q", a.Prompt)
	case TypeAskLLMForPlan:
		fmt.Fprintf(&b, ", instruction: %q, context_sources: %q", a.Instruction, a.ContextSources)
	case TypeReplaceFileLines:
		fmt.Fprintf(&b, ", path: %q, from_line_idx: %s, until_line_idx: %s, replacement_lines: %q",
			a.Path, lineIdx(a.FromLineIdx), lineIdx(a.UntilLineIdx), a.ReplacementLines)
	case TypeFindFiles:
		fmt.Fprintf(&b, ", pattern: %q", a.Pattern)
	case TypeMoveFile, TypeCopyFile:
		fmt.Fprintf(&b, ", source: %q, destination: %q", a.Source, a.Destination)
	}
	b.WriteString("}")
	return b.String()
}

func lineIdx(v *uint) string {
	if v == nil {
		return "?"
	}
	return fmt.Sprintf("%d", *v)
}
