package action

import (
	"encoding/json"
	"fmt"
)

// MarshalJSON flattens the variant's fields into one object next to the
// "action" discriminator, emitting only the fields the variant owns.
func (a Action) MarshalJSON() ([]byte, error) {
	m := map[string]any{
		"action":     a.Type,
		"action_idx": a.Idx,
	}
	switch a.Type {
	case TypeCreateFile, TypeOverwriteFileContents, TypeAppendToFile:
		m["path"] = a.Path
		m["content"] = a.Content
	case TypeAskLLMToCreateFile, TypeAskLLMToOverwriteFileContents, TypeAskLLMToReplaceFileLines,
		TypeDeleteFile, TypeReadFile, TypeListDirectory, TypeCheckPathExists:
		m["path"] = a.Path
	case TypeSearchWeb:
		m["query"] = a.Query
	case TypeReadWebPage:
		m["url"] = a.URL
	case TypeRunCommand:
		m["command"] = a.Command
	case TypeAskUser:
		m["question"] = a.Question
	case TypeAskLLM:
		m["prompt"] = a.Prompt
	case TypeAskLLMForPlan:
		m["instruction"] = a.Instruction
		sources := a.ContextSources
		if sources == nil {
			sources = []string{}
		}
		m["context_sources"] = sources
	case TypeFindFiles:
		m["pattern"] = a.Pattern
	case TypeReplaceFileLines:
		m["path"] = a.Path
		m["from_line_idx"] = a.FromLineIdx
		m["until_line_idx"] = a.UntilLineIdx
		m["replacement_lines"] = a.ReplacementLines
	case TypeMoveFile, TypeCopyFile:
		m["source"] = a.Source
		m["destination"] = a.Destination
	}
	return json.Marshal(m)
}

// UnmarshalJSON decodes and validates one action, rejecting unknown
// discriminators and missing required fields.
func (a *Action) UnmarshalJSON(data []byte) error {
	type plain Action
	var raw plain
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed := Action(raw)
	if err := parsed.Validate(); err != nil {
		return err
	}
	*a = parsed
	return nil
}

// DecodeAction parses a single action object.
func DecodeAction(data []byte) (*Action, error) {
	var a Action
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("failed to parse action JSON: %w", err)
	}
	return &a, nil
}

// DecodePlan parses a plan object, requiring a steps array to be present.
func DecodePlan(data []byte) (*Plan, error) {
	var p Plan
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse plan JSON: %w", err)
	}
	if p.Steps == nil {
		return nil, fmt.Errorf("plan JSON is missing the steps array")
	}
	return &p, nil
}
