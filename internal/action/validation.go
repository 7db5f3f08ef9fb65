package action

import "fmt"

// Validate checks that the action names a known variant and carries that
// variant's required fields. Content-like fields (content,
// replacement_lines) may legitimately be empty; everything else that is
// empty makes the action meaningless and is rejected.
func (a Action) Validate() error {
	if !a.Type.IsValid() {
		return fmt.Errorf("unknown action %q", string(a.Type))
	}
	switch a.Type {
	case TypeCreateFile, TypeOverwriteFileContents, TypeAppendToFile,
		TypeAskLLMToCreateFile, TypeAskLLMToOverwriteFileContents, TypeAskLLMToReplaceFileLines,
		TypeDeleteFile, TypeReadFile, TypeListDirectory, TypeCheckPathExists:
		if a.Path == "" {
			return fmt.Errorf("action %s is missing path", a.Type)
		}
	case TypeSearchWeb:
		if a.Query == "" {
			return fmt.Errorf("action %s is missing query", a.Type)
		}
	case TypeReadWebPage:
		if a.URL == "" {
			return fmt.Errorf("action %s is missing url", a.Type)
		}
	case TypeRunCommand:
		if a.Command == "" {
			return fmt.Errorf("action %s is missing command", a.Type)
		}
	case TypeAskUser:
		if a.Question == "" {
			return fmt.Errorf("action %s is missing question", a.Type)
		}
	case TypeAskLLM:
		if a.Prompt == "" {
			return fmt.Errorf("action %s is missing prompt", a.Type)
		}
	case TypeAskLLMForPlan:
		if a.Instruction == "" {
			return fmt.Errorf("action %s is missing instruction", a.Type)
		}
	case TypeFindFiles:
		if a.Pattern == "" {
			return fmt.Errorf("action %s is missing pattern", a.Type)
		}
	case TypeReplaceFileLines:
		if a.Path == "" {
			return fmt.Errorf("action %s is missing path", a.Type)
		}
		if a.FromLineIdx == nil || a.UntilLineIdx == nil {
			return fmt.Errorf("action %s is missing from_line_idx or until_line_idx", a.Type)
		}
		if *a.UntilLineIdx < *a.FromLineIdx {
			return fmt.Errorf("action %s has until_line_idx %d before from_line_idx %d",
				a.Type, *a.UntilLineIdx, *a.FromLineIdx)
		}
	case TypeMoveFile, TypeCopyFile:
		if a.Source == "" || a.Destination == "" {
			return fmt.Errorf("action %s is missing source or destination", a.Type)
		}
	}
	return nil
}
