package executor

import (
	"context"
	"fmt"
	"strings"

	"github.com/amoilanen/cliff/internal/action"
	"github.com/amoilanen/cliff/internal/ops"
)

const (
	createFilePrompt = "Generate a JSON object for a CreateFile action with path: '%s'. The JSON object should have 'action' = \"create_file\", 'action_idx', 'path', and 'content' fields. Generated `content` will be used LITERALLY and will not be parsed further."

	overwriteFilePrompt = "Generate a JSON object for an OverwriteFileContents action with path: '%s'. The JSON object should have 'action' = \"overwrite_file_contents\", 'action_idx', 'path', and 'content' fields. Generated `content` will be used LITERALLY and will not be parsed further."

	replaceLinesPrompt = "Generate a JSON object for a ReplaceFileLines action with path: '%s'. The JSON object should have 'action' = \"replace_file_lines\", 'action_idx', 'path', 'from_line_idx', 'until_line_idx', and 'replacement_lines' fields. Generated `replacement_lines` will be used LITERALLY and will not be parsed further."
)

// dispatch performs one approved action. It returns the output to record in
// history (nil for actions with no output) and the auto-confirm state, which
// sub-plan execution may promote.
func (r *Runner) dispatch(ctx context.Context, a *action.Action, hist *action.History, autoConfirm bool) (*string, bool, error) {
	if err := a.Validate(); err != nil {
		return nil, autoConfirm, err
	}
	capture := func(out string, err error) (*string, bool, error) {
		if err != nil {
			return nil, autoConfirm, err
		}
		return &out, autoConfirm, nil
	}
	switch a.Type {
	case action.TypeCreateFile:
		return nil, autoConfirm, ops.CreateFile(a.Path, a.Content)
	case action.TypeOverwriteFileContents:
		return nil, autoConfirm, ops.OverwriteFileContents(a.Path, a.Content)
	case action.TypeAppendToFile:
		return nil, autoConfirm, ops.AppendToFile(a.Path, a.Content)
	case action.TypeDeleteFile:
		return nil, autoConfirm, ops.DeleteFile(a.Path)
	case action.TypeMoveFile:
		return nil, autoConfirm, ops.MoveFile(a.Source, a.Destination)
	case action.TypeCopyFile:
		return nil, autoConfirm, ops.CopyFile(a.Source, a.Destination)
	case action.TypeReplaceFileLines:
		return nil, autoConfirm, ops.ReplaceFileLines(a.Path, int(*a.FromLineIdx), int(*a.UntilLineIdx), a.ReplacementLines)
	case action.TypeReadFile:
		return capture(ops.ReadFile(a.Path))
	case action.TypeListDirectory:
		return capture(ops.ListDirectory(a.Path))
	case action.TypeCheckPathExists:
		return capture(ops.CheckPathExists(a.Path))
	case action.TypeFindFiles:
		return capture(ops.FindFiles(a.Pattern))
	case action.TypeRunCommand:
		return capture(ops.RunCommand(ctx, a.Command))
	case action.TypeSearchWeb:
		return capture(ops.SearchWeb(ctx, r.http, a.Query))
	case action.TypeReadWebPage:
		return capture(ops.ReadWebPage(ctx, r.http, a.URL))
	case action.TypeAskUser:
		return capture(ops.AskUser(r.stdin, a.Question))
	case action.TypeAskLLM:
		response, err := r.planner.AskWithHistory(ctx, a.Prompt, hist)
		if err != nil {
			return nil, autoConfirm, fmt.Errorf("failed to get response from LLM: %w", err)
		}
		r.display.Response(response)
		return &response, autoConfirm, nil
	case action.TypeAskLLMForPlan:
		subPlan, err := r.planner.Plan(ctx, a.Instruction, a.ContextSources, hist)
		if err != nil {
			return nil, autoConfirm, fmt.Errorf("failed to get sub-plan from LLM: %w", err)
		}
		r.display.ShowPlan(subPlan)
		r.display.SubPlanStart()
		autoConfirm, err = r.ExecutePlan(ctx, subPlan, hist, autoConfirm)
		if err != nil {
			return nil, autoConfirm, err
		}
		r.display.SubPlanFinished()
		return nil, autoConfirm, nil
	case action.TypeAskLLMToCreateFile:
		return r.delegated(ctx, action.TypeCreateFile, fmt.Sprintf(createFilePrompt, a.Path), hist, autoConfirm)
	case action.TypeAskLLMToOverwriteFileContents:
		return r.delegated(ctx, action.TypeOverwriteFileContents, fmt.Sprintf(overwriteFilePrompt, a.Path), hist, autoConfirm)
	case action.TypeAskLLMToReplaceFileLines:
		return r.delegated(ctx, action.TypeReplaceFileLines, fmt.Sprintf(replaceLinesPrompt, a.Path), hist, autoConfirm)
	default:
		return nil, autoConfirm, fmt.Errorf("unsupported action: %s", a.Type)
	}
}

// delegated asks the LLM for a single concrete action of the wanted kind
// and, when the response matches, executes it through the normal dispatch
// path so it is validated and recorded like any other action.
func (r *Runner) delegated(ctx context.Context, want action.Type, prompt string, hist *action.History, autoConfirm bool) (*string, bool, error) {
	got, err := r.planner.SingleAction(ctx, prompt, hist)
	if err != nil {
		return nil, autoConfirm, err
	}
	if got.Type != want {
		return nil, autoConfirm, fmt.Errorf("LLM did not return %s %s action, but instead: %s",
			indefiniteArticle(want.Name()), want.Name(), got)
	}
	return r.dispatch(ctx, got, hist, autoConfirm)
}

func indefiniteArticle(name string) string {
	if name != "" && strings.ContainsAny(name[:1], "AEIOUaeiou") {
		return "an"
	}
	return "a"
}
