package llm

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/amoilanen/cliff/internal/action"
	"github.com/amoilanen/cliff/internal/config"
)

type fakeBackend struct {
	lastPrompt string
	response   string
	err        error
}

func (f *fakeBackend) Name() string { return "fake" }

func (f *fakeBackend) Complete(_ context.Context, prompt string) (string, error) {
	f.lastPrompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func fakeClient(response string) (*Client, *fakeBackend) {
	backend := &fakeBackend{response: response}
	return &Client{model: &config.Model{Name: "fake"}, backend: backend}, backend
}

func TestPlanDecodesFencedResponse(t *testing.T) {
	client, backend := fakeClient("```json\n" +
		`{"thought": "run it", "steps": [{"action": "run_command", "action_idx": 0, "command": "ls"}]}` +
		"\n```")

	plan, err := client.Plan(context.Background(), "list the files", nil, &action.History{})
	if err != nil {
		t.Fatalf("Plan() error: %v", err)
	}
	if plan.Thought == nil || *plan.Thought != "run it" {
		t.Errorf("thought = %v, want run it", plan.Thought)
	}
	if len(plan.Steps) != 1 || plan.Steps[0].Type != action.TypeRunCommand || plan.Steps[0].Command != "ls" {
		t.Errorf("steps = %+v, want one run_command", plan.Steps)
	}

	for _, piece := range []string{
		"Instruction: list the files",
		"Context: No context provided.",
		"Previous executed actions (action and its output): []",
		"NEVER directly reply with actions create_file, overwrite_file_contents, replace_file_lines unless asked to.",
		`{"action": "check_path_exists", "action_idx": number, "path": string}`,
	} {
		if !strings.Contains(backend.lastPrompt, piece) {
			t.Errorf("plan prompt missing %q", piece)
		}
	}
}

func TestPlanRejectsMalformedResponse(t *testing.T) {
	client, _ := fakeClient("this is not a plan")

	_, err := client.Plan(context.Background(), "do something", nil, &action.History{})
	if err == nil || !strings.Contains(err.Error(), "failed to parse extracted plan JSON string") {
		t.Errorf("error = %v, want plan parse failure", err)
	}
}

func TestPlanEmbedsHistoryJSON(t *testing.T) {
	client, backend := fakeClient(`{"thought": null, "steps": [{"action": "ask_llm", "action_idx": 0, "prompt": "summarize"}]}`)

	hist := &action.History{}
	out := "file.txt\nother.txt"
	hist.Append(action.Action{Type: action.TypeListDirectory, Idx: 0, Path: "."}, &out)

	if _, err := client.Plan(context.Background(), "continue", nil, hist); err != nil {
		t.Fatalf("Plan() error: %v", err)
	}
	for _, piece := range []string{`"action": "list_directory"`, `"path": "."`, "file.txt\\nother.txt"} {
		if !strings.Contains(backend.lastPrompt, piece) {
			t.Errorf("plan prompt missing history fragment %q", piece)
		}
	}
}

func TestAskWithHistoryPrompt(t *testing.T) {
	client, backend := fakeClient("fine")

	hist := &action.History{}
	out := "ok"
	hist.Append(action.Action{Type: action.TypeRunCommand, Idx: 0, Command: "ls"}, &out)
	hist.Append(action.Action{Type: action.TypeCreateFile, Idx: 1, Path: "a.txt", Content: "hi"}, nil)

	answer, err := client.AskWithHistory(context.Background(), "why?", hist)
	if err != nil {
		t.Fatalf("AskWithHistory() error: %v", err)
	}
	if answer != "fine" {
		t.Errorf("answer = %q, want fine", answer)
	}

	want := "Question: why?\n\nPrevious executed actions (action and its output): " +
		`action: RunCommand{action_idx: 0, command: "ls"}, output: ok` + "\n" +
		`CreateFile{action_idx: 1, path: "a.txt", content: "hi"}`
	if backend.lastPrompt != want {
		t.Errorf("prompt = %q, want %q", backend.lastPrompt, want)
	}
}

func TestSingleActionParsesResponse(t *testing.T) {
	client, backend := fakeClient("```json\n" +
		`{"action": "create_file", "action_idx": 0, "path": "hello.py", "content": "print('hi')"}` +
		"\n```")

	got, err := client.SingleAction(context.Background(), "Generate a CreateFile action", &action.History{})
	if err != nil {
		t.Fatalf("SingleAction() error: %v", err)
	}
	if got.Type != action.TypeCreateFile || got.Path != "hello.py" || got.Content != "print('hi')" {
		t.Errorf("action = %+v, want the create_file action", got)
	}
	if !strings.Contains(backend.lastPrompt, "Generate a CreateFile action") {
		t.Errorf("prompt = %q, want it to carry the instruction", backend.lastPrompt)
	}
}

func TestSingleActionParseError(t *testing.T) {
	client, _ := fakeClient("no json here")

	_, err := client.SingleAction(context.Background(), "Generate an action", &action.History{})
	if err == nil || !strings.Contains(err.Error(), "failed to parse LLM response as an action") {
		t.Errorf("error = %v, want action parse failure", err)
	}
}

func TestSingleActionTransportError(t *testing.T) {
	client, backend := fakeClient("")
	backend.err = errors.New("connection refused")

	_, err := client.SingleAction(context.Background(), "Generate an action", &action.History{})
	if err == nil || !strings.Contains(err.Error(), "failed to get response from LLM") {
		t.Errorf("error = %v, want transport failure wrap", err)
	}
}

func TestNewRejectsUnknownProvider(t *testing.T) {
	_, err := New(&config.Model{Name: "bad", Provider: "carrier-pigeon"}, nil)
	if err == nil || !strings.Contains(err.Error(), "unknown provider") {
		t.Errorf("error = %v, want unknown provider", err)
	}
}
