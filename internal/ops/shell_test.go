package ops

import (
	"context"
	"strings"
	"testing"
)

func TestRunCommandCapturesStdout(t *testing.T) {
	out, err := RunCommand(context.Background(), "echo hello")
	if err != nil {
		t.Fatalf("RunCommand: %v", err)
	}
	if out != "hello" {
		t.Errorf("output = %q, want %q", out, "hello")
	}
}

func TestRunCommandNonZeroExit(t *testing.T) {
	_, err := RunCommand(context.Background(), "exit 3")
	if err == nil {
		t.Fatal("expected error for non-zero exit")
	}
	if err.Error() != "Command failed with status: 3" {
		t.Errorf("error = %q, want %q", err.Error(), "Command failed with status: 3")
	}
}

func TestRunCommandMultilineOutput(t *testing.T) {
	out, err := RunCommand(context.Background(), "printf 'a\\nb\\n'")
	if err != nil {
		t.Fatalf("RunCommand: %v", err)
	}
	if !strings.Contains(out, "a\nb") {
		t.Errorf("output = %q, want it to contain %q", out, "a\nb")
	}
}
