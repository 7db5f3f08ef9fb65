package ops

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/fatih/color"
)

// RunCommand runs the command through the user's shell. Stdin and stderr are
// inherited so interactive commands and error output behave normally; stdout
// is captured, echoed once the command finishes, and returned as the step
// output. A non-zero exit is a failure carrying the exit status.
func RunCommand(ctx context.Context, command string) (string, error) {
	fmt.Printf("Action: Run command `%s`\n", command)

	shell := os.Getenv("SHELL")
	if shell == "" {
		shell = "/bin/sh"
	}

	cmd := exec.CommandContext(ctx, shell, "-c", command)
	cmd.Stdin = os.Stdin
	cmd.Stderr = os.Stderr
	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	runErr := cmd.Run()

	if stdout.Len() > 0 {
		green := color.New(color.FgGreen).SprintFunc()
		fmt.Println(green("--- Command Output ---"))
		for _, line := range strings.Split(strings.TrimRight(stdout.String(), "\n"), "\n") {
			fmt.Println(green(line))
		}
		fmt.Println(green("----------------------"))
	}

	if runErr != nil {
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			return "", fmt.Errorf("Command failed with status: %d", exitErr.ExitCode())
		}
		return "", fmt.Errorf("failed to execute command %s: %w", command, runErr)
	}

	fmt.Println("Success: Command executed successfully.")
	return strings.TrimSpace(stdout.String()), nil
}
