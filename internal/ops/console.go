package ops

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// AskUser prints the question and blocks for one line of input. The reader
// is shared with the confirmation gate so buffered input is not lost
// between prompts.
func AskUser(in *bufio.Reader, question string) (string, error) {
	fmt.Println("Action: Ask user")
	green := color.New(color.FgGreen).SprintFunc()
	fmt.Printf("%s ", green(question))

	line, err := in.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read user input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
