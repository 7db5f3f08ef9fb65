package ops

import (
	"fmt"
	"os"
	"strings"
)

// ReplaceFileLines replaces the inclusive line range [from, until] with the
// replacement text, taken literally. If from is beyond the end of the file,
// blank lines are appended up to it; the file is never truncated to reach
// the index. The range end is clamped to the current line count, so a range
// reaching past the end deletes only what exists.
func ReplaceFileLines(path string, from, until int, replacement string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file for replacement: %s: %w", path, err)
	}
	lines := splitLines(string(data))

	for from > len(lines) {
		lines = append(lines, "")
	}

	end := until + 1
	if end > len(lines) {
		end = len(lines)
	}
	if end < from {
		end = from
	}

	merged := make([]string, 0, len(lines))
	merged = append(merged, lines[:from]...)
	merged = append(merged, splitLines(replacement)...)
	merged = append(merged, lines[end:]...)

	if err := os.WriteFile(path, []byte(strings.Join(merged, "\n")), 0644); err != nil {
		return fmt.Errorf("failed to write modified file: %s: %w", path, err)
	}
	return nil
}

// splitLines splits on newlines, treating a trailing newline as a line
// terminator rather than the start of an empty final line.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
