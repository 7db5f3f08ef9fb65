package ops

import (
	"fmt"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/amoilanen/cliff/internal/utils"
)

// ListDirectory returns the directory's entry names, one per line.
func ListDirectory(path string) (string, error) {
	expanded, err := utils.ExpandHome(path)
	if err != nil {
		return "", err
	}
	entries, err := os.ReadDir(expanded)
	if err != nil {
		return "", fmt.Errorf("failed to read directory %s: %w", expanded, err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return strings.Join(names, "\n"), nil
}

// CheckPathExists reports "true" or "false" for the path.
func CheckPathExists(path string) (string, error) {
	expanded, err := utils.ExpandHome(path)
	if err != nil {
		return "", err
	}
	if utils.FileExists(expanded) {
		return "true", nil
	}
	return "false", nil
}

// FindFiles returns the paths matching the glob pattern, one per line.
// Patterns support doublestar (**) segments.
func FindFiles(pattern string) (string, error) {
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return "", fmt.Errorf("failed to glob with pattern %s: %w", pattern, err)
	}
	return strings.Join(matches, "\n"), nil
}
