// Package ops implements the leaf operations actions dispatch to: file
// manipulation, shell commands, web access, and console interaction. Every
// operation either succeeds (some with text output) or fails with an error
// naming the path or command involved.
package ops

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/amoilanen/cliff/internal/utils"
)

// CreateFile writes content to path literally, creating parent directories
// as needed.
func CreateFile(path, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create parent directories for %s: %w", path, err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return nil
}

// OverwriteFileContents replaces the file's contents with content, literally.
func OverwriteFileContents(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to overwrite file %s: %w", path, err)
	}
	return nil
}

// AppendToFile appends content plus a trailing newline, creating the file
// if it does not exist.
func AppendToFile(path, content string) error {
	expanded, err := utils.ExpandHome(path)
	if err != nil {
		return err
	}
	f, err := os.OpenFile(expanded, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open file for appending: %s: %w", expanded, err)
	}
	defer f.Close()
	if _, err := f.WriteString(content + "\n"); err != nil {
		return fmt.Errorf("failed to append content to file %s: %w", expanded, err)
	}
	return nil
}

// DeleteFile removes the file at path. A missing file is tolerated as a
// no-op with a warning.
func DeleteFile(path string) error {
	if !utils.FileExists(path) {
		fmt.Printf("Warning: file %s does not exist, skipping delete.\n", path)
		return nil
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to delete file %s: %w", path, err)
	}
	return nil
}

// MoveFile renames source to destination, creating the destination's parent
// directories first.
func MoveFile(source, destination string) error {
	src, dst, err := expandPair(source, destination)
	if err != nil {
		return err
	}
	if err := os.Rename(src, dst); err != nil {
		return fmt.Errorf("failed to move file from %s to %s: %w", src, dst, err)
	}
	return nil
}

// CopyFile copies source to destination, creating the destination's parent
// directories first. The source is left in place.
func CopyFile(source, destination string) error {
	src, dst, err := expandPair(source, destination)
	if err != nil {
		return err
	}
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open source file %s: %w", src, err)
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create destination file %s: %w", dst, err)
	}
	defer out.Close()
	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("failed to copy file from %s to %s: %w", src, dst, err)
	}
	return out.Close()
}

// ReadFile returns the file's contents.
func ReadFile(path string) (string, error) {
	expanded, err := utils.ExpandHome(path)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(expanded)
	if err != nil {
		return "", fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return string(data), nil
}

func expandPair(source, destination string) (string, string, error) {
	src, err := utils.ExpandHome(source)
	if err != nil {
		return "", "", err
	}
	dst, err := utils.ExpandHome(destination)
	if err != nil {
		return "", "", err
	}
	if dir := filepath.Dir(dst); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", "", fmt.Errorf("failed to create parent directories for destination %s: %w", dst, err)
		}
	}
	return src, dst, nil
}
