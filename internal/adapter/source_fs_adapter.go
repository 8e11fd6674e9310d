// Package adapter contains filesystem, process and report adapters for the hygiene CLI.
package adapter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/unicode"
	m "oaks.dev/pkg/hygiene/internal/model"
)

// ErrNotDirectory is returned when a scan root exists but is not a directory.
var ErrNotDirectory = errors.New("not a directory")

// SourceFSAdapter abstracts filesystem-specific operations the checks rely on
// when scanning a workspace, so the domain layer can be tested without a disk.
type SourceFSAdapter interface {
	// Walk visits every regular file under root in filesystem order, skipping
	// directories whose base name is in exclude. The first error aborts the walk.
	Walk(ctx context.Context, root m.Path, exclude []string, fn WalkFunc) error

	// ReadLines loads a whole file as text lines. Invalid UTF-8 is replaced
	// rather than rejected.
	ReadLines(path m.Path) ([]string, error)

	// CountLines returns the number of lines in the file at path.
	CountLines(path m.Path) (int, error)

	// EnsureDir verifies path exists and is a directory.
	EnsureDir(path m.Path) error

	// FindProjectRoot walks up from startPath looking for marker and returns
	// the outermost directory containing it.
	FindProjectRoot(startPath m.Path, marker string) (m.Path, error)

	// WriteFile writes content to a file, creating parent directories.
	WriteFile(path m.Path, content []byte, perm os.FileMode) error

	// Create truncates or creates a file for streaming writes, creating
	// parent directories.
	Create(path m.Path) (io.WriteCloser, error)
}

// WalkFunc is called once per discovered file.
type WalkFunc func(path m.Path) error

// LocalSourceFSAdapter is the os-backed SourceFSAdapter.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Walk iterates over files under root, pruning excluded directories.
func (a *LocalSourceFSAdapter) Walk(ctx context.Context, root m.Path, exclude []string, fn WalkFunc) error {
	rootStr := string(root)

	skip := make(map[string]bool, len(exclude))
	for _, name := range exclude {
		skip[name] = true
	}

	return filepath.WalkDir(rootStr, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if err := ctx.Err(); err != nil {
			return err
		}

		if d.IsDir() {
			if path != rootStr && skip[d.Name()] {
				return filepath.SkipDir
			}

			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}

		return fn(m.Path(path))
	})
}

// ReadLines reads the file and splits it into lines without terminators.
func (a *LocalSourceFSAdapter) ReadLines(path m.Path) ([]string, error) {
	// #nosec G304 - path comes from walking the scan root
	data, err := os.ReadFile(string(path))
	if err != nil {
		return nil, err
	}

	text, err := decodeLenient(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	return SplitLines(text), nil
}

// CountLines counts newline-terminated lines plus a trailing unterminated one.
func (a *LocalSourceFSAdapter) CountLines(path m.Path) (int, error) {
	// #nosec G304 - path comes from walking the scan root
	data, err := os.ReadFile(string(path))
	if err != nil {
		return 0, err
	}

	return countLines(data), nil
}

// EnsureDir returns an error unless path is an existing directory.
func (a *LocalSourceFSAdapter) EnsureDir(path m.Path) error {
	info, err := os.Stat(string(path))
	if err != nil {
		return err
	}

	if !info.IsDir() {
		return fmt.Errorf("%s: %w", path, ErrNotDirectory)
	}

	return nil
}

// FindProjectRoot returns the outermost ancestor of startPath containing marker,
// so a nested crate resolves to its workspace root.
func (a *LocalSourceFSAdapter) FindProjectRoot(startPath m.Path, marker string) (m.Path, error) {
	dir, err := filepath.Abs(string(startPath))
	if err != nil {
		return "", err
	}

	found := ""

	for {
		if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
			found = dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}

		dir = parent
	}

	if found == "" {
		return "", fmt.Errorf("%s not found in any parent directory of %s", marker, startPath)
	}

	return m.Path(found), nil
}

// WriteFile writes content to a file with the given permissions.
func (a *LocalSourceFSAdapter) WriteFile(path m.Path, content []byte, perm os.FileMode) error {
	if dir := filepath.Dir(string(path)); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return err
		}
	}

	return os.WriteFile(string(path), content, perm)
}

// Create opens path for writing, truncating any previous content.
func (a *LocalSourceFSAdapter) Create(path m.Path) (io.WriteCloser, error) {
	if dir := filepath.Dir(string(path)); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, err
		}
	}

	// #nosec G304 - path is the configured log or report location
	return os.Create(string(path))
}

// decodeLenient drops a leading BOM and substitutes U+FFFD for invalid UTF-8.
func decodeLenient(data []byte) (string, error) {
	decoded, err := unicode.UTF8BOM.NewDecoder().Bytes(data)
	if err != nil {
		return "", err
	}

	return string(decoded), nil
}

// SplitLines splits text on "\n", trimming a trailing "\r" from each line.
// A final newline does not produce an extra empty line.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}

	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	return lines
}

func countLines(data []byte) int {
	if len(data) == 0 {
		return 0
	}

	n := 0

	for _, b := range data {
		if b == '\n' {
			n++
		}
	}

	if data[len(data)-1] != '\n' {
		n++
	}

	return n
}
