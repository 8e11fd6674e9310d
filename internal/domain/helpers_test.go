package domain

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	m "oaks.dev/pkg/hygiene/internal/model"
)

// recordingUI captures every display call so tests can assert on the output sequence.
type recordingUI struct {
	mu           sync.Mutex
	sections     []string
	violations   []m.Violation
	summaries    []int
	oversized    []m.OversizedFile
	sizeSummary  [][]m.OversizedFile
	profiles     []string
	profileDone  []string
	profileErrs  []error
	buildResults [][]m.BuildResult
	logPaths     []m.Path
}

func (u *recordingUI) DisplaySection(_ context.Context, title string) {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.sections = append(u.sections, title)
}

func (u *recordingUI) DisplayViolation(_ context.Context, v m.Violation) {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.violations = append(u.violations, v)
}

func (u *recordingUI) DisplayPlacementSummary(_ context.Context, count int) {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.summaries = append(u.summaries, count)
}

func (u *recordingUI) DisplayOversizedFile(_ context.Context, file m.OversizedFile) {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.oversized = append(u.oversized, file)
}

func (u *recordingUI) DisplaySizeSummary(_ context.Context, files []m.OversizedFile) {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.sizeSummary = append(u.sizeSummary, files)
}

func (u *recordingUI) DisplayBuildProfile(_ context.Context, profile m.BuildProfile) {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.profiles = append(u.profiles, profile.Name)
}

func (u *recordingUI) DisplayBuildProfileDone(_ context.Context, result m.BuildResult, _ bool, err error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.profileDone = append(u.profileDone, result.Profile.Name)
	u.profileErrs = append(u.profileErrs, err)
}

func (u *recordingUI) DisplayBuildSummary(_ context.Context, results []m.BuildResult, logPath m.Path, _ bool) {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.buildResults = append(u.buildResults, results)
	u.logPaths = append(u.logPaths, logPath)
}

// writeSource creates root/rel with the given lines joined by newlines.
func writeSource(t *testing.T, root, rel string, lines ...string) string {
	t.Helper()

	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))

	content := ""
	if len(lines) > 0 {
		content = strings.Join(lines, "\n") + "\n"
	}

	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

// filler returns n harmless implementation lines.
func filler(n int) []string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = "let _ = 0;"
	}

	return lines
}
