package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"oaks.dev/pkg/hygiene/internal/adapter"
	"oaks.dev/pkg/hygiene/internal/domain"
)

func writeWorkspaceFile(t *testing.T, root, rel string, lines ...string) string {
	t.Helper()

	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644))

	return path
}

func runHygiene(t *testing.T, sub *cobra.Command, args ...string) (string, error) {
	t.Helper()

	root := newTestRootCmd(t)
	root.AddCommand(sub)

	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(withLogFile(t, args...))

	err := root.Execute()

	return out.String(), err
}

func TestCheckTestsCmd(t *testing.T) {
	t.Run("reports misplaced tests", func(t *testing.T) {
		ws := t.TempDir()
		path := writeWorkspaceFile(t, ws, "crates/lexer/src/lib.rs", "pub fn lex() {}", "#[test]", "fn lexes() {}")
		writeWorkspaceFile(t, ws, "crates/lexer/tests/lex.rs", "#[test]", "fn lexes() {}")

		out, err := runHygiene(t, newCheckTestsCmd(), "check-tests", ws)
		require.ErrorIs(t, err, domain.ErrViolationsFound)

		assert.Equal(t, "Invalid test placement: "+path+":2\nFound 1 invalid test placements.\n", out)
	})

	t.Run("clean workspace", func(t *testing.T) {
		ws := t.TempDir()
		writeWorkspaceFile(t, ws, "src/lib.rs", "pub fn lex() {}")

		out, err := runHygiene(t, newCheckTestsCmd(), "check-tests", ws)
		require.NoError(t, err)
		assert.Equal(t, "Found 0 invalid test placements.\n", out)
	})

	t.Run("parallel with report", func(t *testing.T) {
		ws := t.TempDir()
		writeWorkspaceFile(t, ws, "a/src/lib.rs", "#[cfg(test)]", "mod tests {}")
		writeWorkspaceFile(t, ws, "b/src/lib.rs", "#[test]", "fn t() {}")
		report := filepath.Join(t.TempDir(), "placement.yaml")

		out, err := runHygiene(t, newCheckTestsCmd(), "check-tests", ws, "--parallel", "2", "--report", report)
		require.ErrorIs(t, err, domain.ErrViolationsFound)
		assert.Contains(t, out, "Found 2 invalid test placements.")

		data, err := os.ReadFile(report)
		require.NoError(t, err)
		assert.Contains(t, string(data), "count: 2")
	})

	t.Run("missing root is fatal", func(t *testing.T) {
		_, err := runHygiene(t, newCheckTestsCmd(), "check-tests", filepath.Join(t.TempDir(), "missing"))
		require.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrViolationsFound)
	})

	t.Run("excluded directory", func(t *testing.T) {
		ws := t.TempDir()
		writeWorkspaceFile(t, ws, "vendor/src/lib.rs", "#[test]", "fn t() {}")

		out, err := runHygiene(t, newCheckTestsCmd(), "check-tests", ws, "-x", "vendor")
		require.NoError(t, err)
		assert.Contains(t, out, "Found 0 invalid test placements.")
	})
}

func TestCheckSizeCmd(t *testing.T) {
	ws := t.TempDir()
	big := writeWorkspaceFile(t, ws, "src/big.rs", "a", "b", "c", "d")
	writeWorkspaceFile(t, ws, "src/small.rs", "a")

	out, err := runHygiene(t, newCheckSizeCmd(), "check-size", ws, "--max-lines", "3")
	require.ErrorIs(t, err, domain.ErrOversizedFiles)
	assert.Contains(t, out, "Oversized file: "+big+" (4 lines, max 3)")
	assert.Contains(t, out, "Found 1 oversized files.")
}

func TestCheckBuildCmd(t *testing.T) {
	t.Run("unknown profile", func(t *testing.T) {
		_, err := runHygiene(t, newCheckBuildCmd(), "check-build", t.TempDir(), "--profile", "nightly")
		assert.ErrorContains(t, err, "unknown build profile")
	})

	t.Run("missing tool is fatal", func(t *testing.T) {
		viper.Set(buildToolKey, "hygiene-no-such-build-tool")
		t.Cleanup(func() { viper.Set(buildToolKey, defaultBuildTool) })

		_, err := runHygiene(t, newCheckBuildCmd(), "check-build", t.TempDir(), "--profile", "default")
		require.ErrorIs(t, err, adapter.ErrNotStarted)
		assert.NotErrorIs(t, err, domain.ErrBuildFailed)
	})
}

func TestCheckCmd_SkipBuild(t *testing.T) {
	ws := t.TempDir()
	writeWorkspaceFile(t, ws, "src/lib.rs", "#[test]", "fn t() {}")

	out, err := runHygiene(t, newCheckCmd(), "check", ws, "--skip-build")
	require.ErrorIs(t, err, domain.ErrViolationsFound)
	assert.NotErrorIs(t, err, domain.ErrOversizedFiles)

	assert.Contains(t, out, "== Test placement ==")
	assert.Contains(t, out, "== File size ==")
	assert.NotContains(t, out, "== Build ==")
	assert.Contains(t, out, "Found 0 oversized files.")
}
