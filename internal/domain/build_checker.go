package domain

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"oaks.dev/pkg/hygiene/internal/adapter"
	"oaks.dev/pkg/hygiene/internal/controller"
	m "oaks.dev/pkg/hygiene/internal/model"
	"oaks.dev/pkg/hygiene/pkg"
)

const stderrTailLines = 20

// BuildArgs contains the arguments for a build-cleanliness check.
type BuildArgs struct {
	Root       m.Path
	Tool       string
	Subcommand string
	// ExtraArgs are passed to every profile, before the profile's own args.
	ExtraArgs    []string
	Profiles     []m.BuildProfile
	LogFile      m.Path
	DenyWarnings bool
	// SpillDir holds temporary diagnostic buffers; empty means the OS temp dir.
	SpillDir string
}

// CommandLine returns the full argument list for profile, tool excluded.
func (a BuildArgs) CommandLine(profile m.BuildProfile) []string {
	args := make([]string, 0, 3+len(a.ExtraArgs)+len(profile.Args))
	args = append(args, a.Subcommand, "--message-format=json", "--workspace")
	args = append(args, a.ExtraArgs...)

	return append(args, profile.Args...)
}

// BuildChecker runs the build tool once per profile and aggregates diagnostics.
type BuildChecker interface {
	Check(ctx context.Context, args BuildArgs) ([]m.BuildResult, error)
}

type buildChecker struct {
	fs     adapter.SourceFSAdapter
	runner adapter.CommandRunner
	ui     controller.UI
}

// NewBuildChecker constructs a BuildChecker.
func NewBuildChecker(fs adapter.SourceFSAdapter, runner adapter.CommandRunner, ui controller.UI) BuildChecker {
	return &buildChecker{fs: fs, runner: runner, ui: ui}
}

// Check builds every profile in order, writes the log file and displays the
// summary. A failing build is reported through the results, not the error;
// the error is reserved for problems running the check itself.
func (c *buildChecker) Check(ctx context.Context, args BuildArgs) ([]m.BuildResult, error) {
	if err := validateBuildArgs(args); err != nil {
		return nil, err
	}

	if err := c.fs.EnsureDir(args.Root); err != nil {
		return nil, fmt.Errorf("build root: %w", err)
	}

	results := make([]m.BuildResult, 0, len(args.Profiles))
	spills := make([]pkg.FileSpill[m.Diagnostic], 0, len(args.Profiles))

	defer func() {
		for _, spill := range spills {
			if err := spill.Close(); err != nil {
				slog.Warn("Failed to remove diagnostic spill", "path", spill.Path(), "error", err)
			}
		}
	}()

	for _, profile := range args.Profiles {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		spill, err := pkg.NewFileSpill[m.Diagnostic](args.SpillDir)
		if err != nil {
			return nil, err
		}

		spills = append(spills, spill)

		c.ui.DisplayBuildProfile(ctx, profile)

		result, err := c.runProfile(ctx, args, profile, spill)
		if err != nil {
			c.ui.DisplayBuildProfileDone(ctx, m.BuildResult{Profile: profile}, args.DenyWarnings, err)
			slog.Error("Build profile could not run", "profile", profile.Name, "error", err)

			return nil, fmt.Errorf("build profile %s: %w", profile.Name, err)
		}

		c.ui.DisplayBuildProfileDone(ctx, result, args.DenyWarnings, nil)

		results = append(results, result)
	}

	if err := c.writeLog(args, results, spills); err != nil {
		return nil, fmt.Errorf("write build log %s: %w", args.LogFile, err)
	}

	c.ui.DisplayBuildSummary(ctx, results, args.LogFile, args.DenyWarnings)

	return results, nil
}

func validateBuildArgs(args BuildArgs) error {
	if args.Tool == "" {
		return errors.New("build tool is not configured")
	}

	if len(args.Profiles) == 0 {
		return errors.New("no build profiles configured")
	}

	seen := make(map[string]bool, len(args.Profiles))
	for _, p := range args.Profiles {
		if p.Name == "" {
			return errors.New("build profile without a name")
		}

		if seen[p.Name] {
			return fmt.Errorf("duplicate build profile %q", p.Name)
		}

		seen[p.Name] = true
	}

	return nil
}

func (c *buildChecker) runProfile(
	ctx context.Context,
	args BuildArgs,
	profile m.BuildProfile,
	spill pkg.FileSpill[m.Diagnostic],
) (m.BuildResult, error) {
	cmdArgs := args.CommandLine(profile)
	slog.Debug("Running build profile", "profile", profile.Name, "tool", args.Tool, "args", cmdArgs)

	stdout, stderr, runErr := c.runner.Run(ctx, string(args.Root), args.Tool, cmdArgs...)
	if errors.Is(runErr, adapter.ErrNotStarted) {
		return m.BuildResult{}, runErr
	}

	if err := ctx.Err(); err != nil {
		return m.BuildResult{}, err
	}

	result := m.BuildResult{Profile: profile, ExitErr: runErr}

	for _, line := range bytes.Split(stdout, []byte("\n")) {
		msg, ok := ParseBuildMessage(line)
		if !ok {
			continue
		}

		if msg.Reason == reasonBuildFinished {
			result.Finished = true
			result.Success = msg.Success

			continue
		}

		if msg.Diagnostic == nil {
			continue
		}

		diag := *msg.Diagnostic
		diag.Profile = profile.Name

		switch diag.Severity {
		case m.SeverityError:
			result.Errors++
		case m.SeverityWarning:
			result.Warnings++
			if !args.DenyWarnings {
				continue
			}
		case m.SeverityOther:
			continue
		}

		if err := spill.Append(diag); err != nil {
			return m.BuildResult{}, err
		}
	}

	if runErr != nil && result.Errors == 0 {
		result.Stderr = tailLines(string(stderr), stderrTailLines)
	}

	slog.Info("Build profile finished",
		"profile", profile.Name,
		"errors", result.Errors,
		"warnings", result.Warnings,
		"failed", result.Failed(args.DenyWarnings),
	)

	return result, nil
}

func (c *buildChecker) writeLog(args BuildArgs, results []m.BuildResult, spills []pkg.FileSpill[m.Diagnostic]) (err error) {
	file, err := c.fs.Create(args.LogFile)
	if err != nil {
		return err
	}

	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	w := bufio.NewWriter(file)

	for i, result := range results {
		if err := writeProfileLog(w, args, result, spills[i]); err != nil {
			return err
		}
	}

	return w.Flush()
}

func writeProfileLog(w io.Writer, args BuildArgs, result m.BuildResult, spill pkg.FileSpill[m.Diagnostic]) error {
	status := "pass"
	if result.Failed(args.DenyWarnings) {
		status = "FAIL"
	}

	command := strings.Join(append([]string{args.Tool}, args.CommandLine(result.Profile)...), " ")

	if _, err := fmt.Fprintf(w, "== %s: %s ==\nstatus: %s (%d errors, %d warnings)\n\n",
		result.Profile.Name, command, status, result.Errors, result.Warnings); err != nil {
		return err
	}

	err := spill.Range(func(_ uint64, d m.Diagnostic) error {
		_, err := io.WriteString(w, formatDiagnostic(d))
		return err
	})
	if err != nil {
		return err
	}

	if result.Stderr != "" {
		if _, err := fmt.Fprintf(w, "%s exited with %v; stderr tail:\n%s\n", args.Tool, result.ExitErr, result.Stderr); err != nil {
			return err
		}
	}

	_, err = io.WriteString(w, "\n")

	return err
}

func formatDiagnostic(d m.Diagnostic) string {
	if d.Rendered != "" {
		return strings.TrimRight(d.Rendered, "\n") + "\n\n"
	}

	if d.File != "" {
		return fmt.Sprintf("%s: %s\n --> %s:%d\n\n", d.Severity, d.Message, d.File, d.Line)
	}

	return fmt.Sprintf("%s: %s\n\n", d.Severity, d.Message)
}

func tailLines(text string, n int) string {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}

	return strings.Join(lines, "\n")
}
