// Package controller provides output adapters for displaying check results.
package controller

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	m "oaks.dev/pkg/hygiene/internal/model"
)

// UI defines how check results reach the user.
// Implementations can use different output methods (plain text, styled, etc).
type UI interface {
	// DisplaySection announces the gate about to run.
	DisplaySection(ctx context.Context, title string)

	// DisplayViolation prints one misplaced test as it is found.
	DisplayViolation(ctx context.Context, violation m.Violation)
	// DisplayPlacementSummary prints the final violation count.
	DisplayPlacementSummary(ctx context.Context, count int)

	// DisplayOversizedFile prints one file over the line limit as it is found.
	DisplayOversizedFile(ctx context.Context, file m.OversizedFile)
	// DisplaySizeSummary prints the offender table and count.
	DisplaySizeSummary(ctx context.Context, files []m.OversizedFile)

	// DisplayBuildProfile announces a build configuration run.
	DisplayBuildProfile(ctx context.Context, profile m.BuildProfile)
	// DisplayBuildProfileDone follows every DisplayBuildProfile call. err is
	// set when the profile could not be run at all.
	DisplayBuildProfileDone(ctx context.Context, result m.BuildResult, denyWarnings bool, err error)
	// DisplayBuildSummary prints per-profile results and the log location.
	DisplayBuildSummary(ctx context.Context, results []m.BuildResult, logPath m.Path, denyWarnings bool)
}

// NewUI returns a StyledUI for terminals and a SimpleUI otherwise.
func NewUI(cmd *cobra.Command, isTTY bool) UI {
	if isTTY {
		return NewStyledUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is an interactive terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd())) //nolint:gosec // file descriptors fit in int
}
