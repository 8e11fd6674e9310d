package controller

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	m "oaks.dev/pkg/hygiene/internal/model"
)

var (
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	passStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	dimStyle     = lipgloss.NewStyle().Faint(true)
)

// StyledUI renders the same lines as SimpleUI with terminal colors, and a
// spinner while a build profile runs.
type StyledUI struct {
	cmd      *cobra.Command
	progress *buildProgress
}

// NewStyledUI creates a new StyledUI.
func NewStyledUI(cmd *cobra.Command) *StyledUI {
	return &StyledUI{cmd: cmd}
}

// DisplaySection prints a bold section header.
func (s *StyledUI) DisplaySection(ctx context.Context, title string) {
	if ctx.Err() != nil {
		return
	}

	s.println(sectionStyle.Render(title))
}

// DisplayViolation prints a misplaced test marker in red.
func (s *StyledUI) DisplayViolation(ctx context.Context, violation m.Violation) {
	if ctx.Err() != nil {
		return
	}

	s.println(failStyle.Render(violationLine(violation)))
}

// DisplayPlacementSummary prints the count, green when zero.
func (s *StyledUI) DisplayPlacementSummary(ctx context.Context, count int) {
	if ctx.Err() != nil {
		return
	}

	s.println(outcomeStyle(count == 0).Render(placementSummaryLine(count)))
}

// DisplayOversizedFile prints an oversized file in red.
func (s *StyledUI) DisplayOversizedFile(ctx context.Context, file m.OversizedFile) {
	if ctx.Err() != nil {
		return
	}

	s.println(failStyle.Render(oversizedLine(file)))
}

// DisplaySizeSummary prints the offender table and the count.
func (s *StyledUI) DisplaySizeSummary(ctx context.Context, files []m.OversizedFile) {
	if ctx.Err() != nil {
		return
	}

	if len(files) > 0 {
		s.println("\n" + renderSizeTable(files))
	}

	s.println(outcomeStyle(len(files) == 0).Render(sizeSummaryLine(len(files))))
}

// DisplayBuildProfile shows a spinner labelled with the profile being built.
func (s *StyledUI) DisplayBuildProfile(ctx context.Context, profile m.BuildProfile) {
	if ctx.Err() != nil {
		return
	}

	s.stopProgress()
	s.progress = startBuildProgress(s.cmd.OutOrStdout(), buildProfileLine(profile))
}

// DisplayBuildProfileDone replaces the spinner with the profile outcome.
func (s *StyledUI) DisplayBuildProfileDone(ctx context.Context, result m.BuildResult, denyWarnings bool, err error) {
	s.stopProgress()

	if ctx.Err() != nil {
		return
	}

	line := buildProfileDoneLine(result, denyWarnings, err)
	s.println(outcomeStyle(err == nil && !result.Failed(denyWarnings)).Render(line))
}

// DisplayBuildSummary prints the result table and an overall verdict.
func (s *StyledUI) DisplayBuildSummary(ctx context.Context, results []m.BuildResult, logPath m.Path, denyWarnings bool) {
	if ctx.Err() != nil {
		return
	}

	clean := true

	for _, r := range results {
		if r.Failed(denyWarnings) {
			clean = false
		}
	}

	s.println("\n" + renderBuildTable(results, denyWarnings))
	s.println(outcomeStyle(clean).Render(buildSummaryLine(results, logPath, denyWarnings)))
}

func (s *StyledUI) stopProgress() {
	if s.progress == nil {
		return
	}

	s.progress.Stop()
	s.progress = nil
}

func (s *StyledUI) println(line string) {
	_, _ = fmt.Fprintln(s.cmd.OutOrStdout(), line)
}

func outcomeStyle(ok bool) lipgloss.Style {
	if ok {
		return passStyle
	}

	return failStyle
}
