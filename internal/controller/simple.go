package controller

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	m "oaks.dev/pkg/hygiene/internal/model"
)

const (
	statusPass = "pass"
	statusFail = "FAIL"
)

// SimpleUI implements UI with plain lines on the command's output stream.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplaySection prints a section header.
func (s *SimpleUI) DisplaySection(ctx context.Context, title string) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("== %s ==\n", title)
}

// DisplayViolation prints a misplaced test marker.
func (s *SimpleUI) DisplayViolation(ctx context.Context, violation m.Violation) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s\n", violationLine(violation))
}

// DisplayPlacementSummary prints the total number of misplaced tests.
func (s *SimpleUI) DisplayPlacementSummary(ctx context.Context, count int) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s\n", placementSummaryLine(count))
}

// DisplayOversizedFile prints a file over the line limit.
func (s *SimpleUI) DisplayOversizedFile(ctx context.Context, file m.OversizedFile) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s\n", oversizedLine(file))
}

// DisplaySizeSummary prints the offender table followed by the count.
func (s *SimpleUI) DisplaySizeSummary(ctx context.Context, files []m.OversizedFile) {
	if err := ctx.Err(); err != nil {
		return
	}

	if len(files) > 0 {
		s.printf("\n%s", renderSizeTable(files))
	}

	s.printf("%s\n", sizeSummaryLine(len(files)))
}

// DisplayBuildProfile announces the build configuration being checked.
func (s *SimpleUI) DisplayBuildProfile(ctx context.Context, profile m.BuildProfile) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s\n", buildProfileLine(profile))
}

// DisplayBuildProfileDone prints the outcome of one profile.
func (s *SimpleUI) DisplayBuildProfileDone(ctx context.Context, result m.BuildResult, denyWarnings bool, err error) {
	if ctx.Err() != nil {
		return
	}

	s.printf("%s\n", buildProfileDoneLine(result, denyWarnings, err))
}

// DisplayBuildSummary prints a table of profile results.
func (s *SimpleUI) DisplayBuildSummary(ctx context.Context, results []m.BuildResult, logPath m.Path, denyWarnings bool) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("\n%s", renderBuildTable(results, denyWarnings))
	s.printf("%s\n", buildSummaryLine(results, logPath, denyWarnings))
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func violationLine(v m.Violation) string {
	return fmt.Sprintf("Invalid test placement: %s:%d", v.Path, v.Line)
}

func placementSummaryLine(count int) string {
	return fmt.Sprintf("Found %d invalid test placements.", count)
}

func oversizedLine(f m.OversizedFile) string {
	return fmt.Sprintf("Oversized file: %s (%d lines, max %d)", f.Path, f.Lines, f.Max)
}

func sizeSummaryLine(count int) string {
	return fmt.Sprintf("Found %d oversized files.", count)
}

func buildProfileLine(p m.BuildProfile) string {
	if len(p.Args) == 0 {
		return fmt.Sprintf("Building profile %s", p.Name)
	}

	return fmt.Sprintf("Building profile %s (%s)", p.Name, strings.Join(p.Args, " "))
}

func buildProfileDoneLine(r m.BuildResult, denyWarnings bool, err error) string {
	if err != nil {
		return fmt.Sprintf("  %s: could not run: %v", r.Profile.Name, err)
	}

	return fmt.Sprintf("  %s: %s (%d errors, %d warnings)", r.Profile.Name, buildStatus(r, denyWarnings), r.Errors, r.Warnings)
}

func buildSummaryLine(results []m.BuildResult, logPath m.Path, denyWarnings bool) string {
	failed := 0

	for _, r := range results {
		if r.Failed(denyWarnings) {
			failed++
		}
	}

	if failed == 0 {
		return fmt.Sprintf("All %d build profiles are clean.", len(results))
	}

	return fmt.Sprintf("%d of %d build profiles failed, see %s", failed, len(results), logPath)
}

func renderSizeTable(files []m.OversizedFile) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Lines", "Max"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT})

	for _, f := range files {
		table.Append([]string{string(f.Path), fmt.Sprintf("%d", f.Lines), fmt.Sprintf("%d", f.Max)})
	}

	table.Render()

	return tableBuffer.String()
}

func renderBuildTable(results []m.BuildResult, denyWarnings bool) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Profile", "Errors", "Warnings", "Status"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_CENTER,
	})

	for _, r := range results {
		table.Append([]string{
			r.Profile.Name,
			fmt.Sprintf("%d", r.Errors),
			fmt.Sprintf("%d", r.Warnings),
			buildStatus(r, denyWarnings),
		})
	}

	table.Render()

	return tableBuffer.String()
}

func buildStatus(r m.BuildResult, denyWarnings bool) string {
	if r.Failed(denyWarnings) {
		return statusFail
	}

	return statusPass
}
