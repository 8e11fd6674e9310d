package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"oaks.dev/pkg/hygiene/internal/adapter"
	"oaks.dev/pkg/hygiene/internal/controller"
	m "oaks.dev/pkg/hygiene/internal/model"
)

var (
	// ErrViolationsFound is returned when check-tests flags at least one marker.
	ErrViolationsFound = errors.New("invalid test placements found")
	// ErrOversizedFiles is returned when check-size flags at least one file.
	ErrOversizedFiles = errors.New("oversized files found")
	// ErrBuildFailed is returned when at least one build profile fails.
	ErrBuildFailed = errors.New("build failed")
)

// TestsArgs contains the arguments for the test-placement gate.
type TestsArgs struct {
	PlacementArgs
	// Report, when set, receives the violations as YAML.
	Report m.Path
}

// CheckArgs contains the arguments for running every gate.
type CheckArgs struct {
	Tests     TestsArgs
	Size      SizeArgs
	Build     BuildArgs
	SkipBuild bool
}

// Workflow runs the hygiene gates and maps their findings to gate errors.
type Workflow interface {
	CheckTests(ctx context.Context, args TestsArgs) error
	CheckSize(ctx context.Context, args SizeArgs) error
	CheckBuild(ctx context.Context, args BuildArgs) error
	CheckAll(ctx context.Context, args CheckArgs) error
}

type workflow struct {
	adapter.ReportStore
	ui        controller.UI
	placement PlacementChecker
	size      SizeChecker
	build     BuildChecker
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	reportStore adapter.ReportStore,
	ui controller.UI,
	placement PlacementChecker,
	size SizeChecker,
	build BuildChecker,
) Workflow {
	return &workflow{
		ReportStore: reportStore,
		ui:          ui,
		placement:   placement,
		size:        size,
		build:       build,
	}
}

func (w *workflow) CheckTests(ctx context.Context, args TestsArgs) error {
	violations, err := w.placement.Check(ctx, args.PlacementArgs)
	if err != nil {
		return err
	}

	if args.Report != "" {
		report := m.PlacementReport{
			Root:       args.Root,
			Count:      len(violations),
			Violations: violations,
		}

		if err := w.SavePlacementReport(args.Report, report); err != nil {
			return fmt.Errorf("save report: %w", err)
		}
	}

	if len(violations) > 0 {
		return fmt.Errorf("%w: %d", ErrViolationsFound, len(violations))
	}

	return nil
}

func (w *workflow) CheckSize(ctx context.Context, args SizeArgs) error {
	oversized, err := w.size.Check(ctx, args)
	if err != nil {
		return err
	}

	if len(oversized) > 0 {
		return fmt.Errorf("%w: %d", ErrOversizedFiles, len(oversized))
	}

	return nil
}

func (w *workflow) CheckBuild(ctx context.Context, args BuildArgs) error {
	results, err := w.build.Check(ctx, args)
	if err != nil {
		return err
	}

	failed := 0

	for _, r := range results {
		if r.Failed(args.DenyWarnings) {
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d profiles", ErrBuildFailed, failed, len(results))
	}

	return nil
}

// CheckAll runs every gate in order. Gate failures are collected and joined;
// an error that is not a gate failure stops the run.
func (w *workflow) CheckAll(ctx context.Context, args CheckArgs) error {
	type gate struct {
		title string
		run   func() error
	}

	gates := []gate{
		{"Test placement", func() error { return w.CheckTests(ctx, args.Tests) }},
		{"File size", func() error { return w.CheckSize(ctx, args.Size) }},
	}

	if !args.SkipBuild {
		gates = append(gates, gate{"Build", func() error { return w.CheckBuild(ctx, args.Build) }})
	}

	var failures []error

	for _, g := range gates {
		w.ui.DisplaySection(ctx, g.title)

		err := g.run()
		if err == nil {
			continue
		}

		if !IsGateFailure(err) {
			return errors.Join(append(failures, fmt.Errorf("%s: %w", g.title, err))...)
		}

		slog.Info("Gate failed", "gate", g.title, "error", err)
		failures = append(failures, err)
	}

	return errors.Join(failures...)
}

// IsGateFailure reports whether err means a gate found problems, as opposed to
// the check itself failing to run.
func IsGateFailure(err error) bool {
	return errors.Is(err, ErrViolationsFound) ||
		errors.Is(err, ErrOversizedFiles) ||
		errors.Is(err, ErrBuildFailed)
}
