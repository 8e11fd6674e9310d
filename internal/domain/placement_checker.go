package domain

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"
	"oaks.dev/pkg/hygiene/internal/adapter"
	"oaks.dev/pkg/hygiene/internal/controller"
	m "oaks.dev/pkg/hygiene/internal/model"
)

// PlacementArgs contains the arguments for a test-placement scan.
type PlacementArgs struct {
	Root    m.Path
	Exclude []string
	// Threads above 1 scans files concurrently; output order is unchanged.
	Threads int
}

// PlacementChecker walks a tree and reports test markers outside the test directory.
type PlacementChecker interface {
	Check(ctx context.Context, args PlacementArgs) ([]m.Violation, error)
}

type placementChecker struct {
	fs      adapter.SourceFSAdapter
	ui      controller.UI
	scanner *PlacementScanner
}

// NewPlacementChecker constructs a PlacementChecker for rules.
func NewPlacementChecker(fs adapter.SourceFSAdapter, ui controller.UI, rules PlacementRules) PlacementChecker {
	return &placementChecker{
		fs:      fs,
		ui:      ui,
		scanner: NewPlacementScanner(rules),
	}
}

// Check scans args.Root. Violations are displayed as they are found and the
// summary line is printed once the walk completes; filesystem errors abort the
// scan without a summary.
func (c *placementChecker) Check(ctx context.Context, args PlacementArgs) ([]m.Violation, error) {
	if err := c.fs.EnsureDir(args.Root); err != nil {
		return nil, fmt.Errorf("scan root: %w", err)
	}

	slog.Debug("Starting test placement scan", "root", args.Root, "threads", args.Threads)

	var (
		violations []m.Violation
		err        error
	)

	if args.Threads > 1 {
		violations, err = c.checkParallel(ctx, args)
	} else {
		violations, err = c.checkSerial(ctx, args)
	}

	if err != nil {
		slog.Error("Test placement scan failed", "root", args.Root, "error", err)
		return nil, err
	}

	c.ui.DisplayPlacementSummary(ctx, len(violations))
	slog.Info("Test placement scan finished", "root", args.Root, "violations", len(violations))

	return violations, nil
}

func (c *placementChecker) checkSerial(ctx context.Context, args PlacementArgs) ([]m.Violation, error) {
	var violations []m.Violation

	err := c.fs.Walk(ctx, args.Root, args.Exclude, func(path m.Path) error {
		candidate := m.NewCandidate(args.Root, path)
		if !c.scanner.Eligible(candidate) {
			return nil
		}

		found, err := c.scanFile(path)
		if err != nil {
			return err
		}

		for _, v := range found {
			c.ui.DisplayViolation(ctx, v)
		}

		violations = append(violations, found...)

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk source tree: %w", err)
	}

	return violations, nil
}

func (c *placementChecker) checkParallel(ctx context.Context, args PlacementArgs) ([]m.Violation, error) {
	var paths []m.Path

	err := c.fs.Walk(ctx, args.Root, args.Exclude, func(path m.Path) error {
		if c.scanner.Eligible(m.NewCandidate(args.Root, path)) {
			paths = append(paths, path)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk source tree: %w", err)
	}

	// One slot per file keeps walk order regardless of completion order.
	perFile := make([][]m.Violation, len(paths))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(args.Threads)

	for i, path := range paths {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			found, err := c.scanFile(path)
			if err != nil {
				return err
			}

			perFile[i] = found

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("scan source tree: %w", err)
	}

	var violations []m.Violation

	for _, found := range perFile {
		for _, v := range found {
			c.ui.DisplayViolation(ctx, v)
		}

		violations = append(violations, found...)
	}

	return violations, nil
}

func (c *placementChecker) scanFile(path m.Path) ([]m.Violation, error) {
	lines, err := c.fs.ReadLines(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	found := c.scanner.Scan(path, lines)
	if len(found) > 0 {
		slog.Debug("Misplaced tests found", "path", path, "count", len(found))
	}

	return found, nil
}
