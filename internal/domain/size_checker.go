package domain

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"oaks.dev/pkg/hygiene/internal/adapter"
	"oaks.dev/pkg/hygiene/internal/controller"
	m "oaks.dev/pkg/hygiene/internal/model"
)

// SizeArgs contains the arguments for an oversized-file scan.
type SizeArgs struct {
	Root       m.Path
	Exclude    []string
	Extensions []string
	MaxLines   int
}

// SizeChecker flags source files longer than a line limit.
type SizeChecker interface {
	Check(ctx context.Context, args SizeArgs) ([]m.OversizedFile, error)
}

type sizeChecker struct {
	fs adapter.SourceFSAdapter
	ui controller.UI
}

// NewSizeChecker constructs a SizeChecker.
func NewSizeChecker(fs adapter.SourceFSAdapter, ui controller.UI) SizeChecker {
	return &sizeChecker{fs: fs, ui: ui}
}

func (c *sizeChecker) Check(ctx context.Context, args SizeArgs) ([]m.OversizedFile, error) {
	if args.MaxLines <= 0 {
		return nil, fmt.Errorf("max lines must be positive, got %d", args.MaxLines)
	}

	if err := c.fs.EnsureDir(args.Root); err != nil {
		return nil, fmt.Errorf("scan root: %w", err)
	}

	exts := make(map[string]bool, len(args.Extensions))
	for _, ext := range args.Extensions {
		exts[ext] = true
	}

	var oversized []m.OversizedFile

	err := c.fs.Walk(ctx, args.Root, args.Exclude, func(path m.Path) error {
		if !exts[filepath.Ext(string(path))] {
			return nil
		}

		lines, err := c.fs.CountLines(path)
		if err != nil {
			return fmt.Errorf("count lines %s: %w", path, err)
		}

		if lines <= args.MaxLines {
			return nil
		}

		file := m.OversizedFile{Path: path, Lines: lines, Max: args.MaxLines}
		c.ui.DisplayOversizedFile(ctx, file)
		oversized = append(oversized, file)

		return nil
	})
	if err != nil {
		slog.Error("Size scan failed", "root", args.Root, "error", err)
		return nil, fmt.Errorf("walk source tree: %w", err)
	}

	c.ui.DisplaySizeSummary(ctx, oversized)
	slog.Info("Size scan finished", "root", args.Root, "oversized", len(oversized), "max_lines", args.MaxLines)

	return oversized, nil
}
