package domain

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
	"oaks.dev/pkg/hygiene/internal/adapter"
	m "oaks.dev/pkg/hygiene/internal/model"
)

type stubPlacement struct {
	violations []m.Violation
	err        error
}

func (s stubPlacement) Check(context.Context, PlacementArgs) ([]m.Violation, error) {
	return s.violations, s.err
}

type stubSize struct {
	oversized []m.OversizedFile
	err       error
}

func (s stubSize) Check(context.Context, SizeArgs) ([]m.OversizedFile, error) {
	return s.oversized, s.err
}

type stubBuild struct {
	results []m.BuildResult
	err     error
	calls   *int
}

func (s stubBuild) Check(context.Context, BuildArgs) ([]m.BuildResult, error) {
	if s.calls != nil {
		*s.calls++
	}

	return s.results, s.err
}

func newStubWorkflow(ui *recordingUI, placement stubPlacement, size stubSize, build stubBuild) Workflow {
	store := adapter.NewReportStore(adapter.NewLocalSourceFSAdapter())
	return NewWorkflow(store, ui, placement, size, build)
}

func TestWorkflow_CheckTests(t *testing.T) {
	t.Run("clean tree", func(t *testing.T) {
		wf := newStubWorkflow(&recordingUI{}, stubPlacement{}, stubSize{}, stubBuild{})
		assert.NoError(t, wf.CheckTests(context.Background(), TestsArgs{}))
	})

	t.Run("violations map to sentinel", func(t *testing.T) {
		placement := stubPlacement{violations: []m.Violation{{Path: "src/lib.rs", Line: 3}}}
		wf := newStubWorkflow(&recordingUI{}, placement, stubSize{}, stubBuild{})

		err := wf.CheckTests(context.Background(), TestsArgs{})
		assert.ErrorIs(t, err, ErrViolationsFound)
	})

	t.Run("scan error passes through", func(t *testing.T) {
		scanErr := errors.New("walk failed")
		wf := newStubWorkflow(&recordingUI{}, stubPlacement{err: scanErr}, stubSize{}, stubBuild{})

		err := wf.CheckTests(context.Background(), TestsArgs{})
		require.ErrorIs(t, err, scanErr)
		assert.NotErrorIs(t, err, ErrViolationsFound)
	})

	t.Run("report is written", func(t *testing.T) {
		reportPath := filepath.Join(t.TempDir(), "out", "placement.yaml")
		placement := stubPlacement{violations: []m.Violation{
			{Path: "src/lib.rs", Line: 3, Text: "#[test]"},
			{Path: "src/lex.rs", Line: 9, Text: "#[cfg(test)]"},
		}}
		wf := newStubWorkflow(&recordingUI{}, placement, stubSize{}, stubBuild{})

		err := wf.CheckTests(context.Background(), TestsArgs{
			PlacementArgs: PlacementArgs{Root: "/ws"},
			Report:        m.Path(reportPath),
		})
		require.ErrorIs(t, err, ErrViolationsFound)

		data, err := os.ReadFile(reportPath)
		require.NoError(t, err)

		var report m.PlacementReport
		require.NoError(t, yaml.Unmarshal(data, &report))
		assert.Equal(t, m.Path("/ws"), report.Root)
		assert.Equal(t, 2, report.Count)
		assert.Equal(t, placement.violations, report.Violations)
	})
}

func TestWorkflow_CheckSize(t *testing.T) {
	wf := newStubWorkflow(&recordingUI{}, stubPlacement{}, stubSize{}, stubBuild{})
	assert.NoError(t, wf.CheckSize(context.Background(), SizeArgs{}))

	wf = newStubWorkflow(&recordingUI{}, stubPlacement{}, stubSize{oversized: []m.OversizedFile{{Path: "a.rs"}}}, stubBuild{})
	assert.ErrorIs(t, wf.CheckSize(context.Background(), SizeArgs{}), ErrOversizedFiles)
}

func TestWorkflow_CheckBuild(t *testing.T) {
	clean := m.BuildResult{Profile: m.BuildProfile{Name: "default"}, Finished: true, Success: true}
	warned := m.BuildResult{Profile: m.BuildProfile{Name: "all"}, Finished: true, Success: true, Warnings: 2}

	t.Run("clean profiles", func(t *testing.T) {
		wf := newStubWorkflow(&recordingUI{}, stubPlacement{}, stubSize{}, stubBuild{results: []m.BuildResult{clean, warned}})
		assert.NoError(t, wf.CheckBuild(context.Background(), BuildArgs{}))
	})

	t.Run("warnings denied", func(t *testing.T) {
		wf := newStubWorkflow(&recordingUI{}, stubPlacement{}, stubSize{}, stubBuild{results: []m.BuildResult{clean, warned}})

		err := wf.CheckBuild(context.Background(), BuildArgs{DenyWarnings: true})
		require.ErrorIs(t, err, ErrBuildFailed)
		assert.Contains(t, err.Error(), "1 of 2 profiles")
	})
}

func TestWorkflow_CheckAll(t *testing.T) {
	failing := m.BuildResult{Profile: m.BuildProfile{Name: "default"}, Errors: 1}

	t.Run("joins every failed gate", func(t *testing.T) {
		ui := &recordingUI{}
		wf := newStubWorkflow(ui,
			stubPlacement{violations: []m.Violation{{Path: "src/lib.rs", Line: 1}}},
			stubSize{oversized: []m.OversizedFile{{Path: "src/big.rs"}}},
			stubBuild{results: []m.BuildResult{failing}},
		)

		err := wf.CheckAll(context.Background(), CheckArgs{})
		assert.ErrorIs(t, err, ErrViolationsFound)
		assert.ErrorIs(t, err, ErrOversizedFiles)
		assert.ErrorIs(t, err, ErrBuildFailed)
		assert.Equal(t, []string{"Test placement", "File size", "Build"}, ui.sections)
	})

	t.Run("skip build", func(t *testing.T) {
		calls := 0
		ui := &recordingUI{}
		wf := newStubWorkflow(ui, stubPlacement{}, stubSize{}, stubBuild{results: []m.BuildResult{failing}, calls: &calls})

		assert.NoError(t, wf.CheckAll(context.Background(), CheckArgs{SkipBuild: true}))
		assert.Equal(t, 0, calls)
		assert.Equal(t, []string{"Test placement", "File size"}, ui.sections)
	})

	t.Run("fatal error stops remaining gates", func(t *testing.T) {
		calls := 0
		sizeErr := errors.New("disk gone")
		wf := newStubWorkflow(&recordingUI{},
			stubPlacement{violations: []m.Violation{{Path: "src/lib.rs", Line: 1}}},
			stubSize{err: sizeErr},
			stubBuild{calls: &calls},
		)

		err := wf.CheckAll(context.Background(), CheckArgs{})
		assert.ErrorIs(t, err, sizeErr)
		assert.ErrorIs(t, err, ErrViolationsFound)
		assert.Contains(t, err.Error(), "File size")
		assert.Equal(t, 0, calls)
	})
}
