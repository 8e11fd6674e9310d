package domain

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"oaks.dev/pkg/hygiene/internal/adapter"
	"oaks.dev/pkg/hygiene/internal/adapter/mocks"
	m "oaks.dev/pkg/hygiene/internal/model"
)

func TestSizeChecker_Check(t *testing.T) {
	root := t.TempDir()
	big := writeSource(t, root, "src/big.rs", filler(12)...)
	writeSource(t, root, "src/exact.rs", filler(10)...)
	writeSource(t, root, "src/small.rs", filler(3)...)
	writeSource(t, root, "docs/huge.md", filler(50)...)
	writeSource(t, root, "target/gen.rs", filler(50)...)

	ui := &recordingUI{}
	checker := NewSizeChecker(adapter.NewLocalSourceFSAdapter(), ui)

	oversized, err := checker.Check(context.Background(), SizeArgs{
		Root:       m.Path(root),
		Exclude:    []string{"target"},
		Extensions: []string{".rs"},
		MaxLines:   10,
	})
	require.NoError(t, err)

	want := []m.OversizedFile{{Path: m.Path(big), Lines: 12, Max: 10}}
	assert.Equal(t, want, oversized)
	assert.Equal(t, want, ui.oversized)
	require.Len(t, ui.sizeSummary, 1)
	assert.Equal(t, want, ui.sizeSummary[0])
}

func TestSizeChecker_MultipleExtensions(t *testing.T) {
	root := t.TempDir()
	writeSource(t, root, "a.rs", filler(3)...)
	writeSource(t, root, "b.py", filler(3)...)
	writeSource(t, root, "c.go", filler(3)...)

	oversized, err := NewSizeChecker(adapter.NewLocalSourceFSAdapter(), &recordingUI{}).Check(context.Background(), SizeArgs{
		Root:       m.Path(root),
		Extensions: []string{".rs", ".py"},
		MaxLines:   2,
	})
	require.NoError(t, err)
	assert.Len(t, oversized, 2)
}

func TestSizeChecker_Errors(t *testing.T) {
	t.Run("non-positive limit", func(t *testing.T) {
		_, err := NewSizeChecker(nil, &recordingUI{}).Check(context.Background(), SizeArgs{Root: "/ws", MaxLines: 0})
		assert.Error(t, err)
	})

	t.Run("count error is fatal", func(t *testing.T) {
		countErr := errors.New("io failure")
		fs := mocks.NewMockSourceFSAdapter(t)
		fs.EXPECT().EnsureDir(m.Path("/ws")).Return(nil)
		fs.EXPECT().Walk(mock.Anything, m.Path("/ws"), mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, _ m.Path, _ []string, fn adapter.WalkFunc) error {
				return fn("/ws/src/lib.rs")
			})
		fs.EXPECT().CountLines(m.Path("/ws/src/lib.rs")).Return(0, countErr)

		ui := &recordingUI{}
		_, err := NewSizeChecker(fs, ui).Check(context.Background(), SizeArgs{
			Root:       "/ws",
			Extensions: []string{".rs"},
			MaxLines:   10,
		})
		require.ErrorIs(t, err, countErr)
		assert.Empty(t, ui.sizeSummary)
	})
}
