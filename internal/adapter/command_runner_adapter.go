package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"
)

// ErrNotStarted is returned when the command could not be spawned at all,
// as opposed to running and exiting non-zero.
var ErrNotStarted = errors.New("command not started")

// CommandRunner abstracts spawning the external build tool.
type CommandRunner interface {
	// Run executes name with args in workDir and returns stdout and stderr
	// separately. A non-zero exit is reported through err together with the
	// captured output.
	Run(ctx context.Context, workDir, name string, args ...string) (stdout, stderr []byte, err error)
}

// LocalCommandRunner runs commands through os/exec with a per-call timeout.
type LocalCommandRunner struct {
	timeout time.Duration
}

// NewLocalCommandRunner constructs a LocalCommandRunner. A zero timeout
// disables the deadline.
func NewLocalCommandRunner(timeout time.Duration) *LocalCommandRunner {
	return &LocalCommandRunner{timeout: timeout}
}

// Run executes the command and captures its output.
func (a *LocalCommandRunner) Run(ctx context.Context, workDir, name string, args ...string) ([]byte, []byte, error) {
	if a.timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	// #nosec G204 - the build tool and its arguments come from the user's config
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = workDir

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return stdout.Bytes(), stderr.Bytes(), nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return stdout.Bytes(), stderr.Bytes(), fmt.Errorf("%s interrupted: %w", name, ctxErr)
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return stdout.Bytes(), stderr.Bytes(), fmt.Errorf("%w: %s: %w", ErrNotStarted, name, err)
	}

	return stdout.Bytes(), stderr.Bytes(), err
}
