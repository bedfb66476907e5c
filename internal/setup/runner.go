package setup

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
)

// Runner executes external tools. Injectable so the execution layer is
// testable without invoking real processes.
type Runner interface {
	// Run executes name with args in dir (empty dir = current
	// directory) and blocks until it exits.
	Run(ctx context.Context, dir, name string, args ...string) error
}

// ExecRunner runs tools as real subprocesses with output forwarded to
// the installer's terminal, since several collaborators (npm, nvm) are
// interactive or print their own progress.
type ExecRunner struct {
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecRunner creates a runner wired to the process's own stdio.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{Stdout: os.Stdout, Stderr: os.Stderr}
}

// Run executes the tool and waits for it to exit.
func (r *ExecRunner) Run(ctx context.Context, dir, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	cmd.Stdin = os.Stdin
	return cmd.Run()
}

// exitCode extracts the process exit code from a Run error, or -1 when
// the tool did not run at all.
func exitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}
