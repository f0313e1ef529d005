package execution

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"syscall"
)

// ProcessError reports a non-zero exit of the external command. The
// command's stdout is deliberately suppressed in this case: a non-zero
// exit is an infrastructure error, not a comparable test result.
type ProcessError struct {
	ExitCode int
	Stderr   string
}

func (e *ProcessError) Error() string {
	return fmt.Sprintf("error occurred, return code %d: %s", e.ExitCode, e.Stderr)
}

// ErrInterrupted is returned when the run is cancelled while a child
// process is in flight. The whole run aborts on it, with exit status 0.
var ErrInterrupted = errors.New("run interrupted")

// Runner executes one external command per call, through a shell, in
// its own process group so descendants can be terminated as a unit.
type Runner struct {
	shell string
}

// NewRunner creates a Runner using the given shell binary
func NewRunner(shell string) *Runner {
	return &Runner{shell: shell}
}

// Execute runs commandLine through the shell and blocks until it
// terminates, returning the complete stdout and stderr text. A
// non-zero exit yields a *ProcessError carrying the code and stderr.
// Cancelling ctx sends SIGTERM to the child's entire process group and
// returns ErrInterrupted.
func (r *Runner) Execute(ctx context.Context, commandLine string) (stdout, stderr string, err error) {
	if ctx.Err() != nil {
		return "", "", ErrInterrupted
	}

	cmd := exec.Command(r.shell, "-c", commandLine)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	if err := cmd.Start(); err != nil {
		return "", "", fmt.Errorf("start command: %w", err)
	}

	// The child leads its own group, so pgid == pid.
	pgid := cmd.Process.Pid

	// Runs on every exit path: if the child was never reaped, signal
	// the whole group so no orphaned descendants survive the call.
	defer func() {
		if cmd.ProcessState == nil {
			_ = syscall.Kill(-pgid, syscall.SIGTERM)
		}
	}()

	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()

	select {
	case <-ctx.Done():
		_ = syscall.Kill(-pgid, syscall.SIGTERM)
		<-done
		return "", "", ErrInterrupted
	case waitErr := <-done:
		if waitErr != nil {
			var exitErr *exec.ExitError
			if errors.As(waitErr, &exitErr) {
				return "", "", &ProcessError{ExitCode: exitErr.ExitCode(), Stderr: errBuf.String()}
			}
			return "", "", fmt.Errorf("wait for command: %w", waitErr)
		}
		return outBuf.String(), errBuf.String(), nil
	}
}
