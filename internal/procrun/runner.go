// runner.go implements timed subprocess execution with output capture.
// A worker goroutine waits on the child while the caller blocks up to the
// timeout; on expiry the child's whole process group is killed so no
// grandchildren survive. All failures (empty command, spawn fault, timeout,
// non-zero exit) are reported as data in the Outcome, never as a returned
// error.
package procrun

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os/exec"
	"runtime"
	"strings"
	"syscall"
	"time"
)

// MaxCaptureBytes caps how much of each output stream is kept.
// Output beyond the cap is silently discarded; high-output commands
// are truncated rather than growing memory without bound.
const MaxCaptureBytes = 1024 * 1024

// Spawner starts a prepared command. Injected in tests to count spawns
// and to fault-inject without touching the OS.
type Spawner func(cmd *exec.Cmd) error

// Runner executes command lines with a timeout and bounded output capture.
type Runner struct {
	logger *slog.Logger
	mode   InvokeMode
	spawn  Spawner
}

// New creates a Runner using the invocation policy for the current platform.
func New(logger *slog.Logger) *Runner {
	return &Runner{
		logger: logger,
		mode:   ModeFor(runtime.GOOS),
		spawn:  func(cmd *exec.Cmd) error { return cmd.Start() },
	}
}

// NewWithSpawner creates a Runner with an explicit invocation mode and
// spawner. Used by tests; production code should use New.
func NewWithSpawner(logger *slog.Logger, mode InvokeMode, spawn Spawner) *Runner {
	return &Runner{logger: logger, mode: mode, spawn: spawn}
}

// Run executes command with the given timeout and returns the outcome.
// A zero timeout means fire-and-forget: the child is spawned, its result
// is not wanted, and the outcome carries exit code 0 with no output.
// Cancelling ctx terminates the child the same way timeout expiry does.
// Run never returns an error; inspect the Outcome fields instead.
func (r *Runner) Run(ctx context.Context, command string, timeout time.Duration) Outcome {
	if strings.TrimSpace(command) == "" {
		return Outcome{ExitCode: InvalidExitCode, Stderr: "command is empty"}
	}

	argv := buildArgv(r.mode, command)

	if timeout == 0 {
		return r.fireAndForget(argv, command)
	}

	cmd := exec.Command(argv[0], argv[1:]...)

	// New process group so the timeout kill reaches all children.
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &limitWriter{buf: &stdout, limit: MaxCaptureBytes}
	cmd.Stderr = &limitWriter{buf: &stderr, limit: MaxCaptureBytes}

	// WaitDelay unblocks Wait if an escaped orphan keeps a pipe open
	// after the child itself has exited.
	cmd.WaitDelay = 5 * time.Second

	if err := r.spawn(cmd); err != nil {
		r.logger.Error("process spawn failed",
			slog.String("command", command),
			slog.String("error", err.Error()),
		)
		return Outcome{ExitCode: InvalidExitCode, Stderr: err.Error()}
	}

	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	var out Outcome
	var waitErr error
	select {
	case waitErr = <-done:
	case <-timer.C:
		out.TimedOut = true
	case <-ctx.Done():
		out.TimedOut = true
	}

	if out.TimedOut {
		r.logger.Warn("process timed out, killing process group",
			slog.String("command", command),
			slog.Duration("timeout", timeout),
		)
		killGroup(cmd)
		// Join the wait worker so the capture buffers are quiescent
		// before reading them.
		<-done
		out.ExitCode = InvalidExitCode
		out.Stdout = stdout.String()
		// Stderr intentionally left empty, see Outcome.Stderr.
		return out
	}

	out.Stdout = stdout.String()
	out.Stderr = stderr.String()

	if waitErr != nil {
		var exitErr *exec.ExitError
		if errors.As(waitErr, &exitErr) {
			out.ExitCode = exitErr.ExitCode()
			return out
		}
		// IO or wait fault rather than an ordinary non-zero exit.
		r.logger.Error("process wait failed",
			slog.String("command", command),
			slog.String("error", waitErr.Error()),
		)
		out.ExitCode = InvalidExitCode
		if out.Stderr == "" {
			out.Stderr = waitErr.Error()
		}
		return out
	}

	out.ExitCode = 0
	return out
}

// fireAndForget spawns the child without pipes and returns immediately.
// A detached wait reaps the child so it cannot linger as a zombie.
func (r *Runner) fireAndForget(argv []string, command string) Outcome {
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	if err := r.spawn(cmd); err != nil {
		r.logger.Error("process spawn failed",
			slog.String("command", command),
			slog.String("error", err.Error()),
		)
		return Outcome{ExitCode: InvalidExitCode, Stderr: err.Error()}
	}

	go func() { _ = cmd.Wait() }()
	return Outcome{}
}

// killGroup kills the child's entire process group (negative PID).
func killGroup(cmd *exec.Cmd) {
	if cmd.Process == nil {
		return
	}
	_ = syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
}

// limitWriter writes up to limit bytes to buf, then silently discards
// the rest while still reporting all bytes as consumed so the exec
// package's copiers never see a short write.
type limitWriter struct {
	buf   *bytes.Buffer
	limit int
}

func (w *limitWriter) Write(p []byte) (int, error) {
	remaining := w.limit - w.buf.Len()
	if remaining <= 0 {
		return len(p), nil
	}
	if len(p) > remaining {
		w.buf.Write(p[:remaining])
		return len(p), nil
	}
	return w.buf.Write(p)
}
