// result.go defines the subprocess invocation result structure.
// It captures everything the scripting engine needs to know about a
// finished (or killed) child process: exit code, captured output streams,
// and whether the timeout fired.
package procrun

// InvalidExitCode is the sentinel exit code reported when no real exit
// code exists: empty command, spawn failure, or forced termination.
const InvalidExitCode = -1

// Outcome holds the result of a single command invocation.
// It is constructed fresh per call and never mutated afterwards.
type Outcome struct {
	// ExitCode is the process exit code. InvalidExitCode indicates
	// timeout, spawn failure, or signal death.
	ExitCode int `json:"exit_code"`

	// Stdout contains the captured standard output, truncated at
	// MaxCaptureBytes.
	Stdout string `json:"stdout"`

	// Stderr contains the captured standard error, or the fault message
	// when spawning or waiting failed. Empty on the timeout path: the
	// child may still be tearing down and its stderr stream can stay
	// open indefinitely, so it is never drained after a kill.
	Stderr string `json:"stderr"`

	// TimedOut is true if the child was killed because the timeout elapsed.
	TimedOut bool `json:"timed_out"`
}
