// policy.go holds the platform invocation policy: whether a command line
// is handed to a shell or exec'd directly. The choice is baked in per
// platform and never exposed to callers, because it works around
// platform-specific hangs rather than expressing caller intent.
package procrun

import "strings"

// InvokeMode selects how a command-line string becomes a child process.
type InvokeMode int

const (
	// ModeDirect splits the command line into argv and execs it without
	// a shell.
	ModeDirect InvokeMode = iota

	// ModeShell runs the command line through "/bin/sh -c".
	ModeShell
)

// invokeModes maps GOOS values to the invocation mode used on that
// platform. darwin must go through a shell: interactive input methods
// (e.g. osascript prompts) hang when exec'd directly. linux must not:
// shell invocation has been observed to hang output capture under load.
// Unlisted platforms default to ModeDirect.
var invokeModes = map[string]InvokeMode{
	"darwin":  ModeShell,
	"linux":   ModeDirect,
	"windows": ModeDirect,
}

// ModeFor returns the invocation mode for the given GOOS value.
func ModeFor(goos string) InvokeMode {
	if mode, ok := invokeModes[goos]; ok {
		return mode
	}
	return ModeDirect
}

// buildArgv converts a command-line string into the argv actually spawned.
// Direct mode splits on whitespace; quoting is not interpreted, matching
// the host engine's historical behavior.
func buildArgv(mode InvokeMode, command string) []string {
	if mode == ModeShell {
		return []string{"/bin/sh", "-c", command}
	}
	return strings.Fields(command)
}
