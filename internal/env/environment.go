// Package env is the host-environment facade exposed to the embedded
// scripting engine. It bundles timed command execution, whole-file
// reads, existence checks, and the one-line diagnostics string behind a
// single type so the engine binding has one collaborator to hold.
//
// File operations fail silently: a missing or unreadable file reads as
// empty text and the caller cannot distinguish that from an empty file.
// That contract is load-bearing for existing scripts and must not grow
// an error surface.
package env

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/hostbridge/scripthost/internal/bytefmt"
	"github.com/hostbridge/scripthost/internal/meminfo"
	"github.com/hostbridge/scripthost/internal/procrun"
	"github.com/hostbridge/scripthost/internal/version"
)

// MemoryProbe reports the current process's virtual and resident memory
// in bytes. Injected in tests; defaults to meminfo.Usage.
type MemoryProbe func(ctx context.Context) (virtualBytes, residentBytes uint64, err error)

// HostLib identifies the host library the plugin is embedded in. The
// version is resolved lazily because the host library may not be
// initialized when the Environment is constructed.
type HostLib struct {
	// Name of the host library, e.g. "libRime".
	Name string

	// Version returns the host library's version string, treated as opaque.
	Version func() string
}

// Environment provides host-side services to the scripting engine.
type Environment struct {
	logger  *slog.Logger
	runner  *procrun.Runner
	hostLib HostLib
	probe   MemoryProbe
}

// New creates an Environment backed by the real process runner and
// memory probe.
func New(logger *slog.Logger, hostLib HostLib) *Environment {
	return &Environment{
		logger:  logger,
		runner:  procrun.New(logger),
		hostLib: hostLib,
		probe:   meminfo.Usage,
	}
}

// Popen runs command with the given timeout and returns (output, error
// text). Exactly one of the two is non-empty, except that a successful
// command with no output yields two empty strings; scripts depend on
// that historical behavior.
func (e *Environment) Popen(ctx context.Context, command string, timeout time.Duration) (string, string) {
	if command == "" {
		return "", "Command is empty"
	}

	out := e.runner.Run(ctx, command, timeout)
	if out.TimedOut {
		return "", fmt.Sprintf("popen timed-out with command = [%s] in %dms",
			command, timeout.Milliseconds())
	}
	if out.Stderr != "" {
		return "", fmt.Sprintf("popen failed with command = [%s]: exitCode = %d, err = %s",
			command, out.ExitCode, out.Stderr)
	}
	return out.Stdout, ""
}

// LoadFile reads the whole file at path and returns its content as text.
// Empty path, missing file, or any read failure returns "".
func (e *Environment) LoadFile(path string) string {
	if path == "" {
		return ""
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return string(data)
}

// FileExists reports whether an entry exists at path.
func (e *Environment) FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Info returns the one-line diagnostics string: host library version,
// plugin version, and the process's resident memory. A failed memory
// probe logs a warning and reports zero bytes rather than failing.
func (e *Environment) Info(ctx context.Context) string {
	var resident uint64
	_, rss, err := e.probe(ctx)
	if err != nil {
		e.logger.Warn("memory probe failed", slog.String("error", err.Error()))
	} else {
		resident = rss
	}

	return fmt.Sprintf("%s v%s | scripthost v%s | Process RSS Mem: %s",
		e.hostLib.Name, e.hostLib.Version(), version.Version, bytefmt.Format(resident))
}
