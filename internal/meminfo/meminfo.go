// Package meminfo probes the current process's memory usage for the
// diagnostics line. It uses gopsutil v4, matching how the rest of the
// host tooling reads system state, and exposes exactly two numbers:
// virtual size and resident set size, both in bytes.
package meminfo

import (
	"context"
	"os"

	"github.com/shirou/gopsutil/v4/process"
)

// Usage returns the current process's virtual memory size and resident
// set size in bytes.
func Usage(ctx context.Context) (virtualBytes, residentBytes uint64, err error) {
	proc, err := process.NewProcessWithContext(ctx, int32(os.Getpid()))
	if err != nil {
		return 0, 0, err
	}

	info, err := proc.MemoryInfoWithContext(ctx)
	if err != nil {
		return 0, 0, err
	}

	return info.VMS, info.RSS, nil
}
