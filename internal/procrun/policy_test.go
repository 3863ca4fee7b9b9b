// policy_test.go tests the platform invocation policy table and argv
// construction without spawning any processes.
package procrun

import (
	"reflect"
	"testing"
)

func TestModeFor(t *testing.T) {
	tests := []struct {
		goos string
		want InvokeMode
	}{
		{"darwin", ModeShell},
		{"linux", ModeDirect},
		{"windows", ModeDirect},
		{"freebsd", ModeDirect}, // unlisted platforms default to direct
		{"", ModeDirect},
	}

	for _, tt := range tests {
		if got := ModeFor(tt.goos); got != tt.want {
			t.Errorf("ModeFor(%q) = %v, want %v", tt.goos, got, tt.want)
		}
	}
}

func TestBuildArgv(t *testing.T) {
	tests := []struct {
		name    string
		mode    InvokeMode
		command string
		want    []string
	}{
		{"shell wraps verbatim", ModeShell, "echo a b", []string{"/bin/sh", "-c", "echo a b"}},
		{"direct splits fields", ModeDirect, "echo a b", []string{"echo", "a", "b"}},
		{"direct collapses whitespace", ModeDirect, "  ls   -la  ", []string{"ls", "-la"}},
		{"shell keeps operators", ModeShell, "true && echo ok", []string{"/bin/sh", "-c", "true && echo ok"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildArgv(tt.mode, tt.command)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("buildArgv(%v, %q) = %v, want %v", tt.mode, tt.command, got, tt.want)
			}
		})
	}
}
