package domain_test

import (
	"errors"
	"testing"

	"github.com/doeshing/buildconsole/internal/domain"
)

func TestOutcomeString(t *testing.T) {
	tests := []struct {
		name    string
		outcome domain.Outcome
		want    string
		success bool
	}{
		{name: "ok", outcome: domain.Outcome{}, want: "[exit 0] ok", success: true},
		{name: "exit code", outcome: domain.Outcome{Raw: 2 << 8, ExitCode: 2}, want: "[exit 2]"},
		{name: "named signal", outcome: domain.Outcome{Raw: 11, Signaled: true, Signal: 11, SignalName: "SIGSEGV"}, want: "[signal SIGSEGV (11)]"},
		{name: "unnamed signal", outcome: domain.Outcome{Raw: 77, Signaled: true, Signal: 77}, want: "[signal 77] raw status 77"},
		{name: "not started", outcome: domain.Outcome{ExitCode: 127, Err: errors.New("no such file")}, want: "[failed to start: no such file]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.outcome.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
			if got := tt.outcome.Success(); got != tt.success {
				t.Errorf("Success() = %v, want %v", got, tt.success)
			}
		})
	}
}

func TestInvocationCommandString(t *testing.T) {
	inv := domain.Invocation{Args: []string{"gcc", "-O3", "-o", "min-terminal"}}
	if got := inv.CommandString(); got != "gcc -O3 -o min-terminal" {
		t.Errorf("CommandString() = %q", got)
	}
}

func TestShellPathFallsBackToName(t *testing.T) {
	target := domain.TargetSettings{Shells: map[string]string{"bash": "/bin/bash"}}
	if got := target.ShellPath(domain.ShellBash); got != "/bin/bash" {
		t.Errorf("bash path = %q", got)
	}
	if got := target.ShellPath(domain.ShellNu); got != "nu" {
		t.Errorf("nu path = %q", got)
	}
}
