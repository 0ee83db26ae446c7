package domain_test

import (
	"testing"

	"github.com/doeshing/buildconsole/internal/domain"
)

func TestNewSessionDefaults(t *testing.T) {
	s := domain.NewSession()
	if s.Shell() != domain.ShellBash {
		t.Errorf("got shell %s, want bash", s.Shell())
	}
	if s.MemcheckEnabled() {
		t.Error("memcheck should start disabled")
	}
}

func TestToggleMemcheckTwiceIsIdentity(t *testing.T) {
	for _, start := range []bool{false, true} {
		s := domain.NewSession()
		if start {
			s.ToggleMemcheck()
		}
		s.ToggleMemcheck()
		s.ToggleMemcheck()
		if s.MemcheckEnabled() != start {
			t.Errorf("start %v: got %v after two toggles", start, s.MemcheckEnabled())
		}
	}
}

func TestSetShellIgnoresUnknown(t *testing.T) {
	s := domain.NewSession()
	s.SetShell(domain.ShellNu)
	s.SetShell(domain.Shell("fish"))
	if s.Shell() != domain.ShellNu {
		t.Errorf("got shell %s, want nu", s.Shell())
	}
}

func TestParseShell(t *testing.T) {
	tests := []struct {
		in        string
		want      domain.Shell
		wantError bool
	}{
		{in: "bash", want: domain.ShellBash},
		{in: "nu", want: domain.ShellNu},
		{in: "zsh", wantError: true},
		{in: "", wantError: true},
	}
	for _, tt := range tests {
		got, err := domain.ParseShell(tt.in)
		if tt.wantError {
			if err == nil {
				t.Errorf("ParseShell(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseShell(%q) = %s, %v; want %s", tt.in, got, err, tt.want)
		}
	}
}
