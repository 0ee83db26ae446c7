package domain

import "fmt"

// Shell enumerates the shells the target program can be launched with.
type Shell string

const (
	ShellBash Shell = "bash"
	ShellNu   Shell = "nu"
)

// Shells lists the supported shells in menu order.
var Shells = []Shell{ShellBash, ShellNu}

// ParseShell maps a user or config token onto a Shell.
func ParseShell(s string) (Shell, error) {
	switch Shell(s) {
	case ShellBash, ShellNu:
		return Shell(s), nil
	default:
		return "", fmt.Errorf("unsupported shell %q", s)
	}
}

// Session is the mutable state of one console run. It is owned by the
// console and never persisted.
type Session struct {
	shell    Shell
	memcheck bool
}

// NewSession returns a session with the start-up defaults.
func NewSession() *Session {
	return &Session{shell: ShellBash}
}

// Shell reports the shell the target program will be launched with.
func (s *Session) Shell() Shell {
	return s.shell
}

// SetShell selects the shell used when running the target program.
// Unknown values are ignored so the session always holds a valid shell.
func (s *Session) SetShell(shell Shell) {
	if _, err := ParseShell(string(shell)); err != nil {
		return
	}
	s.shell = shell
}

// MemcheckEnabled reports whether run commands are wrapped with the
// memory checker.
func (s *Session) MemcheckEnabled() bool {
	return s.memcheck
}

// ToggleMemcheck flips the memory checker on or off.
func (s *Session) ToggleMemcheck() {
	s.memcheck = !s.memcheck
}
