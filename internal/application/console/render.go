package console

import (
	"fmt"
	"io"

	"github.com/doeshing/buildconsole/internal/domain"
)

const menuRule = "----------------"

// RenderStatus prints the session banner. The memcheck slot is left blank
// when disabled, so the banner keeps a fixed shape.
func RenderStatus(out io.Writer, s *domain.Session) {
	memcheck := ""
	if s.MemcheckEnabled() {
		memcheck = "memcheck"
	}
	fmt.Fprintf(out, "=== shell: %s %s ===\n", s.Shell(), memcheck)
}

// RenderMenu prints the command table in registration order.
func RenderMenu(out io.Writer, r *Registry) {
	fmt.Fprintln(out, menuRule)
	for _, e := range r.Entries() {
		fmt.Fprintf(out, "%8s %s\n", e.Key, e.Description)
	}
	fmt.Fprintln(out, menuRule)
}

// RenderOutcome prints the one-line result of a child process.
func RenderOutcome(out io.Writer, o domain.Outcome) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, o.String())
}
