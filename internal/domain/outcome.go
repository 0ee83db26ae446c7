package domain

import "fmt"

// Outcome describes how a child process finished.
type Outcome struct {
	// Raw is the status as reported by the platform (wait status, or a
	// negated signal number).
	Raw        int
	ExitCode   int
	Signaled   bool
	Signal     int
	SignalName string
	// Err is set when the process could not be started at all.
	Err error
}

// Success reports a clean zero exit.
func (o Outcome) Success() bool {
	return o.Err == nil && !o.Signaled && o.ExitCode == 0
}

// String renders the outcome the way the console reports it.
func (o Outcome) String() string {
	switch {
	case o.Err != nil:
		return fmt.Sprintf("[failed to start: %v]", o.Err)
	case o.Signaled && o.SignalName != "":
		return fmt.Sprintf("[signal %s (%d)]", o.SignalName, o.Signal)
	case o.Signaled:
		return fmt.Sprintf("[signal %d] raw status %d", o.Signal, o.Raw)
	case o.ExitCode == 0:
		return "[exit 0] ok"
	default:
		return fmt.Sprintf("[exit %d]", o.ExitCode)
	}
}
