//go:build unix

package executor

import (
	"os/exec"
	"syscall"

	"golang.org/x/sys/unix"
)

func platformSignalName(n int) string {
	return unix.SignalName(syscall.Signal(n))
}

func rawStatus(exitErr *exec.ExitError) int {
	if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok {
		return int(ws)
	}
	return exitErr.ExitCode() << 8
}
