//go:build !unix

package executor

import "os/exec"

// Numbers fixed by POSIX; the rest vary between platforms.
var posixSignals = map[int]string{
	1:  "SIGHUP",
	2:  "SIGINT",
	3:  "SIGQUIT",
	4:  "SIGILL",
	5:  "SIGTRAP",
	6:  "SIGABRT",
	8:  "SIGFPE",
	9:  "SIGKILL",
	11: "SIGSEGV",
	13: "SIGPIPE",
	14: "SIGALRM",
	15: "SIGTERM",
}

func platformSignalName(n int) string {
	return posixSignals[n]
}

func rawStatus(exitErr *exec.ExitError) int {
	return exitErr.ExitCode() << 8
}
