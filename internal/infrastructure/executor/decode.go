package executor

import "github.com/doeshing/buildconsole/internal/domain"

// Decode turns a raw process status into an Outcome.
//
// Positive values use the POSIX wait-status layout: the low seven bits hold
// the terminating signal and bits 8 and up hold the exit code. Negative values
// are negated signal numbers and always decode as signalled. Unknown signal
// numbers, including a masked value of zero, are reported without a name.
func Decode(raw int) domain.Outcome {
	out := domain.Outcome{Raw: raw}
	if raw == 0 {
		return out
	}

	abs := raw
	if abs < 0 {
		abs = -abs
	}
	sig := abs & domain.SignalMask

	if raw > 0 && sig == 0 {
		out.ExitCode = raw >> 8
		return out
	}

	out.Signaled = true
	out.Signal = sig
	out.ExitCode = 128 + sig
	out.SignalName = SignalName(sig)
	return out
}

// SignalName returns the canonical name of a signal in the 1-31 range, or ""
// when the number is outside it or unknown on this platform.
func SignalName(n int) string {
	if n < 1 || n > domain.MaxNamedSignal {
		return ""
	}
	return platformSignalName(n)
}

func notStarted(err error) domain.Outcome {
	out := Decode(domain.ExitCodeNotStarted << 8)
	out.Err = err
	return out
}
