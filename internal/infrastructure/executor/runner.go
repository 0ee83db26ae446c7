package executor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"golang.org/x/term"

	"github.com/doeshing/buildconsole/internal/domain"
	"github.com/doeshing/buildconsole/internal/ports"
)

var errEmptyInvocation = errors.New("empty argument vector")

// RunnerOptions configures a LocalRunner. Nil streams default to the
// process's own standard streams.
type RunnerOptions struct {
	Dir    string
	Env    []string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger ports.Logger
}

// LocalRunner runs invocations as children attached to the console's
// terminal.
type LocalRunner struct {
	dir    string
	env    []string
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	logger ports.Logger
}

// NewLocalRunner builds a runner from options.
func NewLocalRunner(opts RunnerOptions) *LocalRunner {
	r := &LocalRunner{
		dir:    opts.Dir,
		env:    opts.Env,
		stdin:  opts.Stdin,
		stdout: opts.Stdout,
		stderr: opts.Stderr,
		logger: opts.Logger,
	}
	if r.stdin == nil {
		r.stdin = os.Stdin
	}
	if r.stdout == nil {
		r.stdout = os.Stdout
	}
	if r.stderr == nil {
		r.stderr = os.Stderr
	}
	return r
}

// Run implements ports.ProcessRunner. It echoes the invocation, then blocks
// until the child exits.
func (r *LocalRunner) Run(ctx context.Context, inv domain.Invocation) domain.Outcome {
	if len(inv.Args) == 0 {
		return notStarted(errEmptyInvocation)
	}

	fmt.Fprintln(r.stdout)
	fmt.Fprintf(r.stdout, ">  %s\n", inv.CommandString())
	fmt.Fprintln(r.stdout)

	dir := r.workingDir(inv.Dir)
	fields := map[string]interface{}{
		"run_id": uuid.NewString(),
		"args":   inv.Args,
		"dir":    dir,
	}
	if inv.Interactive && !r.stdinIsTerminal() {
		r.log().Warn("stdin is not a terminal; interactive children may misbehave", fields)
	}

	c := exec.CommandContext(ctx, inv.Args[0], inv.Args[1:]...)
	c.Dir = dir
	c.Env = r.env
	c.Stdin = r.stdin
	c.Stdout = r.stdout
	c.Stderr = r.stderr

	start := time.Now()
	err := c.Run()
	fields["duration_ms"] = time.Since(start).Milliseconds()

	out := r.outcome(err)
	fields["outcome"] = out.String()
	if out.Err != nil {
		r.log().Error("process did not start", out.Err, fields)
	} else {
		r.log().Debug("process finished", fields)
	}
	return out
}

func (r *LocalRunner) outcome(err error) domain.Outcome {
	if err == nil {
		return Decode(0)
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return Decode(rawStatus(exitErr))
	}
	return notStarted(err)
}

// workingDir resolves an invocation directory against the runner's base
// directory. Relative paths are taken relative to the base.
func (r *LocalRunner) workingDir(dir string) string {
	switch {
	case dir == "":
		return r.dir
	case r.dir == "" || filepath.IsAbs(dir):
		return dir
	default:
		return filepath.Join(r.dir, dir)
	}
}

func (r *LocalRunner) stdinIsTerminal() bool {
	f, ok := r.stdin.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func (r *LocalRunner) log() ports.Logger {
	if r.logger == nil {
		return nopLogger{}
	}
	return r.logger
}

type nopLogger struct{}

func (nopLogger) Debug(string, map[string]interface{})        {}
func (nopLogger) Info(string, map[string]interface{})         {}
func (nopLogger) Warn(string, map[string]interface{})         {}
func (nopLogger) Error(string, error, map[string]interface{}) {}

var _ ports.ProcessRunner = (*LocalRunner)(nil)
