// Package console implements the interactive build console: the session,
// the command table, argument construction and the dispatch loop.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/doeshing/buildconsole/internal/domain"
	"github.com/doeshing/buildconsole/internal/ports"
)

// State is the dispatch loop state.
type State int

const (
	StateRunning State = iota
	StateTerminated
)

// Options configures a Console. Nil In/Out default to stdin/stdout.
type Options struct {
	Config   domain.Config
	Runner   ports.ProcessRunner
	Registry *Registry
	In       io.Reader
	Out      io.Writer
	Logger   ports.Logger
}

// Console owns the session and drives one command at a time.
type Console struct {
	session  *domain.Session
	registry *Registry
	builder  *Builder
	runner   ports.ProcessRunner
	in       *bufio.Reader
	out      io.Writer
	logger   ports.Logger
}

// New builds a console with a default session.
func New(opts Options) *Console {
	c := &Console{
		session:  domain.NewSession(),
		registry: opts.Registry,
		builder:  NewBuilder(opts.Config),
		runner:   opts.Runner,
		out:      opts.Out,
		logger:   opts.Logger,
	}
	if c.registry == nil {
		c.registry = DefaultRegistry()
	}
	in := opts.In
	if in == nil {
		in = os.Stdin
	}
	c.in = bufio.NewReader(in)
	if c.out == nil {
		c.out = os.Stdout
	}
	return c
}

// Session exposes the current session state.
func (c *Console) Session() *domain.Session {
	return c.session
}

// Run loops until the quit command or end of input.
func (c *Console) Run(ctx context.Context) error {
	for {
		RenderStatus(c.out, c.session)
		RenderMenu(c.out, c.registry)

		line, err := c.in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("read command: %w", err)
		}
		atEOF := errors.Is(err, io.EOF)
		if atEOF && line == "" {
			c.debug("input closed", nil)
			return nil
		}

		if c.Dispatch(ctx, strings.TrimSpace(line)) == StateTerminated || atEOF {
			return nil
		}
	}
}

// Dispatch runs the command bound to key. Unknown keys are reported and
// leave the session untouched.
func (c *Console) Dispatch(ctx context.Context, key string) State {
	entry, ok := c.registry.Lookup(key)
	if !ok {
		fmt.Fprintf(c.out, "Unknown option %q\n", key)
		return StateRunning
	}
	c.debug("dispatch", map[string]interface{}{"key": key, "action": entry.Description})
	return c.perform(ctx, entry.Action)
}

func (c *Console) perform(ctx context.Context, action ActionKind) State {
	memcheck := c.session.MemcheckEnabled()

	switch action {
	case ActionRun:
		c.run(ctx, c.builder.BuildRun(memcheck, c.builder.ShellArgs(c.session.Shell())))
	case ActionSelectBash:
		c.session.SetShell(domain.ShellBash)
	case ActionSelectNu:
		c.session.SetShell(domain.ShellNu)
	case ActionBuildDebug:
		c.run(ctx, c.builder.BuildCompile(domain.BuildDebug, domain.TargetMain))
	case ActionBuildProduction:
		c.run(ctx, c.builder.BuildCompile(domain.BuildProduction, domain.TargetMain))
	case ActionToggleMemcheck:
		c.session.ToggleMemcheck()
	case ActionUnitDebug:
		c.unitTests(ctx, domain.BuildDebug)
	case ActionUnitProduction:
		c.unitTests(ctx, domain.BuildProduction)
	case ActionFetchEsctest:
		c.fetchEsctest(ctx)
	case ActionRunEsctest:
		c.run(ctx, c.builder.BuildEsctest(memcheck))
	case ActionQuit:
		return StateTerminated
	default:
		c.debug("unhandled action", map[string]interface{}{"action": int(action)})
	}
	return StateRunning
}

func (c *Console) unitTests(ctx context.Context, mode domain.BuildMode) {
	if !c.run(ctx, c.builder.BuildCompile(mode, domain.TargetTest)).Success() {
		fmt.Fprintln(c.out, "Unit test build failed, not running tests")
		return
	}
	c.run(ctx, c.builder.BuildTestRun(c.session.MemcheckEnabled()))
}

func (c *Console) fetchEsctest(ctx context.Context) {
	for _, inv := range c.builder.BuildFetchEsctest() {
		if !c.run(ctx, inv).Success() {
			fmt.Fprintln(c.out, "Fetching esctest failed")
			return
		}
	}
}

func (c *Console) run(ctx context.Context, inv domain.Invocation) domain.Outcome {
	outcome := c.runner.Run(ctx, inv)
	RenderOutcome(c.out, outcome)
	return outcome
}

func (c *Console) debug(msg string, fields map[string]interface{}) {
	if c.logger != nil {
		c.logger.Debug(msg, fields)
	}
}
