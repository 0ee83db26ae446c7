package console

import (
	"strings"

	"github.com/doeshing/buildconsole/internal/domain"
)

// Builder assembles argument vectors from the configured flag tables. Every
// call returns a freshly allocated vector; the tables are never aliased.
type Builder struct {
	toolchain domain.ToolchainSettings
	target    domain.TargetSettings
	memcheck  domain.MemcheckSettings
	esctest   domain.EsctestSettings
}

// NewBuilder captures the static tables from cfg.
func NewBuilder(cfg domain.Config) *Builder {
	return &Builder{
		toolchain: cfg.Toolchain,
		target:    cfg.Target,
		memcheck:  cfg.Memcheck,
		esctest:   cfg.Esctest,
	}
}

// BuildCompile returns the compiler invocation. The order is fixed: mode
// flags, shared flags, linker flags, includes, test define, inputs, output.
func (b *Builder) BuildCompile(mode domain.BuildMode, target domain.BuildTarget) domain.Invocation {
	tc := b.toolchain

	modeFlags := tc.DebugFlags
	if mode == domain.BuildProduction {
		modeFlags = tc.ProductionFlags
	}

	var define []string
	inputs, output := tc.InputFiles, tc.Output
	if target == domain.TargetTest {
		if tc.TestDefine != "" {
			define = []string{tc.TestDefine}
		}
		inputs, output = tc.TestInputFiles, tc.TestOutput
	}

	return domain.Invocation{Args: concat(
		[]string{tc.Compiler},
		modeFlags,
		tc.SharedFlags,
		tc.LinkerFlags,
		tc.Includes,
		define,
		inputs,
		[]string{"-o", output},
	)}
}

// BuildRun returns the target program invocation followed by extra,
// wrapped with the memcheck tool when enabled.
func (b *Builder) BuildRun(memcheck bool, extra []string) domain.Invocation {
	base := concat([]string{b.target.Program}, extra)
	return domain.Invocation{
		Args:        b.WrapWithMemcheck(memcheck, base, false),
		Interactive: true,
	}
}

// ShellArgs returns the execute flag and the resolved path for shell.
func (b *Builder) ShellArgs(shell domain.Shell) []string {
	return []string{b.target.ExecuteFlag, b.target.ShellPath(shell)}
}

// BuildTestRun returns the unit-test binary invocation. Memcheck runs of the
// test binary also load the suppressions file.
func (b *Builder) BuildTestRun(memcheck bool) domain.Invocation {
	return domain.Invocation{
		Args: b.WrapWithMemcheck(memcheck, []string{localProgram(b.toolchain.TestOutput)}, true),
	}
}

// WrapWithMemcheck prefixes base with the memcheck tool and its flags. base
// is returned unchanged (as a copy) when memcheck is disabled or base is
// already wrapped.
func (b *Builder) WrapWithMemcheck(memcheck bool, base []string, suppressions bool) []string {
	if !memcheck || (len(base) > 0 && base[0] == b.memcheck.Tool) {
		return concat(base)
	}
	var supp []string
	if suppressions && b.memcheck.SuppressionsFile != "" {
		supp = []string{"--suppressions=" + b.memcheck.SuppressionsFile}
	}
	return concat([]string{b.memcheck.Tool}, b.memcheck.Flags, supp, base)
}

// BuildFetchEsctest returns the clone and checkout steps for the pinned
// conformance suite revision. The checkout runs inside the clone.
func (b *Builder) BuildFetchEsctest() []domain.Invocation {
	e := b.esctest
	return []domain.Invocation{
		{Args: []string{e.VCS, "clone", e.Repository, e.Directory}},
		{Args: []string{e.VCS, "checkout", e.Revision}, Dir: e.Directory},
	}
}

// BuildEsctest runs the conformance suite inside the target program.
func (b *Builder) BuildEsctest(memcheck bool) domain.Invocation {
	return b.BuildRun(memcheck, []string{b.target.ExecuteFlag, b.esctest.Command})
}

func concat(parts ...[]string) []string {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	out := make([]string, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func localProgram(name string) string {
	if strings.ContainsRune(name, '/') {
		return name
	}
	return "./" + name
}
