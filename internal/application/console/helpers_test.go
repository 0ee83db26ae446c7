package console

import (
	"context"
	"testing"

	"go.uber.org/goleak"

	"github.com/doeshing/buildconsole/internal/domain"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func testConfig() domain.Config {
	return domain.Config{
		Toolchain: domain.ToolchainSettings{
			Compiler:        "gcc",
			DebugFlags:      []string{"-g", "-Og", "-fsanitize=undefined"},
			ProductionFlags: []string{"-O3"},
			SharedFlags:     []string{"-std=gnu99", "-pedantic"},
			LinkerFlags:     []string{"-lc", "-lm"},
			Includes:        []string{"-I", "dist/"},
			TestDefine:      "-DUNIT_TESTS",
			InputFiles:      []string{"min-terminal.c", "arguments.c", "ringbuf.c"},
			TestInputFiles:  []string{"tests/unit-tests.c", "min-terminal.c", "ringbuf.c"},
			Output:          "min-terminal",
			TestOutput:      "unit-test",
		},
		Target: domain.TargetSettings{
			Program:     "./min-terminal",
			ExecuteFlag: "-e",
			Shells: map[string]string{
				"bash": "/run/current-system/sw/bin/bash",
				"nu":   "nu",
			},
		},
		Memcheck: domain.MemcheckSettings{
			Tool:             "valgrind",
			Flags:            []string{"--leak-check=full", "--track-origins=yes"},
			SuppressionsFile: "./tests/unit-tests-supressions.txt",
		},
		Esctest: domain.EsctestSettings{
			VCS:        "git",
			Repository: "https://example.invalid/esctest.git",
			Revision:   "abc123",
			Directory:  "dist/esctest",
			Command:    "python3 dist/esctest/esctest/esctest.py",
		},
	}
}

// stubRunner records invocations and replays canned outcomes.
type stubRunner struct {
	calls    []domain.Invocation
	outcomes []domain.Outcome
}

func (s *stubRunner) Run(_ context.Context, inv domain.Invocation) domain.Outcome {
	s.calls = append(s.calls, inv)
	if len(s.outcomes) == 0 {
		return domain.Outcome{}
	}
	out := s.outcomes[0]
	s.outcomes = s.outcomes[1:]
	return out
}
