package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/doeshing/buildconsole/internal/domain"
)

// Validate ensures config structure is consistent.
func Validate(cfg domain.Config) error {
	if err := validateToolchain(cfg.Toolchain); err != nil {
		return err
	}
	if err := validateTarget(cfg.Target); err != nil {
		return err
	}
	if strings.TrimSpace(cfg.Memcheck.Tool) == "" {
		return errors.New("memcheck.tool must be set")
	}
	if err := validateEsctest(cfg.Esctest); err != nil {
		return err
	}
	return nil
}

func validateToolchain(tc domain.ToolchainSettings) error {
	if strings.TrimSpace(tc.Compiler) == "" {
		return errors.New("toolchain.compiler must be set")
	}
	if len(tc.InputFiles) == 0 {
		return errors.New("toolchain.input_files must not be empty")
	}
	if len(tc.TestInputFiles) == 0 {
		return errors.New("toolchain.test_input_files must not be empty")
	}
	if tc.Output == "" || tc.TestOutput == "" {
		return errors.New("toolchain.output and toolchain.test_output must be set")
	}
	if tc.Output == tc.TestOutput {
		return fmt.Errorf("toolchain.output and toolchain.test_output must differ, both are %s", tc.Output)
	}
	return nil
}

func validateTarget(t domain.TargetSettings) error {
	if strings.TrimSpace(t.Program) == "" {
		return errors.New("target.program must be set")
	}
	for _, shell := range domain.Shells {
		if t.Shells[string(shell)] == "" {
			return fmt.Errorf("target.shells.%s must be set", shell)
		}
	}
	return nil
}

func validateEsctest(e domain.EsctestSettings) error {
	if e.VCS == "" || e.Repository == "" || e.Revision == "" {
		return errors.New("esctest.vcs, esctest.repository and esctest.revision must be set")
	}
	if e.Directory == "" {
		return errors.New("esctest.directory must be set")
	}
	if strings.TrimSpace(e.Command) == "" {
		return errors.New("esctest.command must be set")
	}
	return nil
}
