package doctor

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	appconfig "github.com/doeshing/buildconsole/internal/application/config"
	"github.com/doeshing/buildconsole/internal/domain"
	"github.com/doeshing/buildconsole/internal/ports"
)

// Service runs environment diagnostics for the external tools the console
// drives.
type Service struct {
	ConfigProvider ports.ConfigProvider
	// ProjectDir anchors relative paths from the config.
	ProjectDir string
	// LookPath defaults to exec.LookPath.
	LookPath func(string) (string, error)
}

// Run executes checks and returns a report.
func (s *Service) Run(ctx context.Context) (domain.HealthReport, error) {
	var checks []domain.HealthCheck

	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		checks = append(checks, fail("Config file", fmt.Sprintf("load failed: %v", err)))
		return domain.HealthReport{Checks: checks}, err
	}
	if err := appconfig.Validate(cfg); err != nil {
		checks = append(checks, fail("Config file", err.Error()))
		return domain.HealthReport{Checks: checks}, err
	}
	checks = append(checks, ok("Config file", fmt.Sprintf("format version %s", cfg.ConfigFormatVersion)))

	checks = append(checks,
		s.toolCheck("Compiler", cfg.Toolchain.Compiler, fail),
		s.toolCheck("Memcheck", cfg.Memcheck.Tool, warn),
		s.toolCheck("Version control", cfg.Esctest.VCS, warn),
	)
	for _, shell := range domain.Shells {
		checks = append(checks, s.toolCheck("Shell "+string(shell), cfg.Target.ShellPath(shell), warn))
	}

	checks = append(checks,
		s.fileCheck("Target program", cfg.Target.Program, "not built yet, run bd or bp"),
		s.fileCheck("Esctest checkout", cfg.Esctest.Directory, "missing, run get esctest"),
		s.fileCheck("Suppressions file", cfg.Memcheck.SuppressionsFile, "missing, memcheck unit tests will report known leaks"),
	)
	if cfg.Execution.EnvFile != "" {
		checks = append(checks, s.fileCheck("Env file", cfg.Execution.EnvFile, "missing, the console will refuse to start"))
	}

	return domain.HealthReport{Checks: checks}, nil
}

func (s *Service) toolCheck(name, program string, missing func(name, details string) domain.HealthCheck) domain.HealthCheck {
	if strings.ContainsRune(program, '/') {
		if _, err := os.Stat(program); err != nil {
			return missing(name, fmt.Sprintf("%s not found", program))
		}
		return ok(name, program)
	}
	lookPath := s.LookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	path, err := lookPath(program)
	if err != nil {
		return missing(name, fmt.Sprintf("%s not on PATH", program))
	}
	return ok(name, path)
}

func (s *Service) fileCheck(name, path, hint string) domain.HealthCheck {
	if path == "" {
		return warn(name, "not configured")
	}
	full := path
	if !filepath.IsAbs(full) && s.ProjectDir != "" {
		full = filepath.Join(s.ProjectDir, path)
	}
	if _, err := os.Stat(full); err != nil {
		return warn(name, fmt.Sprintf("%s %s", path, hint))
	}
	return ok(name, path)
}

func ok(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthOK, Details: details}
}

func warn(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthWarn, Details: details}
}

func fail(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthError, Details: details}
}
