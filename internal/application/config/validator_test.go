package config

import (
	"testing"

	"github.com/doeshing/buildconsole/internal/domain"
	infraconfig "github.com/doeshing/buildconsole/internal/infrastructure/config"
)

func TestValidate(t *testing.T) {
	base, err := infraconfig.DefaultConfig()
	if err != nil {
		t.Fatalf("DefaultConfig error: %v", err)
	}

	tests := []struct {
		name      string
		mutate    func(cfg *domain.Config)
		wantError bool
	}{
		{name: "defaults are valid", mutate: func(*domain.Config) {}},
		{name: "missing compiler", mutate: func(cfg *domain.Config) { cfg.Toolchain.Compiler = " " }, wantError: true},
		{name: "no input files", mutate: func(cfg *domain.Config) { cfg.Toolchain.InputFiles = nil }, wantError: true},
		{name: "same outputs", mutate: func(cfg *domain.Config) { cfg.Toolchain.TestOutput = cfg.Toolchain.Output }, wantError: true},
		{name: "missing program", mutate: func(cfg *domain.Config) { cfg.Target.Program = "" }, wantError: true},
		{name: "missing nu shell", mutate: func(cfg *domain.Config) { delete(cfg.Target.Shells, "nu") }, wantError: true},
		{name: "missing memcheck tool", mutate: func(cfg *domain.Config) { cfg.Memcheck.Tool = "" }, wantError: true},
		{name: "missing esctest revision", mutate: func(cfg *domain.Config) { cfg.Esctest.Revision = "" }, wantError: true},
		{name: "missing esctest command", mutate: func(cfg *domain.Config) { cfg.Esctest.Command = "" }, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := clone(base)
			tt.mutate(&cfg)
			err := Validate(cfg)
			if tt.wantError && err == nil {
				t.Error("expected error but got none")
			}
			if !tt.wantError && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func clone(cfg domain.Config) domain.Config {
	shells := make(map[string]string, len(cfg.Target.Shells))
	for k, v := range cfg.Target.Shells {
		shells[k] = v
	}
	cfg.Target.Shells = shells
	return cfg
}
