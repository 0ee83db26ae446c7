package app

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	appconfig "github.com/doeshing/buildconsole/internal/application/config"
	"github.com/doeshing/buildconsole/internal/application/console"
	"github.com/doeshing/buildconsole/internal/domain"
	"github.com/doeshing/buildconsole/internal/infrastructure/config"
	"github.com/doeshing/buildconsole/internal/infrastructure/executor"
	"github.com/doeshing/buildconsole/internal/pkg/logger"
)

// Options carries CLI-level settings into the container.
type Options struct {
	ConfigPath string
	ProjectDir string
	Verbose    bool
	In         io.Reader
	Out        io.Writer
	Err        io.Writer
}

// Container wires the console with its infrastructure adapters.
type Container struct {
	Config       domain.Config
	ConfigLoader *config.FileLoader
	Runner       *executor.LocalRunner
	Console      *console.Console
	Logger       *logger.ZapLogger
}

// NewConfigLoader returns the loader the container would use for opts.
func NewConfigLoader(opts Options) *config.FileLoader {
	return config.NewFileLoader(opts.ConfigPath, opts.ProjectDir)
}

// BuildContainer constructs the dependency graph.
func BuildContainer(ctx context.Context, opts Options) (*Container, error) {
	cfgLoader := NewConfigLoader(opts)
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, err
	}
	if err := appconfig.Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration %s: %w", cfgLoader.Path(), err)
	}

	log := logger.New(opts.Verbose)

	env, err := executor.LoadEnv(resolve(opts.ProjectDir, cfg.Execution.EnvFile))
	if err != nil {
		return nil, err
	}

	workDir := resolve(opts.ProjectDir, cfg.Execution.WorkingDir)
	if workDir == "" {
		workDir = opts.ProjectDir
	}

	runner := executor.NewLocalRunner(executor.RunnerOptions{
		Dir:    workDir,
		Env:    env,
		Stdin:  opts.In,
		Stdout: opts.Out,
		Stderr: opts.Err,
		Logger: log,
	})

	con := console.New(console.Options{
		Config: cfg,
		Runner: runner,
		In:     opts.In,
		Out:    opts.Out,
		Logger: log,
	})

	log.Debug("container ready", map[string]interface{}{
		"config":      cfgLoader.Path(),
		"project_dir": opts.ProjectDir,
	})

	return &Container{
		Config:       cfg,
		ConfigLoader: cfgLoader,
		Runner:       runner,
		Console:      con,
		Logger:       log,
	}, nil
}

// resolve anchors a relative path at the project directory. Empty stays
// empty.
func resolve(projectDir, path string) string {
	if path == "" || filepath.IsAbs(path) || projectDir == "" {
		return path
	}
	return filepath.Join(projectDir, path)
}
