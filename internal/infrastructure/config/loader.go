package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/doeshing/buildconsole/assets"
	"github.com/doeshing/buildconsole/internal/domain"
	"github.com/doeshing/buildconsole/internal/pkg/filesystem"
	"github.com/doeshing/buildconsole/internal/ports"
)

// FileLoader loads YAML configuration from ./buildconsole.yaml (overridable
// via --config or BUILDCONSOLE_CONFIG).
type FileLoader struct {
	overridePath string
	projectDir   string
}

// NewFileLoader builds a new loader. projectDir is where the default config
// file is looked up; empty means the current directory.
func NewFileLoader(path, projectDir string) *FileLoader {
	return &FileLoader{overridePath: path, projectDir: projectDir}
}

// Load implements ports.ConfigProvider. A missing file yields the embedded
// defaults; nothing is written.
func (l *FileLoader) Load(context.Context) (domain.Config, error) {
	path := l.Path()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultConfig()
		}
		return domain.Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg domain.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	defaults, err := DefaultConfig()
	if err != nil {
		return domain.Config{}, err
	}
	return hydrateDefaults(cfg, defaults), nil
}

// Path returns the resolved config file path.
func (l *FileLoader) Path() string {
	if l.overridePath != "" {
		return filesystem.ExpandPath(l.overridePath)
	}
	if custom := os.Getenv(domain.ConfigEnvVar); custom != "" {
		return filesystem.ExpandPath(custom)
	}
	return filepath.Join(l.projectDir, domain.DefaultConfigFileName)
}

// Init writes the embedded defaults to Path. Existing files are kept unless
// force is set.
func (l *FileLoader) Init(force bool) (string, error) {
	path := l.Path()
	if _, err := os.Stat(path); err == nil && !force {
		return path, fmt.Errorf("config %s already exists (use --force to overwrite)", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions); err != nil {
		return path, err
	}
	return path, os.WriteFile(path, assets.DefaultConfigYAML, domain.FilePermissions)
}

// DefaultConfig parses the embedded default configuration.
func DefaultConfig() (domain.Config, error) {
	var cfg domain.Config
	if err := yaml.Unmarshal(assets.DefaultConfigYAML, &cfg); err != nil {
		return domain.Config{}, fmt.Errorf("parse embedded defaults: %w", err)
	}
	return cfg, nil
}

func hydrateDefaults(cfg, def domain.Config) domain.Config {
	if cfg.ConfigFormatVersion == "" {
		cfg.ConfigFormatVersion = def.ConfigFormatVersion
	}

	tc, dtc := &cfg.Toolchain, def.Toolchain
	str(&tc.Compiler, dtc.Compiler)
	list(&tc.DebugFlags, dtc.DebugFlags)
	list(&tc.ProductionFlags, dtc.ProductionFlags)
	list(&tc.SharedFlags, dtc.SharedFlags)
	list(&tc.LinkerFlags, dtc.LinkerFlags)
	list(&tc.Includes, dtc.Includes)
	str(&tc.TestDefine, dtc.TestDefine)
	list(&tc.InputFiles, dtc.InputFiles)
	list(&tc.TestInputFiles, dtc.TestInputFiles)
	str(&tc.Output, dtc.Output)
	str(&tc.TestOutput, dtc.TestOutput)

	str(&cfg.Target.Program, def.Target.Program)
	str(&cfg.Target.ExecuteFlag, def.Target.ExecuteFlag)
	if cfg.Target.Shells == nil {
		cfg.Target.Shells = map[string]string{}
	}
	for name, path := range def.Target.Shells {
		if _, ok := cfg.Target.Shells[name]; !ok {
			cfg.Target.Shells[name] = path
		}
	}

	str(&cfg.Memcheck.Tool, def.Memcheck.Tool)
	list(&cfg.Memcheck.Flags, def.Memcheck.Flags)
	str(&cfg.Memcheck.SuppressionsFile, def.Memcheck.SuppressionsFile)

	str(&cfg.Esctest.VCS, def.Esctest.VCS)
	str(&cfg.Esctest.Repository, def.Esctest.Repository)
	str(&cfg.Esctest.Revision, def.Esctest.Revision)
	str(&cfg.Esctest.Directory, def.Esctest.Directory)
	str(&cfg.Esctest.Command, def.Esctest.Command)
	return cfg
}

func str(field *string, def string) {
	if *field == "" {
		*field = def
	}
}

// nil lists take the default; an explicit empty list is kept.
func list(field *[]string, def []string) {
	if *field == nil {
		*field = append([]string(nil), def...)
	}
}

var _ ports.ConfigProvider = (*FileLoader)(nil)
