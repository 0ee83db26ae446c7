package domain

// Config mirrors buildconsole.yaml.
type Config struct {
	ConfigFormatVersion string            `yaml:"config_format_version"`
	Toolchain           ToolchainSettings `yaml:"toolchain"`
	Target              TargetSettings    `yaml:"target"`
	Memcheck            MemcheckSettings  `yaml:"memcheck"`
	Esctest             EsctestSettings   `yaml:"esctest"`
	Execution           ExecutionSettings `yaml:"execution"`
}

// ToolchainSettings holds the static compiler flag tables.
type ToolchainSettings struct {
	Compiler        string   `yaml:"compiler"`
	DebugFlags      []string `yaml:"debug_flags"`
	ProductionFlags []string `yaml:"production_flags"`
	SharedFlags     []string `yaml:"shared_flags"`
	LinkerFlags     []string `yaml:"linker_flags"`
	Includes        []string `yaml:"includes"`
	TestDefine      string   `yaml:"test_define"`
	InputFiles      []string `yaml:"input_files"`
	TestInputFiles  []string `yaml:"test_input_files"`
	Output          string   `yaml:"output"`
	TestOutput      string   `yaml:"test_output"`
}

// TargetSettings describes how the built program is launched.
type TargetSettings struct {
	Program     string            `yaml:"program"`
	ExecuteFlag string            `yaml:"execute_flag"`
	Shells      map[string]string `yaml:"shells"`
}

// MemcheckSettings configures the dynamic-analysis wrapper.
type MemcheckSettings struct {
	Tool             string   `yaml:"tool"`
	Flags            []string `yaml:"flags"`
	SuppressionsFile string   `yaml:"suppressions_file"`
}

// EsctestSettings pins the external conformance suite.
type EsctestSettings struct {
	VCS        string `yaml:"vcs"`
	Repository string `yaml:"repository"`
	Revision   string `yaml:"revision"`
	Directory  string `yaml:"directory"`
	Command    string `yaml:"command"`
}

// ExecutionSettings controls the process runner.
type ExecutionSettings struct {
	WorkingDir string `yaml:"working_dir"`
	EnvFile    string `yaml:"env_file"`
}

// ShellPath resolves the token passed to the target program for a shell.
func (t TargetSettings) ShellPath(shell Shell) string {
	if path, ok := t.Shells[string(shell)]; ok && path != "" {
		return path
	}
	return string(shell)
}
