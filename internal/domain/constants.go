package domain

// File permissions constants
const (
	// DirectoryPermissions is the default permission for directories (rwxr-xr-x)
	DirectoryPermissions = 0o755
	// FilePermissions is the permission for generated config files (rw-r--r--)
	FilePermissions = 0o644
)

// Configuration constants
const (
	// ConfigFormatVersion is the current config schema version
	ConfigFormatVersion = "1"
	// DefaultConfigFileName is looked up in the project directory
	DefaultConfigFileName = "buildconsole.yaml"
	// ConfigEnvVar overrides the config path
	ConfigEnvVar = "BUILDCONSOLE_CONFIG"
	// DebugEnvVar enables verbose logging
	DebugEnvVar = "BUILDCONSOLE_DEBUG"
)

// Process constants
const (
	// ExitCodeNotStarted is reported when a program cannot be spawned
	ExitCodeNotStarted = 127
	// SignalMask selects the terminating signal from a raw status
	SignalMask = 0x7F
	// MaxNamedSignal is the highest signal number given a name
	MaxNamedSignal = 31
)
