// Package ports defines the interfaces (ports) between the console core and
// its adapters.
//
// The console (application layer) depends only on these abstractions; the
// infrastructure layer provides the YAML config loader, the local process
// runner and the zap-backed logger.
package ports

import (
	"context"

	"github.com/doeshing/buildconsole/internal/domain"
)

// ConfigProvider loads the latest configuration.
// Implementations typically read ./buildconsole.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// ProcessRunner executes an invocation as a child process and blocks until
// it terminates. Failures to start are reported in the outcome, never as a
// separate error.
type ProcessRunner interface {
	Run(ctx context.Context, inv domain.Invocation) domain.Outcome
}

// Logger provides structured logging abstraction for the application layer.
// Implementations can route to different backends (stderr, files, nothing).
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
