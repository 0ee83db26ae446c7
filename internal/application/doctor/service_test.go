package doctor

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doeshing/buildconsole/internal/domain"
	infraconfig "github.com/doeshing/buildconsole/internal/infrastructure/config"
)

type stubConfigProvider struct {
	cfg domain.Config
	err error
}

func (s stubConfigProvider) Load(context.Context) (domain.Config, error) {
	return s.cfg, s.err
}

func lookPathFor(available ...string) func(string) (string, error) {
	return func(name string) (string, error) {
		for _, a := range available {
			if a == name {
				return "/usr/bin/" + name, nil
			}
		}
		return "", errors.New("not found")
	}
}

func statusOf(t *testing.T, report domain.HealthReport, name string) domain.HealthStatus {
	t.Helper()
	for _, c := range report.Checks {
		if c.Name == name {
			return c.Status
		}
	}
	t.Fatalf("check %q missing from %+v", name, report.Checks)
	return ""
}

func TestDoctorReportsTools(t *testing.T) {
	cfg, err := infraconfig.DefaultConfig()
	require.NoError(t, err)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "min-terminal"), []byte{}, 0o755))

	svc := &Service{
		ConfigProvider: stubConfigProvider{cfg: cfg},
		ProjectDir:     dir,
		LookPath:       lookPathFor("gcc", "git", "nu"),
	}
	report, err := svc.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, domain.HealthOK, statusOf(t, report, "Compiler"))
	assert.Equal(t, domain.HealthWarn, statusOf(t, report, "Memcheck"))
	assert.Equal(t, domain.HealthOK, statusOf(t, report, "Shell nu"))
	assert.Equal(t, domain.HealthOK, statusOf(t, report, "Target program"))
	assert.Equal(t, domain.HealthWarn, statusOf(t, report, "Esctest checkout"))
	assert.False(t, report.Failed())
}

func TestDoctorFailsWithoutCompiler(t *testing.T) {
	cfg, err := infraconfig.DefaultConfig()
	require.NoError(t, err)

	svc := &Service{ConfigProvider: stubConfigProvider{cfg: cfg}, LookPath: lookPathFor()}
	report, err := svc.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.HealthError, statusOf(t, report, "Compiler"))
	assert.True(t, report.Failed())
}

func TestDoctorConfigError(t *testing.T) {
	svc := &Service{ConfigProvider: stubConfigProvider{err: errors.New("broken")}}
	report, err := svc.Run(context.Background())
	assert.Error(t, err)
	assert.Equal(t, domain.HealthError, statusOf(t, report, "Config file"))
}
