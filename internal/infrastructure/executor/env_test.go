package executor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnvEmptyPathInherits(t *testing.T) {
	env, err := LoadEnv("")
	require.NoError(t, err)
	assert.Nil(t, env)
}

func TestLoadEnvProcessEnvWins(t *testing.T) {
	t.Setenv("BUILDCONSOLE_ENV_EXISTING", "process")
	envFile := filepath.Join(t.TempDir(), ".env")
	content := "BUILDCONSOLE_ENV_EXISTING=file\nBUILDCONSOLE_ENV_NEW=file\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o644))

	env, err := LoadEnv(envFile)
	require.NoError(t, err)
	assert.Contains(t, env, "BUILDCONSOLE_ENV_EXISTING=process")
	assert.Contains(t, env, "BUILDCONSOLE_ENV_NEW=file")
}

func TestLoadEnvMissingFile(t *testing.T) {
	_, err := LoadEnv(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}
