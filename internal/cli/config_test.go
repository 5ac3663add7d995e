package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/readykit/pkg/types"
)

func TestLoadConfigCreatesDefaults(t *testing.T) {
	t.Setenv("READYKIT_BACKEND", "")
	dir := filepath.Join(t.TempDir(), "nested", "readykit")

	v, err := loadConfig(dir)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "config.yaml"))

	s, err := readSettings(v, t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, types.BackendFile, s.Store.Backend)
	assert.Equal(t, types.DefaultQuotaBytes, s.Store.QuotaBytes)
	assert.Equal(t, "readykit:", s.Store.Redis.Prefix)
	assert.Equal(t, "warn", s.LogLevel)
	assert.Equal(t, "console", s.LogFormat)
}

func TestReadSettingsPrecedence(t *testing.T) {
	dir := t.TempDir()
	fromFile := filepath.Join(t.TempDir(), "from-file")
	cfg := "backend: sqlite\ndata_dir: " + fromFile + "\nredis:\n  addr: localhost:6379\nlog:\n  level: debug\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(cfg), 0o644))

	t.Setenv("READYKIT_DATA_DIR", filepath.Join(t.TempDir(), "from-env"))
	t.Setenv("READYKIT_BACKEND", "redis")
	t.Setenv("READYKIT_LOG_LEVEL", "")

	v, err := loadConfig(dir)
	require.NoError(t, err)

	s, err := readSettings(v, "")
	require.NoError(t, err)
	assert.Equal(t, fromFile, s.Store.DataDir, "config.yaml beats READYKIT_DATA_DIR")
	assert.Equal(t, types.BackendRedis, s.Store.Backend, "env beats config.yaml for other keys")
	assert.Equal(t, "localhost:6379", s.Store.Redis.Addr)
	assert.Equal(t, "debug", s.LogLevel)

	flagDir := filepath.Join(t.TempDir(), "from-flag")
	s, err = readSettings(v, flagDir)
	require.NoError(t, err)
	assert.Equal(t, flagDir, s.Store.DataDir)
}

func TestReadSettingsRejectsInvalidConfig(t *testing.T) {
	t.Setenv("READYKIT_BACKEND", "")
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("backend: postgres\n"), 0o644))

	v, err := loadConfig(dir)
	require.NoError(t, err)
	_, err = readSettings(v, t.TempDir())
	assert.ErrorIs(t, err, types.ErrBackendUnknown)
}

func TestWriteConfigIfMissingKeepsExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("backend: memory\n"), 0o644))

	require.NoError(t, writeConfigIfMissing(path, defaultFileConfig()))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "backend: memory\n", string(data))
}
