package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, DbTypeFile, cfg.Db.Type)
	assert.Equal(t, "vitals.db", cfg.Db.Path)
	assert.Equal(t, ":1080", cfg.Http.HostPort)
	assert.Empty(t, cfg.Grpc.HostPort)
	assert.Equal(t, 5.0, cfg.Limiter.Rate)
	assert.Equal(t, 10, cfg.Limiter.Burst)
	assert.Equal(t, "logs", cfg.Log.Dir)
}

func TestLoadFromFile(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "vitals.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
db:
  type: memory
grpc:
  host_port: ":1081"
limiter:
  rate: 0.5
  burst: 2
`), 0o644))

	cfg, err := Load(New(), cfgPath)
	require.NoError(t, err)

	assert.Equal(t, DbTypeMemory, cfg.Db.Type)
	assert.Equal(t, ":1081", cfg.Grpc.HostPort)
	assert.Equal(t, 0.5, cfg.Limiter.Rate)
	assert.Equal(t, 2, cfg.Limiter.Burst)
	assert.Equal(t, ":1080", cfg.Http.HostPort)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "vitals.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("http:\n  host_port: \":9000\"\n"), 0o644))

	t.Setenv("VITALS_HTTP_HOST_PORT", " :9100 ")
	t.Setenv("VITALS_DB_PATH", "/tmp/ward.db")
	t.Setenv("VITALS_LIMITER_BURST", "3")

	cfg, err := Load(New(), cfgPath)
	require.NoError(t, err)

	assert.Equal(t, ":9100", cfg.Http.HostPort)
	assert.Equal(t, "/tmp/ward.db", cfg.Db.Path)
	assert.Equal(t, 3, cfg.Limiter.Burst)
}

func TestLoadRejectsInvalid(t *testing.T) {
	t.Setenv("VITALS_DB_TYPE", "postgres")
	_, err := Load(New(), "")
	require.ErrorContains(t, err, "unknown db.type")

	t.Setenv("VITALS_DB_TYPE", "memory")
	t.Setenv("VITALS_LIMITER_RATE", "0")
	_, err = Load(New(), "")
	require.ErrorContains(t, err, "limiter.rate")

	_, err = Load(New(), filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorContains(t, err, "read config")
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("VITALS_GRPC_HOST_PORT=:1999\n"), 0o644))

	// register cleanup so the variable does not leak into other tests
	t.Setenv("VITALS_GRPC_HOST_PORT", "")
	require.NoError(t, os.Unsetenv("VITALS_GRPC_HOST_PORT"))

	require.NoError(t, LoadDotEnv(envPath))
	cfg, err := Load(New(), "")
	require.NoError(t, err)
	assert.Equal(t, ":1999", cfg.Grpc.HostPort)

	assert.NoError(t, LoadDotEnv(filepath.Join(dir, "absent.env")))
}
