package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(vars map[string]string) lookupFunc {
	return func(k string) (string, bool) {
		v, ok := vars[k]
		return v, ok
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg := Default()
	require.NoError(t, loadFile(filepath.Join(t.TempDir(), "absent.yaml"), &cfg))
	assert.Equal(t, Default(), cfg)
}

func TestLoad_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "algotrace.yaml")
	content := `
server:
  port: 9090
  cors_origins: ["https://app.example.com"]
engine:
  max_input_size: 200
history:
  driver: redis
  redis_addr: redis://localhost:6379/0
  redis_ttl: 1h
log:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg := Default()
	require.NoError(t, loadFile(path, &cfg))
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host, "unset keys keep their defaults")
	assert.Equal(t, []string{"https://app.example.com"}, cfg.Server.CORSOrigins)
	assert.Equal(t, 200, cfg.Engine.MaxInputSize)
	assert.Equal(t, DriverRedis, cfg.History.Driver)
	assert.Equal(t, time.Hour, cfg.History.RedisTTL)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "gemini-2.0-flash", cfg.Assistant.Model)
}

func TestLoad_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "algotrace.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"history":{"driver":"sqlite","sqlite_path":"/tmp/h.db"}}`), 0o644))

	cfg := Default()
	require.NoError(t, loadFile(path, &cfg))
	assert.Equal(t, DriverSQLite, cfg.History.Driver)
	assert.Equal(t, "/tmp/h.db", cfg.History.SQLitePath)
}

func TestLoad_BadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [unterminated"), 0o644))

	cfg := Default()
	assert.Error(t, loadFile(path, &cfg))
}

func TestApplyEnv(t *testing.T) {
	cfg := Default()
	cfg.Server.CORSOrigins = []string{"a", "b", "c"}

	err := applyEnv(&cfg, envMap(map[string]string{
		"PORT":                     "7000",
		"ALGOTRACE_SERVER_PORT":    "7001",
		"ALGOTRACE_CORS_ORIGINS":   "https://x.dev",
		"ALGOTRACE_MAX_INPUT_SIZE": "64",
		"ALGOTRACE_REDIS_TTL":      "90s",
		"GEMINI_API_KEY":           "secret",
		"ALGOTRACE_LOG_LEVEL":      "warn",
	}))
	require.NoError(t, err)

	assert.Equal(t, 7001, cfg.Server.Port, "ALGOTRACE_ names override generic ones")
	assert.Equal(t, []string{"https://x.dev"}, cfg.Server.CORSOrigins)
	assert.Equal(t, 64, cfg.Engine.MaxInputSize)
	assert.Equal(t, 90*time.Second, cfg.History.RedisTTL)
	assert.Equal(t, "secret", cfg.Assistant.APIKey)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, DriverMemory, cfg.History.Driver)
}

func TestApplyEnv_FrontendURL(t *testing.T) {
	cfg := Default()
	require.NoError(t, applyEnv(&cfg, envMap(map[string]string{"FRONTEND_URL": "https://viz.example.com"})))
	assert.Equal(t, []string{"https://viz.example.com", DefaultFrontendOrigin}, cfg.Server.CORSOrigins)
}

func TestApplyEnv_Invalid(t *testing.T) {
	cfg := Default()
	err := applyEnv(&cfg, envMap(map[string]string{"ALGOTRACE_SERVER_PORT": "eighty"}))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.History.Driver = "postgres"
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.History.Driver = DriverRedis
	assert.Error(t, cfg.Validate())

	cfg.History.RedisAddr = "localhost:6379"
	assert.NoError(t, cfg.Validate())

	assert.Equal(t, "0.0.0.0:8000", Default().Server.Addr())
}
