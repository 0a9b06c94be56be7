package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{"PORT", "GOBEAM_ADDR", "GOBEAM_STORE", "GOBEAM_LOG_LEVEL",
		"GOBEAM_LOG_FORMAT", "GOBEAM_RATE_LIMIT", "GOBEAM_RATE_BURST"} {
		t.Setenv(k, "")
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, ":5000", cfg.Server.Addr)
	assert.Equal(t, 210e9, cfg.Analysis.ElasticModulus)
	assert.Equal(t, 1e-6, cfg.Analysis.MomentOfInertia)
	assert.Equal(t, 100, cfg.Analysis.NumPoints)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gobeam.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  addr: "127.0.0.1:8080"
  rateLimit: 2.5
  readTimeout: 3s
log:
  level: debug
  format: json
analysis:
  numPoints: 200
`), 0o644))

	clearEnv(t)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:8080", cfg.Server.Addr)
	assert.Equal(t, 2.5, cfg.Server.RateLimit)
	assert.Equal(t, 20, cfg.Server.RateBurst)
	assert.Equal(t, 3*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 200, cfg.Analysis.NumPoints)
	assert.Equal(t, 210e9, cfg.Analysis.ElasticModulus)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gobeam.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  addr: \":7000\"\n"), 0o644))

	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("GOBEAM_STORE", "/var/lib/gobeam")
	t.Setenv("GOBEAM_RATE_BURST", "3")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Server.Addr)
	assert.Equal(t, "/var/lib/gobeam", cfg.Store.Path)
	assert.Equal(t, 3, cfg.Server.RateBurst)

	t.Setenv("GOBEAM_ADDR", "0.0.0.0:1234")
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:1234", cfg.Server.Addr)
}

func TestApplyEnvRejectsBadNumbers(t *testing.T) {
	cfg := Default()
	env := map[string]string{"GOBEAM_RATE_LIMIT": "fast"}
	err := cfg.applyEnv(func(k string) string { return env[k] })
	assert.ErrorContains(t, err, "GOBEAM_RATE_LIMIT")
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Log.Level = "chatty"
	assert.EqualError(t, cfg.Validate(), `unknown log level "chatty"`)

	cfg = Default()
	cfg.Log.Format = "xml"
	assert.EqualError(t, cfg.Validate(), `unknown log format "xml"`)

	cfg = Default()
	cfg.Server.RateBurst = -1
	assert.Error(t, cfg.Validate())
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := LogConfig{Level: "warn", Format: "json"}.NewLogger(&buf)

	logger.Info("hidden")
	logger.Warn("shown", slog.Int("points", 101))

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"shown"`)
	assert.Contains(t, out, `"points":101`)
}
