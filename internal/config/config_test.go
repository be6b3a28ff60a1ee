package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	ConfigFileEnv, "PORT", "DB_DRIVER", "DATABASE_URL", "GATEWAY_PORT", "SHAREIT_SERVER_URL",
	"LOG_LEVEL", "LOG_FORMAT", "OTEL_EXPORTER_OTLP_ENDPOINT", "OTEL_EXPORTER_OTLP_INSECURE",
	"GATEWAY_REQUEST_TIMEOUT", "GATEWAY_RATE_LIMIT", "GATEWAY_RATE_BURST",
	"BREAKER_FAILURE_THRESHOLD", "BREAKER_TIMEOUT",
}

// clearEnv blanks every variable Load reads so the host environment cannot leak in
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shareit.yaml")
	content := `
server:
  port: "7000"
  db_driver: postgres
  database_url: postgres://shareit@localhost/shareit?sslmode=disable
gateway:
  request_timeout: 3s
  breaker:
    failure_threshold: 2
    timeout: 15s
log:
  level: debug
  format: text
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	clearEnv(t)
	t.Setenv(ConfigFileEnv, path)
	t.Setenv("PORT", "7100")
	t.Setenv("GATEWAY_RATE_LIMIT", "5")
	t.Setenv("GATEWAY_RATE_BURST", "10")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "7100", cfg.Server.Port, "env overrides file")
	require.Equal(t, "postgres", cfg.Server.DBDriver)
	require.Equal(t, 3*time.Second, cfg.Gateway.RequestTimeout)
	require.Equal(t, uint32(2), cfg.Gateway.Breaker.FailureThreshold)
	require.Equal(t, 15*time.Second, cfg.Gateway.Breaker.Timeout)
	require.Equal(t, time.Minute, cfg.Gateway.Breaker.Interval, "untouched defaults survive")
	require.Equal(t, 5.0, cfg.Gateway.RateLimit)
	require.Equal(t, 10, cfg.Gateway.RateBurst)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "text", cfg.Log.Format)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "bad_duration", env: map[string]string{"GATEWAY_REQUEST_TIMEOUT": "soon"}},
		{name: "bad_rate", env: map[string]string{"GATEWAY_RATE_LIMIT": "fast"}},
		{name: "bad_bool", env: map[string]string{"OTEL_EXPORTER_OTLP_INSECURE": "maybe"}},
		{name: "unsupported_driver", env: map[string]string{"DB_DRIVER": "mysql"}},
		{name: "zero_threshold", env: map[string]string{"BREAKER_FAILURE_THRESHOLD": "0"}},
		{name: "missing_file", env: map[string]string{ConfigFileEnv: "/nonexistent/shareit.yaml"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			require.Error(t, err)
		})
	}
}

func TestValidate_ReportsAllProblems(t *testing.T) {
	cfg := Default()
	cfg.Server.Port = ""
	cfg.Gateway.ServerURL = ""

	err := cfg.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "server port is required")
	require.Contains(t, err.Error(), "gateway server url is required")
}
