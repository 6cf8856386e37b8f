package server

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/iwvelando/buyout-calculator/pkg/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeServerConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "server-config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0600))
	return path
}

func TestLoadConfigDefaultsWhenMissing(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, constants.DefaultServerAddress, cfg.Address)
	assert.Equal(t, constants.DefaultMaxRequestSizeBytes, cfg.RequestSizeBytes())
	assert.True(t, cfg.MetricsEnabled(), "metrics should be enabled by default")
	assert.Empty(t, cfg.AllowedOrigins)
	assert.Empty(t, cfg.Logging.Level)
	assert.Empty(t, cfg.Logging.Format)
	assert.Empty(t, cfg.Logging.OutputFile)
}

func TestLoadConfigEmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, constants.DefaultServerAddress, cfg.Address)
}

func TestLoadConfigOverrides(t *testing.T) {
	path := writeServerConfig(t, `address: 127.0.0.1:9000
maxRequestSize: 16K
metrics: false
allowedOrigins:
  - https://rentals.example.com
  - "  "
logging:
  level: debug
  format: console
  outputFile: /tmp/server.log
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Address)
	assert.Equal(t, int64(16*1024), cfg.RequestSizeBytes())
	assert.False(t, cfg.MetricsEnabled())
	assert.Equal(t, []string{"https://rentals.example.com"}, cfg.AllowedOrigins)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, "/tmp/server.log", cfg.Logging.OutputFile)
}

func TestLoadConfigInvalidSize(t *testing.T) {
	for _, size := range []string{"invalid", "-5K", "1TB"} {
		_, err := LoadConfig(writeServerConfig(t, "maxRequestSize: "+size))
		assert.Error(t, err, size)
	}
}

func TestSetRequestSizeBytes(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SetRequestSizeBytes(0)
	assert.Equal(t, constants.DefaultMaxRequestSizeBytes, cfg.RequestSizeBytes(), "non-positive size should be ignored")

	cfg.SetRequestSizeBytes(2048)
	assert.Equal(t, int64(2048), cfg.RequestSizeBytes())
	assert.Equal(t, "2048", cfg.MaxRequestSize)
}

func TestParseSize(t *testing.T) {
	tests := map[string]int64{
		"":          constants.DefaultMaxRequestSizeBytes,
		"1024":      1024,
		"512b":      512,
		"256K":      256 * 1024,
		"12 KB":     12 * 1024,
		"1m":        1024 * 1024,
		"3MB":       3 * 1024 * 1024,
		"2G":        2 * 1024 * 1024 * 1024,
		"  4096   ": 4096,
	}

	for input, expected := range tests {
		got, err := ParseSize(input)
		require.NoError(t, err, "ParseSize(%q)", input)
		assert.Equal(t, expected, got, "ParseSize(%q)", input)
	}
}

func TestParseSizeErrors(t *testing.T) {
	tests := []struct {
		input   string
		message string
	}{
		{"1TB", "unsupported size unit"},
		{"abc", "invalid size"},
		{"1.5M", "unsupported size unit"},
		{"-5K", "must not be negative"},
		{" -1", "must not be negative"},
		{"9999999999G", "size overflow"},
		{"17179869184G", "size overflow"},
		{"99999999999999999999", "invalid size value"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := ParseSize(tt.input)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}
