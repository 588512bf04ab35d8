package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(".", ".invoicegen"), cfg.DataDir)
	assert.Equal(t, ".", cfg.OutputDir)
	assert.Equal(t, "warn", cfg.GetLoggerConfig().Level)
	assert.Equal(t, "stderr", cfg.GetLoggerConfig().Output)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("INVOICE_DATA_DIR", "/tmp/invoices")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "/tmp/invoices", cfg.DataDir)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.GetLoggerConfig().Format)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invoicegen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("invoice_output_dir: out\nlog_level: info\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "out", cfg.OutputDir)
	assert.Equal(t, "info", cfg.LogLevel)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
