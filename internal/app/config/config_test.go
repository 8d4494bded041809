package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"orderflow/internal/app/config"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		config.KeyDatabaseURL, config.KeyHTTPAddr, config.KeyLogLevel, config.KeyAsyncWorkers,
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := config.Load(config.New(filepath.Join(t.TempDir(), "missing.env")))
	require.NoError(t, err)

	require.Equal(t, ":8080", cfg.HTTPAddr)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, "web@maboutique.com", cfg.MailFrom)
	require.Equal(t, "stock@maboutique.com", cfg.StockEmail)
	require.Equal(t, 4, cfg.AsyncWorkers)
	require.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	require.ErrorIs(t, cfg.RequireDatabase(), config.ErrDatabaseURLRequired)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv(config.KeyDatabaseURL, "postgres://localhost/orders")
	t.Setenv(config.KeyHTTPAddr, ":9090")
	t.Setenv(config.KeyAsyncWorkers, "0")
	t.Setenv(config.KeyShutdownTimeout, "2s")

	cfg, err := config.Load(config.New(filepath.Join(t.TempDir(), "missing.env")))
	require.NoError(t, err)

	require.Equal(t, ":9090", cfg.HTTPAddr)
	require.Equal(t, 0, cfg.AsyncWorkers)
	require.Equal(t, 2*time.Second, cfg.ShutdownTimeout)
	require.NoError(t, cfg.RequireDatabase())
}

func TestLoad_DotEnv(t *testing.T) {
	t.Setenv(config.KeyStockEmail, "")
	require.NoError(t, os.Unsetenv(config.KeyStockEmail))

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("STOCK_EMAIL=warehouse@example.com\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv(config.KeyStockEmail) })

	cfg, err := config.Load(config.New(path))
	require.NoError(t, err)
	require.Equal(t, "warehouse@example.com", cfg.StockEmail)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv(config.KeyAsyncWorkers, "-1")
	_, err := config.Load(config.New(filepath.Join(t.TempDir(), "missing.env")))
	require.Error(t, err)
}
