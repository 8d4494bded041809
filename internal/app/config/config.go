package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	KeyDatabaseURL     = "DATABASE_URL"
	KeyHTTPAddr        = "HTTP_ADDR"
	KeyLogLevel        = "LOG_LEVEL"
	KeyLogFormat       = "LOG_FORMAT"
	KeyMailFrom        = "MAIL_FROM"
	KeyStockEmail      = "STOCK_EMAIL"
	KeyAsyncWorkers    = "ASYNC_WORKERS"
	KeyMigrationsDir   = "MIGRATIONS_DIR"
	KeyShutdownTimeout = "SHUTDOWN_TIMEOUT"
)

var ErrDatabaseURLRequired = errors.New("DATABASE_URL is required")

type Config struct {
	DatabaseURL     string
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	MailFrom        string
	StockEmail      string
	AsyncWorkers    int
	MigrationsDir   string
	ShutdownTimeout time.Duration
}

// New returns a viper instance that resolves every key from flags bound
// later, then the environment (a .env file included), then the defaults.
func New(envFiles ...string) *viper.Viper {
	// a missing .env is fine; the real environment still applies
	_ = godotenv.Load(envFiles...)

	v := viper.New()
	v.SetDefault(KeyHTTPAddr, ":8080")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "json")
	v.SetDefault(KeyMailFrom, "web@maboutique.com")
	v.SetDefault(KeyStockEmail, "stock@maboutique.com")
	v.SetDefault(KeyAsyncWorkers, 4)
	v.SetDefault(KeyMigrationsDir, "migrations")
	v.SetDefault(KeyShutdownTimeout, 5*time.Second)
	v.AutomaticEnv()
	return v
}

func Load(v *viper.Viper) (Config, error) {
	cfg := Config{
		DatabaseURL:     v.GetString(KeyDatabaseURL),
		HTTPAddr:        v.GetString(KeyHTTPAddr),
		LogLevel:        v.GetString(KeyLogLevel),
		LogFormat:       v.GetString(KeyLogFormat),
		MailFrom:        v.GetString(KeyMailFrom),
		StockEmail:      v.GetString(KeyStockEmail),
		AsyncWorkers:    v.GetInt(KeyAsyncWorkers),
		MigrationsDir:   v.GetString(KeyMigrationsDir),
		ShutdownTimeout: v.GetDuration(KeyShutdownTimeout),
	}

	if cfg.AsyncWorkers < 0 {
		return Config{}, fmt.Errorf("%s must not be negative, got %d", KeyAsyncWorkers, cfg.AsyncWorkers)
	}
	if cfg.ShutdownTimeout <= 0 {
		return Config{}, fmt.Errorf("%s must be positive, got %s", KeyShutdownTimeout, cfg.ShutdownTimeout)
	}
	return cfg, nil
}

// RequireDatabase reports ErrDatabaseURLRequired for commands that talk to
// Postgres.
func (c Config) RequireDatabase() error {
	if c.DatabaseURL == "" {
		return ErrDatabaseURLRequired
	}
	return nil
}
