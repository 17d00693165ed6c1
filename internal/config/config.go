package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress      string
	DatabaseURI     string
	RedisAddress    string
	TokenSecret     string
	TaxRate         float64
	DeliveryFee     float64
	ConfirmDelay    time.Duration
	PollInterval    time.Duration
	WorkerPoolSize  int
	ConfirmBatch    int
	ShutdownTimeout time.Duration
}

const (
	defaultRunAddress      = ":8080"
	defaultRedisAddress    = "localhost:6379"
	defaultTokenSecret     = "change-me-in-production"
	defaultTaxRate         = 0.08
	defaultDeliveryFee     = 2.99
	defaultConfirmDelay    = 3 * time.Second
	defaultPollInterval    = time.Second
	defaultWorkerPoolSize  = 4
	defaultConfirmBatch    = 32
	defaultShutdownTimeout = 10 * time.Second
)

// Load parses configuration from flags and environment variables. A .env file
// in the working directory is merged in first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:      getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:     getString(lookup, "DATABASE_URI", ""),
		RedisAddress:    getString(lookup, "REDIS_ADDRESS", defaultRedisAddress),
		TokenSecret:     getString(lookup, "TOKEN_SECRET", defaultTokenSecret),
		TaxRate:         getFloat(lookup, "TAX_RATE", defaultTaxRate),
		DeliveryFee:     getFloat(lookup, "DELIVERY_FEE", defaultDeliveryFee),
		ConfirmDelay:    getDuration(lookup, "CONFIRM_DELAY", defaultConfirmDelay),
		PollInterval:    getDuration(lookup, "POLL_INTERVAL", defaultPollInterval),
		WorkerPoolSize:  getInt(lookup, "WORKER_POOL_SIZE", defaultWorkerPoolSize),
		ConfirmBatch:    getInt(lookup, "CONFIRM_BATCH_SIZE", defaultConfirmBatch),
		ShutdownTimeout: getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("bitenow", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		confirmDelayStr    = cfg.ConfirmDelay.String()
		pollIntervalStr    = cfg.PollInterval.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.RedisAddress, "r", cfg.RedisAddress, "Redis address for cart snapshots")
	fs.StringVar(&cfg.TokenSecret, "token-secret", cfg.TokenSecret, "Secret for signing auth tokens")
	fs.Float64Var(&cfg.TaxRate, "tax-rate", cfg.TaxRate, "Cart tax rate")
	fs.Float64Var(&cfg.DeliveryFee, "delivery-fee", cfg.DeliveryFee, "Flat delivery fee for non-empty carts")
	fs.StringVar(&confirmDelayStr, "confirm-delay", confirmDelayStr, "Delay before pending orders auto-confirm")
	fs.StringVar(&pollIntervalStr, "poll-interval", pollIntervalStr, "Interval between auto-confirm polls")
	fs.IntVar(&cfg.WorkerPoolSize, "worker-pool", cfg.WorkerPoolSize, "Number of concurrent confirm workers")
	fs.IntVar(&cfg.ConfirmBatch, "confirm-batch", cfg.ConfirmBatch, "Maximum orders per confirm polling batch")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.ConfirmDelay, err = time.ParseDuration(confirmDelayStr); err != nil {
		return nil, fmt.Errorf("invalid confirm delay: %w", err)
	}

	if cfg.PollInterval, err = time.ParseDuration(pollIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid poll interval: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile, ok := lookup("TOKEN_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read token secret file: %w", err)
		}
		cfg.TokenSecret = string(content)
	}

	if cfg.TaxRate < 0 {
		return nil, fmt.Errorf("tax rate must not be negative")
	}

	if cfg.DeliveryFee < 0 {
		return nil, fmt.Errorf("delivery fee must not be negative")
	}

	if cfg.WorkerPoolSize <= 0 {
		cfg.WorkerPoolSize = defaultWorkerPoolSize
	}

	if cfg.ConfirmBatch <= 0 {
		cfg.ConfirmBatch = defaultConfirmBatch
	}

	if cfg.ConfirmDelay <= 0 {
		cfg.ConfirmDelay = defaultConfirmDelay
	}

	if cfg.PollInterval <= 0 {
		cfg.PollInterval = defaultPollInterval
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getFloat(lookup envLookup, key string, def float64) float64 {
	if v, ok := lookup(key); ok && v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
