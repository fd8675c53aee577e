package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// ProviderConfig holds the credentials of one aggregator
type ProviderConfig struct {
	BaseURL    string
	APIKey     string
	WebhookURL string
}

// Config is the application configuration
type Config struct {
	RunAddress  string        // Address and port of the HTTP server
	DatabaseURI string        // PostgreSQL connection string
	JWTSecret   string        // Secret shared with the account service
	JWTTokenTTL time.Duration // Lifetime of tokens issued by the jwt manager
	LogLevel    string        // "development", "production" or a zap level name
	RedisAddr   string        // Optional, enables the Redis cooldown guard
	NATSURL     string        // Optional, enables NATS order events

	Geonettech ProviderConfig
	Hubnet     ProviderConfig
	Telecel    ProviderConfig

	ProviderTimeout  time.Duration // Upper bound of one provider call
	ProviderRoutes   string        // Network to provider overrides, "MTN:hubnet,..."
	ProviderCooldown time.Duration // Window after which a number may be sent again
	PurchaseCooldown time.Duration // Window in which bulk orders skip recently served numbers
	MaxBatchSize     int

	// Reconciliation worker
	WorkerPoolSize     int
	WorkerQueueSize    int
	WorkerScanInterval time.Duration
	ReconcileAfter     time.Duration
}

// Load reads the configuration from defaults, flags, a .env file and the environment.
// Priority: env > flags > defaults.
func Load() (*Config, error) {
	// a missing .env file is fine, real environment variables are still used
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env: %w", err)
	}

	return load(os.Args[1:])
}

func load(args []string) (*Config, error) {
	cfg := &Config{
		JWTTokenTTL:        24 * time.Hour,
		LogLevel:           "info",
		ProviderTimeout:    45 * time.Second,
		ProviderCooldown:   5 * time.Minute,
		PurchaseCooldown:   30 * time.Minute,
		MaxBatchSize:       100,
		WorkerPoolSize:     3,
		WorkerQueueSize:    100,
		WorkerScanInterval: time.Minute,
		ReconcileAfter:     15 * time.Minute,
	}

	fs := flag.NewFlagSet("dataplatform", flag.ContinueOnError)
	fs.StringVar(&cfg.RunAddress, "a", ":8080", "address and port to run server")
	fs.StringVar(&cfg.DatabaseURI, "d", "", "database URI")
	fs.StringVar(&cfg.RedisAddr, "redis", "", "redis address")
	fs.StringVar(&cfg.NATSURL, "nats", "", "nats URL")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	lookupString("RUN_ADDRESS", &cfg.RunAddress)
	lookupString("DATABASE_URI", &cfg.DatabaseURI)
	lookupString("LOG_LEVEL", &cfg.LogLevel)
	lookupString("REDIS_ADDR", &cfg.RedisAddr)
	lookupString("NATS_URL", &cfg.NATSURL)
	lookupString("PROVIDER_ROUTES", &cfg.ProviderRoutes)

	// secrets only come from the environment
	lookupString("JWT_SECRET", &cfg.JWTSecret)
	lookupProvider("GEONETTECH", &cfg.Geonettech)
	lookupProvider("HUBNET", &cfg.Hubnet)
	lookupProvider("TELECEL", &cfg.Telecel)

	lookupInt("MAX_BATCH_SIZE", &cfg.MaxBatchSize)
	lookupInt("WORKER_POOL_SIZE", &cfg.WorkerPoolSize)
	lookupInt("WORKER_QUEUE_SIZE", &cfg.WorkerQueueSize)

	lookupDuration("JWT_TOKEN_TTL", &cfg.JWTTokenTTL)
	lookupDuration("PROVIDER_TIMEOUT", &cfg.ProviderTimeout)
	lookupDuration("PROVIDER_COOLDOWN", &cfg.ProviderCooldown)
	lookupDuration("PURCHASE_COOLDOWN", &cfg.PurchaseCooldown)
	lookupDuration("WORKER_SCAN_INTERVAL", &cfg.WorkerScanInterval)
	lookupDuration("RECONCILE_AFTER", &cfg.ReconcileAfter)

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI is required (use -d flag or DATABASE_URI env)")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET env is required")
	}

	return cfg, nil
}

func lookupString(key string, dst *string) {
	if v, ok := os.LookupEnv(key); ok {
		*dst = v
	}
}

func lookupInt(key string, dst *int) {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			*dst = n
		}
	}
}

func lookupDuration(key string, dst *time.Duration) {
	if v, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			*dst = d
		}
	}
}

func lookupProvider(prefix string, dst *ProviderConfig) {
	lookupString(prefix+"_BASE_URL", &dst.BaseURL)
	lookupString(prefix+"_API_KEY", &dst.APIKey)
	lookupString(prefix+"_WEBHOOK_URL", &dst.WebhookURL)
}
