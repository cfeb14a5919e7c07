package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultPort              = "8080"
	defaultRateLimit         = "100-M"
	defaultCurrencyCacheSize = 256
	defaultCurrencyCacheTTL  = 5 * time.Minute
	defaultShutdownTimeout   = 10 * time.Second
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool
	RunMigrations bool
	SeedData      bool

	// RateLimit is a ulule/limiter formatted rate applied per client IP to write routes, e.g. "100-M".
	RateLimit          string
	CORSAllowedOrigins string

	// CurrencyCacheSize of 0 disables the currency lookup cache.
	CurrencyCacheSize int
	CurrencyCacheTTL  time.Duration

	ShutdownTimeout time.Duration
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", defaultPort)
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("RUN_MIGRATIONS", true)
	v.SetDefault("SEED_DATA", false)
	v.SetDefault("RATE_LIMIT", defaultRateLimit)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("CURRENCY_CACHE_SIZE", defaultCurrencyCacheSize)
	v.SetDefault("CURRENCY_CACHE_TTL", defaultCurrencyCacheTTL.String())
	v.SetDefault("SHUTDOWN_TIMEOUT", defaultShutdownTimeout.String())

	// Environment variables override .env values, which override the defaults above.
	v.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:        v.GetString("PGSQL_URL"),
		Port:               v.GetString("PORT"),
		IsProduction:       v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:      v.GetBool("ENABLE_DB_CHECK"),
		RunMigrations:      v.GetBool("RUN_MIGRATIONS"),
		SeedData:           v.GetBool("SEED_DATA"),
		RateLimit:          v.GetString("RATE_LIMIT"),
		CORSAllowedOrigins: v.GetString("CORS_ALLOWED_ORIGINS"),
		CurrencyCacheSize:  v.GetInt("CURRENCY_CACHE_SIZE"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	if cfg.Port == "" {
		cfg.Port = defaultPort
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	if cfg.RateLimit == "" {
		cfg.RateLimit = defaultRateLimit
	}

	if cfg.CurrencyCacheSize < 0 {
		log.Printf("Warning: Negative CURRENCY_CACHE_SIZE (%d). Disabling the currency cache.\n", cfg.CurrencyCacheSize)
		cfg.CurrencyCacheSize = 0
	}

	cfg.CurrencyCacheTTL = durationOrDefault(v, "CURRENCY_CACHE_TTL", defaultCurrencyCacheTTL)
	cfg.ShutdownTimeout = durationOrDefault(v, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout)

	return cfg, nil
}

// durationOrDefault parses key as a Go duration ("30s", "5m") and falls back to def when it is missing or invalid.
func durationOrDefault(v *viper.Viper, key string, def time.Duration) time.Duration {
	raw := v.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, def)
		}
		return def
	}
	return d
}
