package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	// Service token auth for the HTTP surface
	ServiceTokenSecret string
	ServiceTokenIssuer string
	ServiceTokenExpiry time.Duration

	// Per-IP rate limit in ulule/limiter notation, e.g. "100-M"
	RateLimit string

	// System-wide fallback account codes, the last tier of default account
	// resolution. One per entry type.
	DefaultDebitAccount  string
	DefaultCreditAccount string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("SERVICE_TOKEN_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("SERVICE_TOKEN_ISSUER", "ledger-engine-app")
	viper.SetDefault("SERVICE_TOKEN_EXPIRY", "24h")
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("DEFAULT_DEBIT_ACCOUNT", "9998")
	viper.SetDefault("DEFAULT_CREDIT_ACCOUNT", "9999")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	cfg.ServiceTokenSecret = viper.GetString("SERVICE_TOKEN_SECRET")
	if cfg.ServiceTokenSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: SERVICE_TOKEN_SECRET not set. Using default insecure key.")
	}
	cfg.ServiceTokenIssuer = viper.GetString("SERVICE_TOKEN_ISSUER")

	expiryStr := viper.GetString("SERVICE_TOKEN_EXPIRY")
	expiry, err := time.ParseDuration(expiryStr)
	if err != nil {
		expiry = 24 * time.Hour
		log.Printf("Warning: Invalid value for SERVICE_TOKEN_EXPIRY ('%s'). Defaulting to %s.\n", expiryStr, expiry.String())
	}
	cfg.ServiceTokenExpiry = expiry

	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	cfg.DefaultDebitAccount = viper.GetString("DEFAULT_DEBIT_ACCOUNT")
	cfg.DefaultCreditAccount = viper.GetString("DEFAULT_CREDIT_ACCOUNT")

	return cfg, nil
}
