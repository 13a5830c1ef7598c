// Package config holds the server configuration. Values come from flags
// and environment variables; flags win. The JWT secret has no default and
// must be supplied before the server starts.
package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Defaults for everything except the secret.
const (
	DefaultAddress         = ":8080"
	DefaultDatabasePath    = "bookshelf.db"
	DefaultTokenTTL        = 2 * time.Hour
	DefaultBcryptCost      = 10
	DefaultRateLimit       = 100
	DefaultRateLimitWindow = time.Minute
)

// Config is the process-wide server configuration. It is read-only after
// Load returns.
type Config struct {
	Address         string        // listen address
	DatabasePath    string        // path to the SQLite database file
	JWTSecret       string        // token signing secret, required
	TokenTTL        time.Duration // identity token lifetime
	BcryptCost      int           // password hashing work factor
	RateLimit       int           // requests allowed per window per client
	RateLimitWindow time.Duration
}

// Load builds the configuration from the environment and the given
// command-line arguments (without the program name).
func Load(args []string) (*Config, error) {
	cfg := &Config{
		Address:         envString("BOOKSHELF_ADDRESS", DefaultAddress),
		DatabasePath:    envString("BOOKSHELF_DB_PATH", DefaultDatabasePath),
		JWTSecret:       os.Getenv("BOOKSHELF_JWT_SECRET"),
		TokenTTL:        envDuration("BOOKSHELF_TOKEN_TTL", DefaultTokenTTL),
		BcryptCost:      envInt("BOOKSHELF_BCRYPT_COST", DefaultBcryptCost),
		RateLimit:       envInt("BOOKSHELF_RATE_LIMIT", DefaultRateLimit),
		RateLimitWindow: envDuration("BOOKSHELF_RATE_LIMIT_WINDOW", DefaultRateLimitWindow),
	}

	fs := flag.NewFlagSet("bookshelf-server", flag.ContinueOnError)
	fs.StringVar(&cfg.Address, "address", cfg.Address, "listen address")
	fs.StringVar(&cfg.DatabasePath, "db", cfg.DatabasePath, "path to the SQLite database file")
	fs.StringVar(&cfg.JWTSecret, "jwt-secret", cfg.JWTSecret, "token signing secret")
	fs.DurationVar(&cfg.TokenTTL, "token-ttl", cfg.TokenTTL, "identity token lifetime")
	fs.IntVar(&cfg.BcryptCost, "bcrypt-cost", cfg.BcryptCost, "bcrypt work factor")
	fs.IntVar(&cfg.RateLimit, "rate-limit", cfg.RateLimit, "requests allowed per window per client")
	fs.DurationVar(&cfg.RateLimitWindow, "rate-limit-window", cfg.RateLimitWindow, "rate limit window")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("jwt secret is required (set BOOKSHELF_JWT_SECRET or -jwt-secret)")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("token ttl must be positive")
	}
	if c.RateLimit <= 0 {
		return fmt.Errorf("rate limit must be positive")
	}
	return nil
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
