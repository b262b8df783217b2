// ABOUTME: Centralized configuration for the honeypot ledger
// ABOUTME: Loads from environment variables with validation and defaults
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Store driver names accepted by STORE_DRIVER.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds all configuration for the ledger and cache.
// Defaults are suitable for local development only.
type Config struct {
	// Durable store settings
	StoreDriver   string
	StoreHost     string
	StorePort     int
	StoreName     string
	StoreUser     string
	StorePassword string
	StorePath     string // sqlite only

	// Connection pool bounds and per-operation ceiling
	StoreMinConns int
	StoreMaxConns int
	StoreTimeout  time.Duration

	// Cache settings
	CacheHost string
	CachePort int
	CacheDB   int
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		// Defaults
		StoreDriver:   getEnv("STORE_DRIVER", DriverPostgres),
		StoreHost:     getEnv("POSTGRES_HOST", "localhost"),
		StorePort:     getEnvInt("POSTGRES_PORT", 5432),
		StoreName:     getEnv("POSTGRES_DB", "honeypot"),
		StoreUser:     getEnv("POSTGRES_USER", "postgres"),
		StorePassword: getEnv("POSTGRES_PASSWORD", "12345"),
		StorePath:     getEnv("SQLITE_PATH", "honeyledger.db"),
		StoreMinConns: getEnvInt("STORE_MIN_CONNS", 5),
		StoreMaxConns: getEnvInt("STORE_MAX_CONNS", 20),
		StoreTimeout:  getEnvDuration("STORE_TIMEOUT", 60*time.Second),
		CacheHost:     getEnv("REDIS_HOST", "localhost"),
		CachePort:     getEnvInt("REDIS_PORT", 6379),
		CacheDB:       getEnvInt("REDIS_DB", 0),
	}

	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if c.StoreDriver != DriverPostgres && c.StoreDriver != DriverSQLite {
		return fmt.Errorf("STORE_DRIVER must be %q or %q, got %q", DriverPostgres, DriverSQLite, c.StoreDriver)
	}
	if c.StoreMinConns < 1 {
		return fmt.Errorf("STORE_MIN_CONNS must be >= 1, got %d", c.StoreMinConns)
	}
	if c.StoreMaxConns < c.StoreMinConns {
		return fmt.Errorf("STORE_MAX_CONNS must be >= STORE_MIN_CONNS, got %d < %d", c.StoreMaxConns, c.StoreMinConns)
	}
	if c.StoreTimeout <= 0 {
		return fmt.Errorf("STORE_TIMEOUT must be positive, got %s", c.StoreTimeout)
	}
	if c.StorePort <= 0 || c.CachePort <= 0 {
		return fmt.Errorf("ports must be positive, got store=%d cache=%d", c.StorePort, c.CachePort)
	}
	return nil
}

// PostgresDSN builds the lib/pq connection string
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%d dbname=%s user=%s password=%s sslmode=disable",
		c.StoreHost, c.StorePort, c.StoreName, c.StoreUser, c.StorePassword)
}

// CacheAddr returns the Redis host:port address
func (c *Config) CacheAddr() string {
	return fmt.Sprintf("%s:%d", c.CacheHost, c.CachePort)
}

// Helper functions
func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
