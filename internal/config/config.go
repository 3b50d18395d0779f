// Package config reads process configuration from the environment, with
// optional .env file support.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/Domje/Arc-Looterputer/internal/storage"
)

// Config holds the application configuration
type Config struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	RateLimit      int
	ShutdownGrace  time.Duration

	LogLevel     string
	LogFormat    string
	LogAddSource bool
	LogDir       string // session log files are written here when set
	Environment  string

	// Catalog sources; empty paths use the built-in sample data
	ItemsPath     string
	HideoutPath   string
	StrictCatalog bool
	InfoDir       string

	StorageBackend storage.Backend
	SQLitePath     string
	DatabaseURL    string
	DBMaxConns     int
	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	RedisPrefix    string

	SearchCacheSize int
	SearchCacheTTL  time.Duration
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// A missing .env file is fine; real env vars may be set
	_ = godotenv.Load()

	cfg := &Config{
		APIKey:         getEnv(EnvAPIKey, ""),
		TrustedProxies: getEnvAsList(EnvTrustedProxies),
		RateLimit:      getEnvAsInt(EnvRateLimit, 0),
		ShutdownGrace:  getEnvAsDuration(EnvShutdownGrace, DefaultShutdownGrace),

		LogLevel:     strings.ToLower(getEnv(EnvLogLevel, DefaultLogLevel)),
		LogFormat:    strings.ToLower(getEnv(EnvLogFormat, DefaultLogFormat)),
		LogAddSource: getEnvAsBool(EnvLogAddSource, false),
		LogDir:       getEnv(EnvLogDir, ""),
		Environment:  getEnv(EnvEnvironment, DefaultEnvironment),

		ItemsPath:     getEnv(EnvItemsPath, ""),
		HideoutPath:   getEnv(EnvHideoutPath, ""),
		StrictCatalog: getEnvAsBool(EnvStrictCatalog, false),
		InfoDir:       getEnv(EnvInfoDir, ""),

		StorageBackend: storage.Backend(strings.ToLower(getEnv(EnvStorageBackend, DefaultStorageBackend))),
		SQLitePath:     getEnv(EnvSQLitePath, DefaultSQLitePath),
		DatabaseURL:    getEnv(EnvDatabaseURL, ""),
		DBMaxConns:     getEnvAsInt(EnvDBMaxConns, DefaultDBMaxConns),
		RedisAddr:      getEnv(EnvRedisAddr, ""),
		RedisPassword:  getEnv(EnvRedisPassword, ""),
		RedisDB:        getEnvAsInt(EnvRedisDB, 0),
		RedisPrefix:    getEnv(EnvRedisPrefix, DefaultRedisPrefix),

		SearchCacheSize: getEnvAsInt(EnvSearchCacheSize, DefaultCacheSize),
		SearchCacheTTL:  getEnvAsDuration(EnvSearchCacheTTL, DefaultCacheTTL),
	}

	port, err := strconv.Atoi(getEnv(EnvPort, strconv.Itoa(DefaultPort)))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges and the settings each storage backend needs.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT value: %d", c.Port)
	}

	switch c.StorageBackend {
	case storage.BackendMemory:
	case storage.BackendSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("%s must be set for the %s backend", EnvSQLitePath, c.StorageBackend)
		}
	case storage.BackendPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("%s must be set for the %s backend", EnvDatabaseURL, c.StorageBackend)
		}
	case storage.BackendRedis:
		if c.RedisAddr == "" {
			return fmt.Errorf("%s must be set for the %s backend", EnvRedisAddr, c.StorageBackend)
		}
	default:
		return fmt.Errorf("unknown %s %q (want memory, sqlite, postgres or redis)", EnvStorageBackend, c.StorageBackend)
	}

	if c.SearchCacheSize <= 0 {
		return fmt.Errorf("%s must be positive, got %d", EnvSearchCacheSize, c.SearchCacheSize)
	}
	return nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt returns the default when the variable is unset or not an integer
func getEnvAsInt(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(strings.TrimSpace(valueStr))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsBool accepts anything strconv.ParseBool does
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.ParseBool(strings.TrimSpace(valueStr))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration parses Go durations such as "90s" or "10m"
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := time.ParseDuration(strings.TrimSpace(valueStr))
	if err != nil || value < 0 {
		return defaultValue
	}
	return value
}

// getEnvAsList splits a comma separated variable, dropping empty entries
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
