package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Domje/Arc-Looterputer/internal/storage"
)

var allEnvVars = []string{
	EnvSchemaVersion, EnvPort, EnvAPIKey, EnvTrustedProxies, EnvLogLevel, EnvLogFormat,
	EnvLogAddSource, EnvLogDir, EnvEnvironment, EnvItemsPath, EnvHideoutPath, EnvStrictCatalog, EnvInfoDir,
	EnvStorageBackend, EnvSQLitePath, EnvDatabaseURL, EnvDBMaxConns, EnvRedisAddr,
	EnvRedisPassword, EnvRedisDB, EnvRedisPrefix, EnvSearchCacheSize, EnvSearchCacheTTL,
	EnvRateLimit, EnvShutdownGrace, EnvDiscordToken, EnvDiscordAppID, EnvDiscordGuildID,
	EnvAPIBaseURL, EnvDiscordHealthPort, EnvDiscordNotifyChan, EnvDiscordForceSync,
}

// clearEnvVars unsets every variable the package reads and restores them
// when the test ends.
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, key := range allEnvVars {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

// TestLoad tests configuration loading from environment
func TestLoad(t *testing.T) {
	t.Run("defaults when no env vars set", func(t *testing.T) {
		clearEnvVars(t)

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, DefaultPort, cfg.Port)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, "dev", cfg.Environment)
		assert.Equal(t, storage.BackendMemory, cfg.StorageBackend)
		assert.Empty(t, cfg.ItemsPath, "empty path selects the embedded catalog")
		assert.Empty(t, cfg.APIKey)
		assert.Equal(t, DefaultCacheSize, cfg.SearchCacheSize)
		assert.Equal(t, DefaultCacheTTL, cfg.SearchCacheTTL)
		assert.Nil(t, cfg.TrustedProxies)
	})

	t.Run("reads environment variables", func(t *testing.T) {
		clearEnvVars(t)

		t.Setenv(EnvPort, "3000")
		t.Setenv(EnvAPIKey, "custom-api-key")
		t.Setenv(EnvLogLevel, "DEBUG")
		t.Setenv(EnvLogFormat, "json")
		t.Setenv(EnvEnvironment, "production")
		t.Setenv(EnvTrustedProxies, "10.0.0.1, ,10.0.0.2")
		t.Setenv(EnvStorageBackend, "Redis")
		t.Setenv(EnvRedisAddr, "localhost:6379")
		t.Setenv(EnvRedisDB, "2")
		t.Setenv(EnvItemsPath, "/data/items.json")
		t.Setenv(EnvStrictCatalog, "true")
		t.Setenv(EnvSearchCacheTTL, "90s")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 3000, cfg.Port)
		assert.Equal(t, "custom-api-key", cfg.APIKey)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, "production", cfg.Environment)
		assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, cfg.TrustedProxies)
		assert.Equal(t, storage.BackendRedis, cfg.StorageBackend)
		assert.Equal(t, 2, cfg.RedisDB)
		assert.Equal(t, "/data/items.json", cfg.ItemsPath)
		assert.True(t, cfg.StrictCatalog)
		assert.Equal(t, 90*time.Second, cfg.SearchCacheTTL)
	})

	t.Run("port validation", func(t *testing.T) {
		testCases := []struct {
			name        string
			portValue   string
			shouldError bool
		}{
			{"max valid port", "65535", false},
			{"zero port", "0", true},
			{"negative port", "-1", true},
			{"above max port", "65536", true},
			{"float port", "8080.5", true},
			{"empty string", "", true},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				clearEnvVars(t)
				t.Setenv(EnvPort, tc.portValue)

				_, err := Load()

				if tc.shouldError {
					assert.Error(t, err)
				} else {
					assert.NoError(t, err)
				}
			})
		}
	})
}

func TestConfig_ValidateBackends(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"memory", Config{StorageBackend: storage.BackendMemory}, ""},
		{"sqlite with path", Config{StorageBackend: storage.BackendSQLite, SQLitePath: "x.db"}, ""},
		{"sqlite without path", Config{StorageBackend: storage.BackendSQLite}, EnvSQLitePath},
		{"postgres without url", Config{StorageBackend: storage.BackendPostgres}, EnvDatabaseURL},
		{"redis without addr", Config{StorageBackend: storage.BackendRedis}, EnvRedisAddr},
		{"unknown backend", Config{StorageBackend: "etcd"}, "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			cfg.Port = DefaultPort
			cfg.SearchCacheSize = DefaultCacheSize

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfig_ValidateCacheSize(t *testing.T) {
	cfg := Config{Port: DefaultPort, StorageBackend: storage.BackendMemory}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvSearchCacheSize)
}
