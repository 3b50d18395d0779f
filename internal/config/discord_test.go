package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDiscord(t *testing.T) {
	t.Run("requires token and app id", func(t *testing.T) {
		clearEnvVars(t)
		require.NoError(t, os.Setenv(EnvSchemaVersion, ExpectedEnvSchemaVersion))

		_, err := LoadDiscord()

		require.Error(t, err)
		assert.Contains(t, err.Error(), EnvDiscordToken)
		assert.Contains(t, err.Error(), EnvDiscordAppID)
	})

	t.Run("defaults", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv(EnvSchemaVersion, ExpectedEnvSchemaVersion)
		t.Setenv(EnvDiscordToken, "token")
		t.Setenv(EnvDiscordAppID, "app")

		cfg, err := LoadDiscord()

		require.NoError(t, err)
		assert.Equal(t, DefaultAPIBaseURL, cfg.APIURL)
		assert.Equal(t, DefaultDiscordHealthPort, cfg.HealthPort)
		assert.Empty(t, cfg.GuildID)
		assert.False(t, cfg.ForceCommandUpdate)
	})

	t.Run("overrides", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv(EnvSchemaVersion, ExpectedEnvSchemaVersion)
		t.Setenv(EnvDiscordToken, "token")
		t.Setenv(EnvDiscordAppID, "app")
		t.Setenv(EnvDiscordGuildID, "guild")
		t.Setenv(EnvAPIBaseURL, "http://api.internal:9000/")
		t.Setenv(EnvAPIKey, "secret")
		t.Setenv(EnvDiscordNotifyChan, "12345")
		t.Setenv(EnvDiscordForceSync, "true")

		cfg, err := LoadDiscord()

		require.NoError(t, err)
		assert.Equal(t, "guild", cfg.GuildID)
		assert.Equal(t, "http://api.internal:9000", cfg.APIURL)
		assert.Equal(t, "secret", cfg.APIKey)
		assert.Equal(t, "12345", cfg.NotificationChannel)
		assert.True(t, cfg.ForceCommandUpdate)
	})

	t.Run("rejects bad health port", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv(EnvSchemaVersion, ExpectedEnvSchemaVersion)
		t.Setenv(EnvDiscordToken, "token")
		t.Setenv(EnvDiscordAppID, "app")
		t.Setenv(EnvDiscordHealthPort, "70000")

		_, err := LoadDiscord()

		require.Error(t, err)
	})
}
