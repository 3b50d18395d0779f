package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unsetForTest(key string) {
	_ = os.Unsetenv(key)
}

func TestValidateEnv_MissingVersion(t *testing.T) {
	clearEnvVars(t)

	err := ValidateEnv(RequiredServerEnvVars)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ENV_SCHEMA_VERSION is not set")
}

func TestValidateEnv_VersionMismatch(t *testing.T) {
	clearEnvVars(t)
	t.Setenv(EnvSchemaVersion, "0.9")

	err := ValidateEnv(RequiredServerEnvVars)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ENV_SCHEMA_VERSION mismatch")
	assert.Contains(t, err.Error(), "expected 1.0, got 0.9")
}

func TestValidateEnv_MissingRequired(t *testing.T) {
	clearEnvVars(t)
	t.Setenv(EnvSchemaVersion, ExpectedEnvSchemaVersion)
	t.Setenv(EnvDiscordToken, "token")

	err := ValidateEnv(RequiredDiscordEnvVars)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required environment variables: DISCORD_APP_ID")

	assert.NoError(t, ValidateEnv(RequiredServerEnvVars))
}

func TestValidateEnvWithWarnings(t *testing.T) {
	t.Run("missing api key", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv(EnvSchemaVersion, ExpectedEnvSchemaVersion)

		warnings, err := ValidateEnvWithWarnings(RequiredServerEnvVars)
		require.NoError(t, err)
		require.Len(t, warnings, 1)
		assert.Contains(t, warnings[0], "API_KEY is not set")
	})

	t.Run("example values", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv(EnvSchemaVersion, ExpectedEnvSchemaVersion)
		t.Setenv(EnvAPIKey, "generate_with_openssl_rand_hex_32")
		t.Setenv(EnvDatabaseURL, "postgres://app:change_this_secure_password@db/app")

		warnings, err := ValidateEnvWithWarnings(RequiredServerEnvVars)
		require.NoError(t, err, "Should not error even with warnings")
		require.Len(t, warnings, 2)
		assert.Contains(t, warnings[0], "API_KEY")
		assert.Contains(t, warnings[1], "DATABASE_URL")
	})
}
