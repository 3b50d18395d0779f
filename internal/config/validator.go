package config

import (
	"fmt"
	"os"
	"strings"
)

// ExpectedEnvSchemaVersion is the schema version that the application expects
const ExpectedEnvSchemaVersion = "1.0"

// Required environment variables per process
var (
	RequiredServerEnvVars  = []string{EnvSchemaVersion}
	RequiredDiscordEnvVars = []string{EnvSchemaVersion, EnvDiscordToken, EnvDiscordAppID}
)

// ValidateEnv checks that the required variables are set and that the
// schema version matches expectations.
func ValidateEnv(required []string) error {
	schemaVersion := os.Getenv(EnvSchemaVersion)
	if schemaVersion == "" {
		return fmt.Errorf("%s is not set - please update your .env file to include this field (expected: %s)", EnvSchemaVersion, ExpectedEnvSchemaVersion)
	}

	if schemaVersion != ExpectedEnvSchemaVersion {
		return fmt.Errorf("%s mismatch: expected %s, got %s - your .env file may be outdated", EnvSchemaVersion, ExpectedEnvSchemaVersion, schemaVersion)
	}

	var missing []string
	for _, envVar := range required {
		if os.Getenv(envVar) == "" {
			missing = append(missing, envVar)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return nil
}

// ValidateEnvWithWarnings runs ValidateEnv and reports non-critical issues
// such as example values left in place.
func ValidateEnvWithWarnings(required []string) ([]string, error) {
	if err := ValidateEnv(required); err != nil {
		return nil, err
	}

	var warnings []string

	if os.Getenv(EnvAPIKey) == "" {
		warnings = append(warnings, "API_KEY is not set - shopping list writes are open to anyone who can reach the server")
	}

	if os.Getenv(EnvAPIKey) == "generate_with_openssl_rand_hex_32" {
		warnings = append(warnings, "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32")
	}

	if strings.Contains(os.Getenv(EnvDatabaseURL), "change_this_secure_password") {
		warnings = append(warnings, "DATABASE_URL appears to be using the example password")
	}

	return warnings, nil
}
