package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
)

// DiscordConfig holds the settings of the Discord bot process
type DiscordConfig struct {
	Token               string
	AppID               string
	GuildID             string // empty registers commands globally
	APIURL              string
	APIKey              string
	HealthPort          int
	NotificationChannel string
	ForceCommandUpdate  bool

	LogLevel    string
	LogFormat   string
	Environment string
}

// LoadDiscord reads the bot configuration from the environment.
func LoadDiscord() (*DiscordConfig, error) {
	_ = godotenv.Load()

	if err := ValidateEnv(RequiredDiscordEnvVars); err != nil {
		return nil, err
	}

	cfg := &DiscordConfig{
		Token:               getEnv(EnvDiscordToken, ""),
		AppID:               getEnv(EnvDiscordAppID, ""),
		GuildID:             getEnv(EnvDiscordGuildID, ""),
		APIURL:              strings.TrimRight(getEnv(EnvAPIBaseURL, DefaultAPIBaseURL), "/"),
		APIKey:              getEnv(EnvAPIKey, ""),
		HealthPort:          getEnvAsInt(EnvDiscordHealthPort, DefaultDiscordHealthPort),
		NotificationChannel: getEnv(EnvDiscordNotifyChan, ""),
		ForceCommandUpdate:  getEnvAsBool(EnvDiscordForceSync, false),
		LogLevel:            strings.ToLower(getEnv(EnvLogLevel, DefaultLogLevel)),
		LogFormat:           strings.ToLower(getEnv(EnvLogFormat, DefaultLogFormat)),
		Environment:         getEnv(EnvEnvironment, DefaultEnvironment),
	}

	if cfg.HealthPort <= 0 || cfg.HealthPort > 65535 {
		return nil, fmt.Errorf("invalid %s value: %d", EnvDiscordHealthPort, cfg.HealthPort)
	}
	return cfg, nil
}
