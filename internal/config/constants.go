package config

import "time"

// Defaults for values not set in the environment
const (
	DefaultPort           = 8080
	DefaultLogLevel       = "info"
	DefaultLogFormat      = "text"
	DefaultEnvironment    = "dev"
	DefaultServiceName    = "arc-looterputer"
	DefaultStorageBackend = "memory"
	DefaultSQLitePath     = "data/looterputer.db"
	DefaultRedisPrefix    = "looterputer:"
	DefaultCacheSize      = 256
	DefaultCacheTTL       = 10 * time.Minute
	DefaultShutdownGrace  = 10 * time.Second
	DefaultAPIBaseURL     = "http://localhost:8080"
	DefaultDBMaxConns     = 10

	DefaultDiscordHealthPort = 8082
)

// Environment variable names
const (
	EnvSchemaVersion     = "ENV_SCHEMA_VERSION"
	EnvPort              = "PORT"
	EnvAPIKey            = "API_KEY"
	EnvTrustedProxies    = "TRUSTED_PROXIES"
	EnvLogLevel          = "LOG_LEVEL"
	EnvLogFormat         = "LOG_FORMAT"
	EnvLogAddSource      = "LOG_ADD_SOURCE"
	EnvLogDir            = "LOG_DIR"
	EnvEnvironment       = "ENVIRONMENT"
	EnvItemsPath         = "ITEMS_PATH"
	EnvHideoutPath       = "HIDEOUT_PATH"
	EnvStrictCatalog     = "STRICT_CATALOG"
	EnvInfoDir           = "INFO_DIR"
	EnvStorageBackend    = "STORAGE_BACKEND"
	EnvSQLitePath        = "SQLITE_PATH"
	EnvDatabaseURL       = "DATABASE_URL"
	EnvDBMaxConns        = "DB_MAX_CONNS"
	EnvRedisAddr         = "REDIS_ADDR"
	EnvRedisPassword     = "REDIS_PASSWORD"
	EnvRedisDB           = "REDIS_DB"
	EnvRedisPrefix       = "REDIS_PREFIX"
	EnvSearchCacheSize   = "SEARCH_CACHE_SIZE"
	EnvSearchCacheTTL    = "SEARCH_CACHE_TTL"
	EnvRateLimit         = "RATE_LIMIT_PER_5MIN"
	EnvShutdownGrace     = "SHUTDOWN_GRACE"
	EnvDiscordToken      = "DISCORD_TOKEN"
	EnvDiscordAppID      = "DISCORD_APP_ID"
	EnvDiscordGuildID    = "DISCORD_GUILD_ID"
	EnvAPIBaseURL        = "API_URL"
	EnvDiscordHealthPort = "DISCORD_HEALTH_PORT"
	EnvDiscordNotifyChan = "DISCORD_NOTIFICATION_CHANNEL_ID"
	EnvDiscordForceSync  = "DISCORD_FORCE_COMMAND_UPDATE"
)
