package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Domje/Arc-Looterputer/internal/catalog"
	"github.com/Domje/Arc-Looterputer/internal/config"
	"github.com/Domje/Arc-Looterputer/internal/database"
	"github.com/Domje/Arc-Looterputer/internal/database/postgres"
	"github.com/Domje/Arc-Looterputer/internal/storage"
	"github.com/Domje/Arc-Looterputer/internal/storage/redis"
	"github.com/Domje/Arc-Looterputer/internal/storage/sqlite"
)

// LoadCatalog reads the item and hideout data named by the configuration,
// falling back to the built-in sample data for empty paths.
func LoadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	c, err := catalog.NewLoader(catalog.Options{Strict: cfg.StrictCatalog}).Load(cfg.ItemsPath, cfg.HideoutPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgLoadCatalog, err)
	}
	slog.Info(LogMsgCatalogReady, "items", c.Len(), "modules", len(c.Modules()))
	return c, nil
}

// OpenStorage opens the shopping list backend selected by STORAGE_BACKEND.
// The postgres backend runs the embedded migrations first.
func OpenStorage(ctx context.Context, cfg *config.Config) (storage.Store, error) {
	var (
		store storage.Store
		err   error
	)

	switch cfg.StorageBackend {
	case storage.BackendMemory:
		store = storage.NewMemory()
	case storage.BackendSQLite:
		store, err = sqlite.Open(ctx, cfg.SQLitePath)
	case storage.BackendPostgres:
		store, err = openPostgres(ctx, cfg)
	case storage.BackendRedis:
		store, err = redis.New(ctx, redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			Prefix:   cfg.RedisPrefix,
		})
	default:
		return nil, fmt.Errorf(ErrMsgUnknownBackend, cfg.StorageBackend)
	}
	if err != nil {
		return nil, fmt.Errorf(ErrMsgOpenStorage+": %w", cfg.StorageBackend, err)
	}

	slog.Info(LogMsgStorageOpened, "backend", cfg.StorageBackend)
	return store, nil
}

func openPostgres(ctx context.Context, cfg *config.Config) (storage.Store, error) {
	if err := database.Migrate(ctx, cfg.DatabaseURL); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgMigrate, err)
	}
	slog.Info(LogMsgMigrationsRun)

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, 0, 0)
	if err != nil {
		return nil, err
	}
	return postgres.NewKVStore(pool), nil
}
