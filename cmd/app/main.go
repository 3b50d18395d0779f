// Command app serves the Arc Raiders item catalog, hideout data and the
// shared shopping list over HTTP.
package main

//go:generate swag init -g cmd/app/main.go -d ../../ -o ../../docs --parseInternal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/Domje/Arc-Looterputer/internal/bootstrap"
	"github.com/Domje/Arc-Looterputer/internal/config"
	"github.com/Domje/Arc-Looterputer/internal/handler"
	"github.com/Domje/Arc-Looterputer/internal/hideout"
	"github.com/Domje/Arc-Looterputer/internal/info"
	"github.com/Domje/Arc-Looterputer/internal/locale"
	"github.com/Domje/Arc-Looterputer/internal/search"
	"github.com/Domje/Arc-Looterputer/internal/server"
	"github.com/Domje/Arc-Looterputer/internal/shoppinglist"
	"github.com/Domje/Arc-Looterputer/internal/sse"
)

// @title Arc Looterputer API
// @version 1.0
// @description Item catalog search, hideout requirements and a shared shopping list for Arc Raiders.
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		slog.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg, config.DefaultServiceName, handler.CurrentVersion().Version)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	if warnings, err := config.ValidateEnvWithWarnings(config.RequiredServerEnvVars); err != nil {
		slog.Warn("Environment validation", "error", err)
	} else {
		for _, w := range warnings {
			slog.Warn(w)
		}
	}

	cat, err := bootstrap.LoadCatalog(cfg)
	if err != nil {
		return err
	}

	store, err := bootstrap.OpenStorage(ctx, cfg)
	if err != nil {
		return err
	}

	translator, err := locale.NewTranslator()
	if err != nil {
		store.Close()
		return fmt.Errorf("failed to load translations: %w", err)
	}

	hub := sse.NewHub()
	hub.Start()

	bus, err := bootstrap.InitializeEventSystem(hub)
	if err != nil {
		hub.Stop()
		store.Close()
		return err
	}

	infoLoader := info.NewDirLoader(cfg.InfoDir)
	if err := infoLoader.Load(); err != nil {
		slog.Warn("Help topics unavailable", "dir", cfg.InfoDir, "error", err)
	}

	hideoutSvc := hideout.NewService(cat)
	srv := server.NewServer(server.Options{
		Port:              cfg.Port,
		APIKey:            cfg.APIKey,
		TrustedProxies:    cfg.TrustedProxies,
		RequestsPerWindow: cfg.RateLimit,
	}, server.Services{
		Storage: store,
		Search: search.NewService(cat, search.CacheConfig{
			Size: cfg.SearchCacheSize,
			TTL:  cfg.SearchCacheTTL,
		}),
		Hideout:      hideoutSvc,
		ShoppingList: shoppinglist.NewService(store, bus, cat, hideoutSvc),
		Translator:   translator,
		Info:         infoLoader,
		Hub:          hub,
	})

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownGrace)
		defer cancel()
		bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
			Server:  srv,
			Hub:     hub,
			Storage: store,
		})
		return nil
	})

	return g.Wait()
}
