// Command discord runs the Looterputer Discord bot. It is a thin client of
// the HTTP API started by cmd/app.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"

	"github.com/Domje/Arc-Looterputer/internal/config"
	"github.com/Domje/Arc-Looterputer/internal/discord"
	"github.com/Domje/Arc-Looterputer/internal/handler"
	"github.com/Domje/Arc-Looterputer/internal/logger"
)

const serviceName = "arc-looterputer-discord"

// CommandFactory creates a Discord command and its handler.
type CommandFactory func() (*discordgo.ApplicationCommand, discord.CommandHandler)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		slog.Error("Bot exited with error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.LoadDiscord()
	if err != nil {
		return fmt.Errorf("configuration failed: %w", err)
	}

	logger.InitLogger(logger.NewConfig(cfg.LogLevel, cfg.LogFormat, serviceName, handler.CurrentVersion().Version, cfg.Environment, false))
	slog.Info("Configured API URL", "url", cfg.APIURL)
	if cfg.APIKey == "" {
		slog.Warn("API_KEY not set, shopping list changes will be rejected if the API requires a key")
	}
	if cfg.NotificationChannel != "" {
		slog.Info("Shopping list notifications enabled", "channel_id", cfg.NotificationChannel)
	}

	bot, err := discord.New(discord.Config{
		Token:                 cfg.Token,
		AppID:                 cfg.AppID,
		GuildID:               cfg.GuildID,
		APIURL:                cfg.APIURL,
		APIKey:                cfg.APIKey,
		NotificationChannelID: cfg.NotificationChannel,
	})
	if err != nil {
		return fmt.Errorf("failed to create bot: %w", err)
	}

	healthServer := discord.NewHTTPServer(cfg.HealthPort, bot)
	healthServer.Start()
	defer healthServer.Stop()

	registerCommands(bot, commandFactories())

	if err := bot.RegisterCommands(bot.Registry, cfg.ForceCommandUpdate); err != nil {
		// commands registered by a previous run keep working
		slog.Error("Failed to register commands", "error", err)
	}

	return bot.Run(ctx)
}

// commandFactories lists every slash command the bot offers.
func commandFactories() []CommandFactory {
	return []CommandFactory{
		discord.PingCommand,
		discord.InfoCommand,

		// Catalog
		discord.SearchCommand,
		discord.ItemCommand,

		// Hideout
		discord.HideoutCommand,
		discord.CraftablesCommand,

		// Shopping list
		discord.ListCommand,
	}
}

func registerCommands(bot *discord.Bot, factories []CommandFactory) {
	for _, factory := range factories {
		cmd, h := factory()
		bot.Registry.Register(cmd, h)
	}
}
