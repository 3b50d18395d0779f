// Package discord is the Discord front end of the Looterputer. It talks to
// the HTTP API and never touches the catalog directly.
package discord

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/Domje/Arc-Looterputer/internal/sse"
)

// Bot represents the Discord bot
type Bot struct {
	Session  *discordgo.Session
	Client   *APIClient
	AppID    string
	GuildID  string
	Registry *CommandRegistry
	SSE      *SSEClient
}

// Config holds the bot configuration
type Config struct {
	Token   string
	AppID   string
	GuildID string
	APIURL  string
	APIKey  string

	// NotificationChannelID receives shopping list updates; empty disables them
	NotificationChannelID string
}

// New creates a new Discord bot
func New(cfg Config) (*Bot, error) {
	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}

	bot := &Bot{
		Session:  s,
		Client:   NewAPIClient(cfg.APIURL, cfg.APIKey),
		AppID:    cfg.AppID,
		GuildID:  cfg.GuildID,
		Registry: NewCommandRegistry(),
	}

	if cfg.NotificationChannelID != "" {
		bot.SSE = NewSSEClient(cfg.APIURL, cfg.APIKey, []string{sse.EventTypeShoppingListUpdated})
		NewSSENotifier(s, cfg.NotificationChannelID).RegisterHandlers(bot.SSE)
	}

	return bot, nil
}

// Start opens the gateway connection and the event stream
func (b *Bot) Start(ctx context.Context) error {
	b.Session.AddHandler(b.ready)
	b.Session.AddHandler(b.interactionCreate)

	if err := b.Session.Open(); err != nil {
		return fmt.Errorf("error opening connection: %w", err)
	}

	if b.SSE != nil {
		b.SSE.Start(ctx)
	}

	slog.Info("Discord bot is now running")
	return nil
}

// Stop closes the event stream and the gateway connection
func (b *Bot) Stop() {
	if b.SSE != nil {
		b.SSE.Stop()
	}
	if err := b.Session.Close(); err != nil {
		slog.Warn("Error closing Discord session", "error", err)
	}
}

// Run runs the bot until ctx is cancelled
func (b *Bot) Run(ctx context.Context) error {
	if err := b.Start(ctx); err != nil {
		return err
	}
	defer b.Stop()

	<-ctx.Done()
	slog.Info("Shutting down Discord bot")
	return nil
}

func (b *Bot) ready(s *discordgo.Session, _ *discordgo.Ready) {
	slog.Info("Bot is ready", "user", s.State.User.Username)
}

func (b *Bot) interactionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if b.Registry != nil {
		b.Registry.Handle(s, i, b.Client)
	}
}
