package discord

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
)

// commandTimeout bounds the API calls made while handling one interaction
const commandTimeout = 15 * time.Second

// CommandHandler handles a slash command
type CommandHandler func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient)

// CommandRegistry holds the registered commands
type CommandRegistry struct {
	Commands map[string]*discordgo.ApplicationCommand
	Handlers map[string]CommandHandler
}

// NewCommandRegistry creates a new registry
func NewCommandRegistry() *CommandRegistry {
	return &CommandRegistry{
		Commands: make(map[string]*discordgo.ApplicationCommand),
		Handlers: make(map[string]CommandHandler),
	}
}

// Register adds a command to the registry
func (r *CommandRegistry) Register(cmd *discordgo.ApplicationCommand, handler CommandHandler) {
	r.Commands[cmd.Name] = cmd
	r.Handlers[cmd.Name] = handler
}

// Handle routes slash commands to their handler and autocomplete requests
// to HandleAutocomplete.
func (r *CommandRegistry) Handle(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		if h, ok := r.Handlers[i.ApplicationCommandData().Name]; ok {
			RecordCommand()
			h(s, i, client)
		}
	case discordgo.InteractionApplicationCommandAutocomplete:
		HandleAutocomplete(s, i, client)
	}
}

// RegisterCommands registers or updates the commands with Discord. Nothing
// is sent when the registered set already matches, to stay clear of rate
// limits. An empty guildID registers global commands.
func (b *Bot) RegisterCommands(registry *CommandRegistry, forceUpdate bool) error {
	slog.Info("Checking Discord commands...", "guild_id", b.GuildID)

	existingCmds, err := b.Session.ApplicationCommands(b.AppID, b.GuildID)
	if err != nil {
		return fmt.Errorf("failed to fetch existing commands: %w", err)
	}

	desiredCmds := make([]*discordgo.ApplicationCommand, 0, len(registry.Commands))
	for _, cmd := range registry.Commands {
		desiredCmds = append(desiredCmds, cmd)
	}

	if !forceUpdate && commandsEqual(existingCmds, desiredCmds) {
		slog.Info("Commands unchanged, skipping registration", "count", len(existingCmds))
		return nil
	}

	slog.Info("Updating commands",
		"existing", len(existingCmds),
		"desired", len(desiredCmds),
		"forced", forceUpdate)

	if _, err := b.Session.ApplicationCommandBulkOverwrite(b.AppID, b.GuildID, desiredCmds); err != nil {
		return fmt.Errorf("failed to update commands: %w", err)
	}

	slog.Info("Commands updated successfully", "count", len(desiredCmds))
	return nil
}

// commandsEqual checks if two command sets are equivalent
func commandsEqual(existing, desired []*discordgo.ApplicationCommand) bool {
	if len(existing) != len(desired) {
		return false
	}

	existingMap := make(map[string]*discordgo.ApplicationCommand, len(existing))
	for _, cmd := range existing {
		existingMap[cmd.Name] = cmd
	}

	for _, want := range desired {
		have, ok := existingMap[want.Name]
		if !ok || !commandEqual(have, want) {
			return false
		}
	}
	return true
}

func commandEqual(a, b *discordgo.ApplicationCommand) bool {
	if a.Name != b.Name || a.Description != b.Description {
		return false
	}
	return optionsEqual(a.Options, b.Options)
}

func optionsEqual(a, b []*discordgo.ApplicationCommandOption) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !optionEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

// optionEqual compares options recursively so subcommand changes are seen
func optionEqual(a, b *discordgo.ApplicationCommandOption) bool {
	if a.Type != b.Type || a.Name != b.Name || a.Description != b.Description ||
		a.Required != b.Required || a.Autocomplete != b.Autocomplete {
		return false
	}

	if len(a.Choices) != len(b.Choices) {
		return false
	}
	for i := range a.Choices {
		if a.Choices[i].Name != b.Choices[i].Name || fmt.Sprint(a.Choices[i].Value) != fmt.Sprint(b.Choices[i].Value) {
			return false
		}
	}

	return optionsEqual(a.Options, b.Options)
}

// commandContext returns the context API calls of one interaction run under
func commandContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), commandTimeout)
}

// deferResponse acknowledges an interaction with a deferred message.
// Required before any call that might take longer than 3 seconds.
// Returns false if deferral failed.
func deferResponse(s *discordgo.Session, i *discordgo.InteractionCreate) bool {
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	}); err != nil {
		slog.Error("Failed to send deferred response", "error", err)
		return false
	}
	return true
}

// respondError edits the deferred response with a plain message.
func respondError(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Content: &message,
	}); err != nil {
		slog.Error("Failed to edit interaction response", "error", err)
	}
}

// respondFriendlyError logs err and shows the user a readable version of it.
func respondFriendlyError(s *discordgo.Session, i *discordgo.InteractionCreate, action string, err error) {
	slog.Error("Command failed", "action", action, "error", err)
	respondError(s, i, formatFriendlyError(err.Error()))
}

// formatFriendlyError turns API error texts into messages for players
func formatFriendlyError(msg string) string {
	msg = strings.TrimPrefix(msg, "API error: ")

	if friendly, ok := friendlyMessages[msg]; ok {
		return friendly
	}
	for apiMsg, friendly := range friendlyMessages {
		if strings.HasSuffix(msg, apiMsg) {
			return friendly
		}
	}

	switch {
	case strings.Contains(msg, "Unauthorized"), strings.HasSuffix(msg, "status: 401"):
		return MsgNotAllowed
	case strings.Contains(msg, "max retries exceeded"), strings.Contains(msg, "connection refused"):
		return MsgAPIUnreachable
	case msg == "":
		return MsgGenericError
	default:
		return "❌ " + msg
	}
}

// sendEmbed edits the deferred response with an embed.
func sendEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Embeds: &[]*discordgo.MessageEmbed{embed},
	}); err != nil {
		slog.Error("Failed to send response", "error", err)
	}
}

// getOptions extracts the top-level command options from an interaction.
func getOptions(i *discordgo.InteractionCreate) []*discordgo.ApplicationCommandInteractionDataOption {
	return i.ApplicationCommandData().Options
}

// optionMap indexes options by name.
func optionMap(options []*discordgo.ApplicationCommandInteractionDataOption) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(options))
	for _, opt := range options {
		m[opt.Name] = opt
	}
	return m
}

// stringOption returns a string option or fallback when it is absent.
func stringOption(opts map[string]*discordgo.ApplicationCommandInteractionDataOption, name, fallback string) string {
	if opt, ok := opts[name]; ok {
		return strings.TrimSpace(opt.StringValue())
	}
	return fallback
}

// intOption returns an integer option or fallback when it is absent.
func intOption(opts map[string]*discordgo.ApplicationCommandInteractionDataOption, name string, fallback int) int {
	if opt, ok := opts[name]; ok {
		return int(opt.IntValue())
	}
	return fallback
}

// interactionLanguage returns the user's Discord client locale, used as the
// display language for catalog text.
func interactionLanguage(i *discordgo.InteractionCreate) string {
	return string(i.Locale)
}
