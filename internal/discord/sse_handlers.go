package discord

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/Domje/Arc-Looterputer/internal/domain"
	"github.com/Domje/Arc-Looterputer/internal/sse"
)

// MessageSender is the part of a Discord session the notifier uses
type MessageSender interface {
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// SSENotifier posts shopping list changes to a Discord channel
type SSENotifier struct {
	sender    MessageSender
	channelID string
}

// NewSSENotifier creates a new SSE notifier
func NewSSENotifier(sender MessageSender, channelID string) *SSENotifier {
	return &SSENotifier{
		sender:    sender,
		channelID: channelID,
	}
}

// RegisterHandlers registers the notifier's handlers with the client
func (n *SSENotifier) RegisterHandlers(client *SSEClient) {
	client.OnEvent(sse.EventTypeShoppingListUpdated, n.handleShoppingListUpdated)
}

func (n *SSENotifier) handleShoppingListUpdated(event SSEEvent) error {
	var payload sse.ShoppingListPayload
	if err := json.Unmarshal(event.Payload, &payload); err != nil {
		return fmt.Errorf("failed to parse shopping list payload: %w", err)
	}

	embed := shoppingListUpdateEmbed(payload)
	if event.Timestamp > 0 {
		embed.Timestamp = time.Unix(event.Timestamp, 0).UTC().Format(time.RFC3339)
	}

	if _, err := n.sender.ChannelMessageSendEmbed(n.channelID, embed); err != nil {
		slog.Error(sseLogMsgNotificationError, "event_type", event.Type, "error", err)
		return err
	}

	slog.Info(sseLogMsgNotificationSent, "event_type", event.Type, "action", payload.Action)
	return nil
}

func shoppingListUpdateEmbed(p sse.ShoppingListPayload) *discordgo.MessageEmbed {
	keys := make([]string, 0, len(p.ItemKeys))
	for _, k := range p.ItemKeys {
		keys = append(keys, "`"+k+"`")
	}
	items := truncateLines(keys)

	var title, desc string
	color := ColorInfo
	switch p.Action {
	case domain.ListActionAdded:
		title = "🛒 Added to the shopping list"
		desc = items
		color = ColorSuccess
	case domain.ListActionRemoved:
		title = "🛒 Removed from the shopping list"
		desc = items
	case domain.ListActionCleared:
		title = "🛒 Shopping list cleared"
	default:
		title = "🛒 Shopping list updated"
		desc = items
	}

	summary := fmt.Sprintf("%d item(s) on the list", p.Count)
	desc = strings.TrimSpace(desc + "\n" + summary)
	return createEmbed(title, desc, color, FooterShopping)
}
