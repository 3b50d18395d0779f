package discord

import (
	"github.com/bwmarrin/discordgo"
)

// SearchCommand returns the search command definition and handler
func SearchCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "search",
		Description: "Search the item catalog (try: battery, rare, craft, recycle)",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "query",
				Description: "Item name, rarity or keyword; empty lists everything",
				Required:    false,
				MaxLength:   100,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		query := stringOption(optionMap(getOptions(i)), "query", "")

		ctx, cancel := commandContext()
		defer cancel()

		resp, err := client.SearchItems(ctx, query, interactionLanguage(i))
		if err != nil {
			respondFriendlyError(s, i, "search", err)
			return
		}

		sendEmbed(s, i, searchEmbed(resp))
	}

	return cmd, handler
}

// ItemCommand returns the item command definition and handler
func ItemCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "item",
		Description: "Show an item with its recipe and recycle yield",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:         discordgo.ApplicationCommandOptionString,
				Name:         "item",
				Description:  "Item to show",
				Required:     true,
				Autocomplete: true,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		id := stringOption(optionMap(getOptions(i)), "item", "")

		ctx, cancel := commandContext()
		defer cancel()

		item, err := client.GetItem(ctx, id, interactionLanguage(i))
		if err != nil {
			respondFriendlyError(s, i, "item", err)
			return
		}

		sendEmbed(s, i, itemEmbed(item))
	}

	return cmd, handler
}
