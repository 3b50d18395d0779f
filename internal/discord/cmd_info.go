package discord

import (
	"github.com/bwmarrin/discordgo"
)

// InfoCommand returns the info command definition and handler
func InfoCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "info",
		Description: "Learn how to use the Looterputer",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "feature",
				Description: "Specific feature to learn about (optional)",
				Required:    false,
				Choices: []*discordgo.ApplicationCommandOptionChoice{
					{Name: "Search", Value: "search"},
					{Name: "Hideout", Value: "hideout"},
					{Name: "Shopping list", Value: "shopping-list"},
				},
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		feature := stringOption(optionMap(getOptions(i)), "feature", "")

		ctx, cancel := commandContext()
		defer cancel()

		resp, err := client.GetInfo(ctx, feature)
		if err != nil {
			respondFriendlyError(s, i, "info", err)
			return
		}

		title := "📖 Arc Looterputer"
		if resp.Feature != "" {
			title = "📖 " + resp.Feature
		}
		sendEmbed(s, i, createEmbed(title, resp.Description, ColorInfo, ""))
	}

	return cmd, handler
}
