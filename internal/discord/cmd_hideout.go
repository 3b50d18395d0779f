package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// HideoutCommand returns the hideout command definition and handler. Without
// a station it lists every station; with a level it shows that level's
// requirements.
func HideoutCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	minLevel := float64(1)
	cmd := &discordgo.ApplicationCommand{
		Name:        "hideout",
		Description: "Show hideout stations and what their upgrades cost",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:         discordgo.ApplicationCommandOptionString,
				Name:         "station",
				Description:  "Station to show (optional)",
				Required:     false,
				Autocomplete: true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "level",
				Description: "Only this level (optional)",
				Required:    false,
				MinValue:    &minLevel,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		opts := optionMap(getOptions(i))
		station := stringOption(opts, "station", "")
		level := intOption(opts, "level", 0)
		lang := interactionLanguage(i)

		ctx, cancel := commandContext()
		defer cancel()

		switch {
		case station == "":
			modules, err := client.ListModules(ctx, lang)
			if err != nil {
				respondFriendlyError(s, i, "hideout list", err)
				return
			}
			sendEmbed(s, i, moduleListEmbed(modules))

		case level > 0:
			lv, err := client.GetLevel(ctx, station, level, lang)
			if err != nil {
				respondFriendlyError(s, i, "hideout level", err)
				return
			}
			sendEmbed(s, i, levelEmbed(station, lv))

		default:
			module, err := client.GetModule(ctx, station, lang)
			if err != nil {
				respondFriendlyError(s, i, "hideout station", err)
				return
			}
			sendEmbed(s, i, moduleEmbed(module))
		}
	}

	return cmd, handler
}

// CraftablesCommand returns the craftables command definition and handler
func CraftablesCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "craftables",
		Description: "List what can be crafted at a station",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:         discordgo.ApplicationCommandOptionString,
				Name:         "station",
				Description:  "Crafting station",
				Required:     true,
				Autocomplete: true,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		station := stringOption(optionMap(getOptions(i)), "station", "")

		ctx, cancel := commandContext()
		defer cancel()

		items, err := client.GetCraftables(ctx, station, interactionLanguage(i))
		if err != nil {
			respondFriendlyError(s, i, "craftables", err)
			return
		}

		lines := make([]string, 0, len(items))
		for _, item := range items {
			lines = append(lines, itemLine(item))
		}
		desc := truncateLines(lines)
		if len(lines) == 0 {
			desc = "Nothing is crafted here."
		}
		sendEmbed(s, i, createEmbed(fmt.Sprintf("🛠️ Crafted at %s", station), desc, ColorHideout, ""))
	}

	return cmd, handler
}
