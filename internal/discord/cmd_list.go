package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/Domje/Arc-Looterputer/internal/handler"
)

// Shopping list subcommands
const (
	listShow    = "show"
	listAdd     = "add"
	listRemove  = "remove"
	listClear   = "clear"
	listRecipe  = "recipe"
	listUpgrade = "upgrade"
)

// ListCommand returns the shopping list command definition and handler
func ListCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	minLevel := float64(1)
	itemOption := func(desc string) *discordgo.ApplicationCommandOption {
		return &discordgo.ApplicationCommandOption{
			Type:         discordgo.ApplicationCommandOptionString,
			Name:         "item",
			Description:  desc,
			Required:     true,
			Autocomplete: true,
		}
	}

	cmd := &discordgo.ApplicationCommand{
		Name:        "list",
		Description: "Manage the shared shopping list",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        listShow,
				Description: "Show the shopping list",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        listAdd,
				Description: "Add an item",
				Options:     []*discordgo.ApplicationCommandOption{itemOption("Item to add")},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        listRemove,
				Description: "Remove an item",
				Options:     []*discordgo.ApplicationCommandOption{itemOption("Item to remove")},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        listClear,
				Description: "Empty the shopping list",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        listRecipe,
				Description: "Add every ingredient of an item's recipe",
				Options:     []*discordgo.ApplicationCommandOption{itemOption("Item to craft")},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        listUpgrade,
				Description: "Add the materials for a hideout upgrade",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:         discordgo.ApplicationCommandOptionString,
						Name:         "station",
						Description:  "Hideout station",
						Required:     true,
						Autocomplete: true,
					},
					{
						Type:        discordgo.ApplicationCommandOptionInteger,
						Name:        "level",
						Description: "Level to build",
						Required:    true,
						MinValue:    &minLevel,
					},
				},
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		options := getOptions(i)
		if len(options) == 0 {
			respondError(s, i, MsgGenericError)
			return
		}
		sub := options[0]
		opts := optionMap(sub.Options)

		ctx, cancel := commandContext()
		defer cancel()

		switch sub.Name {
		case listShow:
			list, err := client.GetShoppingList(ctx, interactionLanguage(i))
			if err != nil {
				respondFriendlyError(s, i, "list show", err)
				return
			}
			sendEmbed(s, i, shoppingListEmbed(list))

		case listAdd:
			id := stringOption(opts, "item", "")
			resp, err := client.AddToShoppingList(ctx, id)
			if err != nil {
				respondFriendlyError(s, i, "list add", err)
				return
			}
			color := ColorSuccess
			if !resp.Added {
				color = ColorInfo
			}
			sendEmbed(s, i, createEmbed("🛒 "+id, resp.Message, color, FooterShopping))

		case listRemove:
			id := stringOption(opts, "item", "")
			if err := client.RemoveFromShoppingList(ctx, id); err != nil {
				respondFriendlyError(s, i, "list remove", err)
				return
			}
			sendEmbed(s, i, createEmbed("🛒 "+id, handler.MsgItemRemoved, ColorInfo, FooterShopping))

		case listClear:
			if err := client.ClearShoppingList(ctx); err != nil {
				respondFriendlyError(s, i, "list clear", err)
				return
			}
			sendEmbed(s, i, createEmbed("🛒 Shopping list", handler.MsgListCleared, ColorInfo, FooterShopping))

		case listRecipe:
			id := stringOption(opts, "item", "")
			resp, err := client.AddRecipe(ctx, id)
			if err != nil {
				respondFriendlyError(s, i, "list recipe", err)
				return
			}
			sendEmbed(s, i, materialsEmbed("🛠️ Recipe for "+id, resp))

		case listUpgrade:
			station := stringOption(opts, "station", "")
			level := intOption(opts, "level", 0)
			resp, err := client.AddUpgrade(ctx, station, level)
			if err != nil {
				respondFriendlyError(s, i, "list upgrade", err)
				return
			}
			sendEmbed(s, i, materialsEmbed(fmt.Sprintf("🏠 %s level %d", station, level), resp))

		default:
			respondError(s, i, MsgGenericError)
		}
	}

	return cmd, handler
}
