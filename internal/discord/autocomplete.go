package discord

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
)

const (
	// Discord drops autocomplete answers slower than 3 seconds
	autocompleteTimeout = 2500 * time.Millisecond
	maxChoices          = 25
	maxChoiceNameLen    = 100
)

// HandleAutocomplete answers autocomplete requests for item and station
// options.
func HandleAutocomplete(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
	data := i.ApplicationCommandData()
	focused, sub := findFocused(data.Options, "")
	if focused == nil || focused.Type != discordgo.ApplicationCommandOptionString {
		respondAutocomplete(s, i, nil)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), autocompleteTimeout)
	defer cancel()

	value := strings.ToLower(strings.TrimSpace(focused.StringValue()))
	lang := interactionLanguage(i)

	var choices []*discordgo.ApplicationCommandOptionChoice
	switch {
	case focused.Name == "station":
		choices = stationChoices(ctx, client, value, lang)
	case focused.Name == "item" && data.Name == "list" && sub == listRemove:
		choices = shoppingListChoices(ctx, client, value, lang)
	case focused.Name == "item":
		choices = itemChoices(ctx, client, value, lang)
	default:
		slog.Warn("Unhandled autocomplete option", "command", data.Name, "option", focused.Name)
	}

	respondAutocomplete(s, i, choices)
}

// findFocused returns the focused option and the subcommand it belongs to.
func findFocused(options []*discordgo.ApplicationCommandInteractionDataOption, sub string) (*discordgo.ApplicationCommandInteractionDataOption, string) {
	for _, opt := range options {
		if opt.Type == discordgo.ApplicationCommandOptionSubCommand {
			if found, name := findFocused(opt.Options, opt.Name); found != nil {
				return found, name
			}
			continue
		}
		if opt.Focused {
			return opt, sub
		}
	}
	return nil, ""
}

// itemChoices runs the typed text through catalog search so keywords and
// recycle chains work in autocomplete too. An empty value suggests nothing.
func itemChoices(ctx context.Context, client *APIClient, value, lang string) []*discordgo.ApplicationCommandOptionChoice {
	if value == "" {
		return nil
	}

	resp, err := client.SearchItems(ctx, value, lang)
	if err != nil {
		slog.Error("Failed to search items for autocomplete", "error", err)
		return nil
	}

	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, min(len(resp.Items), maxChoices))
	for _, item := range resp.Items {
		if len(choices) >= maxChoices {
			break
		}
		choices = append(choices, choice(item.Name, item.ID))
	}
	return choices
}

func shoppingListChoices(ctx context.Context, client *APIClient, value, lang string) []*discordgo.ApplicationCommandOptionChoice {
	list, err := client.GetShoppingList(ctx, lang)
	if err != nil {
		slog.Error("Failed to get shopping list for autocomplete", "error", err)
		return nil
	}

	var choices []*discordgo.ApplicationCommandOptionChoice
	for _, item := range list.Items {
		if value != "" && !strings.Contains(strings.ToLower(item.Name), value) && !strings.Contains(item.ID, value) {
			continue
		}
		choices = append(choices, choice(item.Name, item.ID))
		if len(choices) >= maxChoices {
			break
		}
	}
	return choices
}

func stationChoices(ctx context.Context, client *APIClient, value, lang string) []*discordgo.ApplicationCommandOptionChoice {
	modules, err := client.ListModules(ctx, lang)
	if err != nil {
		slog.Error("Failed to list stations for autocomplete", "error", err)
		return nil
	}

	var choices []*discordgo.ApplicationCommandOptionChoice
	for _, m := range modules {
		if value != "" && !strings.Contains(strings.ToLower(m.Name), value) && !strings.Contains(m.ID, value) {
			continue
		}
		choices = append(choices, choice(m.Name, m.ID))
		if len(choices) >= maxChoices {
			break
		}
	}
	return choices
}

func choice(name, value string) *discordgo.ApplicationCommandOptionChoice {
	if name == "" {
		name = value
	}
	if r := []rune(name); len(r) > maxChoiceNameLen {
		name = string(r[:maxChoiceNameLen])
	}
	return &discordgo.ApplicationCommandOptionChoice{Name: name, Value: value}
}

func respondAutocomplete(s *discordgo.Session, i *discordgo.InteractionCreate, choices []*discordgo.ApplicationCommandOptionChoice) {
	if choices == nil {
		choices = []*discordgo.ApplicationCommandOptionChoice{}
	}
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionApplicationCommandAutocompleteResult,
		Data: &discordgo.InteractionResponseData{
			Choices: choices,
		},
	})
	if err != nil {
		slog.Error("Failed to respond to autocomplete", "error", err)
	}
}
