package discord

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/Domje/Arc-Looterputer/internal/handler"
	"github.com/Domje/Arc-Looterputer/internal/hideout"
	"github.com/Domje/Arc-Looterputer/internal/locale"
)

// Footer constants for embed footers
const (
	FooterLooterputer = "Arc Looterputer"
	FooterShopping    = "Arc Looterputer • Shopping list"
)

// FieldTotalValue names the shopping list total field
const FieldTotalValue = "Total value"

// Embed colours that are not tied to a rarity
const (
	ColorInfo    = 0x3498db
	ColorSuccess = 0x2ecc71
	ColorWarning = 0xf39c12
	ColorHideout = 0x95a5a6
)

// maxListLines caps the lines an embed list shows; Discord rejects
// descriptions over 4096 characters.
const maxListLines = 20

// createEmbed creates an embed with a footer; empty footerText uses
// FooterLooterputer.
func createEmbed(title, description string, color int, footerText string) *discordgo.MessageEmbed {
	if footerText == "" {
		footerText = FooterLooterputer
	}
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       color,
		Footer: &discordgo.MessageEmbedFooter{
			Text: footerText,
		},
	}
}

func toneColor(tone string) int {
	return locale.Tone(tone).Color()
}

// itemLine renders one item as a list line
func itemLine(item handler.ItemView) string {
	var b strings.Builder
	b.WriteString("**" + item.Name + "**")
	if item.Rarity != "" {
		b.WriteString(" · " + item.Rarity)
	}
	if item.Category != "" {
		b.WriteString(" · " + item.Category)
	}
	if item.Value != nil {
		b.WriteString(" · " + formatNumber(*item.Value) + " 🪙")
	}
	return b.String()
}

func entryLines(entries []handler.EntryView) string {
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf("%dx %s", e.Quantity, e.Name))
	}
	return strings.Join(lines, "\n")
}

// truncateLines joins lines and appends a "more" marker past maxListLines
func truncateLines(lines []string) string {
	if len(lines) <= maxListLines {
		return strings.Join(lines, "\n")
	}
	rest := len(lines) - maxListLines
	return strings.Join(lines[:maxListLines], "\n") + fmt.Sprintf("\n…and %d more", rest)
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// searchEmbed renders a search result. The embed takes the colour of the top
// result's rarity.
func searchEmbed(resp *handler.ItemSearchResponse) *discordgo.MessageEmbed {
	title := fmt.Sprintf("🔎 %s", resp.Query)
	if resp.Query == "" {
		title = "🔎 Catalog"
	}

	if len(resp.Items) == 0 {
		desc := resp.Summary
		if resp.DidYouMean != "" {
			desc += "\n" + resp.DidYouMean
		}
		return createEmbed(title, desc, ColorWarning, "")
	}

	lines := make([]string, 0, len(resp.Items))
	for _, item := range resp.Items {
		lines = append(lines, itemLine(item))
	}
	embed := createEmbed(title, truncateLines(lines), toneColor(resp.Items[0].RarityTone), "")
	embed.Footer.Text = resp.Summary + " • " + FooterLooterputer
	return embed
}

// itemEmbed renders one item with its recipe, upgrade and recycle lists.
func itemEmbed(item *handler.ItemDetail) *discordgo.MessageEmbed {
	embed := createEmbed(item.Name, item.Description, toneColor(item.RarityTone), "")

	inline := func(name, value string) {
		if value != "" {
			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{Name: name, Value: value, Inline: true})
		}
	}
	block := func(name string, entries []handler.EntryView) {
		if len(entries) > 0 {
			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{Name: name, Value: entryLines(entries)})
		}
	}

	inline("Rarity", item.Rarity)
	inline("Category", item.Category)
	if item.Value != nil {
		inline("Value", formatNumber(*item.Value))
	}
	if len(item.CraftBench) > 0 {
		inline("Crafted at", strings.Join(item.CraftBench, ", "))
	}
	block("Recipe", item.Recipe)
	block("Upgrade cost", item.UpgradeCost)
	block("Recycles into", item.RecyclesInto)

	embed.Footer.Text = item.ID + " • " + FooterLooterputer
	return embed
}

// moduleListEmbed lists hideout stations.
func moduleListEmbed(modules []handler.ModuleView) *discordgo.MessageEmbed {
	lines := make([]string, 0, len(modules))
	for _, m := range modules {
		if m.AlwaysAvailable {
			lines = append(lines, fmt.Sprintf("**%s** (`%s`) · always available", m.Name, m.ID))
			continue
		}
		lines = append(lines, fmt.Sprintf("**%s** (`%s`) · %d levels", m.Name, m.ID, m.MaxLevel))
	}
	return createEmbed("🏠 Hideout", truncateLines(lines), ColorHideout, "")
}

// moduleEmbed shows a station with one field per level.
func moduleEmbed(m *handler.ModuleView) *discordgo.MessageEmbed {
	embed := createEmbed("🏠 "+m.Name, "", ColorHideout, "")
	if m.AlwaysAvailable {
		embed.Description = "Always available, nothing to build."
		return embed
	}
	for _, level := range m.Levels {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  fmt.Sprintf("Level %d", level.Level),
			Value: levelSummary(level),
		})
	}
	return embed
}

// levelEmbed shows the requirements of one station level.
func levelEmbed(moduleID string, level *handler.LevelView) *discordgo.MessageEmbed {
	title := fmt.Sprintf("🏠 %s · level %d", moduleID, level.Level)
	return createEmbed(title, levelSummary(*level), ColorHideout, "")
}

func levelSummary(level handler.LevelView) string {
	var parts []string
	if level.Description != "" {
		parts = append(parts, "_"+level.Description+"_")
	}
	if len(level.Items) > 0 {
		parts = append(parts, entryLines(level.Items))
	}
	if level.Coins > 0 {
		parts = append(parts, fmt.Sprintf("%d 🪙", level.Coins))
	}
	for _, other := range level.Other {
		if other.Kind == hideout.KindCoins {
			continue
		}
		parts = append(parts, "• "+other.Text)
	}
	if len(parts) == 0 {
		return "No requirements."
	}
	return strings.Join(parts, "\n")
}

// shoppingListEmbed renders the shopping list.
func shoppingListEmbed(list *handler.ShoppingListResponse) *discordgo.MessageEmbed {
	if list.Count == 0 {
		desc := list.Summary
		if desc == "" {
			desc = MsgListEmpty
		}
		return createEmbed("🛒 Shopping list", desc, ColorInfo, FooterShopping)
	}

	lines := make([]string, 0, len(list.Items))
	for _, item := range list.Items {
		lines = append(lines, fmt.Sprintf("%s (`%s`)", itemLine(item), item.ID))
	}
	title := fmt.Sprintf("🛒 Shopping list (%d)", list.Count)
	embed := createEmbed(title, truncateLines(lines), ColorInfo, FooterShopping)
	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name:   FieldTotalValue,
		Value:  "🪙 " + formatNumber(list.TotalValue),
		Inline: true,
	})
	return embed
}

// materialsEmbed reports the outcome of adding a recipe or an upgrade level.
func materialsEmbed(title string, resp *handler.MaterialsResponse) *discordgo.MessageEmbed {
	desc := resp.Message
	if len(resp.Added) > 0 {
		ids := make([]string, 0, len(resp.Added))
		for _, id := range resp.Added {
			ids = append(ids, "`"+id+"`")
		}
		desc += "\n" + truncateLines(ids)
	}
	return createEmbed(title, desc, ColorSuccess, FooterShopping)
}
