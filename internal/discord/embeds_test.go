package discord

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Domje/Arc-Looterputer/internal/handler"
	"github.com/Domje/Arc-Looterputer/internal/hideout"
	"github.com/Domje/Arc-Looterputer/internal/locale"
)

func TestSearchEmbed_NoResults(t *testing.T) {
	embed := searchEmbed(&handler.ItemSearchResponse{
		Query:      "batery",
		Summary:    "No items match \"batery\"",
		DidYouMean: "Did you mean: battery?",
		Items:      []handler.ItemView{},
	})

	assert.Equal(t, ColorWarning, embed.Color)
	assert.Contains(t, embed.Description, "No items match")
	assert.Contains(t, embed.Description, "Did you mean: battery?")
}

func TestSearchEmbed_Truncates(t *testing.T) {
	items := make([]handler.ItemView, 0, maxListLines+5)
	for n := range maxListLines + 5 {
		items = append(items, handler.ItemView{ID: fmt.Sprint(n), Name: fmt.Sprintf("Item %d", n), RarityTone: "legendary"})
	}

	embed := searchEmbed(&handler.ItemSearchResponse{Query: "item", Items: items, Count: len(items)})

	assert.Equal(t, locale.ToneLegendary.Color(), embed.Color)
	assert.Equal(t, maxListLines+1, strings.Count(embed.Description, "\n")+1)
	assert.True(t, strings.HasSuffix(embed.Description, "…and 5 more"))
}

func TestItemEmbed(t *testing.T) {
	value := 640.0
	embed := itemEmbed(&handler.ItemDetail{
		ItemView: handler.ItemView{
			ID:         "anvil",
			Name:       "Anvil",
			Rarity:     "Epic",
			RarityTone: "epic",
			Value:      &value,
			CraftBench: []string{"gunsmith"},
		},
		Recipe:       []handler.EntryView{{ID: "metal_parts", Name: "Metal Parts", Quantity: 6}},
		RecyclesInto: []handler.EntryView{{ID: "scrap", Name: "Scrap", Quantity: 2}},
	})

	assert.Equal(t, locale.ToneEpic.Color(), embed.Color)
	assert.Contains(t, embed.Footer.Text, "anvil")

	fields := map[string]string{}
	for _, f := range embed.Fields {
		fields[f.Name] = f.Value
	}
	assert.Equal(t, "640", fields["Value"])
	assert.Equal(t, "gunsmith", fields["Crafted at"])
	assert.Equal(t, "6x Metal Parts", fields["Recipe"])
	assert.Equal(t, "2x Scrap", fields["Recycles into"])
	assert.NotContains(t, fields, "Upgrade cost")
}

func TestLevelSummary(t *testing.T) {
	level := handler.LevelView{
		Level: 1,
		Coins: 1000,
		Items: []handler.EntryView{},
		Other: []hideout.OtherRequirement{
			{Kind: hideout.KindCoins, Amount: 1000, Text: "Coins: 1000"},
			{Kind: hideout.KindText, Text: "Finish the tutorial"},
		},
	}

	got := levelSummary(level)

	assert.Contains(t, got, "1000 🪙")
	assert.Contains(t, got, "• Finish the tutorial")
	assert.NotContains(t, got, "Coins: 1000")
	assert.Equal(t, "No requirements.", levelSummary(handler.LevelView{Level: 2}))
}

func TestShoppingListEmbed(t *testing.T) {
	embed := shoppingListEmbed(&handler.ShoppingListResponse{
		Count:      1,
		TotalValue: 640,
		Items:      []handler.ItemView{{ID: "battery", Name: "Battery"}},
	})

	assert.Equal(t, "🛒 Shopping list (1)", embed.Title)
	assert.Equal(t, "**Battery** (`battery`)", embed.Description)
	assert.Equal(t, FooterShopping, embed.Footer.Text)
	require.Len(t, embed.Fields, 1)
	assert.Equal(t, FieldTotalValue, embed.Fields[0].Name)
	assert.Equal(t, "🪙 640", embed.Fields[0].Value)
}
