package locale

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed messages/*.toml
var messageFiles embed.FS

// Message IDs of the UI catalogue
const (
	MsgResultCount      = "ResultCount"
	MsgNoResults        = "NoResults"
	MsgDidYouMean       = "DidYouMean"
	MsgShoppingEmpty    = "ShoppingListEmpty"
	MsgMaterialsAdded   = "MaterialsAdded"
	MsgRarityCommon     = "RarityCommon"
	MsgRarityRare       = "RarityRare"
	MsgRarityEpic       = "RarityEpic"
	MsgRarityLegendary  = "RarityLegendary"
	MsgRarityOther      = "RarityOther"
	MsgAlwaysAvailable  = "AlwaysAvailable"
	MsgCoinsRequirement = "CoinsRequirement"
)

var toneMessages = map[Tone]string{
	ToneCommon:    MsgRarityCommon,
	ToneRare:      MsgRarityRare,
	ToneEpic:      MsgRarityEpic,
	ToneLegendary: MsgRarityLegendary,
	ToneOther:     MsgRarityOther,
}

// Translator renders UI messages in the caller's language.
type Translator struct {
	bundle *i18n.Bundle
}

// NewTranslator loads the embedded message files.
func NewTranslator() (*Translator, error) {
	return NewTranslatorFS(messageFiles, "messages")
}

// NewTranslatorFS loads every *.toml file under dir in fsys. File names carry
// the language, e.g. active.de.toml.
func NewTranslatorFS(fsys fs.FS, dir string) (*Translator, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	paths, err := fs.Glob(fsys, dir+"/*.toml")
	if err != nil {
		return nil, fmt.Errorf("list message files: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no message files in %s", dir)
	}
	for _, path := range paths {
		if _, err := bundle.LoadMessageFileFS(fsys, path); err != nil {
			return nil, fmt.Errorf("load message file %s: %w", path, err)
		}
	}
	return &Translator{bundle: bundle}, nil
}

// Localize renders messageID. Missing translations fall back to English and
// finally to the message ID itself.
func (t *Translator) Localize(langs []string, messageID string, data map[string]any, count ...int) string {
	cfg := &i18n.LocalizeConfig{
		MessageID:    messageID,
		TemplateData: data,
	}
	if len(count) > 0 {
		cfg.PluralCount = count[0]
	}

	out, err := i18n.NewLocalizer(t.bundle, langs...).Localize(cfg)
	if err != nil && out == "" {
		return messageID
	}
	return out
}

// ResultCount renders "N items" with plural forms.
func (t *Translator) ResultCount(langs []string, n int) string {
	return t.Localize(langs, MsgResultCount, map[string]any{"Count": n}, n)
}

// NoResults renders the empty-result message for a query.
func (t *Translator) NoResults(langs []string, query string) string {
	return t.Localize(langs, MsgNoResults, map[string]any{"Query": query})
}

// DidYouMean renders a suggestion line.
func (t *Translator) DidYouMean(langs []string, suggestions string) string {
	return t.Localize(langs, MsgDidYouMean, map[string]any{"Suggestions": suggestions})
}

// AlwaysAvailable labels a hideout station that has no upgrade levels.
func (t *Translator) AlwaysAvailable(langs []string) string {
	return t.Localize(langs, MsgAlwaysAvailable, nil)
}

// Coins renders a coin requirement.
func (t *Translator) Coins(langs []string, amount int) string {
	return t.Localize(langs, MsgCoinsRequirement, map[string]any{"Amount": amount})
}

// RarityLabel returns the translated label of a rarity tone.
func (t *Translator) RarityLabel(langs []string, tone Tone) string {
	id, ok := toneMessages[tone]
	if !ok {
		id = MsgRarityOther
	}
	return t.Localize(langs, id, nil)
}
