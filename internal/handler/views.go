package handler

import (
	"github.com/Domje/Arc-Looterputer/internal/catalog"
	"github.com/Domje/Arc-Looterputer/internal/domain"
	"github.com/Domje/Arc-Looterputer/internal/hideout"
	"github.com/Domje/Arc-Looterputer/internal/locale"
)

// ItemView is an item with every localized field resolved for the caller.
type ItemView struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Category      string   `json:"category,omitempty"`
	Rarity        string   `json:"rarity,omitempty"`
	RarityTone    string   `json:"rarity_tone"`
	Description   string   `json:"description,omitempty"`
	Priority      *float64 `json:"priority,omitempty"`
	Value         *float64 `json:"value,omitempty"`
	ImageFilename string   `json:"image_filename,omitempty"`
	CraftBench    []string `json:"craft_bench,omitempty"`
	Craftable     bool     `json:"craftable"`
	Recyclable    bool     `json:"recyclable"`
	Upgradable    bool     `json:"upgradable"`
}

// EntryView is a resolved item reference with a quantity.
type EntryView struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// ItemDetail adds the resolved recipe, upgrade and recycle lists.
type ItemDetail struct {
	ItemView
	Recipe       []EntryView `json:"recipe,omitempty"`
	UpgradeCost  []EntryView `json:"upgrade_cost,omitempty"`
	RecyclesInto []EntryView `json:"recycles_into,omitempty"`
}

func newItemView(item *domain.Item, langs []string) ItemView {
	rarity := item.Rarity.Resolve(langs...)
	return ItemView{
		ID:            item.Identity(),
		Name:          item.Name.Resolve(langs...),
		Category:      item.Category.Resolve(langs...),
		Rarity:        rarity,
		RarityTone:    string(locale.RarityTone(item.Rarity.Resolve())),
		Description:   item.Description.Resolve(langs...),
		Priority:      item.Priority,
		Value:         item.Value,
		ImageFilename: item.ImageFilename,
		CraftBench:    item.CraftBench,
		Craftable:     item.IsCraftable(),
		Recyclable:    item.IsRecyclable(),
		Upgradable:    item.IsUpgradable(),
	}
}

// NewItemViews resolves a ranked item list for display.
func NewItemViews(items []*domain.Item, langs []string) []ItemView {
	views := make([]ItemView, 0, len(items))
	for _, item := range items {
		views = append(views, newItemView(item, langs))
	}
	return views
}

func newEntryViews(entries []catalog.Entry, langs []string) []EntryView {
	if len(entries) == 0 {
		return nil
	}
	views := make([]EntryView, 0, len(entries))
	for _, e := range entries {
		views = append(views, EntryView{
			ID:       e.Item.Identity(),
			Name:     e.Item.Name.Resolve(langs...),
			Quantity: e.Quantity,
		})
	}
	return views
}

// NewItemDetail resolves an item and its recipe, upgrade and recycle entries.
func NewItemDetail(c *catalog.Catalog, item *domain.Item, langs []string) ItemDetail {
	return ItemDetail{
		ItemView:     newItemView(item, langs),
		Recipe:       newEntryViews(c.Resolve(item.Recipe), langs),
		UpgradeCost:  newEntryViews(c.Resolve(item.UpgradeCost), langs),
		RecyclesInto: newEntryViews(c.Resolve(item.RecyclesInto), langs),
	}
}

// ModuleView is a hideout station with its name resolved.
type ModuleView struct {
	ID              string      `json:"id"`
	Name            string      `json:"name"`
	MaxLevel        int         `json:"max_level"`
	AlwaysAvailable bool        `json:"always_available"`
	Levels          []LevelView `json:"levels,omitempty"`
}

// LevelView is one upgrade level with its requirements resolved.
type LevelView struct {
	Level       int                        `json:"level"`
	Description string                     `json:"description,omitempty"`
	Coins       int                        `json:"coins,omitempty"`
	Items       []EntryView                `json:"items"`
	Other       []hideout.OtherRequirement `json:"other,omitempty"`
}

// NewModuleView resolves a station without its levels.
func NewModuleView(m *domain.HideoutModule, langs []string) ModuleView {
	name := m.Name.Resolve(langs...)
	if name == "" {
		name = m.ID
	}
	return ModuleView{
		ID:              m.ID,
		Name:            name,
		MaxLevel:        m.MaxLevel,
		AlwaysAvailable: m.AlwaysAvailable(),
	}
}

// NewLevelView combines a level with its resolved requirements.
func NewLevelView(l *domain.HideoutLevel, req *hideout.Requirements, langs []string) LevelView {
	items := newEntryViews(req.Items, langs)
	if items == nil {
		items = []EntryView{}
	}
	return LevelView{
		Level:       l.Level,
		Description: l.Description,
		Coins:       req.Coins(),
		Items:       items,
		Other:       req.Other,
	}
}
