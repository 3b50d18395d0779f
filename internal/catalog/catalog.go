// Package catalog loads the Arc Raiders item and hideout data and indexes it
// for lookups. A Catalog is immutable once built and safe for concurrent use.
package catalog

import (
	"fmt"
	"slices"

	"github.com/Domje/Arc-Looterputer/internal/domain"
)

// Entry is a resolved item reference with its quantity.
type Entry struct {
	Item     *domain.Item `json:"item"`
	Quantity int          `json:"quantity"`
}

// Catalog is an indexed, read-only view over items and hideout modules.
type Catalog struct {
	items   []domain.Item
	byID    map[string]*domain.Item
	modules []domain.HideoutModule
	modByID map[string]*domain.HideoutModule
	benches map[string][]*domain.Item
}

// New indexes items and modules. When ids repeat, the first occurrence wins
// for lookups; every record stays in Items.
func New(items []domain.Item, modules []domain.HideoutModule) *Catalog {
	c := &Catalog{
		items:   items,
		byID:    make(map[string]*domain.Item, len(items)),
		modules: modules,
		modByID: make(map[string]*domain.HideoutModule, len(modules)),
		benches: make(map[string][]*domain.Item),
	}

	for i := range c.items {
		item := &c.items[i]
		if item.ID != "" {
			if _, dup := c.byID[item.ID]; !dup {
				c.byID[item.ID] = item
			}
		}
		for _, bench := range item.CraftBench {
			c.benches[bench] = append(c.benches[bench], item)
		}
	}

	for i := range c.modules {
		m := &c.modules[i]
		if _, dup := c.modByID[m.ID]; !dup && m.ID != "" {
			c.modByID[m.ID] = m
		}
	}

	return c
}

// Items returns the catalog records in source order. Callers must not modify
// the returned slice.
func (c *Catalog) Items() []domain.Item {
	return c.items
}

// Len returns the number of item records.
func (c *Catalog) Len() int {
	return len(c.items)
}

// ItemByID looks up an item by id.
func (c *Catalog) ItemByID(id string) (*domain.Item, error) {
	item, ok := c.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrItemNotFound, id)
	}
	return item, nil
}

// Resolve turns a quantity map into entries ordered by item id. Unknown ids
// are skipped.
func (c *Catalog) Resolve(q domain.Quantities) []Entry {
	entries := make([]Entry, 0, len(q))
	for _, id := range q.IDs() {
		item, ok := c.byID[id]
		if !ok {
			continue
		}
		entries = append(entries, Entry{Item: item, Quantity: q[id]})
	}
	return entries
}

// CraftablesByBench groups craftable items by the bench ids they list.
func (c *Catalog) CraftablesByBench() map[string][]*domain.Item {
	out := make(map[string][]*domain.Item, len(c.benches))
	for bench, items := range c.benches {
		out[bench] = slices.Clone(items)
	}
	return out
}

// CraftablesAt returns the items crafted at bench in source order.
func (c *Catalog) CraftablesAt(bench string) []*domain.Item {
	return slices.Clone(c.benches[bench])
}

// Modules returns the hideout modules in source order.
func (c *Catalog) Modules() []domain.HideoutModule {
	return c.modules
}

// ModuleByID looks up a hideout module by id.
func (c *Catalog) ModuleByID(id string) (*domain.HideoutModule, error) {
	m, ok := c.modByID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrModuleNotFound, id)
	}
	return m, nil
}

// Reference is a quantity map entry pointing at an id missing from the catalog.
type Reference struct {
	From  string `json:"from"`
	Field string `json:"field"`
	ID    string `json:"id"`
}

func (r Reference) String() string {
	return fmt.Sprintf("%s.%s -> %s", r.From, r.Field, r.ID)
}

// Report lists integrity problems in catalog data.
type Report struct {
	DuplicateIDs []string    `json:"duplicateIds,omitempty"`
	Dangling     []Reference `json:"dangling,omitempty"`
}

// Err returns an error for duplicate ids. Dangling references are warnings
// and never produce an error.
func (r Report) Err() error {
	if len(r.DuplicateIDs) == 0 {
		return nil
	}
	return fmt.Errorf(ErrMsgDuplicateID, domain.ErrDuplicateItemID, r.DuplicateIDs)
}

// Validate checks items and modules for duplicate ids and references to ids
// that do not exist.
func Validate(items []domain.Item, modules []domain.HideoutModule) Report {
	var report Report

	known := make(map[string]bool, len(items))
	for i := range items {
		id := items[i].ID
		if id == "" {
			continue
		}
		if known[id] && !slices.Contains(report.DuplicateIDs, id) {
			report.DuplicateIDs = append(report.DuplicateIDs, id)
		}
		known[id] = true
	}

	check := func(from, field string, q domain.Quantities) {
		for _, id := range q.IDs() {
			if !known[id] {
				report.Dangling = append(report.Dangling, Reference{From: from, Field: field, ID: id})
			}
		}
	}

	for i := range items {
		item := &items[i]
		from := item.Identity()
		check(from, "recyclesInto", item.RecyclesInto)
		check(from, "recipe", item.Recipe)
		check(from, "upgradeCost", item.UpgradeCost)
	}

	for i := range modules {
		for _, level := range modules[i].Levels {
			check(fmt.Sprintf("%s#%d", modules[i].ID, level.Level), "requirementItemIds", level.Quantities())
		}
	}

	return report
}
