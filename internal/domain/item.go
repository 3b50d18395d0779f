package domain

import (
	"bytes"
	"encoding/json"
	"math"
	"slices"
)

// Item is one entry of the Arc Raiders item catalog.
//
// Identity is the ID when present, otherwise the resolved name. The
// RecyclesInto, Recipe and UpgradeCost maps reference other items by ID; a
// reference to an unknown ID is tolerated and skipped wherever it is resolved.
type Item struct {
	ID            string        `json:"id,omitempty"`
	Name          LocalizedText `json:"name,omitzero"`
	Category      LocalizedText `json:"category,omitzero"`
	Rarity        LocalizedText `json:"rarity,omitzero"`
	Description   LocalizedText `json:"description,omitzero"`
	Priority      *float64      `json:"priority,omitempty"`
	RecyclesInto  Quantities    `json:"recyclesInto,omitempty"`
	Recipe        Quantities    `json:"recipe,omitempty"`
	UpgradeCost   Quantities    `json:"upgradeCost,omitempty"`
	CraftBench    Benches       `json:"craftBench,omitempty"`
	Value         *float64      `json:"value,omitempty"`
	ImageFilename string        `json:"imageFilename,omitempty"`
}

// Identity returns the key used for deduplication and cycle detection.
func (i *Item) Identity() string {
	if i.ID != "" {
		return i.ID
	}
	return i.Name.Resolve()
}

// FinitePriority returns the priority when it is set and finite.
func (i *Item) FinitePriority() (float64, bool) {
	if i.Priority == nil {
		return 0, false
	}
	p := *i.Priority
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return 0, false
	}
	return p, true
}

// IsRecyclable reports whether recycling the item yields anything.
func (i *Item) IsRecyclable() bool { return len(i.RecyclesInto) > 0 }

// IsCraftable reports whether the item has a recipe.
func (i *Item) IsCraftable() bool { return len(i.Recipe) > 0 }

// IsUpgradable reports whether the item has an upgrade cost.
func (i *Item) IsUpgradable() bool { return len(i.UpgradeCost) > 0 }

// UnmarshalJSON decodes an item, dropping numeric fields that are not numbers
// instead of failing the whole record.
func (i *Item) UnmarshalJSON(data []byte) error {
	type alias Item
	aux := struct {
		*alias
		Priority json.RawMessage `json:"priority,omitempty"`
		Value    json.RawMessage `json:"value,omitempty"`
	}{alias: (*alias)(i)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	i.Priority = optionalNumber(aux.Priority)
	i.Value = optionalNumber(aux.Value)
	if i.Value != nil && *i.Value < 0 {
		i.Value = nil
	}
	return nil
}

func optionalNumber(raw json.RawMessage) *float64 {
	if len(raw) == 0 {
		return nil
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil
	}
	return &f
}

// Quantities maps item IDs to positive quantities.
type Quantities map[string]int

// IDs returns the referenced IDs in sorted order.
func (q Quantities) IDs() []string {
	ids := make([]string, 0, len(q))
	for id := range q {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// UnmarshalJSON keeps only entries whose value is a positive whole number.
// Anything other than an object decodes to nil.
func (q *Quantities) UnmarshalJSON(data []byte) error {
	*q = nil

	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		return nil
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	out := make(Quantities, len(raw))
	for id, v := range raw {
		f, ok := v.(float64)
		if !ok || f <= 0 || f != math.Trunc(f) || f > math.MaxInt32 {
			continue
		}
		out[id] = int(f)
	}
	*q = out
	return nil
}

// Benches lists the crafting stations for an item. The source data uses
// either a single string or a list.
type Benches []string

// Contains reports whether the bench list includes id.
func (b Benches) Contains(id string) bool {
	return slices.Contains(b, id)
}

// UnmarshalJSON accepts a string or a list of strings.
func (b *Benches) UnmarshalJSON(data []byte) error {
	*b = nil

	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s != "" {
			*b = Benches{s}
		}
	case '[':
		var raw []any
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		for _, v := range raw {
			if s, ok := v.(string); ok && s != "" {
				*b = append(*b, s)
			}
		}
	}
	return nil
}
