package domain

// HideoutModule is an upgradeable hideout station.
type HideoutModule struct {
	ID       string         `json:"id"`
	Name     LocalizedText  `json:"name,omitzero"`
	MaxLevel int            `json:"maxLevel"`
	Levels   []HideoutLevel `json:"levels"`
}

// HideoutLevel is one upgrade step of a station.
type HideoutLevel struct {
	Level              int               `json:"level"`
	RequirementItemIDs []ItemRequirement `json:"requirementItemIds"`
	OtherRequirements  []string          `json:"otherRequirements,omitempty"`
	Description        string            `json:"description,omitempty"`
}

// ItemRequirement is an item quantity needed to build a level.
type ItemRequirement struct {
	ItemID   string `json:"itemId"`
	Quantity int    `json:"quantity"`
}

// AlwaysAvailable reports whether the station has no upgrade levels to buy.
func (m *HideoutModule) AlwaysAvailable() bool {
	return m.MaxLevel == 0
}

// Level returns the level entry with the given number.
func (m *HideoutModule) Level(n int) (*HideoutLevel, bool) {
	for i := range m.Levels {
		if m.Levels[i].Level == n {
			return &m.Levels[i], true
		}
	}
	return nil, false
}

// Quantities converts the level's item requirements to a quantity map.
// Repeated item IDs are summed.
func (l *HideoutLevel) Quantities() Quantities {
	q := make(Quantities, len(l.RequirementItemIDs))
	for _, req := range l.RequirementItemIDs {
		if req.ItemID == "" || req.Quantity <= 0 {
			continue
		}
		q[req.ItemID] += req.Quantity
	}
	return q
}
