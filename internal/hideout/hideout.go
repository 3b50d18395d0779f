// Package hideout answers questions about hideout stations: what a level
// costs and what can be crafted at each bench.
package hideout

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"

	"github.com/Domje/Arc-Looterputer/internal/catalog"
	"github.com/Domje/Arc-Looterputer/internal/domain"
	"github.com/Domje/Arc-Looterputer/internal/search"
)

// RequirementKind classifies a non-item upgrade requirement.
type RequirementKind string

const (
	// KindCoins is a coin cost parsed from "Coins: N" anywhere in the text
	KindCoins RequirementKind = "coins"
	// KindText is any other free-form requirement
	KindText RequirementKind = "text"
)

var coinsPattern = regexp.MustCompile(`Coins:\s*(\d+)`)

// OtherRequirement is a parsed entry of a level's otherRequirements.
type OtherRequirement struct {
	Kind   RequirementKind `json:"kind"`
	Amount int             `json:"amount,omitempty"`
	Text   string          `json:"text"`
}

// ParseRequirement classifies a free-form requirement string.
func ParseRequirement(s string) OtherRequirement {
	if m := coinsPattern.FindStringSubmatch(s); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return OtherRequirement{Kind: KindCoins, Amount: n, Text: s}
		}
	}
	return OtherRequirement{Kind: KindText, Text: s}
}

// Requirements is everything needed to build one station level.
type Requirements struct {
	ModuleID string             `json:"moduleId"`
	Level    int                `json:"level"`
	Items    []catalog.Entry    `json:"items"`
	Other    []OtherRequirement `json:"other,omitempty"`
}

// Coins sums the coin requirements.
func (r *Requirements) Coins() int {
	total := 0
	for _, o := range r.Other {
		if o.Kind == KindCoins {
			total += o.Amount
		}
	}
	return total
}

// Service exposes hideout lookups over a catalog.
type Service interface {
	Modules() []domain.HideoutModule
	Module(id string) (*domain.HideoutModule, error)
	Level(moduleID string, level int) (*domain.HideoutLevel, error)
	Requirements(moduleID string, level int) (*Requirements, error)
	Craftables(moduleID string) ([]*domain.Item, error)
}

type service struct {
	catalog *catalog.Catalog
}

// NewService creates a hideout service backed by c.
func NewService(c *catalog.Catalog) Service {
	return &service{catalog: c}
}

func (s *service) Modules() []domain.HideoutModule {
	return s.catalog.Modules()
}

func (s *service) Module(id string) (*domain.HideoutModule, error) {
	return s.catalog.ModuleByID(id)
}

func (s *service) Level(moduleID string, level int) (*domain.HideoutLevel, error) {
	m, err := s.catalog.ModuleByID(moduleID)
	if err != nil {
		return nil, err
	}
	l, ok := m.Level(level)
	if !ok {
		return nil, fmt.Errorf("%w: %s level %d", domain.ErrLevelNotFound, moduleID, level)
	}
	return l, nil
}

func (s *service) Requirements(moduleID string, level int) (*Requirements, error) {
	l, err := s.Level(moduleID, level)
	if err != nil {
		return nil, err
	}

	req := &Requirements{
		ModuleID: moduleID,
		Level:    l.Level,
		Items:    s.catalog.Resolve(l.Quantities()),
	}
	for _, other := range l.OtherRequirements {
		req.Other = append(req.Other, ParseRequirement(other))
	}
	return req, nil
}

// Craftables lists the items crafted at the station, ranked like a catalog
// listing.
func (s *service) Craftables(moduleID string) ([]*domain.Item, error) {
	if _, err := s.catalog.ModuleByID(moduleID); err != nil {
		return nil, err
	}
	items := s.catalog.CraftablesAt(moduleID)
	slices.SortStableFunc(items, search.Compare)
	return items, nil
}
