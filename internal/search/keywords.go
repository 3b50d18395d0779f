package search

import (
	"slices"
	"strings"

	"github.com/Domje/Arc-Looterputer/internal/domain"
)

// Mode describes how a query is evaluated.
type Mode string

const (
	// ModeAll lists the whole catalog (empty query)
	ModeAll Mode = "all"
	// ModeKeyword applies a reserved keyword filter
	ModeKeyword Mode = "keyword"
	// ModeText matches names, rarities and recycle chains
	ModeText Mode = "text"
)

type keywordFilter func(*domain.Item) bool

// reservedKeywords are matched against the whole lower-cased query. A hit is
// authoritative: the item is not also tested by substring.
var reservedKeywords = map[string]keywordFilter{
	"recycleable": (*domain.Item).IsRecyclable,
	"recyclable":  (*domain.Item).IsRecyclable,
	"recycle":     (*domain.Item).IsRecyclable,
	"craftable":   (*domain.Item).IsCraftable,
	"craft":       (*domain.Item).IsCraftable,
	"upgradable":  (*domain.Item).IsUpgradable,
	"upgradeable": (*domain.Item).IsUpgradable,
	"upgrade":     (*domain.Item).IsUpgradable,
}

// Keywords returns the reserved keywords in sorted order.
func Keywords() []string {
	out := make([]string, 0, len(reservedKeywords))
	for k := range reservedKeywords {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}

// ModeOf reports how query would be evaluated.
func ModeOf(query string) Mode {
	if query == "" {
		return ModeAll
	}
	if _, ok := reservedKeywords[strings.ToLower(query)]; ok {
		return ModeKeyword
	}
	return ModeText
}
