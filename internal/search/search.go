// Package search implements the catalog query engine: keyword filters,
// substring matching over names, rarities and recycle chains, and ranking.
package search

import (
	"slices"
	"strings"

	"github.com/Domje/Arc-Looterputer/internal/domain"
)

// matcher holds the per-query state shared by every item evaluation.
type matcher struct {
	query   string
	keyword keywordFilter
	byID    map[string]*domain.Item
}

func newMatcher(query string, items []domain.Item) *matcher {
	m := &matcher{query: strings.ToLower(query)}
	if m.query == "" {
		return m
	}
	if filter, ok := reservedKeywords[m.query]; ok {
		m.keyword = filter
		return m
	}

	m.byID = make(map[string]*domain.Item, len(items))
	for i := range items {
		id := items[i].ID
		if id == "" {
			continue
		}
		if _, dup := m.byID[id]; !dup {
			m.byID[id] = &items[i]
		}
	}
	return m
}

// match reports whether item matches and whether it matched by name.
func (m *matcher) match(item *domain.Item) (matched, byName bool) {
	if m.query == "" {
		return true, false
	}
	if m.keyword != nil {
		return m.keyword(item), false
	}
	if m.nameContains(item) {
		return true, true
	}
	if strings.Contains(strings.ToLower(item.Rarity.Resolve()), m.query) {
		return true, false
	}
	return m.recyclesIntoMatch(item), false
}

func (m *matcher) nameContains(item *domain.Item) bool {
	return strings.Contains(strings.ToLower(item.Name.Resolve()), m.query)
}

// recyclesIntoMatch walks the recycle graph depth first from item and
// reports whether any reachable product's name contains the query. Each
// identity is visited at most once per walk, the source included, so cycles
// terminate. Unknown IDs are skipped.
func (m *matcher) recyclesIntoMatch(item *domain.Item) bool {
	if len(item.RecyclesInto) == 0 {
		return false
	}

	visited := map[string]struct{}{item.Identity(): {}}
	stack := m.pushTargets(nil, item)

	for len(stack) > 0 {
		target := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		key := target.Identity()
		if _, seen := visited[key]; seen {
			continue
		}
		visited[key] = struct{}{}

		if m.nameContains(target) {
			return true
		}
		stack = m.pushTargets(stack, target)
	}
	return false
}

// pushTargets appends the resolved recycle targets of item in reverse ID
// order, so they pop in ascending order.
func (m *matcher) pushTargets(stack []*domain.Item, item *domain.Item) []*domain.Item {
	ids := item.RecyclesInto.IDs()
	for i := len(ids) - 1; i >= 0; i-- {
		if target, ok := m.byID[ids[i]]; ok {
			stack = append(stack, target)
		}
	}
	return stack
}

// Matches reports whether item matches query. allItems resolves recycle
// targets by ID.
func Matches(item *domain.Item, query string, allItems []domain.Item) bool {
	matched, _ := newMatcher(query, allItems).match(item)
	return matched
}

// Search filters items by query and ranks the result.
//
// With an empty query every item is returned sorted by Compare. Otherwise
// items whose name contains the query come first, then the remaining
// matches; each group is sorted by Compare and keeps input order on ties.
// The returned pointers reference elements of items.
func Search(query string, items []domain.Item) []*domain.Item {
	m := newMatcher(query, items)

	var byName, other []*domain.Item
	for i := range items {
		item := &items[i]
		matched, nameHit := m.match(item)
		if !matched {
			continue
		}
		if m.query != "" && (nameHit || m.nameContains(item)) {
			byName = append(byName, item)
		} else {
			other = append(other, item)
		}
	}

	slices.SortStableFunc(byName, Compare)
	slices.SortStableFunc(other, Compare)

	results := make([]*domain.Item, 0, len(byName)+len(other))
	results = append(results, byName...)
	return append(results, other...)
}
