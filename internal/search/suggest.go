package search

import (
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/Domje/Arc-Looterputer/internal/domain"
)

// minSuggestQueryLen keeps very short queries from matching everything.
const minSuggestQueryLen = 3

type suggestion struct {
	text string
	dist int
}

// Suggest returns up to limit "did you mean" candidates for a query that
// matched nothing: item names, or reserved keywords, within a small edit
// distance of the query or of one of the name's words. Closest first, ties
// by name.
func Suggest(query string, items []domain.Item, limit int) []string {
	q := strings.ToLower(strings.TrimSpace(query))
	if len(q) < minSuggestQueryLen || limit <= 0 {
		return nil
	}

	best := make(map[string]int)
	consider := func(text, term string) {
		dist := levenshtein.ComputeDistance(q, term)
		if dist > levenshteinLimit(len(term)) {
			return
		}
		if prev, ok := best[text]; !ok || dist < prev {
			best[text] = dist
		}
	}

	for _, kw := range Keywords() {
		consider(kw, kw)
	}
	for i := range items {
		name := items[i].Name.Resolve()
		if name == "" {
			continue
		}
		lower := strings.ToLower(name)
		consider(name, lower)
		for _, word := range strings.Fields(lower) {
			consider(name, word)
		}
	}

	cands := make([]suggestion, 0, len(best))
	for text, dist := range best {
		cands = append(cands, suggestion{text: text, dist: dist})
	}
	slices.SortStableFunc(cands, func(a, b suggestion) int {
		if a.dist != b.dist {
			return a.dist - b.dist
		}
		return strings.Compare(a.text, b.text)
	})

	if len(cands) > limit {
		cands = cands[:limit]
	}
	out := make([]string, len(cands))
	for i, c := range cands {
		out[i] = c.text
	}
	return out
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
