package search

import (
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/Domje/Arc-Looterputer/internal/domain"
)

// collate.Collator keeps scratch buffers and is not safe for concurrent use.
var collators = sync.Pool{
	New: func() any { return collate.New(language.English) },
}

// Compare orders items for listing. When both priorities are finite the
// higher one comes first; otherwise, and on equal priorities, resolved names
// are compared with an English collator. Returns -1, 0 or 1.
//
// Mixing items with and without a priority makes the relation
// non-transitive, so a full listing can place a lower priority first when an
// unprioritized name sorts between the two. Stable sorting keeps the output
// fixed for a given input order.
func Compare(a, b *domain.Item) int {
	pa, okA := a.FinitePriority()
	pb, okB := b.FinitePriority()
	if okA && okB && pa != pb {
		if pa > pb {
			return -1
		}
		return 1
	}
	return compareNames(a.Name.Resolve(), b.Name.Resolve())
}

func compareNames(a, b string) int {
	c := collators.Get().(*collate.Collator)
	defer collators.Put(c)
	return c.CompareString(a, b)
}
