// Package locale resolves localized catalog fields to display strings and
// carries the UI message catalogue.
package locale

import (
	"slices"

	"github.com/Domje/Arc-Looterputer/internal/domain"
)

// Resolve extracts a display string from a localized field.
//
// A plain string is returned unchanged. A language map yields its en, de, fr
// or es entry, in that order of preference, and otherwise its first value.
// Absent fields and unknown shapes resolve to "".
func Resolve(field any) string {
	return ResolvePreferred(field)
}

// ResolvePreferred is Resolve with the caller's languages tried before the
// default chain.
func ResolvePreferred(field any, langs ...string) string {
	switch v := field.(type) {
	case nil:
		return ""
	case string:
		return v
	case *string:
		if v == nil {
			return ""
		}
		return *v
	case domain.LocalizedText:
		return v.Resolve(langs...)
	case *domain.LocalizedText:
		if v == nil {
			return ""
		}
		return v.Resolve(langs...)
	case map[string]string:
		return fromStringMap(v, langs)
	case map[string]any:
		strs := make(map[string]string, len(v))
		for k, val := range v {
			if s, ok := val.(string); ok {
				strs[k] = s
			}
		}
		return fromStringMap(strs, langs)
	default:
		return ""
	}
}

// fromStringMap orders keys so the "first value" fallback is deterministic.
func fromStringMap(m map[string]string, langs []string) string {
	if len(m) == 0 {
		return ""
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	pairs := make([]string, 0, len(keys)*2)
	for _, k := range keys {
		pairs = append(pairs, k, m[k])
	}
	return domain.TranslatedText(pairs...).Resolve(langs...)
}
