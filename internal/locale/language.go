package locale

import (
	"slices"

	"golang.org/x/text/language"
)

// Languages turns an explicit lang parameter and an Accept-Language header
// into base language codes, most preferred first. Unparseable input is
// ignored.
func Languages(explicit, acceptLanguage string) []string {
	var out []string
	add := func(tag language.Tag) {
		base, conf := tag.Base()
		if conf == language.No {
			return
		}
		code := base.String()
		if !slices.Contains(out, code) {
			out = append(out, code)
		}
	}

	if explicit != "" {
		if tag, err := language.Parse(explicit); err == nil {
			add(tag)
		}
	}
	if acceptLanguage != "" {
		tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
		if err == nil {
			for _, tag := range tags {
				add(tag)
			}
		}
	}
	return out
}

// IsValidTag reports whether s parses as a BCP 47 language tag.
func IsValidTag(s string) bool {
	_, err := language.Parse(s)
	return err == nil
}
