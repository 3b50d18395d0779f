package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// DefaultLanguages is the fallback chain used when resolving a language map.
var DefaultLanguages = []string{"en", "de", "fr", "es"}

// Translation is one entry of a language map.
type Translation struct {
	Lang string
	Text string
}

// LocalizedText is a display field that is either a plain string or a map of
// language code to string. Map entries keep the order of the source document.
type LocalizedText struct {
	plain   string
	isPlain bool
	entries []Translation
}

// PlainText wraps a plain string.
func PlainText(s string) LocalizedText {
	return LocalizedText{plain: s, isPlain: true}
}

// TranslatedText builds a language map from lang/text pairs, in argument order.
// A trailing odd argument is ignored.
func TranslatedText(pairs ...string) LocalizedText {
	t := LocalizedText{entries: make([]Translation, 0, len(pairs)/2)}
	for i := 0; i+1 < len(pairs); i += 2 {
		t.entries = append(t.entries, Translation{Lang: pairs[i], Text: pairs[i+1]})
	}
	return t
}

// IsZero reports whether the field is absent.
func (t LocalizedText) IsZero() bool {
	return !t.isPlain && len(t.entries) == 0
}

// IsPlain reports whether the field holds a plain string.
func (t LocalizedText) IsPlain() bool {
	return t.isPlain
}

// Lookup returns the entry for an exact language code.
func (t LocalizedText) Lookup(lang string) (string, bool) {
	for _, e := range t.entries {
		if e.Lang == lang {
			return e.Text, true
		}
	}
	return "", false
}

// Resolve picks the display string: a plain string is returned unchanged,
// a language map tries langs, then DefaultLanguages, then its first entry.
func (t LocalizedText) Resolve(langs ...string) string {
	if t.isPlain {
		return t.plain
	}
	if len(t.entries) == 0 {
		return ""
	}
	for _, lang := range langs {
		if s, ok := t.Lookup(lang); ok {
			return s
		}
	}
	for _, lang := range DefaultLanguages {
		if s, ok := t.Lookup(lang); ok {
			return s
		}
	}
	return t.entries[0].Text
}

// String resolves with the default language chain.
func (t LocalizedText) String() string {
	return t.Resolve()
}

// UnmarshalJSON accepts a string, an object of strings or null. Any other
// shape decodes to the zero value so a bad field never rejects a whole item.
func (t *LocalizedText) UnmarshalJSON(data []byte) error {
	*t = LocalizedText{}

	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("decode localized string: %w", err)
		}
		*t = PlainText(s)
		return nil
	case '{':
		entries, err := decodeOrderedStrings(data)
		if err != nil {
			return err
		}
		t.entries = entries
		return nil
	default:
		return nil
	}
}

// MarshalJSON writes a plain string, an object in document order, or null.
func (t LocalizedText) MarshalJSON() ([]byte, error) {
	if t.isPlain {
		return json.Marshal(t.plain)
	}
	if len(t.entries) == 0 {
		return []byte("null"), nil
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range t.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Lang)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(e.Text)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// decodeOrderedStrings walks an object token by token, keeping key order and
// skipping values that are not strings.
func decodeOrderedStrings(data []byte) ([]Translation, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("decode localized map: %w", err)
	}

	entries := []Translation{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("decode localized map key: %w", err)
		}
		key, _ := keyTok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("decode localized map value: %w", err)
		}
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			continue
		}
		entries = append(entries, Translation{Lang: key, Text: s})
	}
	return entries, nil
}
