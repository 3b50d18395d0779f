package locale

import "strings"

// Tone classifies a rarity for colouring.
type Tone string

const (
	ToneCommon    Tone = "common"
	ToneRare      Tone = "rare"
	ToneEpic      Tone = "epic"
	ToneLegendary Tone = "legendary"
	ToneOther     Tone = "other"
)

var toneColors = map[Tone]int{
	ToneCommon:    0x3ba578,
	ToneRare:      0x4fa7da,
	ToneEpic:      0xc850a9,
	ToneLegendary: 0xffae00,
	ToneOther:     0xeae1d1,
}

// RarityTone classifies a resolved rarity string. Matching is on the English
// name, case-insensitively.
func RarityTone(rarity string) Tone {
	switch Tone(strings.ToLower(strings.TrimSpace(rarity))) {
	case ToneCommon:
		return ToneCommon
	case ToneRare:
		return ToneRare
	case ToneEpic:
		return ToneEpic
	case ToneLegendary:
		return ToneLegendary
	default:
		return ToneOther
	}
}

// Color returns the RGB colour of the tone.
func (t Tone) Color() int {
	if c, ok := toneColors[t]; ok {
		return c
	}
	return toneColors[ToneOther]
}
