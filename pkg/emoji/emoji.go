// Package emoji builds the catalog of emoji eligible for live suggestion.
//
// Raw definitions are loaded from a JSON asset (embedded by default), grouped
// by category. Each definition may carry several presentation variants (skin
// tones); the catalog resolves every definition to exactly one concrete emoji
// using the user's tone preference and keeps only those the platform can
// actually render, decided by two independent capability oracles.
package emoji

// SkinTone selects one presentation variant of an emoji definition.
type SkinTone string

const (
	ToneDefault     SkinTone = "default"
	ToneLight       SkinTone = "light"
	ToneMediumLight SkinTone = "medium-light"
	ToneMedium      SkinTone = "medium"
	ToneMediumDark  SkinTone = "medium-dark"
	ToneDark        SkinTone = "dark"
)

// ParseSkinTone maps a config/flag string to a SkinTone, falling back to
// the neutral default for anything unrecognized.
func ParseSkinTone(s string) SkinTone {
	switch SkinTone(s) {
	case ToneLight, ToneMediumLight, ToneMedium, ToneMediumDark, ToneDark:
		return SkinTone(s)
	default:
		return ToneDefault
	}
}

// Emoji is one concrete, renderable emoji. Value is the canonical character
// sequence with the tone variant already applied. Records in a catalog have
// passed the capability filter and are safe to display and insert.
type Emoji struct {
	Value    string
	Name     string
	Keywords []string
}

// Definition is one raw emoji entry as loaded from the data asset, before
// tone resolution. Since is the minimum emoji metadata version the sequence
// requires; zero means unknown.
type Definition struct {
	Name     string              `json:"name"`
	Keywords []string            `json:"keywords"`
	Variants map[SkinTone]string `json:"variants"`
	Since    float64             `json:"since,omitempty"`
}

// Resolve picks the concrete character sequence for the given tone,
// falling back to the neutral variant when the preferred one is absent.
// The second return is false when the definition has no usable variant.
func (d Definition) Resolve(tone SkinTone) (string, bool) {
	if v, ok := d.Variants[tone]; ok && v != "" {
		return v, true
	}
	if v, ok := d.Variants[ToneDefault]; ok && v != "" {
		return v, true
	}
	return "", false
}
