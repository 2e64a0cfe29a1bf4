package emoji

import (
	"fmt"
	"os"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/go-text/typesetting/font"
)

// Runes that modify or join other glyphs and need no coverage of their own.
const (
	zeroWidthJoiner    = '‍'
	variationSelector  = '️'
	skinToneModifierLo = '\U0001F3FB'
	skinToneModifierHi = '\U0001F3FF'
)

// TypefaceProbe is a GlyphOracle backed by a parsed typeface. A sequence
// counts as renderable when every base rune has a nominal glyph in the
// font's character map.
type TypefaceProbe struct {
	mu   sync.Mutex // font.Face is not safe for concurrent use
	face *font.Face
}

// NewTypefaceProbe parses the TTF at path and returns a probe over it.
func NewTypefaceProbe(path string) (*TypefaceProbe, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open typeface %s: %w", path, err)
	}
	defer f.Close()

	face, err := font.ParseTTF(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse typeface %s: %w", path, err)
	}
	log.Debugf("Typeface probe ready: %s", path)
	return &TypefaceProbe{face: face}, nil
}

// HasGlyph implements GlyphOracle.
func (p *TypefaceProbe) HasGlyph(value string) bool {
	if value == "" {
		return false
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, r := range value {
		if isModifier(r) {
			continue
		}
		if _, ok := p.face.NominalGlyph(r); !ok {
			return false
		}
	}
	return true
}

func isModifier(r rune) bool {
	return r == zeroWidthJoiner || r == variationSelector ||
		(r >= skinToneModifierLo && r <= skinToneModifierHi)
}
