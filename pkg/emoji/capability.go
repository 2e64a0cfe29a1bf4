package emoji

import (
	"sort"
	"sync"

	"github.com/charmbracelet/log"
)

// MatchResult is the answer of the metadata capability oracle.
type MatchResult int

const (
	MatchUnknown MatchResult = iota
	MatchSupported
	MatchUnsupported
)

// MetadataOracle answers whether a character sequence is covered by the
// emoji metadata shipped with the platform, gated on a metadata version.
type MetadataOracle interface {
	MatchQuery(value string, metadataVersion float64) MatchResult
}

// GlyphOracle reports whether the default system typeface can render a
// character sequence.
type GlyphOracle interface {
	HasGlyph(value string) bool
}

// Supported decides whether a resolved emoji may enter the catalog: the
// metadata oracle must answer an explicit MatchSupported, or the glyph
// probe must confirm typeface coverage. An Unknown metadata answer alone
// is not enough. A panicking oracle counts as unsupported for that record
// so catalog construction never aborts.
func Supported(value string, metadataVersion float64, meta MetadataOracle, glyph GlyphOracle) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Warnf("Capability oracle failed for %q: %v", value, r)
			ok = false
		}
	}()
	if meta != nil && meta.MatchQuery(value, metadataVersion) == MatchSupported {
		return true
	}
	return glyph != nil && glyph.HasGlyph(value)
}

// CompatTable is a MetadataOracle backed by the per-sequence minimum
// metadata versions carried in the emoji asset. The table is built from
// the loader on first query and cached; a failing loader leaves the table
// empty, answering Unknown for everything.
type CompatTable struct {
	load Loader
	once sync.Once
	min  map[string]float64
}

// NewCompatTable creates a CompatTable over the given loader.
func NewCompatTable(load Loader) *CompatTable {
	return &CompatTable{load: load}
}

// MatchQuery implements MetadataOracle. Sequences absent from the table
// answer Unknown; known sequences answer Supported when the platform's
// metadata version is at least the sequence's minimum.
func (t *CompatTable) MatchQuery(value string, metadataVersion float64) MatchResult {
	t.once.Do(t.build)
	min, ok := t.min[value]
	if !ok || min == 0 {
		return MatchUnknown
	}
	if metadataVersion >= min {
		return MatchSupported
	}
	return MatchUnsupported
}

func (t *CompatTable) build() {
	t.min = make(map[string]float64)
	groups, err := t.load()
	if err != nil {
		log.Warnf("Compat table unavailable: %v", err)
		return
	}
	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		for _, def := range groups[name] {
			for _, value := range def.Variants {
				if value == "" {
					continue
				}
				// First entry wins when a sequence repeats across groups.
				if _, seen := t.min[value]; !seen {
					t.min[value] = def.Since
				}
			}
		}
	}
	log.Debugf("Compat table built: %d sequences", len(t.min))
}
