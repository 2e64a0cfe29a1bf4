package emoji

import (
	"sort"
	"sync"

	"github.com/charmbracelet/log"
)

// Build flattens the loader's groups into one ordered sequence, resolves
// each definition to a concrete emoji for the preferred tone and filters
// out everything isSupported rejects. Groups are walked in sorted name
// order so the result is deterministic. Loader failure gives an empty
// result, not an error.
func Build(load Loader, tone SkinTone, isSupported func(value string) bool) []Emoji {
	groups, err := load()
	if err != nil {
		log.Warnf("Emoji data unavailable, suggestions disabled: %v", err)
		return nil
	}
	if len(groups) == 0 {
		log.Warn("Emoji data empty, suggestions disabled")
		return nil
	}

	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)

	var list []Emoji
	dropped := 0
	for _, name := range names {
		for _, def := range groups[name] {
			value, ok := def.Resolve(tone)
			if !ok {
				continue
			}
			if isSupported != nil && !isSupported(value) {
				dropped++
				continue
			}
			list = append(list, Emoji{
				Value:    value,
				Name:     def.Name,
				Keywords: append([]string(nil), def.Keywords...),
			})
		}
	}
	log.Debugf("Catalog built: %d emoji, %d dropped by capability filter", len(list), dropped)
	return list
}

// Catalog is the session-scoped, compute-once view over Build. The first
// Emojis call reads the tone preference and builds the list; later calls
// return the cached result. A preference change after the first build does
// not invalidate the catalog; the owning session has to be recreated to
// pick up a new tone.
type Catalog struct {
	load        Loader
	tone        func() SkinTone
	isSupported func(value string) bool

	once sync.Once
	list []Emoji
}

// NewCatalog creates a lazily built catalog. tone is read exactly once,
// at first access.
func NewCatalog(load Loader, tone func() SkinTone, isSupported func(value string) bool) *Catalog {
	return &Catalog{load: load, tone: tone, isSupported: isSupported}
}

// Emojis returns the catalog contents, building them on first call.
// The returned slice is shared and must be treated as read-only.
func (c *Catalog) Emojis() []Emoji {
	c.once.Do(func() {
		tone := ToneDefault
		if c.tone != nil {
			tone = c.tone()
		}
		c.list = Build(c.load, tone, c.isSupported)
	})
	return c.list
}
