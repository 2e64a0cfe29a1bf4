package suggest

import (
	"strings"

	"github.com/snaik20/florisboard/pkg/emoji"
)

// Candidate wraps one matched catalog emoji for UI presentation. Every
// publication produces fresh Candidate values; they carry no state beyond
// the wrapped record.
type Candidate struct {
	Emoji emoji.Emoji
}

// Match walks the catalog in stored order and collects up to limit
// candidates. A record matches only when its name contains the query AND
// at least one keyword contains the query; the conjunction is deliberate
// and often yields nothing. Containment is case-sensitive with no
// normalization. The first limit matches in catalog order win, there is
// no secondary ranking. An empty query or catalog gives an empty result.
func Match(query string, catalog []emoji.Emoji, limit int) []Candidate {
	if query == "" || len(catalog) == 0 || limit <= 0 {
		return nil
	}

	var candidates []Candidate
	for _, e := range catalog {
		if !strings.Contains(e.Name, query) {
			continue
		}
		if !anyContains(e.Keywords, query) {
			continue
		}
		candidates = append(candidates, Candidate{Emoji: e})
		if len(candidates) >= limit {
			break
		}
	}
	return candidates
}

func anyContains(keywords []string, query string) bool {
	for _, kw := range keywords {
		if strings.Contains(kw, query) {
			return true
		}
	}
	return false
}
