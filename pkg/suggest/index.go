package suggest

import (
	"errors"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"

	"github.com/snaik20/florisboard/pkg/emoji"
)

var errEnough = errors.New("limit reached")

// Index is a patricia trie over catalog names, serving prefix-based
// shortcode completion for the IPC/CLI surface. It complements the live
// matcher, which does substring search; the index answers "names starting
// with" queries the way an editor's :shortcode picker expects.
type Index struct {
	trie *patricia.Trie
}

// NewIndex builds the prefix index for a catalog. On duplicate names the
// first record in catalog order wins.
func NewIndex(catalog []emoji.Emoji) *Index {
	trie := patricia.NewTrie()
	for _, e := range catalog {
		trie.Insert(patricia.Prefix(e.Name), e)
	}
	return &Index{trie: trie}
}

// Complete returns up to limit candidates whose names start with prefix,
// in trie (lexicographic) order.
func (ix *Index) Complete(prefix string, limit int) []Candidate {
	if prefix == "" || limit <= 0 {
		return nil
	}

	var candidates []Candidate
	err := ix.trie.VisitSubtree(patricia.Prefix(prefix), func(p patricia.Prefix, item patricia.Item) error {
		e, ok := item.(emoji.Emoji)
		if !ok {
			log.Errorf("Unknown item type: %T for name %s", item, p)
			return nil
		}
		candidates = append(candidates, Candidate{Emoji: e})
		if len(candidates) >= limit {
			return errEnough
		}
		return nil
	})
	if err != nil && !errors.Is(err, errEnough) {
		log.Errorf("Error visiting index subtree: %v", err)
		return nil
	}
	return candidates
}

// Size reports how many names the index holds.
func (ix *Index) Size() int {
	count := 0
	_ = ix.trie.Visit(func(patricia.Prefix, patricia.Item) error {
		count++
		return nil
	})
	return count
}
