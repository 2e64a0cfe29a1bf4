// Package suggest turns composing text into a bounded list of emoji
// candidates: query extraction, deterministic substring matching over the
// catalog, and a patricia-trie prefix index for shortcode completion.
package suggest

import "strings"

// ExtractQuery pulls the active suggestion query out of the composing text.
// Texts no longer than minLength carry no query. Otherwise the query is
// everything strictly after the last occurrence of trigger. When trigger is
// absent, LastIndexByte yields -1 and the query becomes the whole text;
// callers rely on that exact behavior, keep it.
func ExtractQuery(composing string, trigger byte, minLength int) (string, bool) {
	if len(composing) <= minLength {
		return "", false
	}
	idx := strings.LastIndexByte(composing, trigger)
	return composing[idx+1:], true
}
