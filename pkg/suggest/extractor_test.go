package suggest

import "testing"

// Tests the query extraction rules around the ':' trigger.

// IMPORTANT to know:
// when the trigger never occurs, the query is the WHOLE composing text
// (last-index -1 plus one lands on index 0). Upstream consumers depend on
// this, so it is pinned here on purpose.
func TestExtractQuery(t *testing.T) {
	const trigger = byte(':')
	const minLength = 3

	testCases := []struct {
		composing   string
		expected    string
		present     bool
		description string
	}{
		// length gate: len <= minLength means no query at all
		{"", "", false, "Empty composing text"},
		{":a", "", false, "Short text with trigger"},
		{"abc", "", false, "Exactly minLength"},
		{":ab", "", false, "Trigger plus two chars is still minLength"},

		// regular extraction after the last trigger
		{":smi", "smi", true, "Trigger at start"},
		{"hello :smi", "smi", true, "Trigger mid-text"},
		{"a :b :cat", "cat", true, "Last trigger wins"},
		{"hey :", "", true, "Trigger at end yields empty query"},
		{"::grin", "grin", true, "Doubled trigger"},

		// trigger absent: whole text becomes the query
		{"hello", "hello", true, "No trigger, whole text"},
		{"smile face", "smile face", true, "No trigger, text with space"},
	}

	for _, tc := range testCases {
		query, ok := ExtractQuery(tc.composing, trigger, minLength)
		if ok != tc.present {
			t.Errorf("%s: ExtractQuery(%q) present = %v, want %v",
				tc.description, tc.composing, ok, tc.present)
			continue
		}
		if query != tc.expected {
			t.Errorf("%s: ExtractQuery(%q) = %q, want %q",
				tc.description, tc.composing, query, tc.expected)
		}
	}
}

func TestExtractQueryMinLengthBoundary(t *testing.T) {
	// One past the threshold must produce a query, at the threshold not.
	if _, ok := ExtractQuery(":abc", ':', 4); ok {
		t.Error("len == minLength should carry no query")
	}
	query, ok := ExtractQuery(":abcd", ':', 4)
	if !ok || query != "abcd" {
		t.Errorf("len > minLength: got (%q, %v), want (\"abcd\", true)", query, ok)
	}
}
