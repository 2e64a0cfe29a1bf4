package suggest

import (
	"testing"

	"github.com/snaik20/florisboard/pkg/emoji"
)

func testCatalog() []emoji.Emoji {
	return []emoji.Emoji{
		{Value: "😀", Name: "grinning face", Keywords: []string{"smile", "happy", "joy", "grin"}},
		{Value: "😃", Name: "grinning face with big eyes", Keywords: []string{"smile", "happy", "open"}},
		{Value: "😺", Name: "grinning cat", Keywords: []string{"cat", "grinning", "smile"}},
		{Value: "😊", Name: "smiling face with smiling eyes", Keywords: []string{"smile", "happy", "blush"}},
		{Value: "😢", Name: "crying face", Keywords: []string{"cry", "sad", "tear"}},
	}
}

// The matcher requires BOTH the name and some keyword to contain the
// query. The conjunction is strict and often yields zero matches; that is
// the wanted behavior, not a bug.
func TestMatchConjunction(t *testing.T) {
	strict := []emoji.Emoji{
		{Value: "a", Name: "smile", Keywords: []string{"happy"}},
		{Value: "b", Name: "grin", Keywords: []string{"smile", "cat"}},
	}

	// "smile": first record's name matches but no keyword does; second
	// record's keyword matches but the name does not. Zero results.
	if got := Match("smile", strict, 5); len(got) != 0 {
		t.Errorf("Match(smile) = %d candidates, want 0", len(got))
	}

	// "happy": keyword of the first record matches, name does not.
	if got := Match("happy", strict, 5); len(got) != 0 {
		t.Errorf("Match(happy) = %d candidates, want 0", len(got))
	}
}

func TestMatch(t *testing.T) {
	catalog := testCatalog()

	testCases := []struct {
		query       string
		limit       int
		expected    []string // expected values, in order
		description string
	}{
		{"grin", 5, []string{"😀", "😺"}, "Name and keyword both contain query, catalog order"},
		{"smile", 5, nil, "'smiling' does not contain 'smile', conjunction rejects all"},
		{"cry", 5, []string{"😢"}, "Single match"},
		{"grin", 1, []string{"😀"}, "Limit truncates in catalog order"},
		{"", 5, nil, "Empty query matches nothing"},
		{"zzz", 5, nil, "No matches"},
		{"Grin", 5, nil, "Matching is case-sensitive"},
	}

	for _, tc := range testCases {
		got := Match(tc.query, catalog, tc.limit)
		if len(got) != len(tc.expected) {
			t.Errorf("%s: Match(%q, limit=%d) = %d candidates, want %d",
				tc.description, tc.query, tc.limit, len(got), len(tc.expected))
			continue
		}
		for i, want := range tc.expected {
			if got[i].Emoji.Value != want {
				t.Errorf("%s: candidate %d = %q, want %q",
					tc.description, i, got[i].Emoji.Value, want)
			}
		}
	}
}

func TestMatchSmileCase(t *testing.T) {
	// "smiling" contains "smil" but never "smile", so the full word only
	// matches via keywords and the conjunction rejects every record.
	catalog := testCatalog()
	if got := Match("smile", catalog, 5); len(got) != 0 {
		t.Errorf("Match(smile) = %d candidates, want 0 (names lack the full word)", len(got))
	}
	// "smil" is contained in 😊's name and in its "smile" keyword.
	got := Match("smil", catalog, 5)
	if len(got) != 1 || got[0].Emoji.Value != "😊" {
		t.Errorf("Match(smil) = %v, want the single smiling face", got)
	}
}

func TestMatchBounds(t *testing.T) {
	catalog := testCatalog()

	if got := Match("grin", nil, 5); got != nil {
		t.Errorf("empty catalog: got %v, want nil", got)
	}
	if got := Match("grin", catalog, 0); got != nil {
		t.Errorf("zero limit: got %v, want nil", got)
	}
	for limit := 1; limit <= 3; limit++ {
		if got := Match("grin", catalog, limit); len(got) > limit {
			t.Errorf("limit %d exceeded: %d candidates", limit, len(got))
		}
	}
}

func TestMatchFreshCandidates(t *testing.T) {
	// Two publications over the same catalog must produce distinct
	// candidate slices; callers mutate neither catalog nor results.
	catalog := testCatalog()
	first := Match("grin", catalog, 5)
	second := Match("grin", catalog, 5)
	if len(first) == 0 || len(second) == 0 {
		t.Fatal("expected matches")
	}
	if &first[0] == &second[0] {
		t.Error("candidate slices are shared between calls")
	}
}
