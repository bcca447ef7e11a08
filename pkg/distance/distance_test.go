package distance

import (
	"testing"

	agext "github.com/agext/levenshtein"
)

func TestDistance(t *testing.T) {
	testCases := []struct {
		a, b        string
		want        int
		description string
	}{
		{"", "", 0, "Both empty"},
		{"a", "", 1, "Right empty"},
		{"", "a", 1, "Left empty"},
		{"abc", "", 3, "Right empty, longer"},
		{"", "abc", 3, "Left empty, longer"},
		{"abc", "abc", 0, "Identical"},
		{"hello", "hello", 0, "Identical word"},

		{"kitten", "sitting", 3, "Classic textbook pair"},
		{"saturday", "sunday", 3, "Classic textbook pair"},
		{"abc", "xyz", 3, "All substitutions"},

		{"vector", "vectr", 1, "Single deletion"},
		{"vector", "vextor", 1, "Single substitution"},
		{"vector", "vvector", 1, "Single insertion"},
		{"flaw", "lawn", 2, "Delete front, append back"},
		{"gumbo", "gambol", 2, "Mixed edits"},

		{"Case", "case", 1, "Case-sensitive comparison"},

		// rune-aware: each multi-byte character is one unit
		{"café", "cafe", 1, "Accented rune substitution"},
		{"日本語", "日本", 1, "CJK rune deletion"},
		{"über", "uber", 1, "Umlaut substitution"},
	}

	for _, tc := range testCases {
		got := Distance(tc.a, tc.b)
		if got != tc.want {
			t.Errorf("%s: Distance(%q, %q) = %d, want %d", tc.description, tc.a, tc.b, got, tc.want)
		}
	}
}

func TestDistanceProperties(t *testing.T) {
	corpus := []string{"", "a", "ab", "vector", "vectr", "kitten", "sitting", "café", "name", "apple"}

	for _, s := range corpus {
		if d := Distance(s, s); d != 0 {
			t.Errorf("Distance(%q, %q) = %d, want 0", s, s, d)
		}
		if d := Distance("", s); d != len([]rune(s)) {
			t.Errorf("Distance(\"\", %q) = %d, want rune count %d", s, d, len([]rune(s)))
		}
	}

	for _, a := range corpus {
		for _, b := range corpus {
			ab := Distance(a, b)
			ba := Distance(b, a)
			if ab != ba {
				t.Errorf("symmetry broken: Distance(%q, %q) = %d, Distance(%q, %q) = %d", a, b, ab, b, a, ba)
			}
			if bound := len([]rune(a)) + len([]rune(b)); ab > bound {
				t.Errorf("Distance(%q, %q) = %d exceeds length bound %d", a, b, ab, bound)
			}
		}
	}

	// triangle inequality over the whole corpus
	for _, a := range corpus {
		for _, b := range corpus {
			for _, c := range corpus {
				if Distance(a, c) > Distance(a, b)+Distance(b, c) {
					t.Errorf("triangle inequality broken for (%q, %q, %q)", a, b, c)
				}
			}
		}
	}
}

// Cross-checks the rolling-row implementation against agext/levenshtein
// with default (unweighted) params.
func TestDistanceAgainstReference(t *testing.T) {
	pairs := [][2]string{
		{"kitten", "sitting"},
		{"saturday", "sunday"},
		{"vacter", "vector"},
		{"tble", "table"},
		{"accessibility", "accessable"},
		{"identifier", "identfier"},
		{"", "nonempty"},
		{"same", "same"},
	}

	for _, p := range pairs {
		got := Distance(p[0], p[1])
		want := agext.Distance(p[0], p[1], nil)
		if got != want {
			t.Errorf("Distance(%q, %q) = %d, reference says %d", p[0], p[1], got, want)
		}
	}
}
