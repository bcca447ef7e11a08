// Package suggest is the core, picking the closest candidate to a
// misspelled identifier by Levenshtein distance for "did you mean?"
// style error reporting.
package suggest

import (
	"github.com/bastiangx/nameserve/pkg/distance"
)

// Match is a qualifying candidate together with its edit distance
// to the input.
type Match struct {
	Word     string
	Distance int
}

// Threshold returns the maximum edit distance a candidate may have
// to still qualify as a suggestion for input. The cutoff is a third
// of the input's rune count, rounded down; an input of one or two
// runes only matches at distance 0, and Suggest rejects empty input
// before this applies.
func Threshold(input string) int {
	return len([]rune(input)) / 3
}

// BestMatch scans candidates in list order and returns the one with
// the smallest edit distance to input, provided that distance is
// within Threshold(input). On ties the first-encountered candidate
// wins; later equal-distance candidates never replace it.
//
// Empty input or an empty candidate list yields no match. The
// returned Word is the candidate string itself, not a copy.
func BestMatch(input string, candidates []string) (Match, bool) {
	if len(input) == 0 {
		return Match{}, false
	}

	threshold := Threshold(input)
	best := Match{}
	found := false

	for _, candidate := range candidates {
		d := distance.Distance(input, candidate)
		if d > threshold {
			continue
		}
		if !found || d < best.Distance {
			best = Match{Word: candidate, Distance: d}
			found = true
		}
	}

	return best, found
}

// Suggest returns the best-matching candidate for input, or false
// when nothing is close enough. See BestMatch for the selection
// policy.
func Suggest(input string, candidates []string) (string, bool) {
	match, ok := BestMatch(input, candidates)
	if !ok {
		return "", false
	}
	return match.Word, true
}
