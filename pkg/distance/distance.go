// Package distance implements Levenshtein edit distance over Unicode
// scalar values. It is the core metric behind the suggest package.
package distance

// Distance returns the Levenshtein edit distance between a and b:
// the minimum number of single-rune insertions, deletions, or
// substitutions needed to transform one into the other.
//
// Strings are decoded to runes before indexing, so multi-byte
// characters count as a single unit. Comparison is case-sensitive
// and every edit costs exactly 1.
//
//	Distance("kitten", "sitting") == 3
//	Distance("hello", "hello") == 0
func Distance(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)
	m := len(ra)
	n := len(rb)

	if m == 0 {
		return n
	}
	if n == 0 {
		return m
	}

	// Two rolling rows instead of the full (m+1)x(n+1) matrix.
	prev := make([]int, n+1)
	curr := make([]int, n+1)
	for j := 0; j <= n; j++ {
		prev[j] = j
	}

	for i, ca := range ra {
		curr[0] = i + 1
		for j, cb := range rb {
			cost := 1
			if ca == cb {
				cost = 0
			}
			del := prev[j+1] + 1
			ins := curr[j] + 1
			sub := prev[j] + cost

			best := del
			if ins < best {
				best = ins
			}
			if sub < best {
				best = sub
			}
			curr[j+1] = best
		}
		prev, curr = curr, prev
	}

	return prev[n]
}
