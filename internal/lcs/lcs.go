// Package lcs provides longest-common-subsequence similarity between strings.
// It backs "did you mean" suggestions for misspelled names.
package lcs

// Length returns the length of the longest common subsequence of a and b.
func Length(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)

	// Classic dynamic programming over a single row.
	row := make([]int, len(rb)+1)
	for i := 1; i <= len(ra); i++ {
		prev := 0 // row[j-1] of the previous row
		for j := 1; j <= len(rb); j++ {
			cur := row[j]
			if ra[i-1] == rb[j-1] {
				row[j] = prev + 1
			} else if row[j-1] > row[j] {
				row[j] = row[j-1]
			}
			prev = cur
		}
	}
	return row[len(rb)]
}

// Closest returns the candidate most similar to name. It reports false when no
// candidate shares at least half of name as a subsequence, since a suggestion
// below that bar confuses more than it helps.
func Closest(name string, candidates []string) (string, bool) {
	best := ""
	bestLen := 0
	for _, cand := range candidates {
		n := Length(name, cand)
		if n > bestLen {
			best = cand
			bestLen = n
		}
	}

	if bestLen*2 < len([]rune(name)) {
		return "", false
	}
	return best, best != ""
}
