package detection

// Distance returns the Levenshtein edit distance between two sequences: the
// minimum number of single-element insertions, deletions and substitutions
// needed to turn a into b. Transpositions count as two edits.
//
// Only two rows of the DP table are kept, so memory is O(min(len(a), len(b))).
func Distance[T comparable](a, b []T) int {
	// Keep the shorter sequence on the columns
	if len(b) > len(a) {
		a, b = b, a
	}
	if len(b) == 0 {
		return len(a)
	}

	// prev[j] = distance between a[:i-1] and b[:j]
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}

			curr[j] = min(
				curr[j-1]+1,    // Insertion
				prev[j]+1,      // Deletion
				prev[j-1]+cost, // Substitution or match
			)
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}

// StringDistance computes Distance over the raw bytes of two strings
func StringDistance(a, b string) int {
	return Distance([]byte(a), []byte(b))
}
