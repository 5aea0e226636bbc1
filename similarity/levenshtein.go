package similarity

// LevenshteinDistance computes the minimum number of single-rune insertions,
// deletions, and substitutions needed to transform a into b.
// Runes are compared by exact code point; no case folding or Unicode
// normalization is applied. Always defined, returns a bare int.
func LevenshteinDistance(a, b string) int {
	return LevenshteinDistanceOf([]rune(a), []rune(b))
}

// LevenshteinDistanceOf computes the edit distance between two sequences of
// comparable units using full-matrix dynamic programming.
// Time and space are O(len(a) * len(b)).
func LevenshteinDistanceOf[T comparable](a, b []T) int {
	m, n := len(a), len(b)
	if m == 0 {
		return n
	}
	if n == 0 {
		return m
	}

	// matrix[i][0] and matrix[0][j] hold the cost of transforming a prefix
	// into or from the empty sequence.
	matrix := make([][]int, m+1)
	for i := range matrix {
		matrix[i] = make([]int, n+1)
		matrix[i][0] = i
	}
	for j := 1; j <= n; j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}
			matrix[i][j] = min(
				matrix[i-1][j]+1,      // deletion
				matrix[i][j-1]+1,      // insertion
				matrix[i-1][j-1]+cost, // substitution
			)
		}
	}

	return matrix[m][n]
}
