package similarity

// HammingDistance counts the positions at which the runes of a and b differ.
// Comparison stops at the end of the shorter string: trailing runes of the
// longer string are ignored, not counted as differences.
// Always defined, returns a bare int.
func HammingDistance(a, b string) int {
	return HammingDistanceOf([]rune(a), []rune(b))
}

// HammingDistanceOf counts differing positions between two unit sequences,
// truncating to the shorter length.
func HammingDistanceOf[T comparable](a, b []T) int {
	n := min(len(a), len(b))

	distance := 0
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			distance++
		}
	}

	return distance
}

// MaxHammingDistance returns the largest pairwise Hamming distance across
// all unordered pairs in words. Returns 0 for fewer than two words.
// Each pair is compared with the same truncating policy as HammingDistance.
func MaxHammingDistance(words []string) int {
	maxDistance := 0
	for i := 0; i < len(words); i++ {
		for j := i + 1; j < len(words); j++ {
			if d := HammingDistance(words[i], words[j]); d > maxDistance {
				maxDistance = d
			}
		}
	}

	return maxDistance
}
