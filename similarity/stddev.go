package similarity

import "math"

// PopulationStdDev returns the population standard deviation of numbers.
// The divisor is the full population count, not count-1.
// The result is absent (ok == false) for an empty collection.
func PopulationStdDev(numbers []float64) (float64, bool) {
	if len(numbers) == 0 {
		return 0, false
	}

	var sum float64
	for _, x := range numbers {
		sum += x
	}
	mean := sum / float64(len(numbers))

	var variance float64
	for _, x := range numbers {
		diff := x - mean
		variance += diff * diff
	}
	variance /= float64(len(numbers))

	return math.Sqrt(variance), true
}
