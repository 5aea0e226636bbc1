package similarity

import "math"

// PercentChange returns the percent change from a to b, 100 * (b - a) / |a|.
// The result is absent (ok == false) when a is zero or b - a overflows int.
func PercentChange(a, b int) (float64, bool) {
	if a == 0 {
		return 0, false
	}
	d, ok := checkedSub(b, a)
	if !ok {
		return 0, false
	}
	return 100 * float64(d) / math.Abs(float64(a)), true
}
