package similarity

import "math"

// AbsoluteDifference returns |b - a| for two integers.
// The result is absent (ok == false) when the subtraction overflows int or
// the difference has no representable absolute value (math.MinInt).
func AbsoluteDifference(a, b int) (int, bool) {
	d, ok := checkedSub(b, a)
	if !ok || d == math.MinInt {
		return 0, false
	}
	if d < 0 {
		d = -d
	}
	return d, true
}

// checkedSub computes a - b, reporting overflow instead of wrapping.
func checkedSub(a, b int) (int, bool) {
	d := a - b
	if (b > 0 && d > a) || (b < 0 && d < a) {
		return 0, false
	}
	return d, true
}
