package gamemath

import "math"

// Axis folds a pair of opposing held keys into -1, 0 or 1. The positive key wins
// when both are held.
func Axis(negative, positive bool) float64 {
	if positive {
		return 1
	}
	if negative {
		return -1
	}
	return 0
}

// ClampInt clamps v to [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Overlaps reports whether two square bodies centered at a and b are closer than
// half their summed sizes. Sizes are whole pixels and the threshold rounds down.
func Overlaps(ax, ay, bx, by, sizeA, sizeB float64) bool {
	return math.Hypot(ax-bx, ay-by) < math.Floor((sizeA+sizeB)/2)
}

// InRect reports whether (x, y) lies inside [0, w]×[0, h], edges included.
func InRect(x, y, w, h float64) bool {
	return x >= 0 && x <= w && y >= 0 && y <= h
}
