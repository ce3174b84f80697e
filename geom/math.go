package geom

import "golang.org/x/exp/constraints"

// Lerp interpolates between a and b by t.
func Lerp[T constraints.Float](a, b, t T) T {
	return a + t*(b-a)
}

// Clamp restricts v to [lo, hi].
func Clamp[T Scalar](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// isFloat reports whether T is a floating-point type. Integer division
// truncates 1/2 to zero, float division does not.
func isFloat[T Scalar]() bool {
	var one T = 1
	return one/2 != 0
}
