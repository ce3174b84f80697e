package geom

// Convert converts every field of r with a Go numeric conversion. Converting
// a floating-point rectangle to an integer one truncates each field toward
// zero; converting integers to floats keeps the value where T fits in U.
func Convert[U, T Scalar](r Rect[T]) Rect[U] {
	return Rect[U]{
		Left:   U(r.Left),
		Top:    U(r.Top),
		Width:  U(r.Width),
		Height: U(r.Height),
	}
}

// ToFloat widens an integer rectangle to floating point.
func ToFloat(r IntRect) FloatRect {
	return Convert[float32](r)
}

// ToInt truncates a floating-point rectangle to integers, each field toward
// zero.
func ToInt(r FloatRect) IntRect {
	return Convert[int](r)
}
