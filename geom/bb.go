package geom

import "github.com/jakecoffman/cp"

// ToBB converts r to a chipmunk bounding box. Screen space grows downward, so
// the rectangle's top maps onto the box's B edge, matching how collision
// boxes are laid out from tile rectangles.
func ToBB[T Scalar](r Rect[T]) cp.BB {
	minX, minY, maxX, maxY := r.Bounds()
	return cp.BB{L: float64(minX), B: float64(minY), R: float64(maxX), T: float64(maxY)}
}

// FromBB converts a chipmunk bounding box back to a FloatRect.
func FromBB(bb cp.BB) FloatRect {
	return FloatRect{
		Left:   float32(bb.L),
		Top:    float32(bb.B),
		Width:  float32(bb.R - bb.L),
		Height: float32(bb.T - bb.B),
	}
}
