// Package geom provides the axis-aligned rectangle and vector value types
// shared by the graphics, input and window wrappers.
//
// A single generic implementation serves both coordinate flavours: IntRect is
// used for texture regions and pixel viewports, FloatRect for sprite bounds and
// world-space areas.
package geom

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Scalar is the set of coordinate types a Rect or Vector2 can hold.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Rect is an axis-aligned rectangle given by one corner and a signed extent.
//
// Width and Height may be negative; such a rectangle covers the same area as
// the one reflected across the corresponding axis. Rect is a comparable value:
// == compares the four fields exactly, without normalizing them first.
type Rect[T Scalar] struct {
	Left, Top     T
	Width, Height T
}

// IntRect is a rectangle in integer (pixel) coordinates.
type IntRect = Rect[int]

// FloatRect is a rectangle in floating-point coordinates.
type FloatRect = Rect[float32]

// NewRect builds a rectangle from its corner and extent.
func NewRect[T Scalar](left, top, width, height T) Rect[T] {
	return Rect[T]{Left: left, Top: top, Width: width, Height: height}
}

// RectFromPosSize builds a rectangle from a position and a size pair.
func RectFromPosSize[T Scalar](pos, size Vector2[T]) Rect[T] {
	return Rect[T]{Left: pos.X, Top: pos.Y, Width: size.X, Height: size.Y}
}

// Position returns the (Left, Top) corner.
func (r Rect[T]) Position() Vector2[T] {
	return Vector2[T]{X: r.Left, Y: r.Top}
}

// Size returns the (Width, Height) extent, signs included.
func (r Rect[T]) Size() Vector2[T] {
	return Vector2[T]{X: r.Width, Y: r.Height}
}

// Bounds returns the normalized min/max corners of r.
func (r Rect[T]) Bounds() (minX, minY, maxX, maxY T) {
	minX = min(r.Left, r.Left+r.Width)
	maxX = max(r.Left, r.Left+r.Width)
	minY = min(r.Top, r.Top+r.Height)
	maxY = max(r.Top, r.Top+r.Height)
	return minX, minY, maxX, maxY
}

// Normalized returns the equivalent rectangle with a non-negative extent.
func (r Rect[T]) Normalized() Rect[T] {
	minX, minY, maxX, maxY := r.Bounds()
	return Rect[T]{Left: minX, Top: minY, Width: maxX - minX, Height: maxY - minY}
}

// Contains reports whether the point (x, y) lies inside r. The lower bound of
// each axis is inclusive and the upper bound exclusive.
func (r Rect[T]) Contains(x, y T) bool {
	minX, minY, maxX, maxY := r.Bounds()
	return x >= minX && x < maxX && y >= minY && y < maxY
}

// ContainsPoint is Contains for a vector.
func (r Rect[T]) ContainsPoint(p Vector2[T]) bool {
	return r.Contains(p.X, p.Y)
}

// Intersects returns the overlapping area of r and other, or the zero
// rectangle when they do not overlap. Rectangles that only share an edge or a
// corner do not overlap.
func (r Rect[T]) Intersects(other Rect[T]) Rect[T] {
	r1MinX, r1MinY, r1MaxX, r1MaxY := r.Bounds()
	r2MinX, r2MinY, r2MaxX, r2MaxY := other.Bounds()

	interLeft := max(r1MinX, r2MinX)
	interTop := max(r1MinY, r2MinY)
	interRight := min(r1MaxX, r2MaxX)
	interBottom := min(r1MaxY, r2MaxY)

	if interLeft < interRight && interTop < interBottom {
		return Rect[T]{
			Left:   interLeft,
			Top:    interTop,
			Width:  interRight - interLeft,
			Height: interBottom - interTop,
		}
	}
	return Rect[T]{}
}

// IsIntersecting reports whether Intersects yields a non-zero rectangle.
//
// The zero rectangle doubles as the "no overlap" result, so an overlap that
// is itself the zero rectangle cannot be told apart from no overlap.
func (r Rect[T]) IsIntersecting(other Rect[T]) bool {
	return !r.Intersects(other).IsZero()
}

// IsZero reports whether all four fields are exactly zero.
func (r Rect[T]) IsZero() bool {
	return r == Rect[T]{}
}

// Equal reports exact field-wise equality. No tolerance is applied to
// floating-point fields.
func (r Rect[T]) Equal(other Rect[T]) bool {
	return r == other
}

func (r Rect[T]) String() string {
	return fmt.Sprintf("(%v, %v, %v, %v)", r.Left, r.Top, r.Width, r.Height)
}
