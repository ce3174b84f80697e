package geom

import "fmt"

// Vector2 is a 2D position or size.
type Vector2[T Scalar] struct {
	X, Y T
}

type Vector2i = Vector2[int]
type Vector2f = Vector2[float32]

func Vec2[T Scalar](x, y T) Vector2[T] {
	return Vector2[T]{X: x, Y: y}
}

func (v Vector2[T]) Add(o Vector2[T]) Vector2[T] {
	return Vector2[T]{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vector2[T]) Sub(o Vector2[T]) Vector2[T] {
	return Vector2[T]{X: v.X - o.X, Y: v.Y - o.Y}
}

// Mul scales both components by s.
func (v Vector2[T]) Mul(s T) Vector2[T] {
	return Vector2[T]{X: v.X * s, Y: v.Y * s}
}

func (v Vector2[T]) String() string {
	return fmt.Sprintf("(%v, %v)", v.X, v.Y)
}

// ConvertVec converts each component with a Go numeric conversion.
func ConvertVec[U, T Scalar](v Vector2[T]) Vector2[U] {
	return Vector2[U]{X: U(v.X), Y: U(v.Y)}
}
