package geom

import "image"

// FromImageRect converts an image.Rectangle to an IntRect. The image
// rectangle is canonicalized first.
func FromImageRect(r image.Rectangle) IntRect {
	r = r.Canon()
	return IntRect{Left: r.Min.X, Top: r.Min.Y, Width: r.Dx(), Height: r.Dy()}
}

// ImageRect converts r to a canonical image.Rectangle, truncating
// floating-point bounds toward zero.
func ImageRect[T Scalar](r Rect[T]) image.Rectangle {
	minX, minY, maxX, maxY := r.Bounds()
	return image.Rect(int(minX), int(minY), int(maxX), int(maxY))
}
