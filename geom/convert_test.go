package geom

import (
	"image"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
)

func TestConvertRoundTrip(t *testing.T) {
	r := NewRect(1, 2, 3, 4)
	assert.Equal(t, r, ToInt(ToFloat(r)))
	assert.Equal(t, NewRect[float32](1, 2, 3, 4), ToFloat(r))
}

func TestToIntTruncatesTowardZero(t *testing.T) {
	f := NewRect[float32](1.9, -1.9, 2.5, -0.5)
	assert.Equal(t, NewRect(1, -1, 2, 0), ToInt(f))
}

func TestConvertGeneric(t *testing.T) {
	r := NewRect[float64](0.5, 1.5, 2.5, 3.5)
	assert.Equal(t, NewRect[int64](0, 1, 2, 3), Convert[int64](r))
	assert.Equal(t, Vec2[int](1, 2), ConvertVec[int](Vec2[float32](1.7, 2.2)))
}

func TestImageRect(t *testing.T) {
	assert.Equal(t, image.Rect(5, 5, 10, 10), ImageRect(NewRect(10, 10, -5, -5)))
	assert.Equal(t, NewRect(2, 3, 4, 5), FromImageRect(image.Rect(6, 8, 2, 3)))
}

func TestBB(t *testing.T) {
	bb := ToBB(NewRect[float32](10, 20, -4, 6))
	assert.Equal(t, cp.BB{L: 6, B: 20, R: 10, T: 26}, bb)
	assert.Equal(t, NewRect[float32](6, 20, 4, 6), FromBB(bb))
}
