package graphics

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutlineImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 5, 5))
	src.Set(2, 2, color.White)
	red := color.RGBA{R: 0xff, A: 0xff}

	out := OutlineImage(src, 1, red)
	assert.Equal(t, image.Rect(0, 0, 5, 5), out.Bounds())

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			near := abs(x-2)+abs(y-2) == 1
			want := color.RGBA{}
			if near {
				want = red
			}
			assert.Equal(t, want, out.RGBAAt(x, y), "pixel (%d, %d)", x, y)
		}
	}
}

func TestOutlineImageOffsetBounds(t *testing.T) {
	src := image.NewRGBA(image.Rect(10, 10, 13, 13))
	src.Set(10, 10, color.White)

	out := OutlineImage(src, 1, color.Black)
	assert.Equal(t, image.Rect(0, 0, 3, 3), out.Bounds())
	assert.Equal(t, color.RGBA{A: 0xff}, out.RGBAAt(1, 0))
	assert.Equal(t, color.RGBA{A: 0xff}, out.RGBAAt(0, 1))
	assert.Equal(t, color.RGBA{}, out.RGBAAt(1, 1), "diagonal neighbours are not outlined")
	assert.Equal(t, color.RGBA{}, out.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{}, out.RGBAAt(2, 2))
}

func TestOutlineImageThickness(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 7, 7))
	src.Set(3, 3, color.White)

	out := OutlineImage(src, 2, color.Black)
	for y := 0; y < 7; y++ {
		for x := 0; x < 7; x++ {
			d := abs(x-3) + abs(y-3)
			assert.Equal(t, d >= 1 && d <= 2, out.RGBAAt(x, y).A != 0, "pixel (%d, %d)", x, y)
		}
	}
}

func TestOutlineCachesPerTexture(t *testing.T) {
	src, err := NewTexture(8, 8)
	if err != nil {
		t.Fatal(err)
	}
	o := NewOutline(color.Black)
	defer o.Dispose()

	a, err := o.Texture(src)
	assert.NoError(t, err)
	b, err := o.Texture(src)
	assert.NoError(t, err)
	assert.Same(t, a, b)
	assert.Equal(t, src.Size(), a.Size())

	o.Invalidate(src)
	assert.True(t, a.IsDisposed())
}
