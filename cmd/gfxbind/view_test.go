package main

import (
	"image/color"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/gfxbind/geom"
	"github.com/milk9111/gfxbind/graphics"
	"github.com/stretchr/testify/assert"
)

func TestAreaOf(t *testing.T) {
	cases := []struct {
		name string
		bb   cp.BB
		want float64
	}{
		{"box", geom.ToBB(geom.NewRect[float32](0, 0, 4, 5)), 20},
		{"no_overlap", geom.ToBB(geom.FloatRect{}), 0},
		{"inverted", cp.BB{L: 4, B: 4, R: 0, T: 0}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, areaOf(tc.bb))
		})
	}
}

func TestScreenRect(t *testing.T) {
	view := graphics.NewView(geom.NewRect[float32](0, 0, 128, 64))
	target := geom.Vec2(256, 128)

	got := screenRect(view, target, geom.NewRect[float32](16, 16, 32, 8))
	assert.Equal(t, geom.NewRect(32, 32, 64, 16), got)

	flipped := screenRect(view, target, geom.NewRect[float32](48, 24, -32, -8))
	assert.Equal(t, got, flipped)
}

func TestWithAlpha(t *testing.T) {
	got := withAlpha(color.RGBA{R: 10, G: 20, B: 30, A: 0xff}, 0x40)
	assert.Equal(t, color.NRGBA{R: 10, G: 20, B: 30, A: 0x40}, got)
}
