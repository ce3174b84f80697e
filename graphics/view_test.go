package graphics

import (
	"testing"

	"github.com/milk9111/gfxbind/geom"
	"github.com/stretchr/testify/assert"
)

func TestViewVisibleArea(t *testing.T) {
	v := NewView(geom.NewRect[float32](0, 0, 200, 100))
	assert.Equal(t, geom.Vec2[float32](100, 50), v.Center)
	assert.Equal(t, geom.NewRect[float32](0, 0, 200, 100), v.VisibleArea())

	v.SetZoom(2)
	assert.Equal(t, geom.NewRect[float32](50, 25, 100, 50), v.VisibleArea())

	v.SetZoom(-1)
	assert.Equal(t, float32(2), v.Zoom())
}

func TestViewViewportPixels(t *testing.T) {
	v := NewView(geom.NewRect[float32](0, 0, 100, 100))
	target := geom.Vec2(800, 600)
	assert.Equal(t, geom.NewRect(0, 0, 800, 600), v.ViewportPixels(target))

	v.Viewport = geom.NewRect[float32](0.5, 0, 0.5, 1)
	assert.Equal(t, geom.NewRect(400, 0, 400, 600), v.ViewportPixels(target))
}

func TestViewMapping(t *testing.T) {
	v := NewView(geom.NewRect[float32](100, 100, 400, 300))
	v.Viewport = geom.NewRect[float32](0, 0, 0.5, 1)
	target := geom.Vec2(800, 600)

	world := v.MapPixelToCoords(geom.Vec2(200, 300), target)
	assert.Equal(t, geom.Vec2[float32](300, 250), world)
	assert.Equal(t, geom.Vec2(200, 300), v.MapCoordsToPixel(world, target))

	m := v.GeoM(target)
	x, y := m.Apply(300, 250)
	assert.InDelta(t, 200, x, 1e-6)
	assert.InDelta(t, 300, y, 1e-6)
}

func TestViewFollowClamped(t *testing.T) {
	v := NewView(geom.NewRect[float32](0, 0, 100, 100))
	v.SetBounds(geom.NewRect[float32](0, 0, 400, 300))

	v.Follow(geom.Vec2[float32](1000, 1000), 1)
	assert.Equal(t, geom.Vec2[float32](350, 250), v.Center)

	v.Follow(geom.Vec2[float32](200, 150), 0.5)
	assert.Equal(t, geom.Vec2[float32](275, 200), v.Center)

	v.SetZoom(0.25)
	assert.Equal(t, geom.Vec2[float32](200, 150), v.Center, "view larger than bounds centers on them")
}
