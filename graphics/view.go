package graphics

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/gfxbind/geom"
)

// View is a 2D camera: the world area shown and the part of the render
// target it is shown in.
type View struct {
	Center geom.Vector2f
	Size   geom.Vector2f
	// Viewport is the target area in [0, 1] ratios of the target size.
	Viewport geom.FloatRect

	zoom   float32
	bounds geom.FloatRect
}

// NewView returns a view showing area over the whole target.
func NewView(area geom.FloatRect) *View {
	area = area.Normalized()
	return &View{
		Center:   geom.Vec2(area.Left+area.Width/2, area.Top+area.Height/2),
		Size:     area.Size(),
		Viewport: geom.NewRect[float32](0, 0, 1, 1),
		zoom:     1,
	}
}

// SetZoom sets the zoom factor; values above 1 show a smaller area.
func (v *View) SetZoom(z float32) {
	if z <= 0 {
		return
	}
	v.zoom = z
	v.clamp()
}

func (v *View) Zoom() float32 {
	if v.zoom <= 0 {
		return 1
	}
	return v.zoom
}

// SetBounds limits the visible area to r. A zero rectangle removes the
// limit.
func (v *View) SetBounds(r geom.FloatRect) {
	v.bounds = r.Normalized()
	v.clamp()
}

// VisibleArea returns the world area the view shows.
func (v *View) VisibleArea() geom.FloatRect {
	w := v.Size.X / v.Zoom()
	h := v.Size.Y / v.Zoom()
	return geom.NewRect(v.Center.X-w/2, v.Center.Y-h/2, w, h)
}

// ViewportPixels returns the viewport in pixels of a target of the given
// size.
func (v *View) ViewportPixels(target geom.Vector2i) geom.IntRect {
	tw, th := float32(target.X), float32(target.Y)
	return geom.NewRect(
		int(0.5+tw*v.Viewport.Left),
		int(0.5+th*v.Viewport.Top),
		int(0.5+tw*v.Viewport.Width),
		int(0.5+th*v.Viewport.Height),
	)
}

// MapPixelToCoords converts a target pixel to world coordinates.
func (v *View) MapPixelToCoords(p geom.Vector2i, target geom.Vector2i) geom.Vector2f {
	vp := geom.ToFloat(v.ViewportPixels(target))
	if vp.Width == 0 || vp.Height == 0 {
		return v.Center
	}
	area := v.VisibleArea()
	nx := (float32(p.X) - vp.Left) / vp.Width
	ny := (float32(p.Y) - vp.Top) / vp.Height
	return geom.Vec2(area.Left+nx*area.Width, area.Top+ny*area.Height)
}

// MapCoordsToPixel converts world coordinates to a target pixel.
func (v *View) MapCoordsToPixel(p geom.Vector2f, target geom.Vector2i) geom.Vector2i {
	vp := geom.ToFloat(v.ViewportPixels(target))
	area := v.VisibleArea()
	if area.Width == 0 || area.Height == 0 {
		return geom.Vec2(int(vp.Left), int(vp.Top))
	}
	nx := (p.X - area.Left) / area.Width
	ny := (p.Y - area.Top) / area.Height
	return geom.Vec2(int(vp.Left+nx*vp.Width), int(vp.Top+ny*vp.Height))
}

// GeoM returns the world to target transform for a target of the given size.
func (v *View) GeoM(target geom.Vector2i) ebiten.GeoM {
	var m ebiten.GeoM
	vp := geom.ToFloat(v.ViewportPixels(target))
	area := v.VisibleArea()
	if area.Width == 0 || area.Height == 0 {
		return m
	}
	m.Translate(float64(-area.Left), float64(-area.Top))
	m.Scale(float64(vp.Width/area.Width), float64(vp.Height/area.Height))
	m.Translate(float64(vp.Left), float64(vp.Top))
	return m
}

// Follow moves the center toward target by the smoothing factor in [0, 1],
// then keeps the visible area inside the bounds.
func (v *View) Follow(target geom.Vector2f, smooth float32) {
	smooth = geom.Clamp(smooth, 0, 1)
	v.Center.X = geom.Lerp(v.Center.X, target.X, smooth)
	v.Center.Y = geom.Lerp(v.Center.Y, target.Y, smooth)
	v.clamp()
}

func (v *View) clamp() {
	if v.bounds.IsZero() {
		return
	}
	area := v.VisibleArea()
	v.Center.X = clampAxis(v.Center.X, area.Width, v.bounds.Left, v.bounds.Width)
	v.Center.Y = clampAxis(v.Center.Y, area.Height, v.bounds.Top, v.bounds.Height)
}

func clampAxis(center, visible, lo, extent float32) float32 {
	if visible >= extent {
		return lo + extent/2
	}
	return geom.Clamp(center, lo+visible/2, lo+extent-visible/2)
}
