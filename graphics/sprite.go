package graphics

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/gfxbind/geom"
)

// Sprite draws a rectangular region of a texture with a position, scale and
// origin. A negative TextureRect extent flips the region on that axis.
type Sprite struct {
	Texture     *Texture
	TextureRect geom.IntRect
	Position    geom.Vector2f
	Scale       geom.Vector2f
	Origin      geom.Vector2f
	Color       color.Color
}

// NewSprite returns a sprite showing the whole of tex.
func NewSprite(tex *Texture) *Sprite {
	return &Sprite{
		Texture:     tex,
		TextureRect: tex.Bounds(),
		Scale:       geom.Vec2[float32](1, 1),
		Color:       color.White,
	}
}

// SetTexture swaps the texture, optionally resetting TextureRect to the
// whole new texture.
func (s *Sprite) SetTexture(tex *Texture, resetRect bool) {
	s.Texture = tex
	if resetRect || s.TextureRect.IsZero() {
		s.TextureRect = tex.Bounds()
	}
}

// LocalBounds is the sprite's area before the transform is applied.
func (s *Sprite) LocalBounds() geom.FloatRect {
	size := s.TextureRect.Normalized().Size()
	return geom.NewRect(0, 0, float32(size.X), float32(size.Y))
}

// GlobalBounds is the sprite's area after origin, scale and position.
func (s *Sprite) GlobalBounds() geom.FloatRect {
	local := s.LocalBounds()
	x0 := s.Position.X + (local.Left-s.Origin.X)*s.Scale.X
	y0 := s.Position.Y + (local.Top-s.Origin.Y)*s.Scale.Y
	x1 := s.Position.X + (local.Left+local.Width-s.Origin.X)*s.Scale.X
	y1 := s.Position.Y + (local.Top+local.Height-s.Origin.Y)*s.Scale.Y
	return geom.NewRect(x0, y0, x1-x0, y1-y0).Normalized()
}

// GeoM returns the sprite transform from region pixels to target space.
func (s *Sprite) GeoM() ebiten.GeoM {
	var m ebiten.GeoM
	size := s.LocalBounds().Size()
	if s.TextureRect.Width < 0 {
		m.Scale(-1, 1)
		m.Translate(float64(size.X), 0)
	}
	if s.TextureRect.Height < 0 {
		m.Scale(1, -1)
		m.Translate(0, float64(size.Y))
	}
	m.Translate(float64(-s.Origin.X), float64(-s.Origin.Y))
	m.Scale(float64(s.Scale.X), float64(s.Scale.Y))
	m.Translate(float64(s.Position.X), float64(s.Position.Y))
	return m
}

// Draw draws the sprite onto target.
func (s *Sprite) Draw(target *Texture) error {
	return s.DrawWith(target, ebiten.GeoM{})
}

// DrawWith draws the sprite with an extra transform applied after the
// sprite's own, typically a View's.
func (s *Sprite) DrawWith(target *Texture, view ebiten.GeoM) error {
	region, err := s.Texture.SubTexture(s.TextureRect)
	if err != nil {
		return err
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM = s.GeoM()
	op.GeoM.Concat(view)
	if s.Color != nil {
		op.ColorScale.ScaleWithColor(s.Color)
	}
	target.Draw(region, op)
	return nil
}
