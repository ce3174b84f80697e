// Package graphics wraps ebiten images and shaders as textures, sprites,
// views and shaders addressed with geom rectangles.
package graphics

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/gfxbind/geom"
)

// Texture is a GPU image. A texture created by NewTexture owns its native
// image; textures returned by SubTexture or WrapImage share one and never
// release it.
type Texture struct {
	img      *ebiten.Image
	owned    bool
	disposed bool
}

// NewTexture allocates an empty texture of the given size.
func NewTexture(width, height int) (*Texture, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("graphics: new texture %dx%d: %w", width, height, ErrEmptyRegion)
	}
	return &Texture{img: ebiten.NewImage(width, height), owned: true}, nil
}

// NewTextureFromImage uploads src into a new texture.
func NewTextureFromImage(src image.Image) (*Texture, error) {
	if src == nil {
		return nil, fmt.Errorf("graphics: new texture from nil image")
	}
	b := src.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, fmt.Errorf("graphics: new texture from %v: %w", b, ErrEmptyRegion)
	}
	return &Texture{img: ebiten.NewImageFromImage(src), owned: true}, nil
}

// WrapImage wraps a native image without taking ownership, e.g. the screen
// handed to Draw.
func WrapImage(img *ebiten.Image) *Texture {
	return &Texture{img: img}
}

// Image returns the native image, or nil once disposed.
func (t *Texture) Image() *ebiten.Image {
	if t == nil || t.disposed {
		return nil
	}
	return t.img
}

func (t *Texture) Size() geom.Vector2i {
	img := t.Image()
	if img == nil {
		return geom.Vector2i{}
	}
	b := img.Bounds()
	return geom.Vec2(b.Dx(), b.Dy())
}

// Bounds returns the texture's local area, anchored at the origin.
func (t *Texture) Bounds() geom.IntRect {
	return geom.RectFromPosSize(geom.Vector2i{}, t.Size())
}

// SubTexture returns a view onto region, given in this texture's local
// coordinates. The region is normalized and clipped to the texture.
func (t *Texture) SubTexture(region geom.IntRect) (*Texture, error) {
	img := t.Image()
	if img == nil {
		return nil, ErrDisposed
	}
	clip := t.Bounds().Intersects(region)
	if clip.IsZero() {
		return nil, fmt.Errorf("graphics: sub texture %v of %v: %w", region, t.Bounds(), ErrEmptyRegion)
	}
	origin := img.Bounds().Min
	clip.Left += origin.X
	clip.Top += origin.Y
	sub, ok := img.SubImage(geom.ImageRect(clip)).(*ebiten.Image)
	if !ok {
		return nil, fmt.Errorf("graphics: sub texture %v: unexpected image type", region)
	}
	return &Texture{img: sub}, nil
}

func (t *Texture) Clear() {
	if img := t.Image(); img != nil {
		img.Clear()
	}
}

func (t *Texture) Fill(c color.Color) {
	if img := t.Image(); img != nil {
		img.Fill(c)
	}
}

// Draw draws src onto t.
func (t *Texture) Draw(src *Texture, op *ebiten.DrawImageOptions) {
	dst, s := t.Image(), src.Image()
	if dst == nil || s == nil {
		return
	}
	dst.DrawImage(s, op)
}

// WritePixels replaces the RGBA pixels of region with pix.
func (t *Texture) WritePixels(pix []byte, region geom.IntRect) error {
	sub, err := t.SubTexture(region)
	if err != nil {
		return err
	}
	size := sub.Size()
	if want := 4 * size.X * size.Y; len(pix) != want {
		return fmt.Errorf("graphics: write pixels %v: got %d bytes, want %d", region, len(pix), want)
	}
	sub.img.WritePixels(pix)
	return nil
}

// Dispose releases the native image if t owns it. It is safe to call more
// than once.
func (t *Texture) Dispose() {
	if t == nil || t.disposed {
		return
	}
	t.disposed = true
	if t.owned {
		t.img.Deallocate()
	}
	t.img = nil
}

func (t *Texture) IsDisposed() bool {
	return t == nil || t.disposed
}
