package graphics

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/gfxbind/assets"
	"github.com/milk9111/gfxbind/geom"
	"github.com/milk9111/gfxbind/logging"
)

// Outline draws a one pixel outline around the opaque pixels of a texture.
// Outlines are generated once per source texture and cached.
type Outline struct {
	shader    *Shader
	color     color.Color
	threshold float32
	cache     map[*Texture]*Texture
}

// NewOutline prepares the outline effect. When the embedded shader cannot
// be compiled the effect falls back to a CPU scan of the source pixels.
func NewOutline(c color.Color) *Outline {
	o := &Outline{color: c, threshold: 0.01, cache: map[*Texture]*Texture{}}
	src, err := assets.LoadShaderSource("outline.kage")
	if err == nil {
		o.shader, err = NewShader(src)
	}
	if err != nil {
		logging.With("outline").Warn("shader unavailable, using CPU outline", "error", err)
		return o
	}
	o.shader.SetFloat("Threshold", o.threshold)
	o.shader.SetColor("OutlineColor", c)
	return o
}

// Texture returns the cached outline of src, generating it on first use.
func (o *Outline) Texture(src *Texture) (*Texture, error) {
	if out, ok := o.cache[src]; ok && !out.IsDisposed() {
		return out, nil
	}
	if src.IsDisposed() {
		return nil, ErrDisposed
	}

	var out *Texture
	var err error
	if o.shader != nil {
		out, err = o.shaderOutline(src)
	} else {
		out, err = NewTextureFromImage(OutlineImage(src.Image(), 1, o.color))
	}
	if err != nil {
		return nil, err
	}
	o.cache[src] = out
	return out, nil
}

func (o *Outline) shaderOutline(src *Texture) (*Texture, error) {
	size := src.Size()
	out, err := NewTexture(size.X, size.Y)
	if err != nil {
		return nil, err
	}
	if err := o.shader.SetTexture(0, src); err != nil {
		return nil, err
	}
	defer o.shader.SetTexture(0, nil)
	if err := o.shader.DrawRect(out, geom.RectFromPosSize(geom.Vector2i{}, size)); err != nil {
		out.Dispose()
		return nil, err
	}
	return out, nil
}

// Draw draws the outline of src onto dst.
func (o *Outline) Draw(dst, src *Texture, op *ebiten.DrawImageOptions) error {
	out, err := o.Texture(src)
	if err != nil {
		return err
	}
	dst.Draw(out, op)
	return nil
}

// Invalidate drops the cached outline of src.
func (o *Outline) Invalidate(src *Texture) {
	if out, ok := o.cache[src]; ok {
		out.Dispose()
		delete(o.cache, src)
	}
}

func (o *Outline) Dispose() {
	for src := range o.cache {
		o.Invalidate(src)
	}
	if o.shader != nil {
		o.shader.Dispose()
	}
}

// OutlineImage returns an image the size of src with outlineCol on every
// transparent pixel within thickness steps of an opaque one, counting only
// horizontal and vertical steps. With thickness 1 this is the same
// four-neighbour test as outline.kage.
func OutlineImage(src image.Image, thickness int, outlineCol color.Color) *image.RGBA {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	out := image.NewRGBA(image.Rect(0, 0, w, h))

	isOpaque := func(x, y int) bool {
		if x < 0 || y < 0 || x >= w || y >= h {
			return false
		}
		_, _, _, a := src.At(b.Min.X+x, b.Min.Y+y).RGBA()
		return a != 0
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if isOpaque(x, y) {
				continue
			}
			area := geom.NewRect(x-thickness, y-thickness, 2*thickness+1, 2*thickness+1).
				Intersects(geom.NewRect(0, 0, w, h))
			if nearOpaque(geom.Vec2(x, y), thickness, area, isOpaque) {
				out.Set(x, y, outlineCol)
			}
		}
	}
	return out
}

func nearOpaque(p geom.Vector2i, thickness int, area geom.IntRect, isOpaque func(x, y int) bool) bool {
	for yy := area.Top; yy < area.Top+area.Height; yy++ {
		for xx := area.Left; xx < area.Left+area.Width; xx++ {
			if abs(xx-p.X)+abs(yy-p.Y) > thickness {
				continue
			}
			if isOpaque(xx, yy) {
				return true
			}
		}
	}
	return false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
