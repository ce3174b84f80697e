package graphics

import (
	"fmt"
	"image/color"
	"maps"
	"os"
	"slices"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/gfxbind/assets"
	"github.com/milk9111/gfxbind/geom"
	"github.com/milk9111/gfxbind/logging"
)

// TextureSlots is the number of source images a shader can sample.
const TextureSlots = 4

// Shader is a compiled Kage program plus the uniform values and source
// textures it is drawn with. Methods are safe for concurrent use so a
// watcher can Reload while the game loop draws.
type Shader struct {
	mu       sync.Mutex
	name     string
	native   *ebiten.Shader
	uniforms map[string]any
	images   [TextureSlots]*Texture
}

// NewShader compiles Kage source. A compile failure is the only error.
func NewShader(src []byte) (*Shader, error) {
	return newShader("", src)
}

// LoadShader compiles the Kage file at path, read from disk or, failing
// that, from the embedded shader assets.
func LoadShader(path string) (*Shader, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		var embedErr error
		if src, embedErr = assets.LoadShaderSource(path); embedErr != nil {
			return nil, fmt.Errorf("graphics: load shader %s: %w", path, err)
		}
	}
	return newShader(path, src)
}

func newShader(name string, src []byte) (*Shader, error) {
	native, err := compile(name, src)
	if err != nil {
		return nil, err
	}
	return &Shader{name: name, native: native, uniforms: map[string]any{}}, nil
}

func compile(name string, src []byte) (*ebiten.Shader, error) {
	native, err := ebiten.NewShader(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrShaderCompile, name, err)
	}
	return native, nil
}

func (s *Shader) Name() string {
	return s.name
}

// Native returns the compiled shader, or nil once disposed.
func (s *Shader) Native() *ebiten.Shader {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.native
}

func (s *Shader) IsDisposed() bool {
	return s.Native() == nil
}

func (s *Shader) set(name string, v any) {
	s.mu.Lock()
	s.uniforms[name] = v
	s.mu.Unlock()
}

func (s *Shader) SetFloat(name string, v float32) {
	s.set(name, v)
}

func (s *Shader) SetInt(name string, v int) {
	s.set(name, int32(v))
}

func (s *Shader) SetVec2(name string, v geom.Vector2f) {
	s.set(name, []float32{v.X, v.Y})
}

func (s *Shader) SetVec3(name string, x, y, z float32) {
	s.set(name, []float32{x, y, z})
}

func (s *Shader) SetVec4(name string, x, y, z, w float32) {
	s.set(name, []float32{x, y, z, w})
}

// SetRect stores r as a vec4 of (left, top, width, height).
func (s *Shader) SetRect(name string, r geom.FloatRect) {
	s.SetVec4(name, r.Left, r.Top, r.Width, r.Height)
}

// SetColor stores c as a non-premultiplied vec4 in [0, 1].
func (s *Shader) SetColor(name string, c color.Color) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	s.SetVec4(name, float32(n.R)/0xff, float32(n.G)/0xff, float32(n.B)/0xff, float32(n.A)/0xff)
}

// SetFloats stores a float or vector uniform from a flat slice: one value is
// stored as a float, more as a vector or matrix.
func (s *Shader) SetFloats(name string, v []float32) {
	switch len(v) {
	case 0:
		s.mu.Lock()
		delete(s.uniforms, name)
		s.mu.Unlock()
	case 1:
		s.set(name, v[0])
	default:
		s.set(name, slices.Clone(v))
	}
}

// SetMatrix stores a matrix uniform in column-major order.
func (s *Shader) SetMatrix(name string, m []float32) {
	s.set(name, slices.Clone(m))
}

// SetTexture binds tex to source slot 0..3. A nil texture clears the slot.
func (s *Shader) SetTexture(slot int, tex *Texture) error {
	if slot < 0 || slot >= TextureSlots {
		return fmt.Errorf("graphics: set texture %d: %w", slot, ErrTextureSlot)
	}
	s.mu.Lock()
	s.images[slot] = tex
	s.mu.Unlock()
	return nil
}

// Uniforms returns a copy of the current uniform values.
func (s *Shader) Uniforms() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return maps.Clone(s.uniforms)
}

// DrawRect runs the shader over region of dst. Bound source textures must
// have the region's size. An empty region draws nothing.
func (s *Shader) DrawRect(dst *Texture, region geom.IntRect) error {
	target := dst.Image()
	if target == nil {
		return ErrDisposed
	}
	r := region.Normalized()
	if r.Width == 0 || r.Height == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.native == nil {
		return ErrDisposed
	}

	op := &ebiten.DrawRectShaderOptions{Uniforms: maps.Clone(s.uniforms)}
	for i, tex := range s.images {
		if tex == nil {
			continue
		}
		img := tex.Image()
		if img == nil {
			return fmt.Errorf("graphics: draw shader %s slot %d: %w", s.name, i, ErrDisposed)
		}
		if size := tex.Size(); size != r.Size() {
			return fmt.Errorf("graphics: draw shader %s slot %d is %v, region %v: %w", s.name, i, size, r.Size(), ErrRegionSize)
		}
		op.Images[i] = img
	}
	op.GeoM.Translate(float64(r.Left), float64(r.Top))
	target.DrawRectShader(r.Width, r.Height, s.native, op)
	return nil
}

// Reload recompiles the shader from src. The previous program is kept when
// compilation fails. A disposed shader cannot be reloaded.
func (s *Shader) Reload(src []byte) error {
	native, err := compile(s.name, src)
	if err != nil {
		return err
	}
	s.mu.Lock()
	old := s.native
	if old == nil {
		s.mu.Unlock()
		native.Deallocate()
		return ErrDisposed
	}
	s.native = native
	s.mu.Unlock()
	old.Deallocate()
	logging.With("shader").Info("reloaded", "name", s.name)
	return nil
}

// Dispose releases the compiled program. It is safe to call more than once.
func (s *Shader) Dispose() {
	s.mu.Lock()
	native := s.native
	s.native = nil
	s.images = [TextureSlots]*Texture{}
	s.mu.Unlock()
	if native != nil {
		native.Deallocate()
	}
}
