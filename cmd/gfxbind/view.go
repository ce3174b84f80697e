package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/gfxbind/config"
	"github.com/milk9111/gfxbind/geom"
	"github.com/milk9111/gfxbind/graphics"
	"github.com/milk9111/gfxbind/logging"
	"github.com/milk9111/gfxbind/window"
	"github.com/spf13/cobra"
	"golang.design/x/clipboard"
	"golang.org/x/image/colornames"
)

var flagWatch bool

const tileTexture = "images/tile.png"

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Open a window showing two rects and their overlap",
	Long: `Shows regions "a" and "b" from the configuration. Drag B with the
mouse or a finger; the overlap is highlighted by the highlight shader and the
tile sprite is outlined by the outline shader. Press C to copy the overlap to
the clipboard.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		var (
			opts    []window.Option
			watcher *graphics.ShaderWatcher
		)
		if flagWatch {
			if watcher, err = graphics.NewShaderWatcher(); err != nil {
				return fmt.Errorf("watch shaders: %w", err)
			}
			defer watcher.Close()
			opts = append(opts, window.WithShaderWatcher(watcher))
		}

		scene, err := newViewer(cfg, watcher)
		if err != nil {
			return err
		}
		defer scene.Dispose()
		return window.New(cfg.Window, opts...).Run(cmd.Context(), scene)
	},
}

func init() {
	viewCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload shaders from disk when their files change")
}

type viewer struct {
	a, b geom.FloatRect

	dragging   bool
	dragOffset geom.Vector2f

	tile      *graphics.Sprite
	outline   *graphics.Outline
	highlight *graphics.Shader
	shaders   map[string]*graphics.Shader
	hud       *hud

	clipboardOK bool
}

func newViewer(cfg *config.Config, watcher *graphics.ShaderWatcher) (*viewer, error) {
	v := &viewer{
		a:       regionOr(cfg, "a", geom.NewRect[float32](40, 40, 160, 120)),
		b:       regionOr(cfg, "b", geom.NewRect[float32](140, 100, 160, 120)),
		outline: graphics.NewOutline(colornames.Gold),
		shaders: map[string]*graphics.Shader{},
		hud:     newHUD(),
	}

	for _, spec := range cfg.Shaders {
		s, err := graphics.LoadShader(spec.Path)
		if err != nil {
			return nil, err
		}
		for name, vals := range spec.Uniforms {
			s.SetFloats(name, vals)
		}
		if watcher != nil && spec.Watch {
			if err := watcher.Watch(spec.Path, s); err != nil {
				logging.With("view").Warn("cannot watch shader", "path", spec.Path, "error", err)
			}
		}
		v.shaders[spec.Name] = s
	}

	highlight, ok := v.shaders["highlight"]
	if !ok {
		var err error
		if highlight, err = graphics.LoadShader("highlight.kage"); err != nil {
			return nil, err
		}
	}
	highlight.SetColor("Tint", colornames.Tomato)
	v.highlight = highlight

	tex, err := graphics.LoadTexture(tileTexture)
	if err != nil {
		return nil, err
	}
	v.tile = graphics.NewSprite(tex)

	if err := clipboard.Init(); err != nil {
		logging.With("view").Warn("clipboard unavailable", "error", err)
	} else {
		v.clipboardOK = true
	}
	return v, nil
}

func regionOr(cfg *config.Config, name string, fallback geom.FloatRect) geom.FloatRect {
	if r, ok := cfg.Regions[name]; ok {
		return r
	}
	return fallback
}

func (v *viewer) Update(f *window.Frame) error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	v.hud.ui.Update()

	var pointer geom.Vector2f
	var pressed bool
	if p, ok := f.Touch.PositionIn(0, f.View, f.Size); ok {
		pointer, pressed = p, true
	} else {
		pointer = f.Mouse.PositionIn(f.View, f.Size)
		pressed = f.Mouse.IsDown(ebiten.MouseButtonLeft)
	}

	switch {
	case !pressed:
		v.dragging = false
	case !v.dragging && v.b.ContainsPoint(pointer):
		v.dragging = true
		v.dragOffset = pointer.Sub(v.b.Position())
	case v.dragging:
		pos := pointer.Sub(v.dragOffset)
		v.b.Left, v.b.Top = pos.X, pos.Y
	}

	inter := v.a.Intersects(v.b)
	if inpututil.IsKeyJustPressed(ebiten.KeyC) && v.clipboardOK {
		clipboard.Write(clipboard.FmtText, []byte(inter.String()))
	}

	v.highlight.SetFloat("Time", float32(f.Tick)/float32(ebiten.TPS()))
	v.tile.Position = v.a.Position()

	bb := geom.ToBB(inter)
	v.hud.SetStatus(fmt.Sprintf("A %v  B %v\noverlap %v  area %.0f  touches in A %d",
		v.a, v.b, inter, areaOf(bb), len(f.Touch.TouchesIn(screenRect(f.View, f.Size, v.a)))))
	return nil
}

func areaOf(bb cp.BB) float64 {
	if bb.R <= bb.L || bb.T <= bb.B {
		return 0
	}
	return (bb.R - bb.L) * (bb.T - bb.B)
}

func (v *viewer) Draw(target *graphics.Texture, f *window.Frame) {
	target.Fill(colornames.Midnightblue)
	size := target.Size()

	v.drawRect(target, f.View, size, v.a, colornames.Seagreen)
	v.drawRect(target, f.View, size, v.b, colornames.Slateblue)

	if inter := v.a.Intersects(v.b); !inter.IsZero() {
		region := screenRect(f.View, size, inter)
		v.highlight.SetRect("Region", geom.ToFloat(region))
		if err := v.highlight.DrawRect(target, region); err != nil {
			logging.With("view").Error("highlight", "error", err)
		}
	}

	viewM := f.View.GeoM(size)
	if err := v.tile.DrawWith(target, viewM); err != nil {
		logging.With("view").Error("tile", "error", err)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM = v.tile.GeoM()
	op.GeoM.Concat(viewM)
	if err := v.outline.Draw(target, v.tile.Texture, op); err != nil {
		logging.With("view").Error("outline", "error", err)
	}

	v.hud.ui.Draw(target.Image())
}

func (v *viewer) Dispose() {
	v.outline.Dispose()
	for _, s := range v.shaders {
		s.Dispose()
	}
	v.highlight.Dispose()
	graphics.ForgetTexture(tileTexture)
}

func (v *viewer) drawRect(target *graphics.Texture, view *graphics.View, size geom.Vector2i, r geom.FloatRect, c color.Color) {
	s := geom.ToFloat(screenRect(view, size, r))
	vector.FillRect(target.Image(), s.Left, s.Top, s.Width, s.Height, withAlpha(c, 0x60), false)
	vector.StrokeRect(target.Image(), s.Left, s.Top, s.Width, s.Height, 1, c, false)
}

// screenRect maps a world rect onto target pixels.
func screenRect(view *graphics.View, size geom.Vector2i, r geom.FloatRect) geom.IntRect {
	minX, minY, maxX, maxY := r.Bounds()
	p0 := view.MapCoordsToPixel(geom.Vec2(minX, minY), size)
	p1 := view.MapCoordsToPixel(geom.Vec2(maxX, maxY), size)
	return geom.RectFromPosSize(p0, p1.Sub(p0))
}

func withAlpha(c color.Color, a uint8) color.NRGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = a
	return n
}
