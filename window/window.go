// Package window runs a Scene inside the ebiten game loop.
package window

import (
	"context"
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/gfxbind/config"
	"github.com/milk9111/gfxbind/geom"
	"github.com/milk9111/gfxbind/graphics"
	"github.com/milk9111/gfxbind/input"
	"github.com/milk9111/gfxbind/logging"
)

// Scene is the application driven by a Window.
type Scene interface {
	Update(f *Frame) error
	Draw(target *graphics.Texture, f *Frame)
}

// Frame is the per-tick state handed to a Scene.
type Frame struct {
	Tick  uint64
	Size  geom.Vector2i
	View  *graphics.View
	Touch *input.Touch
	Mouse *input.Mouse
}

type Window struct {
	cfg     config.Window
	watcher *graphics.ShaderWatcher
	touch   input.TouchSource
	mouse   input.MouseSource
}

type Option func(*Window)

// WithShaderWatcher polls w for shader reloads at the start of every tick.
func WithShaderWatcher(w *graphics.ShaderWatcher) Option {
	return func(win *Window) { win.watcher = w }
}

// WithInput replaces the ebiten input sources.
func WithInput(touch input.TouchSource, mouse input.MouseSource) Option {
	return func(win *Window) {
		win.touch = touch
		win.mouse = mouse
	}
}

func New(cfg config.Window, opts ...Option) *Window {
	w := &Window{cfg: cfg, touch: input.Ebiten, mouse: input.Ebiten}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run opens the window and blocks until the scene returns an error, the
// window is closed or ctx is cancelled.
func (w *Window) Run(ctx context.Context, scene Scene) error {
	ebiten.SetWindowTitle(w.cfg.Title)
	ebiten.SetWindowSize(w.cfg.Width, w.cfg.Height)
	if w.cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetVsyncEnabled(w.cfg.VSync)
	ebiten.SetTPS(w.cfg.TPS)

	logger := logging.With("window")
	logger.Info("starting", "title", w.cfg.Title, "size", geom.Vec2(w.cfg.Width, w.cfg.Height))
	err := ebiten.RunGame(w.loop(ctx, scene))
	logger.Info("stopped", "error", err)
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: run: %w", err)
	}
	return nil
}

func (w *Window) loop(ctx context.Context, scene Scene) *loop {
	size := geom.Vec2(w.cfg.LogicalWidth, w.cfg.LogicalHeight)
	view := graphics.NewView(geom.RectFromPosSize(geom.Vector2f{}, geom.ConvertVec[float32](size)))
	if !w.cfg.Viewport.IsZero() {
		view.Viewport = w.cfg.Viewport
	}
	return &loop{
		ctx:     ctx,
		scene:   scene,
		watcher: w.watcher,
		frame: &Frame{
			Size:  size,
			View:  view,
			Touch: input.NewTouch(w.touch),
			Mouse: input.NewMouse(w.mouse),
		},
	}
}

// loop adapts a Scene to ebiten.Game.
type loop struct {
	ctx     context.Context
	scene   Scene
	watcher *graphics.ShaderWatcher
	frame   *Frame
}

func (l *loop) Update() error {
	if l.ctx.Err() != nil {
		return ebiten.Termination
	}
	if l.watcher != nil {
		l.watcher.Poll()
	}
	l.frame.Tick++
	l.frame.Touch.Update()
	l.frame.Mouse.Update()
	return l.scene.Update(l.frame)
}

func (l *loop) Draw(screen *ebiten.Image) {
	l.scene.Draw(graphics.WrapImage(screen), l.frame)
}

func (l *loop) Layout(outsideWidth, outsideHeight int) (int, int) {
	return l.frame.Size.X, l.frame.Size.Y
}
