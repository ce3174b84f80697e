package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/gfxbind/geom"
	"github.com/milk9111/gfxbind/graphics"
)

// Mouse reports the cursor and button state of one frame.
type Mouse struct {
	src      MouseSource
	pos      geom.Vector2i
	wheel    geom.Vector2f
	down     map[ebiten.MouseButton]bool
	pressed  map[ebiten.MouseButton]bool
	released map[ebiten.MouseButton]bool
}

var mouseButtons = []ebiten.MouseButton{
	ebiten.MouseButtonLeft,
	ebiten.MouseButtonRight,
	ebiten.MouseButtonMiddle,
}

func NewMouse(src MouseSource) *Mouse {
	if src == nil {
		src = Ebiten
	}
	return &Mouse{
		src:      src,
		down:     map[ebiten.MouseButton]bool{},
		pressed:  map[ebiten.MouseButton]bool{},
		released: map[ebiten.MouseButton]bool{},
	}
}

// Update polls the source. Call once per tick.
func (m *Mouse) Update() {
	x, y := m.src.CursorPosition()
	m.pos = geom.Vec2(x, y)
	wx, wy := m.src.Wheel()
	m.wheel = geom.Vec2(float32(wx), float32(wy))
	for _, b := range mouseButtons {
		m.down[b] = m.src.IsMouseButtonPressed(b)
		m.pressed[b] = m.src.IsMouseButtonJustPressed(b)
		m.released[b] = m.src.IsMouseButtonJustReleased(b)
	}
}

func (m *Mouse) Position() geom.Vector2i {
	return m.pos
}

// PositionIn maps the cursor through view onto world coordinates.
func (m *Mouse) PositionIn(view *graphics.View, target geom.Vector2i) geom.Vector2f {
	return view.MapPixelToCoords(m.pos, target)
}

func (m *Mouse) Wheel() geom.Vector2f {
	return m.wheel
}

func (m *Mouse) IsDown(b ebiten.MouseButton) bool {
	return m.down[b]
}

func (m *Mouse) JustPressed(b ebiten.MouseButton) bool {
	return m.pressed[b]
}

func (m *Mouse) JustReleased(b ebiten.MouseButton) bool {
	return m.released[b]
}

// Over reports whether the cursor lies in r.
func (m *Mouse) Over(r geom.IntRect) bool {
	return r.ContainsPoint(m.pos)
}
