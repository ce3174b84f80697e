package input

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/gfxbind/geom"
	"github.com/milk9111/gfxbind/graphics"
)

// Touch reports the active touches of one frame. Finger n is the n-th
// active touch ordered by touch ID, so a finger keeps its index while the
// fingers pressed before it stay down.
type Touch struct {
	src      TouchSource
	ids      []ebiten.TouchID
	pressed  []ebiten.TouchID
	released []ebiten.TouchID
}

func NewTouch(src TouchSource) *Touch {
	if src == nil {
		src = Ebiten
	}
	return &Touch{src: src}
}

// Update polls the source. Call once per tick.
func (t *Touch) Update() {
	t.ids = t.src.AppendTouchIDs(t.ids[:0])
	slices.Sort(t.ids)
	t.pressed = t.src.AppendJustPressedTouchIDs(t.pressed[:0])
	t.released = t.src.AppendJustReleasedTouchIDs(t.released[:0])
}

// Count returns the number of active touches.
func (t *Touch) Count() int {
	return len(t.ids)
}

// IsDown reports whether finger is touching.
func (t *Touch) IsDown(finger int) bool {
	return finger >= 0 && finger < len(t.ids)
}

// Position returns finger's position in window pixels.
func (t *Touch) Position(finger int) (geom.Vector2i, bool) {
	if !t.IsDown(finger) {
		return geom.Vector2i{}, false
	}
	x, y := t.src.TouchPosition(t.ids[finger])
	return geom.Vec2(x, y), true
}

// PositionIn returns finger's position mapped through view onto world
// coordinates, for a target of the given size.
func (t *Touch) PositionIn(finger int, view *graphics.View, target geom.Vector2i) (geom.Vector2f, bool) {
	p, ok := t.Position(finger)
	if !ok {
		return geom.Vector2f{}, false
	}
	return view.MapPixelToCoords(p, target), true
}

// JustPressed returns the IDs of touches that started this tick.
func (t *Touch) JustPressed() []ebiten.TouchID {
	return slices.Clone(t.pressed)
}

// JustReleased returns the IDs of touches that ended this tick.
func (t *Touch) JustReleased() []ebiten.TouchID {
	return slices.Clone(t.released)
}

// TouchesIn returns the fingers whose position lies in r.
func (t *Touch) TouchesIn(r geom.IntRect) []int {
	var fingers []int
	for i := range t.ids {
		if p, _ := t.Position(i); r.ContainsPoint(p) {
			fingers = append(fingers, i)
		}
	}
	return fingers
}
