// Package input polls touch and mouse state from ebiten and reports it in
// geom coordinates.
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// TouchSource is the polling surface Touch reads from. EbitenTouches is the
// live implementation.
type TouchSource interface {
	AppendTouchIDs(ids []ebiten.TouchID) []ebiten.TouchID
	TouchPosition(id ebiten.TouchID) (int, int)
	AppendJustPressedTouchIDs(ids []ebiten.TouchID) []ebiten.TouchID
	AppendJustReleasedTouchIDs(ids []ebiten.TouchID) []ebiten.TouchID
}

// MouseSource is the polling surface Mouse reads from.
type MouseSource interface {
	CursorPosition() (int, int)
	IsMouseButtonPressed(b ebiten.MouseButton) bool
	IsMouseButtonJustPressed(b ebiten.MouseButton) bool
	IsMouseButtonJustReleased(b ebiten.MouseButton) bool
	Wheel() (float64, float64)
}

type ebitenSource struct{}

// Ebiten reads input from the running ebiten game.
var Ebiten = ebitenSource{}

func (ebitenSource) AppendTouchIDs(ids []ebiten.TouchID) []ebiten.TouchID {
	return ebiten.AppendTouchIDs(ids)
}

func (ebitenSource) TouchPosition(id ebiten.TouchID) (int, int) {
	return ebiten.TouchPosition(id)
}

func (ebitenSource) AppendJustPressedTouchIDs(ids []ebiten.TouchID) []ebiten.TouchID {
	return inpututil.AppendJustPressedTouchIDs(ids)
}

func (ebitenSource) AppendJustReleasedTouchIDs(ids []ebiten.TouchID) []ebiten.TouchID {
	return inpututil.AppendJustReleasedTouchIDs(ids)
}

func (ebitenSource) CursorPosition() (int, int) {
	return ebiten.CursorPosition()
}

func (ebitenSource) IsMouseButtonPressed(b ebiten.MouseButton) bool {
	return ebiten.IsMouseButtonPressed(b)
}

func (ebitenSource) IsMouseButtonJustPressed(b ebiten.MouseButton) bool {
	return inpututil.IsMouseButtonJustPressed(b)
}

func (ebitenSource) IsMouseButtonJustReleased(b ebiten.MouseButton) bool {
	return inpututil.IsMouseButtonJustReleased(b)
}

func (ebitenSource) Wheel() (float64, float64) {
	return ebiten.Wheel()
}
