// Package input translates Ebitengine keyboard and mouse state into
// slimetrain.Controls.
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/slimetrain"
)

// Bindings maps keys and mouse buttons to game actions. Any key in a list
// triggers the action.
type Bindings struct {
	Up, Down, Left, Right []ebiten.Key
	Spawn                 []ebiten.Key
	Aim                   ebiten.MouseButton
}

// DefaultBindings returns WASD and arrow-key movement, I to spawn, and the
// left mouse button to aim and throw.
func DefaultBindings() Bindings {
	return Bindings{
		Up:    []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp},
		Down:  []ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown},
		Left:  []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft},
		Right: []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight},
		Spawn: []ebiten.Key{ebiten.KeyI},
		Aim:   ebiten.MouseButtonLeft,
	}
}

// ScreenToWorlder converts a screen position into world space. render.Camera
// implements it.
type ScreenToWorlder interface {
	ScreenToWorld(sx, sy float64) (wx, wy float64)
}

// state is the slice of input the poller reads. ebitenState is the live
// implementation.
type state interface {
	KeyPressed(ebiten.Key) bool
	KeyJustPressed(ebiten.Key) bool
	MousePressed(ebiten.MouseButton) bool
	Cursor() (x, y int)
}

type ebitenState struct{}

func (ebitenState) KeyPressed(k ebiten.Key) bool           { return ebiten.IsKeyPressed(k) }
func (ebitenState) KeyJustPressed(k ebiten.Key) bool       { return inpututil.IsKeyJustPressed(k) }
func (ebitenState) MousePressed(b ebiten.MouseButton) bool { return ebiten.IsMouseButtonPressed(b) }
func (ebitenState) Cursor() (int, int)                     { return ebiten.CursorPosition() }

// Poller reads input once per frame. The cursor is converted to world
// space through the camera; with a nil camera it stays in screen space.
type Poller struct {
	Bindings Bindings

	cam   ScreenToWorlder
	state state
}

// NewPoller creates a poller reading live Ebitengine input.
func NewPoller(b Bindings, cam ScreenToWorlder) *Poller {
	return &Poller{Bindings: b, cam: cam, state: ebitenState{}}
}

// Poll returns this frame's controls. Call it from ebiten.Game.Update.
func (p *Poller) Poll() slimetrain.Controls {
	b := &p.Bindings
	s := p.state

	move := slimetrain.Vec2{
		X: axis(anyPressed(s.KeyPressed, b.Left), anyPressed(s.KeyPressed, b.Right)),
		Y: axis(anyPressed(s.KeyPressed, b.Up), anyPressed(s.KeyPressed, b.Down)),
	}

	cx, cy := s.Cursor()
	cursor := slimetrain.Vec2{X: float64(cx), Y: float64(cy)}
	if p.cam != nil {
		cursor.X, cursor.Y = p.cam.ScreenToWorld(cursor.X, cursor.Y)
	}

	return slimetrain.Controls{
		Move:   move,
		Spawn:  anyPressed(s.KeyJustPressed, b.Spawn),
		Aim:    s.MousePressed(b.Aim),
		Cursor: cursor,
	}
}

// axis folds two opposing buttons into -1, 0, or 1. Both held cancel out.
func axis(neg, pos bool) float64 {
	var v float64
	if neg {
		v--
	}
	if pos {
		v++
	}
	return v
}

func anyPressed(pressed func(ebiten.Key) bool, keys []ebiten.Key) bool {
	for _, k := range keys {
		if pressed(k) {
			return true
		}
	}
	return false
}
