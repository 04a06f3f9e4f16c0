package render

import "github.com/hajimehoshi/ebiten/v2"

// nodeIDCounter is a plain counter (no atomic, rendering is single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is a sprite in the scene. A node shows one image out of Frames at a
// time; an optional Animator cycles through them.
type Node struct {
	// Identity
	ID   uint32
	Name string

	// Transform
	X, Y     float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
	// PivotX and PivotY are the transform origin as a fraction of the frame
	// size. (0.5, 0.5) is the center.
	PivotX, PivotY float64
	FlipX          bool

	// Appearance
	Alpha       float64
	Color       Color
	Visible     bool
	RenderLayer uint8

	Frames []*ebiten.Image
	Frame  int
	Anim   *Animator

	// OnUpdate is called once per Scene.Update, before animators and tweens.
	OnUpdate func(dt float64)

	disposed bool
}

// NewSprite creates a visible node centered on its pivot.
// frames may be nil; such a node is updated but never drawn.
func NewSprite(name string, frames []*ebiten.Image) *Node {
	return &Node{
		ID:      nextNodeID(),
		Name:    name,
		ScaleX:  1,
		ScaleY:  1,
		PivotX:  0.5,
		PivotY:  0.5,
		Alpha:   1,
		Color:   ColorWhite,
		Visible: true,
		Frames:  frames,
	}
}

// Image returns the frame currently shown, or nil when the node has none.
func (n *Node) Image() *ebiten.Image {
	if len(n.Frames) == 0 {
		return nil
	}
	return n.Frames[n.Frame%len(n.Frames)]
}

// SetFrames swaps the frame list while keeping the animation phase.
func (n *Node) SetFrames(frames []*ebiten.Image) {
	n.Frames = frames
	if len(frames) > 0 {
		n.Frame %= len(frames)
	}
}

// size returns the pixel size of the current frame.
func (n *Node) size() (w, h float64) {
	img := n.Image()
	if img == nil {
		return 0, 0
	}
	b := img.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

// Dispose marks the node for removal. The scene drops it on its next Update
// and tweens targeting it stop.
func (n *Node) Dispose() {
	n.disposed = true
	n.OnUpdate = nil
}

// IsDisposed reports whether Dispose has been called.
func (n *Node) IsDisposed() bool {
	return n.disposed
}
