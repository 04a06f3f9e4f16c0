package render

import (
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
)

// Scene owns the nodes, the camera, and the running tweens.
type Scene struct {
	// ClearColor fills the screen before nodes are drawn. A zero alpha skips
	// the fill.
	ClearColor Color
	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string

	nodes  []*Node
	camera *Camera
	tweens []*TweenGroup

	sortBuf []*Node

	screenshotQueue []string
	shots           int

	debug    bool
	debugOut io.Writer
}

// NewScene creates an empty scene whose camera covers a width x height
// screen.
func NewScene(width, height int) *Scene {
	return &Scene{
		ScreenshotDir: "screenshots",
		camera:        newCamera(Rect{Width: float64(width), Height: float64(height)}),
		debugOut:      os.Stderr,
	}
}

// Camera returns the scene camera.
func (s *Scene) Camera() *Camera {
	return s.camera
}

// Add appends a node. Panics if the node has already been disposed.
func (s *Scene) Add(n *Node) {
	if n.IsDisposed() {
		panic("render: cannot add disposed node " + n.Name)
	}
	s.nodes = append(s.nodes, n)
}

// Len returns the number of live nodes.
func (s *Scene) Len() int {
	return len(s.nodes)
}

// AddTween runs g from the next Update until it is done.
func (s *Scene) AddTween(g *TweenGroup) {
	s.tweens = append(s.tweens, g)
}

// Tweens returns the number of tweens still running.
func (s *Scene) Tweens() int {
	return len(s.tweens)
}

// SetDebugMode enables per-frame draw stats on the debug output.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// Update drops disposed nodes, then runs node callbacks, animators, tweens,
// and the camera for dt seconds.
func (s *Scene) Update(dt float64) {
	s.nodes = slices.DeleteFunc(s.nodes, (*Node).IsDisposed)

	for _, n := range s.nodes {
		if n.OnUpdate != nil {
			n.OnUpdate(dt)
		}
		if n.Anim != nil {
			n.Anim.Update(n, dt)
		}
	}

	for _, g := range s.tweens {
		g.Update(float32(dt))
	}
	s.tweens = slices.DeleteFunc(s.tweens, func(g *TweenGroup) bool { return g.Done })

	s.camera.update(float32(dt))
}

// drawOrder returns visible nodes sorted by render layer, then by Y so that
// sprites lower on screen overlap the ones behind them. Ties keep insertion
// order.
func (s *Scene) drawOrder() []*Node {
	s.sortBuf = s.sortBuf[:0]
	for _, n := range s.nodes {
		if n.Visible && !n.IsDisposed() {
			s.sortBuf = append(s.sortBuf, n)
		}
	}
	slices.SortStableFunc(s.sortBuf, func(a, b *Node) int {
		if a.RenderLayer != b.RenderLayer {
			return int(a.RenderLayer) - int(b.RenderLayer)
		}
		switch {
		case a.Y < b.Y:
			return -1
		case a.Y > b.Y:
			return 1
		}
		return 0
	})
	return s.sortBuf
}

// Draw renders the scene through the camera onto screen.
func (s *Scene) Draw(screen *ebiten.Image) {
	if s.ClearColor.A > 0 {
		screen.Fill(s.ClearColor.toRGBA())
	}

	cam := s.camera
	view := cam.computeViewMatrix()
	bounds := cam.VisibleBounds()

	var drawn, culled int
	for _, n := range s.drawOrder() {
		img := n.Image()
		alpha := n.Color.A * n.Alpha
		if img == nil || alpha <= 0 {
			continue
		}
		world := nodeTransform(n)
		if cam.CullEnabled {
			w, h := n.size()
			if !worldAABB(world, w, h).Intersects(bounds) {
				culled++
				continue
			}
		}

		m := multiplyAffine(view, world)
		var op ebiten.DrawImageOptions
		op.GeoM.SetElement(0, 0, m[0])
		op.GeoM.SetElement(1, 0, m[1])
		op.GeoM.SetElement(0, 1, m[2])
		op.GeoM.SetElement(1, 1, m[3])
		op.GeoM.SetElement(0, 2, m[4])
		op.GeoM.SetElement(1, 2, m[5])
		op.ColorScale.Scale(
			float32(n.Color.R*alpha),
			float32(n.Color.G*alpha),
			float32(n.Color.B*alpha),
			float32(alpha),
		)
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(img, &op)
		drawn++
	}

	if s.debug && s.debugOut != nil {
		_, _ = fmt.Fprintf(s.debugOut, "[render] nodes: %d | drawn: %d | culled: %d | tweens: %d\n",
			len(s.nodes), drawn, culled, len(s.tweens))
	}
	s.flushScreenshots(screen)
}
