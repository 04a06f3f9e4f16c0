// Package render draws a slimetrain simulation with Ebitengine.
//
// The scene graph is flat: a [Scene] holds sprite [Node] values, a single
// [Camera] that can follow a node, and the [TweenGroup] animations driving
// them. [ChainView] mirrors a [slimetrain.Sim] into the scene every frame,
// and [DrawArrow] and [HUD] draw the overlays on top.
//
//	scene := render.NewScene(screenW, screenH)
//	view := render.NewChainView(scene, render.NewSlimeSheets(64, body, 4), cfg)
//
//	// Update
//	sim.Update(controls, dt)
//	view.Sync(sim)
//	scene.Update(dt)
//
//	// Draw
//	scene.Draw(screen)
package render

import "image/color"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R) * clamp01(c.A) * 255),
		G: uint8(clamp01(c.G) * clamp01(c.A) * 255),
		B: uint8(clamp01(c.B) * clamp01(c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}
