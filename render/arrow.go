package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/slimetrain"
)

// ArrowColor is the default aim arrow color.
var ArrowColor = color.RGBA{R: 250, G: 230, B: 120, A: 230}

const (
	arrowHeadAngle = 5 * math.Pi / 6
	arrowHeadMax   = 18.0
	arrowWidth     = 4.0
)

// arrowSegments returns the shaft and the two head strokes of an arrow in
// world space, each as a start/end pair.
func arrowSegments(pose slimetrain.ArrowPose) [3][2]slimetrain.Vec2 {
	tip := pose.Tip()
	head := math.Min(arrowHeadMax, pose.Length/3)
	left := tip.Add(slimetrain.FromAngle(pose.Angle + arrowHeadAngle).Scale(head))
	right := tip.Add(slimetrain.FromAngle(pose.Angle - arrowHeadAngle).Scale(head))
	return [3][2]slimetrain.Vec2{
		{pose.Base, tip},
		{tip, left},
		{tip, right},
	}
}

// DrawArrow strokes the aim arrow onto screen through the camera.
func DrawArrow(screen *ebiten.Image, cam *Camera, pose slimetrain.ArrowPose, clr color.Color) {
	width := float32(arrowWidth * cam.Zoom)
	for _, seg := range arrowSegments(pose) {
		x0, y0 := cam.WorldToScreen(seg[0].X, seg[0].Y)
		x1, y1 := cam.WorldToScreen(seg[1].X, seg[1].Y)
		vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), width, clr, true)
	}
}
