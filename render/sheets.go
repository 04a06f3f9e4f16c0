package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/slimetrain"
)

const facingCount = int(slimetrain.FacingSide) + 1

// SheetSet holds a slime's animation frames for every facing. Every frame
// is a size x size image.
type SheetSet struct {
	size   int
	frames [facingCount][]*ebiten.Image
}

// NewSlimeSheets draws frameCount squash-and-stretch frames per facing in
// the given body color.
func NewSlimeSheets(size int, body color.RGBA, frameCount int) *SheetSet {
	if size <= 0 || frameCount <= 0 {
		panic("render: slime sheets need a positive size and frame count")
	}
	s := &SheetSet{size: size}
	for f := range facingCount {
		s.frames[f] = make([]*ebiten.Image, frameCount)
		for i := range frameCount {
			img := ebiten.NewImage(size, size)
			drawSlime(img, float32(size), slimetrain.Facing(f), squash(i, frameCount), body)
			s.frames[f][i] = img
		}
	}
	return s
}

// Frames returns the frames for a facing. A nil SheetSet has no frames.
func (s *SheetSet) Frames(f slimetrain.Facing) []*ebiten.Image {
	if s == nil || int(f) >= facingCount {
		return nil
	}
	return s.frames[f]
}

// Size returns the frame edge length in pixels, or 0 for a nil SheetSet.
func (s *SheetSet) Size() int {
	if s == nil {
		return 0
	}
	return s.size
}

// squash returns the vertical stretch of frame i in a looping bounce,
// between 0.9 and 1.1.
func squash(i, n int) float64 {
	return 1 + 0.1*math.Sin(2*math.Pi*float64(i)/float64(n))
}

func drawSlime(img *ebiten.Image, size float32, facing slimetrain.Facing, stretch float64, body color.RGBA) {
	r := size * 0.4
	h := r * float32(stretch)
	cx := size / 2
	base := size * 0.9
	cy := base - h

	shadow := color.RGBA{0, 0, 0, 60}
	vector.DrawFilledRect(img, cx-r, base-size*0.04, 2*r, size*0.06, shadow, true)

	// Dome on top of a flat skirt.
	vector.DrawFilledCircle(img, cx, cy+h*0.2, r, body, true)
	vector.DrawFilledRect(img, cx-r, cy+h*0.2, 2*r, base-cy-h*0.2, body, true)

	shine := color.RGBA{255, 255, 255, 140}
	eye := color.RGBA{30, 30, 40, 255}
	eyeR := size * 0.05
	eyeY := cy + h*0.35

	switch facing {
	case slimetrain.FacingDown:
		vector.DrawFilledCircle(img, cx-r*0.35, eyeY, eyeR, eye, true)
		vector.DrawFilledCircle(img, cx+r*0.35, eyeY, eyeR, eye, true)
		vector.DrawFilledCircle(img, cx-r*0.45, cy-h*0.25, eyeR*1.2, shine, true)
	case slimetrain.FacingSide:
		vector.DrawFilledCircle(img, cx+r*0.55, eyeY, eyeR, eye, true)
		vector.DrawFilledCircle(img, cx-r*0.1, cy-h*0.25, eyeR*1.2, shine, true)
	case slimetrain.FacingUp:
		vector.DrawFilledCircle(img, cx+r*0.3, cy-h*0.1, eyeR*1.6, shine, true)
	}
}
