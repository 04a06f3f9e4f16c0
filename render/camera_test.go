package render

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func TestCameraDefaults(t *testing.T) {
	cam := newCamera(Rect{Width: 800, Height: 600})
	if cam.Zoom != 1.0 {
		t.Errorf("Zoom = %f, want 1.0", cam.Zoom)
	}
	if !cam.CullEnabled {
		t.Error("CullEnabled = false, want true")
	}
}

func TestCameraWorldToScreen(t *testing.T) {
	tests := []struct {
		name       string
		x, y, zoom float64
		wx, wy     float64
		sx, sy     float64
	}{
		{"origin maps to center", 0, 0, 1, 0, 0, 400, 300},
		{"camera position maps to center", 100, 50, 1, 100, 50, 400, 300},
		{"offset", 100, 50, 1, 110, 40, 410, 290},
		{"zoom scales distance", 0, 0, 2, 10, 5, 420, 310},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cam := newCamera(Rect{Width: 800, Height: 600})
			cam.X, cam.Y, cam.Zoom = tt.x, tt.y, tt.zoom
			cam.MarkDirty()

			sx, sy := cam.WorldToScreen(tt.wx, tt.wy)
			if !approxEqual(sx, tt.sx, epsilon) || !approxEqual(sy, tt.sy, epsilon) {
				t.Errorf("WorldToScreen = (%f,%f), want (%f,%f)", sx, sy, tt.sx, tt.sy)
			}
			wx, wy := cam.ScreenToWorld(sx, sy)
			if !approxEqual(wx, tt.wx, 1e-9) || !approxEqual(wy, tt.wy, 1e-9) {
				t.Errorf("ScreenToWorld = (%f,%f), want (%f,%f)", wx, wy, tt.wx, tt.wy)
			}
		})
	}
}

func TestCameraVisibleBounds(t *testing.T) {
	cam := newCamera(Rect{Width: 800, Height: 600})
	cam.Zoom = 2
	cam.MarkDirty()
	want := Rect{X: -200, Y: -150, Width: 400, Height: 300}
	if got := cam.VisibleBounds(); got != want {
		t.Errorf("VisibleBounds = %+v, want %+v", got, want)
	}
}

func TestCameraFollowLerp(t *testing.T) {
	cam := newCamera(Rect{Width: 800, Height: 600})
	target := NewSprite("target", nil)
	target.X, target.Y = 100, -40
	cam.Follow(target, 0.5)

	cam.update(1.0 / 60)
	if cam.X != 50 || cam.Y != -20 {
		t.Errorf("after one update = (%f,%f), want (50,-20)", cam.X, cam.Y)
	}
	sx, sy := cam.WorldToScreen(50, -20)
	if !approxEqual(sx, 400, epsilon) || !approxEqual(sy, 300, epsilon) {
		t.Error("view matrix not refreshed after follow")
	}

	target.Dispose()
	cam.update(1.0 / 60)
	if cam.X != 50 {
		t.Errorf("camera followed a disposed node: X = %f", cam.X)
	}
}

func TestCameraScrollTo(t *testing.T) {
	cam := newCamera(Rect{Width: 800, Height: 600})
	target := NewSprite("target", nil)
	cam.Follow(target, 1)
	cam.ScrollTo(100, 200, 1.0, ease.Linear)

	cam.update(0.5)
	if !approxEqual(cam.X, 50, 0.01) || !approxEqual(cam.Y, 100, 0.01) {
		t.Errorf("mid scroll = (%f,%f), want (50,100)", cam.X, cam.Y)
	}
	if !cam.Scrolling() {
		t.Error("Scrolling = false mid scroll")
	}

	cam.update(0.5)
	if !approxEqual(cam.X, 100, 0.01) || !approxEqual(cam.Y, 200, 0.01) {
		t.Errorf("end of scroll = (%f,%f), want (100,200)", cam.X, cam.Y)
	}
	if cam.Scrolling() {
		t.Error("Scrolling = true after the tween finished")
	}

	// Follow resumes once the scroll is over.
	cam.update(0.5)
	if cam.X != 0 || cam.Y != 0 {
		t.Errorf("follow after scroll = (%f,%f), want (0,0)", cam.X, cam.Y)
	}
}
