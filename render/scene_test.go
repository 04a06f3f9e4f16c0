package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestSceneDrawOrder(t *testing.T) {
	s := NewScene(800, 600)
	low := NewSprite("low", nil)
	low.Y = 100
	high := NewSprite("high", nil)
	high.Y = -50
	top := NewSprite("top", nil)
	top.RenderLayer = 1
	top.Y = -500
	hidden := NewSprite("hidden", nil)
	hidden.Visible = false
	tie := NewSprite("tie", nil)
	tie.Y = 100

	for _, n := range []*Node{top, low, hidden, high, tie} {
		s.Add(n)
	}

	var got []string
	for _, n := range s.drawOrder() {
		got = append(got, n.Name)
	}
	want := "high,low,tie,top"
	if strings.Join(got, ",") != want {
		t.Errorf("draw order = %v, want %s", got, want)
	}
}

func TestSceneUpdate(t *testing.T) {
	s := NewScene(800, 600)
	var calls int
	a := NewSprite("a", nil)
	a.OnUpdate = func(dt float64) { calls++ }
	b := NewSprite("b", nil)
	s.Add(a)
	s.Add(b)
	s.AddTween(TweenPosition(b, 10, 0, 0.5, ease.Linear))

	s.Update(0.25)
	if calls != 1 {
		t.Errorf("OnUpdate calls = %d, want 1", calls)
	}
	if s.Tweens() != 1 {
		t.Errorf("Tweens = %d, want 1 mid animation", s.Tweens())
	}

	s.Update(0.25)
	if s.Tweens() != 0 {
		t.Errorf("Tweens = %d, want finished tween dropped", s.Tweens())
	}

	a.Dispose()
	s.Update(0.25)
	if s.Len() != 1 {
		t.Errorf("Len = %d, want disposed node dropped", s.Len())
	}
	if calls != 2 {
		t.Errorf("OnUpdate calls = %d, want no call after Dispose", calls)
	}
}

func TestSceneAddDisposedPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	n := NewSprite("gone", nil)
	n.Dispose()
	NewScene(10, 10).Add(n)
}

func TestSceneUpdatesCamera(t *testing.T) {
	s := NewScene(800, 600)
	n := NewSprite("leader", nil)
	n.X = 40
	s.Add(n)
	s.Camera().Follow(n, 1)
	s.Update(1.0 / 60)
	if s.Camera().X != 40 {
		t.Errorf("camera X = %f, want 40", s.Camera().X)
	}
}

func TestSceneDebugOutput(t *testing.T) {
	s := NewScene(800, 600)
	var buf bytes.Buffer
	s.debugOut = &buf
	s.SetDebugMode(true)
	s.Add(NewSprite("a", nil))
	s.Draw(nil)
	if !strings.Contains(buf.String(), "[render] nodes: 1 | drawn: 0") {
		t.Errorf("debug output = %q", buf.String())
	}
}
