package render

import (
	"strings"
	"testing"

	"github.com/phanxgames/slimetrain"
)

func TestHUDText(t *testing.T) {
	sim := slimetrain.NewSim(slimetrain.DefaultConfig(), slimetrain.Vec2{})

	got := hudText(sim, -1)
	if strings.Contains(got, "FPS") {
		t.Errorf("FPS shown with negative fps: %q", got)
	}
	if !strings.Contains(got, "following: 0") {
		t.Errorf("hudText = %q, want following: 0 before the first tick", got)
	}

	sim.Update(slimetrain.Controls{Spawn: true}, testDT)
	sim.Update(slimetrain.Controls{Aim: true}, testDT)
	got = hudText(sim, 60)
	for _, want := range []string{"FPS: 60.0", "following: 1", "thrown: 0", "charge: 300"} {
		if !strings.Contains(got, want) {
			t.Errorf("hudText = %q, want it to contain %q", got, want)
		}
	}
}

func TestHUDRefreshInterval(t *testing.T) {
	sim := slimetrain.NewSim(slimetrain.DefaultConfig(), slimetrain.Vec2{})
	h := NewHUD(false)
	h.Update(sim, 0)
	first := h.Text()
	if first == "" {
		t.Fatal("first Update should render text")
	}

	sim.Update(slimetrain.Controls{Spawn: true}, testDT)
	h.Update(sim, 0.1)
	if h.Text() != first {
		t.Error("text refreshed before the interval elapsed")
	}
	h.Update(sim, 0.5)
	if !strings.Contains(h.Text(), "following: 1") {
		t.Errorf("text = %q, want refreshed stats", h.Text())
	}
}
