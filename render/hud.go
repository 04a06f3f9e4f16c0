package render

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/phanxgames/slimetrain"
)

// HUD prints frame rate and chain stats in the top-left corner. The text is
// rebuilt every RefreshInterval seconds rather than every frame.
type HUD struct {
	RefreshInterval float64
	ShowFPS         bool

	text    string
	elapsed float64
}

// NewHUD creates a HUD refreshing twice a second.
func NewHUD(showFPS bool) *HUD {
	return &HUD{RefreshInterval: 0.5, ShowFPS: showFPS}
}

// Update refreshes the text when the interval has elapsed. The first call
// always refreshes.
func (h *HUD) Update(sim *slimetrain.Sim, dt float64) {
	h.elapsed += dt
	if h.text != "" && h.elapsed < h.RefreshInterval {
		return
	}
	h.elapsed = 0
	fps := -1.0
	if h.ShowFPS {
		fps = ebiten.ActualFPS()
	}
	h.text = hudText(sim, fps)
}

// Text returns the last rendered HUD text.
func (h *HUD) Text() string {
	return h.text
}

// Draw prints the text onto screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, h.text)
}

// hudText formats the stats. A negative fps omits the FPS line.
func hudText(sim *slimetrain.Sim, fps float64) string {
	chain := sim.Chain()
	var thrown int
	for m := range chain.Members() {
		if m.Thrown() {
			thrown++
		}
	}

	var b strings.Builder
	if fps >= 0 {
		fmt.Fprintf(&b, "FPS: %.1f\n", fps)
	}
	fmt.Fprintf(&b, "following: %d\n", max(chain.Order().Len()-1, 0))
	fmt.Fprintf(&b, "thrown: %d\n", thrown)
	if aim := sim.Aimer(); aim.Charging() {
		fmt.Fprintf(&b, "charge: %.0f\n", aim.Charge())
	}
	b.WriteString("WASD move | I spawn | hold mouse to throw")
	return b.String()
}
