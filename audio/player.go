// Package audio plays synthesized sound cues for chain lifecycle events
// through beep.
package audio

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/yohamta/donburi"

	"github.com/phanxgames/slimetrain"
)

// Player mixes cues into a single speaker stream. A cue plays at most once
// per chain tick, so a burst of joins is heard as one tick sound.
type Player struct {
	mu          sync.Mutex
	cfg         Config
	mixer       *beep.Mixer
	initialized bool

	lastTick [cueCount]uint64
	played   [cueCount]bool
}

// NewPlayer creates a player. Call Init before playing anything.
func NewPlayer(cfg Config) *Player {
	return &Player{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Init opens the speaker and starts the mixer. It is a no-op when audio is
// disabled or already initialized.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized || !p.cfg.Enabled {
		return nil
	}
	rate := beep.SampleRate(p.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(speakerBuffer)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close stops all sounds and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}

// Play starts a cue. Ignored before Init.
func (p *Player) Play(cue Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.play(cue)
}

func (p *Player) play(cue Cue) {
	if !p.initialized {
		return
	}
	s := NewCue(cue, p.cfg)
	if s == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Active returns the number of cues still sounding.
func (p *Player) Active() int {
	speaker.Lock()
	defer speaker.Unlock()
	return p.mixer.Len()
}

// HandleChainEvent plays the cue for a lifecycle event. Its signature
// matches a donburi event subscriber, so it can be passed to
// ecs.ChainEventType.Subscribe.
func (p *Player) HandleChainEvent(_ donburi.World, e slimetrain.ChainEvent) {
	cue, ok := CueFor(e.Type)
	if !ok {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.played[cue] && p.lastTick[cue] == e.Tick {
		return
	}
	p.played[cue] = true
	p.lastTick[cue] = e.Tick
	p.play(cue)
}
