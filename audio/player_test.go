package audio

import (
	"testing"

	"github.com/phanxgames/slimetrain"
)

// newTestPlayer returns a player that accepts cues without opening the
// speaker.
func newTestPlayer() *Player {
	p := NewPlayer(DefaultConfig())
	p.initialized = true
	return p
}

func TestPlayerIgnoresCuesBeforeInit(t *testing.T) {
	p := NewPlayer(DefaultConfig())
	p.Play(CueSpawn)
	if p.Active() != 0 {
		t.Errorf("Active = %d, want 0 before Init", p.Active())
	}
}

func TestPlayerDisabledInitIsNoop(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enabled = false
	p := NewPlayer(cfg)
	if err := p.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	p.Play(CueThrow)
	if p.Active() != 0 {
		t.Errorf("Active = %d, want 0 when disabled", p.Active())
	}
}

func TestPlayerPlay(t *testing.T) {
	p := newTestPlayer()
	p.Play(CueSpawn)
	p.Play(CueThrow)
	p.Play(cueCount)
	if p.Active() != 2 {
		t.Errorf("Active = %d, want 2", p.Active())
	}
}

func TestPlayerHandleChainEventOncePerTick(t *testing.T) {
	p := newTestPlayer()
	for _, e := range []slimetrain.ChainEvent{
		{Type: slimetrain.EventJoined, Member: 2, Tick: 0},
		{Type: slimetrain.EventJoined, Member: 3, Tick: 0},
		{Type: slimetrain.EventThrown, Member: 2, Tick: 0},
		{Type: slimetrain.EventJoined, Member: 4, Tick: 1},
		{Type: slimetrain.EventType(99), Tick: 1},
	} {
		p.HandleChainEvent(nil, e)
	}
	if p.Active() != 3 {
		t.Errorf("Active = %d, want 3 (join, throw, join)", p.Active())
	}
}
