package audio

import "github.com/phanxgames/slimetrain"

// Cue identifies a sound effect.
type Cue uint8

const (
	CueSpawn   Cue = iota // rising blip when a slime appears
	CueJoin               // soft tick when a slime enters the chain
	CueThrow              // whoosh with a falling sweep
	CueDespawn            // descending buzz when a slime leaves the arena
	cueCount
)

func (c Cue) String() string {
	switch c {
	case CueSpawn:
		return "spawn"
	case CueJoin:
		return "join"
	case CueThrow:
		return "throw"
	case CueDespawn:
		return "despawn"
	default:
		return "unknown"
	}
}

// CueFor maps a chain lifecycle event to its cue.
func CueFor(t slimetrain.EventType) (Cue, bool) {
	switch t {
	case slimetrain.EventSpawned:
		return CueSpawn, true
	case slimetrain.EventJoined:
		return CueJoin, true
	case slimetrain.EventThrown:
		return CueThrow, true
	case slimetrain.EventDespawned:
		return CueDespawn, true
	default:
		return 0, false
	}
}
