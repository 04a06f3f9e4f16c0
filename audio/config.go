package audio

import "time"

// Cue timings.
const (
	spawnNoteDuration = 60 * time.Millisecond
	joinDuration      = 80 * time.Millisecond
	throwDuration     = 220 * time.Millisecond
	despawnDuration   = 250 * time.Millisecond

	cueAttack  = 5 * time.Millisecond
	cueRelease = 40 * time.Millisecond

	speakerBuffer = 100 * time.Millisecond
)

// Config controls audio output.
type Config struct {
	Enabled      bool
	MasterVolume float64 // 0..1
	SampleRate   int
	CueVolumes   map[Cue]float64
}

// DefaultConfig returns enabled audio at half volume, 44.1 kHz.
func DefaultConfig() Config {
	return Config{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   44100,
		CueVolumes: map[Cue]float64{
			CueSpawn:   0.6,
			CueJoin:    0.3,
			CueThrow:   0.8,
			CueDespawn: 0.4,
		},
	}
}

// volume returns the effective gain for a cue.
func (c Config) volume(cue Cue) float64 {
	v, ok := c.CueVolumes[cue]
	if !ok {
		v = 1
	}
	return v * c.MasterVolume
}
