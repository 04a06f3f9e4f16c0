package slimetrain

import (
	"encoding/json"
	"fmt"
)

// Config holds the tunables for the chain engine and the collaborators that
// feed it. Durations are in seconds, distances in world pixels, and speeds in
// pixels per second.
type Config struct {
	// FollowWeight is the fraction of the remaining distance a follower covers
	// each tick. Must be in (0, 1). Lower is smoother but slower.
	FollowWeight float64 `json:"followWeight"`
	// Padding is the distance below which a follower stops adjusting.
	Padding float64 `json:"padding"`
	// LedgerInterval is the time between position ledger refreshes. Zero
	// refreshes every tick, which makes the follow lag exactly one frame.
	LedgerInterval float64 `json:"ledgerInterval"`
	// JoinDelay is how long a freshly spawned member waits at the leader's
	// position before it joins the follow order.
	JoinDelay float64 `json:"joinDelay"`

	LeaderSpeed float64 `json:"leaderSpeed"`

	ThrowMinSpeed   float64 `json:"throwMinSpeed"`
	ThrowMaxSpeed   float64 `json:"throwMaxSpeed"`
	ThrowChargeRate float64 `json:"throwChargeRate"` // speed gained per second of holding
	// DespawnDistance removes thrown members once they are this far from the
	// leader. Zero keeps them forever.
	DespawnDistance float64 `json:"despawnDistance"`

	ArrowDistance   float64 `json:"arrowDistance"`
	ArrowBaseLength float64 `json:"arrowBaseLength"`
	ArrowStretch    float64 `json:"arrowStretch"` // arrow length gained per unit of throw speed

	LeaderSize   float64 `json:"leaderSize"`
	SlimeScale   float64 `json:"slimeScale"` // slime size relative to the leader
	AnimationFPS float64 `json:"animationFPS"`
}

// DefaultConfig returns the tuning the game ships with.
func DefaultConfig() Config {
	return Config{
		FollowWeight:    0.04,
		Padding:         20,
		LedgerInterval:  0,
		JoinDelay:       0,
		LeaderSpeed:     300,
		ThrowMinSpeed:   300,
		ThrowMaxSpeed:   10000,
		ThrowChargeRate: 5000,
		DespawnDistance: 4000,
		ArrowDistance:   100,
		ArrowBaseLength: 40,
		ArrowStretch:    0.01,
		LeaderSize:      100,
		SlimeScale:      0.5,
		AnimationFPS:    12,
	}
}

// LoadConfig parses JSON on top of DefaultConfig, so a file only needs the
// fields it overrides. The result is validated.
func LoadConfig(jsonData []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := json.Unmarshal(jsonData, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Validate reports the first out-of-range field.
func (c Config) Validate() error {
	switch {
	case c.FollowWeight <= 0 || c.FollowWeight >= 1:
		return fmt.Errorf("followWeight %v must be in (0, 1)", c.FollowWeight)
	case c.Padding < 0:
		return fmt.Errorf("padding %v must not be negative", c.Padding)
	case c.LedgerInterval < 0:
		return fmt.Errorf("ledgerInterval %v must not be negative", c.LedgerInterval)
	case c.JoinDelay < 0:
		return fmt.Errorf("joinDelay %v must not be negative", c.JoinDelay)
	case c.LeaderSpeed < 0:
		return fmt.Errorf("leaderSpeed %v must not be negative", c.LeaderSpeed)
	case c.ThrowMinSpeed < 0 || c.ThrowMaxSpeed < c.ThrowMinSpeed:
		return fmt.Errorf("throw speed range [%v, %v] is invalid", c.ThrowMinSpeed, c.ThrowMaxSpeed)
	case c.ThrowChargeRate < 0:
		return fmt.Errorf("throwChargeRate %v must not be negative", c.ThrowChargeRate)
	case c.DespawnDistance < 0:
		return fmt.Errorf("despawnDistance %v must not be negative", c.DespawnDistance)
	case c.AnimationFPS <= 0:
		return fmt.Errorf("animationFPS %v must be positive", c.AnimationFPS)
	}
	return nil
}

// ThrowSpeed returns the allowed throw speed range.
func (c Config) ThrowSpeed() Range {
	return Range{Min: c.ThrowMinSpeed, Max: c.ThrowMaxSpeed}
}
