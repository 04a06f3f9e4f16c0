package slimetrain

// Controls is one frame of player intent, already translated out of raw
// input. Cursor is in world space.
type Controls struct {
	Move   Vec2 // desired leader direction; any length, zero to stand still
	Spawn  bool // true on the frame a spawn was requested
	Aim    bool // aim button held
	Cursor Vec2
}

// Sim wires the chain to its collaborators for one frame at a time: leader
// steering, the aim charge, the movement integrator, and despawning thrown
// members that flew too far.
type Sim struct {
	cfg    Config
	chain  *Chain
	aimer  *Aimer
	facing FacingTracker
	cursor Vec2

	strays []MemberID
}

// NewSim creates a chain with its leader at leaderPos.
func NewSim(cfg Config, leaderPos Vec2) *Sim {
	s := &Sim{
		cfg:   cfg,
		chain: NewChain(cfg),
		aimer: NewAimer(cfg),
	}
	s.chain.AddLeader(leaderPos)
	return s
}

// Chain returns the underlying chain.
func (s *Sim) Chain() *Chain {
	return s.chain
}

// Aimer returns the throw charge state.
func (s *Sim) Aimer() *Aimer {
	return s.aimer
}

// Orientation returns the sprite orientation shared by the leader and all
// followers.
func (s *Sim) Orientation() Orientation {
	return s.facing.Current()
}

// Arrow returns the aim arrow pose while a throw is being charged.
func (s *Sim) Arrow() (ArrowPose, bool) {
	return s.aimer.Arrow(s.chain.Leader().Position, s.cursor)
}

// Update advances the game by dt seconds under the given controls.
func (s *Sim) Update(ctl Controls, dt float64) {
	leader := s.chain.Leader()
	inbox := s.chain.Inbox()

	Steer(leader, ctl.Move, s.cfg.LeaderSpeed)
	s.facing.Update(leader.Motion.Velocity())
	s.cursor = ctl.Cursor

	if ctl.Spawn {
		inbox.RequestSpawn()
	}
	if speed, fired := s.aimer.Update(ctl.Aim, dt); fired {
		inbox.RequestThrow(AimDirection(leader.Position, ctl.Cursor), speed)
	}

	Integrate(s.chain.Members(), dt)
	s.chain.Tick(dt)
	s.despawnStrays(leader.Position)
}

// despawnStrays removes thrown members beyond DespawnDistance of the leader.
func (s *Sim) despawnStrays(leaderPos Vec2) {
	if s.cfg.DespawnDistance <= 0 {
		return
	}
	s.strays = s.strays[:0]
	for m := range s.chain.Members() {
		if m.Thrown() && m.Position.Sub(leaderPos).Len() > s.cfg.DespawnDistance {
			s.strays = append(s.strays, m.ID)
		}
	}
	for _, id := range s.strays {
		s.chain.Despawn(id)
	}
}
