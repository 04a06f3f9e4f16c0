package slimetrain

// MemberID identifies a chain member. IDs are assigned by the chain, start at
// 1, and are never reused within a chain.
type MemberID uint32

// Motion is the translation the movement collaborator applies each tick.
// Direction is expected to be a unit vector or zero.
type Motion struct {
	Direction Vec2
	Speed     float64
}

// Velocity returns Direction scaled by Speed.
func (m Motion) Velocity() Vec2 {
	return m.Direction.Scale(m.Speed)
}

// Member is one record in the chain's arena: the leader or a slime.
type Member struct {
	ID       MemberID
	Position Vec2
	// Following is true while the member tracks a predecessor. The leader
	// reports false. Once a follower stops following it never resumes.
	Following bool
	Leader    bool
	// Motion belongs to the movement collaborator. The chain writes it only
	// when a member is thrown.
	Motion Motion

	joinWait float64 // seconds left before the member may join the follow order
	joined   bool
}

// Joined reports whether the member has entered the follow order at some
// point. A thrown member keeps reporting true.
func (m *Member) Joined() bool {
	return m.joined
}

// Thrown reports whether the member was detached from the chain.
func (m *Member) Thrown() bool {
	return !m.Leader && !m.Following
}
