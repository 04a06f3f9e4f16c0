package slimetrain

import "iter"

// PositionLedger records the last observed position of every tracked member.
// Followers steer toward their predecessor's ledger entry, not its live
// position.
type PositionLedger struct {
	positions map[MemberID]Vec2
}

// NewPositionLedger returns an empty ledger.
func NewPositionLedger() *PositionLedger {
	return &PositionLedger{positions: make(map[MemberID]Vec2)}
}

// Refresh overwrites the stored position of the leader and of every follower
// yielded by followers. Entries not mentioned are left alone; stale members
// are pruned by the chain through Delete.
func (l *PositionLedger) Refresh(leader MemberID, leaderPos Vec2, followers iter.Seq2[MemberID, Vec2]) {
	l.positions[leader] = leaderPos
	if followers == nil {
		return
	}
	for id, pos := range followers {
		l.positions[id] = pos
	}
}

// Get returns the recorded position for id. ok is false if nothing has been
// recorded yet; callers treat that as "no target this tick".
func (l *PositionLedger) Get(id MemberID) (pos Vec2, ok bool) {
	pos, ok = l.positions[id]
	return pos, ok
}

// Has reports whether id has a recorded position.
func (l *PositionLedger) Has(id MemberID) bool {
	_, ok := l.positions[id]
	return ok
}

// Delete drops the entry for id. No-op if absent.
func (l *PositionLedger) Delete(id MemberID) {
	delete(l.positions, id)
}

// Len returns the number of recorded entries.
func (l *PositionLedger) Len() int {
	return len(l.positions)
}
