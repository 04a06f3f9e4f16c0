package slimetrain

import "iter"

// Integrate moves every member the chain does not steer: the leader and any
// thrown member. Following members, including ones still waiting to join,
// are skipped.
func Integrate(members iter.Seq[*Member], dt float64) {
	for m := range members {
		if m.Following || m.Motion.Speed == 0 || m.Motion.Direction.IsZero() {
			continue
		}
		m.Position = m.Position.Add(m.Motion.Velocity().Scale(dt))
	}
}

// Steer points the leader along move at speed. move may have any length;
// a zero vector stops the leader.
func Steer(leader *Member, move Vec2, speed float64) {
	leader.Motion = Motion{Direction: move.Normalize(), Speed: speed}
}
