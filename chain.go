package slimetrain

import (
	"fmt"
	"io"
	"iter"
	"os"
)

// Chain owns the member arena and the two indices over it: the follow order
// and the position ledger. All mutation happens inside Tick, on the caller's
// goroutine.
type Chain struct {
	cfg Config

	members map[MemberID]*Member
	spawned []MemberID // arena ids in creation order, leader first
	leader  MemberID
	nextID  MemberID

	order  *FollowOrder
	ledger *PositionLedger
	inbox  *Inbox
	sink   EventSink

	sinceRefresh float64
	ticks        uint64

	debug    bool
	debugOut io.Writer
}

// NewChain creates an empty chain. Register the leader with AddLeader before
// the first Tick. Panics if cfg does not validate.
func NewChain(cfg Config) *Chain {
	if err := cfg.Validate(); err != nil {
		panic("slimetrain: invalid config: " + err.Error())
	}
	c := &Chain{
		cfg:      cfg,
		members:  make(map[MemberID]*Member),
		order:    NewFollowOrder(),
		ledger:   NewPositionLedger(),
		debugOut: os.Stderr,
	}
	c.inbox = newInbox(c.apply)
	return c
}

// AddLeader registers the leader at pos and returns its ID.
// Panics if the chain already has a leader.
func (c *Chain) AddLeader(pos Vec2) MemberID {
	if c.leader != 0 {
		panic(fmt.Sprintf("slimetrain: chain already led by %d", c.leader))
	}
	m := c.newMember(pos)
	m.Leader = true
	c.leader = m.ID
	return m.ID
}

// Config returns the configuration the chain was built with.
func (c *Chain) Config() Config {
	return c.cfg
}

// Leader returns the leader, or nil before AddLeader.
func (c *Chain) Leader() *Member {
	return c.members[c.leader]
}

// Member looks up a member by ID. The returned record is live: collaborators
// may write Position and Motion of the leader and of thrown members.
func (c *Chain) Member(id MemberID) (*Member, bool) {
	m, ok := c.members[id]
	return m, ok
}

// Members iterates the arena in creation order, leader first.
func (c *Chain) Members() iter.Seq[*Member] {
	return func(yield func(*Member) bool) {
		for _, id := range c.spawned {
			if !yield(c.members[id]) {
				return
			}
		}
	}
}

// Len returns the number of members in the arena, leader included.
func (c *Chain) Len() int {
	return len(c.members)
}

// Order returns the follow order. Callers must treat it as read-only.
func (c *Chain) Order() *FollowOrder {
	return c.order
}

// Ledger returns the position ledger. Callers must treat it as read-only.
func (c *Chain) Ledger() *PositionLedger {
	return c.ledger
}

// Inbox returns the queue that spawn and throw requests go through.
func (c *Chain) Inbox() *Inbox {
	return c.inbox
}

// Ticks returns the number of completed ticks. Ticks skipped for lack of a
// leader are not counted.
func (c *Chain) Ticks() uint64 {
	return c.ticks
}

// SetEventSink sets the receiver for lifecycle events. nil disables events.
func (c *Chain) SetEventSink(sink EventSink) {
	c.sink = sink
}

// Tick advances the chain by dt seconds. The leader and thrown members must
// already have been moved for this frame.
//
// Order of work: admit members whose join delay ran out, apply queued
// requests oldest first, prune members that stopped following, refresh the
// ledger, then move every follower toward its predecessor's ledger entry.
// Pruning happens before the ledger is read, so a member thrown this tick is
// never anyone's target.
func (c *Chain) Tick(dt float64) {
	leader := c.members[c.leader]
	if leader == nil {
		c.debugf("tick skipped: no leader registered")
		return
	}
	c.order.EnsureLeaderPresent(c.leader)

	c.admit(dt)
	c.inbox.drain()
	c.pruneStopped()
	c.refresh(leader, dt)
	c.followPass()
	c.ticks++

	if c.debug {
		if err := c.Validate(); err != nil {
			panic("slimetrain debug: " + err.Error())
		}
		c.debugLog()
	}
}

// Despawn removes a member from the arena and from both indices. Returns
// false if id is unknown. Panics if id is the leader.
func (c *Chain) Despawn(id MemberID) bool {
	m, ok := c.members[id]
	if !ok {
		return false
	}
	if m.Leader {
		panic(fmt.Sprintf("slimetrain: cannot despawn leader %d", id))
	}
	c.order.Remove(id)
	c.ledger.Delete(id)
	delete(c.members, id)
	for i, v := range c.spawned {
		if v == id {
			c.spawned = append(c.spawned[:i], c.spawned[i+1:]...)
			break
		}
	}
	c.emit(ChainEvent{Type: EventDespawned, Member: id, Position: m.Position})
	return true
}

// --- request handling ---

func (c *Chain) apply(r Request) {
	switch r.Kind {
	case RequestSpawn:
		c.spawn()
	case RequestThrow:
		c.throw(r.Direction, r.Speed)
	}
}

// spawn creates a follower on top of the leader. With no join delay it joins
// the follow order immediately.
func (c *Chain) spawn() {
	m := c.newMember(c.Leader().Position)
	m.Following = true
	m.joinWait = c.cfg.JoinDelay
	c.emit(ChainEvent{Type: EventSpawned, Member: m.ID, Position: m.Position})
	if m.joinWait <= 0 {
		c.join(m)
	}
}

// throw detaches the front-most following member. No-op if nobody follows.
func (c *Chain) throw(dir Vec2, speed float64) {
	for i := 1; i < c.order.Len(); i++ {
		m := c.members[c.order.At(i)]
		if !m.Following {
			continue
		}
		m.Following = false
		m.Motion = Motion{Direction: dir.Normalize(), Speed: speed}
		c.order.Remove(m.ID)
		c.ledger.Delete(m.ID)
		c.emit(ChainEvent{
			Type:      EventThrown,
			Member:    m.ID,
			Position:  m.Position,
			Direction: m.Motion.Direction,
			Speed:     speed,
		})
		return
	}
	c.debugf("throw ignored: no member is following")
}

// --- tick phases ---

// admit counts down join delays of members spawned on earlier ticks and
// appends those that are due, oldest first.
func (c *Chain) admit(dt float64) {
	for _, id := range c.spawned {
		m := c.members[id]
		if m.Leader || m.joined || !m.Following {
			continue
		}
		m.joinWait -= dt
		if m.joinWait <= 0 {
			c.join(m)
		}
	}
}

func (c *Chain) join(m *Member) {
	c.order.EnsureMemberPresent(m.ID)
	m.joined = true
	c.emit(ChainEvent{Type: EventJoined, Member: m.ID, Position: m.Position})
}

// pruneStopped drops followers whose Following flag was cleared outside a
// throw request.
func (c *Chain) pruneStopped() {
	for i := 1; i < c.order.Len(); {
		id := c.order.At(i)
		if m := c.members[id]; m != nil && m.Following {
			i++
			continue
		}
		c.order.Remove(id)
		c.ledger.Delete(id)
	}
}

// refresh snapshots the leader and every follower into the ledger once per
// LedgerInterval. The first tick always refreshes so the leader is recorded.
func (c *Chain) refresh(leader *Member, dt float64) {
	c.sinceRefresh += dt
	if c.ledger.Has(c.leader) && c.sinceRefresh < c.cfg.LedgerInterval {
		return
	}
	c.sinceRefresh = 0
	c.ledger.Refresh(c.leader, leader.Position, c.followerPositions())
}

func (c *Chain) followerPositions() iter.Seq2[MemberID, Vec2] {
	return func(yield func(MemberID, Vec2) bool) {
		for i := 1; i < c.order.Len(); i++ {
			id := c.order.At(i)
			if !yield(id, c.members[id].Position) {
				return
			}
		}
	}
}

// followPass nudges each follower a fixed fraction of the way toward its
// predecessor's ledger position.
func (c *Chain) followPass() {
	weight := c.cfg.FollowWeight
	for i := 1; i < c.order.Len(); i++ {
		m := c.members[c.order.At(i)]
		if !m.Following {
			continue
		}
		// At(i-1) is PredecessorOf(m.ID) without the linear search.
		target, ok := c.ledger.Get(c.order.At(i - 1))
		if !ok {
			continue
		}
		delta := target.Sub(m.Position)
		if delta.Len() < c.cfg.Padding {
			continue
		}
		m.Position = m.Position.Add(delta.Scale(weight))
	}
}

// --- helpers ---

func (c *Chain) newMember(pos Vec2) *Member {
	c.nextID++
	m := &Member{ID: c.nextID, Position: pos}
	if _, dup := c.members[m.ID]; dup {
		panic(fmt.Sprintf("slimetrain: member %d already exists", m.ID))
	}
	c.members[m.ID] = m
	c.spawned = append(c.spawned, m.ID)
	return m
}

func (c *Chain) emit(e ChainEvent) {
	if c.debug {
		c.debugf("member %d %s at (%.1f, %.1f)", e.Member, e.Type, e.Position.X, e.Position.Y)
	}
	if c.sink == nil {
		return
	}
	e.Tick = c.ticks
	c.sink.EmitChainEvent(e)
}
