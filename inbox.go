package slimetrain

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// RequestKind distinguishes the structural changes a chain accepts.
type RequestKind uint8

const (
	RequestSpawn RequestKind = iota // add one follower at the leader
	RequestThrow                    // detach the front-most follower
)

// Request is a queued structural change. Direction and Speed are only used
// by RequestThrow.
type Request struct {
	Kind      RequestKind
	Direction Vec2
	Speed     float64
}

// requestEventType carries both spawns and throws so that a mixed burst is
// applied in arrival order.
var requestEventType = events.NewEventType[Request]()

// Inbox buffers spawn and throw requests until the chain drains it at the
// start of its next tick. Each inbox owns a private donburi world that holds
// the event queue.
type Inbox struct {
	world   donburi.World
	pending int
}

func newInbox(handler func(Request)) *Inbox {
	in := &Inbox{world: donburi.NewWorld()}
	requestEventType.Subscribe(in.world, func(_ donburi.World, r Request) {
		in.pending--
		handler(r)
	})
	return in
}

// RequestSpawn queues one new follower.
func (in *Inbox) RequestSpawn() {
	in.publish(Request{Kind: RequestSpawn})
}

// RequestThrow queues a throw. direction does not need to be normalized.
func (in *Inbox) RequestThrow(direction Vec2, speed float64) {
	in.publish(Request{Kind: RequestThrow, Direction: direction, Speed: speed})
}

// Pending returns the number of requests waiting for the next drain.
func (in *Inbox) Pending() int {
	return in.pending
}

func (in *Inbox) publish(r Request) {
	in.pending++
	requestEventType.Publish(in.world, r)
}

// drain hands every queued request to the handler, oldest first.
func (in *Inbox) drain() {
	if in.pending == 0 {
		return
	}
	requestEventType.ProcessEvents(in.world)
}
