package slimetrain

// EventType identifies a chain lifecycle event.
type EventType uint8

const (
	EventSpawned   EventType = iota // a member was created at the leader
	EventJoined                     // a member entered the follow order
	EventThrown                     // a member was detached with a direction and speed
	EventDespawned                  // a member was removed from the arena
)

// String returns a lowercase name for logs.
func (t EventType) String() string {
	switch t {
	case EventSpawned:
		return "spawned"
	case EventJoined:
		return "joined"
	case EventThrown:
		return "thrown"
	case EventDespawned:
		return "despawned"
	default:
		return "unknown"
	}
}

// ChainEvent describes one lifecycle change. Direction and Speed are set for
// EventThrown only.
type ChainEvent struct {
	Type      EventType
	Member    MemberID
	Position  Vec2
	Direction Vec2
	Speed     float64
	Tick      uint64
}

// EventSink receives lifecycle events as they happen. Set one on a Chain to
// drive audio, effects, or an ECS. Sinks are called synchronously inside the
// chain's tick and must not call back into the chain.
type EventSink interface {
	EmitChainEvent(event ChainEvent)
}
