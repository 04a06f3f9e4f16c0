package ecs

import (
	"github.com/phanxgames/slimetrain"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// ChainEventType is the Donburi event type for slimetrain lifecycle events.
var ChainEventType = events.NewEventType[slimetrain.ChainEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Events are
// queued on ChainEventType and delivered by ProcessEvents, so subscribers
// run outside the chain's tick.
func NewDonburiSink(world donburi.World) slimetrain.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitChainEvent(event slimetrain.ChainEvent) {
	ChainEventType.Publish(s.world, event)
}
