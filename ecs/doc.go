// Package ecs bridges slimetrain chain lifecycle events into a [Donburi]
// world.
//
// [NewDonburiSink] publishes every spawn, join, throw, and despawn as a typed
// event. Subscribe to [ChainEventType] in your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	chain.SetEventSink(sink)
//	ecs.ChainEventType.Subscribe(world, onChainEvent)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
