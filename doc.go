// Package slimetrain implements the follower-chain engine for a small chase
// game: a leader recruits slime followers that trail behind it in a chain and
// can be thrown one at a time.
//
// The engine is headless and tick-driven. Rendering, input, and audio live in
// the render, input, and audio packages and talk to the engine only through
// [Sim], [Controls], and the lifecycle [EventSink].
//
// # Quick start
//
//	sim := slimetrain.NewSim(slimetrain.DefaultConfig(), slimetrain.Vec2{X: 320, Y: 240})
//	for {
//		sim.Update(slimetrain.Controls{Move: slimetrain.Vec2{X: 1}}, 1.0/60)
//	}
//
// For direct control over the chain, use [Chain] on its own. Register the
// leader with [Chain.AddLeader], queue requests through [Chain.Inbox], move
// the leader and any thrown members yourself, then call [Chain.Tick] once per
// frame.
//
// # Follow order and position ledger
//
// A chain keeps two indices over its member arena. [FollowOrder] lists member
// identities leader first; each follower tracks the entry before it.
// [PositionLedger] holds the position of every tracked member as of the last
// refresh. Followers steer toward their predecessor's ledger position rather
// than its live position. That one-refresh lag is what spaces the chain out.
//
// Each tick a follower moves by FollowWeight of the remaining distance, unless
// it is already within Padding of its target.
//
// # Spawning and throwing
//
// Spawn and throw requests are queued on the chain's [Inbox] and applied in
// arrival order at the start of the next tick. A throw detaches the front-most
// following member, hands it a direction and speed, and removes it from both
// indices before any follower reads the ledger.
package slimetrain
