// Package ecs provides ECS adapters for arbor's interaction event system.
//
// The primary adapter is [NewDonburiStore], which bridges arbor interaction
// events (hover enter and exit, pointer, click, drag) into a [Donburi] world
// as typed events. Subscribe to [InteractionEventType] in your ECS systems to
// receive them, or keep a [HoverSet] to query hover state directly.
//
// Only nodes with a non-zero EntityID produce events.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	scene.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
