// Package ecs provides ECS adapters for osier's interaction event stream.
//
// The primary adapter is [NewDonburiSink], which bridges osier events
// (single click, double click, drag start/continue/complete) into a
// [Donburi] world as typed events. Subscribe to [InteractionEventType] in
// your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	router.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
