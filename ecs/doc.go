// Package ecs provides ECS adapters for bramble's event dispatcher.
//
// The primary adapter is [NewDonburiStore], which bridges every dispatch
// (the event, who consumed it, and any hover change it caused) into a
// [Donburi] world as typed events. Subscribe to [DispatchEventType] in your
// ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	window.Dispatcher().SetEventStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
