// Package ecs provides ECS adapters for codequest's screen events.
//
// [NewDonburiSink] bridges screen controller events (transition started,
// screen swapped, transition completed, action routed, quit requested)
// into a [Donburi] world as typed events. Subscribe to [ScreenEventType]
// in your ECS systems to receive them, or call [TrackScreens] to record
// every screen shown as a [ScreenVisit] entity.
//
// Usage:
//
//	world := donburi.NewWorld()
//	ecs.TrackScreens(world)
//	codequest.Run(codequest.RunConfig{Events: ecs.NewDonburiSink(world)})
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
