// Package ecs provides ECS adapters for bulgepinch.
//
// [Effect] is a [Donburi] component that pairs a [bulgepinch.BulgePinchFilter]
// with an optional running tween. Call [Update] once per tick to advance
// every tween in the world; finished tweens are cleared and announced through
// [TweenFinishedEventType].
//
// Usage:
//
//	e := ecs.NewEffect(world, bulgepinch.DefaultParams())
//	ecs.Animate(world, e, func(f *bulgepinch.BulgePinchFilter) *bulgepinch.TweenGroup {
//		return bulgepinch.TweenStrength(f, -1, 2, ease.InOutSine)
//	})
//	// each tick:
//	ecs.Update(world, dt)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
