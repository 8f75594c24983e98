package ecs

import (
	"github.com/phanxgames/bulgepinch"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// EffectData is the component payload for an entity carrying a bulge/pinch
// filter. Tween is nil when the filter is idle.
type EffectData struct {
	Filter *bulgepinch.BulgePinchFilter
	Tween  *bulgepinch.TweenGroup
}

// Effect is the Donburi component type for EffectData.
var Effect = donburi.NewComponentType[EffectData]()

// TweenFinished is published when an entity's tween completes.
type TweenFinished struct {
	Entity donburi.Entity
	Params bulgepinch.Params
}

// TweenFinishedEventType is the Donburi event type for finished tweens.
// Subscribe to it and call ProcessEvents to receive them.
var TweenFinishedEventType = events.NewEventType[TweenFinished]()

// NewEffect creates an entity with a new filter initialized to p.
func NewEffect(world donburi.World, p bulgepinch.Params) donburi.Entity {
	e := world.Create(Effect)
	Effect.SetValue(world.Entry(e), EffectData{
		Filter: bulgepinch.NewBulgePinchFilter(p),
	})
	return e
}

// FilterOf returns the filter attached to e, or nil when e has no Effect.
func FilterOf(world donburi.World, e donburi.Entity) *bulgepinch.BulgePinchFilter {
	if !world.Valid(e) {
		return nil
	}
	entry := world.Entry(e)
	if !entry.HasComponent(Effect) {
		return nil
	}
	return Effect.Get(entry).Filter
}

// Animate replaces the entity's tween with one built by mk against its filter.
// It is a no-op for entities without an Effect.
func Animate(world donburi.World, e donburi.Entity, mk func(*bulgepinch.BulgePinchFilter) *bulgepinch.TweenGroup) {
	f := FilterOf(world, e)
	if f == nil {
		return
	}
	Effect.Get(world.Entry(e)).Tween = mk(f)
}

// Update advances every running tween by dt seconds. Tweens that finish are
// removed from their entity and a TweenFinished event is queued.
func Update(world donburi.World, dt float32) {
	Effect.Each(world, func(entry *donburi.Entry) {
		data := Effect.Get(entry)
		if data.Tween == nil {
			return
		}
		data.Tween.Update(dt)
		if data.Tween.Done {
			data.Tween = nil
			TweenFinishedEventType.Publish(world, TweenFinished{
				Entity: entry.Entity(),
				Params: data.Filter.Params(),
			})
		}
	})
}
