package bulgepinch

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 parameters of a BulgePinchFilter simultaneously.
// Create one via TweenStrength, TweenRadius or TweenCenter and call
// Update(dt) each frame. Values are written through the filter setters, so a
// tweened radius obeys the same clamping as SetRadius.
//
// There is no global animation manager; callers drive Update themselves.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	set    [4]func(float64)
	target *BulgePinchFilter
	Done   bool
}

// Update advances all tweens by dt seconds and writes the values to the
// target filter. Done is set once every tween has finished.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		g.set[i](float64(val))
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// Target returns the filter being animated.
func (g *TweenGroup) Target() *BulgePinchFilter { return g.target }

// Reset rewinds every tween to its start value and clears Done.
func (g *TweenGroup) Reset() {
	for i := 0; i < g.count; i++ {
		val, _ := g.tweens[i].Set(0)
		g.set[i](float64(val))
	}
	g.Done = false
}

// TweenStrength creates a TweenGroup that animates the filter strength to the
// given value over duration seconds using the easing function.
func TweenStrength(f *BulgePinchFilter, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1, target: f}
	g.tweens[0] = gween.New(float32(f.Strength()), float32(to), duration, fn)
	g.set[0] = f.SetStrength
	return g
}

// TweenRadius creates a TweenGroup that animates the filter radius to the
// given value in pixels over duration seconds using the easing function.
func TweenRadius(f *BulgePinchFilter, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1, target: f}
	g.tweens[0] = gween.New(float32(f.Radius()), float32(to), duration, fn)
	g.set[0] = f.SetRadius
	return g
}

// TweenCenter creates a TweenGroup that moves the center of the circle of
// effect to the given normalized coordinates.
func TweenCenter(f *BulgePinchFilter, to Vec2, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2, target: f}
	from := f.Center()
	g.tweens[0] = gween.New(float32(from.X), float32(to.X), duration, fn)
	g.tweens[1] = gween.New(float32(from.Y), float32(to.Y), duration, fn)
	g.set[0] = func(v float64) {
		c := f.Center()
		c.X = v
		f.SetCenter(c)
	}
	g.set[1] = func(v float64) {
		c := f.Center()
		c.Y = v
		f.SetCenter(c)
	}
	return g
}

// TweenParams creates a TweenGroup that animates strength, radius and center
// together toward p.
func TweenParams(f *BulgePinchFilter, p Params, duration float32, fn ease.TweenFunc) *TweenGroup {
	c := TweenCenter(f, p.Center, duration, fn)
	g := &TweenGroup{count: 4, target: f}
	g.tweens[0] = gween.New(float32(f.Strength()), float32(p.Strength), duration, fn)
	g.tweens[1] = gween.New(float32(f.Radius()), float32(p.Radius), duration, fn)
	g.tweens[2], g.tweens[3] = c.tweens[0], c.tweens[1]
	g.set[0] = f.SetStrength
	g.set[1] = f.SetRadius
	g.set[2], g.set[3] = c.set[0], c.set[1]
	return g
}
