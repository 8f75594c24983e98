package bulgepinch

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

const tweenEpsilon = 1e-4

func assertTweenNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > tweenEpsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func TestTweenStrength(t *testing.T) {
	f := NewBulgePinchFilter(Params{Center: Vec2{0.5, 0.5}, Radius: 50, Strength: 0})
	g := TweenStrength(f, 1, 1, ease.Linear)

	g.Update(0.5)
	assertTweenNear(t, "strength at 0.5s", f.Strength(), 0.5)
	if g.Done {
		t.Error("tween should not be done halfway")
	}

	g.Update(0.6)
	assertTweenNear(t, "strength at end", f.Strength(), 1)
	if !g.Done {
		t.Error("tween should be done after its duration")
	}
}

func TestTweenRadiusObeysClamp(t *testing.T) {
	f := NewBulgePinchFilter(Params{Radius: 20, Strength: 1})
	g := TweenRadius(f, -20, 1, ease.Linear)
	g.Update(0.25)
	assertTweenNear(t, "radius at 0.25s", f.Radius(), 10)
	g.Update(1)
	if f.Radius() != 0 {
		t.Errorf("Radius() = %v, want 0 (negative target clamped)", f.Radius())
	}
}

func TestTweenCenter(t *testing.T) {
	f := NewBulgePinchFilter(Params{Center: Vec2{0, 1}, Radius: 20, Strength: 1})
	g := TweenCenter(f, Vec2{1, 0}, 2, ease.Linear)
	g.Update(1)
	assertTweenNear(t, "center.X", f.Center().X, 0.5)
	assertTweenNear(t, "center.Y", f.Center().Y, 0.5)
	g.Update(1)
	if !g.Done {
		t.Error("tween should be done")
	}
	assertTweenNear(t, "center.X end", f.Center().X, 1)
	assertTweenNear(t, "center.Y end", f.Center().Y, 0)
}

func TestTweenParams(t *testing.T) {
	f := NewBulgePinchFilter(Params{Center: Vec2{0.2, 0.2}, Radius: 10, Strength: -1})
	target := Params{Center: Vec2{0.8, 0.6}, Radius: 110, Strength: 1}
	g := TweenParams(f, target, 1, ease.Linear)
	if g.Target() != f {
		t.Error("Target() should return the animated filter")
	}

	g.Update(0.5)
	assertTweenNear(t, "strength", f.Strength(), 0)
	assertTweenNear(t, "radius", f.Radius(), 60)
	assertTweenNear(t, "center.X", f.Center().X, 0.5)
	assertTweenNear(t, "center.Y", f.Center().Y, 0.4)

	g.Update(0.5)
	if !g.Done {
		t.Error("tween should be done")
	}
	assertTweenNear(t, "final radius", f.Radius(), 110)
}

func TestTweenGroupDoneStopsUpdates(t *testing.T) {
	f := NewBulgePinchFilter(Params{Radius: 20, Strength: 0})
	g := TweenStrength(f, 1, 0.5, ease.Linear)
	g.Update(1)
	f.SetStrength(0.25)
	g.Update(1)
	if f.Strength() != 0.25 {
		t.Errorf("finished tween overwrote strength: %v", f.Strength())
	}
}

func TestTweenGroupReset(t *testing.T) {
	f := NewBulgePinchFilter(Params{Radius: 20, Strength: 0})
	g := TweenStrength(f, 1, 1, ease.Linear)
	g.Update(2)
	g.Reset()
	if g.Done {
		t.Error("Done should be cleared by Reset")
	}
	assertTweenNear(t, "strength after reset", f.Strength(), 0)
	g.Update(0.5)
	assertTweenNear(t, "strength after reset+0.5s", f.Strength(), 0.5)
}
