package bulgepinch

import "testing"

func TestVec2Ops(t *testing.T) {
	a := Vec2{3, 4}
	b := Vec2{1, 2}
	if got := a.Add(b); got != (Vec2{4, 6}) {
		t.Errorf("Add = %+v", got)
	}
	if got := a.Sub(b); got != (Vec2{2, 2}) {
		t.Errorf("Sub = %+v", got)
	}
	if got := a.Mul(b); got != (Vec2{3, 8}) {
		t.Errorf("Mul = %+v", got)
	}
	if got := a.Scale(2); got != (Vec2{6, 8}) {
		t.Errorf("Scale = %+v", got)
	}
	assertNear(t, "Len", a.Len(), 5)
}

func TestEdgeModeRoundTrip(t *testing.T) {
	for _, m := range []EdgeMode{EdgeFade, EdgeClamp, EdgeTransparent} {
		got, ok := ParseEdgeMode(m.String())
		if !ok || got != m {
			t.Errorf("ParseEdgeMode(%q) = %v, %v, want %v", m.String(), got, ok, m)
		}
	}
	if m, ok := ParseEdgeMode(""); !ok || m != EdgeFade {
		t.Errorf("empty name should parse as fade, got %v, %v", m, ok)
	}
	if _, ok := ParseEdgeMode("wrap"); ok {
		t.Error("unknown name should not parse")
	}
	if EdgeMode(9).String() != "unknown" {
		t.Errorf("String() = %q, want unknown", EdgeMode(9).String())
	}
}
