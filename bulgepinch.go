package bulgepinch

import "math"

// Vec2 is a 2D vector used for coordinates, centers, and surface dimensions
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Mul returns the component-wise product of v and o.
func (v Vec2) Mul(o Vec2) Vec2 { return Vec2{v.X * o.X, v.Y * o.Y} }

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// EdgeMode selects what a sampler returns for coordinates that fall outside
// the source image. The warp itself never clamps.
type EdgeMode uint8

const (
	EdgeFade        EdgeMode = iota // clamp to the border and fade alpha with distance outside (default)
	EdgeClamp                       // clamp to the nearest border pixel
	EdgeTransparent                 // transparent black outside the image
)

// String returns the flag name of the mode.
func (m EdgeMode) String() string {
	switch m {
	case EdgeFade:
		return "fade"
	case EdgeClamp:
		return "clamp"
	case EdgeTransparent:
		return "transparent"
	default:
		return "unknown"
	}
}

// ParseEdgeMode returns the EdgeMode with the given name.
func ParseEdgeMode(s string) (EdgeMode, bool) {
	switch s {
	case "fade", "":
		return EdgeFade, true
	case "clamp":
		return EdgeClamp, true
	case "transparent":
		return EdgeTransparent, true
	}
	return EdgeFade, false
}
