package bulgepinch

// remapGain scales strength inside Remap. With |strength| <= 1 it keeps the
// remap strictly increasing, so the warp never folds over itself.
const remapGain = 0.75

// Default parameter values.
const (
	DefaultRadius   = 100.0
	DefaultStrength = 1.0
)

// Params are the caller-facing effect parameters.
type Params struct {
	// Center is the origin of the circle of effect in normalized coordinates.
	Center Vec2
	// Radius is the radius of the circle of effect in pixels.
	Radius float64
	// Strength is the signed distortion magnitude: -1 is a strong pinch,
	// 0 is no effect, 1 is a strong bulge. Values outside [-1, 1] are
	// accepted and produce extreme distortion.
	Strength float64
}

// DefaultParams returns a centered bulge with a 100 pixel radius.
func DefaultParams() Params {
	return Params{
		Center:   Vec2{0.5, 0.5},
		Radius:   DefaultRadius,
		Strength: DefaultStrength,
	}
}

// Remap returns the distance from the center at which a pixel dist pixels
// away samples the source. Remap(0) is 0 and Remap(radius) is radius with a
// slope of 1, so the warped disk joins the undistorted image without a seam.
// Positive strength samples farther out, negative strength closer in.
func Remap(dist, radius, strength float64) float64 {
	if !(radius > 0) || !(dist < radius) {
		return dist
	}
	q := 1 - dist/radius
	return dist * (1 + strength*remapGain*q*q)
}

// Warp maps a normalized output coordinate to the normalized source coordinate
// to sample for an input surface of dims pixels. Distances are measured in
// pixel space, so the circle of effect stays round on non-square surfaces.
// The result is not clamped to [0, 1].
func Warp(coord, dims Vec2, p Params) Vec2 {
	delta := coord.Sub(p.Center).Mul(dims)
	dist := delta.Len()
	if !(dist < p.Radius) || dist == 0 {
		return coord
	}
	scale := Remap(dist, p.Radius, p.Strength) / dist
	return p.Center.Add(coord.Sub(p.Center).Scale(scale))
}

// InCircle reports whether coord lies strictly inside the circle of effect.
func InCircle(coord, dims Vec2, p Params) bool {
	return coord.Sub(p.Center).Mul(dims).Len() < p.Radius
}
