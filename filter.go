package bulgepinch

import (
	"fmt"
	"image"
	"math"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

// Filter is the interface for visual effects applied to a rendered image.
// It matches the filter contract of willow nodes, so a BulgePinchFilter can
// be placed directly in a willow filter chain.
type Filter interface {
	// Apply renders src into dst with the filter effect.
	Apply(src, dst *ebiten.Image)
	// Padding returns the extra pixels needed around the source to accommodate
	// the effect. Zero means no padding.
	Padding() int
}

// bulgePinchShaderSrc evaluates Warp per destination pixel. The remap must
// stay identical to Remap in kernel.go. Ebitengine uses premultiplied alpha,
// so the edge fade scales all four channels.
const bulgePinchShaderSrc = `//kage:unit pixels
package main

var Center vec2
var Radius float
var Strength float
var Dimensions vec2
var Edge float

func texel(p vec2) vec4 {
	return imageSrc0UnsafeAt(imageSrc0Origin() + clamp(p, vec2(0.5), Dimensions-vec2(0.5)))
}

func sampleLinear(p vec2) vec4 {
	p -= vec2(0.5)
	b := floor(p)
	f := p - b
	b += vec2(0.5)
	c00 := texel(b)
	c10 := texel(b + vec2(1, 0))
	c01 := texel(b + vec2(0, 1))
	c11 := texel(b + vec2(1, 1))
	return mix(mix(c00, c10, f.x), mix(c01, c11, f.x), f.y)
}

func Fragment(dst vec4, src vec2, color vec4) vec4 {
	pos := src - imageSrc0Origin()
	c := Center * Dimensions
	delta := pos - c
	dist := length(delta)
	if dist > 0 && dist < Radius {
		q := 1 - dist/Radius
		pos = c + delta*(1+Strength*0.75*q*q)
	}
	outside := length((pos - clamp(pos, vec2(0), Dimensions)) / Dimensions)
	if outside > 0 {
		if Edge == 2 {
			return vec4(0)
		}
		if Edge == 0 {
			return sampleLinear(pos) * max(0, 1-outside)
		}
	}
	return sampleLinear(pos)
}
`

// Lazy shader compilation (no sync.Once; Ebitengine draws from one goroutine).
var bulgePinchShader *ebiten.Shader

func ensureBulgePinchShader() *ebiten.Shader {
	if bulgePinchShader == nil {
		s, err := ebiten.NewShader([]byte(bulgePinchShaderSrc))
		if err != nil {
			panic("bulgepinch: failed to compile bulge/pinch shader: " + err.Error())
		}
		bulgePinchShader = s
	}
	return bulgePinchShader
}

// --- BulgePinchFilter ---

// BulgePinchFilter bulges or pinches the image inside a circle using a Kage
// shader. Center, radius and strength may be changed between frames; the
// surface dimensions are taken from the source image on every Apply.
type BulgePinchFilter struct {
	// Edge selects how samples outside the source image are treated.
	Edge EdgeMode
	// Debug logs dimension changes to stderr.
	Debug bool

	params     Params
	dimensions Vec2

	uniforms    map[string]any
	centerF32   [2]float32 // persistent buffer to avoid per-frame slice escape
	centerSlice []float32  // persistent slice header pointing into centerF32
	dimsF32     [2]float32
	dimsSlice   []float32
	shaderOp    ebiten.DrawRectShaderOptions
}

// NewBulgePinchFilter creates a filter with the given parameters. A negative
// or NaN radius is stored as 0.
func NewBulgePinchFilter(p Params) *BulgePinchFilter {
	f := &BulgePinchFilter{
		uniforms: make(map[string]any, 5),
	}
	f.centerSlice = f.centerF32[:]
	f.dimsSlice = f.dimsF32[:]
	f.uniforms["Center"] = f.centerSlice
	f.uniforms["Dimensions"] = f.dimsSlice
	f.SetParams(p)
	return f
}

// Params returns a copy of the current parameters.
func (f *BulgePinchFilter) Params() Params { return f.params }

// SetParams replaces all parameters at once.
func (f *BulgePinchFilter) SetParams(p Params) {
	f.params.Center = p.Center
	f.params.Strength = p.Strength
	f.SetRadius(p.Radius)
}

// Center returns the normalized center of the circle of effect.
func (f *BulgePinchFilter) Center() Vec2 { return f.params.Center }

// SetCenter sets the normalized center of the circle of effect.
func (f *BulgePinchFilter) SetCenter(c Vec2) { f.params.Center = c }

// Radius returns the radius of the circle of effect in pixels.
func (f *BulgePinchFilter) Radius() float64 { return f.params.Radius }

// SetRadius sets the radius in pixels. Negative and NaN values are stored as
// 0, which disables the effect.
func (f *BulgePinchFilter) SetRadius(r float64) {
	if !(r > 0) {
		r = 0
	}
	f.params.Radius = r
}

// Strength returns the distortion strength.
func (f *BulgePinchFilter) Strength() float64 { return f.params.Strength }

// SetStrength sets the distortion strength. -1 is a strong pinch, 0 is no
// effect, 1 is a strong bulge.
func (f *BulgePinchFilter) SetStrength(s float64) { f.params.Strength = s }

// Dimensions returns the size of the source image seen by the last Apply.
func (f *BulgePinchFilter) Dimensions() Vec2 { return f.dimensions }

// prepare refreshes the dimensions and writes every uniform in place.
func (f *BulgePinchFilter) prepare(w, h int) {
	dims := Vec2{float64(w), float64(h)}
	if f.Debug && dims != f.dimensions {
		_, _ = fmt.Fprintf(os.Stderr, "[bulgepinch] filter dimensions %dx%d (radius %.1f, strength %.2f)\n",
			w, h, f.params.Radius, f.params.Strength)
	}
	f.dimensions = dims
	f.centerF32[0] = float32(f.params.Center.X)
	f.centerF32[1] = float32(f.params.Center.Y)
	f.dimsF32[0] = float32(w)
	f.dimsF32[1] = float32(h)
	// Scalar float32 boxing is unavoidable with Ebitengine's uniform API.
	f.uniforms["Radius"] = float32(f.params.Radius)
	f.uniforms["Strength"] = float32(clampFloat32(f.params.Strength))
	f.uniforms["Edge"] = float32(f.Edge)
}

// Apply renders the warped src into dst.
func (f *BulgePinchFilter) Apply(src, dst *ebiten.Image) {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return
	}
	shader := ensureBulgePinchShader()
	f.prepare(w, h)
	f.shaderOp.Images[0] = src
	f.shaderOp.Uniforms = f.uniforms
	dst.DrawRectShader(w, h, shader, &f.shaderOp)
}

// Padding returns 0; the warp only samples inside the source frame.
func (f *BulgePinchFilter) Padding() int { return 0 }

// clampFloat32 keeps out-of-range strengths finite after the float32 cast.
func clampFloat32(v float64) float64 {
	return math.Max(-math.MaxFloat32, math.Min(math.MaxFloat32, v))
}

// --- Chain ---

// Chain applies a sequence of filters, ping-ponging intermediate results
// through pooled offscreen images. A Chain is itself a Filter.
type Chain struct {
	Filters []Filter
	pool    renderTexturePool
	imgOp   ebiten.DrawImageOptions
}

// NewChain creates a chain running filters in order.
func NewChain(filters ...Filter) *Chain {
	return &Chain{Filters: filters}
}

// Apply runs every filter in order; the last one renders into dst. An empty
// chain copies src into dst.
func (c *Chain) Apply(src, dst *ebiten.Image) {
	if len(c.Filters) == 0 {
		c.imgOp.GeoM.Reset()
		c.imgOp.ColorScale.Reset()
		c.imgOp.Filter = ebiten.FilterNearest
		dst.DrawImage(src, &c.imgOp)
		return
	}

	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	last := len(c.Filters) - 1

	var scratch [2]*ebiten.Image
	current := src
	for i, f := range c.Filters {
		if i == last {
			f.Apply(current, dst)
			break
		}
		slot := i % 2
		if scratch[slot] == nil {
			scratch[slot] = c.pool.Acquire(w, h)
		} else {
			scratch[slot].Clear()
		}
		// Pooled images are rounded up to powers of two; filters read the
		// surface size from Bounds, so hand them an exact-size view.
		target := scratch[slot].SubImage(image.Rect(0, 0, w, h)).(*ebiten.Image)
		f.Apply(current, target)
		current = target
	}

	for _, img := range scratch {
		c.pool.Release(img)
	}
}

// Padding returns the cumulative padding of all filters in the chain.
func (c *Chain) Padding() int { return filterChainPadding(c.Filters) }

// filterChainPadding returns the cumulative padding required by a slice of filters.
func filterChainPadding(filters []Filter) int {
	pad := 0
	for _, f := range filters {
		pad += f.Padding()
	}
	return pad
}

// Dispose releases the chain's pooled scratch images. The chain stays usable
// and reallocates on the next Apply.
func (c *Chain) Dispose() {
	c.pool.Dispose()
}
