// Package bulgepinch bulges or pinches an image inside a circle, for
// [Ebitengine] and for plain [image.Image] values.
//
// The effect is defined by three parameters: a normalized Center, a Radius in
// pixels and a signed Strength (-1 is a strong pinch, 0 is no effect, 1 is a
// strong bulge). Outside the circle of effect the image is untouched; inside,
// each output pixel samples the source along the same ray from the center at
// a remapped distance. The remap fixes the center and the rim of the circle,
// so the warped disk joins the rest of the image without a seam.
//
// # GPU filter
//
// [BulgePinchFilter] runs the warp as a Kage shader. It follows the willow
// filter contract (Apply/Padding), so it can be dropped into a willow node's
// filter list or used directly:
//
//	f := bulgepinch.NewBulgePinchFilter(bulgepinch.DefaultParams())
//	f.SetStrength(-0.5)
//	f.Apply(src, dst)
//
// Several filters can be run in sequence with [Chain], which ping-pongs
// intermediate results through pooled offscreen images.
//
// # CPU rendering
//
// [Renderer] applies the same warp to any [image.Image] on the CPU, in
// parallel row bands:
//
//	var r bulgepinch.Renderer
//	out, err := r.Render(img, bulgepinch.Params{
//		Center: bulgepinch.Vec2{X: 0.3, Y: 0.6}, Radius: 80, Strength: 0.7,
//	})
//
// The kernel itself is exported as [Warp] and [Remap] for callers that want to
// drive their own sampling.
//
// # Animation and presets
//
// [TweenStrength], [TweenRadius], [TweenCenter] and [TweenParams] animate a
// filter over time (via [gween]). [LoadPresets] reads named parameter sets
// from JSON.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package bulgepinch
