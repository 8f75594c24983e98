package bulgepinch

import (
	"errors"
	"image"
	"math"
	"runtime"
	"time"

	"golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"
)

// ErrNilImage is returned when a nil source image is passed to Render.
var ErrNilImage = errors.New("bulgepinch: nil source image")

// minBandRows keeps row bands large enough that goroutine overhead stays
// below the per-pixel work.
const minBandRows = 16

// Renderer applies the warp on the CPU. It samples the source bilinearly with
// the same edge handling as the shader. The zero value is ready to use.
type Renderer struct {
	// Workers bounds the number of goroutines. Zero uses GOMAXPROCS.
	Workers int
	// Edge selects how samples outside the source image are treated.
	Edge EdgeMode
	// Debug prints timing stats to stderr after each Render.
	Debug bool
}

// Render returns a new image of the same size as src with the warp applied.
// The output origin is (0, 0).
func (r *Renderer) Render(src image.Image, p Params) (*image.NRGBA, error) {
	if src == nil {
		return nil, ErrNilImage
	}
	start := time.Now()

	in := toNRGBA(src)
	w, h := in.Rect.Dx(), in.Rect.Dy()
	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	if w == 0 || h == 0 {
		return out, nil
	}
	convertTime := time.Since(start)

	workers := r.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	bands := max(1, min(workers, h/minBandRows))
	rowsPerBand := (h + bands - 1) / bands

	s := sampler{img: in, w: w, h: h, edge: r.Edge}
	dims := Vec2{float64(w), float64(h)}

	var g errgroup.Group
	g.SetLimit(workers)
	for y0 := 0; y0 < h; y0 += rowsPerBand {
		y1 := min(y0+rowsPerBand, h)
		g.Go(func() error {
			renderRows(out, s, dims, p, y0, y1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	r.debugLog(renderStats{
		width:       w,
		height:      h,
		bands:       bands,
		workers:     workers,
		convertTime: convertTime,
		warpTime:    time.Since(start) - convertTime,
	})
	return out, nil
}

// renderRows fills rows [y0, y1) of out. Each output pixel samples at its
// center.
func renderRows(out *image.NRGBA, s sampler, dims Vec2, p Params, y0, y1 int) {
	for y := y0; y < y1; y++ {
		row := out.Pix[y*out.Stride:]
		for x := 0; x < s.w; x++ {
			coord := Vec2{(float64(x) + 0.5) / dims.X, (float64(y) + 0.5) / dims.Y}
			src := Warp(coord, dims, p).Mul(dims)
			c := s.at(src.X, src.Y)
			i := x * 4
			row[i+0] = c[0]
			row[i+1] = c[1]
			row[i+2] = c[2]
			row[i+3] = c[3]
		}
	}
}

// toNRGBA returns src as an *image.NRGBA with origin (0, 0), converting when
// necessary.
func toNRGBA(src image.Image) *image.NRGBA {
	if n, ok := src.(*image.NRGBA); ok && n.Rect.Min == (image.Point{}) {
		return n
	}
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Rect, src, b.Min, draw.Src)
	return dst
}

// sampler reads an NRGBA image in pixel coordinates where (0.5, 0.5) is the
// center of the first pixel.
type sampler struct {
	img  *image.NRGBA
	w, h int
	edge EdgeMode
}

// at samples bilinearly at (px, py). Interpolation is done on premultiplied
// values so transparent neighbors do not bleed their color.
func (s sampler) at(px, py float64) [4]uint8 {
	fw, fh := float64(s.w), float64(s.h)
	fade := 1.0
	if px < 0 || py < 0 || px > fw || py > fh {
		switch s.edge {
		case EdgeTransparent:
			return [4]uint8{}
		case EdgeFade:
			dx := (px - clampRange(px, 0, fw)) / fw
			dy := (py - clampRange(py, 0, fh)) / fh
			fade = math.Max(0, 1-math.Hypot(dx, dy))
			if fade == 0 {
				return [4]uint8{}
			}
		}
	}

	px -= 0.5
	py -= 0.5
	x0f, y0f := math.Floor(px), math.Floor(py)
	tx, ty := px-x0f, py-y0f
	x0, y0 := int(x0f), int(y0f)

	c00 := s.premul(x0, y0)
	c10 := s.premul(x0+1, y0)
	c01 := s.premul(x0, y0+1)
	c11 := s.premul(x0+1, y0+1)

	var acc [4]float64
	for i := range acc {
		top := c00[i] + (c10[i]-c00[i])*tx
		bot := c01[i] + (c11[i]-c01[i])*tx
		acc[i] = (top + (bot-top)*ty) * fade
	}

	a := acc[3]
	if a <= 0 {
		return [4]uint8{}
	}
	return [4]uint8{
		toByte(acc[0] / a),
		toByte(acc[1] / a),
		toByte(acc[2] / a),
		toByte(a),
	}
}

// premul returns the premultiplied color of the texel at (x, y), clamped to
// the image, with components in [0, 1].
func (s sampler) premul(x, y int) [4]float64 {
	x = min(max(x, 0), s.w-1)
	y = min(max(y, 0), s.h-1)
	i := y*s.img.Stride + x*4
	p := s.img.Pix[i : i+4 : i+4]
	a := float64(p[3]) / 255
	return [4]float64{
		float64(p[0]) / 255 * a,
		float64(p[1]) / 255 * a,
		float64(p[2]) / 255 * a,
		a,
	}
}

func clampRange(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func toByte(v float64) uint8 {
	return uint8(clampRange(v, 0, 1)*255 + 0.5)
}
