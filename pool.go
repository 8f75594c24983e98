package bulgepinch

import (
	"image"
	"math/bits"

	"github.com/hajimehoshi/ebiten/v2"
)

// renderTexturePool manages reusable offscreen images for filter chains,
// keyed by power-of-two dimensions. After warmup, Acquire/Release are
// zero-alloc.
type renderTexturePool struct {
	buckets map[uint64][]*ebiten.Image
}

// poolKey packs power-of-two width and height into a single uint64.
func poolKey(w, h int) uint64 {
	return uint64(w)<<32 | uint64(h)
}

// Acquire returns a cleared offscreen image with at least (w, h) pixels.
// Dimensions are rounded up to the next power of two.
func (p *renderTexturePool) Acquire(w, h int) *ebiten.Image {
	pw := nextPowerOfTwo(w)
	ph := nextPowerOfTwo(h)
	key := poolKey(pw, ph)

	if stack := p.buckets[key]; len(stack) > 0 {
		img := stack[len(stack)-1]
		p.buckets[key] = stack[:len(stack)-1]
		img.Clear()
		return img
	}

	return ebiten.NewImageWithOptions(
		image.Rect(0, 0, pw, ph),
		&ebiten.NewImageOptions{Unmanaged: true},
	)
}

// Release returns an image to the pool. The image is cleared on the next
// Acquire, not here.
func (p *renderTexturePool) Release(img *ebiten.Image) {
	if img == nil {
		return
	}
	b := img.Bounds()
	key := poolKey(b.Dx(), b.Dy())

	if p.buckets == nil {
		p.buckets = make(map[uint64][]*ebiten.Image)
	}
	p.buckets[key] = append(p.buckets[key], img)
}

// Len returns the number of idle images held by the pool.
func (p *renderTexturePool) Len() int {
	n := 0
	for _, stack := range p.buckets {
		n += len(stack)
	}
	return n
}

// Dispose deallocates every idle image.
func (p *renderTexturePool) Dispose() {
	for key, stack := range p.buckets {
		for _, img := range stack {
			img.Deallocate()
		}
		delete(p.buckets, key)
	}
}

// nextPowerOfTwo returns the smallest power of two >= n (minimum 1).
func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}
