package bulgepinch

import (
	"fmt"
	"os"
	"time"
)

// renderStats holds per-call timing and work split metrics.
// Only reported when Renderer.Debug is true.
type renderStats struct {
	width, height int
	bands         int
	workers       int
	convertTime   time.Duration
	warpTime      time.Duration
}

// pixelsPerSecond returns the warp throughput, or 0 when no time was measured.
func (s renderStats) pixelsPerSecond() float64 {
	if s.warpTime <= 0 {
		return 0
	}
	return float64(s.width*s.height) / s.warpTime.Seconds()
}

// debugLog prints timing stats to stderr.
func (r *Renderer) debugLog(stats renderStats) {
	if !r.Debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[bulgepinch] render %dx%d | convert: %v | warp: %v | %.0f px/s\n",
		stats.width, stats.height, stats.convertTime, stats.warpTime, stats.pixelsPerSecond())
	_, _ = fmt.Fprintf(os.Stderr,
		"[bulgepinch] bands: %d | workers: %d | edge: %s\n",
		stats.bands, stats.workers, r.Edge)
}
