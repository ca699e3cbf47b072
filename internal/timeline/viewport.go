// Package timeline implements the interactive core of the trim editor: the
// pannable, zoomable viewport over the asset, ruler tick generation, snap
// correction, the pointer drag state machine, and seek coalescing.
//
// The package is layout-agnostic: positions are abstract pixel units, and
// hit testing is injected by the rendering layer. All invalid input is
// absorbed by clamping; nothing here panics or returns errors.
package timeline

import "math"

// MinSpanMs is the tightest zoom the viewport allows on assets longer than
// it. Shorter assets zoom no tighter than their own duration.
const MinSpanMs = 2000

// Viewport is the visible time window over the asset.
type Viewport struct {
	StartMs      int64
	SpanMs       int64
	DurationMs   int64
	TrackWidthPx int
}

// NewViewport returns a viewport covering the whole asset.
func NewViewport(durationMs int64) Viewport {
	v := Viewport{}
	v.SpanMs = durationMs
	v.SetDuration(durationMs)
	return v
}

// EndMs returns the exclusive end of the visible window.
func (v Viewport) EndMs() int64 { return v.StartMs + v.SpanMs }

// SetDuration re-clamps the window after the asset duration changes. A zero
// or negative duration collapses the window to [0,1): no usable timeline.
func (v *Viewport) SetDuration(durationMs int64) {
	v.DurationMs = durationMs
	if durationMs <= 0 {
		v.StartMs, v.SpanMs = 0, 1
		return
	}
	if v.SpanMs < v.minSpan() {
		v.SpanMs = v.minSpan()
	}
	if v.SpanMs > durationMs {
		v.SpanMs = durationMs
	}
	v.StartMs = v.clampStart(v.StartMs)
}

// MsPerPixel converts span to per-pixel density. An unknown or zero track
// width falls back to max(1, span) so conversions stay monotonic.
func (v Viewport) MsPerPixel() float64 {
	if v.TrackWidthPx <= 0 {
		if v.SpanMs > 1 {
			return float64(v.SpanMs)
		}
		return 1
	}
	return float64(v.SpanMs) / float64(v.TrackWidthPx)
}

// PixelToMs converts a track-relative x offset to a time, clamped to the
// track bounds and then to [0, duration].
func (v Viewport) PixelToMs(x float64) int64 {
	if math.IsNaN(x) {
		x = 0
	}
	if x < 0 {
		x = 0
	}
	if v.TrackWidthPx > 0 && x > float64(v.TrackWidthPx) {
		x = float64(v.TrackWidthPx)
	}
	ms := float64(v.StartMs) + x*v.MsPerPixel()
	return v.ClampMs(int64(math.Round(ms)))
}

// MsToRatio places ms within the visible window as a 0..1 ratio.
func (v Viewport) MsToRatio(ms int64) float64 {
	span := v.SpanMs
	if span < 1 {
		span = 1
	}
	r := float64(ms-v.StartMs) / float64(span)
	if r < 0 {
		return 0
	}
	if r > 1 {
		return 1
	}
	return r
}

// ClampMs clamps ms into [0, duration].
func (v Viewport) ClampMs(ms int64) int64 {
	if ms < 0 {
		return 0
	}
	if v.DurationMs > 0 && ms > v.DurationMs {
		return v.DurationMs
	}
	return ms
}

// Zoom resizes the window to targetSpanMs while keeping anchorMs at the same
// screen ratio. Zoom is a no-op on an unusable timeline.
func (v *Viewport) Zoom(targetSpanMs, anchorMs int64, anchorRatio float64) {
	if v.DurationMs <= 0 {
		return
	}
	if targetSpanMs < v.minSpan() {
		targetSpanMs = v.minSpan()
	}
	if targetSpanMs > v.DurationMs {
		targetSpanMs = v.DurationMs
	}
	start := int64(math.Round(float64(anchorMs) - anchorRatio*float64(targetSpanMs)))
	v.SpanMs = targetSpanMs
	v.StartMs = v.clampStart(start)
}

// Pan shifts the window by deltaMs, clamped inside the asset.
func (v *Viewport) Pan(deltaMs int64) {
	v.StartMs = v.clampStart(v.StartMs + deltaMs)
}

// Recenter moves the window so ms sits at its midpoint.
func (v *Viewport) Recenter(ms int64) {
	v.StartMs = v.clampStart(ms - v.SpanMs/2)
}

func (v Viewport) minSpan() int64 {
	if v.DurationMs <= 0 {
		return 1
	}
	if v.DurationMs < MinSpanMs {
		return v.DurationMs
	}
	return MinSpanMs
}

func (v Viewport) clampStart(start int64) int64 {
	max := v.DurationMs - v.SpanMs
	if max < 0 {
		max = 0
	}
	if start < 0 {
		return 0
	}
	if start > max {
		return max
	}
	return start
}
