package timeline

import (
	"math"
	"testing"
)

func TestNewViewport_CoversAsset(t *testing.T) {
	v := NewViewport(60000)
	if v.StartMs != 0 || v.SpanMs != 60000 {
		t.Fatalf("viewport = [%d span %d], want [0 span 60000]", v.StartMs, v.SpanMs)
	}
}

func TestSetDuration_ZeroCollapsesWindow(t *testing.T) {
	v := NewViewport(0)
	if v.StartMs != 0 || v.SpanMs != 1 {
		t.Fatalf("viewport = [%d span %d], want [0 span 1]", v.StartMs, v.SpanMs)
	}
}

func TestSetDuration_ShrinkReclamps(t *testing.T) {
	v := NewViewport(60000)
	v.SetDuration(5000)
	if v.StartMs != 0 || v.SpanMs != 5000 {
		t.Fatalf("after shrink viewport = [%d span %d], want [0 span 5000]", v.StartMs, v.SpanMs)
	}
}

func TestSetDuration_ShortAssetAllowsFullSpan(t *testing.T) {
	v := NewViewport(1500)
	if v.SpanMs != 1500 {
		t.Fatalf("SpanMs = %d, want 1500 (duration shorter than MinSpanMs)", v.SpanMs)
	}
}

func TestMsPerPixel_FallsBackWithoutWidth(t *testing.T) {
	v := Viewport{SpanMs: 5000}
	if got := v.MsPerPixel(); got != 5000 {
		t.Fatalf("MsPerPixel with zero width = %v, want 5000", got)
	}
	v.SpanMs = 0
	if got := v.MsPerPixel(); got != 1 {
		t.Fatalf("MsPerPixel with zero span and width = %v, want 1", got)
	}
}

func TestPixelToMs_ClampsAndRounds(t *testing.T) {
	v := Viewport{StartMs: 1000, SpanMs: 10000, DurationMs: 60000, TrackWidthPx: 100}
	if got := v.PixelToMs(0); got != 1000 {
		t.Fatalf("PixelToMs(0) = %d, want 1000", got)
	}
	if got := v.PixelToMs(50); got != 6000 {
		t.Fatalf("PixelToMs(50) = %d, want 6000", got)
	}
	if got := v.PixelToMs(-20); got != 1000 {
		t.Fatalf("PixelToMs(-20) = %d, want 1000 (clamped to track)", got)
	}
	if got := v.PixelToMs(1e9); got != 11000 {
		t.Fatalf("PixelToMs(huge) = %d, want 11000 (clamped to track end)", got)
	}
}

func TestPixelToMs_ClampsToDuration(t *testing.T) {
	v := Viewport{StartMs: 55000, SpanMs: 10000, DurationMs: 60000, TrackWidthPx: 100}
	if got := v.PixelToMs(100); got != 60000 {
		t.Fatalf("PixelToMs(100) = %d, want 60000 (clamped to duration)", got)
	}
}

func TestZoom_KeepsAnchorRatioFixed(t *testing.T) {
	v := Viewport{StartMs: 10000, SpanMs: 20000, DurationMs: 120000, TrackWidthPx: 200}
	anchor := int64(15000)
	ratio := v.MsToRatio(anchor)

	v.Zoom(10000, anchor, ratio)
	if got := v.MsToRatio(anchor); math.Abs(got-ratio) > 0.001 {
		t.Fatalf("after zoom MsToRatio(anchor) = %v, want %v", got, ratio)
	}
	if v.SpanMs != 10000 {
		t.Fatalf("SpanMs = %d, want 10000", v.SpanMs)
	}
}

func TestZoom_ClampsSpan(t *testing.T) {
	v := Viewport{StartMs: 0, SpanMs: 20000, DurationMs: 60000}
	v.Zoom(100, 10000, 0.5)
	if v.SpanMs != MinSpanMs {
		t.Fatalf("SpanMs = %d, want %d (minimum span)", v.SpanMs, MinSpanMs)
	}
	v.Zoom(1<<40, 10000, 0.5)
	if v.SpanMs != 60000 {
		t.Fatalf("SpanMs = %d, want 60000 (duration cap)", v.SpanMs)
	}
	if v.StartMs != 0 {
		t.Fatalf("StartMs = %d, want 0 after full zoom out", v.StartMs)
	}
}

func TestZoom_NoOpWithoutDuration(t *testing.T) {
	v := NewViewport(0)
	v.Zoom(5000, 0, 0)
	if v.StartMs != 0 || v.SpanMs != 1 {
		t.Fatalf("viewport = [%d span %d], want unchanged [0 span 1]", v.StartMs, v.SpanMs)
	}
}

func TestPan_ClampsToAsset(t *testing.T) {
	v := Viewport{StartMs: 10000, SpanMs: 20000, DurationMs: 60000}
	v.Pan(-50000)
	if v.StartMs != 0 {
		t.Fatalf("StartMs after left pan = %d, want 0", v.StartMs)
	}
	v.Pan(1 << 40)
	if v.StartMs != 40000 {
		t.Fatalf("StartMs after right pan = %d, want 40000", v.StartMs)
	}
}

func TestMsToRatio_Clamps(t *testing.T) {
	v := Viewport{StartMs: 1000, SpanMs: 1000, DurationMs: 60000}
	if got := v.MsToRatio(0); got != 0 {
		t.Fatalf("MsToRatio(0) = %v, want 0", got)
	}
	if got := v.MsToRatio(1500); got != 0.5 {
		t.Fatalf("MsToRatio(1500) = %v, want 0.5", got)
	}
	if got := v.MsToRatio(10000); got != 1 {
		t.Fatalf("MsToRatio(10000) = %v, want 1", got)
	}
}

func TestRecenter_ClampsAtEdges(t *testing.T) {
	v := Viewport{StartMs: 0, SpanMs: 10000, DurationMs: 60000}
	v.Recenter(500)
	if v.StartMs != 0 {
		t.Fatalf("StartMs = %d, want 0", v.StartMs)
	}
	v.Recenter(30000)
	if v.StartMs != 25000 {
		t.Fatalf("StartMs = %d, want 25000", v.StartMs)
	}
	v.Recenter(59900)
	if v.StartMs != 50000 {
		t.Fatalf("StartMs = %d, want 50000", v.StartMs)
	}
}
