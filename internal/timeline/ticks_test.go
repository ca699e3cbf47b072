package timeline

import (
	"strings"
	"testing"
)

func ladderContains(step int64) bool {
	for _, s := range tickLadder {
		if s == step {
			return true
		}
	}
	return false
}

func TestMajorStep_PicksFromLadder(t *testing.T) {
	densities := []float64{0.1, 1, 7.5, 50, 123, 1000, 1e6}
	for _, d := range densities {
		step := MajorStep(d)
		if !ladderContains(step) {
			t.Fatalf("MajorStep(%v) = %d, not a ladder value", d, step)
		}
	}
}

func TestMajorStep_KeepsMajorsApart(t *testing.T) {
	step := MajorStep(10) // 10 ms/px => majors need >= 1000 ms
	if step != 1000 {
		t.Fatalf("MajorStep(10) = %d, want 1000", step)
	}
}

func TestMajorStep_SaturatesAtLadderTop(t *testing.T) {
	if step := MajorStep(1e9); step != 3600000 {
		t.Fatalf("MajorStep(1e9) = %d, want 3600000", step)
	}
}

func TestTicks_AscendingAndBounded(t *testing.T) {
	v := Viewport{StartMs: 30000, SpanMs: 30000, DurationMs: 600000, TrackWidthPx: 120}
	major := MajorStep(v.MsPerPixel())
	ticks := Ticks(v)
	if len(ticks) == 0 {
		t.Fatalf("Ticks returned no marks")
	}
	prev := int64(-1)
	for _, tick := range ticks {
		if tick.Ms <= prev {
			t.Fatalf("ticks out of order: %d after %d", tick.Ms, prev)
		}
		prev = tick.Ms
		if tick.Ms < v.StartMs-major || tick.Ms > v.EndMs()+major {
			t.Fatalf("tick %d outside [%d, %d]", tick.Ms, v.StartMs-major, v.EndMs()+major)
		}
		if tick.Ms < 0 {
			t.Fatalf("negative tick %d", tick.Ms)
		}
	}
}

func TestTicks_MajorsCarryLabels(t *testing.T) {
	v := Viewport{StartMs: 0, SpanMs: 60000, DurationMs: 600000, TrackWidthPx: 120}
	for _, tick := range Ticks(v) {
		if tick.Major && tick.Label == "" {
			t.Fatalf("major tick %d has no label", tick.Ms)
		}
		if !tick.Major && tick.Label != "" {
			t.Fatalf("minor tick %d has label %q", tick.Ms, tick.Label)
		}
	}
}

func TestTicks_SubSecondStepsIncludeMillis(t *testing.T) {
	// 1 ms/px over a 1000 px track: major step 100 ms.
	v := Viewport{StartMs: 0, SpanMs: 2000, DurationMs: 10000, TrackWidthPx: 2000}
	if step := MajorStep(v.MsPerPixel()); step >= 1000 {
		t.Fatalf("MajorStep = %d, want sub-second step for this density", step)
	}
	for _, tick := range Ticks(v) {
		if tick.Major && !strings.Contains(tick.Label, ".") {
			t.Fatalf("sub-second major label %q lacks millisecond component", tick.Label)
		}
	}
}

func TestTicks_SecondStepsOmitMillisAndZeroHour(t *testing.T) {
	v := Viewport{StartMs: 0, SpanMs: 60000, DurationMs: 600000, TrackWidthPx: 120}
	for _, tick := range Ticks(v) {
		if !tick.Major {
			continue
		}
		if strings.Contains(tick.Label, ".") {
			t.Fatalf("label %q carries millis for a second-scale step", tick.Label)
		}
		if strings.Count(tick.Label, ":") != 1 {
			t.Fatalf("label %q should be MM:SS below one hour", tick.Label)
		}
	}
}

func TestTicks_FourMinorsBetweenMajors(t *testing.T) {
	v := Viewport{StartMs: 10000, SpanMs: 60000, DurationMs: 600000, TrackWidthPx: 600}
	ticks := Ticks(v)

	// Count minors strictly between two consecutive interior majors.
	var majors []int64
	for _, tick := range ticks {
		if tick.Major {
			majors = append(majors, tick.Ms)
		}
	}
	if len(majors) < 3 {
		t.Fatalf("expected at least 3 majors, got %d", len(majors))
	}
	lo, hi := majors[1], majors[2]
	minors := 0
	for _, tick := range ticks {
		if !tick.Major && tick.Ms > lo && tick.Ms < hi {
			minors++
		}
	}
	if minors != 4 {
		t.Fatalf("minors between majors %d and %d = %d, want 4", lo, hi, minors)
	}
}
