package player

import (
	"testing"
	"time"
)

func TestAdvance_PausedHoldsPosition(t *testing.T) {
	p := New(10000)
	start := time.Now()
	p.Advance(start)
	p.Advance(start.Add(2 * time.Second))
	if got := p.PositionMs(); got != 0 {
		t.Fatalf("paused position = %d, want 0", got)
	}
}

func TestAdvance_PlayingFollowsWallClock(t *testing.T) {
	p := New(10000)
	p.Toggle()
	start := time.Now()
	p.Advance(start)
	p.Advance(start.Add(1500 * time.Millisecond))
	if got := p.PositionMs(); got != 1500 {
		t.Fatalf("position = %d, want 1500", got)
	}
}

func TestAdvance_StopsAtEnd(t *testing.T) {
	p := New(1000)
	p.Toggle()
	start := time.Now()
	p.Advance(start)
	p.Advance(start.Add(5 * time.Second))
	if got := p.PositionMs(); got != 1000 {
		t.Fatalf("position = %d, want clamped 1000", got)
	}
	if p.Playing() {
		t.Fatalf("still playing past the end of the asset")
	}
}

func TestToggle_AtEndRestartsFromZero(t *testing.T) {
	p := New(1000)
	p.SeekMs(1000)
	p.Toggle()
	if got := p.PositionMs(); got != 0 {
		t.Fatalf("position after restart = %d, want 0", got)
	}
	if !p.Playing() {
		t.Fatalf("not playing after toggle")
	}
}

func TestToggle_NoDurationStaysPaused(t *testing.T) {
	p := New(0)
	p.Toggle()
	if p.Playing() {
		t.Fatalf("player with zero duration started playing")
	}
}

func TestSeekMs_Clamps(t *testing.T) {
	p := New(5000)
	p.SeekMs(-100)
	if got := p.PositionMs(); got != 0 {
		t.Fatalf("position = %d, want 0", got)
	}
	p.SeekMs(99999)
	if got := p.PositionMs(); got != 5000 {
		t.Fatalf("position = %d, want 5000", got)
	}
}

func TestSetDuration_ClampsPositionAndStops(t *testing.T) {
	p := New(60000)
	p.SeekMs(30000)
	p.SetDuration(5000)
	if got := p.PositionMs(); got != 5000 {
		t.Fatalf("position = %d, want re-clamped 5000", got)
	}

	p.Toggle()
	p.SetDuration(0)
	if p.Playing() {
		t.Fatalf("still playing with zero duration")
	}
}

func TestParseProbeOutput(t *testing.T) {
	if ms, ok := parseProbeOutput("12.345\n"); !ok || ms != 12345 {
		t.Fatalf("parseProbeOutput(12.345) = %d, %v, want 12345, true", ms, ok)
	}
	for _, out := range []string{"", "N/A", "-3", "0", "inf"} {
		if ms, ok := parseProbeOutput(out); ok {
			t.Fatalf("parseProbeOutput(%q) = %d, want rejection", out, ms)
		}
	}
}
