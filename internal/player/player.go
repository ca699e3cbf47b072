// Package player simulates playback position over an asset of known
// duration. It stands in for a real decoder: the UI reads position and
// duration and requests seeks, nothing more.
package player

import (
	"math"
	"time"
)

// Player advances a playback position against the wall clock while playing.
// All times are integer milliseconds.
type Player struct {
	durationMs int64
	positionMs int64
	playing    bool
	rate       float64
	lastTick   time.Time
}

// New returns a paused player at position zero.
func New(durationMs int64) *Player {
	if durationMs < 0 {
		durationMs = 0
	}
	return &Player{durationMs: durationMs, rate: 1.0}
}

// Advance moves the position forward by the wall-clock time elapsed since
// the previous call. The UI calls it once per frame tick. Playback stops at
// the end of the asset.
func (p *Player) Advance(now time.Time) {
	if p.lastTick.IsZero() {
		p.lastTick = now
		return
	}
	elapsed := now.Sub(p.lastTick)
	p.lastTick = now

	if !p.playing || p.durationMs <= 0 || elapsed <= 0 {
		return
	}
	p.positionMs += int64(math.Round(elapsed.Seconds() * 1000 * p.rate))
	if p.positionMs >= p.durationMs {
		p.positionMs = p.durationMs
		p.playing = false
	}
}

// SeekMs moves the position, clamped into [0, duration].
func (p *Player) SeekMs(ms int64) {
	p.positionMs = p.clamp(ms)
}

// Toggle flips between playing and paused. Toggling play at the end of the
// asset restarts from the beginning.
func (p *Player) Toggle() {
	if p.durationMs <= 0 {
		return
	}
	if !p.playing && p.positionMs >= p.durationMs {
		p.positionMs = 0
	}
	p.playing = !p.playing
}

// Pause stops playback.
func (p *Player) Pause() { p.playing = false }

// Playing reports whether the position is advancing.
func (p *Player) Playing() bool { return p.playing }

// PositionMs returns the current playback position.
func (p *Player) PositionMs() int64 { return p.positionMs }

// DurationMs returns the asset duration.
func (p *Player) DurationMs() int64 { return p.durationMs }

// SetDuration replaces the asset duration, e.g. once probed metadata
// arrives, and re-clamps the position.
func (p *Player) SetDuration(durationMs int64) {
	if durationMs < 0 {
		durationMs = 0
	}
	p.durationMs = durationMs
	p.positionMs = p.clamp(p.positionMs)
	if durationMs <= 0 {
		p.playing = false
	}
}

func (p *Player) clamp(ms int64) int64 {
	if ms < 0 {
		return 0
	}
	if ms > p.durationMs {
		return p.durationMs
	}
	return ms
}
