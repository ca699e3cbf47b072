package ui

import (
	"math"

	"github.com/cutline/cutline/internal/timeline"
)

// Track display constants.
const (
	// trackRows is the height of the range track band.
	trackRows = 3

	// minUsableHeight is the smallest terminal height that fits the full
	// layout; below it rows at the bottom are simply not drawn.
	minUsableHeight = 11

	// wheelStepPx is the pan distance of one wheel notch, in cells.
	wheelStepPx = 3.0

	// keyZoomFactor is the span ratio applied per keyboard zoom press.
	keyZoomFactor = 1.25
)

// layout maps terminal rows to editor surfaces. Columns map one-to-one to
// timeline pixel units, so x coordinates pass straight through.
type layout struct {
	width       int
	headerRow   int
	labelRow    int
	tickRow     int
	trackTop    int
	overviewRow int
	footerRow   int
}

func newLayout(width, height int) layout {
	return layout{
		width:       width,
		headerRow:   0,
		labelRow:    2,
		tickRow:     3,
		trackTop:    4,
		overviewRow: 4 + trackRows + 1,
		footerRow:   height - 1,
	}
}

// onTimeline reports whether row is part of the scrub/edit surface: the
// ruler rows and the track band.
func (l layout) onTimeline(row int) bool {
	return row >= l.labelRow && row < l.trackTop+trackRows
}

func (l layout) onOverview(row int) bool {
	return row == l.overviewRow
}

// colForMs converts a time to a track column. The result may fall outside
// [0, width) for off-screen times.
func colForMs(v timeline.Viewport, ms int64) int {
	return int(math.Round(float64(ms-v.StartMs) / v.MsPerPixel()))
}

// hitTest resolves a pointer position against the current layout. Handles
// win over the playhead, the playhead wins over the bare track.
func (m Model) hitTest(x, y float64) timeline.Hit {
	l := newLayout(m.width, m.height)
	row := int(math.Round(y))

	switch {
	case l.onOverview(row):
		if m.vp.DurationMs > 0 {
			w := float64(l.width)
			d := float64(m.vp.DurationMs)
			startCol := float64(m.vp.StartMs) / d * w
			endCol := float64(m.vp.EndMs()) / d * w
			if x >= startCol && x <= endCol {
				return timeline.Hit{Target: timeline.TargetOverviewWindow}
			}
		}
		return timeline.Hit{Target: timeline.TargetOverview}

	case l.onTimeline(row):
		if id, target, ok := m.hitHandle(x); ok {
			return timeline.Hit{Target: target, RangeID: id}
		}
		playheadCol := float64(colForMs(*m.vp, m.player.PositionMs()))
		if math.Abs(x-playheadCol) <= m.cfg.Interaction.PlayheadSlopPx {
			return timeline.Hit{Target: timeline.TargetPlayhead}
		}
		return timeline.Hit{Target: timeline.TargetTrack}
	}

	return timeline.Hit{Target: timeline.TargetNone}
}

// hitHandle finds the nearest visible range edge within the handle slop.
func (m Model) hitHandle(x float64) (int64, timeline.Target, bool) {
	slop := m.cfg.Interaction.HandleSlopPx
	var (
		bestID     int64
		bestTarget timeline.Target
		bestDist   = math.Inf(1)
	)
	for _, r := range m.ranges {
		if r.EndMs < m.vp.StartMs || r.StartMs > m.vp.EndMs() {
			continue
		}
		startCol := float64(colForMs(*m.vp, r.StartMs))
		endCol := float64(colForMs(*m.vp, r.EndMs))
		if d := math.Abs(x - startCol); d <= slop && d < bestDist {
			bestID, bestTarget, bestDist = r.ID, timeline.TargetHandleStart, d
		}
		if d := math.Abs(x - endCol); d <= slop && d < bestDist {
			bestID, bestTarget, bestDist = r.ID, timeline.TargetHandleEnd, d
		}
	}
	if math.IsInf(bestDist, 1) {
		return 0, timeline.TargetNone, false
	}
	return bestID, bestTarget, true
}
