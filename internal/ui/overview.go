package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/cutline/cutline/internal/prefs"
)

// renderOverview renders the whole-asset strip: marked ranges at duration
// scale, the visible-window indicator, and the playhead.
func (m Model) renderOverview() string {
	styles := m.theme.Styles()
	w := m.width
	if w <= 0 {
		return ""
	}

	cells, classes := blankRow(w, '╌')
	d := m.player.DurationMs()
	if d <= 0 {
		return renderClassed(cells, classes, map[cellClass]lipgloss.Style{classBed: styles.TrackBed})
	}

	col := func(ms int64) int {
		c := int(float64(ms) / float64(d) * float64(w))
		if c < 0 {
			c = 0
		}
		if c > w-1 {
			c = w - 1
		}
		return c
	}

	for _, r := range m.ranges {
		for c := col(r.StartMs); c <= col(r.EndMs); c++ {
			cells[c] = '█'
			classes[c] = classRange
		}
	}

	// The window indicator overlays whatever is under it.
	for c := col(m.vp.StartMs); c <= col(m.vp.EndMs()); c++ {
		if classes[c] == classRange {
			classes[c] = classWindowRange
		} else {
			cells[c] = '═'
			classes[c] = classWindow
		}
	}

	if c := col(m.player.PositionMs()); c >= 0 && c < w {
		cells[c] = '│'
		classes[c] = classPlayhead
	}

	rangeStyle := styles.Keep
	if m.mode == prefs.ModeDelete {
		rangeStyle = styles.Delete
	}
	return renderClassed(cells, classes, map[cellClass]lipgloss.Style{
		classBed:         styles.TrackBed,
		classRange:       rangeStyle,
		classWindow:      styles.Window,
		classWindowRange: styles.Selected,
		classPlayhead:    styles.Playhead,
	})
}
