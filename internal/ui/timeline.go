package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/cutline/cutline/internal/prefs"
	"github.com/cutline/cutline/internal/ranges"
	"github.com/cutline/cutline/internal/timecode"
	"github.com/cutline/cutline/internal/timeline"
)

// renderHeader renders the transport line: asset name, position over
// duration, play state, mode with the total marked time, and snapping.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()

	name := m.mediaName
	if name == "" {
		name = "(no media)"
	}

	state := "⏸"
	if m.player.Playing() {
		state = "▶"
	}

	transport := fmt.Sprintf("%s %s / %s",
		state,
		timecode.Format(m.player.PositionMs()),
		timecode.Format(m.player.DurationMs()),
	)

	marked := timecode.FormatCompact(ranges.TotalWidth(m.ranges), false)
	line := fmt.Sprintf("cutline  %s  %s  [%s %s]  snap:%s",
		name, transport, m.mode, marked, onOff(m.snapping))
	return styles.Header.Width(m.width).Render(line)
}

// renderFooter renders the key hint bar from the key bindings.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()

	bindings := []key.Binding{
		m.keys.PlayPause, m.keys.AddRange, m.keys.Delete,
		m.keys.Edit, m.keys.ToggleSnap, m.keys.ToggleMode,
	}
	bindings = append(bindings, m.keys.ShortHelp()...)

	parts := make([]string, 0, len(bindings)+1)
	parts = append(parts, "shift+drag Mark")
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return styles.Footer.Width(m.width).Render(strings.Join(parts, " · "))
}

// renderRuler renders the label row and the tick row for the visible window.
func (m Model) renderRuler() (string, string) {
	styles := m.theme.Styles()
	w := m.width
	if w <= 0 {
		return "", ""
	}

	labels, _ := blankRow(w, ' ')
	cells, classes := blankRow(w, '─')
	for i := range classes {
		classes[i] = classRuler
	}

	lastLabelEnd := -1
	for _, t := range timeline.Ticks(*m.vp) {
		col := colForMs(*m.vp, t.Ms)
		if col < 0 || col >= w {
			continue
		}
		if t.Major {
			cells[col] = '┼'
			classes[col] = classRulerMajor
			lastLabelEnd = placeLabel(labels, t.Label, col, lastLabelEnd)
		} else if cells[col] == '─' {
			cells[col] = '╵'
		}
	}

	if col := colForMs(*m.vp, m.player.PositionMs()); col >= 0 && col < w {
		cells[col] = '│'
		classes[col] = classPlayhead
	}

	styleMap := map[cellClass]lipgloss.Style{
		classRuler:      styles.Ruler,
		classRulerMajor: styles.Text,
		classPlayhead:   styles.Playhead,
	}
	return styles.MutedText.Render(string(labels)), renderClassed(cells, classes, styleMap)
}

// placeLabel writes label centered on col, skipping labels that would
// overlap the previous one. Returns the new high-water column.
func placeLabel(row []rune, label string, col, lastEnd int) int {
	lw := runewidth.StringWidth(label)
	start := col - lw/2
	if start < 0 {
		start = 0
	}
	if start+lw > len(row) {
		start = len(row) - lw
	}
	if start <= lastEnd+1 {
		return lastEnd
	}
	copy(row[start:], []rune(label))
	return start + lw - 1
}

// renderTrack renders the range band: trackRows rows of range blocks over a
// dashed bed, with edge handles and the playhead overlaid.
func (m Model) renderTrack() []string {
	styles := m.theme.Styles()
	w := m.width
	if w <= 0 {
		return nil
	}

	rangeStyle := styles.Keep
	if m.mode == prefs.ModeDelete {
		rangeStyle = styles.Delete
	}
	styleMap := map[cellClass]lipgloss.Style{
		classBed:           styles.TrackBed,
		classRange:         rangeStyle,
		classRangeSelected: styles.Selected,
		classHandle:        styles.Handle,
		classPlayhead:      styles.Playhead,
	}

	mid := trackRows / 2
	rows := make([]string, 0, trackRows)
	for row := 0; row < trackRows; row++ {
		fill := ' '
		if row == mid {
			fill = '╌'
		}
		cells, classes := blankRow(w, fill)

		for _, r := range m.ranges {
			startCol := colForMs(*m.vp, r.StartMs)
			endCol := colForMs(*m.vp, r.EndMs)
			if endCol < 0 || startCol >= w {
				continue
			}
			class := classRange
			if r.ID == m.selectedID {
				class = classRangeSelected
			}
			for c := max(startCol, 0); c <= min(endCol, w-1); c++ {
				cells[c] = '█'
				classes[c] = class
			}
			if startCol >= 0 && startCol < w {
				cells[startCol] = '▐'
				classes[startCol] = classHandle
			}
			if endCol >= 0 && endCol < w {
				cells[endCol] = '▌'
				classes[endCol] = classHandle
			}
		}

		if col := colForMs(*m.vp, m.player.PositionMs()); col >= 0 && col < w {
			cells[col] = '│'
			classes[col] = classPlayhead
		}

		rows = append(rows, renderClassed(cells, classes, styleMap))
	}
	return rows
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
