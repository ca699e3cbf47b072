package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cutline/cutline/internal/ranges"
	"github.com/cutline/cutline/internal/timecode"
)

// editorState holds the bounds-editing overlay: two timecode fields over
// the selected range.
type editorState struct {
	active   bool
	rangeID  int64
	inputs   [2]textinput.Model
	focusIdx int
}

// openEditor opens the bounds editor for the selected range.
func (m *Model) openEditor() {
	idx := ranges.IndexOf(m.ranges, m.selectedID)
	if idx < 0 {
		return
	}
	r := m.ranges[idx]

	for i := range m.editor.inputs {
		in := textinput.New()
		in.CharLimit = 16
		in.Width = 14
		in.Prompt = ""
		m.editor.inputs[i] = in
	}
	m.editor.inputs[0].SetValue(timecode.Format(r.StartMs))
	m.editor.inputs[1].SetValue(timecode.Format(r.EndMs))
	m.editor.inputs[0].Focus()
	m.editor.focusIdx = 0
	m.editor.rangeID = r.ID
	m.editor.active = true
}

// handleEditorKey routes keys while the bounds editor is open.
func (m Model) handleEditorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.editor.active = false
		return m, nil

	case key.Matches(msg, m.keys.Tab):
		m.editor.inputs[m.editor.focusIdx].Blur()
		m.editor.focusIdx = (m.editor.focusIdx + 1) % len(m.editor.inputs)
		m.editor.inputs[m.editor.focusIdx].Focus()
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		m.commitEditor()
		return m, nil
	}

	var cmd tea.Cmd
	m.editor.inputs[m.editor.focusIdx], cmd = m.editor.inputs[m.editor.focusIdx].Update(msg)
	return m, cmd
}

// commitEditor parses both fields and applies the new bounds. A field that
// fails to parse, or a pair that does not form a valid interval, reverts to
// the range's current bounds; the editor stays open so the user sees the
// revert.
func (m *Model) commitEditor() {
	idx := ranges.IndexOf(m.ranges, m.editor.rangeID)
	if idx < 0 {
		m.editor.active = false
		return
	}
	current := m.ranges[idx]

	lo, okLo := timecode.Parse(m.editor.inputs[0].Value())
	hi, okHi := timecode.Parse(m.editor.inputs[1].Value())
	if !okLo {
		m.editor.inputs[0].SetValue(timecode.Format(current.StartMs))
	}
	if !okHi {
		m.editor.inputs[1].SetValue(timecode.Format(current.EndMs))
	}
	if !okLo || !okHi {
		return
	}

	hi = m.vp.ClampMs(hi)
	next, ok := ranges.Sanitize(current.ID, float64(lo), float64(hi))
	if !ok {
		m.editor.inputs[0].SetValue(timecode.Format(current.StartMs))
		m.editor.inputs[1].SetValue(timecode.Format(current.EndMs))
		return
	}

	proposal := ranges.Clone(m.ranges)
	proposal[idx] = next
	merged := ranges.Merge(proposal)
	m.ranges = merged
	m.selectedID = next.ID
	if r, ok := ranges.At(merged, next.StartMs); ok {
		m.selectedID = r.ID
	}
	m.editor.active = false
}

// renderEditor renders the bounds-editing overlay.
func (m Model) renderEditor() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Edit Range"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 24)))
	b.WriteString("\n\n")
	b.WriteString(styles.MutedText.Render("start  "))
	b.WriteString(m.editor.inputs[0].View())
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("end    "))
	b.WriteString(m.editor.inputs[1].View())
	b.WriteString("\n\n")
	b.WriteString(styles.FaintText.Render("enter apply · tab next field · esc cancel"))

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(1, 2).
		Width(36)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(b.String()),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}
