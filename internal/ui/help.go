package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// helpGroupTitles name the binding groups of keyMap.FullHelp, in order.
var helpGroupTitles = []string{"Playback", "Ranges", "Viewport", "General"}

// renderHelp renders the help overlay: the keyboard bindings from the
// keyMap plus the pointer gestures, which have no binding to derive from.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()

	var b strings.Builder

	title := styles.Text.Bold(true).Render("Keyboard & Mouse")
	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 34)))
	b.WriteString("\n\n")

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.Selected)).
		Width(15)

	for i, group := range m.keys.FullHelp() {
		if i < len(helpGroupTitles) {
			b.WriteString(styles.AccentText.Bold(true).Render(helpGroupTitles[i]))
			b.WriteString("\n")
		}
		for _, binding := range group {
			h := binding.Help()
			b.WriteString(keyStyle.Render(h.Key))
			b.WriteString(styles.Text.Render(h.Desc))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(styles.AccentText.Bold(true).Render("Mouse"))
	b.WriteString("\n")
	mouse := []struct{ key, desc string }{
		{"click track", "Scrub to position"},
		{"drag playhead", "Scrub"},
		{"shift+drag", "Mark a new range"},
		{"drag edge", "Resize (ctrl = fine)"},
		{"alt", "Widen snap while dragging"},
		{"wheel", "Pan (ctrl = zoom at pointer)"},
		{"overview", "Click to recenter, drag window"},
	}
	for _, item := range mouse {
		b.WriteString(keyStyle.Render(item.key))
		b.WriteString(styles.Text.Render(item.desc))
		b.WriteString("\n")
	}

	modalWidth := 48

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(1, 2).
		Width(modalWidth)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(strings.TrimRight(b.String(), "\n")),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}
