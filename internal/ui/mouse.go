package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cutline/cutline/internal/timeline"
)

// handleMouse translates terminal mouse reports into pointer and wheel
// events for the drag machine. Terminal mouse reporting keeps delivering
// motion to us while a button is held, so pointer capture is implicit.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.showHelp || m.editor.active {
		return m, nil
	}

	mod := pointerModifiers(msg)

	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown,
		tea.MouseButtonWheelLeft, tea.MouseButtonWheelRight:
		m.applyEffects(m.machine.Wheel(wheelEvent(msg, mod), m.frame()))
		return m, nil
	}

	ev := timeline.PointerEvent{X: float64(msg.X), Y: float64(msg.Y), Mod: mod}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.applyEffects(m.machine.PointerDown(ev, m.frame(), m.hitTest))
		}

	case tea.MouseActionMotion:
		if m.machine.Dragging() {
			m.applyEffects(m.machine.PointerMove(ev, m.frame()))
		}

	case tea.MouseActionRelease:
		if m.machine.Dragging() {
			m.applyEffects(m.machine.PointerUp(ev, m.frame()))
		}
	}

	return m, nil
}

func pointerModifiers(msg tea.MouseMsg) timeline.Modifiers {
	return timeline.Modifiers{
		Create: msg.Shift,
		Fine:   msg.Ctrl,
		Zoom:   msg.Ctrl,
		Wide:   msg.Alt,
	}
}

// wheelEvent maps a wheel notch onto the machine's delta convention: one
// notch moves wheelStepPx cells, up and left are negative.
func wheelEvent(msg tea.MouseMsg, mod timeline.Modifiers) timeline.WheelEvent {
	ev := timeline.WheelEvent{X: float64(msg.X), Y: float64(msg.Y), Mod: mod}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		ev.DeltaY = -wheelStepPx
	case tea.MouseButtonWheelDown:
		ev.DeltaY = wheelStepPx
	case tea.MouseButtonWheelLeft:
		ev.DeltaX = -wheelStepPx
	case tea.MouseButtonWheelRight:
		ev.DeltaX = wheelStepPx
	}
	return ev
}
