package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding

	// Playback
	PlayPause   key.Binding
	StepBack    key.Binding
	StepForward key.Binding

	// Ranges
	AddRange  key.Binding
	Delete    key.Binding
	NextRange key.Binding
	PrevRange key.Binding
	Edit      key.Binding

	// Viewport
	ZoomIn   key.Binding
	ZoomOut  key.Binding
	PanLeft  key.Binding
	PanRight key.Binding

	// Toggles
	ToggleSnap key.Binding
	ToggleMode key.Binding

	// Editor/input
	Confirm key.Binding
	Cancel  key.Binding
	Tab     key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		// Global
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),

		// Playback
		PlayPause: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("Space", "Play/pause"),
		),
		StepBack: key.NewBinding(
			key.WithKeys(","),
			key.WithHelp(",", "Step back one frame"),
		),
		StepForward: key.NewBinding(
			key.WithKeys("."),
			key.WithHelp(".", "Step forward one frame"),
		),

		// Ranges
		AddRange: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "Add range at playhead"),
		),
		Delete: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "Delete selected range"),
		),
		NextRange: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Select next range"),
		),
		PrevRange: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "Select previous range"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "Edit range bounds"),
		),

		// Viewport
		ZoomIn: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "Zoom in"),
		),
		ZoomOut: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "Zoom out"),
		),
		PanLeft: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "Pan left"),
		),
		PanRight: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "Pan right"),
		),

		// Toggles
		ToggleSnap: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "Toggle snapping"),
		),
		ToggleMode: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "Toggle keep/delete mode"),
		),

		// Editor/input
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Cancel"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Next field"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PlayPause, k.StepBack, k.StepForward},
		{k.AddRange, k.Delete, k.NextRange, k.PrevRange, k.Edit},
		{k.ZoomIn, k.ZoomOut, k.PanLeft, k.PanRight},
		{k.ToggleSnap, k.ToggleMode, k.CycleTheme, k.Help, k.Quit},
	}
}
