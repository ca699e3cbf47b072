package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines colors for the editor surfaces.
type Theme struct {
	Name string

	// Base colors
	Background string // Outermost background
	Surface    string // Header and footer bars
	SurfaceAlt string // Track bed

	// Text colors
	Text   string
	Muted  string
	Faint  string
	Accent string

	// Timeline colors
	Keep     string // range fill in keep mode
	Delete   string // range fill in delete mode
	Selected string // selected range fill
	Handle   string // range edge handles
	Playhead string
	Ruler    string // tick marks
	Window   string // overview window indicator
}

// Styles returns pre-built Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		TrackBed: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.SurfaceAlt)),

		Keep: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Keep)),

		Delete: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Delete)),

		Selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Selected)).
			Bold(true),

		Handle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Handle)).
			Bold(true),

		Playhead: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Playhead)).
			Bold(true),

		Ruler: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Ruler)),

		Window: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Window)),
	}
}

// Styles contains the rendered Lipgloss styles for a theme.
type Styles struct {
	Text       lipgloss.Style
	MutedText  lipgloss.Style
	FaintText  lipgloss.Style
	AccentText lipgloss.Style

	Header   lipgloss.Style
	Footer   lipgloss.Style
	TrackBed lipgloss.Style
	Keep     lipgloss.Style
	Delete   lipgloss.Style
	Selected lipgloss.Style
	Handle   lipgloss.Style
	Playhead lipgloss.Style
	Ruler    lipgloss.Style
	Window   lipgloss.Style
}

// Theme definitions

var themes = map[string]Theme{
	"Dracula":  draculaTheme(),
	"Nightfox": nightfoxTheme(),
	"Slate":    slateTheme(),
}

var themeOrder = []string{"Dracula", "Nightfox", "Slate"}

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return draculaTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return themeOrder
}

func draculaTheme() Theme {
	// Dracula palette: https://draculatheme.com/contribute
	return Theme{
		Name: "Dracula",

		Background: "#282a36", // background
		Surface:    "#44475a", // current line
		SurfaceAlt: "#44475a",

		Text:   "#f8f8f2", // foreground
		Muted:  "#6272a4", // comment
		Faint:  "#44475a",
		Accent: "#bd93f9", // purple

		Keep:     "#50fa7b", // green
		Delete:   "#ff5555", // red
		Selected: "#f1fa8c", // yellow
		Handle:   "#8be9fd", // cyan
		Playhead: "#ff79c6", // pink
		Ruler:    "#6272a4", // comment
		Window:   "#bd93f9", // purple
	}
}

func nightfoxTheme() Theme {
	// Nightfox palette: https://github.com/EdenEast/nightfox.nvim
	return Theme{
		Name: "Nightfox",

		Background: "#131a24", // bg0
		Surface:    "#192330", // bg1
		SurfaceAlt: "#29394f", // bg3

		Text:   "#cdcecf", // fg1
		Muted:  "#738091", // comment
		Faint:  "#39506d", // bg4
		Accent: "#719cd6", // blue

		Keep:     "#81b29a", // green
		Delete:   "#c94f6d", // red
		Selected: "#dbc074", // yellow
		Handle:   "#63cdcf", // cyan
		Playhead: "#9d79d6", // magenta
		Ruler:    "#738091", // comment
		Window:   "#719cd6", // blue
	}
}

func slateTheme() Theme {
	// Tailwind CSS Slate/Sky palette: https://tailwindcss.com/docs/colors
	return Theme{
		Name: "Slate",

		Background: "#020617", // slate-950
		Surface:    "#0f172a", // slate-900
		SurfaceAlt: "#334155", // slate-700

		Text:   "#f1f5f9", // slate-100
		Muted:  "#94a3b8", // slate-400
		Faint:  "#475569", // slate-600
		Accent: "#38bdf8", // sky-400

		Keep:     "#22c55e", // green-500
		Delete:   "#ef4444", // red-500
		Selected: "#f59e0b", // amber-500
		Handle:   "#06b6d4", // cyan-500
		Playhead: "#e879f9", // fuchsia-400
		Ruler:    "#64748b", // slate-500
		Window:   "#38bdf8", // sky-400
	}
}
