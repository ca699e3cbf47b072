// Package ui renders the cutline editor with Bubble Tea: the transport
// header, ruler, range track, overview strip, and footer, plus the key and
// mouse routing that drives the timeline core.
package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cutline/cutline/internal/config"
	"github.com/cutline/cutline/internal/player"
	"github.com/cutline/cutline/internal/prefs"
	"github.com/cutline/cutline/internal/ranges"
	"github.com/cutline/cutline/internal/timeline"
)

// Options configures the UI.
type Options struct {
	MediaName string
	Player    *player.Player
	Config    config.Config
	Prefs     prefs.Prefs
	PrefsPath string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	cfg       config.Config
	prefsPath string
	mediaName string
	keys      keyMap

	// Collaborators shared across Model copies
	player  *player.Player
	vp      *timeline.Viewport
	machine *timeline.Machine
	coal    *timeline.SeekCoalescer

	// Editor state
	ranges     []ranges.Range
	selectedID int64
	snapping   bool
	mode       string
	theme      Theme

	// UI state
	width    int
	height   int
	ready    bool
	showHelp bool
	editor   editorState
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	p := opts.Player
	if p == nil {
		p = player.New(0)
	}

	cfg := opts.Config
	if cfg.UI.FPS <= 0 {
		cfg.UI.FPS = config.Default().UI.FPS
	}

	vp := timeline.NewViewport(p.DurationMs())
	machine := timeline.NewMachine(timeline.Config{
		MinRangeMs:          cfg.Interaction.MinRangeMs,
		HandleSlopPx:        cfg.Interaction.HandleSlopPx,
		PlayheadSlopPx:      cfg.Interaction.PlayheadSlopPx,
		SnapTolerancePx:     cfg.Interaction.SnapTolerancePx,
		WideSnapTolerancePx: cfg.Interaction.WideSnapTolerancePx,
		FineDragScale:       cfg.Interaction.FineDragScale,
		WheelZoomFactor:     cfg.Interaction.WheelZoomFactor,
	}, &vp)

	mode := opts.Prefs.Mode
	if mode != prefs.ModeKeep && mode != prefs.ModeDelete {
		mode = prefs.ModeKeep
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	return Model{
		cfg:       cfg,
		prefsPath: prefsPath,
		mediaName: opts.MediaName,
		keys:      DefaultKeyMap(),
		player:    p,
		vp:        &vp,
		machine:   machine,
		coal:      &timeline.SeekCoalescer{},
		snapping:  opts.Prefs.Snapping,
		mode:      mode,
		theme:     GetTheme(opts.Prefs.Theme),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		frameCmd(m.frameInterval()),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.vp.TrackWidthPx = msg.Width
		m.ready = true
		return m, nil

	case frameMsg:
		return m.handleFrame(time.Time(msg))
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}
	if m.editor.active {
		return m.renderEditor()
	}

	return m.renderMain()
}

// handleFrame is the render heartbeat: it advances simulated playback,
// flushes at most one coalesced seek, re-clamps the viewport if the asset
// duration changed, and schedules the next frame.
func (m Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	if ms, ok := m.coal.Flush(); ok {
		m.player.SeekMs(ms)
	}
	m.player.Advance(now)
	if d := m.player.DurationMs(); d != m.vp.DurationMs {
		m.vp.SetDuration(d)
	}
	return m, frameCmd(m.frameInterval())
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.editor.active {
		return m.handleEditorKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()

	case key.Matches(msg, m.keys.PlayPause):
		m.player.Toggle()

	case key.Matches(msg, m.keys.StepBack):
		m.requestSeek(m.player.PositionMs() - m.frameStepMs())

	case key.Matches(msg, m.keys.StepForward):
		m.requestSeek(m.player.PositionMs() + m.frameStepMs())

	case key.Matches(msg, m.keys.AddRange):
		m.addRangeAtPlayhead()

	case key.Matches(msg, m.keys.Delete):
		m.deleteSelected()

	case key.Matches(msg, m.keys.NextRange):
		m.cycleSelection(1)

	case key.Matches(msg, m.keys.PrevRange):
		m.cycleSelection(-1)

	case key.Matches(msg, m.keys.Edit):
		m.openEditor()

	case key.Matches(msg, m.keys.ZoomIn):
		m.zoomAroundPlayhead(1 / keyZoomFactor)

	case key.Matches(msg, m.keys.ZoomOut):
		m.zoomAroundPlayhead(keyZoomFactor)

	case key.Matches(msg, m.keys.PanLeft):
		m.vp.Pan(-m.vp.SpanMs / 10)

	case key.Matches(msg, m.keys.PanRight):
		m.vp.Pan(m.vp.SpanMs / 10)

	case key.Matches(msg, m.keys.ToggleSnap):
		m.snapping = !m.snapping
		m.savePrefs()

	case key.Matches(msg, m.keys.ToggleMode):
		if m.mode == prefs.ModeKeep {
			m.mode = prefs.ModeDelete
		} else {
			m.mode = prefs.ModeKeep
		}
		m.savePrefs()
	}

	return m, nil
}

// requestSeek funnels every seek through the coalescer so rapid pointer or
// key repeats collapse to one player seek per frame.
func (m *Model) requestSeek(ms int64) {
	m.coal.Request(m.vp.ClampMs(ms))
}

// addRangeAtPlayhead inserts a one-second range starting at the playhead,
// pulled back from the asset end so it always fits.
func (m *Model) addRangeAtPlayhead() {
	d := m.player.DurationMs()
	if d <= 0 {
		return
	}
	width := int64(1000)
	if width > d {
		width = d
	}
	lo := m.player.PositionMs()
	if lo+width > d {
		lo = d - width
	}
	id := m.machine.NextID()
	merged := ranges.Merge(append(ranges.Clone(m.ranges), ranges.Range{
		ID:      id,
		StartMs: lo,
		EndMs:   lo + width,
	}))
	m.ranges = merged
	m.selectedID = id
	if r, ok := ranges.At(merged, lo); ok {
		m.selectedID = r.ID
	}
}

func (m *Model) deleteSelected() {
	if m.selectedID == 0 {
		return
	}
	m.ranges = ranges.Remove(m.ranges, m.selectedID)
	m.selectedID = 0
}

// cycleSelection moves the selection through the sorted ranges; dir is +1
// or -1. With nothing selected it starts at the first or last range.
func (m *Model) cycleSelection(dir int) {
	n := len(m.ranges)
	if n == 0 {
		return
	}
	idx := ranges.IndexOf(m.ranges, m.selectedID)
	if idx < 0 {
		if dir > 0 {
			idx = 0
		} else {
			idx = n - 1
		}
	} else {
		idx = (idx + dir + n) % n
	}
	m.selectedID = m.ranges[idx].ID
	m.vp.Recenter(m.ranges[idx].StartMs)
}

func (m *Model) zoomAroundPlayhead(factor float64) {
	anchor := m.player.PositionMs()
	m.vp.Zoom(int64(float64(m.vp.SpanMs)*factor), anchor, m.vp.MsToRatio(anchor))
}

// applyEffects folds machine proposals into the host state.
func (m *Model) applyEffects(fx timeline.Effects) {
	if fx.RangesSet {
		m.ranges = fx.Ranges
	}
	if fx.SelectSet {
		m.selectedID = fx.SelectID
	}
	if fx.Seek {
		m.requestSeek(fx.SeekMs)
	}
}

func (m *Model) savePrefs() {
	_ = prefs.Save(m.prefsPath, prefs.Prefs{
		Theme:    m.theme.Name,
		Snapping: m.snapping,
		Mode:     m.mode,
	})
}

func (m Model) frame() timeline.Frame {
	return timeline.Frame{
		Ranges:          m.ranges,
		CurrentMs:       m.player.PositionMs(),
		SelectedID:      m.selectedID,
		Snapping:        m.snapping,
		OverviewWidthPx: float64(m.width),
		Disabled:        m.player.DurationMs() <= 0,
	}
}

func (m Model) frameInterval() time.Duration {
	fps := m.cfg.UI.FPS
	if fps <= 0 {
		fps = 30
	}
	return time.Second / time.Duration(fps)
}

func (m Model) frameStepMs() int64 {
	step := int64(m.frameInterval() / time.Millisecond)
	if step < 1 {
		step = 1
	}
	return step
}

// renderMain renders the full editor layout.
func (m Model) renderMain() string {
	l := newLayout(m.width, m.height)

	rows := make([]string, 0, l.footerRow+1)
	rows = append(rows, m.renderHeader())
	for len(rows) < l.labelRow {
		rows = append(rows, "")
	}
	labelRow, tickRow := m.renderRuler()
	rows = append(rows, labelRow, tickRow)
	rows = append(rows, m.renderTrack()...)
	rows = append(rows, "")
	rows = append(rows, m.renderOverview())

	for len(rows) < l.footerRow && len(rows) < m.height {
		rows = append(rows, "")
	}
	if len(rows) <= l.footerRow {
		rows = append(rows, m.renderFooter())
	}
	return strings.Join(rows[:min(len(rows), m.height)], "\n")
}

// Messages

type frameMsg time.Time

// Commands

func frameCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
