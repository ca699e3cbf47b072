package timeline

import (
	"math"

	"github.com/cutline/cutline/internal/ranges"
)

// Config tunes pointer interaction. NewMachine fills zero fields from
// DefaultConfig.
type Config struct {
	// MinRangeMs is the width below which a create-drag is discarded as an
	// accidental click at release.
	MinRangeMs int64
	// HandleSlopPx is the hit-test half-width around a range edge handle.
	HandleSlopPx float64
	// PlayheadSlopPx is the hit-test half-width around the playhead.
	PlayheadSlopPx float64
	// SnapTolerancePx and WideSnapTolerancePx are the snap distances,
	// normal and with the wide-snap modifier held.
	SnapTolerancePx     float64
	WideSnapTolerancePx float64
	// FineDragScale multiplies pointer deltas while the fine modifier is
	// held during a resize.
	FineDragScale float64
	// WheelZoomFactor is the zoom ratio applied per wheel notch.
	WheelZoomFactor float64
}

// DefaultConfig returns the stock interaction tuning.
func DefaultConfig() Config {
	return Config{
		MinRangeMs:          200,
		HandleSlopPx:        14,
		PlayheadSlopPx:      14,
		SnapTolerancePx:     6,
		WideSnapTolerancePx: 12,
		FineDragScale:       0.1,
		WheelZoomFactor:     1.1,
	}
}

// Target identifies what the pointer went down on.
type Target int

const (
	TargetNone Target = iota
	TargetTrack
	TargetHandleStart
	TargetHandleEnd
	TargetPlayhead
	TargetOverviewWindow
	TargetOverview
)

// Hit is a resolved hit-test result. RangeID is set for handle targets.
type Hit struct {
	Target  Target
	RangeID int64
}

// HitTester resolves a pointer position to a logical target. It is injected
// by the rendering layer so the machine stays independent of layout.
type HitTester func(x, y float64) Hit

// Modifiers are the modifier keys held during a pointer or wheel event.
type Modifiers struct {
	Create bool // start a create-drag instead of a scrub
	Fine   bool // scale resize deltas for fine control
	Wide   bool // widen the snap tolerance
	Zoom   bool // wheel zooms instead of panning
}

// PointerEvent is one pointer sample. X and Y are in the coordinate space of
// the surface the hit tester resolved (track or overview strip).
type PointerEvent struct {
	X, Y float64
	Mod  Modifiers
}

// WheelEvent is one wheel notch over the track.
type WheelEvent struct {
	X, Y           float64
	DeltaX, DeltaY float64
	Mod            Modifiers
}

// Frame is the host state the machine reads while handling one event. The
// machine never mutates host state; proposed updates come back as Effects.
type Frame struct {
	Ranges          []ranges.Range
	CurrentMs       int64
	SelectedID      int64 // 0 = none
	Snapping        bool
	OverviewWidthPx float64
	Disabled        bool
}

// Effects are the proposed host updates resulting from one event. Ranges is
// a whole-collection replacement so the host can apply it atomically.
type Effects struct {
	SeekMs    int64
	Seek      bool
	Ranges    []ranges.Range
	RangesSet bool
	SelectID  int64 // 0 clears the selection
	SelectSet bool
}

func (e *Effects) seek(ms int64) {
	e.SeekMs, e.Seek = ms, true
}

func (e *Effects) propose(rs []ranges.Range) {
	e.Ranges, e.RangesSet = rs, true
}

func (e *Effects) selectRange(id int64) {
	e.SelectID, e.SelectSet = id, true
}

// Edge names the range boundary a resize-drag moves.
type Edge int

const (
	EdgeStart Edge = iota
	EdgeEnd
)

// dragState is a closed set of variants; exactly one is active at a time.
type dragState interface{ isDragState() }

type dragNone struct{}

type dragCreate struct {
	anchorMs int64
	rangeID  int64
	anchorX  float64
	msPerPx  float64
	base     []ranges.Range // collection as it was before the drag
	lo, hi   int64          // working range bounds
}

type dragResize struct {
	rangeID  int64
	edge     Edge
	anchorX  float64
	anchorMs int64
	msPerPx  float64
	base     []ranges.Range
}

type dragScrub struct {
	anchorX  float64
	anchorMs int64
	msPerPx  float64
}

type dragPlayhead struct {
	anchorX  float64
	anchorMs int64
	msPerPx  float64
}

type dragOverviewPan struct {
	anchorX     float64
	anchorStart int64
	durationMs  int64
	widthPx     float64
}

func (dragNone) isDragState()        {}
func (dragCreate) isDragState()      {}
func (dragResize) isDragState()      {}
func (dragScrub) isDragState()       {}
func (dragPlayhead) isDragState()    {}
func (dragOverviewPan) isDragState() {}

// Machine interprets pointer-down/move/up/cancel sequences and drives range
// creation and resizing, playhead scrubbing, and viewport panning. It owns
// the viewport; the host owns the range collection and playback position.
type Machine struct {
	cfg    Config
	vp     *Viewport
	state  dragState
	snap   Snapper
	nextID int64
}

// NewMachine builds a machine around the shared viewport.
func NewMachine(cfg Config, vp *Viewport) *Machine {
	def := DefaultConfig()
	if cfg.MinRangeMs <= 0 {
		cfg.MinRangeMs = def.MinRangeMs
	}
	if cfg.HandleSlopPx <= 0 {
		cfg.HandleSlopPx = def.HandleSlopPx
	}
	if cfg.PlayheadSlopPx <= 0 {
		cfg.PlayheadSlopPx = def.PlayheadSlopPx
	}
	if cfg.SnapTolerancePx <= 0 {
		cfg.SnapTolerancePx = def.SnapTolerancePx
	}
	if cfg.WideSnapTolerancePx <= 0 {
		cfg.WideSnapTolerancePx = def.WideSnapTolerancePx
	}
	if cfg.FineDragScale <= 0 {
		cfg.FineDragScale = def.FineDragScale
	}
	if cfg.WheelZoomFactor <= 1 {
		cfg.WheelZoomFactor = def.WheelZoomFactor
	}
	return &Machine{cfg: cfg, vp: vp, state: dragNone{}, nextID: 1}
}

// Config returns the effective interaction tuning.
func (m *Machine) Config() Config { return m.cfg }

// Dragging reports whether an interaction is in progress.
func (m *Machine) Dragging() bool {
	_, none := m.state.(dragNone)
	return !none
}

// NextID allocates a range identifier. The host uses it for ranges created
// outside a drag, e.g. keyboard insertion at the playhead.
func (m *Machine) NextID() int64 {
	id := m.nextID
	m.nextID++
	return id
}

// CreatingID returns the id of the range being created by an in-progress
// create-drag, or 0.
func (m *Machine) CreatingID() int64 {
	if st, ok := m.state.(dragCreate); ok {
		return st.rangeID
	}
	return 0
}

// PointerDown starts an interaction. The entered state is decided by hit
// testing, in priority order: handle, playhead, create modifier, scrub. A
// press on the overview strip outside its window indicator recenters the
// viewport immediately without starting a drag.
func (m *Machine) PointerDown(ev PointerEvent, fr Frame, hitTest HitTester) Effects {
	var fx Effects
	if fr.Disabled {
		return fx
	}
	m.state = dragNone{}

	hit := Hit{Target: TargetTrack}
	if hitTest != nil {
		hit = hitTest(ev.X, ev.Y)
	}

	switch hit.Target {
	case TargetNone:
		return fx

	case TargetHandleStart, TargetHandleEnd:
		idx := ranges.IndexOf(fr.Ranges, hit.RangeID)
		if idx < 0 {
			return fx
		}
		edge := EdgeStart
		anchor := fr.Ranges[idx].StartMs
		if hit.Target == TargetHandleEnd {
			edge = EdgeEnd
			anchor = fr.Ranges[idx].EndMs
		}
		m.snap = NewSnapper(fr.Snapping, *m.vp, fr.Ranges, fr.CurrentMs, hit.RangeID)
		m.state = dragResize{
			rangeID:  hit.RangeID,
			edge:     edge,
			anchorX:  ev.X,
			anchorMs: anchor,
			msPerPx:  m.vp.MsPerPixel(),
			base:     ranges.Clone(fr.Ranges),
		}
		fx.selectRange(hit.RangeID)

	case TargetPlayhead:
		m.snap = NewSnapper(fr.Snapping, *m.vp, fr.Ranges, fr.CurrentMs, 0)
		m.state = dragPlayhead{
			anchorX:  ev.X,
			anchorMs: fr.CurrentMs,
			msPerPx:  m.vp.MsPerPixel(),
		}
		fx.selectRange(0)

	case TargetOverviewWindow:
		m.state = dragOverviewPan{
			anchorX:     ev.X,
			anchorStart: m.vp.StartMs,
			durationMs:  m.vp.DurationMs,
			widthPx:     fr.OverviewWidthPx,
		}

	case TargetOverview:
		if fr.OverviewWidthPx <= 0 || m.vp.DurationMs <= 0 {
			return fx
		}
		ms := m.vp.ClampMs(int64(math.Round(ev.X / fr.OverviewWidthPx * float64(m.vp.DurationMs))))
		m.vp.Recenter(ms)
		fx.seek(ms)

	default: // TargetTrack
		m.snap = NewSnapper(fr.Snapping, *m.vp, fr.Ranges, fr.CurrentMs, 0)
		if ev.Mod.Create {
			if m.vp.DurationMs <= 0 {
				return fx
			}
			anchor := m.snap.Snap(m.vp.PixelToMs(ev.X), m.tolerance(ev.Mod))
			id := m.NextID()
			st := dragCreate{
				anchorMs: anchor,
				rangeID:  id,
				anchorX:  ev.X,
				msPerPx:  m.vp.MsPerPixel(),
				base:     ranges.Clone(fr.Ranges),
				lo:       anchor,
				hi:       anchor,
			}
			m.state = st
			// The zero-width working range is inserted right away so it
			// renders while the drag is in progress.
			fx.propose(composeCreate(st.base, ranges.Range{ID: id, StartMs: anchor, EndMs: anchor}))
		} else {
			ms := m.snap.Snap(m.vp.PixelToMs(ev.X), m.tolerance(ev.Mod))
			m.state = dragScrub{
				anchorX:  ev.X,
				anchorMs: ms,
				msPerPx:  m.vp.MsPerPixel(),
			}
			fx.seek(ms)
		}
	}
	return fx
}

// PointerMove advances the active interaction. Moves that do not match an
// active drag are ignored.
func (m *Machine) PointerMove(ev PointerEvent, fr Frame) Effects {
	var fx Effects
	if fr.Disabled {
		return m.PointerCancel()
	}

	switch st := m.state.(type) {
	case dragNone:

	case dragCreate:
		ms := m.snap.Snap(m.vp.PixelToMs(ev.X), m.tolerance(ev.Mod))
		st.lo, st.hi = st.anchorMs, ms
		if st.hi < st.lo {
			st.lo, st.hi = st.hi, st.lo
		}
		m.state = st
		fx.propose(composeCreate(st.base, ranges.Range{ID: st.rangeID, StartMs: st.lo, EndMs: st.hi}))
		fx.seek(ms)

	case dragResize:
		idx := ranges.IndexOf(st.base, st.rangeID)
		if idx < 0 {
			break
		}
		var ms int64
		if ev.Mod.Fine {
			delta := (ev.X - st.anchorX) * st.msPerPx * m.cfg.FineDragScale
			ms = m.vp.ClampMs(st.anchorMs + int64(math.Round(delta)))
		} else {
			ms = m.vp.PixelToMs(ev.X)
		}
		ms = m.snap.Snap(ms, m.tolerance(ev.Mod))

		next := st.base[idx]
		if st.edge == EdgeStart {
			if ms > next.EndMs-1 {
				ms = next.EndMs - 1
			}
			if ms < 0 {
				ms = 0
			}
			next.StartMs = ms
		} else {
			if ms < next.StartMs+1 {
				ms = next.StartMs + 1
			}
			next.EndMs = m.vp.ClampMs(ms)
		}
		proposal := ranges.Clone(st.base)
		proposal[idx] = next
		fx.propose(ranges.Merge(proposal))

	case dragScrub:
		delta := (ev.X - st.anchorX) * st.msPerPx
		ms := m.snap.Snap(m.vp.ClampMs(st.anchorMs+int64(math.Round(delta))), m.tolerance(ev.Mod))
		fx.seek(ms)

	case dragPlayhead:
		delta := (ev.X - st.anchorX) * st.msPerPx
		ms := m.snap.Snap(m.vp.ClampMs(st.anchorMs+int64(math.Round(delta))), m.tolerance(ev.Mod))
		fx.seek(ms)

	case dragOverviewPan:
		if st.widthPx <= 0 {
			break
		}
		deltaMs := (ev.X - st.anchorX) / st.widthPx * float64(st.durationMs)
		m.vp.StartMs = m.vp.clampStart(st.anchorStart + int64(math.Round(deltaMs)))
	}
	return fx
}

// PointerUp commits the active interaction and returns to idle. A
// create-drag narrower than MinRangeMs is discarded as an accidental click.
func (m *Machine) PointerUp(ev PointerEvent, fr Frame) Effects {
	var fx Effects

	switch st := m.state.(type) {
	case dragCreate:
		if st.hi-st.lo < m.cfg.MinRangeMs {
			fx.propose(ranges.Merge(st.base))
			fx.selectRange(0)
			break
		}
		working := ranges.Range{ID: st.rangeID, StartMs: st.lo, EndMs: st.hi}
		merged := ranges.Merge(append(ranges.Clone(st.base), working))
		fx.propose(merged)
		// The working range may have been absorbed into a neighbor; select
		// whichever committed range covers it.
		fx.selectRange(st.rangeID)
		if r, ok := ranges.At(merged, st.lo); ok {
			fx.selectRange(r.ID)
		}
	}

	m.state = dragNone{}
	return fx
}

// PointerCancel abandons the interaction without committing anything:
// create-drags drop their working range, resize-drags restore the pre-drag
// collection, overview pans restore the pre-drag viewport origin.
func (m *Machine) PointerCancel() Effects {
	var fx Effects

	switch st := m.state.(type) {
	case dragCreate:
		fx.propose(ranges.Merge(st.base))
	case dragResize:
		fx.propose(ranges.Merge(st.base))
	case dragOverviewPan:
		m.vp.StartMs = m.vp.clampStart(st.anchorStart)
	}

	m.state = dragNone{}
	return fx
}

// Wheel zooms around the pointer's time position when the zoom modifier is
// held, and pans by the dominant delta component otherwise.
func (m *Machine) Wheel(ev WheelEvent, fr Frame) Effects {
	var fx Effects
	if fr.Disabled {
		return fx
	}

	if ev.Mod.Zoom {
		if m.vp.DurationMs <= 0 {
			return fx
		}
		anchor := m.vp.PixelToMs(ev.X)
		ratio := m.vp.MsToRatio(anchor)
		span := float64(m.vp.SpanMs)
		switch {
		case ev.DeltaY < 0:
			span /= m.cfg.WheelZoomFactor
		case ev.DeltaY > 0:
			span *= m.cfg.WheelZoomFactor
		default:
			return fx
		}
		m.vp.Zoom(int64(math.Round(span)), anchor, ratio)
		return fx
	}

	delta := ev.DeltaX
	if math.Abs(ev.DeltaY) > math.Abs(delta) {
		delta = ev.DeltaY
	}
	m.vp.Pan(int64(math.Round(delta * m.vp.MsPerPixel())))
	return fx
}

func (m *Machine) tolerance(mod Modifiers) float64 {
	px := m.cfg.SnapTolerancePx
	if mod.Wide {
		px = m.cfg.WideSnapTolerancePx
	}
	return px * m.vp.MsPerPixel()
}

// composeCreate builds the live collection during a create-drag. A working
// range that is still zero-width is appended unmerged so it survives until
// the pointer moves.
func composeCreate(base []ranges.Range, working ranges.Range) []ranges.Range {
	if working.Width() <= 0 {
		return append(ranges.Merge(base), working)
	}
	return ranges.Merge(append(ranges.Clone(base), working))
}
