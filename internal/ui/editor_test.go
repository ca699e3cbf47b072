package ui

import (
	"testing"

	"github.com/cutline/cutline/internal/ranges"
)

func editorModel(t *testing.T) Model {
	t.Helper()
	m := testModel(t, 60000)
	m.ranges = []ranges.Range{{ID: 1, StartMs: 10000, EndMs: 20000}}
	m.selectedID = 1
	m.openEditor()
	if !m.editor.active {
		t.Fatalf("openEditor did not activate the editor")
	}
	return m
}

func TestOpenEditor_SeedsTimecodeFields(t *testing.T) {
	m := editorModel(t)

	if got := m.editor.inputs[0].Value(); got != "00:00:10.000" {
		t.Fatalf("start field = %q, want %q", got, "00:00:10.000")
	}
	if got := m.editor.inputs[1].Value(); got != "00:00:20.000" {
		t.Fatalf("end field = %q, want %q", got, "00:00:20.000")
	}
}

func TestOpenEditor_NoSelectionIsInert(t *testing.T) {
	m := testModel(t, 60000)
	m.openEditor()
	if m.editor.active {
		t.Fatalf("editor opened with no selection")
	}
}

func TestCommitEditor_AppliesValidBounds(t *testing.T) {
	m := editorModel(t)
	m.editor.inputs[0].SetValue("00:00:05.000")
	m.editor.inputs[1].SetValue("25")

	m.commitEditor()

	if m.editor.active {
		t.Fatalf("editor still open after a valid commit")
	}
	if len(m.ranges) != 1 {
		t.Fatalf("len(ranges) = %d, want 1", len(m.ranges))
	}
	r := m.ranges[0]
	if r.StartMs != 5000 || r.EndMs != 25000 {
		t.Fatalf("range = [%d,%d), want [5000,25000)", r.StartMs, r.EndMs)
	}
}

func TestCommitEditor_InvalidFieldRevertsAndStaysOpen(t *testing.T) {
	m := editorModel(t)
	m.editor.inputs[0].SetValue("not a time")

	m.commitEditor()

	if !m.editor.active {
		t.Fatalf("editor closed after an invalid commit")
	}
	if got := m.editor.inputs[0].Value(); got != "00:00:10.000" {
		t.Fatalf("start field after revert = %q, want %q", got, "00:00:10.000")
	}
	if r := m.ranges[0]; r.StartMs != 10000 || r.EndMs != 20000 {
		t.Fatalf("range changed to [%d,%d) despite invalid input", r.StartMs, r.EndMs)
	}
}

func TestCommitEditor_InvertedBoundsRevert(t *testing.T) {
	m := editorModel(t)
	m.editor.inputs[0].SetValue("00:00:30.000")
	m.editor.inputs[1].SetValue("00:00:20.000")

	m.commitEditor()

	if !m.editor.active {
		t.Fatalf("editor closed after inverted bounds")
	}
	if got := m.editor.inputs[0].Value(); got != "00:00:10.000" {
		t.Fatalf("start field after revert = %q, want %q", got, "00:00:10.000")
	}
}

func TestCommitEditor_EndClampedToDuration(t *testing.T) {
	m := editorModel(t)
	m.editor.inputs[1].SetValue("01:30:00.000")

	m.commitEditor()

	if r := m.ranges[0]; r.EndMs != 60000 {
		t.Fatalf("EndMs = %d, want clamped to 60000", r.EndMs)
	}
}

func TestCommitEditor_MergesIntoNeighbor(t *testing.T) {
	m := testModel(t, 60000)
	m.ranges = []ranges.Range{
		{ID: 1, StartMs: 10000, EndMs: 20000},
		{ID: 2, StartMs: 30000, EndMs: 40000},
	}
	m.selectedID = 1
	m.openEditor()
	m.editor.inputs[1].SetValue("00:00:35.000")

	m.commitEditor()

	if len(m.ranges) != 1 {
		t.Fatalf("len(ranges) = %d, want 1 after merge", len(m.ranges))
	}
	r := m.ranges[0]
	if r.StartMs != 10000 || r.EndMs != 40000 {
		t.Fatalf("merged range = [%d,%d), want [10000,40000)", r.StartMs, r.EndMs)
	}
	if m.selectedID != r.ID {
		t.Fatalf("selectedID = %d, want %d", m.selectedID, r.ID)
	}
}
