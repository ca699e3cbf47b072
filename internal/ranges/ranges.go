// Package ranges maintains sorted, non-overlapping sets of trim ranges.
package ranges

import (
	"math"
	"sort"
)

// Range is one user-marked interval over the asset, in integer milliseconds.
// EndMs is exclusive.
type Range struct {
	ID      int64
	StartMs int64
	EndMs   int64
}

// Width returns the range length in milliseconds.
func (r Range) Width() int64 { return r.EndMs - r.StartMs }

// Contains reports whether ms falls inside the range.
func (r Range) Contains(ms int64) bool { return ms >= r.StartMs && ms < r.EndMs }

// Sanitize floors fractional bounds to whole milliseconds. It rejects
// non-finite bounds and intervals that would be empty or inverted.
func Sanitize(id int64, startMs, endMs float64) (Range, bool) {
	if !isFinite(startMs) || !isFinite(endMs) {
		return Range{}, false
	}
	r := Range{
		ID:      id,
		StartMs: int64(math.Floor(startMs)),
		EndMs:   int64(math.Floor(endMs)),
	}
	if r.EndMs <= r.StartMs {
		return Range{}, false
	}
	return r, true
}

// Merge returns the minimal sorted non-overlapping cover of rs. Degenerate
// ranges (EndMs <= StartMs) are dropped, overlapping and touching ranges are
// merged, and the output order depends only on the set of intervals, not on
// the input order. When ranges merge, the run's first range keeps its ID.
// The input slice is not modified.
func Merge(rs []Range) []Range {
	valid := make([]Range, 0, len(rs))
	for _, r := range rs {
		if r.EndMs <= r.StartMs {
			continue
		}
		valid = append(valid, r)
	}
	sort.Slice(valid, func(i, j int) bool {
		if valid[i].StartMs != valid[j].StartMs {
			return valid[i].StartMs < valid[j].StartMs
		}
		if valid[i].EndMs != valid[j].EndMs {
			return valid[i].EndMs < valid[j].EndMs
		}
		// Identical intervals order by ID so the surviving ID of a merged
		// run never depends on input order.
		return valid[i].ID < valid[j].ID
	})

	out := make([]Range, 0, len(valid))
	for _, r := range valid {
		if n := len(out); n > 0 && r.StartMs <= out[n-1].EndMs {
			if r.EndMs > out[n-1].EndMs {
				out[n-1].EndMs = r.EndMs
			}
			continue
		}
		out = append(out, r)
	}
	return out
}

// IndexOf returns the position of id in rs, or -1.
func IndexOf(rs []Range, id int64) int {
	for i, r := range rs {
		if r.ID == id {
			return i
		}
	}
	return -1
}

// At returns the range containing ms, if any.
func At(rs []Range, ms int64) (Range, bool) {
	for _, r := range rs {
		if r.Contains(ms) {
			return r, true
		}
	}
	return Range{}, false
}

// Remove returns rs without the range identified by id.
func Remove(rs []Range, id int64) []Range {
	out := make([]Range, 0, len(rs))
	for _, r := range rs {
		if r.ID == id {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Clone returns a copy of rs.
func Clone(rs []Range) []Range {
	if len(rs) == 0 {
		return nil
	}
	dup := make([]Range, len(rs))
	copy(dup, rs)
	return dup
}

// TotalWidth sums the widths of rs.
func TotalWidth(rs []Range) int64 {
	var total int64
	for _, r := range rs {
		total += r.Width()
	}
	return total
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
