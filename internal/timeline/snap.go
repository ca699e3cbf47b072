package timeline

import (
	"math"
	"sort"

	"github.com/cutline/cutline/internal/ranges"
)

// dedupeToleranceMs collapses candidates closer together than this.
const dedupeToleranceMs = 0.5

// Candidates builds the sorted, deduplicated snap candidate set for one
// interaction: the asset bounds, the current playback position, every
// visible range boundary, and every visible ruler tick. Boundaries of the
// range identified by excludeID are left out so a dragged edge never snaps
// to itself.
func Candidates(v Viewport, rs []ranges.Range, currentMs, excludeID int64) []float64 {
	cands := make([]float64, 0, 8+2*len(rs))
	cands = append(cands, 0, float64(v.DurationMs), float64(currentMs))
	for _, r := range rs {
		if r.ID == excludeID {
			continue
		}
		for _, b := range [2]int64{r.StartMs, r.EndMs} {
			if b >= v.StartMs && b <= v.EndMs() {
				cands = append(cands, float64(b))
			}
		}
	}
	for _, t := range Ticks(v) {
		cands = append(cands, float64(t.Ms))
	}
	sort.Float64s(cands)

	out := cands[:0]
	for _, c := range cands {
		if n := len(out); n > 0 && c-out[n-1] < dedupeToleranceMs {
			continue
		}
		out = append(out, c)
	}
	return out
}

// FindClosest returns the candidate nearest raw whose distance is within
// tolerance. Candidates must be sorted ascending; distance ties favor the
// smaller value. Returns false when no candidate qualifies or the tolerance
// is not positive.
func FindClosest(cands []float64, raw, tolerance float64) (float64, bool) {
	if tolerance <= 0 {
		return 0, false
	}
	best, bestDist, found := 0.0, math.Inf(1), false
	for _, c := range cands {
		d := math.Abs(c - raw)
		if d <= tolerance && d < bestDist {
			best, bestDist, found = c, d, true
		}
		if c-raw > tolerance {
			break
		}
	}
	return best, found
}

// Snapper corrects raw pointer times to nearby landmarks. The candidate set
// is captured once per interaction, at pointer-down.
type Snapper struct {
	enabled bool
	cands   []float64
}

// NewSnapper captures the candidate set for one interaction.
func NewSnapper(enabled bool, v Viewport, rs []ranges.Range, currentMs, excludeID int64) Snapper {
	s := Snapper{enabled: enabled}
	if enabled {
		s.cands = Candidates(v, rs, currentMs, excludeID)
	}
	return s
}

// Snap corrects rawMs to the nearest candidate within toleranceMs, or passes
// it through unchanged.
func (s Snapper) Snap(rawMs int64, toleranceMs float64) int64 {
	if !s.enabled || toleranceMs <= 0 {
		return rawMs
	}
	if c, ok := FindClosest(s.cands, float64(rawMs), toleranceMs); ok {
		return int64(math.Round(c))
	}
	return rawMs
}
