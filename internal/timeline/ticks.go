package timeline

import (
	"math"

	"github.com/cutline/cutline/internal/timecode"
)

// tickLadder holds the human-friendly major steps, in milliseconds.
var tickLadder = []int64{
	100, 200, 500,
	1000, 2000, 5000, 10000, 15000, 30000,
	60000, 120000, 300000, 600000, 900000, 1800000,
	3600000,
}

// minMajorGapPx keeps adjacent major ticks at least this far apart.
const minMajorGapPx = 100

// Tick is one ruler mark. Label is empty for minor ticks.
type Tick struct {
	Ms    int64
	Major bool
	Label string
}

// MajorStep picks the smallest ladder step whose on-screen spacing is at
// least minMajorGapPx, or the largest ladder step when none qualifies.
func MajorStep(msPerPixel float64) int64 {
	want := msPerPixel * minMajorGapPx
	for _, s := range tickLadder {
		if float64(s) >= want {
			return s
		}
	}
	return tickLadder[len(tickLadder)-1]
}

// Ticks generates ruler marks for the visible window, in ascending time
// order. Majors carry labels; four minor subdivisions sit between each pair
// of majors. Emission extends one major step past both window edges so
// partially visible ticks still render; negative times are never emitted.
func Ticks(v Viewport) []Tick {
	major := MajorStep(v.MsPerPixel())
	minor := int64(math.Round(float64(major) / 5))
	if minor < 1 {
		minor = 1
	}

	withMillis := major < 1000
	first := floorMultiple(v.StartMs-major, major)
	end := v.EndMs() + major

	var ticks []Tick
	for t := first; t <= end; t += major {
		if t >= 0 {
			ticks = append(ticks, Tick{Ms: t, Major: true, Label: timecode.FormatCompact(t, withMillis)})
		}
		for k := int64(1); k <= 4; k++ {
			mt := t + k*minor
			if mt >= t+major {
				break
			}
			if mt < 0 || mt < v.StartMs-minor || mt > v.EndMs()+minor {
				continue
			}
			ticks = append(ticks, Tick{Ms: mt})
		}
	}
	return ticks
}

func floorMultiple(ms, step int64) int64 {
	q := ms / step
	if ms%step != 0 && ms < 0 {
		q--
	}
	return q * step
}
