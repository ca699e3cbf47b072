// Package timecode converts between milliseconds and HH:MM:SS.mmm text.
//
// Format and Parse obey a round-trip law: for any ms >= 0,
// Parse(Format(ms)) returns ms.
package timecode

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Format renders ms as zero-padded HH:MM:SS.mmm. Negative input renders as
// zero.
func Format(ms int64) string {
	if ms < 0 {
		ms = 0
	}
	return fmt.Sprintf("%02d:%02d:%02d.%03d",
		ms/3600000, ms/60000%60, ms/1000%60, ms%1000)
}

// FormatCompact renders ms for ruler labels: the hour field is omitted when
// zero, the millisecond field only appears when withMillis is set.
func FormatCompact(ms int64, withMillis bool) string {
	if ms < 0 {
		ms = 0
	}
	var out string
	if h := ms / 3600000; h > 0 {
		out = fmt.Sprintf("%02d:%02d:%02d", h, ms/60000%60, ms/1000%60)
	} else {
		out = fmt.Sprintf("%02d:%02d", ms/60000%60, ms/1000%60)
	}
	if withMillis {
		out += fmt.Sprintf(".%03d", ms%1000)
	}
	return out
}

// Parse reads either a bare (possibly fractional) seconds value or a
// colon-separated [HH:]MM:SS[.mmm] timecode. The millisecond fragment is
// right-padded or truncated to three digits. The result is rounded to the
// nearest millisecond and floored at zero. Returns false on empty input, a
// wrong segment count, or any unparseable component.
func Parse(text string) (int64, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, false
	}

	if !strings.Contains(text, ":") {
		secs, ok := parseField(text)
		if !ok {
			return 0, false
		}
		return clampRound(secs * 1000), true
	}

	parts := strings.Split(text, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, false
	}

	var hours float64
	if len(parts) == 3 {
		h, ok := parseField(parts[0])
		if !ok {
			return 0, false
		}
		hours = h
		parts = parts[1:]
	}

	minutes, ok := parseField(parts[0])
	if !ok {
		return 0, false
	}

	secText := parts[1]
	var millis float64
	if dot := strings.IndexByte(secText, '.'); dot >= 0 {
		frag := secText[dot+1:]
		secText = secText[:dot]
		frag = (frag + "000")[:3]
		m, ok := parseField(frag)
		if !ok {
			return 0, false
		}
		millis = m
	}
	seconds, ok := parseField(secText)
	if !ok {
		return 0, false
	}

	total := (hours*3600+minutes*60+seconds)*1000 + millis
	return clampRound(total), true
}

func parseField(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func clampRound(ms float64) int64 {
	r := math.Round(ms)
	if r < 0 {
		return 0
	}
	return int64(r)
}
