package player

import (
	"math"
	"os/exec"
	"strconv"
	"strings"
)

// ProbeDuration reads the media duration via ffprobe. It returns false when
// ffprobe is unavailable, fails, or reports something that is not a positive
// duration; the caller falls back to an explicitly supplied duration.
func ProbeDuration(path string) (int64, bool) {
	out, err := exec.Command(
		"ffprobe",
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	).Output()
	if err != nil {
		return 0, false
	}
	return parseProbeOutput(string(out))
}

func parseProbeOutput(out string) (int64, bool) {
	secs, err := strconv.ParseFloat(strings.TrimSpace(out), 64)
	if err != nil || math.IsNaN(secs) || math.IsInf(secs, 0) || secs <= 0 {
		return 0, false
	}
	return int64(math.Round(secs * 1000)), true
}
