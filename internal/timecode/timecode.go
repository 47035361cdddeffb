package timecode

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseSRT converts an SRT-style timestamp (HH:MM:SS,mmm) into seconds.
// Both comma and period are accepted as the millisecond separator. Malformed
// input yields 0; callers only feed strings already matched by the subtitle
// block pattern, so there is no error path to report.
func ParseSRT(value string) float64 {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}
	// SRT standard uses a comma before milliseconds; some generators emit a period.
	value = strings.ReplaceAll(value, ".", ",")
	parts := strings.Split(value, ",")
	if len(parts) != 2 {
		return 0
	}
	hms := strings.Split(parts[0], ":")
	if len(hms) != 3 {
		return 0
	}
	hours, errH := strconv.Atoi(strings.TrimSpace(hms[0]))
	minutes, errM := strconv.Atoi(strings.TrimSpace(hms[1]))
	seconds, errS := strconv.Atoi(strings.TrimSpace(hms[2]))
	millis, errMS := strconv.Atoi(strings.TrimSpace(parts[1]))
	if errH != nil || errM != nil || errS != nil || errMS != nil {
		return 0
	}
	return float64(hours*3600+minutes*60+seconds) + float64(millis)/1000
}

// FormatSRT renders seconds as an SRT-style timestamp (HH:MM:SS,mmm).
// Negative values clamp to zero.
func FormatSRT(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	whole := int(seconds)
	millis := int(math.Round((seconds - float64(whole)) * 1000))
	if millis >= 1000 {
		whole++
		millis -= 1000
	}
	return fmt.Sprintf("%02d:%02d:%02d,%03d", whole/3600, (whole%3600)/60, whole%60, millis)
}

// FormatMarker renders seconds as a compact chapter marker: M:SS under one
// hour, H:MM:SS at or above it. Sub-second precision is floored, matching how
// video platforms interpret pasted chapter lists.
func FormatMarker(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	total := int(seconds)
	hours := total / 3600
	minutes := (total % 3600) / 60
	secs := total % 60
	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%d:%02d", minutes, secs)
}
