package timecode

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Parse converts an SRT timestamp ("HH:MM:SS,mmm") to milliseconds.
func Parse(ts string) (int, error) {
	parts := strings.Split(strings.TrimSpace(ts), ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("invalid timestamp %q: expected HH:MM:SS,mmm", ts)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid hours in %q: %w", ts, err)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid minutes in %q: %w", ts, err)
	}

	secParts := strings.Split(parts[2], ",")
	if len(secParts) != 2 {
		return 0, fmt.Errorf("invalid seconds in %q: expected SS,mmm", ts)
	}
	seconds, err := strconv.Atoi(secParts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid seconds in %q: %w", ts, err)
	}
	millis, err := strconv.Atoi(secParts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid milliseconds in %q: %w", ts, err)
	}

	return (hours*3600+minutes*60+seconds)*1000 + millis, nil
}

// FormatSRT renders milliseconds as "HH:MM:SS,mmm". Negative values clamp
// to zero.
func FormatSRT(ms int) string {
	if ms < 0 {
		ms = 0
	}
	totalSeconds := ms / 1000
	millis := ms % 1000
	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60

	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, seconds, millis)
}

// FormatVTT renders the same value as FormatSRT with a dot millisecond
// separator, as WebVTT requires.
func FormatVTT(ms int) string {
	return strings.Replace(FormatSRT(ms), ",", ".", 1)
}

// FormatASS renders seconds as "H:MM:SS.cc" (centiseconds, unpadded hours)
// for ASS event times. Negative values clamp to zero.
func FormatASS(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	total := int(seconds)
	hours := total / 3600
	minutes := (total % 3600) / 60
	secs := total % 60
	centis := int(math.Round((seconds - float64(total)) * 100))
	if centis >= 100 {
		centis = 99
	}

	return fmt.Sprintf("%d:%02d:%02d.%02d", hours, minutes, secs, centis)
}
