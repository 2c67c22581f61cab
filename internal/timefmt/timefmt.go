// Package timefmt converts between decimal-hour durations and the two
// human-readable time formats used by the shop: the free-text "1h 30m 0s"
// form shown in reports, and the "H:MM:SS" colon form accepted by the
// interactive time input. The two formats are deliberately kept as separate
// codecs.
package timefmt

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	hoursToken   = regexp.MustCompile(`(\d+)\s*h`)
	minutesToken = regexp.MustCompile(`(\d+)\s*m`)
	secondsToken = regexp.MustCompile(`(\d+)\s*s`)
	clockFormat  = regexp.MustCompile(`^\d+:[0-5]\d:[0-5]\d$`)
)

// FormatDuration renders decimal hours as "Hh Mm Ss". Non-positive input
// clamps to "0h 0m 0s". Seconds are rounded to the nearest integer; a
// rounded value of 60 carries into the minutes, and 60 minutes carry into
// the hours, so the output never shows "60s" or "60m".
func FormatDuration(hours float64) string {
	if hours <= 0 {
		return "0h 0m 0s"
	}

	h := int(hours)
	rem := (hours - float64(h)) * 60
	m := int(rem)
	s := int(math.Round((rem - float64(m)) * 60))

	if s == 60 {
		s = 0
		m++
	}
	if m == 60 {
		m = 0
		h++
	}

	return fmt.Sprintf("%dh %dm %ds", h, m, s)
}

// ParseDuration extracts "<n>h", "<n>m" and "<n>s" tokens from s and returns
// the total as decimal hours. Each token is optional and defaults to zero;
// the parse is lenient and ignores anything between tokens.
func ParseDuration(s string) float64 {
	var h, m, sec int

	if match := hoursToken.FindStringSubmatch(s); match != nil {
		h, _ = strconv.Atoi(match[1])
	}
	if match := minutesToken.FindStringSubmatch(s); match != nil {
		m, _ = strconv.Atoi(match[1])
	}
	if match := secondsToken.FindStringSubmatch(s); match != nil {
		sec, _ = strconv.Atoi(match[1])
	}

	return float64(h) + float64(m)/60 + float64(sec)/3600
}

// IsClockFormat reports whether s has the colon-separated "H:MM:SS" shape.
func IsClockFormat(s string) bool {
	return clockFormat.MatchString(s)
}

// ParseClock parses an "H:MM:SS" string into decimal hours.
func ParseClock(s string) (float64, error) {
	if !IsClockFormat(s) {
		return 0, fmt.Errorf("invalid time format %q, expected H:MM:SS", s)
	}

	parts := strings.Split(s, ":")
	h, _ := strconv.Atoi(parts[0])
	m, _ := strconv.Atoi(parts[1])
	sec, _ := strconv.Atoi(parts[2])

	return float64(h) + float64(m)/60 + float64(sec)/3600, nil
}
