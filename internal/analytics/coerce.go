// Package analytics derives the diary's trend series and summary stats from
// an entry snapshot. Every function here is pure: it takes the snapshot, a
// reference instant and (where needed) the settings record, and recomputes
// from scratch. Nothing in this package returns an error; malformed user
// input coerces to safe zero values by design.
package analytics

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var timeOfDayRe = regexp.MustCompile(`^(\d{1,2}):(\d{1,2})$`)
var looseTimeOfDayRe = regexp.MustCompile(`^(\d{1,2})(?::(\d{1,2}))?$`)

// ToNumber converts free-form user input to a finite number. Every character
// that is not a digit, '.' or '-' is stripped before parsing, so "12.5 km"
// parses as 12.5. Anything that still fails to parse yields 0.
func ToNumber(v string) float64 {
	var b strings.Builder
	for _, r := range v {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	n, err := strconv.ParseFloat(b.String(), 64)
	if err != nil || math.IsInf(n, 0) || math.IsNaN(n) {
		return 0
	}
	return n
}

// HoursFromTimeOfDay converts a stored sleep value to decimal hours.
// "hh:mm" clamps hours to [0,23] and minutes to [0,59]; a plain number
// passes through; anything else is 0.
func HoursFromTimeOfDay(v string) float64 {
	s := strings.TrimSpace(v)
	if m := timeOfDayRe.FindStringSubmatch(s); m != nil {
		hh := clampInt(atoi(m[1]), 0, 23)
		mm := clampInt(atoi(m[2]), 0, 59)
		return float64(hh) + float64(mm)/60
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(n, 0) || math.IsNaN(n) {
		return 0
	}
	return n
}

// NormalizeTimeOfDay re-renders "h" or "h:mm" input as zero-padded "HH:MM",
// clamping out-of-range parts. Strings that don't match the pattern pass
// through unchanged so the user's text is never reinterpreted.
func NormalizeTimeOfDay(s string) string {
	if s == "" {
		return ""
	}
	m := looseTimeOfDayRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return s
	}
	hh := clampInt(atoi(m[1]), 0, 23)
	mm := 0
	if m[2] != "" {
		mm = clampInt(atoi(m[2]), 0, 59)
	}
	return fmt.Sprintf("%02d:%02d", hh, mm)
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

func clampInt(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
