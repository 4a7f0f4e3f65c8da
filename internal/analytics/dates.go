package analytics

import (
	"time"

	"peakform/internal/domain"
)

// dayLabel is the short chart label for a day: "MM-DD".
func dayLabel(t time.Time) string {
	return t.Format("01-02")
}

// mondayOfWeek returns the most recent Monday at or before t. Weeks are
// Monday-anchored everywhere; time.Weekday follows the Sunday=0 convention,
// hence the +6 mod 7 offset.
func mondayOfWeek(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -offset)
}

// entryAt looks up the entry for the day of t; the zero Entry stands in for
// a missing date so callers aggregate it as an all-zero day.
func entryAt(snap domain.Snapshot, t time.Time) domain.Entry {
	return snap[domain.DayKey(t)]
}

// runDistanceAt is the coerced run distance for the day of t.
func runDistanceAt(snap domain.Snapshot, t time.Time) float64 {
	return ToNumber(entryAt(snap, t).Workout.Run.DistanceKm)
}

// trailingDistance sums run distance over the n days ending at t inclusive.
func trailingDistance(snap domain.Snapshot, t time.Time, n int) float64 {
	var sum float64
	for k := 0; k < n; k++ {
		sum += runDistanceAt(snap, t.AddDate(0, 0, -k))
	}
	return sum
}
