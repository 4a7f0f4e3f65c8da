package analytics

import (
	"strings"
	"testing"

	"peakform/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndOfDaySummaryEmptyEntry(t *testing.T) {
	out := EndOfDaySummary(domain.EmptyEntry("2025-09-04"))
	lines := strings.Split(out, "\n")

	require.Equal(t, []string{
		"Training — Today",
		"Nutrition",
		"• Calories: —",
		"• Target: — kcal",
		"• Macros: Carbs — g | Protein — g | Fat — g | Fibre — g",
		"Recovery",
		"• Sleep — (Q 3/5) · RHR — bpm · HRV — ms",
		"Mindset — Mood 3/5 · Stress 3/5",
	}, lines)
}

func TestEndOfDaySummaryRunDay(t *testing.T) {
	e := domain.EmptyEntry("2025-09-04")
	e.Workout.Run = domain.Run{
		DistanceKm:  "12.5",
		DurationMin: "65",
		HRAvg:       "148",
		HRMax:       "172",
		Calories:    "700",
		RPE:         "8",
	}
	e.Nutrition.Calories = "2400"
	e.Nutrition.CalorieTarget = "2600"

	out := EndOfDaySummary(e)

	// empty fields render as a bare dash, no unit suffix
	assert.Contains(t, out, "• Run: 12.5 km · 65 min · —")
	assert.Contains(t, out, "  HR: 148 avg / 172 max")
	assert.Contains(t, out, "  Calories: 700 kcal · Est. sweat loss ~— · RPE 8/10")
	assert.Contains(t, out, "• Calories: 2400")
	assert.Contains(t, out, "• Target: 2600 kcal")

	// partially-empty training lines stay out entirely
	assert.NotContains(t, out, "Cadence/Stride")
	assert.NotContains(t, out, "Elevation")
}

func TestEndOfDaySummaryStrength(t *testing.T) {
	e := domain.EmptyEntry("2025-09-04")
	e.Workout.Strength = domain.Strength{
		Description: "Push day",
		Rounds:      "5",
		WeightLbs:   "185",
		Calories:    "400",
	}

	out := EndOfDaySummary(e)
	assert.Contains(t, out, "• Strength: Push day (5 rounds) — 185 lbs — ~400 kcal (est.)")
}

func TestEndOfDaySummaryNoBlankLines(t *testing.T) {
	e := domain.EmptyEntry("2025-09-04")
	e.Workout.Run.DistanceKm = "10"
	e.Mindset.SleepHrs = "7:30"

	for i, line := range strings.Split(EndOfDaySummary(e), "\n") {
		assert.NotEmpty(t, line, "line %d should not be blank", i)
	}
}
