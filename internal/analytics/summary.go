package analytics

import (
	"fmt"
	"strings"

	"peakform/internal/domain"
)

const placeholder = "—"

// fmtField renders a scalar with its unit suffix, or the placeholder when
// the field is empty. Values render verbatim as typed.
func fmtField(v, suffix string) string {
	if v == "" {
		return placeholder
	}
	return v + " " + suffix
}

// orDash substitutes the placeholder for empty values.
func orDash(v string) string {
	if v == "" {
		return placeholder
	}
	return v
}

// EndOfDaySummary renders one day's entry as the deterministic multi-line
// prompt the user copies out at the end of the day. A training line is
// omitted entirely when all of its fields are empty; nutrition, recovery and
// mindset lines always render, with placeholders for absent values.
func EndOfDaySummary(e domain.Entry) string {
	r := e.Workout.Run
	s := e.Workout.Strength
	n := e.Nutrition
	m := e.Mindset

	var lines []string
	lines = append(lines, "Training — Today")

	if r.DistanceKm != "" || r.DurationMin != "" || r.Pace != "" {
		lines = append(lines, fmt.Sprintf("• Run: %s · %s · %s",
			fmtField(r.DistanceKm, "km"), fmtField(r.DurationMin, "min"), fmtField(r.Pace, "pace")))
	}
	if r.HRAvg != "" || r.HRMax != "" {
		lines = append(lines, fmt.Sprintf("  HR: %s / %s",
			fmtField(r.HRAvg, "avg"), fmtField(r.HRMax, "max")))
	}
	if r.Cadence != "" || r.StrideM != "" {
		lines = append(lines, fmt.Sprintf("  Cadence/Stride: %s · %s",
			fmtField(r.Cadence, "spm"), fmtField(r.StrideM, "m")))
	}
	if r.ElevUp != "" || r.ElevDown != "" {
		lines = append(lines, fmt.Sprintf("  Elevation: +%s / −%s",
			fmtField(r.ElevUp, "m"), fmtField(r.ElevDown, "m")))
	}
	if r.Calories != "" || r.SweatLossL != "" || r.RPE != "" {
		lines = append(lines, fmt.Sprintf("  Calories: %s · Est. sweat loss ~%s · RPE %s/10",
			fmtField(r.Calories, "kcal"), fmtField(r.SweatLossL, "L"), orDash(r.RPE)))
	}
	if s.Description != "" || s.Rounds != "" {
		line := "• Strength: " + orDash(s.Description) + " "
		if s.Rounds != "" {
			line += "(" + s.Rounds + " rounds)"
		}
		if s.WeightLbs != "" {
			line += " — " + s.WeightLbs + " lbs"
		}
		if s.Calories != "" {
			line += " — ~" + s.Calories + " kcal (est.)"
		}
		lines = append(lines, line)
	}

	lines = append(lines,
		"Nutrition",
		"• Calories: "+orDash(n.Calories),
		"• Target: "+orDash(n.CalorieTarget)+" kcal",
		fmt.Sprintf("• Macros: Carbs %s g | Protein %s g | Fat %s g | Fibre %s g",
			orDash(n.CarbsG), orDash(n.ProteinG), orDash(n.FatG), orDash(n.FibreG)),
		"Recovery",
		fmt.Sprintf("• Sleep %s (Q %s/5) · RHR %s bpm · HRV %s ms",
			orDash(m.SleepHrs), orDash(m.SleepQuality), orDash(m.RHR), orDash(m.HRV)),
		fmt.Sprintf("Mindset — Mood %s/5 · Stress %s/5", orDash(m.Mood), orDash(m.Stress)),
	)

	return strings.Join(lines, "\n")
}
