// Package diarytxt implements the flat KEY=VALUE diary text format used for
// offline import and template export.
package diarytxt

import (
	"math"
	"strconv"
	"strings"
	"time"

	"peakform/internal/domain"
)

// Import is the result of parsing a diary text file: the date it applies to,
// a partial entry, and an optional calorie-target override that the caller
// applies to settings. CalorieTarget is non-nil only when the CALORIE_TARGET
// key parsed to a finite number.
type Import struct {
	Date          string
	Entry         domain.Entry
	CalorieTarget *float64
}

// Parse reads the line-oriented KEY=VALUE grammar. Blank lines and lines
// starting with '#' are ignored; lines without '=' are skipped; keys are
// trimmed and upper-cased; values are trimmed verbatim and may be empty.
// Unknown keys are ignored. A missing DATE key defaults to the day of now.
// Parse never fails: a file with zero recognized keys yields an empty entry.
func Parse(text string, now time.Time) Import {
	fields := make(map[string]string)
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(strings.TrimSuffix(raw, "\r"))
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		eq := strings.Index(line, "=")
		if eq == -1 {
			continue
		}
		key := strings.ToUpper(strings.TrimSpace(line[:eq]))
		fields[key] = strings.TrimSpace(line[eq+1:])
	}

	date := fields["DATE"]
	if date == "" {
		date = domain.DayKey(now)
	}

	entry := domain.Entry{
		Date: date,
		Workout: domain.Workout{
			Run: domain.Run{
				DistanceKm:  fields["DIST_KM"],
				DurationMin: fields["DURATION_MIN"],
				Pace:        fields["PACE"],
				HRAvg:       fields["HR_AVG"],
				HRMax:       fields["HR_MAX"],
				Cadence:     fields["CADENCE"],
				StrideM:     fields["STRIDE_M"],
				ElevUp:      fields["ELEV_UP"],
				ElevDown:    fields["ELEV_DOWN"],
				Calories:    fields["KCAL_RUN"],
				SweatLossL:  fields["SWEAT_LOSS_L"],
				RPE:         fields["RPE"],
			},
			Strength: domain.Strength{
				Description: fields["STRENGTH_DESC"],
				Rounds:      fields["STRENGTH_ROUNDS"],
				WeightLbs:   fields["STRENGTH_WEIGHT_LBS"],
				Calories:    fields["STRENGTH_KCAL"],
			},
		},
		Nutrition: domain.Nutrition{
			Calories:      fields["CALORIES"],
			CarbsG:        fields["CARBS_G"],
			ProteinG:      fields["PROTEIN_G"],
			FatG:          fields["FAT_G"],
			FibreG:        fields["FIBRE_G"],
			CalorieTarget: fields["CALORIE_TARGET"],
		},
		Mindset: domain.Mindset{
			Mood:         fields["MOOD"],
			Stress:       fields["STRESS"],
			SleepQuality: fields["SLEEP_QUALITY"],
			SleepHrs:     fields["SLEEP_HRS"],
			RHR:          fields["RHR"],
			HRV:          fields["HRV"],
			Notes:        fields["NOTES"],
		},
	}

	imp := Import{Date: date, Entry: entry}
	if raw, ok := fields["CALORIE_TARGET"]; ok && raw != "" {
		if n, err := strconv.ParseFloat(raw, 64); err == nil && !math.IsInf(n, 0) && !math.IsNaN(n) {
			imp.CalorieTarget = &n
		}
	}
	return imp
}
