package diarytxt

import "strings"

// Template renders the importable text template for a date: every recognized
// key with an empty value, grouped under comment headers. Importing an
// unmodified template yields an entry with only the date set.
func Template(dateISO string) string {
	lines := []string{
		"# PeakForm TXT Import Template",
		"# Lines starting with # are ignored",
		"",
		"DATE=" + dateISO,
		"",
		"# Workout: Run",
		"DIST_KM=",
		"DURATION_MIN=",
		"PACE=",
		"HR_AVG=",
		"HR_MAX=",
		"CADENCE=",
		"STRIDE_M=",
		"ELEV_UP=",
		"ELEV_DOWN=",
		"KCAL_RUN=",
		"SWEAT_LOSS_L=",
		"RPE=",
		"",
		"# Workout: Strength",
		"STRENGTH_DESC=",
		"STRENGTH_ROUNDS=",
		"STRENGTH_WEIGHT_LBS=",
		"STRENGTH_KCAL=",
		"",
		"# Nutrition",
		"CALORIES=",
		"CARBS_G=",
		"PROTEIN_G=",
		"FAT_G=",
		"FIBRE_G=",
		"CALORIE_TARGET=",
		"",
		"# Recovery",
		"SLEEP_HRS=",
		"RHR=",
		"HRV=",
		"",
		"# Mindset",
		"MOOD=",
		"STRESS=",
		"SLEEP_QUALITY=",
		"NOTES=",
		"",
	}
	return strings.Join(lines, "\n")
}
