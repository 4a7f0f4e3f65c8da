package domain

import "time"

// DateLayout is the ISO day key used everywhere: entry keys, window labels,
// the txt import DATE field.
const DateLayout = "2006-01-02"

// Run holds one day's run log. All numeric-looking fields are kept as the
// raw strings the user typed; the analytics layer coerces them defensively.
type Run struct {
	DistanceKm  string `bson:"distanceKm,omitempty" json:"distanceKm,omitempty"`
	DurationMin string `bson:"durationMin,omitempty" json:"durationMin,omitempty"`
	Pace        string `bson:"pace,omitempty" json:"pace,omitempty"` // free text, e.g. "5:30/km"
	HRAvg       string `bson:"hrAvg,omitempty" json:"hrAvg,omitempty"`
	HRMax       string `bson:"hrMax,omitempty" json:"hrMax,omitempty"`
	Cadence     string `bson:"cadence,omitempty" json:"cadence,omitempty"`
	StrideM     string `bson:"strideM,omitempty" json:"strideM,omitempty"`
	ElevUp      string `bson:"elevUp,omitempty" json:"elevUp,omitempty"`
	ElevDown    string `bson:"elevDown,omitempty" json:"elevDown,omitempty"`
	Calories    string `bson:"calories,omitempty" json:"calories,omitempty"`
	SweatLossL  string `bson:"sweatLossL,omitempty" json:"sweatLossL,omitempty"`
	RPE         string `bson:"rpe,omitempty" json:"rpe,omitempty"` // 1-10
}

// Strength holds one day's strength session log.
type Strength struct {
	Description string `bson:"description,omitempty" json:"description,omitempty"`
	Rounds      string `bson:"rounds,omitempty" json:"rounds,omitempty"`
	WeightLbs   string `bson:"weightLbs,omitempty" json:"weightLbs,omitempty"`
	Calories    string `bson:"calories,omitempty" json:"calories,omitempty"`
}

// Nutrition holds one day's intake. CalorieTarget, when present and nonzero,
// overrides the global Settings target for that date.
type Nutrition struct {
	Calories      string `bson:"calories,omitempty" json:"calories,omitempty"`
	CarbsG        string `bson:"carbsG,omitempty" json:"carbsG,omitempty"`
	ProteinG      string `bson:"proteinG,omitempty" json:"proteinG,omitempty"`
	FatG          string `bson:"fatG,omitempty" json:"fatG,omitempty"`
	FibreG        string `bson:"fibreG,omitempty" json:"fibreG,omitempty"`
	CalorieTarget string `bson:"calorieTarget,omitempty" json:"calorieTarget,omitempty"`
}

// Mindset holds recovery and mood fields. Mood, stress and sleep quality are
// 1-5 scales; SleepHrs is "hh:mm" text or a decimal-hours number as typed.
type Mindset struct {
	Mood         string `bson:"mood,omitempty" json:"mood,omitempty"`
	Stress       string `bson:"stress,omitempty" json:"stress,omitempty"`
	SleepHrs     string `bson:"sleepHrs,omitempty" json:"sleepHrs,omitempty"`
	SleepQuality string `bson:"sleepQuality,omitempty" json:"sleepQuality,omitempty"`
	RHR          string `bson:"rhr,omitempty" json:"rhr,omitempty"`
	HRV          string `bson:"hrv,omitempty" json:"hrv,omitempty"`
	Notes        string `bson:"notes,omitempty" json:"notes,omitempty"`
}

// Workout groups the training sections of an entry.
type Workout struct {
	Run      Run      `bson:"run" json:"run"`
	Strength Strength `bson:"strength" json:"strength"`
}

// Entry is one calendar day's diary record. Date always equals the key the
// entry is stored under.
type Entry struct {
	Date      string    `bson:"date" json:"date"`
	Workout   Workout   `bson:"workout" json:"workout"`
	Nutrition Nutrition `bson:"nutrition" json:"nutrition"`
	Mindset   Mindset   `bson:"mindset" json:"mindset"`
}

// Snapshot is the full in-memory entry store for one user, keyed by ISO date.
// A missing key means "no entry" and aggregates as an all-zero day.
type Snapshot map[string]Entry

// Settings is the single process-wide configuration record: a global calorie
// target plus macro targets, used as fallback when an entry carries no
// per-day target.
type Settings struct {
	CalorieTarget float64      `bson:"calorieTarget" json:"calorieTarget"`
	MacroTargets  MacroTargets `bson:"macroTargets" json:"macroTargets"`
}

type MacroTargets struct {
	CarbsG   float64 `bson:"carbsG" json:"carbsG"`
	ProteinG float64 `bson:"proteinG" json:"proteinG"`
	FatG     float64 `bson:"fatG" json:"fatG"`
	FibreG   float64 `bson:"fibreG" json:"fibreG"`
}

// EmptyEntry returns the lazily-created template for a date: blank sections
// with the mindset scales at their midpoint default of "3".
func EmptyEntry(date string) Entry {
	return Entry{
		Date: date,
		Mindset: Mindset{
			Mood:         "3",
			Stress:       "3",
			SleepQuality: "3",
		},
	}
}

// ClearedEntry is what "Clear Day" resets an entry to: the empty template
// with the per-day calorie target zeroed out explicitly.
func ClearedEntry(date string) Entry {
	e := EmptyEntry(date)
	e.Nutrition.CalorieTarget = "0"
	return e
}

// DefaultSettings mirrors the targets a fresh account starts with.
func DefaultSettings() Settings {
	return Settings{
		CalorieTarget: 2600,
		MacroTargets: MacroTargets{
			CarbsG:   300,
			ProteinG: 170,
			FatG:     70,
			FibreG:   30,
		},
	}
}

// DayKey renders an instant as the ISO day key.
func DayKey(t time.Time) string {
	return t.Format(DateLayout)
}
