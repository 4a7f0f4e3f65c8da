package domain

import "fmt"

// Section identifies which part of an entry a field update targets.
type Section string

const (
	SectionRun       Section = "run"
	SectionStrength  Section = "strength"
	SectionNutrition Section = "nutrition"
	SectionMindset   Section = "mindset"
)

// FieldUpdate is a single "edit one field, re-save whole record" operation.
// Updates are dispatched through explicit per-section field maps rather than
// path traversal, so an unknown field is an error instead of a silent no-op.
type FieldUpdate struct {
	Section Section `json:"section"`
	Field   string  `json:"field"`
	Value   string  `json:"value"`
}

var runFields = map[string]func(*Run, string){
	"distanceKm":  func(r *Run, v string) { r.DistanceKm = v },
	"durationMin": func(r *Run, v string) { r.DurationMin = v },
	"pace":        func(r *Run, v string) { r.Pace = v },
	"hrAvg":       func(r *Run, v string) { r.HRAvg = v },
	"hrMax":       func(r *Run, v string) { r.HRMax = v },
	"cadence":     func(r *Run, v string) { r.Cadence = v },
	"strideM":     func(r *Run, v string) { r.StrideM = v },
	"elevUp":      func(r *Run, v string) { r.ElevUp = v },
	"elevDown":    func(r *Run, v string) { r.ElevDown = v },
	"calories":    func(r *Run, v string) { r.Calories = v },
	"sweatLossL":  func(r *Run, v string) { r.SweatLossL = v },
	"rpe":         func(r *Run, v string) { r.RPE = v },
}

var strengthFields = map[string]func(*Strength, string){
	"description": func(s *Strength, v string) { s.Description = v },
	"rounds":      func(s *Strength, v string) { s.Rounds = v },
	"weightLbs":   func(s *Strength, v string) { s.WeightLbs = v },
	"calories":    func(s *Strength, v string) { s.Calories = v },
}

var nutritionFields = map[string]func(*Nutrition, string){
	"calories":      func(n *Nutrition, v string) { n.Calories = v },
	"carbsG":        func(n *Nutrition, v string) { n.CarbsG = v },
	"proteinG":      func(n *Nutrition, v string) { n.ProteinG = v },
	"fatG":          func(n *Nutrition, v string) { n.FatG = v },
	"fibreG":        func(n *Nutrition, v string) { n.FibreG = v },
	"calorieTarget": func(n *Nutrition, v string) { n.CalorieTarget = v },
}

var mindsetFields = map[string]func(*Mindset, string){
	"mood":         func(m *Mindset, v string) { m.Mood = v },
	"stress":       func(m *Mindset, v string) { m.Stress = v },
	"sleepHrs":     func(m *Mindset, v string) { m.SleepHrs = v },
	"sleepQuality": func(m *Mindset, v string) { m.SleepQuality = v },
	"rhr":          func(m *Mindset, v string) { m.RHR = v },
	"hrv":          func(m *Mindset, v string) { m.HRV = v },
	"notes":        func(m *Mindset, v string) { m.Notes = v },
}

// Apply mutates the entry according to the update.
func (u FieldUpdate) Apply(e *Entry) error {
	switch u.Section {
	case SectionRun:
		if set, ok := runFields[u.Field]; ok {
			set(&e.Workout.Run, u.Value)
			return nil
		}
	case SectionStrength:
		if set, ok := strengthFields[u.Field]; ok {
			set(&e.Workout.Strength, u.Value)
			return nil
		}
	case SectionNutrition:
		if set, ok := nutritionFields[u.Field]; ok {
			set(&e.Nutrition, u.Value)
			return nil
		}
	case SectionMindset:
		if set, ok := mindsetFields[u.Field]; ok {
			set(&e.Mindset, u.Value)
			return nil
		}
	default:
		return fmt.Errorf("unknown section %q", u.Section)
	}
	return fmt.Errorf("unknown field %q in section %q", u.Field, u.Section)
}
