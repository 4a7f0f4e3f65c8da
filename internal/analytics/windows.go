package analytics

import (
	"time"

	"peakform/internal/domain"
)

// Window lengths used by the trend charts.
const (
	trendDays         = 14
	loadDays          = 28
	weeklyLoadWeeks   = 8
	polarizationWeeks = 10
	calendarWeeks     = 4
)

// TrendPoint is one day of the 14-day calories/distance trend.
type TrendPoint struct {
	Date     string  `json:"date"`
	Calories float64 `json:"calories"`
	Distance float64 `json:"distance"`
}

// DailyTrend builds the trailing 14-day calories and run-distance series,
// oldest first, with zero-filled days where no entry exists.
func DailyTrend(snap domain.Snapshot, now time.Time) []TrendPoint {
	out := make([]TrendPoint, 0, trendDays)
	for i := 0; i < trendDays; i++ {
		d := now.AddDate(0, 0, -(trendDays - 1 - i))
		e := entryAt(snap, d)
		out = append(out, TrendPoint{
			Date:     dayLabel(d),
			Calories: ToNumber(e.Nutrition.Calories),
			Distance: ToNumber(e.Workout.Run.DistanceKm),
		})
	}
	return out
}

// CaloriesTargetPoint pairs a day's logged calories with its per-day target.
type CaloriesTargetPoint struct {
	Date     string  `json:"date"`
	Calories float64 `json:"calories"`
	Target   float64 `json:"target"`
}

// CaloriesVsTarget builds the trailing 14-day calories-vs-target series.
// The target plotted is the raw per-day value; days without one show 0.
func CaloriesVsTarget(snap domain.Snapshot, now time.Time) []CaloriesTargetPoint {
	out := make([]CaloriesTargetPoint, 0, trendDays)
	for i := 0; i < trendDays; i++ {
		d := now.AddDate(0, 0, -(trendDays - 1 - i))
		e := entryAt(snap, d)
		out = append(out, CaloriesTargetPoint{
			Date:     dayLabel(d),
			Calories: ToNumber(e.Nutrition.Calories),
			Target:   ToNumber(e.Nutrition.CalorieTarget),
		})
	}
	return out
}

// RollingDistancePoint is one day's trailing-7-day run distance sum.
type RollingDistancePoint struct {
	Date     string  `json:"date"`
	Rolling7 float64 `json:"rolling7"`
}

// RollingDistance builds the 14-day series of trailing-7-day distance sums,
// each window ending on its day inclusive.
func RollingDistance(snap domain.Snapshot, now time.Time) []RollingDistancePoint {
	out := make([]RollingDistancePoint, 0, trendDays)
	for i := 0; i < trendDays; i++ {
		d := now.AddDate(0, 0, -(trendDays - 1 - i))
		out = append(out, RollingDistancePoint{
			Date:     dayLabel(d),
			Rolling7: trailingDistance(snap, d, 7),
		})
	}
	return out
}

// LoadPoint carries the acute (7-day) and chronic (28-day) rolling distance
// sums for one day.
type LoadPoint struct {
	Date    string  `json:"date"`
	Acute   float64 `json:"r7"`
	Chronic float64 `json:"r28"`
}

// TrainingLoad builds the trailing 28-day acute/chronic load series used to
// spot rapid volume increases.
func TrainingLoad(snap domain.Snapshot, now time.Time) []LoadPoint {
	out := make([]LoadPoint, 0, loadDays)
	for i := 0; i < loadDays; i++ {
		d := now.AddDate(0, 0, -(loadDays - 1 - i))
		out = append(out, LoadPoint{
			Date:    dayLabel(d),
			Acute:   trailingDistance(snap, d, 7),
			Chronic: trailingDistance(snap, d, 28),
		})
	}
	return out
}

// WeekLoad is one Monday-anchored week's distance total. PctChange is nil
// for the oldest week and whenever the previous week's total is zero; Risk
// flags a week-over-week increase above +10%.
type WeekLoad struct {
	Label     string   `json:"label"`
	Km        float64  `json:"km"`
	PctChange *float64 `json:"pct,omitempty"`
	Risk      bool     `json:"risk"`
}

// WeeklyLoad buckets run distance into the last 8 Monday-anchored weeks,
// oldest first, ending at the week containing now.
func WeeklyLoad(snap domain.Snapshot, now time.Time) []WeekLoad {
	monday := mondayOfWeek(now)
	weeks := make([]WeekLoad, 0, weeklyLoadWeeks)
	for w := weeklyLoadWeeks - 1; w >= 0; w-- {
		start := monday.AddDate(0, 0, -7*w)
		var km float64
		for d := 0; d < 7; d++ {
			km += runDistanceAt(snap, start.AddDate(0, 0, d))
		}
		weeks = append(weeks, WeekLoad{Label: dayLabel(start), Km: km})
	}
	for i := 1; i < len(weeks); i++ {
		prev := weeks[i-1].Km
		if prev <= 0 {
			continue
		}
		pct := (weeks[i].Km - prev) / prev * 100
		weeks[i].PctChange = &pct
		weeks[i].Risk = pct > 10
	}
	return weeks
}

// Calories per gram used for macro composition.
const (
	kcalPerGramCarb    = 4
	kcalPerGramProtein = 4
	kcalPerGramFat     = 9
)

// MacroPoint is one day's macro composition: percent of macro calories plus
// the raw gram values for tooltips.
type MacroPoint struct {
	Date       string  `json:"date"`
	CarbsPct   float64 `json:"carbsPct"`
	ProteinPct float64 `json:"proteinPct"`
	FatPct     float64 `json:"fatPct"`
	CarbsG     float64 `json:"carbsG"`
	ProteinG   float64 `json:"proteinG"`
	FatG       float64 `json:"fatG"`
}

// MacroComposition builds the 14-day percent-of-calories macro series.
// Percentages are of the carb+protein+fat calorie sum, all zero when
// nothing is logged.
func MacroComposition(snap domain.Snapshot, now time.Time) []MacroPoint {
	out := make([]MacroPoint, 0, trendDays)
	for i := 0; i < trendDays; i++ {
		d := now.AddDate(0, 0, -(trendDays - 1 - i))
		e := entryAt(snap, d)
		carbsG := ToNumber(e.Nutrition.CarbsG)
		proteinG := ToNumber(e.Nutrition.ProteinG)
		fatG := ToNumber(e.Nutrition.FatG)
		cC := carbsG * kcalPerGramCarb
		cP := proteinG * kcalPerGramProtein
		cF := fatG * kcalPerGramFat
		total := cC + cP + cF
		p := MacroPoint{
			Date:     dayLabel(d),
			CarbsG:   carbsG,
			ProteinG: proteinG,
			FatG:     fatG,
		}
		if total > 0 {
			p.CarbsPct = cC / total * 100
			p.ProteinPct = cP / total * 100
			p.FatPct = cF / total * 100
		}
		out = append(out, p)
	}
	return out
}

// RPE bucket boundaries: hard >= 9, moderate 7-8, easy <= 6.
const (
	rpeHardMin     = 9
	rpeModerateMin = 7
)

// PolarizationWeek is one Monday-anchored week's run-intensity distribution.
// Counts are qualifying run-days (distance or duration logged, RPE set);
// percentages are of Total and all zero when no runs qualify.
type PolarizationWeek struct {
	WeekLabel   string  `json:"weekLabel"`
	EasyPct     float64 `json:"easyPct"`
	ModeratePct float64 `json:"moderatePct"`
	HardPct     float64 `json:"hardPct"`
	Easy        int     `json:"easy"`
	Moderate    int     `json:"moderate"`
	Hard        int     `json:"hard"`
	Total       int     `json:"total"`
}

// Polarization buckets the last 10 Monday-anchored weeks of runs by RPE,
// oldest first.
func Polarization(snap domain.Snapshot, now time.Time) []PolarizationWeek {
	monday := mondayOfWeek(now)
	weeks := make([]PolarizationWeek, 0, polarizationWeeks)
	for w := polarizationWeeks - 1; w >= 0; w-- {
		start := monday.AddDate(0, 0, -7*w)
		week := PolarizationWeek{WeekLabel: dayLabel(start)}
		for d := 0; d < 7; d++ {
			run := entryAt(snap, start.AddDate(0, 0, d)).Workout.Run
			rpe := ToNumber(run.RPE)
			hasRun := ToNumber(run.DurationMin) > 0 || ToNumber(run.DistanceKm) > 0
			if !hasRun || rpe <= 0 {
				continue
			}
			week.Total++
			switch {
			case rpe >= rpeHardMin:
				week.Hard++
			case rpe >= rpeModerateMin:
				week.Moderate++
			default:
				week.Easy++
			}
		}
		if week.Total > 0 {
			week.EasyPct = float64(week.Easy) / float64(week.Total) * 100
			week.ModeratePct = float64(week.Moderate) / float64(week.Total) * 100
			week.HardPct = float64(week.Hard) / float64(week.Total) * 100
		}
		weeks = append(weeks, week)
	}
	return weeks
}

// DayStatus classifies a calendar day by what was logged.
type DayStatus string

const (
	StatusNone  DayStatus = "none"  // nothing logged
	StatusNut   DayStatus = "nut"   // calories only
	StatusTrain DayStatus = "train" // calories plus a run or strength session
)

// CalendarDay is one cell of the 4-week logging calendar.
type CalendarDay struct {
	ISO    string    `json:"iso"`
	DayNum int       `json:"dayNum"`
	Status DayStatus `json:"status"`
}

// Calendar builds the last 4 Monday-anchored weeks as rows of 7 days, the
// current week last.
func Calendar(snap domain.Snapshot, now time.Time) [][]CalendarDay {
	start := mondayOfWeek(now).AddDate(0, 0, -7*(calendarWeeks-1))
	weeks := make([][]CalendarDay, 0, calendarWeeks)
	for w := 0; w < calendarWeeks; w++ {
		days := make([]CalendarDay, 0, 7)
		for d := 0; d < 7; d++ {
			dt := start.AddDate(0, 0, w*7+d)
			e := entryAt(snap, dt)
			kcal := ToNumber(e.Nutrition.Calories)
			trained := ToNumber(e.Workout.Run.DistanceKm) > 0 ||
				ToNumber(e.Workout.Strength.Rounds) > 0
			status := StatusNone
			switch {
			case kcal > 0 && trained:
				status = StatusTrain
			case kcal > 0:
				status = StatusNut
			}
			days = append(days, CalendarDay{
				ISO:    domain.DayKey(dt),
				DayNum: dt.Day(),
				Status: status,
			})
		}
		weeks = append(weeks, days)
	}
	return weeks
}
