package analytics

import (
	"math"
	"time"

	"peakform/internal/domain"
)

// BalanceStatus says which side of the calorie target a day landed on.
type BalanceStatus string

const (
	StatusBalance BalanceStatus = "balance"
	StatusDeficit BalanceStatus = "deficit"
	StatusSurplus BalanceStatus = "surplus"
)

// DayTotals is the single-day nutrition rollup shown in the summary panel.
// Deficit is positive when under target, negative when over, zero when no
// target applies.
type DayTotals struct {
	Calories  float64       `json:"calories"`
	CarbsG    float64       `json:"carbsG"`
	ProteinG  float64       `json:"proteinG"`
	FatG      float64       `json:"fatG"`
	FibreG    float64       `json:"fibreG"`
	DayTarget float64       `json:"dayTarget"`
	Deficit   float64       `json:"deficit"`
	Status    BalanceStatus `json:"status"`
}

// Totals computes the day's nutrition balance. The per-day calorie target
// wins when present and nonzero; otherwise the global settings target
// applies; with neither, deficit is 0 and the day reads as balanced.
func Totals(entry domain.Entry, settings domain.Settings) DayTotals {
	n := entry.Nutrition
	target := ToNumber(n.CalorieTarget)
	if target == 0 {
		target = settings.CalorieTarget
	}
	t := DayTotals{
		Calories:  ToNumber(n.Calories),
		CarbsG:    ToNumber(n.CarbsG),
		ProteinG:  ToNumber(n.ProteinG),
		FatG:      ToNumber(n.FatG),
		FibreG:    ToNumber(n.FibreG),
		DayTarget: target,
		Status:    StatusBalance,
	}
	if target != 0 {
		t.Deficit = target - t.Calories
	}
	switch {
	case t.Deficit > 0:
		t.Status = StatusDeficit
	case t.Deficit < 0:
		t.Status = StatusSurplus
	}
	return t
}

// Sleep balance fold parameters. Surplus banks decay fast and are capped per
// night; debt decays slower and is uncapped.
const (
	sleepTargetHours = 7.5
	surplusDecay     = 0.6
	debtDecay        = 0.9
	maxBankedPerDay  = 1.5
)

// SleepPoint carries one day of the sleep series: the trailing-7-day average
// over logged nights and the running banked/debt balance.
type SleepPoint struct {
	Date    string  `json:"date"`
	Roll7   float64 `json:"roll7"`
	Balance float64 `json:"balance"`
}

// SleepSeries walks the trailing 28 days in chronological order, folding the
// asymmetric-decay balance. The fold is path-dependent: the order of days
// matters and a single day cannot be computed in isolation. The rolling
// average counts only days with logged sleep (> 0 hours) in both sum and
// count.
func SleepSeries(snap domain.Snapshot, now time.Time) []SleepPoint {
	out := make([]SleepPoint, 0, loadDays)
	var balance float64
	for i := 0; i < loadDays; i++ {
		d := now.AddDate(0, 0, -(loadDays - 1 - i))
		hrs := HoursFromTimeOfDay(entryAt(snap, d).Mindset.SleepHrs)

		var sum float64
		var cnt int
		for k := 0; k < 7; k++ {
			hv := HoursFromTimeOfDay(entryAt(snap, d.AddDate(0, 0, -k)).Mindset.SleepHrs)
			if hv > 0 {
				sum += hv
				cnt++
			}
		}
		var roll7 float64
		if cnt > 0 {
			roll7 = sum / float64(cnt)
		}

		delta := hrs - sleepTargetHours
		if delta >= 0 {
			balance = balance*surplusDecay + math.Min(delta, maxBankedPerDay)
		} else {
			balance = balance*debtDecay + delta
		}

		out = append(out, SleepPoint{Date: dayLabel(d), Roll7: roll7, Balance: balance})
	}
	return out
}

// Streak counts consecutive days with logged calories, walking back from
// today and stopping at the first day with none. Zero is a valid streak.
func Streak(snap domain.Snapshot, now time.Time) int {
	days := 0
	for {
		d := now.AddDate(0, 0, -days)
		if ToNumber(entryAt(snap, d).Nutrition.Calories) <= 0 {
			return days
		}
		days++
	}
}
