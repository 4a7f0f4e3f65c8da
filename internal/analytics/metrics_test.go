package analytics

import (
	"testing"

	"peakform/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nutritionEntry(date string, n domain.Nutrition) domain.Entry {
	return domain.Entry{Date: date, Nutrition: n}
}

func TestTotalsPerDayTargetWins(t *testing.T) {
	entry := nutritionEntry(keyAgo(0), domain.Nutrition{
		Calories:      "1800",
		CarbsG:        "200",
		ProteinG:      "150",
		FatG:          "60",
		FibreG:        "25",
		CalorieTarget: "2000",
	})

	totals := Totals(entry, domain.DefaultSettings())
	assert.Equal(t, 2000.0, totals.DayTarget)
	assert.Equal(t, 200.0, totals.Deficit)
	assert.Equal(t, StatusDeficit, totals.Status)
	assert.Equal(t, 200.0, totals.CarbsG)
	assert.Equal(t, 25.0, totals.FibreG)
}

func TestTotalsGlobalFallback(t *testing.T) {
	entry := nutritionEntry(keyAgo(0), domain.Nutrition{Calories: "3000"})

	totals := Totals(entry, domain.DefaultSettings())
	assert.Equal(t, 2600.0, totals.DayTarget)
	assert.Equal(t, -400.0, totals.Deficit)
	assert.Equal(t, StatusSurplus, totals.Status)
}

func TestTotalsNoTarget(t *testing.T) {
	entry := nutritionEntry(keyAgo(0), domain.Nutrition{Calories: "2200"})

	totals := Totals(entry, domain.Settings{})
	assert.Zero(t, totals.DayTarget)
	assert.Zero(t, totals.Deficit)
	assert.Equal(t, StatusBalance, totals.Status)
}

func sleepEntry(date, hrs string) domain.Entry {
	e := domain.Entry{Date: date}
	e.Mindset.SleepHrs = hrs
	return e
}

func TestSleepSeriesFold(t *testing.T) {
	// Sleep logged on the two oldest days of the 28-day window so the fold
	// starts from a zero balance.
	oldest := keyAgo(27)
	second := keyAgo(26)

	// 9h then 5h: bank 1.5, then decay it at the debt rate and subtract 2.5.
	snapA := domain.Snapshot{
		oldest: sleepEntry(oldest, "9"),
		second: sleepEntry(second, "5"),
	}
	seriesA := SleepSeries(snapA, testNow)
	require.Len(t, seriesA, 28)
	assert.InDelta(t, 1.5, seriesA[0].Balance, 1e-9)
	assert.InDelta(t, 1.5*debtDecay-2.5, seriesA[1].Balance, 1e-9)

	// Reversed order lands somewhere else entirely: the fold is path-dependent.
	snapB := domain.Snapshot{
		oldest: sleepEntry(oldest, "5"),
		second: sleepEntry(second, "9"),
	}
	seriesB := SleepSeries(snapB, testNow)
	assert.InDelta(t, -2.5, seriesB[0].Balance, 1e-9)
	assert.InDelta(t, -2.5*surplusDecay+1.5, seriesB[1].Balance, 1e-9)
	assert.NotEqual(t, seriesA[1].Balance, seriesB[1].Balance)
}

func TestSleepSeriesSurplusCap(t *testing.T) {
	oldest := keyAgo(27)
	snap := domain.Snapshot{
		oldest: sleepEntry(oldest, "10"), // 2.5h over target, banked at most 1.5
	}
	series := SleepSeries(snap, testNow)
	assert.InDelta(t, maxBankedPerDay, series[0].Balance, 1e-9)
}

func TestSleepSeriesMissingDaysAccrueDebt(t *testing.T) {
	series := SleepSeries(domain.Snapshot{}, testNow)
	require.Len(t, series, 28)
	assert.InDelta(t, -sleepTargetHours, series[0].Balance, 1e-9)
	assert.InDelta(t, -sleepTargetHours*debtDecay-sleepTargetHours, series[1].Balance, 1e-9)
	// nothing logged, so the rolling average stays at zero
	assert.Zero(t, series[27].Roll7)
}

func TestSleepSeriesRollingAverageSkipsUnlogged(t *testing.T) {
	snap := domain.Snapshot{
		keyAgo(27): sleepEntry(keyAgo(27), "8"),
		keyAgo(26): sleepEntry(keyAgo(26), "7:00"),
	}
	series := SleepSeries(snap, testNow)

	// only the 8h night is in the first window
	assert.InDelta(t, 8.0, series[0].Roll7, 1e-9)
	// both nights logged, unlogged days excluded from the denominator
	assert.InDelta(t, 7.5, series[1].Roll7, 1e-9)
}

func TestStreak(t *testing.T) {
	snap := domain.Snapshot{
		keyAgo(0): nutritionEntry(keyAgo(0), domain.Nutrition{Calories: "500"}),
		keyAgo(1): nutritionEntry(keyAgo(1), domain.Nutrition{Calories: "300"}),
		keyAgo(2): nutritionEntry(keyAgo(2), domain.Nutrition{}),
		keyAgo(3): nutritionEntry(keyAgo(3), domain.Nutrition{Calories: "900"}),
	}
	assert.Equal(t, 2, Streak(snap, testNow))
}

func TestStreakNothingToday(t *testing.T) {
	snap := domain.Snapshot{
		keyAgo(1): nutritionEntry(keyAgo(1), domain.Nutrition{Calories: "2100"}),
	}
	assert.Equal(t, 0, Streak(snap, testNow))
}
