package service

import (
	"context"
	"time"

	"peakform/internal/analytics"
	"peakform/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Dashboard bundles every derived series and summary projection the diary
// page renders, computed in one pass over the user's snapshot.
type Dashboard struct {
	Date    string `json:"date"`
	Streak  int    `json:"streak"`
	Summary string `json:"summary"`

	Totals           analytics.DayTotals              `json:"totals"`
	DailyTrend       []analytics.TrendPoint           `json:"dailyTrend"`
	CaloriesVsTarget []analytics.CaloriesTargetPoint  `json:"caloriesVsTarget"`
	RollingDistance  []analytics.RollingDistancePoint `json:"rollingDistance"`
	TrainingLoad     []analytics.LoadPoint            `json:"trainingLoad"`
	WeeklyLoad       []analytics.WeekLoad             `json:"weeklyLoad"`
	Macros           []analytics.MacroPoint           `json:"macros"`
	Sleep            []analytics.SleepPoint           `json:"sleep"`
	Polarization     []analytics.PolarizationWeek     `json:"polarization"`
	Calendar         [][]analytics.CalendarDay        `json:"calendar"`
}

// InsightsService recomputes the full dashboard from the entry store. Every
// series is a pure function of (snapshot, now, settings); there is no
// incremental state.
type InsightsService interface {
	Dashboard(ctx context.Context, userID primitive.ObjectID, now time.Time) (*Dashboard, error)
}

type insightsService struct {
	diary DiaryService
}

// NewInsightsService creates a new instance of insightsService.
func NewInsightsService(diary DiaryService) InsightsService {
	return &insightsService{diary: diary}
}

// Dashboard pulls the snapshot once and derives every chart series and
// summary projection for the day of now.
func (s *insightsService) Dashboard(ctx context.Context, userID primitive.ObjectID, now time.Time) (*Dashboard, error) {
	snapshot, settings, err := s.diary.Snapshot(ctx, userID)
	if err != nil {
		return nil, err
	}

	today := domain.DayKey(now)
	entry, ok := snapshot[today]
	if !ok {
		entry = domain.EmptyEntry(today)
	}

	return &Dashboard{
		Date:             today,
		Streak:           analytics.Streak(snapshot, now),
		Summary:          analytics.EndOfDaySummary(entry),
		Totals:           analytics.Totals(entry, settings),
		DailyTrend:       analytics.DailyTrend(snapshot, now),
		CaloriesVsTarget: analytics.CaloriesVsTarget(snapshot, now),
		RollingDistance:  analytics.RollingDistance(snapshot, now),
		TrainingLoad:     analytics.TrainingLoad(snapshot, now),
		WeeklyLoad:       analytics.WeeklyLoad(snapshot, now),
		Macros:           analytics.MacroComposition(snapshot, now),
		Sleep:            analytics.SleepSeries(snapshot, now),
		Polarization:     analytics.Polarization(snapshot, now),
		Calendar:         analytics.Calendar(snapshot, now),
	}, nil
}
