package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"peakform/internal/diarytxt"
	"peakform/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var serviceNow = time.Date(2025, 9, 4, 12, 0, 0, 0, time.UTC)

func newDiaryFixture() (DiaryService, *fakeEntryRepo, *fakeSettingsRepo, *fakeFileStorage, primitive.ObjectID) {
	entryRepo := newFakeEntryRepo()
	settingsRepo := &fakeSettingsRepo{}
	fileStorage := newFakeFileStorage()
	svc := NewDiaryService(entryRepo, settingsRepo, fileStorage)
	return svc, entryRepo, settingsRepo, fileStorage, primitive.NewObjectID()
}

func TestGetEntryLazyEmpty(t *testing.T) {
	svc, _, _, _, userID := newDiaryFixture()

	entry, err := svc.GetEntry(context.Background(), userID, "2025-09-04")
	require.NoError(t, err)
	assert.Equal(t, domain.EmptyEntry("2025-09-04"), entry)
	assert.Equal(t, "3", entry.Mindset.Mood)
}

func TestGetEntryRejectsBadDate(t *testing.T) {
	svc, _, _, _, userID := newDiaryFixture()

	_, err := svc.GetEntry(context.Background(), userID, "09/04/2025")
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = svc.GetEntry(context.Background(), userID, "")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestUpdateFieldCreatesAndEdits(t *testing.T) {
	svc, entryRepo, _, _, userID := newDiaryFixture()
	ctx := context.Background()

	update := domain.FieldUpdate{Section: domain.SectionRun, Field: "distanceKm", Value: "12.5"}
	entry, err := svc.UpdateField(ctx, userID, "2025-09-04", update)
	require.NoError(t, err)
	assert.Equal(t, "12.5", entry.Workout.Run.DistanceKm)
	// created from the empty template, defaults intact
	assert.Equal(t, "3", entry.Mindset.Mood)

	// second edit lands on the persisted record, not a fresh template
	update = domain.FieldUpdate{Section: domain.SectionNutrition, Field: "calories", Value: "2400"}
	entry, err = svc.UpdateField(ctx, userID, "2025-09-04", update)
	require.NoError(t, err)
	assert.Equal(t, "12.5", entry.Workout.Run.DistanceKm)
	assert.Equal(t, "2400", entry.Nutrition.Calories)

	stored := entryRepo.entries["2025-09-04"]
	assert.Equal(t, entry, stored)
}

func TestUpdateFieldNormalizesSleepHours(t *testing.T) {
	svc, _, _, _, userID := newDiaryFixture()

	update := domain.FieldUpdate{Section: domain.SectionMindset, Field: "sleepHrs", Value: "7:5"}
	entry, err := svc.UpdateField(context.Background(), userID, "2025-09-04", update)
	require.NoError(t, err)
	assert.Equal(t, "07:05", entry.Mindset.SleepHrs)

	// free text that doesn't look like a time is stored as typed
	update.Value = "slept badly"
	entry, err = svc.UpdateField(context.Background(), userID, "2025-09-04", update)
	require.NoError(t, err)
	assert.Equal(t, "slept badly", entry.Mindset.SleepHrs)
}

func TestUpdateFieldUnknownFieldDoesNotPersist(t *testing.T) {
	svc, entryRepo, _, _, userID := newDiaryFixture()

	update := domain.FieldUpdate{Section: domain.SectionRun, Field: "nope", Value: "1"}
	_, err := svc.UpdateField(context.Background(), userID, "2025-09-04", update)
	require.Error(t, err)
	assert.Empty(t, entryRepo.entries)
}

func TestClearDay(t *testing.T) {
	svc, entryRepo, _, _, userID := newDiaryFixture()
	ctx := context.Background()

	full := domain.EmptyEntry("2025-09-04")
	full.Workout.Run.DistanceKm = "10"
	full.Nutrition.Calories = "2400"
	full.Nutrition.CalorieTarget = "2800"
	require.NoError(t, svc.SaveEntry(ctx, userID, full))

	cleared, err := svc.ClearDay(ctx, userID, "2025-09-04")
	require.NoError(t, err)
	assert.Empty(t, cleared.Workout.Run.DistanceKm)
	assert.Empty(t, cleared.Nutrition.Calories)
	// the per-day target is zeroed explicitly, not just dropped
	assert.Equal(t, "0", cleared.Nutrition.CalorieTarget)
	assert.Equal(t, "3", cleared.Mindset.Mood)

	// cleared entries stay in the store
	assert.Contains(t, entryRepo.entries, "2025-09-04")
}

func TestSnapshotDefaultsSettings(t *testing.T) {
	svc, _, _, _, userID := newDiaryFixture()
	ctx := context.Background()

	require.NoError(t, svc.SaveEntry(ctx, userID, domain.EmptyEntry("2025-09-01")))

	snap, settings, err := svc.Snapshot(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, snap, 1)
	assert.Equal(t, domain.DefaultSettings(), settings)
}

func TestSaveAndGetSettings(t *testing.T) {
	svc, _, _, _, userID := newDiaryFixture()
	ctx := context.Background()

	custom := domain.Settings{
		CalorieTarget: 2800,
		MacroTargets:  domain.MacroTargets{CarbsG: 350, ProteinG: 180, FatG: 80, FibreG: 35},
	}
	require.NoError(t, svc.SaveSettings(ctx, userID, custom))

	got, err := svc.GetSettings(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, custom, got)
}

func TestImportTextRejectsNonTxt(t *testing.T) {
	svc, entryRepo, _, _, userID := newDiaryFixture()

	_, err := svc.ImportText(context.Background(), userID, "diary.csv", "CALORIES=2000\n", serviceNow)
	assert.ErrorIs(t, err, ErrInvalidFileType)
	assert.Empty(t, entryRepo.entries)
}

func TestImportTextStoresEntry(t *testing.T) {
	svc, entryRepo, settingsRepo, _, userID := newDiaryFixture()

	text := "DATE=2025-09-02\nDIST_KM=10\nCALORIES=2200\n"
	imp, err := svc.ImportText(context.Background(), userID, "Diary.TXT", text, serviceNow)
	require.NoError(t, err)

	assert.Equal(t, "2025-09-02", imp.Date)
	stored := entryRepo.entries["2025-09-02"]
	assert.Equal(t, "10", stored.Workout.Run.DistanceKm)
	assert.Equal(t, "2200", stored.Nutrition.Calories)
	// no CALORIE_TARGET in the file, settings untouched
	assert.Nil(t, settingsRepo.settings)
}

func TestImportTextCalorieTargetUpdatesSettings(t *testing.T) {
	svc, _, settingsRepo, _, userID := newDiaryFixture()

	text := "DATE=2025-09-02\nCALORIE_TARGET=2500\n"
	imp, err := svc.ImportText(context.Background(), userID, "diary.txt", text, serviceNow)
	require.NoError(t, err)

	require.NotNil(t, imp.CalorieTarget)
	require.NotNil(t, settingsRepo.settings)
	assert.Equal(t, 2500.0, settingsRepo.settings.CalorieTarget)
	// the rest of the settings keep their defaults
	assert.Equal(t, domain.DefaultSettings().MacroTargets, settingsRepo.settings.MacroTargets)
}

func TestTemplateDownloadURL(t *testing.T) {
	svc, _, _, fileStorage, userID := newDiaryFixture()

	url, err := svc.TemplateDownloadURL(context.Background(), userID, "2025-09-04")
	require.NoError(t, err)

	key := "templates/" + userID.Hex() + "/peakform-template-2025-09-04.txt"
	assert.Equal(t, "https://storage.test/"+key, url)

	uploaded, ok := fileStorage.uploads[key]
	require.True(t, ok, "template should be uploaded before presigning")
	assert.Equal(t, diarytxt.Template("2025-09-04"), uploaded)
	assert.True(t, strings.Contains(uploaded, "DATE=2025-09-04"))
}

func TestTemplateDownloadURLRejectsBadDate(t *testing.T) {
	svc, _, _, fileStorage, userID := newDiaryFixture()

	_, err := svc.TemplateDownloadURL(context.Background(), userID, "next tuesday")
	assert.ErrorIs(t, err, ErrInvalidDate)
	assert.Empty(t, fileStorage.uploads)
}
