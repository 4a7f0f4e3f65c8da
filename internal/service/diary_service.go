package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"peakform/internal/analytics"
	"peakform/internal/diarytxt"
	"peakform/internal/domain"
	"peakform/internal/repository"
	"peakform/internal/storage"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrInvalidDate     = errors.New("date must be formatted as YYYY-MM-DD")
	ErrInvalidFileType = errors.New("import file must be a .txt file")
)

// DiaryService owns the entry store boundary: lazy per-day entries,
// field-by-field updates, clear-day resets, settings, txt import and
// template export.
type DiaryService interface {
	GetEntry(ctx context.Context, userID primitive.ObjectID, date string) (domain.Entry, error)
	SaveEntry(ctx context.Context, userID primitive.ObjectID, entry domain.Entry) error
	UpdateField(ctx context.Context, userID primitive.ObjectID, date string, update domain.FieldUpdate) (domain.Entry, error)
	ClearDay(ctx context.Context, userID primitive.ObjectID, date string) (domain.Entry, error)

	Snapshot(ctx context.Context, userID primitive.ObjectID) (domain.Snapshot, domain.Settings, error)
	GetSettings(ctx context.Context, userID primitive.ObjectID) (domain.Settings, error)
	SaveSettings(ctx context.Context, userID primitive.ObjectID, settings domain.Settings) error

	ImportText(ctx context.Context, userID primitive.ObjectID, filename, text string, now time.Time) (diarytxt.Import, error)
	TemplateDownloadURL(ctx context.Context, userID primitive.ObjectID, date string) (string, error)
}

type diaryService struct {
	entryRepo    repository.EntryRepository
	settingsRepo repository.SettingsRepository
	fileStorage  storage.FileStorage
}

// NewDiaryService creates a new instance of diaryService.
func NewDiaryService(
	entryRepo repository.EntryRepository,
	settingsRepo repository.SettingsRepository,
	fileStorage storage.FileStorage,
) DiaryService {
	return &diaryService{
		entryRepo:    entryRepo,
		settingsRepo: settingsRepo,
		fileStorage:  fileStorage,
	}
}

func validDate(date string) error {
	if _, err := time.Parse(domain.DateLayout, date); err != nil {
		return ErrInvalidDate
	}
	return nil
}

// GetEntry returns the stored entry for the date, or the empty template when
// none exists yet. A missing entry is a valid state, not an error.
func (s *diaryService) GetEntry(ctx context.Context, userID primitive.ObjectID, date string) (domain.Entry, error) {
	if err := validDate(date); err != nil {
		return domain.Entry{}, err
	}
	entry, err := s.entryRepo.GetByDate(ctx, userID, date)
	if errors.Is(err, repository.ErrNotFound) {
		return domain.EmptyEntry(date), nil
	}
	if err != nil {
		return domain.Entry{}, err
	}
	return *entry, nil
}

// SaveEntry upserts a full entry record.
func (s *diaryService) SaveEntry(ctx context.Context, userID primitive.ObjectID, entry domain.Entry) error {
	if err := validDate(entry.Date); err != nil {
		return err
	}
	return s.entryRepo.Upsert(ctx, userID, entry)
}

// UpdateField applies a single-field edit to the date's entry (creating the
// empty template first when needed) and re-saves the whole record. Sleep
// hours get re-rendered as zero-padded HH:MM on save.
func (s *diaryService) UpdateField(ctx context.Context, userID primitive.ObjectID, date string, update domain.FieldUpdate) (domain.Entry, error) {
	entry, err := s.GetEntry(ctx, userID, date)
	if err != nil {
		return domain.Entry{}, err
	}
	if update.Section == domain.SectionMindset && update.Field == "sleepHrs" {
		update.Value = analytics.NormalizeTimeOfDay(update.Value)
	}
	if err := update.Apply(&entry); err != nil {
		return domain.Entry{}, err
	}
	if err := s.entryRepo.Upsert(ctx, userID, entry); err != nil {
		return domain.Entry{}, err
	}
	return entry, nil
}

// ClearDay resets the date's entry to the defaulted template with the
// per-day calorie target zeroed. Entries are never hard-deleted.
func (s *diaryService) ClearDay(ctx context.Context, userID primitive.ObjectID, date string) (domain.Entry, error) {
	if err := validDate(date); err != nil {
		return domain.Entry{}, err
	}
	cleared := domain.ClearedEntry(date)
	if err := s.entryRepo.Upsert(ctx, userID, cleared); err != nil {
		return domain.Entry{}, err
	}
	return cleared, nil
}

// Snapshot pulls the user's full entry store and settings, falling back to
// the default settings when none were saved yet.
func (s *diaryService) Snapshot(ctx context.Context, userID primitive.ObjectID) (domain.Snapshot, domain.Settings, error) {
	snapshot, err := s.entryRepo.ListAll(ctx, userID)
	if err != nil {
		return nil, domain.Settings{}, err
	}
	settings, err := s.GetSettings(ctx, userID)
	if err != nil {
		return nil, domain.Settings{}, err
	}
	return snapshot, settings, nil
}

// GetSettings returns the user's settings, defaulted when absent.
func (s *diaryService) GetSettings(ctx context.Context, userID primitive.ObjectID) (domain.Settings, error) {
	settings, err := s.settingsRepo.Get(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return domain.DefaultSettings(), nil
	}
	if err != nil {
		return domain.Settings{}, err
	}
	return *settings, nil
}

// SaveSettings upserts the user's settings record.
func (s *diaryService) SaveSettings(ctx context.Context, userID primitive.ObjectID, settings domain.Settings) error {
	return s.settingsRepo.Upsert(ctx, userID, settings)
}

// ImportText parses a diary text file and stores the resulting entry under
// its date, replacing whatever was there. When the file carries a parseable
// CALORIE_TARGET the global settings target is updated as well; the per-day
// target on the entry still wins for that date's own balance.
func (s *diaryService) ImportText(ctx context.Context, userID primitive.ObjectID, filename, text string, now time.Time) (diarytxt.Import, error) {
	if !strings.HasSuffix(strings.ToLower(filename), ".txt") {
		return diarytxt.Import{}, ErrInvalidFileType
	}

	imp := diarytxt.Parse(text, now)
	if err := s.entryRepo.Upsert(ctx, userID, imp.Entry); err != nil {
		return diarytxt.Import{}, err
	}

	if imp.CalorieTarget != nil {
		settings, err := s.GetSettings(ctx, userID)
		if err != nil {
			return diarytxt.Import{}, err
		}
		settings.CalorieTarget = *imp.CalorieTarget
		if err := s.settingsRepo.Upsert(ctx, userID, settings); err != nil {
			return diarytxt.Import{}, err
		}
	}

	logrus.WithFields(logrus.Fields{
		"user": userID.Hex(),
		"date": imp.Date,
	}).Info("diary text imported")
	return imp, nil
}

// TemplateDownloadURL renders the txt template for the date, stores it in
// object storage and returns a short-lived presigned download URL.
func (s *diaryService) TemplateDownloadURL(ctx context.Context, userID primitive.ObjectID, date string) (string, error) {
	if err := validDate(date); err != nil {
		return "", err
	}

	objectKey := fmt.Sprintf("templates/%s/peakform-template-%s.txt", userID.Hex(), date)
	if err := s.fileStorage.UploadText(ctx, objectKey, diarytxt.Template(date)); err != nil {
		return "", err
	}
	return s.fileStorage.GeneratePresignedDownloadURL(ctx, objectKey, storage.DefaultPresignedURLExpiry)
}
