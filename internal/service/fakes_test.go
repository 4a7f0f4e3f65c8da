package service

import (
	"context"
	"fmt"
	"time"

	"peakform/internal/domain"
	"peakform/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory fakes backing the service tests. They implement the repository
// and storage interfaces with plain maps, single-user scoped since every
// test uses one user ID.

type fakeEntryRepo struct {
	entries map[string]domain.Entry
	err     error
}

func newFakeEntryRepo() *fakeEntryRepo {
	return &fakeEntryRepo{entries: make(map[string]domain.Entry)}
}

func (r *fakeEntryRepo) Upsert(_ context.Context, _ primitive.ObjectID, entry domain.Entry) error {
	if r.err != nil {
		return r.err
	}
	r.entries[entry.Date] = entry
	return nil
}

func (r *fakeEntryRepo) GetByDate(_ context.Context, _ primitive.ObjectID, date string) (*domain.Entry, error) {
	if r.err != nil {
		return nil, r.err
	}
	entry, ok := r.entries[date]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &entry, nil
}

func (r *fakeEntryRepo) ListAll(_ context.Context, _ primitive.ObjectID) (domain.Snapshot, error) {
	if r.err != nil {
		return nil, r.err
	}
	snap := make(domain.Snapshot, len(r.entries))
	for k, v := range r.entries {
		snap[k] = v
	}
	return snap, nil
}

type fakeSettingsRepo struct {
	settings *domain.Settings
	err      error
}

func (r *fakeSettingsRepo) Upsert(_ context.Context, _ primitive.ObjectID, settings domain.Settings) error {
	if r.err != nil {
		return r.err
	}
	r.settings = &settings
	return nil
}

func (r *fakeSettingsRepo) Get(_ context.Context, _ primitive.ObjectID) (*domain.Settings, error) {
	if r.err != nil {
		return nil, r.err
	}
	if r.settings == nil {
		return nil, repository.ErrNotFound
	}
	s := *r.settings
	return &s, nil
}

type fakeUserRepo struct {
	byEmail map[string]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*domain.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) (primitive.ObjectID, error) {
	if _, exists := r.byEmail[user.Email]; exists {
		return primitive.NilObjectID, fmt.Errorf("email '%s' already exists", user.Email)
	}
	u := *user
	u.ID = primitive.NewObjectID()
	r.byEmail[u.Email] = &u
	return u.ID, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	user, ok := r.byEmail[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	u := *user
	return &u, nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.User, error) {
	for _, user := range r.byEmail {
		if user.ID == id {
			u := *user
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) SetLoginToken(_ context.Context, id primitive.ObjectID, tokenHash string, expiry time.Time) error {
	for _, user := range r.byEmail {
		if user.ID == id {
			user.LoginTokenHash = tokenHash
			user.LoginTokenExpiry = expiry
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *fakeUserRepo) ClearLoginToken(_ context.Context, id primitive.ObjectID) error {
	for _, user := range r.byEmail {
		if user.ID == id {
			user.LoginTokenHash = ""
			user.LoginTokenExpiry = time.Time{}
			return nil
		}
	}
	return repository.ErrNotFound
}

type fakeFileStorage struct {
	uploads map[string]string
	err     error
}

func newFakeFileStorage() *fakeFileStorage {
	return &fakeFileStorage{uploads: make(map[string]string)}
}

func (s *fakeFileStorage) UploadText(_ context.Context, objectKey, content string) error {
	if s.err != nil {
		return s.err
	}
	s.uploads[objectKey] = content
	return nil
}

func (s *fakeFileStorage) GeneratePresignedDownloadURL(_ context.Context, objectKey string, _ time.Duration) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return "https://storage.test/" + objectKey, nil
}

func (s *fakeFileStorage) DeleteObject(_ context.Context, objectKey string) error {
	delete(s.uploads, objectKey)
	return nil
}
