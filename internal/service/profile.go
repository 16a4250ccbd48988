package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/WarBros01113/Real-SurvEase/internal/model"
	"github.com/WarBros01113/Real-SurvEase/internal/repository"
	"github.com/WarBros01113/Real-SurvEase/internal/storage"
)

// avatarURLExpiry bounds how long a presigned avatar link stays valid.
const avatarURLExpiry = 15 * time.Minute

// UpsertProfileInput carries the user-editable profile fields, including the
// theme display preference.
type UpsertProfileInput struct {
	DisplayName string `json:"display_name"`
	Bio         string `json:"bio"`
	Theme       string `json:"theme"`
}

// ProfileService defines the use cases around user profiles and avatars.
type ProfileService interface {
	// Upsert creates or updates the user's profile.
	Upsert(ctx context.Context, userID string, in UpsertProfileInput) (*model.Profile, error)

	// Get returns the profile together with posted/filled counts.
	Get(ctx context.Context, userID string) (*model.ProfileWithStats, error)

	// UploadAvatar stores the image in object storage, records its key on the
	// profile, and rolls back the object if the DB update fails. A previous
	// avatar object is removed best-effort.
	UploadAvatar(ctx context.Context, userID string, r io.Reader, originalFilename, contentType string, size int64) (*model.Profile, error)

	// AvatarURL returns a presigned, time-limited download URL for the
	// user's avatar.
	AvatarURL(ctx context.Context, userID string) (string, error)

	// Avatar streams the avatar content with its stored content type.
	Avatar(ctx context.Context, userID string) (io.ReadCloser, string, error)
}

type profileService struct {
	profiles  repository.ProfileRepository
	surveys   repository.SurveyRepository
	responses repository.ResponseRepository
	store     storage.Storage
}

// NewProfileService constructs a new ProfileService.
func NewProfileService(profiles repository.ProfileRepository, surveys repository.SurveyRepository, responses repository.ResponseRepository, store storage.Storage) ProfileService {
	return &profileService{profiles: profiles, surveys: surveys, responses: responses, store: store}
}

func (s *profileService) Upsert(ctx context.Context, userID string, in UpsertProfileInput) (*model.Profile, error) {
	if userID == "" {
		return nil, ErrIDRequired
	}
	name := strings.TrimSpace(in.DisplayName)
	if name == "" {
		return nil, ErrNameRequired
	}
	theme := in.Theme
	if theme == "" {
		theme = model.ThemeLight
	}
	if theme != model.ThemeLight && theme != model.ThemeDark {
		return nil, ErrInvalidTheme
	}

	now := time.Now().UTC()
	stored, err := s.profiles.Upsert(ctx, &model.Profile{
		UserID:      userID,
		DisplayName: name,
		Bio:         strings.TrimSpace(in.Bio),
		Theme:       theme,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}
	return stored, nil
}

func (s *profileService) Get(ctx context.Context, userID string) (*model.ProfileWithStats, error) {
	if userID == "" {
		return nil, ErrIDRequired
	}
	p, err := s.profiles.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	// Counts come from flat rows, same as the feed aggregates.
	surveys, err := s.surveys.AllRows(ctx)
	if err != nil {
		return nil, err
	}
	responses, err := s.responses.AllRows(ctx)
	if err != nil {
		return nil, err
	}
	out := &model.ProfileWithStats{Profile: *p}
	for _, sv := range surveys {
		if sv.OwnerID == userID {
			out.SurveysPosted++
		}
	}
	for _, r := range responses {
		if r.UserID == userID {
			out.SurveysFilled++
		}
	}
	return out, nil
}

func (s *profileService) UploadAvatar(ctx context.Context, userID string, r io.Reader, originalFilename, contentType string, size int64) (*model.Profile, error) {
	if userID == "" {
		return nil, ErrIDRequired
	}
	if r == nil {
		return nil, ErrReaderNil
	}

	prev, err := s.profiles.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	ext := filepath.Ext(originalFilename)
	key := filepath.ToSlash(filepath.Join("avatars", uuid.New().String()+ext))

	info, err := s.store.Put(ctx, key, r, storage.PutObjectOptions{
		Size:        size,
		ContentType: contentType,
		Metadata: map[string]string{
			"user-id":           userID,
			"original-filename": originalFilename,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	if err := s.profiles.SetAvatarPath(ctx, userID, info.Key); err != nil {
		// Rollback: remove the freshly uploaded object.
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}

	// Old object is unreferenced now; losing it is harmless.
	if prev.AvatarPath != "" && prev.AvatarPath != info.Key {
		_ = s.store.Delete(ctx, prev.AvatarPath)
	}

	prev.AvatarPath = info.Key
	prev.UpdatedAt = time.Now().UTC()
	return prev, nil
}

func (s *profileService) AvatarURL(ctx context.Context, userID string) (string, error) {
	p, err := s.avatarProfile(ctx, userID)
	if err != nil {
		return "", err
	}
	u, err := s.store.PresignGet(ctx, p.AvatarPath, avatarURLExpiry)
	if err != nil {
		return "", fmt.Errorf("presign avatar: %w", err)
	}
	return u, nil
}

func (s *profileService) Avatar(ctx context.Context, userID string) (io.ReadCloser, string, error) {
	p, err := s.avatarProfile(ctx, userID)
	if err != nil {
		return nil, "", err
	}
	rc, info, err := s.store.Get(ctx, p.AvatarPath)
	if err != nil {
		return nil, "", fmt.Errorf("fetch avatar: %w", err)
	}
	return rc, info.ContentType, nil
}

func (s *profileService) avatarProfile(ctx context.Context, userID string) (*model.Profile, error) {
	if userID == "" {
		return nil, ErrIDRequired
	}
	p, err := s.profiles.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if p.AvatarPath == "" {
		return nil, ErrNoAvatar
	}
	return p, nil
}
