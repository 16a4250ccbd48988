package service

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/WarBros01113/Real-SurvEase/internal/model"
	repoMocks "github.com/WarBros01113/Real-SurvEase/internal/repository/mocks"
	"github.com/WarBros01113/Real-SurvEase/internal/storage"
	storeMocks "github.com/WarBros01113/Real-SurvEase/internal/storage/mocks"
)

func newProfileService(mProfiles *repoMocks.MockProfileRepository, mSurveys *repoMocks.MockSurveyRepository, mResponses *repoMocks.MockResponseRepository, mStore *storeMocks.MockStorage) ProfileService {
	return NewProfileService(mProfiles, mSurveys, mResponses, mStore)
}

func TestProfileService_Upsert(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		userID     string
		in         UpsertProfileInput
		setupMocks func(mProfiles *repoMocks.MockProfileRepository)
		wantErr    error
	}{
		{
			name:   "happy path defaults theme to light",
			userID: "u1",
			in:     UpsertProfileInput{DisplayName: " Asha ", Bio: "hi"},
			setupMocks: func(mProfiles *repoMocks.MockProfileRepository) {
				mProfiles.On("Upsert", ctx, mock.MatchedBy(func(p *model.Profile) bool {
					return p.UserID == "u1" && p.DisplayName == "Asha" && p.Theme == model.ThemeLight
				})).Return(&model.Profile{UserID: "u1", DisplayName: "Asha", Theme: model.ThemeLight}, nil)
			},
		},
		{
			name:   "dark theme accepted",
			userID: "u1",
			in:     UpsertProfileInput{DisplayName: "Asha", Theme: model.ThemeDark},
			setupMocks: func(mProfiles *repoMocks.MockProfileRepository) {
				mProfiles.On("Upsert", ctx, mock.MatchedBy(func(p *model.Profile) bool {
					return p.Theme == model.ThemeDark
				})).Return(&model.Profile{UserID: "u1", Theme: model.ThemeDark}, nil)
			},
		},
		{
			name:    "blank name",
			userID:  "u1",
			in:      UpsertProfileInput{DisplayName: "  "},
			wantErr: ErrNameRequired,
		},
		{
			name:    "unknown theme",
			userID:  "u1",
			in:      UpsertProfileInput{DisplayName: "Asha", Theme: "solarized"},
			wantErr: ErrInvalidTheme,
		},
		{
			name:    "missing id",
			userID:  "",
			in:      UpsertProfileInput{DisplayName: "Asha"},
			wantErr: ErrIDRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mProfiles := new(repoMocks.MockProfileRepository)
			if tt.setupMocks != nil {
				tt.setupMocks(mProfiles)
			}
			svc := newProfileService(mProfiles, new(repoMocks.MockSurveyRepository), new(repoMocks.MockResponseRepository), new(storeMocks.MockStorage))

			got, err := svc.Upsert(ctx, tt.userID, tt.in)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, got)
			}
			mProfiles.AssertExpectations(t)
		})
	}
}

func TestProfileService_Get(t *testing.T) {
	ctx := context.Background()

	mProfiles := new(repoMocks.MockProfileRepository)
	mSurveys := new(repoMocks.MockSurveyRepository)
	mResponses := new(repoMocks.MockResponseRepository)
	svc := newProfileService(mProfiles, mSurveys, mResponses, new(storeMocks.MockStorage))

	mProfiles.On("FindByUserID", ctx, "u1").Return(&model.Profile{UserID: "u1", DisplayName: "Asha"}, nil)
	mSurveys.On("AllRows", ctx).Return([]model.Survey{
		{ID: "s1", OwnerID: "u1"},
		{ID: "s2", OwnerID: "u2"},
	}, nil)
	mResponses.On("AllRows", ctx).Return([]model.Response{
		{ID: "r1", SurveyID: "s2", UserID: "u1"},
		{ID: "r2", SurveyID: "s1", UserID: "u2"},
	}, nil)

	got, err := svc.Get(ctx, "u1")

	assert.NoError(t, err)
	assert.Equal(t, 1, got.SurveysPosted)
	assert.Equal(t, 1, got.SurveysFilled)
}

func TestProfileService_UploadAvatar(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path replaces previous object", func(t *testing.T) {
		mProfiles := new(repoMocks.MockProfileRepository)
		mStore := new(storeMocks.MockStorage)
		svc := newProfileService(mProfiles, new(repoMocks.MockSurveyRepository), new(repoMocks.MockResponseRepository), mStore)

		r := strings.NewReader("png-bytes")
		mProfiles.On("FindByUserID", ctx, "u1").
			Return(&model.Profile{UserID: "u1", AvatarPath: "avatars/old.png"}, nil)
		mStore.On("Put", ctx, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "avatars/") && strings.HasSuffix(key, ".png")
		}), r, mock.Anything).
			Return(func(ctx context.Context, key string, r io.Reader, opt storage.PutObjectOptions) storage.ObjectInfo {
				return storage.ObjectInfo{Key: key}
			}, nil)
		mProfiles.On("SetAvatarPath", ctx, "u1", mock.Anything).Return(nil)
		mStore.On("Delete", ctx, "avatars/old.png").Return(nil)

		got, err := svc.UploadAvatar(ctx, "u1", r, "me.png", "image/png", 9)

		assert.NoError(t, err)
		assert.NotEqual(t, "avatars/old.png", got.AvatarPath)
		mStore.AssertExpectations(t)
		mProfiles.AssertExpectations(t)
	})

	t.Run("db failure rolls back the upload", func(t *testing.T) {
		mProfiles := new(repoMocks.MockProfileRepository)
		mStore := new(storeMocks.MockStorage)
		svc := newProfileService(mProfiles, new(repoMocks.MockSurveyRepository), new(repoMocks.MockResponseRepository), mStore)

		r := strings.NewReader("png-bytes")
		mProfiles.On("FindByUserID", ctx, "u1").Return(&model.Profile{UserID: "u1"}, nil)
		mStore.On("Put", ctx, mock.Anything, r, mock.Anything).
			Return(func(ctx context.Context, key string, r io.Reader, opt storage.PutObjectOptions) storage.ObjectInfo {
				return storage.ObjectInfo{Key: key}
			}, nil)
		mProfiles.On("SetAvatarPath", ctx, "u1", mock.Anything).Return(errors.New("db fail"))
		mStore.On("Delete", ctx, mock.Anything).Return(nil)

		got, err := svc.UploadAvatar(ctx, "u1", r, "me.png", "image/png", 9)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "db save failed")
		assert.Nil(t, got)
		mStore.AssertExpectations(t)
	})

	t.Run("missing profile", func(t *testing.T) {
		mProfiles := new(repoMocks.MockProfileRepository)
		mStore := new(storeMocks.MockStorage)
		svc := newProfileService(mProfiles, new(repoMocks.MockSurveyRepository), new(repoMocks.MockResponseRepository), mStore)

		mProfiles.On("FindByUserID", ctx, "ghost").Return(nil, sql.ErrNoRows)

		got, err := svc.UploadAvatar(ctx, "ghost", strings.NewReader("x"), "me.png", "image/png", 1)

		assert.ErrorIs(t, err, ErrNotFound)
		assert.Nil(t, got)
	})

	t.Run("nil reader", func(t *testing.T) {
		svc := newProfileService(new(repoMocks.MockProfileRepository), new(repoMocks.MockSurveyRepository), new(repoMocks.MockResponseRepository), new(storeMocks.MockStorage))

		got, err := svc.UploadAvatar(ctx, "u1", nil, "me.png", "image/png", 1)

		assert.ErrorIs(t, err, ErrReaderNil)
		assert.Nil(t, got)
	})
}

func TestProfileService_AvatarURL(t *testing.T) {
	ctx := context.Background()

	t.Run("presigns stored path", func(t *testing.T) {
		mProfiles := new(repoMocks.MockProfileRepository)
		mStore := new(storeMocks.MockStorage)
		svc := newProfileService(mProfiles, new(repoMocks.MockSurveyRepository), new(repoMocks.MockResponseRepository), mStore)

		mProfiles.On("FindByUserID", ctx, "u1").
			Return(&model.Profile{UserID: "u1", AvatarPath: "avatars/a.png"}, nil)
		mStore.On("PresignGet", ctx, "avatars/a.png", avatarURLExpiry).
			Return("https://minio.example.com/signed", nil)

		u, err := svc.AvatarURL(ctx, "u1")

		assert.NoError(t, err)
		assert.Equal(t, "https://minio.example.com/signed", u)
	})

	t.Run("no avatar uploaded", func(t *testing.T) {
		mProfiles := new(repoMocks.MockProfileRepository)
		svc := newProfileService(mProfiles, new(repoMocks.MockSurveyRepository), new(repoMocks.MockResponseRepository), new(storeMocks.MockStorage))

		mProfiles.On("FindByUserID", ctx, "u1").Return(&model.Profile{UserID: "u1"}, nil)

		u, err := svc.AvatarURL(ctx, "u1")

		assert.ErrorIs(t, err, ErrNoAvatar)
		assert.Empty(t, u)
	})
}
