package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/WarBros01113/Real-SurvEase/internal/model"
	"github.com/WarBros01113/Real-SurvEase/internal/service"
)

type MockSurveyService struct {
	mock.Mock
}

func (m *MockSurveyService) Post(ctx context.Context, ownerID string, in service.PostSurveyInput) (*model.Survey, error) {
	args := m.Called(ctx, ownerID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Survey), args.Error(1)
}

func (m *MockSurveyService) Feed(ctx context.Context, q service.FeedQuery) (*service.FeedResult, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.FeedResult), args.Error(1)
}

func (m *MockSurveyService) Get(ctx context.Context, id string) (*model.SurveyWithStats, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SurveyWithStats), args.Error(1)
}

func (m *MockSurveyService) Delete(ctx context.Context, id, actorID string) error {
	args := m.Called(ctx, id, actorID)
	return args.Error(0)
}

type MockResponseService struct {
	mock.Mock
}

func (m *MockResponseService) Fill(ctx context.Context, surveyID, userID string, in service.FillInput) (*model.Response, error) {
	args := m.Called(ctx, surveyID, userID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Response), args.Error(1)
}

func (m *MockResponseService) List(ctx context.Context, surveyID string) ([]model.Response, error) {
	args := m.Called(ctx, surveyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Response), args.Error(1)
}

type MockLeaderboardService struct {
	mock.Mock
}

func (m *MockLeaderboardService) Top(ctx context.Context, limit int) (*service.LeaderboardResult, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.LeaderboardResult), args.Error(1)
}

type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) Upsert(ctx context.Context, userID string, in service.UpsertProfileInput) (*model.Profile, error) {
	args := m.Called(ctx, userID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

func (m *MockProfileService) Get(ctx context.Context, userID string) (*model.ProfileWithStats, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ProfileWithStats), args.Error(1)
}

func (m *MockProfileService) UploadAvatar(ctx context.Context, userID string, r io.Reader, originalFilename, contentType string, size int64) (*model.Profile, error) {
	args := m.Called(ctx, userID, r, originalFilename, contentType, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

func (m *MockProfileService) AvatarURL(ctx context.Context, userID string) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}

func (m *MockProfileService) Avatar(ctx context.Context, userID string) (io.ReadCloser, string, error) {
	args := m.Called(ctx, userID)
	var rc io.ReadCloser
	if args.Get(0) != nil {
		rc = args.Get(0).(io.ReadCloser)
	}
	return rc, args.String(1), args.Error(2)
}
