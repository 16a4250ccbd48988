package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/WarBros01113/Real-SurvEase/internal/model"
)

type MockResponseRepository struct {
	mock.Mock
}

func (m *MockResponseRepository) Create(ctx context.Context, r *model.Response) (*model.Response, error) {
	args := m.Called(ctx, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Response), args.Error(1)
}

func (m *MockResponseRepository) ListBySurvey(ctx context.Context, surveyID string) ([]model.Response, error) {
	args := m.Called(ctx, surveyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Response), args.Error(1)
}

func (m *MockResponseRepository) ListBySurveys(ctx context.Context, ids []string) ([]model.Response, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Response), args.Error(1)
}

func (m *MockResponseRepository) Exists(ctx context.Context, surveyID, userID string) (bool, error) {
	args := m.Called(ctx, surveyID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockResponseRepository) AllRows(ctx context.Context) ([]model.Response, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Response), args.Error(1)
}

func (m *MockResponseRepository) DeleteBySurvey(ctx context.Context, surveyID string) error {
	args := m.Called(ctx, surveyID)
	return args.Error(0)
}
