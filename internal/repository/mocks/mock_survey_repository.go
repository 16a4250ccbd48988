package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/WarBros01113/Real-SurvEase/internal/model"
	"github.com/WarBros01113/Real-SurvEase/internal/repository"
)

type MockSurveyRepository struct {
	mock.Mock
}

func (m *MockSurveyRepository) Create(ctx context.Context, s *model.Survey) (*model.Survey, error) {
	args := m.Called(ctx, s)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Survey), args.Error(1)
}

func (m *MockSurveyRepository) FindByID(ctx context.Context, id string) (*model.Survey, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Survey), args.Error(1)
}

func (m *MockSurveyRepository) List(ctx context.Context, f repository.SurveyFilter, pq repository.PageQuery) (*repository.PageResult[model.Survey], error) {
	args := m.Called(ctx, f, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Survey]), args.Error(1)
}

func (m *MockSurveyRepository) AllRows(ctx context.Context) ([]model.Survey, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Survey), args.Error(1)
}

func (m *MockSurveyRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
