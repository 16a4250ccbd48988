package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/WarBros01113/Real-SurvEase/internal/model"
)

type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) Upsert(ctx context.Context, p *model.Profile) (*model.Profile, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

func (m *MockProfileRepository) FindByUserID(ctx context.Context, userID string) (*model.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

func (m *MockProfileRepository) SetAvatarPath(ctx context.Context, userID, path string) error {
	args := m.Called(ctx, userID, path)
	return args.Error(0)
}

func (m *MockProfileRepository) AllRows(ctx context.Context) ([]model.Profile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Profile), args.Error(1)
}
