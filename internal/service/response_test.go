package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/WarBros01113/Real-SurvEase/internal/model"
	repoMocks "github.com/WarBros01113/Real-SurvEase/internal/repository/mocks"
)

func TestResponseService_Fill(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		surveyID   string
		userID     string
		in         FillInput
		setupMocks func(mSurveys *repoMocks.MockSurveyRepository, mResponses *repoMocks.MockResponseRepository)
		wantErr    error
	}{
		{
			name:     "happy path",
			surveyID: "s1",
			userID:   "u1",
			in:       FillInput{Rating: 4, Comment: " nice one "},
			setupMocks: func(mSurveys *repoMocks.MockSurveyRepository, mResponses *repoMocks.MockResponseRepository) {
				mSurveys.On("FindByID", ctx, "s1").Return(&model.Survey{ID: "s1", OwnerID: "owner"}, nil)
				mResponses.On("Exists", ctx, "s1", "u1").Return(false, nil)
				mResponses.On("Create", ctx, mock.MatchedBy(func(r *model.Response) bool {
					return r.SurveyID == "s1" && r.UserID == "u1" && r.Rating == 4 && r.Comment == "nice one"
				})).Return(&model.Response{ID: "gen-id", Rating: 4}, nil)
			},
		},
		{
			name:     "rating out of range",
			surveyID: "s1",
			userID:   "u1",
			in:       FillInput{Rating: 6},
			wantErr:  ErrInvalidRating,
		},
		{
			name:     "zero rating",
			surveyID: "s1",
			userID:   "u1",
			in:       FillInput{},
			wantErr:  ErrInvalidRating,
		},
		{
			name:     "survey missing",
			surveyID: "missing",
			userID:   "u1",
			in:       FillInput{Rating: 3},
			setupMocks: func(mSurveys *repoMocks.MockSurveyRepository, mResponses *repoMocks.MockResponseRepository) {
				mSurveys.On("FindByID", ctx, "missing").Return(nil, sql.ErrNoRows)
			},
			wantErr: ErrNotFound,
		},
		{
			name:     "own survey",
			surveyID: "s1",
			userID:   "owner",
			in:       FillInput{Rating: 3},
			setupMocks: func(mSurveys *repoMocks.MockSurveyRepository, mResponses *repoMocks.MockResponseRepository) {
				mSurveys.On("FindByID", ctx, "s1").Return(&model.Survey{ID: "s1", OwnerID: "owner"}, nil)
			},
			wantErr: ErrOwnSurvey,
		},
		{
			name:     "already responded",
			surveyID: "s1",
			userID:   "u1",
			in:       FillInput{Rating: 3},
			setupMocks: func(mSurveys *repoMocks.MockSurveyRepository, mResponses *repoMocks.MockResponseRepository) {
				mSurveys.On("FindByID", ctx, "s1").Return(&model.Survey{ID: "s1", OwnerID: "owner"}, nil)
				mResponses.On("Exists", ctx, "s1", "u1").Return(true, nil)
			},
			wantErr: ErrAlreadyResponded,
		},
		{
			name:     "constraint race maps to conflict",
			surveyID: "s1",
			userID:   "u1",
			in:       FillInput{Rating: 3},
			setupMocks: func(mSurveys *repoMocks.MockSurveyRepository, mResponses *repoMocks.MockResponseRepository) {
				mSurveys.On("FindByID", ctx, "s1").Return(&model.Survey{ID: "s1", OwnerID: "owner"}, nil)
				mResponses.On("Exists", ctx, "s1", "u1").Return(false, nil)
				mResponses.On("Create", ctx, mock.Anything).
					Return(nil, errors.New(`duplicate key value violates unique constraint (SQLSTATE 23505)`))
			},
			wantErr: ErrAlreadyResponded,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mSurveys := new(repoMocks.MockSurveyRepository)
			mResponses := new(repoMocks.MockResponseRepository)
			if tt.setupMocks != nil {
				tt.setupMocks(mSurveys, mResponses)
			}
			svc := NewResponseService(mSurveys, mResponses)

			got, err := svc.Fill(ctx, tt.surveyID, tt.userID, tt.in)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, got)
			}
			mSurveys.AssertExpectations(t)
			mResponses.AssertExpectations(t)
		})
	}
}

func TestResponseService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("returns rows", func(t *testing.T) {
		mSurveys := new(repoMocks.MockSurveyRepository)
		mResponses := new(repoMocks.MockResponseRepository)
		svc := NewResponseService(mSurveys, mResponses)

		mSurveys.On("FindByID", ctx, "s1").Return(&model.Survey{ID: "s1"}, nil)
		mResponses.On("ListBySurvey", ctx, "s1").Return([]model.Response{{ID: "r1"}}, nil)

		items, err := svc.List(ctx, "s1")

		assert.NoError(t, err)
		assert.Len(t, items, 1)
	})

	t.Run("survey missing", func(t *testing.T) {
		mSurveys := new(repoMocks.MockSurveyRepository)
		mResponses := new(repoMocks.MockResponseRepository)
		svc := NewResponseService(mSurveys, mResponses)

		mSurveys.On("FindByID", ctx, "missing").Return(nil, sql.ErrNoRows)

		items, err := svc.List(ctx, "missing")

		assert.ErrorIs(t, err, ErrNotFound)
		assert.Nil(t, items)
	})
}
