package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/WarBros01113/Real-SurvEase/internal/model"
	"github.com/WarBros01113/Real-SurvEase/internal/repository"
	repoMocks "github.com/WarBros01113/Real-SurvEase/internal/repository/mocks"
)

// stubChecker satisfies linkcheck.Checker with a canned result.
type stubChecker struct {
	err error
}

func (s stubChecker) Check(ctx context.Context, rawURL string) error { return s.err }

func TestSurveyService_Post(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		ownerID    string
		in         PostSurveyInput
		checkErr   error
		setupMocks func(mSurveys *repoMocks.MockSurveyRepository)
		wantErr    error
	}{
		{
			name:    "happy path",
			ownerID: "owner-1",
			in: PostSurveyInput{
				Title:    "  Coffee habits  ",
				URL:      "https://forms.example.com/coffee",
				Category: "lifestyle",
			},
			setupMocks: func(mSurveys *repoMocks.MockSurveyRepository) {
				mSurveys.On("Create", ctx, mock.MatchedBy(func(s *model.Survey) bool {
					return s.Title == "Coffee habits" && s.OwnerID == "owner-1" && s.ID != ""
				})).Return(&model.Survey{ID: "gen-id", Title: "Coffee habits"}, nil)
			},
		},
		{
			name:    "missing owner",
			ownerID: "",
			in:      PostSurveyInput{Title: "x", URL: "https://x"},
			wantErr: ErrIDRequired,
		},
		{
			name:    "blank title",
			ownerID: "owner-1",
			in:      PostSurveyInput{Title: "   ", URL: "https://x"},
			wantErr: ErrTitleRequired,
		},
		{
			name:     "unreachable url",
			ownerID:  "owner-1",
			in:       PostSurveyInput{Title: "x", URL: "https://gone.example.com"},
			checkErr: errors.New("status 404"),
			wantErr:  ErrInvalidURL,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mSurveys := new(repoMocks.MockSurveyRepository)
			mResponses := new(repoMocks.MockResponseRepository)
			if tt.setupMocks != nil {
				tt.setupMocks(mSurveys)
			}
			svc := NewSurveyService(mSurveys, mResponses, stubChecker{err: tt.checkErr})

			got, err := svc.Post(ctx, tt.ownerID, tt.in)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, got)
			}
			mSurveys.AssertExpectations(t)
		})
	}
}

func TestSurveyService_Feed(t *testing.T) {
	ctx := context.Background()

	mSurveys := new(repoMocks.MockSurveyRepository)
	mResponses := new(repoMocks.MockResponseRepository)
	svc := NewSurveyService(mSurveys, mResponses, stubChecker{})

	page := &repository.PageResult[model.Survey]{
		Items: []model.Survey{
			{ID: "s1", Title: "A", CreatedAt: time.Now()},
			{ID: "s2", Title: "B", CreatedAt: time.Now()},
		},
		Total: 7,
	}
	mSurveys.On("List", ctx,
		repository.SurveyFilter{Category: "lifestyle", Search: ""},
		repository.PageQuery{Limit: 10, Offset: 0},
	).Return(page, nil)

	mResponses.On("ListBySurveys", ctx, []string{"s1", "s2"}).Return([]model.Response{
		{ID: "r1", SurveyID: "s1", Rating: 4},
		{ID: "r2", SurveyID: "s1", Rating: 5},
		{ID: "r3", SurveyID: "s1", Rating: 3},
	}, nil)

	// limit defaults to 10 when non-positive
	res, err := svc.Feed(ctx, FeedQuery{Limit: 0, Offset: -3, Category: "lifestyle"})

	assert.NoError(t, err)
	assert.Equal(t, 7, res.Total)
	assert.Len(t, res.Items, 2)

	assert.Equal(t, 3, res.Items[0].FillCount)
	assert.InDelta(t, 4.0, res.Items[0].AverageRating, 1e-9)

	assert.Equal(t, 0, res.Items[1].FillCount)
	assert.Zero(t, res.Items[1].AverageRating)

	mSurveys.AssertExpectations(t)
	mResponses.AssertExpectations(t)
}

func TestSurveyService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("found with aggregates", func(t *testing.T) {
		mSurveys := new(repoMocks.MockSurveyRepository)
		mResponses := new(repoMocks.MockResponseRepository)
		svc := NewSurveyService(mSurveys, mResponses, stubChecker{})

		mSurveys.On("FindByID", ctx, "s1").Return(&model.Survey{ID: "s1"}, nil)
		mResponses.On("ListBySurvey", ctx, "s1").Return([]model.Response{
			{SurveyID: "s1", Rating: 2},
			{SurveyID: "s1", Rating: 4},
		}, nil)

		got, err := svc.Get(ctx, "s1")

		assert.NoError(t, err)
		assert.Equal(t, 2, got.FillCount)
		assert.InDelta(t, 3.0, got.AverageRating, 1e-9)
	})

	t.Run("not found", func(t *testing.T) {
		mSurveys := new(repoMocks.MockSurveyRepository)
		mResponses := new(repoMocks.MockResponseRepository)
		svc := NewSurveyService(mSurveys, mResponses, stubChecker{})

		mSurveys.On("FindByID", ctx, "missing").Return(nil, sql.ErrNoRows)

		got, err := svc.Get(ctx, "missing")

		assert.ErrorIs(t, err, ErrNotFound)
		assert.Nil(t, got)
	})
}

func TestSurveyService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("owner deletes, responses first", func(t *testing.T) {
		mSurveys := new(repoMocks.MockSurveyRepository)
		mResponses := new(repoMocks.MockResponseRepository)
		svc := NewSurveyService(mSurveys, mResponses, stubChecker{})

		mSurveys.On("FindByID", ctx, "s1").Return(&model.Survey{ID: "s1", OwnerID: "owner-1"}, nil)
		mResponses.On("DeleteBySurvey", ctx, "s1").Return(nil)
		mSurveys.On("Delete", ctx, "s1").Return(nil)

		assert.NoError(t, svc.Delete(ctx, "s1", "owner-1"))
		mSurveys.AssertExpectations(t)
		mResponses.AssertExpectations(t)
	})

	t.Run("non-owner is rejected", func(t *testing.T) {
		mSurveys := new(repoMocks.MockSurveyRepository)
		mResponses := new(repoMocks.MockResponseRepository)
		svc := NewSurveyService(mSurveys, mResponses, stubChecker{})

		mSurveys.On("FindByID", ctx, "s1").Return(&model.Survey{ID: "s1", OwnerID: "owner-1"}, nil)

		assert.ErrorIs(t, svc.Delete(ctx, "s1", "intruder"), ErrForbidden)
		mResponses.AssertNotCalled(t, "DeleteBySurvey", mock.Anything, mock.Anything)
	})

	t.Run("missing survey", func(t *testing.T) {
		mSurveys := new(repoMocks.MockSurveyRepository)
		mResponses := new(repoMocks.MockResponseRepository)
		svc := NewSurveyService(mSurveys, mResponses, stubChecker{})

		mSurveys.On("FindByID", ctx, "missing").Return(nil, sql.ErrNoRows)

		assert.ErrorIs(t, svc.Delete(ctx, "missing", "owner-1"), ErrNotFound)
	})
}
