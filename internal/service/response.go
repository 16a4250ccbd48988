package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/WarBros01113/Real-SurvEase/internal/model"
	"github.com/WarBros01113/Real-SurvEase/internal/repository"
)

// FillInput carries the user-supplied fields of a fill/rate submission.
type FillInput struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// ResponseService defines the use cases around filling and rating surveys.
type ResponseService interface {
	// Fill records that userID filled the survey, with a rating in [1,5].
	// A user gets one response per survey and cannot fill their own.
	Fill(ctx context.Context, surveyID, userID string, in FillInput) (*model.Response, error)

	// List returns a survey's responses, newest first.
	List(ctx context.Context, surveyID string) ([]model.Response, error)
}

type responseService struct {
	surveys   repository.SurveyRepository
	responses repository.ResponseRepository
}

// NewResponseService constructs a new ResponseService.
func NewResponseService(surveys repository.SurveyRepository, responses repository.ResponseRepository) ResponseService {
	return &responseService{surveys: surveys, responses: responses}
}

func (s *responseService) Fill(ctx context.Context, surveyID, userID string, in FillInput) (*model.Response, error) {
	if surveyID == "" || userID == "" {
		return nil, ErrIDRequired
	}
	if in.Rating < 1 || in.Rating > 5 {
		return nil, ErrInvalidRating
	}

	survey, err := s.surveys.FindByID(ctx, surveyID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if survey.OwnerID == userID {
		return nil, ErrOwnSurvey
	}

	// Pre-check for a friendly conflict; the unique constraint still backs
	// this up under concurrent submissions.
	exists, err := s.responses.Exists(ctx, surveyID, userID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyResponded
	}

	resp := &model.Response{
		ID:        uuid.New().String(),
		SurveyID:  surveyID,
		UserID:    userID,
		Rating:    in.Rating,
		Comment:   strings.TrimSpace(in.Comment),
		CreatedAt: time.Now().UTC(),
	}
	stored, err := s.responses.Create(ctx, resp)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrAlreadyResponded
		}
		return nil, fmt.Errorf("save response: %w", err)
	}
	return stored, nil
}

func (s *responseService) List(ctx context.Context, surveyID string) ([]model.Response, error) {
	if surveyID == "" {
		return nil, ErrIDRequired
	}
	if _, err := s.surveys.FindByID(ctx, surveyID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.responses.ListBySurvey(ctx, surveyID)
}

// isUniqueViolation matches the Postgres unique_violation SQLSTATE without
// depending on a specific driver error type.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "23505")
}
