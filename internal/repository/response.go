package repository

import (
	"context"

	"github.com/WarBros01113/Real-SurvEase/internal/model"
)

// ResponseRepository defines data access for fill/rating records.
type ResponseRepository interface {
	// Create inserts a new response row and returns the stored record.
	// The (survey_id, user_id) pair is unique; violating it surfaces the
	// driver's constraint error unchanged.
	Create(ctx context.Context, r *model.Response) (*model.Response, error)

	// ListBySurvey returns all responses for one survey, newest first.
	ListBySurvey(ctx context.Context, surveyID string) ([]model.Response, error)

	// ListBySurveys returns all responses whose survey ID is in ids, as flat
	// rows in no particular order. An empty ids slice returns no rows.
	ListBySurveys(ctx context.Context, ids []string) ([]model.Response, error)

	// Exists reports whether the user already responded to the survey.
	Exists(ctx context.Context, surveyID, userID string) (bool, error)

	// AllRows returns every response as flat rows, for in-memory aggregation.
	AllRows(ctx context.Context) ([]model.Response, error)

	// DeleteBySurvey removes all responses of a survey.
	DeleteBySurvey(ctx context.Context, surveyID string) error
}
