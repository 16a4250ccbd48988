package repository

import (
	"context"

	"github.com/WarBros01113/Real-SurvEase/internal/model"
)

// SurveyFilter narrows feed queries. Zero values mean "no filter".
// Search matches title and description case-insensitively.
type SurveyFilter struct {
	Category string
	Search   string
}

// SurveyRepository defines data access for posted surveys using SQL queries
// only. No business logic here — strictly persistence operations.
type SurveyRepository interface {
	// Create inserts a new survey row and returns the stored record.
	Create(ctx context.Context, s *model.Survey) (*model.Survey, error)

	// FindByID returns a survey by its ID.
	FindByID(ctx context.Context, id string) (*model.Survey, error)

	// List returns a newest-first page of surveys matching the filter, plus
	// the total row count for the same filter.
	List(ctx context.Context, f SurveyFilter, pq PageQuery) (*PageResult[model.Survey], error)

	// AllRows returns every survey as flat rows, for in-memory aggregation.
	AllRows(ctx context.Context) ([]model.Survey, error)

	// Delete removes a survey by ID. It returns nil if the row was deleted
	// or did not exist.
	Delete(ctx context.Context, id string) error
}
