package model

import "time"

// Survey is a posted link to an externally hosted form.
// This is a pure domain model with no database-specific dependencies or tags;
// the form content itself lives at URL and is never stored here.
type Survey struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
}

// SurveyWithStats decorates a survey with aggregates computed from its
// response rows: fill count and arithmetic-mean rating. AverageRating is
// zero when no responses exist.
type SurveyWithStats struct {
	Survey
	FillCount     int     `json:"fill_count"`
	AverageRating float64 `json:"average_rating"`
}
