package model

import "time"

// Response records that a user filled a survey and how they rated it.
// Rating is an integer in [1,5]; Comment may be empty.
type Response struct {
	ID        string    `json:"id"`
	SurveyID  string    `json:"survey_id"`
	UserID    string    `json:"user_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
