package model

// LeaderboardEntry is a per-user aggregate row. Points are derived from
// activity (posting and filling surveys); Rank is dense, so users with equal
// points share a rank.
type LeaderboardEntry struct {
	UserID        string  `json:"user_id"`
	DisplayName   string  `json:"display_name"`
	SurveysPosted int     `json:"surveys_posted"`
	SurveysFilled int     `json:"surveys_filled"`
	RatingAvg     float64 `json:"rating_avg"`
	Points        int     `json:"points"`
	Rank          int     `json:"rank"`
}
