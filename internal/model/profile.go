package model

import "time"

// Theme values accepted for the display preference.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Profile holds the user-editable part of an account. The user ID itself is
// owned by the external auth service; this service only stores display data.
// AvatarPath is the object-storage key of the uploaded avatar, empty if none.
type Profile struct {
	UserID      string    `json:"user_id"`
	DisplayName string    `json:"display_name"`
	Bio         string    `json:"bio,omitempty"`
	Theme       string    `json:"theme"`
	AvatarPath  string    `json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProfileWithStats is the read model returned for a profile page: the profile
// plus that user's activity counts.
type ProfileWithStats struct {
	Profile
	SurveysPosted int `json:"surveys_posted"`
	SurveysFilled int `json:"surveys_filled"`
}
