package repository

import (
	"context"

	"github.com/WarBros01113/Real-SurvEase/internal/model"
)

// ProfileRepository defines data access for user profiles.
type ProfileRepository interface {
	// Upsert inserts the profile or, if a row for the user exists, updates
	// its display fields. Returns the stored record.
	Upsert(ctx context.Context, p *model.Profile) (*model.Profile, error)

	// FindByUserID returns a profile by user ID.
	FindByUserID(ctx context.Context, userID string) (*model.Profile, error)

	// SetAvatarPath updates only the avatar object key for the user.
	SetAvatarPath(ctx context.Context, userID, path string) error

	// AllRows returns every profile as flat rows, for in-memory aggregation.
	AllRows(ctx context.Context) ([]model.Profile, error)
}
