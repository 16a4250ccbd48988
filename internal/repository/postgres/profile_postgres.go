package postgres

import (
	"context"
	"database/sql"

	"github.com/WarBros01113/Real-SurvEase/internal/model"
	"github.com/WarBros01113/Real-SurvEase/internal/repository"
)

// ProfilePostgres is a PostgreSQL implementation of repository.ProfileRepository.
type ProfilePostgres struct {
	db *sql.DB
}

// NewProfilePostgres creates a new ProfilePostgres repository.
func NewProfilePostgres(db *sql.DB) *ProfilePostgres {
	return &ProfilePostgres{db: db}
}

var _ repository.ProfileRepository = (*ProfilePostgres)(nil)

const profileColumns = "user_id, display_name, bio, theme, avatar_path, created_at, updated_at"

func scanProfile(row interface{ Scan(...any) error }) (*model.Profile, error) {
	var p model.Profile
	err := row.Scan(
		&p.UserID,
		&p.DisplayName,
		&p.Bio,
		&p.Theme,
		&p.AvatarPath,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Upsert inserts the profile or updates its display fields when a row for the
// user already exists. The avatar path is left untouched on update; it has its
// own setter.
func (r *ProfilePostgres) Upsert(ctx context.Context, p *model.Profile) (*model.Profile, error) {
	const q = `
		INSERT INTO profiles (user_id, display_name, bio, theme, avatar_path, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id) DO UPDATE
		SET display_name = EXCLUDED.display_name,
		    bio          = EXCLUDED.bio,
		    theme        = EXCLUDED.theme,
		    updated_at   = EXCLUDED.updated_at
		RETURNING ` + profileColumns
	row := r.db.QueryRowContext(ctx, q,
		p.UserID,
		p.DisplayName,
		p.Bio,
		p.Theme,
		p.AvatarPath,
		p.CreatedAt,
		p.UpdatedAt,
	)
	return scanProfile(row)
}

// FindByUserID fetches a single profile by user ID.
func (r *ProfilePostgres) FindByUserID(ctx context.Context, userID string) (*model.Profile, error) {
	const q = `SELECT ` + profileColumns + ` FROM profiles WHERE user_id = $1`
	return scanProfile(r.db.QueryRowContext(ctx, q, userID))
}

// SetAvatarPath updates only the avatar object key for the user.
func (r *ProfilePostgres) SetAvatarPath(ctx context.Context, userID, path string) error {
	const q = `UPDATE profiles SET avatar_path = $2, updated_at = now() WHERE user_id = $1`
	res, err := r.db.ExecContext(ctx, q, userID, path)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// AllRows returns every profile as flat rows.
func (r *ProfilePostgres) AllRows(ctx context.Context) ([]model.Profile, error) {
	const q = `SELECT ` + profileColumns + ` FROM profiles`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Profile, 0)
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
