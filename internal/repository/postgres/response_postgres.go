package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/WarBros01113/Real-SurvEase/internal/model"
	"github.com/WarBros01113/Real-SurvEase/internal/repository"
)

// ResponsePostgres is a PostgreSQL implementation of repository.ResponseRepository.
type ResponsePostgres struct {
	db *sql.DB
}

// NewResponsePostgres creates a new ResponsePostgres repository.
func NewResponsePostgres(db *sql.DB) *ResponsePostgres {
	return &ResponsePostgres{db: db}
}

var _ repository.ResponseRepository = (*ResponsePostgres)(nil)

const responseColumns = "id, survey_id, user_id, rating, comment, created_at"

func scanResponse(row interface{ Scan(...any) error }) (*model.Response, error) {
	var resp model.Response
	err := row.Scan(
		&resp.ID,
		&resp.SurveyID,
		&resp.UserID,
		&resp.Rating,
		&resp.Comment,
		&resp.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Create inserts a new response row and returns the stored record.
// A duplicate (survey_id, user_id) pair surfaces the constraint error unchanged.
func (r *ResponsePostgres) Create(ctx context.Context, resp *model.Response) (*model.Response, error) {
	const q = `
		INSERT INTO responses (id, survey_id, user_id, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + responseColumns
	row := r.db.QueryRowContext(ctx, q,
		resp.ID,
		resp.SurveyID,
		resp.UserID,
		resp.Rating,
		resp.Comment,
		resp.CreatedAt,
	)
	return scanResponse(row)
}

// ListBySurvey returns all responses for one survey, newest first.
func (r *ResponsePostgres) ListBySurvey(ctx context.Context, surveyID string) ([]model.Response, error) {
	const q = `
		SELECT ` + responseColumns + `
		FROM responses
		WHERE survey_id = $1
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.QueryContext(ctx, q, surveyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectResponses(rows)
}

// ListBySurveys returns all responses for the given survey IDs as flat rows.
func (r *ResponsePostgres) ListBySurveys(ctx context.Context, ids []string) ([]model.Response, error) {
	if len(ids) == 0 {
		return []model.Response{}, nil
	}
	placeholders := make([]string, len(ids))
	args := make([]any, len(ids))
	for i, id := range ids {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}
	q := fmt.Sprintf("SELECT %s FROM responses WHERE survey_id IN (%s)",
		responseColumns, strings.Join(placeholders, ", "))
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectResponses(rows)
}

// Exists reports whether the user already responded to the survey.
func (r *ResponsePostgres) Exists(ctx context.Context, surveyID, userID string) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM responses WHERE survey_id = $1 AND user_id = $2)`
	var exists bool
	if err := r.db.QueryRowContext(ctx, q, surveyID, userID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// AllRows returns every response as flat rows.
func (r *ResponsePostgres) AllRows(ctx context.Context) ([]model.Response, error) {
	const q = `SELECT ` + responseColumns + ` FROM responses`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectResponses(rows)
}

// DeleteBySurvey removes all responses of a survey.
func (r *ResponsePostgres) DeleteBySurvey(ctx context.Context, surveyID string) error {
	const q = `DELETE FROM responses WHERE survey_id = $1`
	_, err := r.db.ExecContext(ctx, q, surveyID)
	return err
}

func collectResponses(rows *sql.Rows) ([]model.Response, error) {
	items := make([]model.Response, 0)
	for rows.Next() {
		resp, err := scanResponse(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *resp)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
