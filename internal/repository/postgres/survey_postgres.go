package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/WarBros01113/Real-SurvEase/internal/model"
	"github.com/WarBros01113/Real-SurvEase/internal/repository"
)

// SurveyPostgres is a PostgreSQL implementation of repository.SurveyRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type SurveyPostgres struct {
	db *sql.DB
}

// NewSurveyPostgres creates a new SurveyPostgres repository.
func NewSurveyPostgres(db *sql.DB) *SurveyPostgres {
	return &SurveyPostgres{db: db}
}

var _ repository.SurveyRepository = (*SurveyPostgres)(nil)

const surveyColumns = "id, owner_id, title, description, url, category, created_at"

func scanSurvey(row interface{ Scan(...any) error }) (*model.Survey, error) {
	var s model.Survey
	err := row.Scan(
		&s.ID,
		&s.OwnerID,
		&s.Title,
		&s.Description,
		&s.URL,
		&s.Category,
		&s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create inserts a new survey row and returns the stored record.
func (r *SurveyPostgres) Create(ctx context.Context, s *model.Survey) (*model.Survey, error) {
	const q = `
		INSERT INTO surveys (id, owner_id, title, description, url, category, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + surveyColumns
	row := r.db.QueryRowContext(ctx, q,
		s.ID,
		s.OwnerID,
		s.Title,
		s.Description,
		s.URL,
		s.Category,
		s.CreatedAt,
	)
	return scanSurvey(row)
}

// FindByID fetches a single survey by its ID.
func (r *SurveyPostgres) FindByID(ctx context.Context, id string) (*model.Survey, error) {
	const q = `SELECT ` + surveyColumns + ` FROM surveys WHERE id = $1`
	return scanSurvey(r.db.QueryRowContext(ctx, q, id))
}

// List returns surveys newest-first using LIMIT/OFFSET pagination and a total
// count, both restricted by the same filter.
func (r *SurveyPostgres) List(ctx context.Context, f repository.SurveyFilter, pq repository.PageQuery) (*repository.PageResult[model.Survey], error) {
	where, args := buildSurveyWhere(f)

	var total int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM surveys"+where, args...).Scan(&total); err != nil {
		return nil, err
	}

	qList := fmt.Sprintf(
		"SELECT %s FROM surveys%s ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d",
		surveyColumns, where, len(args)+1, len(args)+2,
	)
	rows, err := r.db.QueryContext(ctx, qList, append(args, pq.Limit, pq.Offset)...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items, err := collectSurveys(rows)
	if err != nil {
		return nil, err
	}
	return &repository.PageResult[model.Survey]{Items: items, Total: total}, nil
}

// AllRows returns every survey as flat rows.
func (r *SurveyPostgres) AllRows(ctx context.Context) ([]model.Survey, error) {
	const q = `SELECT ` + surveyColumns + ` FROM surveys`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectSurveys(rows)
}

// Delete removes a survey by ID. It does not return an error if the row does
// not exist.
func (r *SurveyPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM surveys WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	_, _ = res.RowsAffected()
	return nil
}

func buildSurveyWhere(f repository.SurveyFilter) (string, []any) {
	var conds []string
	var args []any
	if f.Category != "" {
		args = append(args, f.Category)
		conds = append(conds, fmt.Sprintf("category = $%d", len(args)))
	}
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		conds = append(conds, fmt.Sprintf("(title ILIKE $%d OR description ILIKE $%d)", len(args), len(args)))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func collectSurveys(rows *sql.Rows) ([]model.Survey, error) {
	items := make([]model.Survey, 0)
	for rows.Next() {
		s, err := scanSurvey(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
