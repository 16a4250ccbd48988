package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/WarBros01113/Real-SurvEase/internal/model"
	"github.com/WarBros01113/Real-SurvEase/internal/repository"
	"github.com/WarBros01113/Real-SurvEase/internal/service/linkcheck"
)

// PostSurveyInput carries the user-supplied fields of a new survey post.
type PostSurveyInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Category    string `json:"category"`
}

// FeedQuery narrows and pages the survey feed.
type FeedQuery struct {
	Limit    int
	Offset   int
	Category string
	Search   string
}

// FeedResult is the service-level DTO for a feed page.
type FeedResult struct {
	Items []model.SurveyWithStats `json:"data"`
	Total int                     `json:"total"`
}

// SurveyService defines the use cases around posted surveys.
type SurveyService interface {
	// Post validates and stores a new survey link for the owner.
	Post(ctx context.Context, ownerID string, in PostSurveyInput) (*model.Survey, error)

	// Feed returns a newest-first page of surveys, each decorated with its
	// fill count and mean rating computed from flat response rows.
	Feed(ctx context.Context, q FeedQuery) (*FeedResult, error)

	// Get returns a single survey with its aggregates.
	Get(ctx context.Context, id string) (*model.SurveyWithStats, error)

	// Delete removes a survey and its responses. Only the owner may delete.
	Delete(ctx context.Context, id, actorID string) error
}

type surveyService struct {
	surveys   repository.SurveyRepository
	responses repository.ResponseRepository
	links     linkcheck.Checker
}

// NewSurveyService constructs a new SurveyService.
func NewSurveyService(surveys repository.SurveyRepository, responses repository.ResponseRepository, links linkcheck.Checker) SurveyService {
	return &surveyService{surveys: surveys, responses: responses, links: links}
}

func (s *surveyService) Post(ctx context.Context, ownerID string, in PostSurveyInput) (*model.Survey, error) {
	if ownerID == "" {
		return nil, ErrIDRequired
	}
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}
	if err := s.links.Check(ctx, in.URL); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}

	survey := &model.Survey{
		ID:          uuid.New().String(),
		OwnerID:     ownerID,
		Title:       title,
		Description: strings.TrimSpace(in.Description),
		URL:         in.URL,
		Category:    strings.TrimSpace(in.Category),
		CreatedAt:   time.Now().UTC(),
	}
	stored, err := s.surveys.Create(ctx, survey)
	if err != nil {
		return nil, fmt.Errorf("save survey: %w", err)
	}
	return stored, nil
}

// Feed fetches a survey page and the flat response rows of just that page,
// then reduces the rows to per-survey aggregates in memory.
func (s *surveyService) Feed(ctx context.Context, q FeedQuery) (*FeedResult, error) {
	if q.Limit <= 0 {
		q.Limit = 10
	}
	if q.Offset < 0 {
		q.Offset = 0
	}

	page, err := s.surveys.List(ctx,
		repository.SurveyFilter{Category: q.Category, Search: q.Search},
		repository.PageQuery{Limit: q.Limit, Offset: q.Offset},
	)
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(page.Items))
	for i, sv := range page.Items {
		ids[i] = sv.ID
	}
	rows, err := s.responses.ListBySurveys(ctx, ids)
	if err != nil {
		return nil, err
	}

	counts, sums := reduceRatings(rows)
	items := make([]model.SurveyWithStats, len(page.Items))
	for i, sv := range page.Items {
		items[i] = withStats(sv, counts[sv.ID], sums[sv.ID])
	}
	return &FeedResult{Items: items, Total: page.Total}, nil
}

func (s *surveyService) Get(ctx context.Context, id string) (*model.SurveyWithStats, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	survey, err := s.surveys.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	rows, err := s.responses.ListBySurvey(ctx, id)
	if err != nil {
		return nil, err
	}
	counts, sums := reduceRatings(rows)
	out := withStats(*survey, counts[id], sums[id])
	return &out, nil
}

func (s *surveyService) Delete(ctx context.Context, id, actorID string) error {
	if id == "" || actorID == "" {
		return ErrIDRequired
	}
	survey, err := s.surveys.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	if survey.OwnerID != actorID {
		return ErrForbidden
	}
	// Responses first; the FK blocks deleting a survey that still has rows.
	if err := s.responses.DeleteBySurvey(ctx, id); err != nil {
		return fmt.Errorf("delete responses: %w", err)
	}
	return s.surveys.Delete(ctx, id)
}

// reduceRatings folds flat response rows into per-survey fill counts and
// rating sums.
func reduceRatings(rows []model.Response) (counts map[string]int, sums map[string]int) {
	counts = make(map[string]int, len(rows))
	sums = make(map[string]int, len(rows))
	for _, r := range rows {
		counts[r.SurveyID]++
		sums[r.SurveyID] += r.Rating
	}
	return counts, sums
}

func withStats(sv model.Survey, count, sum int) model.SurveyWithStats {
	out := model.SurveyWithStats{Survey: sv, FillCount: count}
	if count > 0 {
		out.AverageRating = float64(sum) / float64(count)
	}
	return out
}
