package service

import (
	"context"
	"sort"

	"github.com/WarBros01113/Real-SurvEase/internal/model"
	"github.com/WarBros01113/Real-SurvEase/internal/repository"
)

// Points awarded per activity.
const (
	pointsPerPost = 10
	pointsPerFill = 2
)

// LeaderboardResult is the service-level DTO for the ranked board.
type LeaderboardResult struct {
	Entries []model.LeaderboardEntry `json:"data"`
	Total   int                      `json:"total"`
}

// LeaderboardService computes per-user aggregate statistics over all surveys
// and responses. Everything is derived from flat rows in single passes; the
// database does no aggregation here.
type LeaderboardService interface {
	// Top returns up to limit ranked entries, ordered by points descending
	// then display name. Users with equal points share a dense rank.
	Top(ctx context.Context, limit int) (*LeaderboardResult, error)
}

type leaderboardService struct {
	surveys   repository.SurveyRepository
	responses repository.ResponseRepository
	profiles  repository.ProfileRepository
}

// NewLeaderboardService constructs a new LeaderboardService.
func NewLeaderboardService(surveys repository.SurveyRepository, responses repository.ResponseRepository, profiles repository.ProfileRepository) LeaderboardService {
	return &leaderboardService{surveys: surveys, responses: responses, profiles: profiles}
}

func (s *leaderboardService) Top(ctx context.Context, limit int) (*LeaderboardResult, error) {
	if limit <= 0 {
		limit = 25
	}

	profiles, err := s.profiles.AllRows(ctx)
	if err != nil {
		return nil, err
	}
	surveys, err := s.surveys.AllRows(ctx)
	if err != nil {
		return nil, err
	}
	responses, err := s.responses.AllRows(ctx)
	if err != nil {
		return nil, err
	}

	entries := Aggregate(profiles, surveys, responses)
	total := len(entries)
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return &LeaderboardResult{Entries: entries, Total: total}, nil
}

// Aggregate folds flat rows into ranked leaderboard entries. Exported so the
// computation can be tested without repositories.
func Aggregate(profiles []model.Profile, surveys []model.Survey, responses []model.Response) []model.LeaderboardEntry {
	byUser := make(map[string]*model.LeaderboardEntry, len(profiles))
	for _, p := range profiles {
		byUser[p.UserID] = &model.LeaderboardEntry{
			UserID:      p.UserID,
			DisplayName: p.DisplayName,
		}
	}
	// Users without a profile still appear once they have activity.
	ensure := func(userID string) *model.LeaderboardEntry {
		e, ok := byUser[userID]
		if !ok {
			e = &model.LeaderboardEntry{UserID: userID}
			byUser[userID] = e
		}
		return e
	}

	surveyOwner := make(map[string]string, len(surveys))
	for _, sv := range surveys {
		surveyOwner[sv.ID] = sv.OwnerID
		ensure(sv.OwnerID).SurveysPosted++
	}

	ratingSum := make(map[string]int)
	ratingCount := make(map[string]int)
	for _, r := range responses {
		ensure(r.UserID).SurveysFilled++
		if owner, ok := surveyOwner[r.SurveyID]; ok {
			ratingSum[owner] += r.Rating
			ratingCount[owner]++
		}
	}

	entries := make([]model.LeaderboardEntry, 0, len(byUser))
	for _, e := range byUser {
		e.Points = e.SurveysPosted*pointsPerPost + e.SurveysFilled*pointsPerFill
		if n := ratingCount[e.UserID]; n > 0 {
			e.RatingAvg = float64(ratingSum[e.UserID]) / float64(n)
		}
		entries = append(entries, *e)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Points != entries[j].Points {
			return entries[i].Points > entries[j].Points
		}
		return entries[i].DisplayName < entries[j].DisplayName
	})

	// Dense ranking: equal points share a rank.
	rank := 0
	prevPoints := -1
	for i := range entries {
		if entries[i].Points != prevPoints {
			rank++
			prevPoints = entries[i].Points
		}
		entries[i].Rank = rank
	}
	return entries
}
