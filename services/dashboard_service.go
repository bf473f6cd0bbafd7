package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Dosada05/prediction-game/repositories"
	"golang.org/x/sync/errgroup"
)

const dashboardTopN = 10

// DashboardStats - агрегированная статистика по отправленным прогнозам.
type DashboardStats struct {
	TotalSubmissions int                          `json:"total_submissions"`
	ByCountry        []repositories.CountryCount  `json:"by_country"`
	ChampionPicks    []repositories.ChampionCount `json:"champion_picks"`
	Recent           []SubmissionSummary          `json:"recent"`
}

// SubmissionSummary deliberately omits the submitter's email.
type SubmissionSummary struct {
	ConfirmationID string    `json:"confirmation_id"`
	Country        string    `json:"country"`
	Champion       string    `json:"champion,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type DashboardService interface {
	GetStats(ctx context.Context) (*DashboardStats, error)
}

type dashboardService struct {
	repo repositories.SubmissionRepository
}

func NewDashboardService(repo repositories.SubmissionRepository) DashboardService {
	return &dashboardService{repo: repo}
}

// GetStats loads the four aggregates in parallel; any failing query fails
// the whole request.
func (s *dashboardService) GetStats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		total, err := s.repo.CountAll(gCtx)
		if err != nil {
			return fmt.Errorf("failed to count submissions: %w", err)
		}
		stats.TotalSubmissions = total
		return nil
	})

	g.Go(func() error {
		byCountry, err := s.repo.CountByCountry(gCtx, dashboardTopN)
		if err != nil {
			return fmt.Errorf("failed to aggregate countries: %w", err)
		}
		stats.ByCountry = byCountry
		return nil
	})

	g.Go(func() error {
		champions, err := s.repo.ChampionCounts(gCtx, dashboardTopN)
		if err != nil {
			return fmt.Errorf("failed to aggregate champion picks: %w", err)
		}
		stats.ChampionPicks = champions
		return nil
	})

	g.Go(func() error {
		recent, err := s.repo.ListRecent(gCtx, dashboardTopN)
		if err != nil {
			return fmt.Errorf("failed to list recent submissions: %w", err)
		}
		stats.Recent = make([]SubmissionSummary, 0, len(recent))
		for _, rec := range recent {
			stats.Recent = append(stats.Recent, SubmissionSummary{
				ConfirmationID: rec.ConfirmationID,
				Country:        rec.Country,
				Champion:       rec.Snapshot.Champion,
				CreatedAt:      rec.CreatedAt,
			})
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return stats, nil
}
