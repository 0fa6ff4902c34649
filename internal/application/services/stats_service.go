package services

import (
	"context"

	"github.com/ri0706/Alpha-Spark-Ritisha.M/internal/domain/entities"
	"github.com/ri0706/Alpha-Spark-Ritisha.M/internal/domain/repositories"
)

// StatsService exposes the dashboard counters.
type StatsService struct {
	repo repositories.StatsRepository
}

// NewStatsService creates a new stats service.
func NewStatsService(repo repositories.StatsRepository) *StatsService {
	return &StatsService{repo: repo}
}

// Stats returns a consistent snapshot of the dashboard counters.
func (s *StatsService) Stats(ctx context.Context) (*entities.DashboardStats, error) {
	return s.repo.DashboardStats(ctx)
}
