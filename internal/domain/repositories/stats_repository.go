package repositories

import (
	"context"

	"github.com/ri0706/Alpha-Spark-Ritisha.M/internal/domain/entities"
)

// StatsRepository computes dashboard counters. Implementations must return
// a single consistent snapshot, not counts taken at different times.
type StatsRepository interface {
	DashboardStats(ctx context.Context) (*entities.DashboardStats, error)
}
