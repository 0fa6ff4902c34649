package database

import (
	"context"

	"github.com/ri0706/Alpha-Spark-Ritisha.M/internal/domain/entities"
	"github.com/ri0706/Alpha-Spark-Ritisha.M/internal/domain/repositories"
	"github.com/ri0706/Alpha-Spark-Ritisha.M/internal/infrastructure/clients/postgres"
	apperrors "github.com/ri0706/Alpha-Spark-Ritisha.M/pkg/errors"
)

// StatsAdapter implements StatsRepository
type StatsAdapter struct {
	client *postgres.Client
}

// NewStatsAdapter creates a new stats adapter
func NewStatsAdapter(client *postgres.Client) repositories.StatsRepository {
	return &StatsAdapter{client: client}
}

// All counters come from one statement so the result is a single
// consistent snapshot.
const dashboardStatsQuery = `
SELECT
	(SELECT COUNT(*) FROM bills),
	(SELECT COUNT(*) FROM bills WHERE overcharged = true),
	(SELECT COUNT(*) FROM complaints)
`

// DashboardStats returns the dashboard counters.
func (a *StatsAdapter) DashboardStats(ctx context.Context) (*entities.DashboardStats, error) {
	stats := &entities.DashboardStats{}

	err := a.client.DB().QueryRowContext(ctx, dashboardStatsQuery).Scan(
		&stats.TotalBills,
		&stats.OverchargedBills,
		&stats.TotalComplaints,
	)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to compute dashboard stats", err)
	}

	stats.ValidBills = stats.TotalBills - stats.OverchargedBills
	return stats, nil
}
