package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ri0706/Alpha-Spark-Ritisha.M/internal/api/handlers"
	"github.com/ri0706/Alpha-Spark-Ritisha.M/internal/domain/entities"
	apperrors "github.com/ri0706/Alpha-Spark-Ritisha.M/pkg/errors"
)

type stubStatsService struct {
	stats *entities.DashboardStats
	err   error
}

func (s *stubStatsService) Stats(ctx context.Context) (*entities.DashboardStats, error) {
	return s.stats, s.err
}

func TestStatsHandler_GetStats(t *testing.T) {
	service := &stubStatsService{
		stats: &entities.DashboardStats{
			TotalBills:       10,
			OverchargedBills: 3,
			ValidBills:       7,
			TotalComplaints:  2,
		},
	}
	handler := handlers.NewStatsHandler(service)

	req := httptest.NewRequest("GET", "/api/stats", nil)
	w := httptest.NewRecorder()

	handler.GetStats(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var stats entities.DashboardStats
	require.NoError(t, json.NewDecoder(w.Body).Decode(&stats))
	assert.Equal(t, 10, stats.TotalBills)
	assert.Equal(t, 3, stats.OverchargedBills)
	assert.Equal(t, 7, stats.ValidBills)
	assert.Equal(t, 2, stats.TotalComplaints)
}

func TestStatsHandler_GetStats_Error(t *testing.T) {
	service := &stubStatsService{err: apperrors.NewInternalError("count failed", nil)}
	handler := handlers.NewStatsHandler(service)

	req := httptest.NewRequest("GET", "/api/stats", nil)
	w := httptest.NewRecorder()

	handler.GetStats(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
