package handlers

import (
	"context"
	"net/http"

	"github.com/ri0706/Alpha-Spark-Ritisha.M/internal/domain/entities"
)

// StatsService defines the dashboard statistics operations used by the handler.
type StatsService interface {
	Stats(ctx context.Context) (*entities.DashboardStats, error)
}

// StatsHandler handles dashboard statistics HTTP requests
type StatsHandler struct {
	service StatsService
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(service StatsService) *StatsHandler {
	return &StatsHandler{service: service}
}

// GetStats handles GET /api/stats
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(r.Context())
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, stats)
}
