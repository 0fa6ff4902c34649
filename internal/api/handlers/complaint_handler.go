package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/ri0706/Alpha-Spark-Ritisha.M/internal/application/services"
	"github.com/ri0706/Alpha-Spark-Ritisha.M/internal/domain/entities"
)

// ComplaintService defines the complaint operations used by the handler.
type ComplaintService interface {
	File(ctx context.Context, input services.FileComplaintInput) (*entities.Complaint, error)
	List(ctx context.Context) ([]*entities.Complaint, error)
}

// ComplaintHandler handles overcharge complaint HTTP requests
type ComplaintHandler struct {
	service ComplaintService
}

// NewComplaintHandler creates a new complaint handler
func NewComplaintHandler(service ComplaintService) *ComplaintHandler {
	return &ComplaintHandler{service: service}
}

// FileComplaint handles POST /api/complaints
func (h *ComplaintHandler) FileComplaint(w http.ResponseWriter, r *http.Request) {
	var input services.FileComplaintInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	complaint, err := h.service.File(r.Context(), input)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, map[string]interface{}{
		"complaint_id": complaint.ID,
		"complaint":    complaint,
	})
}

// ListComplaints handles GET /api/complaints
func (h *ComplaintHandler) ListComplaints(w http.ResponseWriter, r *http.Request) {
	complaints, err := h.service.List(r.Context())
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, complaints)
}
