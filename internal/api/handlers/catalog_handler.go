package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/ri0706/Alpha-Spark-Ritisha.M/internal/domain/entities"
	apperrors "github.com/ri0706/Alpha-Spark-Ritisha.M/pkg/errors"
)

// CatalogService defines the catalog operations used by the handler.
type CatalogService interface {
	ListMedicines(ctx context.Context) ([]*entities.CatalogEntry, error)
	ListProcedures(ctx context.Context) ([]*entities.CatalogEntry, error)
	Search(ctx context.Context, query string, kind entities.ItemKind) ([]*entities.CatalogEntry, error)
}

// CatalogHandler handles catalog-related HTTP requests
type CatalogHandler struct {
	service CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(service CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// ListMedicines handles GET /api/medicines
func (h *CatalogHandler) ListMedicines(w http.ResponseWriter, r *http.Request) {
	medicines, err := h.service.ListMedicines(r.Context())
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, medicines)
}

// ListProcedures handles GET /api/procedures
func (h *CatalogHandler) ListProcedures(w http.ResponseWriter, r *http.Request) {
	procedures, err := h.service.ListProcedures(r.Context())
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, procedures)
}

// SearchCatalog handles GET /api/search?q=name&type=medicine
func (h *CatalogHandler) SearchCatalog(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		respondWithError(w, http.StatusBadRequest, "query parameter required")
		return
	}

	kind, ok := parseKindParam(w, r.URL.Query().Get("type"))
	if !ok {
		return
	}

	entries, err := h.service.Search(r.Context(), query, kind)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, entries)
}

// parseKindParam resolves the type query/body parameter, defaulting to
// medicine as the original API did. Writes a 400 response on bad input.
func parseKindParam(w http.ResponseWriter, value string) (entities.ItemKind, bool) {
	if value == "" {
		return entities.ItemKindMedicine, true
	}
	kind, err := entities.ParseItemKind(value)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "type must be 'medicine' or 'procedure'")
		return "", false
	}
	return kind, true
}

// Helper functions shared by all handlers in this package.

func respondWithJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

func respondWithError(w http.ResponseWriter, statusCode int, message string) {
	respondWithJSON(w, statusCode, map[string]string{
		"error": message,
	})
}

// respondWithServiceError maps domain errors onto HTTP status codes.
func respondWithServiceError(w http.ResponseWriter, err error) {
	if appErr, ok := apperrors.AsAppError(err); ok {
		switch appErr.Type {
		case apperrors.ErrorTypeNotFound:
			respondWithError(w, http.StatusNotFound, appErr.Message)
			return
		case apperrors.ErrorTypeValidation:
			respondWithError(w, http.StatusBadRequest, appErr.Message)
			return
		case apperrors.ErrorTypeConflict:
			respondWithError(w, http.StatusConflict, appErr.Message)
			return
		}
	}
	respondWithError(w, http.StatusInternalServerError, "internal server error")
}
