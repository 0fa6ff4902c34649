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
)

type stubCatalogService struct {
	medicines  []*entities.CatalogEntry
	procedures []*entities.CatalogEntry
	searched   []*entities.CatalogEntry
	searchErr  error

	lastQuery string
	lastKind  entities.ItemKind
}

func (s *stubCatalogService) ListMedicines(ctx context.Context) ([]*entities.CatalogEntry, error) {
	return s.medicines, nil
}

func (s *stubCatalogService) ListProcedures(ctx context.Context) ([]*entities.CatalogEntry, error) {
	return s.procedures, nil
}

func (s *stubCatalogService) Search(ctx context.Context, query string, kind entities.ItemKind) ([]*entities.CatalogEntry, error) {
	s.lastQuery = query
	s.lastKind = kind
	return s.searched, s.searchErr
}

func TestCatalogHandler_ListMedicines(t *testing.T) {
	service := &stubCatalogService{
		medicines: []*entities.CatalogEntry{
			{Name: "Amoxicillin 250mg", GovtMinPrice: 5, GovtMaxPrice: 12},
			{Name: "Paracetamol 500mg", GovtMinPrice: 2, GovtMaxPrice: 5},
		},
	}
	handler := handlers.NewCatalogHandler(service)

	req := httptest.NewRequest("GET", "/api/medicines", nil)
	w := httptest.NewRecorder()

	handler.ListMedicines(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var entries []*entities.CatalogEntry
	require.NoError(t, json.NewDecoder(w.Body).Decode(&entries))
	require.Len(t, entries, 2)
	assert.Equal(t, "Amoxicillin 250mg", entries[0].Name)
}

func TestCatalogHandler_Search_DefaultsToMedicine(t *testing.T) {
	service := &stubCatalogService{
		searched: []*entities.CatalogEntry{{Name: "Paracetamol 500mg"}},
	}
	handler := handlers.NewCatalogHandler(service)

	req := httptest.NewRequest("GET", "/api/search?q=para", nil)
	w := httptest.NewRecorder()

	handler.SearchCatalog(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "para", service.lastQuery)
	assert.Equal(t, entities.ItemKindMedicine, service.lastKind)
}

func TestCatalogHandler_Search_ProcedureKind(t *testing.T) {
	service := &stubCatalogService{}
	handler := handlers.NewCatalogHandler(service)

	req := httptest.NewRequest("GET", "/api/search?q=ecg&type=procedure", nil)
	w := httptest.NewRecorder()

	handler.SearchCatalog(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, entities.ItemKindProcedure, service.lastKind)
}

func TestCatalogHandler_Search_MissingQuery(t *testing.T) {
	handler := handlers.NewCatalogHandler(&stubCatalogService{})

	req := httptest.NewRequest("GET", "/api/search", nil)
	w := httptest.NewRecorder()

	handler.SearchCatalog(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCatalogHandler_Search_UnknownType(t *testing.T) {
	handler := handlers.NewCatalogHandler(&stubCatalogService{})

	req := httptest.NewRequest("GET", "/api/search?q=x&type=surgery", nil)
	w := httptest.NewRecorder()

	handler.SearchCatalog(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
