package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/ri0706/Alpha-Spark-Ritisha.M/internal/domain/entities"
	"github.com/ri0706/Alpha-Spark-Ritisha.M/internal/domain/repositories"
	apperrors "github.com/ri0706/Alpha-Spark-Ritisha.M/pkg/errors"
)

// searchResultLimit caps interactive search results.
const searchResultLimit = 10

// CatalogService resolves free-text names against the price catalog.
type CatalogService struct {
	repo   repositories.CatalogRepository
	search repositories.CatalogSearchRepository // optional
}

// NewCatalogService creates a new catalog service. search may be nil, in
// which case interactive search falls back to database substring matching.
func NewCatalogService(repo repositories.CatalogRepository, search repositories.CatalogSearchRepository) *CatalogService {
	return &CatalogService{repo: repo, search: search}
}

// ListMedicines returns the full medicine catalog, name ascending.
func (s *CatalogService) ListMedicines(ctx context.Context) ([]*entities.CatalogEntry, error) {
	return s.repo.List(ctx, entities.ItemKindMedicine)
}

// ListProcedures returns the full procedure catalog, name ascending.
func (s *CatalogService) ListProcedures(ctx context.Context) ([]*entities.CatalogEntry, error) {
	return s.repo.List(ctx, entities.ItemKindProcedure)
}

// Find resolves a name to exactly one catalog entry, first match wins.
// A miss surfaces as a not found error, which callers treat as a normal
// outcome rather than a failure.
func (s *CatalogService) Find(ctx context.Context, name string, kind entities.ItemKind) (*entities.CatalogEntry, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.NewValidationError("item name is required")
	}
	return s.repo.FindByName(ctx, kind, name)
}

// Search returns up to 10 entries matching the query for search-as-you-type
// use. It prefers the search index when one is wired and degrades to the
// database on index errors.
func (s *CatalogService) Search(ctx context.Context, query string, kind entities.ItemKind) ([]*entities.CatalogEntry, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperrors.NewValidationError("search query is required")
	}

	if s.search != nil {
		entries, err := s.search.Search(ctx, kind, query, searchResultLimit)
		if err == nil {
			return entries, nil
		}
		log.Warn().Err(err).Str("kind", string(kind)).Msg("search index unavailable, falling back to database")
	}

	return s.repo.Search(ctx, kind, query, searchResultLimit)
}
