package search

import (
	"context"
	"fmt"
	"time"

	"github.com/typesense/typesense-go/v2/typesense/api"
	"github.com/typesense/typesense-go/v2/typesense/api/pointer"

	"github.com/ri0706/Alpha-Spark-Ritisha.M/internal/domain/entities"
	"github.com/ri0706/Alpha-Spark-Ritisha.M/internal/domain/repositories"
	tsclient "github.com/ri0706/Alpha-Spark-Ritisha.M/internal/infrastructure/clients/typesense"
)

const (
	collectionName = "catalog_items"
	searchSortBy   = "name:asc"
)

// TypesenseAdapter implements catalog search using Typesense. Medicines
// and procedures share one collection discriminated by a kind facet.
type TypesenseAdapter struct {
	client *tsclient.Client
}

var _ repositories.CatalogSearchRepository = (*TypesenseAdapter)(nil)

// NewTypesenseAdapter creates a new Typesense adapter
func NewTypesenseAdapter(client *tsclient.Client) *TypesenseAdapter {
	return &TypesenseAdapter{client: client}
}

// catalogSchema describes the search collection. The name field must be
// declared sortable, Typesense rejects sort_by on plain string fields.
func catalogSchema() *api.CollectionSchema {
	return &api.CollectionSchema{
		Name: collectionName,
		Fields: []api.Field{
			{Name: "id", Type: "string"},
			{Name: "name", Type: "string", Sort: pointer.True()},
			{Name: "kind", Type: "string", Facet: pointer.True()},
			{Name: "category", Type: "string", Optional: pointer.True()},
			{Name: "govt_min_price", Type: "float"},
			{Name: "govt_max_price", Type: "float"},
			{Name: "unit", Type: "string", Optional: pointer.True()},
			{Name: "created_at", Type: "int64"},
		},
		DefaultSortingField: pointer.String("created_at"),
	}
}

// InitSchema ensures the collection exists
func (a *TypesenseAdapter) InitSchema(ctx context.Context) error {
	_, err := a.client.Client().Collection(collectionName).Retrieve(ctx)
	if err == nil {
		return nil
	}

	_, err = a.client.Client().Collections().Create(ctx, catalogSchema())
	if err != nil {
		return fmt.Errorf("failed to create typesense collection: %w", err)
	}

	return nil
}

// Index upserts a catalog entry into the search collection.
func (a *TypesenseAdapter) Index(ctx context.Context, kind entities.ItemKind, entry *entities.CatalogEntry) error {
	document := map[string]interface{}{
		"id":             entry.ID,
		"name":           entry.Name,
		"kind":           string(kind),
		"category":       entry.Category,
		"govt_min_price": entry.GovtMinPrice,
		"govt_max_price": entry.GovtMaxPrice,
		"unit":           entry.Unit,
		"created_at":     entry.CreatedAt.Unix(),
	}

	_, err := a.client.Client().Collection(collectionName).Documents().Upsert(ctx, document)
	if err != nil {
		return fmt.Errorf("failed to index catalog entry: %w", err)
	}

	return nil
}

// Search returns up to limit entries of a kind matching the query.
func (a *TypesenseAdapter) Search(ctx context.Context, kind entities.ItemKind, query string, limit int) ([]*entities.CatalogEntry, error) {
	searchParams := &api.SearchCollectionParams{
		Q:        pointer.String(query),
		QueryBy:  pointer.String("name"),
		FilterBy: pointer.String(fmt.Sprintf("kind:=%s", kind)),
		SortBy:   pointer.String(searchSortBy),
		PerPage:  pointer.Int(limit),
	}

	result, err := a.client.Client().Collection(collectionName).Documents().Search(ctx, searchParams)
	if err != nil {
		return nil, fmt.Errorf("failed to search catalog: %w", err)
	}

	entries := []*entities.CatalogEntry{}
	if result.Hits == nil {
		return entries, nil
	}

	for _, hit := range *result.Hits {
		doc := *hit.Document

		entry := &entities.CatalogEntry{
			ID:   doc["id"].(string),
			Name: doc["name"].(string),
		}
		if val, ok := doc["category"].(string); ok {
			entry.Category = val
		}
		if val, ok := doc["govt_min_price"].(float64); ok {
			entry.GovtMinPrice = val
		}
		if val, ok := doc["govt_max_price"].(float64); ok {
			entry.GovtMaxPrice = val
		}
		if val, ok := doc["unit"].(string); ok {
			entry.Unit = val
		}
		if val, ok := doc["created_at"].(float64); ok {
			entry.CreatedAt = time.Unix(int64(val), 0).UTC()
		}

		entries = append(entries, entry)
	}

	return entries, nil
}
