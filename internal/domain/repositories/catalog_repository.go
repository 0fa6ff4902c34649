package repositories

import (
	"context"

	"github.com/ri0706/Alpha-Spark-Ritisha.M/internal/domain/entities"
)

// CatalogRepository defines the interface for catalog reads and seeding.
type CatalogRepository interface {
	// Create inserts a catalog entry; used only by the seed script.
	Create(ctx context.Context, kind entities.ItemKind, entry *entities.CatalogEntry) error

	// List returns all entries of a kind ordered by name ascending.
	List(ctx context.Context, kind entities.ItemKind) ([]*entities.CatalogEntry, error)

	// FindByName resolves a free-text name to the first entry whose name
	// contains it (case-insensitive), ordered by name then id for
	// determinism. Returns a not found error when nothing matches.
	FindByName(ctx context.Context, kind entities.ItemKind, name string) (*entities.CatalogEntry, error)

	// Search returns up to limit entries matching the query, name ascending.
	Search(ctx context.Context, kind entities.ItemKind, query string, limit int) ([]*entities.CatalogEntry, error)
}

// CatalogSearchRepository is the optional full-text search index for the
// catalog. The catalog service falls back to CatalogRepository.Search when
// no index is wired.
type CatalogSearchRepository interface {
	InitSchema(ctx context.Context) error
	Index(ctx context.Context, kind entities.ItemKind, entry *entities.CatalogEntry) error
	Search(ctx context.Context, kind entities.ItemKind, query string, limit int) ([]*entities.CatalogEntry, error)
}
