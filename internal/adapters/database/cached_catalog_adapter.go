package database

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/ri0706/Alpha-Spark-Ritisha.M/internal/domain/entities"
	"github.com/ri0706/Alpha-Spark-Ritisha.M/internal/domain/providers"
	"github.com/ri0706/Alpha-Spark-Ritisha.M/internal/domain/repositories"
)

// CachedCatalogAdapter wraps a CatalogRepository with read-through caching.
// The catalog is seeded once and read-only afterwards, so generous TTLs
// are safe.
type CachedCatalogAdapter struct {
	adapter repositories.CatalogRepository
	cache   providers.CacheProvider
}

// NewCachedCatalogAdapter creates a new cached catalog adapter
func NewCachedCatalogAdapter(adapter repositories.CatalogRepository, cache providers.CacheProvider) repositories.CatalogRepository {
	return &CachedCatalogAdapter{
		adapter: adapter,
		cache:   cache,
	}
}

// Cache TTLs (in seconds)
const (
	catalogListTTL   = 1800 // 30 minutes for full listings
	catalogLookupTTL = 600  // 10 minutes for name lookups
)

func catalogListCacheKey(kind entities.ItemKind) string {
	return fmt.Sprintf("catalog:list:%s", kind)
}

func catalogLookupCacheKey(kind entities.ItemKind, name string) string {
	return fmt.Sprintf("catalog:lookup:%s:%s", kind, name)
}

// Create passes through and drops the stale listing.
func (a *CachedCatalogAdapter) Create(ctx context.Context, kind entities.ItemKind, entry *entities.CatalogEntry) error {
	if err := a.adapter.Create(ctx, kind, entry); err != nil {
		return err
	}
	if err := a.cache.Delete(ctx, catalogListCacheKey(kind)); err != nil {
		log.Warn().Err(err).Str("kind", string(kind)).Msg("failed to invalidate catalog list cache")
	}
	return nil
}

// List returns the full catalog of a kind with caching.
func (a *CachedCatalogAdapter) List(ctx context.Context, kind entities.ItemKind) ([]*entities.CatalogEntry, error) {
	cacheKey := catalogListCacheKey(kind)

	if cached, err := a.cache.Get(ctx, cacheKey); err == nil {
		var entries []*entities.CatalogEntry
		if err := json.Unmarshal(cached, &entries); err == nil {
			return entries, nil
		}
	}

	entries, err := a.adapter.List(ctx, kind)
	if err != nil {
		return nil, err
	}

	// Best-effort fill: a failed Set only costs the next reader a query.
	if data, err := json.Marshal(entries); err == nil {
		if err := a.cache.Set(ctx, cacheKey, data, catalogListTTL); err != nil {
			log.Warn().Err(err).Str("kind", string(kind)).Msg("failed to cache catalog list")
		}
	}

	return entries, nil
}

// FindByName caches positive lookups by normalized name. Misses are not
// cached; they already map to a cheap indexed query.
func (a *CachedCatalogAdapter) FindByName(ctx context.Context, kind entities.ItemKind, name string) (*entities.CatalogEntry, error) {
	cacheKey := catalogLookupCacheKey(kind, name)

	if cached, err := a.cache.Get(ctx, cacheKey); err == nil {
		var entry entities.CatalogEntry
		if err := json.Unmarshal(cached, &entry); err == nil {
			return &entry, nil
		}
	}

	entry, err := a.adapter.FindByName(ctx, kind, name)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(entry); err == nil {
		if err := a.cache.Set(ctx, cacheKey, data, catalogLookupTTL); err != nil {
			log.Warn().Err(err).Str("kind", string(kind)).Msg("failed to cache catalog lookup")
		}
	}

	return entry, nil
}

// Search goes straight to the store; interactive queries have too many
// distinct shapes to cache usefully here.
func (a *CachedCatalogAdapter) Search(ctx context.Context, kind entities.ItemKind, query string, limit int) ([]*entities.CatalogEntry, error) {
	return a.adapter.Search(ctx, kind, query, limit)
}
