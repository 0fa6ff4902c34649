package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"

	"github.com/ri0706/Alpha-Spark-Ritisha.M/internal/domain/entities"
	"github.com/ri0706/Alpha-Spark-Ritisha.M/internal/domain/repositories"
	"github.com/ri0706/Alpha-Spark-Ritisha.M/internal/infrastructure/clients/postgres"
	apperrors "github.com/ri0706/Alpha-Spark-Ritisha.M/pkg/errors"
)

// CatalogAdapter implements CatalogRepository against the medicines and
// procedures tables. Both tables share the same shape except that only
// medicines carry a unit column.
type CatalogAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewCatalogAdapter creates a new catalog adapter
func NewCatalogAdapter(client *postgres.Client) repositories.CatalogRepository {
	return &CatalogAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

func tableFor(kind entities.ItemKind) string {
	if kind == entities.ItemKindProcedure {
		return "procedures"
	}
	return "medicines"
}

func columnsFor(kind entities.ItemKind) []interface{} {
	cols := []interface{}{"id", "name", "category", "govt_min_price", "govt_max_price"}
	if kind == entities.ItemKindMedicine {
		cols = append(cols, "unit")
	}
	return append(cols, "created_at")
}

// Create inserts a catalog entry; used by the seed script only.
func (a *CatalogAdapter) Create(ctx context.Context, kind entities.ItemKind, entry *entities.CatalogEntry) error {
	record := goqu.Record{
		"id":             entry.ID,
		"name":           entry.Name,
		"category":       sql.NullString{String: entry.Category, Valid: entry.Category != ""},
		"govt_min_price": entry.GovtMinPrice,
		"govt_max_price": entry.GovtMaxPrice,
		"created_at":     entry.CreatedAt,
	}
	if kind == entities.ItemKindMedicine {
		record["unit"] = sql.NullString{String: entry.Unit, Valid: entry.Unit != ""}
	}

	query, args, err := a.db.Insert(tableFor(kind)).Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build insert query", err)
	}

	_, err = a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError(fmt.Sprintf("failed to create %s", kind), err)
	}

	return nil
}

// List returns all entries of a kind ordered by name ascending.
func (a *CatalogAdapter) List(ctx context.Context, kind entities.ItemKind) ([]*entities.CatalogEntry, error) {
	query, args, err := a.db.Select(columnsFor(kind)...).
		From(tableFor(kind)).
		Order(goqu.I("name").Asc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build list query", err)
	}

	return a.queryEntries(ctx, kind, query, args...)
}

// FindByName resolves a free-text name to the first matching entry.
func (a *CatalogAdapter) FindByName(ctx context.Context, kind entities.ItemKind, name string) (*entities.CatalogEntry, error) {
	query, args, err := a.db.Select(columnsFor(kind)...).
		From(tableFor(kind)).
		Where(goqu.I("name").ILike("%" + name + "%")).
		Order(goqu.I("name").Asc(), goqu.I("id").Asc()).
		Limit(1).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build lookup query", err)
	}

	entry, err := a.scanEntry(kind, a.client.DB().QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("no %s matching %q in catalog", kind, name))
	}
	if err != nil {
		return nil, apperrors.NewInternalError(fmt.Sprintf("failed to look up %s", kind), err)
	}

	return entry, nil
}

// Search returns up to limit entries whose names contain the query.
func (a *CatalogAdapter) Search(ctx context.Context, kind entities.ItemKind, queryText string, limit int) ([]*entities.CatalogEntry, error) {
	ds := a.db.Select(columnsFor(kind)...).
		From(tableFor(kind)).
		Where(goqu.I("name").ILike("%" + queryText + "%")).
		Order(goqu.I("name").Asc())

	if limit > 0 {
		ds = ds.Limit(uint(limit))
	}

	query, args, err := ds.ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build search query", err)
	}

	return a.queryEntries(ctx, kind, query, args...)
}

func (a *CatalogAdapter) queryEntries(ctx context.Context, kind entities.ItemKind, query string, args ...interface{}) ([]*entities.CatalogEntry, error) {
	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError(fmt.Sprintf("failed to query %s catalog", kind), err)
	}
	defer rows.Close()

	entries := []*entities.CatalogEntry{}
	for rows.Next() {
		entry, err := a.scanEntry(kind, rows)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan catalog entry", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("error iterating catalog entries", err)
	}

	return entries, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (a *CatalogAdapter) scanEntry(kind entities.ItemKind, row rowScanner) (*entities.CatalogEntry, error) {
	entry := &entities.CatalogEntry{}
	var category, unit sql.NullString

	dest := []interface{}{&entry.ID, &entry.Name, &category, &entry.GovtMinPrice, &entry.GovtMaxPrice}
	if kind == entities.ItemKindMedicine {
		dest = append(dest, &unit)
	}
	dest = append(dest, &entry.CreatedAt)

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	entry.Category = category.String
	entry.Unit = unit.String
	return entry, nil
}
