package database_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ri0706/Alpha-Spark-Ritisha.M/internal/adapters/database"
	"github.com/ri0706/Alpha-Spark-Ritisha.M/internal/domain/entities"
	"github.com/ri0706/Alpha-Spark-Ritisha.M/internal/infrastructure/clients/postgres"
	apperrors "github.com/ri0706/Alpha-Spark-Ritisha.M/pkg/errors"
)

// Queries are interpolated before execution, so expectations match on the
// statement text alone.
func newMockClient(t *testing.T) (*postgres.Client, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return postgres.NewClientFromDB(db), mock, func() { db.Close() }
}

func medicineRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "category", "govt_min_price", "govt_max_price", "unit", "created_at",
	})
}

func TestCatalogAdapter_List_Medicines(t *testing.T) {
	client, mock, cleanup := newMockClient(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery(`SELECT .+ FROM "medicines" ORDER BY "name" ASC`).
		WillReturnRows(medicineRows().
			AddRow("med-2", "Amoxicillin 250mg", "Antibiotic", 5.0, 12.0, "capsule", now).
			AddRow("med-1", "Paracetamol 500mg", "Pain Relief", 2.0, 5.0, "tablet", now))

	adapter := database.NewCatalogAdapter(client)
	entries, err := adapter.List(context.Background(), entities.ItemKindMedicine)

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Amoxicillin 250mg", entries[0].Name)
	assert.Equal(t, "capsule", entries[0].Unit)
	assert.InDelta(t, 12.0, entries[0].GovtMaxPrice, 1e-9)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogAdapter_List_ProceduresHaveNoUnit(t *testing.T) {
	client, mock, cleanup := newMockClient(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT .+ FROM "procedures" ORDER BY "name" ASC`).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "category", "govt_min_price", "govt_max_price", "created_at",
		}).AddRow("proc-1", "ECG", "Cardiac", 150.0, 400.0, time.Now()))

	adapter := database.NewCatalogAdapter(client)
	entries, err := adapter.List(context.Background(), entities.ItemKindProcedure)

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "ECG", entries[0].Name)
	assert.Empty(t, entries[0].Unit)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogAdapter_FindByName(t *testing.T) {
	client, mock, cleanup := newMockClient(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT .+ FROM "medicines" WHERE .+ILIKE.+ LIMIT 1`).
		WillReturnRows(medicineRows().
			AddRow("med-1", "Paracetamol 500mg", "Pain Relief", 2.0, 5.0, "tablet", time.Now()))

	adapter := database.NewCatalogAdapter(client)
	entry, err := adapter.FindByName(context.Background(), entities.ItemKindMedicine, "paracetamol")

	require.NoError(t, err)
	assert.Equal(t, "med-1", entry.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogAdapter_FindByName_NotFound(t *testing.T) {
	client, mock, cleanup := newMockClient(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT .+ FROM "medicines" WHERE .+ILIKE.+ LIMIT 1`).
		WillReturnRows(medicineRows())

	adapter := database.NewCatalogAdapter(client)
	_, err := adapter.FindByName(context.Background(), entities.ItemKindMedicine, "nonexistent")

	assert.True(t, apperrors.IsNotFound(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogAdapter_Search_AppliesLimit(t *testing.T) {
	client, mock, cleanup := newMockClient(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT .+ FROM "medicines" WHERE .+ILIKE.+ ORDER BY "name" ASC LIMIT 10`).
		WillReturnRows(medicineRows().
			AddRow("med-1", "Paracetamol 500mg", "Pain Relief", 2.0, 5.0, "tablet", time.Now()))

	adapter := database.NewCatalogAdapter(client)
	entries, err := adapter.Search(context.Background(), entities.ItemKindMedicine, "para", 10)

	require.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogAdapter_Create(t *testing.T) {
	client, mock, cleanup := newMockClient(t)
	defer cleanup()

	mock.ExpectExec(`INSERT INTO "medicines"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	adapter := database.NewCatalogAdapter(client)
	err := adapter.Create(context.Background(), entities.ItemKindMedicine, &entities.CatalogEntry{
		ID:           "med-1",
		Name:         "Paracetamol 500mg",
		Category:     "Pain Relief",
		GovtMinPrice: 2.0,
		GovtMaxPrice: 5.0,
		Unit:         "tablet",
		CreatedAt:    time.Now(),
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
