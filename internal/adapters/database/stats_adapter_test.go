package database_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ri0706/Alpha-Spark-Ritisha.M/internal/adapters/database"
)

func TestStatsAdapter_DashboardStats(t *testing.T) {
	client, mock, cleanup := newMockClient(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT`).
		WillReturnRows(sqlmock.NewRows([]string{"total", "overcharged", "complaints"}).
			AddRow(10, 3, 2))

	adapter := database.NewStatsAdapter(client)
	stats, err := adapter.DashboardStats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 10, stats.TotalBills)
	assert.Equal(t, 3, stats.OverchargedBills)
	assert.Equal(t, 7, stats.ValidBills)
	assert.Equal(t, 2, stats.TotalComplaints)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatsAdapter_DashboardStats_Error(t *testing.T) {
	client, mock, cleanup := newMockClient(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT`).WillReturnError(errors.New("connection reset"))

	adapter := database.NewStatsAdapter(client)
	_, err := adapter.DashboardStats(context.Background())

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
