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
)

func TestComplaintAdapter_Create(t *testing.T) {
	client, mock, cleanup := newMockClient(t)
	defer cleanup()

	mock.ExpectExec(`INSERT INTO "complaints"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	adapter := database.NewComplaintAdapter(client)
	err := adapter.Create(context.Background(), &entities.Complaint{
		ID:               "comp-1",
		BillID:           "bill-1",
		PatientName:      "Asha Rao",
		PatientEmail:     "asha@example.com",
		PatientPhone:     "9876543210",
		HospitalName:     "City Care Hospital",
		ComplaintDetails: "Overcharged for ECG",
		OverchargeAmount: 50,
		Status:           entities.ComplaintStatusPending,
		CreatedAt:        time.Now().UTC(),
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestComplaintAdapter_List_NewestFirst(t *testing.T) {
	client, mock, cleanup := newMockClient(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery(`SELECT .+ FROM "complaints" ORDER BY "created_at" DESC`).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "bill_id", "patient_name", "patient_email", "patient_phone",
			"hospital_name", "complaint_details", "overcharge_amount", "status", "created_at",
		}).
			AddRow("comp-2", nil, "Ravi Kumar", "ravi@example.com", "9123456780",
				"Metro Hospital", "Billed twice for consultation", 400.0, "Pending", now).
			AddRow("comp-1", "bill-1", "Asha Rao", "asha@example.com", "9876543210",
				"City Care Hospital", "Overcharged for ECG", 50.0, "Resolved", now))

	adapter := database.NewComplaintAdapter(client)
	complaints, err := adapter.List(context.Background())

	require.NoError(t, err)
	require.Len(t, complaints, 2)
	assert.Equal(t, "comp-2", complaints[0].ID)
	assert.Empty(t, complaints[0].BillID)
	assert.Equal(t, entities.ComplaintStatusPending, complaints[0].Status)
	assert.Equal(t, entities.ComplaintStatusResolved, complaints[1].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}
