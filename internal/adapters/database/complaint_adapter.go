package database

import (
	"context"
	"database/sql"

	"github.com/doug-martin/goqu/v9"

	"github.com/ri0706/Alpha-Spark-Ritisha.M/internal/domain/entities"
	"github.com/ri0706/Alpha-Spark-Ritisha.M/internal/domain/repositories"
	"github.com/ri0706/Alpha-Spark-Ritisha.M/internal/infrastructure/clients/postgres"
	apperrors "github.com/ri0706/Alpha-Spark-Ritisha.M/pkg/errors"
)

// ComplaintAdapter implements ComplaintRepository
type ComplaintAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewComplaintAdapter creates a new complaint adapter
func NewComplaintAdapter(client *postgres.Client) repositories.ComplaintRepository {
	return &ComplaintAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Create inserts a complaint.
func (a *ComplaintAdapter) Create(ctx context.Context, complaint *entities.Complaint) error {
	record := goqu.Record{
		"id":                complaint.ID,
		"bill_id":           sql.NullString{String: complaint.BillID, Valid: complaint.BillID != ""},
		"patient_name":      complaint.PatientName,
		"patient_email":     complaint.PatientEmail,
		"patient_phone":     complaint.PatientPhone,
		"hospital_name":     complaint.HospitalName,
		"complaint_details": complaint.ComplaintDetails,
		"overcharge_amount": complaint.OverchargeAmount,
		"status":            string(complaint.Status),
		"created_at":        complaint.CreatedAt,
	}

	query, args, err := a.db.Insert("complaints").Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build complaint insert query", err)
	}

	_, err = a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to create complaint", err)
	}

	return nil
}

// List retrieves all complaints, newest first.
func (a *ComplaintAdapter) List(ctx context.Context) ([]*entities.Complaint, error) {
	query, args, err := a.db.Select(
		"id", "bill_id", "patient_name", "patient_email", "patient_phone",
		"hospital_name", "complaint_details", "overcharge_amount", "status", "created_at",
	).From("complaints").
		Order(goqu.I("created_at").Desc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build complaint list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list complaints", err)
	}
	defer rows.Close()

	complaints := []*entities.Complaint{}
	for rows.Next() {
		complaint := &entities.Complaint{}
		var billID sql.NullString
		var status string

		err := rows.Scan(
			&complaint.ID,
			&billID,
			&complaint.PatientName,
			&complaint.PatientEmail,
			&complaint.PatientPhone,
			&complaint.HospitalName,
			&complaint.ComplaintDetails,
			&complaint.OverchargeAmount,
			&status,
			&complaint.CreatedAt,
		)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan complaint", err)
		}

		complaint.BillID = billID.String
		complaint.Status = entities.ComplaintStatus(status)
		complaints = append(complaints, complaint)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("error iterating complaints", err)
	}

	return complaints, nil
}
