package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ri0706/Alpha-Spark-Ritisha.M/internal/domain/entities"
	"github.com/ri0706/Alpha-Spark-Ritisha.M/internal/domain/repositories"
	apperrors "github.com/ri0706/Alpha-Spark-Ritisha.M/pkg/errors"
)

// ComplaintService handles overcharge complaint filing.
type ComplaintService struct {
	repo repositories.ComplaintRepository
}

// NewComplaintService creates a new complaint service.
func NewComplaintService(repo repositories.ComplaintRepository) *ComplaintService {
	return &ComplaintService{repo: repo}
}

// FileComplaintInput is the payload for filing a complaint.
type FileComplaintInput struct {
	BillID           string  `json:"bill_id,omitempty"`
	PatientName      string  `json:"patient_name"`
	PatientEmail     string  `json:"patient_email"`
	PatientPhone     string  `json:"patient_phone"`
	HospitalName     string  `json:"hospital_name"`
	ComplaintDetails string  `json:"complaint_details"`
	OverchargeAmount float64 `json:"overcharge_amount"`
}

// File validates and stores a complaint. Status always starts Pending.
func (s *ComplaintService) File(ctx context.Context, input FileComplaintInput) (*entities.Complaint, error) {
	if err := validateComplaintInput(input); err != nil {
		return nil, err
	}

	complaint := &entities.Complaint{
		ID:               uuid.New().String(),
		BillID:           input.BillID,
		PatientName:      input.PatientName,
		PatientEmail:     input.PatientEmail,
		PatientPhone:     input.PatientPhone,
		HospitalName:     input.HospitalName,
		ComplaintDetails: input.ComplaintDetails,
		OverchargeAmount: input.OverchargeAmount,
		Status:           entities.ComplaintStatusPending,
		CreatedAt:        time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, complaint); err != nil {
		return nil, err
	}

	return complaint, nil
}

// List returns all complaints, newest first.
func (s *ComplaintService) List(ctx context.Context) ([]*entities.Complaint, error) {
	return s.repo.List(ctx)
}

func validateComplaintInput(input FileComplaintInput) error {
	required := []struct {
		value string
		field string
	}{
		{input.PatientName, "patient_name"},
		{input.PatientEmail, "patient_email"},
		{input.PatientPhone, "patient_phone"},
		{input.HospitalName, "hospital_name"},
		{input.ComplaintDetails, "complaint_details"},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return apperrors.NewValidationError(r.field + " is required")
		}
	}
	if input.OverchargeAmount < 0 {
		return apperrors.NewValidationError("overcharge_amount must not be negative")
	}
	return nil
}
