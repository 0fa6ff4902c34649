package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ri0706/Alpha-Spark-Ritisha.M/internal/application/services"
	"github.com/ri0706/Alpha-Spark-Ritisha.M/internal/domain/entities"
	apperrors "github.com/ri0706/Alpha-Spark-Ritisha.M/pkg/errors"
)

type stubComplaintRepository struct {
	created []*entities.Complaint
}

func (s *stubComplaintRepository) Create(ctx context.Context, complaint *entities.Complaint) error {
	s.created = append(s.created, complaint)
	return nil
}

func (s *stubComplaintRepository) List(ctx context.Context) ([]*entities.Complaint, error) {
	return s.created, nil
}

func validComplaintInput() services.FileComplaintInput {
	return services.FileComplaintInput{
		BillID:           "bill-1",
		PatientName:      "Asha Rao",
		PatientEmail:     "asha@example.com",
		PatientPhone:     "9876543210",
		HospitalName:     "City Care Hospital",
		ComplaintDetails: "Charged ₹450 for an ECG capped at ₹400",
		OverchargeAmount: 50,
	}
}

func TestComplaintService_File(t *testing.T) {
	repo := &stubComplaintRepository{}
	svc := services.NewComplaintService(repo)

	complaint, err := svc.File(context.Background(), validComplaintInput())

	require.NoError(t, err)
	assert.NotEmpty(t, complaint.ID)
	assert.Equal(t, entities.ComplaintStatusPending, complaint.Status)
	assert.False(t, complaint.CreatedAt.IsZero())
	require.Len(t, repo.created, 1)
	assert.Equal(t, complaint, repo.created[0])
}

func TestComplaintService_File_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*services.FileComplaintInput)
	}{
		{"missing patient name", func(in *services.FileComplaintInput) { in.PatientName = "" }},
		{"missing email", func(in *services.FileComplaintInput) { in.PatientEmail = " " }},
		{"missing phone", func(in *services.FileComplaintInput) { in.PatientPhone = "" }},
		{"missing hospital", func(in *services.FileComplaintInput) { in.HospitalName = "" }},
		{"missing details", func(in *services.FileComplaintInput) { in.ComplaintDetails = "" }},
		{"negative overcharge", func(in *services.FileComplaintInput) { in.OverchargeAmount = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &stubComplaintRepository{}
			svc := services.NewComplaintService(repo)

			input := validComplaintInput()
			tt.mutate(&input)

			_, err := svc.File(context.Background(), input)

			assert.True(t, apperrors.IsValidation(err))
			assert.Empty(t, repo.created)
		})
	}
}

func TestComplaintService_File_BillIDOptional(t *testing.T) {
	repo := &stubComplaintRepository{}
	svc := services.NewComplaintService(repo)

	input := validComplaintInput()
	input.BillID = ""

	complaint, err := svc.File(context.Background(), input)

	require.NoError(t, err)
	assert.Empty(t, complaint.BillID)
}
