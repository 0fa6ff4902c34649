package entities

import "time"

// ComplaintStatus is the lifecycle state of a complaint.
type ComplaintStatus string

const (
	ComplaintStatusPending  ComplaintStatus = "Pending"
	ComplaintStatusResolved ComplaintStatus = "Resolved"
)

// Complaint is a patient-filed overcharge report. It may reference the
// bill it originated from but has an independent lifecycle.
type Complaint struct {
	ID               string          `json:"id" db:"id"`
	BillID           string          `json:"bill_id,omitempty" db:"bill_id"`
	PatientName      string          `json:"patient_name" db:"patient_name"`
	PatientEmail     string          `json:"patient_email" db:"patient_email"`
	PatientPhone     string          `json:"patient_phone" db:"patient_phone"`
	HospitalName     string          `json:"hospital_name" db:"hospital_name"`
	ComplaintDetails string          `json:"complaint_details" db:"complaint_details"`
	OverchargeAmount float64         `json:"overcharge_amount" db:"overcharge_amount"`
	Status           ComplaintStatus `json:"status" db:"status"`
	CreatedAt        time.Time       `json:"created_at" db:"created_at"`
}
