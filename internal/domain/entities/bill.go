package entities

import "time"

// Bill aggregates the verified line items of a single hospital bill.
// total_amount and overcharged are fixed at creation and never recomputed.
type Bill struct {
	ID           string    `json:"id" db:"id"`
	PatientName  string    `json:"patient_name" db:"patient_name"`
	HospitalName string    `json:"hospital_name" db:"hospital_name"`
	BillDate     time.Time `json:"bill_date" db:"bill_date"`
	TotalAmount  float64   `json:"total_amount" db:"total_amount"`
	Verified     bool      `json:"verified" db:"verified"`
	Overcharged  bool      `json:"overcharged" db:"overcharged"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// BillItem is one verified line of a bill. Position is the 1-based place
// of the line in the submitted bill and fixes the itemization order.
// ItemName and GovtMaxPrice are snapshots taken at verification time, not
// live catalog references.
// Items whose name matched no catalog entry persist with Resolved=false
// and an empty ItemID so the itemization accounts for every input line.
type BillItem struct {
	ID            string    `json:"id" db:"id"`
	BillID        string    `json:"bill_id" db:"bill_id"`
	Position      int       `json:"position" db:"position"`
	ItemType      ItemKind  `json:"item_type" db:"item_type"`
	ItemID        string    `json:"item_id,omitempty" db:"item_id"`
	ItemName      string    `json:"item_name" db:"item_name"`
	ChargedPrice  float64   `json:"charged_price" db:"charged_price"`
	GovtMaxPrice  float64   `json:"govt_max_price" db:"govt_max_price"`
	Resolved      bool      `json:"resolved" db:"resolved"`
	IsOvercharged bool      `json:"is_overcharged" db:"is_overcharged"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}
