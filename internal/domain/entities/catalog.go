package entities

import (
	"fmt"
	"time"
)

// ItemKind discriminates the two catalog tables.
type ItemKind string

const (
	ItemKindMedicine  ItemKind = "medicine"
	ItemKindProcedure ItemKind = "procedure"
)

// ParseItemKind validates a caller-supplied kind string.
func ParseItemKind(value string) (ItemKind, error) {
	switch ItemKind(value) {
	case ItemKindMedicine:
		return ItemKindMedicine, nil
	case ItemKindProcedure:
		return ItemKindProcedure, nil
	default:
		return "", fmt.Errorf("unknown item kind %q", value)
	}
}

// CatalogEntry is a medicine or procedure with its government-mandated
// price range. Entries are seeded once and read-only afterwards.
type CatalogEntry struct {
	ID           string    `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Category     string    `json:"category" db:"category"`
	GovtMinPrice float64   `json:"govt_min_price" db:"govt_min_price"`
	GovtMaxPrice float64   `json:"govt_max_price" db:"govt_max_price"`
	Unit         string    `json:"unit,omitempty" db:"unit"` // medicines only
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
