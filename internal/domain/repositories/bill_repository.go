package repositories

import (
	"context"

	"github.com/ri0706/Alpha-Spark-Ritisha.M/internal/domain/entities"
)

// BillRepository defines the interface for bill persistence.
type BillRepository interface {
	// CreateWithItems persists the bill and its items in one transaction;
	// either everything commits or nothing does. items may be empty.
	CreateWithItems(ctx context.Context, bill *entities.Bill, items []*entities.BillItem) error

	// List returns all bills, newest first.
	List(ctx context.Context) ([]*entities.Bill, error)

	// GetByID returns a single bill or a not found error.
	GetByID(ctx context.Context, id string) (*entities.Bill, error)

	// ListItems returns the items of a bill ordered by their position in
	// the submitted bill.
	ListItems(ctx context.Context, billID string) ([]*entities.BillItem, error)
}
