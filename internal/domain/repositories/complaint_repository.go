package repositories

import (
	"context"

	"github.com/ri0706/Alpha-Spark-Ritisha.M/internal/domain/entities"
)

// ComplaintRepository defines the interface for complaint persistence.
type ComplaintRepository interface {
	Create(ctx context.Context, complaint *entities.Complaint) error

	// List returns all complaints, newest first.
	List(ctx context.Context) ([]*entities.Complaint, error)
}
