package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ri0706/Alpha-Spark-Ritisha.M/internal/application/services"
	"github.com/ri0706/Alpha-Spark-Ritisha.M/internal/domain/entities"
)

func TestValidatePrice(t *testing.T) {
	paracetamol := &entities.CatalogEntry{
		Name:         "Paracetamol 500mg",
		GovtMinPrice: 2.00,
		GovtMaxPrice: 5.00,
	}

	tests := []struct {
		name           string
		entry          *entities.CatalogEntry
		charged        float64
		wantValid      bool
		wantOvercharge float64
	}{
		{
			name:           "within range",
			entry:          paracetamol,
			charged:        3.50,
			wantValid:      true,
			wantOvercharge: 0,
		},
		{
			name:           "exactly at minimum",
			entry:          paracetamol,
			charged:        2.00,
			wantValid:      true,
			wantOvercharge: 0,
		},
		{
			name:           "exactly at maximum",
			entry:          paracetamol,
			charged:        5.00,
			wantValid:      true,
			wantOvercharge: 0,
		},
		{
			name:           "overcharged",
			entry:          paracetamol,
			charged:        7.50,
			wantValid:      false,
			wantOvercharge: 2.50,
		},
		{
			name:           "below minimum is invalid but not an overcharge",
			entry:          paracetamol,
			charged:        1.00,
			wantValid:      false,
			wantOvercharge: 0,
		},
		{
			name: "procedure overcharge",
			entry: &entities.CatalogEntry{
				Name:         "ECG",
				GovtMinPrice: 150,
				GovtMaxPrice: 400,
			},
			charged:        450,
			wantValid:      false,
			wantOvercharge: 50,
		},
		{
			name:           "free item within zero-min range",
			entry:          &entities.CatalogEntry{Name: "Saline", GovtMinPrice: 0, GovtMaxPrice: 10},
			charged:        0,
			wantValid:      true,
			wantOvercharge: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verdict := services.ValidatePrice(tt.entry, tt.charged)
			assert.Equal(t, tt.wantValid, verdict.IsValid)
			assert.InDelta(t, tt.wantOvercharge, verdict.Overcharge, 1e-9)
		})
	}
}
