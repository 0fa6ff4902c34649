package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ri0706/Alpha-Spark-Ritisha.M/internal/domain/entities"
	"github.com/ri0706/Alpha-Spark-Ritisha.M/internal/domain/repositories"
	"github.com/ri0706/Alpha-Spark-Ritisha.M/internal/infrastructure/observability"
	apperrors "github.com/ri0706/Alpha-Spark-Ritisha.M/pkg/errors"
)

// Sentinel identity for quick price checks saved without a full bill.
const (
	quickCheckPatient  = "Quick Check"
	quickCheckHospital = "Price Verification"
)

const billDateLayout = "2006-01-02"

// CatalogLookup is the slice of the catalog service the bill service needs.
type CatalogLookup interface {
	Find(ctx context.Context, name string, kind entities.ItemKind) (*entities.CatalogEntry, error)
}

// BillService verifies charged prices against the catalog and records the
// resulting bills.
type BillService struct {
	catalog CatalogLookup
	bills   repositories.BillRepository
	metrics *observability.Metrics // optional
}

// NewBillService creates a new bill service. metrics may be nil.
func NewBillService(catalog CatalogLookup, bills repositories.BillRepository, metrics *observability.Metrics) *BillService {
	return &BillService{
		catalog: catalog,
		bills:   bills,
		metrics: metrics,
	}
}

// BillItemInput is one line of an incoming bill.
type BillItemInput struct {
	Name  string  `json:"name"`
	Kind  string  `json:"type"`
	Price float64 `json:"price"`
}

// VerifyBillInput is the payload for full bill verification.
type VerifyBillInput struct {
	PatientName  string          `json:"patient_name"`
	HospitalName string          `json:"hospital_name"`
	BillDate     string          `json:"bill_date"`
	Items        []BillItemInput `json:"items"`
}

// CheckPriceResult is the outcome of a single-item price check.
type CheckPriceResult struct {
	Found        bool                   `json:"found"`
	Item         *entities.CatalogEntry `json:"item,omitempty"`
	ChargedPrice float64                `json:"charged_price,omitempty"`
	IsValid      bool                   `json:"is_valid"`
	Overcharge   float64                `json:"overcharge"`
	Message      string                 `json:"message"`
}

// CheckPrice resolves a single item and validates its charged price.
// A catalog miss is a normal outcome: the result reports found=false and
// nothing is persisted regardless of save.
func (s *BillService) CheckPrice(ctx context.Context, itemName string, kind entities.ItemKind, charged float64, save bool) (*CheckPriceResult, error) {
	if charged < 0 {
		return nil, apperrors.NewValidationError("charged price must not be negative")
	}

	entry, err := s.catalog.Find(ctx, itemName, kind)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return &CheckPriceResult{
				Found:   false,
				Message: "Item not found in government database",
			}, nil
		}
		return nil, err
	}

	verdict := ValidatePrice(entry, charged)

	message := "Price is within government limits"
	if !verdict.IsValid {
		message = fmt.Sprintf("Overcharged by ₹%.2f", verdict.Overcharge)
	}

	if save {
		now := time.Now().UTC()
		bill := &entities.Bill{
			ID:           uuid.New().String(),
			PatientName:  quickCheckPatient,
			HospitalName: quickCheckHospital,
			BillDate:     now.Truncate(24 * time.Hour),
			TotalAmount:  charged,
			Verified:     true,
			Overcharged:  !verdict.IsValid,
			CreatedAt:    now,
		}
		if err := s.bills.CreateWithItems(ctx, bill, nil); err != nil {
			return nil, err
		}
	}

	return &CheckPriceResult{
		Found:        true,
		Item:         entry,
		ChargedPrice: charged,
		IsValid:      verdict.IsValid,
		Overcharge:   verdict.Overcharge,
		Message:      message,
	}, nil
}

// VerifyBill resolves and validates every line item in input order, then
// persists the bill and all items as one unit. Items that match no catalog
// entry are kept as unresolved lines rather than silently dropped; they
// count toward the total but can never flag an overcharge.
func (s *BillService) VerifyBill(ctx context.Context, input VerifyBillInput) (*entities.Bill, []*entities.BillItem, error) {
	if err := validateBillInput(input); err != nil {
		return nil, nil, err
	}

	billDate, err := time.Parse(billDateLayout, input.BillDate)
	if err != nil {
		return nil, nil, apperrors.NewValidationError(fmt.Sprintf("bill_date must be in %s format", billDateLayout))
	}

	now := time.Now().UTC()
	billID := uuid.New().String()

	var totalAmount float64
	hasOvercharge := false
	items := make([]*entities.BillItem, 0, len(input.Items))

	for i, line := range input.Items {
		kind, err := entities.ParseItemKind(line.Kind)
		if err != nil {
			return nil, nil, apperrors.NewValidationError(err.Error())
		}
		if line.Price < 0 {
			return nil, nil, apperrors.NewValidationError(fmt.Sprintf("charged price for %q must not be negative", line.Name))
		}

		totalAmount += line.Price

		item := &entities.BillItem{
			ID:           uuid.New().String(),
			BillID:       billID,
			Position:     i + 1,
			ItemType:     kind,
			ItemName:     line.Name,
			ChargedPrice: line.Price,
			CreatedAt:    now,
		}

		entry, err := s.catalog.Find(ctx, line.Name, kind)
		switch {
		case err == nil:
			verdict := ValidatePrice(entry, line.Price)
			item.ItemID = entry.ID
			item.ItemName = entry.Name
			item.GovtMaxPrice = entry.GovtMaxPrice
			item.Resolved = true
			item.IsOvercharged = verdict.Overcharge > 0
			if item.IsOvercharged {
				hasOvercharge = true
			}
		case apperrors.IsNotFound(err):
			// Unresolved line: keep the caller's name, no catalog snapshot.
		default:
			return nil, nil, err
		}

		items = append(items, item)
	}

	bill := &entities.Bill{
		ID:           billID,
		PatientName:  input.PatientName,
		HospitalName: input.HospitalName,
		BillDate:     billDate,
		TotalAmount:  totalAmount,
		Verified:     true,
		Overcharged:  hasOvercharge,
		CreatedAt:    now,
	}

	if err := s.bills.CreateWithItems(ctx, bill, items); err != nil {
		return nil, nil, err
	}

	observability.RecordBillVerified(ctx, s.metrics, bill.Overcharged)

	return bill, items, nil
}

// ListBills returns all bills, newest first.
func (s *BillService) ListBills(ctx context.Context) ([]*entities.Bill, error) {
	return s.bills.List(ctx)
}

// GetBillDetails returns a bill and its items.
func (s *BillService) GetBillDetails(ctx context.Context, billID string) (*entities.Bill, []*entities.BillItem, error) {
	bill, err := s.bills.GetByID(ctx, billID)
	if err != nil {
		return nil, nil, err
	}

	items, err := s.bills.ListItems(ctx, billID)
	if err != nil {
		return nil, nil, err
	}

	return bill, items, nil
}

func validateBillInput(input VerifyBillInput) error {
	if strings.TrimSpace(input.PatientName) == "" {
		return apperrors.NewValidationError("patient_name is required")
	}
	if strings.TrimSpace(input.HospitalName) == "" {
		return apperrors.NewValidationError("hospital_name is required")
	}
	if strings.TrimSpace(input.BillDate) == "" {
		return apperrors.NewValidationError("bill_date is required")
	}
	if len(input.Items) == 0 {
		return apperrors.NewValidationError("at least one bill item is required")
	}
	for _, line := range input.Items {
		if strings.TrimSpace(line.Name) == "" {
			return apperrors.NewValidationError("every bill item needs a name")
		}
	}
	return nil
}
