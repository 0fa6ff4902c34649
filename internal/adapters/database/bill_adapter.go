package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"

	"github.com/ri0706/Alpha-Spark-Ritisha.M/internal/domain/entities"
	"github.com/ri0706/Alpha-Spark-Ritisha.M/internal/domain/repositories"
	"github.com/ri0706/Alpha-Spark-Ritisha.M/internal/infrastructure/clients/postgres"
	apperrors "github.com/ri0706/Alpha-Spark-Ritisha.M/pkg/errors"
)

// BillAdapter implements BillRepository
type BillAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewBillAdapter creates a new bill adapter
func NewBillAdapter(client *postgres.Client) repositories.BillRepository {
	return &BillAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

var billColumns = []interface{}{
	"id", "patient_name", "hospital_name", "bill_date",
	"total_amount", "verified", "overcharged", "created_at",
}

var billItemColumns = []interface{}{
	"id", "bill_id", "position", "item_type", "item_id", "item_name",
	"charged_price", "govt_max_price", "resolved", "is_overcharged", "created_at",
}

// CreateWithItems persists the bill and its items inside one transaction so
// a mid-sequence failure never leaves an orphaned bill behind.
func (a *BillAdapter) CreateWithItems(ctx context.Context, bill *entities.Bill, items []*entities.BillItem) error {
	billQuery, billArgs, err := a.db.Insert("bills").Rows(goqu.Record{
		"id":            bill.ID,
		"patient_name":  bill.PatientName,
		"hospital_name": bill.HospitalName,
		"bill_date":     bill.BillDate,
		"total_amount":  bill.TotalAmount,
		"verified":      bill.Verified,
		"overcharged":   bill.Overcharged,
		"created_at":    bill.CreatedAt,
	}).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build bill insert query", err)
	}

	tx, err := a.client.BeginTx(ctx)
	if err != nil {
		return apperrors.NewInternalError("failed to begin transaction", err)
	}

	if _, err := tx.ExecContext(ctx, billQuery, billArgs...); err != nil {
		tx.Rollback()
		return apperrors.NewInternalError("failed to create bill", err)
	}

	for _, item := range items {
		itemQuery, itemArgs, err := a.db.Insert("bill_items").Rows(goqu.Record{
			"id":             item.ID,
			"bill_id":        item.BillID,
			"position":       item.Position,
			"item_type":      string(item.ItemType),
			"item_id":        sql.NullString{String: item.ItemID, Valid: item.ItemID != ""},
			"item_name":      item.ItemName,
			"charged_price":  item.ChargedPrice,
			"govt_max_price": item.GovtMaxPrice,
			"resolved":       item.Resolved,
			"is_overcharged": item.IsOvercharged,
			"created_at":     item.CreatedAt,
		}).ToSQL()
		if err != nil {
			tx.Rollback()
			return apperrors.NewInternalError("failed to build bill item insert query", err)
		}

		if _, err := tx.ExecContext(ctx, itemQuery, itemArgs...); err != nil {
			tx.Rollback()
			return apperrors.NewInternalError("failed to create bill item", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return apperrors.NewInternalError("failed to commit bill transaction", err)
	}

	return nil
}

// List retrieves all bills, newest first.
func (a *BillAdapter) List(ctx context.Context) ([]*entities.Bill, error) {
	query, args, err := a.db.Select(billColumns...).
		From("bills").
		Order(goqu.I("created_at").Desc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build bill list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list bills", err)
	}
	defer rows.Close()

	bills := []*entities.Bill{}
	for rows.Next() {
		bill, err := scanBill(rows)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan bill", err)
		}
		bills = append(bills, bill)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("error iterating bills", err)
	}

	return bills, nil
}

// GetByID retrieves a bill by ID
func (a *BillAdapter) GetByID(ctx context.Context, id string) (*entities.Bill, error) {
	query, args, err := a.db.Select(billColumns...).
		From("bills").
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build bill query", err)
	}

	bill, err := scanBill(a.client.DB().QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("bill with id %s not found", id))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get bill", err)
	}

	return bill, nil
}

// ListItems retrieves the items of a bill ordered by their position in
// the submitted bill.
func (a *BillAdapter) ListItems(ctx context.Context, billID string) ([]*entities.BillItem, error) {
	query, args, err := a.db.Select(billItemColumns...).
		From("bill_items").
		Where(goqu.Ex{"bill_id": billID}).
		Order(goqu.I("position").Asc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build bill items query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list bill items", err)
	}
	defer rows.Close()

	items := []*entities.BillItem{}
	for rows.Next() {
		item := &entities.BillItem{}
		var itemID sql.NullString
		var itemType string

		err := rows.Scan(
			&item.ID,
			&item.BillID,
			&item.Position,
			&itemType,
			&itemID,
			&item.ItemName,
			&item.ChargedPrice,
			&item.GovtMaxPrice,
			&item.Resolved,
			&item.IsOvercharged,
			&item.CreatedAt,
		)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan bill item", err)
		}

		item.ItemType = entities.ItemKind(itemType)
		item.ItemID = itemID.String
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("error iterating bill items", err)
	}

	return items, nil
}

func scanBill(row rowScanner) (*entities.Bill, error) {
	bill := &entities.Bill{}
	err := row.Scan(
		&bill.ID,
		&bill.PatientName,
		&bill.HospitalName,
		&bill.BillDate,
		&bill.TotalAmount,
		&bill.Verified,
		&bill.Overcharged,
		&bill.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return bill, nil
}
