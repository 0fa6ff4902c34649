package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/ri0706/Alpha-Spark-Ritisha.M/internal/application/services"
	"github.com/ri0706/Alpha-Spark-Ritisha.M/internal/domain/entities"
)

// BillService defines the bill operations used by the handler.
type BillService interface {
	CheckPrice(ctx context.Context, itemName string, kind entities.ItemKind, charged float64, save bool) (*services.CheckPriceResult, error)
	VerifyBill(ctx context.Context, input services.VerifyBillInput) (*entities.Bill, []*entities.BillItem, error)
	ListBills(ctx context.Context) ([]*entities.Bill, error)
	GetBillDetails(ctx context.Context, billID string) (*entities.Bill, []*entities.BillItem, error)
}

// BillHandler handles bill verification HTTP requests
type BillHandler struct {
	service BillService
}

// NewBillHandler creates a new bill handler
func NewBillHandler(service BillService) *BillHandler {
	return &BillHandler{service: service}
}

type checkPriceRequest struct {
	ItemName     string  `json:"item_name"`
	ItemType     string  `json:"item_type"`
	ChargedPrice float64 `json:"charged_price"`
	Save         bool    `json:"save"`
}

// CheckPrice handles POST /api/check-price
func (h *BillHandler) CheckPrice(w http.ResponseWriter, r *http.Request) {
	var req checkPriceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.ItemName == "" {
		respondWithError(w, http.StatusBadRequest, "item_name is required")
		return
	}

	kind, ok := parseKindParam(w, req.ItemType)
	if !ok {
		return
	}

	result, err := h.service.CheckPrice(r.Context(), req.ItemName, kind, req.ChargedPrice, req.Save)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, result)
}

// VerifyBill handles POST /api/verify-bill
func (h *BillHandler) VerifyBill(w http.ResponseWriter, r *http.Request) {
	var input services.VerifyBillInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	bill, items, err := h.service.VerifyBill(r.Context(), input)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, map[string]interface{}{
		"bill_id": bill.ID,
		"bill":    bill,
		"items":   items,
	})
}

// ListBills handles GET /api/bills
func (h *BillHandler) ListBills(w http.ResponseWriter, r *http.Request) {
	bills, err := h.service.ListBills(r.Context())
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, bills)
}

// GetBillDetails handles GET /api/bills/{id}
func (h *BillHandler) GetBillDetails(w http.ResponseWriter, r *http.Request) {
	billID := r.PathValue("id")
	if billID == "" {
		respondWithError(w, http.StatusBadRequest, "bill id is required")
		return
	}

	bill, items, err := h.service.GetBillDetails(r.Context(), billID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"bill":  bill,
		"items": items,
	})
}
