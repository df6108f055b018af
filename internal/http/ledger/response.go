package ledger

import (
	"time"

	"github.com/google/uuid"

	"github.com/rhasan/estatedesk/internal/ledger"
)

type inflowResponse struct {
	ID            uuid.UUID          `json:"id"`
	ProjectID     uuid.UUID          `json:"project_id"`
	FlatID        uuid.UUID          `json:"flat_id"`
	CustomerID    uuid.UUID          `json:"customer_id"`
	Amount        int64              `json:"amount"`
	Date          time.Time          `json:"date"`
	PaymentType   ledger.PaymentType `json:"payment_type"`
	PaymentMethod string             `json:"payment_method,omitempty"`
	ReceiptNo     string             `json:"receipt_no,omitempty"`
	Reference     string             `json:"reference,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
}

func toInflowResponse(in *ledger.Inflow) inflowResponse {
	return inflowResponse{
		ID:            in.ID,
		ProjectID:     in.ProjectID,
		FlatID:        in.FlatID,
		CustomerID:    in.CustomerID,
		Amount:        in.Amount,
		Date:          in.Date,
		PaymentType:   in.PaymentType,
		PaymentMethod: in.PaymentMethod,
		ReceiptNo:     in.ReceiptNo,
		Reference:     in.Reference,
		CreatedAt:     in.CreatedAt,
	}
}

func toInflowResponseList(inflows []*ledger.Inflow) []inflowResponse {
	resp := make([]inflowResponse, len(inflows))
	for i, in := range inflows {
		resp[i] = toInflowResponse(in)
	}

	return resp
}

type outflowResponse struct {
	ID             uuid.UUID  `json:"id"`
	ProjectID      *uuid.UUID `json:"project_id,omitempty"`
	Amount         int64      `json:"amount"`
	Date           time.Time  `json:"date"`
	Category       string     `json:"category,omitempty"`
	SupplierVendor string     `json:"supplier_vendor,omitempty"`
	ExpenseNo      string     `json:"expense_no,omitempty"`
	PaymentMethod  string     `json:"payment_method,omitempty"`
	Reference      string     `json:"reference,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

func toOutflowResponse(out *ledger.Outflow) outflowResponse {
	return outflowResponse{
		ID:             out.ID,
		ProjectID:      out.ProjectID,
		Amount:         out.Amount,
		Date:           out.Date,
		Category:       out.Category,
		SupplierVendor: out.SupplierVendor,
		ExpenseNo:      out.ExpenseNo,
		PaymentMethod:  out.PaymentMethod,
		Reference:      out.Reference,
		CreatedAt:      out.CreatedAt,
	}
}

func toOutflowResponseList(outflows []*ledger.Outflow) []outflowResponse {
	resp := make([]outflowResponse, len(outflows))
	for i, out := range outflows {
		resp[i] = toOutflowResponse(out)
	}

	return resp
}
