package expense

import (
	"time"

	"github.com/google/uuid"

	"github.com/rhasan/estatedesk/internal/expense"
	"github.com/rhasan/estatedesk/internal/ledger"
)

type expenseResponse struct {
	ID         uuid.UUID      `json:"id"`
	ExpenseNo  string         `json:"expense_no"`
	VendorID   uuid.UUID      `json:"vendor_id"`
	VendorName string         `json:"vendor_name,omitempty"`
	ProjectID  uuid.UUID      `json:"project_id"`
	ItemID     uuid.UUID      `json:"item_id"`
	ItemName   string         `json:"item_name,omitempty"`
	Quantity   int64          `json:"quantity"`
	Price      int64          `json:"price"`
	PaidAmount int64          `json:"paid_amount"`
	Remaining  int64          `json:"remaining"`
	Status     expense.Status `json:"status"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  *time.Time     `json:"updated_at,omitempty"`
}

func toResponse(e *expense.Expense) expenseResponse {
	return expenseResponse{
		ID:         e.ID,
		ExpenseNo:  e.ExpenseNo,
		VendorID:   e.VendorID,
		VendorName: e.VendorName,
		ProjectID:  e.ProjectID,
		ItemID:     e.ItemID,
		ItemName:   e.ItemName,
		Quantity:   e.Quantity,
		Price:      e.Price,
		PaidAmount: e.PaidAmount,
		Remaining:  e.Remaining(),
		Status:     e.Status,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}

func toResponseList(expenses []*expense.Expense) []expenseResponse {
	resp := make([]expenseResponse, len(expenses))
	for i, e := range expenses {
		resp[i] = toResponse(e)
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

type itemResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

func toItemResponse(it *expense.Item) itemResponse {
	return itemResponse{ID: it.ID, Name: it.Name}
}

func toItemResponseList(items []*expense.Item) []itemResponse {
	resp := make([]itemResponse, len(items))
	for i, it := range items {
		resp[i] = toItemResponse(it)
	}

	return resp
}
