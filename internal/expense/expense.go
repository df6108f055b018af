package expense

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound = errors.New("expense not found")
	// ErrValidation wraps rejections of caller input. Handlers key on it to
	// tell a bad request apart from a store failure.
	ErrValidation = errors.New("invalid expense input")
	// ErrInvalidAmount is returned when a payment would push the paid amount
	// below zero or past the expense price.
	ErrInvalidAmount = errors.New("payment amount out of bounds")
	// ErrNotAssociated is returned when an outflow carries neither an expense
	// number nor a project; such rows cannot be reconciled or removed here.
	ErrNotAssociated = errors.New("outflow is not associated with an expense or project")
	// ErrHasPayments blocks deleting an expense that still has outflows
	// settled against it.
	ErrHasPayments = errors.New("expense has recorded payments")
)

// Status tracks how much of an expense has been settled. It is always derived
// from paid amount versus price, never set directly.
type Status string

const (
	StatusUnpaid        Status = "Unpaid"
	StatusPartiallyPaid Status = "Partially Paid"
	StatusPaid          Status = "Paid"
)

// StatusFor derives the payment status from the running paid amount.
func StatusFor(paid, price int64) Status {
	switch {
	case paid <= 0:
		return StatusUnpaid
	case paid >= price:
		return StatusPaid
	default:
		return StatusPartiallyPaid
	}
}

// statusAfterReversal derives the status after a payment was removed. A
// reversal never leaves an expense marked Paid even if the stored price later
// changed, so a fully-reversed expense always reads Unpaid or Partially Paid.
func statusAfterReversal(paid int64) Status {
	if paid <= 0 {
		return StatusUnpaid
	}

	return StatusPartiallyPaid
}

// Item is a reusable expense line item (cement, rod, labor contract).
type Item struct {
	ID   uuid.UUID
	Name string
}

// Expense is a purchase from a vendor against a project. ExpenseNo is the
// human-readable key printed on vouchers; outflows link back through it.
// VendorName and ItemName are joined in on read for display and for
// denormalizing onto payment outflows.
type Expense struct {
	ID         uuid.UUID
	ExpenseNo  string
	VendorID   uuid.UUID
	ProjectID  uuid.UUID
	ItemID     uuid.UUID
	Quantity   int64
	Price      int64
	PaidAmount int64
	Status     Status
	CreatedAt  time.Time
	UpdatedAt  *time.Time
	DeletedAt  *time.Time

	VendorName string
	ItemName   string
}

// Remaining is the unsettled balance.
func (e *Expense) Remaining() int64 {
	return e.Price - e.PaidAmount
}
