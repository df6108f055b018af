package ledger

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound = errors.New("ledger entry not found")
	// ErrValidation wraps rejections of caller input so handlers can map
	// them to a client error instead of a server one.
	ErrValidation = errors.New("invalid ledger input")
	// ErrLinked is returned when a caller tries to mutate an outflow that is
	// tied to an expense; those rows only change through the expense
	// reconciler so paid amounts never drift from the log.
	ErrLinked = errors.New("outflow is linked to an expense")
)

// PaymentType classifies money coming in from a customer.
type PaymentType string

const (
	PaymentTypeBooking     PaymentType = "Booking"
	PaymentTypeInstallment PaymentType = "Installment"
)

// Inflow is a customer payment recorded against a project's flat.
type Inflow struct {
	ID            uuid.UUID
	ProjectID     uuid.UUID
	FlatID        uuid.UUID
	CustomerID    uuid.UUID
	Amount        int64 // whole Taka
	Date          time.Time
	PaymentType   PaymentType
	PaymentMethod string
	ReceiptNo     string
	Reference     string
	CreatedAt     time.Time
}

// Outflow is money paid out. ProjectID is nil for general office costs.
// ExpenseNo, when set, is the human-readable key of the expense this payment
// settles; such rows are written only by the expense reconciler.
type Outflow struct {
	ID             uuid.UUID
	ProjectID      *uuid.UUID
	Amount         int64
	Date           time.Time
	Category       string
	SupplierVendor string
	ExpenseNo      string
	PaymentMethod  string
	Reference      string
	CreatedAt      time.Time
}

// Linked reports whether the outflow settles an expense.
func (o *Outflow) Linked() bool {
	return o.ExpenseNo != ""
}

// StatementRow is a collection parsed from a bank statement. It stays pending
// until the back office assigns the project, flat and customer that turn it
// into an inflow.
type StatementRow struct {
	Date      time.Time
	ReceiptNo string
	Amount    int64 // whole Taka
	Reference string
}
