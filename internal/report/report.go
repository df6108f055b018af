// Package report is the read side: server-side SQL aggregates for customer
// and project summaries, the dashboard, and the CSV registers.
package report

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("report subject not found")

// CustomerSaleRow is one flat purchase on a customer statement.
type CustomerSaleRow struct {
	ProjectName string
	FlatNumber  string
	TotalPrice  int64
	Collected   int64
	Due         int64
}

// CustomerSummary is the customer statement: one row per sale plus grand
// totals across them.
type CustomerSummary struct {
	CustomerID     uuid.UUID
	CustomerName   string
	Rows           []CustomerSaleRow
	TotalPrice     int64
	TotalCollected int64
	TotalDue       int64
}

// ProjectSummary is the per-project dashboard line: inventory, sales value,
// money in, money out and the expense position.
type ProjectSummary struct {
	ProjectID      uuid.UUID
	ProjectName    string
	Status         string
	TotalFlats     int
	SoldFlats      int
	AvailableFlats int
	ReservedFlats  int

	SalesValue int64
	Collected  int64
	Spent      int64

	ExpenseBilled      int64
	ExpensePaid        int64
	ExpenseOutstanding int64
}

// SaleRow is one line of the sales register.
type SaleRow struct {
	Date         time.Time
	ProjectName  string
	FlatNumber   string
	CustomerName string
	BasePrice    int64
	ExtraCosts   int64
	TotalPrice   int64
	Downpayment  int64
}

// CollectionRow is one line of the collections register.
type CollectionRow struct {
	Date         time.Time
	ProjectName  string
	FlatNumber   string
	CustomerName string
	PaymentType  string
	Method       string
	ReceiptNo    string
	Amount       int64
}

// PaymentRow is one line of the payments register.
type PaymentRow struct {
	Date        time.Time
	ProjectName string
	Category    string
	Vendor      string
	ExpenseNo   string
	Method      string
	Reference   string
	Amount      int64
}
