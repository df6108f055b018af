package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Register headers. Column order is fixed; downstream spreadsheets key on it.
const (
	SalesHeader       = "date,project,flat,customer,base_price,extra_costs,total_price,downpayment"
	CollectionsHeader = "date,project,flat,customer,payment_type,method,receipt_no,amount"
	PaymentsHeader    = "date,project,category,vendor,expense_no,method,reference,amount"
)

const dateFormat = "2006-01-02"

// orNA substitutes the register placeholder for values lost to deleted or
// never-filled reference rows.
func orNA(s string) string {
	if s == "" {
		return "N/A"
	}

	return s
}

func taka(amount int64) string {
	return strconv.FormatInt(amount, 10)
}

// WriteSalesRegister writes the sales register (header included).
func WriteSalesRegister(w io.Writer, rows []SaleRow) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(SalesHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, row := range rows {
		record := []string{
			row.Date.Format(dateFormat),
			orNA(row.ProjectName),
			orNA(row.FlatNumber),
			orNA(row.CustomerName),
			taka(row.BasePrice),
			taka(row.ExtraCosts),
			taka(row.TotalPrice),
			taka(row.Downpayment),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}

	return cw.Error()
}

// WriteCollectionsRegister writes the collections register (header included).
func WriteCollectionsRegister(w io.Writer, rows []CollectionRow) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(CollectionsHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, row := range rows {
		record := []string{
			row.Date.Format(dateFormat),
			orNA(row.ProjectName),
			orNA(row.FlatNumber),
			orNA(row.CustomerName),
			row.PaymentType,
			row.Method,
			row.ReceiptNo,
			taka(row.Amount),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}

	return cw.Error()
}

// WritePaymentsRegister writes the payments register (header included).
func WritePaymentsRegister(w io.Writer, rows []PaymentRow) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(PaymentsHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, row := range rows {
		record := []string{
			row.Date.Format(dateFormat),
			orNA(row.ProjectName),
			row.Category,
			orNA(row.Vendor),
			row.ExpenseNo,
			row.Method,
			row.Reference,
			taka(row.Amount),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}

	return cw.Error()
}
