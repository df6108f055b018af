package report_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rhasan/estatedesk/internal/report"
)

func TestWriteSalesRegister(t *testing.T) {
	rows := []report.SaleRow{
		{
			Date:         time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
			ProjectName:  "Lake View",
			FlatNumber:   "A-3",
			CustomerName: "Rahim Uddin",
			BasePrice:    5_000_000,
			ExtraCosts:   300_000,
			TotalPrice:   5_650_000,
			Downpayment:  1_000_000,
		},
		{
			Date:       time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC),
			TotalPrice: 4_000_000,
			BasePrice:  4_000_000,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, report.WriteSalesRegister(&buf, rows))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)

	assert.Equal(t, report.SalesHeader, lines[0])
	assert.Equal(t, "2024-03-10,Lake View,A-3,Rahim Uddin,5000000,300000,5650000,1000000", lines[1])

	// Rows whose joined project, flat or customer is gone render N/A.
	assert.Equal(t, "2024-04-02,N/A,N/A,N/A,4000000,0,4000000,0", lines[2])
}

func TestWriteCollectionsRegister(t *testing.T) {
	rows := []report.CollectionRow{
		{
			Date:         time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
			ProjectName:  "Lake View",
			FlatNumber:   "A-3",
			CustomerName: "Rahim Uddin",
			PaymentType:  "Booking",
			Method:       "Bank Transfer",
			ReceiptNo:    "RCP-1021",
			Amount:       1_000_000,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, report.WriteCollectionsRegister(&buf, rows))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	assert.Equal(t, report.CollectionsHeader, lines[0])
	assert.Equal(t, "2024-03-10,Lake View,A-3,Rahim Uddin,Booking,Bank Transfer,RCP-1021,1000000", lines[1])
}

func TestWritePaymentsRegister(t *testing.T) {
	rows := []report.PaymentRow{
		{
			Date:        time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC),
			ProjectName: "Lake View",
			Category:    "Cement",
			Vendor:      "Mahbub Traders",
			ExpenseNo:   "EXP-20240310-AB12CD34",
			Method:      "Cheque",
			Reference:   "CHQ 445",
			Amount:      40_000,
		},
		{
			// Office outflow: no project, no expense.
			Date:     time.Date(2024, 3, 25, 0, 0, 0, 0, time.UTC),
			Category: "Office Rent",
			Amount:   30_000,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, report.WritePaymentsRegister(&buf, rows))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)

	assert.Equal(t, report.PaymentsHeader, lines[0])
	assert.Equal(t, "2024-03-20,Lake View,Cement,Mahbub Traders,EXP-20240310-AB12CD34,Cheque,CHQ 445,40000", lines[1])
	assert.Equal(t, "2024-03-25,N/A,Office Rent,N/A,,,,30000", lines[2])
}

// fakeRepo backs the summary tests without a database.
type fakeRepo struct {
	report.Repository

	name  string
	sales []report.CustomerSaleRow
}

func (f *fakeRepo) CustomerName(_ context.Context, _ uuid.UUID) (string, error) {
	return f.name, nil
}

func (f *fakeRepo) CustomerSales(_ context.Context, _ uuid.UUID) ([]report.CustomerSaleRow, error) {
	return f.sales, nil
}

func TestService_CustomerSummaryTotals(t *testing.T) {
	repo := &fakeRepo{
		name: "Rahim Uddin",
		sales: []report.CustomerSaleRow{
			{ProjectName: "Lake View", FlatNumber: "A-3", TotalPrice: 5_650_000, Collected: 1_000_000, Due: 4_650_000},
			{ProjectName: "Green Terrace", FlatNumber: "B-7", TotalPrice: 4_000_000, Collected: 4_000_000, Due: 0},
		},
	}

	svc := report.NewService(repo)

	summary, err := svc.CustomerSummary(context.Background(), uuid.New())
	require.NoError(t, err)

	assert.Equal(t, "Rahim Uddin", summary.CustomerName)
	assert.Equal(t, int64(9_650_000), summary.TotalPrice)
	assert.Equal(t, int64(5_000_000), summary.TotalCollected)
	assert.Equal(t, int64(4_650_000), summary.TotalDue)
}
