package bankstmt

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_CollectionRegister(t *testing.T) {
	input := strings.Join([]string{
		"Dhanmondi Branch Collection Statement",
		"",
		`Date,Receipt No,Amount,Reference`,
		`10/03/2024,RCP-1021,"1,00,000",Booking Lake View A-3`,
		`15/03/2024,RCP-1022,"50,000.00",Installment Lake View A-3`,
		`,,Total: 1,50,000,`,
	}, "\n")

	rows, err := NewParser().Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), rows[0].Date)
	assert.Equal(t, "RCP-1021", rows[0].ReceiptNo)
	assert.Equal(t, int64(100_000), rows[0].Amount)
	assert.Equal(t, "Booking Lake View A-3", rows[0].Reference)

	assert.Equal(t, int64(50_000), rows[1].Amount)
	assert.Equal(t, "RCP-1022", rows[1].ReceiptNo)
}

func TestParse_TransactionListingDepositsOnly(t *testing.T) {
	input := strings.Join([]string{
		`Txn Date,Particulars,Withdrawal,Deposit,Balance`,
		`05-Jan-2024,CASH DEP RCP 1001,,"2,00,000","2,00,000"`,
		`07-Jan-2024,CHQ 445 VENDOR PAYMENT,"80,000",,"1,20,000"`,
		`09-Jan-2024,ONLINE TRANSFER IN,,"25,000","1,45,000"`,
	}, "\n")

	rows, err := NewParser().Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, int64(200_000), rows[0].Amount)
	assert.Equal(t, "CASH DEP RCP 1001", rows[0].Reference)
	assert.Empty(t, rows[0].ReceiptNo)

	assert.Equal(t, int64(25_000), rows[1].Amount)
}

func TestParse_UnknownLayout(t *testing.T) {
	input := "Foo,Bar\n1,2\n"

	_, err := NewParser().Parse(strings.NewReader(input))
	assert.Error(t, err)
}

func TestParseTaka(t *testing.T) {
	cases := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"1,00,000", 100_000, false},
		{"12,50,000.00", 1_250_000, false},
		{"500", 500, false},
		{" 2,500 ", 2_500, false},
		{"n/a", 0, true},
	}

	for _, tc := range cases {
		got, err := parseTaka(tc.in)
		if tc.wantErr {
			assert.Error(t, err, tc.in)
			continue
		}

		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}
