package bankstmt

// amountMode determines how the collection amount is read from a row.
type amountMode int

const (
	// amountSingle means one amount column holding the collected sum.
	amountSingle amountMode = iota
	// amountDeposit means a withdrawal/deposit pair; only deposits count.
	amountDeposit
)

// Profile describes the column layout of a statement format. Supporting a
// new bank is adding a Profile here.
type Profile struct {
	Name         string
	DateCol      string
	AmountMode   amountMode
	AmountCol    string // used when AmountMode == amountSingle
	DepositCol   string // used when AmountMode == amountDeposit
	WithdrawCol  string // used when AmountMode == amountDeposit
	ReceiptCol   string // optional
	ReferenceCol string // optional
}

func (p Profile) requiredCols() []string {
	cols := []string{p.DateCol}

	switch p.AmountMode {
	case amountSingle:
		cols = append(cols, p.AmountCol)
	case amountDeposit:
		cols = append(cols, p.DepositCol, p.WithdrawCol)
	}

	return cols
}

// profiles is tried in order; more specific layouts come first.
var profiles = []Profile{
	{
		Name:         "collection register",
		DateCol:      "Date",
		AmountMode:   amountSingle,
		AmountCol:    "Amount",
		ReceiptCol:   "Receipt No",
		ReferenceCol: "Reference",
	},
	{
		Name:         "transaction listing",
		DateCol:      "Txn Date",
		AmountMode:   amountDeposit,
		DepositCol:   "Deposit",
		WithdrawCol:  "Withdrawal",
		ReferenceCol: "Particulars",
	},
}
