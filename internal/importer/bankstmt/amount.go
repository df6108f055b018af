package bankstmt

import (
	"strings"

	"github.com/shopspring/decimal"
)

// parseTaka parses a statement amount into whole Taka. Bangladeshi bank
// exports use lakh/crore comma grouping and sometimes trailing paisa:
// "1,00,000" -> 100000, "12,50,000.00" -> 1250000.
func parseTaka(s string) (int64, error) {
	clean := strings.ReplaceAll(s, ",", "")
	clean = strings.TrimSpace(clean)

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return 0, err
	}

	return d.Round(0).IntPart(), nil
}
