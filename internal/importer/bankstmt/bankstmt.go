// Package bankstmt parses bank collection statements into pending inflow
// rows. Banks hand these over as CSV in whatever encoding and column layout
// their core banking system produces, so the parser auto-detects both.
package bankstmt

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	enc "github.com/rhasan/estatedesk/internal/encoding"
	"github.com/rhasan/estatedesk/internal/ledger"
)

type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(r io.Reader) ([]ledger.StatementRow, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	profile, colMap, headerIdx := detectProfile(rows)
	if profile == nil {
		return nil, fmt.Errorf("no matching statement format: expected a collection register or bank transaction listing")
	}

	return parseRows(profile, colMap, rows[headerIdx+1:])
}

// colIndex maps header names to their column position.
type colIndex map[string]int

// detectProfile scans for a header row matching a known layout. Statements
// often open with a few bank letterhead lines before the real header.
func detectProfile(rows [][]string) (*Profile, colIndex, int) {
	for rowIdx, row := range rows {
		cols := make(colIndex)

		for i, cell := range row {
			name := strings.TrimSpace(cell)
			if name != "" {
				cols[name] = i
			}
		}

		for i := range profiles {
			if matchesProfile(&profiles[i], cols) {
				return &profiles[i], cols, rowIdx
			}
		}
	}

	return nil, nil, 0
}

func matchesProfile(p *Profile, cols colIndex) bool {
	for _, name := range p.requiredCols() {
		if _, ok := cols[name]; !ok {
			return false
		}
	}

	return true
}

func parseRows(p *Profile, cols colIndex, rows [][]string) ([]ledger.StatementRow, error) {
	dateIdx := cols[p.DateCol]

	var parsed []ledger.StatementRow

	for _, row := range rows {
		date, ok := parseDate(row, dateIdx)
		if !ok {
			// Footer and balance rows carry no date.
			continue
		}

		amount, ok := extractAmount(p, cols, row)
		if !ok {
			continue
		}

		parsed = append(parsed, ledger.StatementRow{
			Date:      date,
			ReceiptNo: cellValue(row, colOrMissing(cols, p.ReceiptCol)),
			Amount:    amount,
			Reference: cellValue(row, colOrMissing(cols, p.ReferenceCol)),
		})
	}

	return parsed, nil
}

func extractAmount(p *Profile, cols colIndex, row []string) (int64, bool) {
	switch p.AmountMode {
	case amountSingle:
		s := cellValue(row, cols[p.AmountCol])
		if s == "" {
			return 0, false
		}

		taka, err := parseTaka(s)
		if err != nil || taka <= 0 {
			return 0, false
		}

		return taka, true
	case amountDeposit:
		// Only the deposit leg of a transaction listing is a collection.
		s := cellValue(row, cols[p.DepositCol])
		if s == "" {
			return 0, false
		}

		taka, err := parseTaka(s)
		if err != nil || taka <= 0 {
			return 0, false
		}

		return taka, true
	}

	return 0, false
}

func colOrMissing(cols colIndex, name string) int {
	if name == "" {
		return -1
	}

	idx, ok := cols[name]
	if !ok {
		return -1
	}

	return idx
}

// cellValue safely gets a trimmed cell value from a row.
func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}
