package bankstmt

import "time"

// dateLayouts covers the formats seen across bank exports.
var dateLayouts = []string{
	"02/01/2006",
	"02-01-2006",
	"02-Jan-2006",
	"2006-01-02",
}

// parseDate returns false for empty or unparseable cells so letterhead and
// footer rows are skipped rather than failing the whole import.
func parseDate(row []string, idx int) (time.Time, bool) {
	s := cellValue(row, idx)
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}
