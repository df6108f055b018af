package view

import (
	"context"
	"strconv"
	"time"
)

const dbTimeout = 5 * time.Second

// FormatTaka renders a whole-Taka amount with Bengali digit grouping: the
// last three digits form one group, every pair after that gets its own comma
// (56,50,000 rather than 5,650,000).
func FormatTaka(amount int64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	s := strconv.FormatInt(amount, 10)
	if len(s) > 3 {
		head, tail := s[:len(s)-3], s[len(s)-3:]
		for len(head) > 2 {
			tail = head[len(head)-2:] + "," + tail
			head = head[:len(head)-2]
		}

		s = head + "," + tail
	}

	if neg {
		return "-" + s
	}

	return s
}

// FormatDate formats a time.Time into YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(time.DateOnly)
}

// DbCtx returns a context with a standard timeout for database operations.
func DbCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), dbTimeout)
}
