// Package opcost tracks office operating costs (rent, salaries, utilities).
// These sit outside the project ledgers and never touch reconciliation.
package opcost

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound = errors.New("operating cost not found")
	// ErrValidation wraps rejections of caller input so handlers can map
	// them to a client error instead of a server one.
	ErrValidation = errors.New("invalid operating cost input")
)

// Item is a recurring cost head.
type Item struct {
	ID   uuid.UUID
	Name string
}

type OperatingCost struct {
	ID          uuid.UUID
	CostDate    time.Time
	ItemID      uuid.UUID
	Amount      int64
	Description string
	Reference   string
	CreatedAt   time.Time

	ItemName string
}
