package vendor

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("vendor not found")

// Vendor is a supplier billed through expenses.
type Vendor struct {
	ID             uuid.UUID
	VendorName     string
	PhoneNumber    string
	EnterpriseName string
	Details        string
	CreatedAt      time.Time
	UpdatedAt      *time.Time
	DeletedAt      *time.Time
}
