package customer

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("customer not found")

// Customer is a flat buyer. NIDNumber is the national ID used on deeds.
type Customer struct {
	ID        uuid.UUID
	FullName  string
	Mobile    string
	Address   string
	NIDNumber string
	CreatedAt time.Time
	UpdatedAt *time.Time
	DeletedAt *time.Time
}
