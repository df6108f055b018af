package sale

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound = errors.New("sale not found")
	// ErrValidation wraps rejections of caller input so handlers can map
	// them to a client error instead of a server one.
	ErrValidation = errors.New("invalid sale input")
	// ErrFlatUnavailable is returned when the flat is not Available at
	// commit time. The check runs under the same row lock as the sale
	// insert, so two concurrent sales of one flat cannot both succeed.
	ErrFlatUnavailable = errors.New("flat is not available for sale")
)

// ExtraCost is an itemized charge added on top of the base price. Order is
// preserved as entered on the agreement.
type ExtraCost struct {
	Purpose string
	Amount  int64
}

// Sale records a flat purchase. TotalPrice is always derived; it is never
// accepted from a caller.
type Sale struct {
	ID                 uuid.UUID
	ProjectID          uuid.UUID
	FlatID             uuid.UUID
	CustomerID         uuid.UUID
	BasePrice          int64
	ParkingCharge      int64
	UtilityCharge      int64
	ExtraCosts         []ExtraCost
	TotalPrice         int64
	Downpayment        int64
	MonthlyInstallment int64
	SaleDate           time.Time
	Note               string
	DeedLink           string
	CreatedAt          time.Time
	UpdatedAt          *time.Time
	DeletedAt          *time.Time
}

// Total derives the agreement price: base + parking + utility + extras.
func Total(basePrice, parkingCharge, utilityCharge int64, extras []ExtraCost) int64 {
	total := basePrice + parkingCharge + utilityCharge
	for _, e := range extras {
		total += e.Amount
	}

	return total
}
