package project

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound     = errors.New("project not found")
	ErrFlatNotFound = errors.New("flat not found")
	// ErrValidation wraps rejections of caller input so handlers can map
	// them to a client error instead of a server one.
	ErrValidation = errors.New("invalid project input")
	// ErrFlatConflict is returned when a flat status change loses to a
	// concurrent writer or the flat is in a state the change is not allowed
	// from (e.g. releasing a Sold flat outside the sale lifecycle).
	ErrFlatConflict = errors.New("flat status conflict")
)

// Status is the lifecycle state of a project.
type Status string

const (
	StatusPlanning  Status = "Planning"
	StatusOngoing   Status = "Ongoing"
	StatusCompleted Status = "Completed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPlanning, StatusOngoing, StatusCompleted:
		return true
	}

	return false
}

// Ownership says whose share a flat belongs to under the joint venture.
type Ownership string

const (
	OwnershipDeveloper Ownership = "Developer"
	OwnershipLandowner Ownership = "Landowner"
)

func (o Ownership) Valid() bool {
	return o == OwnershipDeveloper || o == OwnershipLandowner
}

// FlatStatus is the sale state of a flat. Sold is entered and left only
// through the sale lifecycle.
type FlatStatus string

const (
	FlatAvailable FlatStatus = "Available"
	FlatSold      FlatStatus = "Sold"
	FlatReserved  FlatStatus = "Reserved"
)

// Project is a development under the developer/landowner share split.
type Project struct {
	ID              uuid.UUID
	ProjectName     string
	Location        string
	TotalFlats      int
	DeveloperShare  int
	LandownerShare  int
	StartDate       time.Time
	Status          Status
	EstimatedBudget int64
	TargetSell      int64
	CreatedAt       time.Time
	UpdatedAt       *time.Time
	DeletedAt       *time.Time
}

// Flat is a unit inside a project.
type Flat struct {
	ID         uuid.UUID
	ProjectID  uuid.UUID
	FlatNumber string
	FlatSize   int
	Ownership  Ownership
	Status     FlatStatus
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}
