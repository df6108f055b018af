package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=ledger
type Repository interface {
	CreateInflow(ctx context.Context, in *Inflow) error
	GetInflow(ctx context.Context, id uuid.UUID) (*Inflow, error)
	ListInflows(ctx context.Context, filter InflowFilter) ([]*Inflow, error)
	DeleteInflow(ctx context.Context, id uuid.UUID) error

	CreateOutflow(ctx context.Context, out *Outflow) error
	GetOutflow(ctx context.Context, id uuid.UUID) (*Outflow, error)
	ListOutflows(ctx context.Context, filter OutflowFilter) ([]*Outflow, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type InflowParams struct {
	ProjectID     uuid.UUID
	FlatID        uuid.UUID
	CustomerID    uuid.UUID
	Amount        int64
	Date          time.Time
	PaymentType   PaymentType
	PaymentMethod string
	ReceiptNo     string
	Reference     string
}

type InflowFilter struct {
	ProjectID  *uuid.UUID
	CustomerID *uuid.UUID
	FlatID     *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
}

type OutflowParams struct {
	ProjectID     *uuid.UUID
	Amount        int64
	Date          time.Time
	Category      string
	Vendor        string
	PaymentMethod string
	Reference     string
}

type OutflowFilter struct {
	ProjectID *uuid.UUID
	Category  *string
	StartDate *time.Time
	EndDate   *time.Time
}

// RecordInflow registers a customer payment. Booking inflows are normally
// seeded by the sale lifecycle; everything recorded here defaults to an
// installment collection.
func (s *Service) RecordInflow(ctx context.Context, params InflowParams) (*Inflow, error) {
	if params.Amount <= 0 {
		return nil, fmt.Errorf("inflow amount must be positive, got %d: %w", params.Amount, ErrValidation)
	}

	if params.ProjectID == uuid.Nil || params.FlatID == uuid.Nil || params.CustomerID == uuid.Nil {
		return nil, fmt.Errorf("inflow requires project, flat and customer: %w", ErrValidation)
	}

	if params.PaymentType == "" {
		params.PaymentType = PaymentTypeInstallment
	}

	if params.Date.IsZero() {
		params.Date = time.Now()
	}

	in := &Inflow{
		ProjectID:     params.ProjectID,
		FlatID:        params.FlatID,
		CustomerID:    params.CustomerID,
		Amount:        params.Amount,
		Date:          params.Date,
		PaymentType:   params.PaymentType,
		PaymentMethod: params.PaymentMethod,
		ReceiptNo:     params.ReceiptNo,
		Reference:     params.Reference,
	}
	if err := s.repo.CreateInflow(ctx, in); err != nil {
		return nil, err
	}

	return in, nil
}

func (s *Service) GetInflow(ctx context.Context, id uuid.UUID) (*Inflow, error) {
	return s.repo.GetInflow(ctx, id)
}

func (s *Service) ListInflows(ctx context.Context, filter InflowFilter) ([]*Inflow, error) {
	return s.repo.ListInflows(ctx, filter)
}

func (s *Service) DeleteInflow(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteInflow(ctx, id)
}

// RecordOutflow registers a standalone outflow (office or site cost with no
// expense behind it). Payments against an expense go through the expense
// reconciler instead.
func (s *Service) RecordOutflow(ctx context.Context, params OutflowParams) (*Outflow, error) {
	if params.Amount <= 0 {
		return nil, fmt.Errorf("outflow amount must be positive, got %d: %w", params.Amount, ErrValidation)
	}

	if params.Date.IsZero() {
		params.Date = time.Now()
	}

	out := &Outflow{
		ProjectID:      params.ProjectID,
		Amount:         params.Amount,
		Date:           params.Date,
		Category:       params.Category,
		SupplierVendor: params.Vendor,
		PaymentMethod:  params.PaymentMethod,
		Reference:      params.Reference,
	}
	if err := s.repo.CreateOutflow(ctx, out); err != nil {
		return nil, err
	}

	return out, nil
}

func (s *Service) GetOutflow(ctx context.Context, id uuid.UUID) (*Outflow, error) {
	return s.repo.GetOutflow(ctx, id)
}

func (s *Service) ListOutflows(ctx context.Context, filter OutflowFilter) ([]*Outflow, error) {
	return s.repo.ListOutflows(ctx, filter)
}
