package sale

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/rhasan/estatedesk/internal/ledger"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=sale
type Repository interface {
	// CreateSale commits the sale, the flat's Available->Sold transition and
	// the optional booking inflow in one transaction. The flat row is locked
	// and must be Available, otherwise ErrFlatUnavailable and nothing is
	// written.
	CreateSale(ctx context.Context, s *Sale, booking *ledger.Inflow) error
	GetSale(ctx context.Context, id uuid.UUID) (*Sale, error)
	ListSales(ctx context.Context, filter ListFilter) ([]*Sale, error)
	// UpdateSale writes the revised sale. When the flat changed, releasing
	// the old flat and claiming the new one happen in the same transaction
	// as the sale update.
	UpdateSale(ctx context.Context, s *Sale, previousFlatID uuid.UUID) error
	// DeleteSale soft-deletes the sale and releases its flat atomically.
	DeleteSale(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	ProjectID          uuid.UUID
	FlatID             uuid.UUID
	CustomerID         uuid.UUID
	BasePrice          int64
	ParkingCharge      int64
	UtilityCharge      int64
	ExtraCosts         []ExtraCost
	Downpayment        int64
	MonthlyInstallment int64
	SaleDate           time.Time
	Note               string
	DeedLink           string

	// Booking metadata for the seed inflow when Downpayment > 0.
	BookingMethod    string
	BookingReceiptNo string
}

type ListFilter struct {
	ProjectID  *uuid.UUID
	CustomerID *uuid.UUID
}

func (p CreateParams) validate() error {
	if p.ProjectID == uuid.Nil || p.FlatID == uuid.Nil || p.CustomerID == uuid.Nil {
		return fmt.Errorf("sale requires project, flat and customer: %w", ErrValidation)
	}

	if p.BasePrice <= 0 {
		return fmt.Errorf("base price must be positive, got %d: %w", p.BasePrice, ErrValidation)
	}

	if p.ParkingCharge < 0 || p.UtilityCharge < 0 || p.Downpayment < 0 || p.MonthlyInstallment < 0 {
		return fmt.Errorf("charges cannot be negative: %w", ErrValidation)
	}

	for i, e := range p.ExtraCosts {
		if e.Purpose == "" {
			return fmt.Errorf("extra cost %d: purpose is required: %w", i, ErrValidation)
		}

		if e.Amount < 0 {
			return fmt.Errorf("extra cost %q: amount cannot be negative: %w", e.Purpose, ErrValidation)
		}
	}

	if p.DeedLink != "" {
		u, err := url.Parse(p.DeedLink)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
			return fmt.Errorf("deed link must be an http(s) URL: %w", ErrValidation)
		}
	}

	return nil
}

// Create books a flat: it derives the total price, marks the flat Sold and,
// when a downpayment was taken, seeds the Booking inflow — all in one
// repository transaction.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Sale, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	if params.SaleDate.IsZero() {
		params.SaleDate = time.Now()
	}

	sl := &Sale{
		ProjectID:          params.ProjectID,
		FlatID:             params.FlatID,
		CustomerID:         params.CustomerID,
		BasePrice:          params.BasePrice,
		ParkingCharge:      params.ParkingCharge,
		UtilityCharge:      params.UtilityCharge,
		ExtraCosts:         params.ExtraCosts,
		TotalPrice:         Total(params.BasePrice, params.ParkingCharge, params.UtilityCharge, params.ExtraCosts),
		Downpayment:        params.Downpayment,
		MonthlyInstallment: params.MonthlyInstallment,
		SaleDate:           params.SaleDate,
		Note:               params.Note,
		DeedLink:           params.DeedLink,
	}

	var booking *ledger.Inflow
	if params.Downpayment > 0 {
		booking = &ledger.Inflow{
			ProjectID:     params.ProjectID,
			FlatID:        params.FlatID,
			CustomerID:    params.CustomerID,
			Amount:        params.Downpayment,
			Date:          params.SaleDate,
			PaymentType:   ledger.PaymentTypeBooking,
			PaymentMethod: params.BookingMethod,
			ReceiptNo:     params.BookingReceiptNo,
		}
	}

	if err := s.repo.CreateSale(ctx, sl, booking); err != nil {
		return nil, err
	}

	return sl, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Sale, error) {
	return s.repo.GetSale(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Sale, error) {
	return s.repo.ListSales(ctx, filter)
}

// Update revises a sale, re-deriving the total price. A changed flat swaps
// the old flat back to Available and the new one to Sold in the same
// transaction as the sale row. Inflow transactions already recorded for the
// original booking are left untouched; payments are corrected on the ledger,
// not through sale edits.
func (s *Service) Update(ctx context.Context, id uuid.UUID, params CreateParams) (*Sale, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetSale(ctx, id)
	if err != nil {
		return nil, err
	}

	if params.SaleDate.IsZero() {
		params.SaleDate = existing.SaleDate
	}

	updated := &Sale{
		ID:                 existing.ID,
		ProjectID:          params.ProjectID,
		FlatID:             params.FlatID,
		CustomerID:         params.CustomerID,
		BasePrice:          params.BasePrice,
		ParkingCharge:      params.ParkingCharge,
		UtilityCharge:      params.UtilityCharge,
		ExtraCosts:         params.ExtraCosts,
		TotalPrice:         Total(params.BasePrice, params.ParkingCharge, params.UtilityCharge, params.ExtraCosts),
		Downpayment:        params.Downpayment,
		MonthlyInstallment: params.MonthlyInstallment,
		SaleDate:           params.SaleDate,
		Note:               params.Note,
		DeedLink:           params.DeedLink,
		CreatedAt:          existing.CreatedAt,
	}

	if err := s.repo.UpdateSale(ctx, updated, existing.FlatID); err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteSale(ctx, id)
}
