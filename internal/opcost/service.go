package opcost

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=opcost
type Repository interface {
	Create(ctx context.Context, c *OperatingCost) error
	Get(ctx context.Context, id uuid.UUID) (*OperatingCost, error)
	List(ctx context.Context, filter ListFilter) ([]*OperatingCost, error)
	Update(ctx context.Context, c *OperatingCost) error
	Delete(ctx context.Context, id uuid.UUID) error

	ListItems(ctx context.Context) ([]*Item, error)
	EnsureItem(ctx context.Context, name string) (*Item, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	CostDate    time.Time
	ItemID      uuid.UUID
	Amount      int64
	Description string
	Reference   string
}

type ListFilter struct {
	ItemID    *uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
}

func (p CreateParams) validate() error {
	if p.ItemID == uuid.Nil {
		return fmt.Errorf("operating cost requires an item: %w", ErrValidation)
	}

	if p.Amount <= 0 {
		return fmt.Errorf("amount must be positive, got %d: %w", p.Amount, ErrValidation)
	}

	return nil
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*OperatingCost, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	if params.CostDate.IsZero() {
		params.CostDate = time.Now()
	}

	c := &OperatingCost{
		CostDate:    params.CostDate,
		ItemID:      params.ItemID,
		Amount:      params.Amount,
		Description: params.Description,
		Reference:   params.Reference,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*OperatingCost, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*OperatingCost, error) {
	return s.repo.List(ctx, filter)
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, params CreateParams) (*OperatingCost, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.CostDate = params.CostDate
	existing.ItemID = params.ItemID
	existing.Amount = params.Amount
	existing.Description = params.Description
	existing.Reference = params.Reference

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}

	return existing, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) Items(ctx context.Context) ([]*Item, error) {
	return s.repo.ListItems(ctx)
}

func (s *Service) EnsureItem(ctx context.Context, name string) (*Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("item name is required: %w", ErrValidation)
	}

	return s.repo.EnsureItem(ctx, name)
}
