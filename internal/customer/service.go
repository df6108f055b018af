package customer

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

type Repository interface {
	CreateCustomer(ctx context.Context, c *Customer) error
	GetCustomer(ctx context.Context, id uuid.UUID) (*Customer, error)
	ListCustomers(ctx context.Context) ([]*Customer, error)
	UpdateCustomer(ctx context.Context, c *Customer) error
	DeleteCustomer(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	FullName  string
	Mobile    string
	Address   string
	NIDNumber string
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Customer, error) {
	if params.FullName == "" {
		return nil, fmt.Errorf("customer name is required")
	}

	c := &Customer{
		FullName:  params.FullName,
		Mobile:    params.Mobile,
		Address:   params.Address,
		NIDNumber: params.NIDNumber,
	}
	if err := s.repo.CreateCustomer(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Customer, error) {
	return s.repo.GetCustomer(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Customer, error) {
	return s.repo.ListCustomers(ctx)
}

func (s *Service) Update(ctx context.Context, c *Customer) error {
	if c.FullName == "" {
		return fmt.Errorf("customer name is required")
	}

	return s.repo.UpdateCustomer(ctx, c)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteCustomer(ctx, id)
}
