package vendor

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

type Repository interface {
	CreateVendor(ctx context.Context, v *Vendor) error
	GetVendor(ctx context.Context, id uuid.UUID) (*Vendor, error)
	ListVendors(ctx context.Context) ([]*Vendor, error)
	UpdateVendor(ctx context.Context, v *Vendor) error
	DeleteVendor(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	VendorName     string
	PhoneNumber    string
	EnterpriseName string
	Details        string
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Vendor, error) {
	if params.VendorName == "" {
		return nil, fmt.Errorf("vendor name is required")
	}

	v := &Vendor{
		VendorName:     params.VendorName,
		PhoneNumber:    params.PhoneNumber,
		EnterpriseName: params.EnterpriseName,
		Details:        params.Details,
	}
	if err := s.repo.CreateVendor(ctx, v); err != nil {
		return nil, err
	}

	return v, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Vendor, error) {
	return s.repo.GetVendor(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Vendor, error) {
	return s.repo.ListVendors(ctx)
}

func (s *Service) Update(ctx context.Context, v *Vendor) error {
	if v.VendorName == "" {
		return fmt.Errorf("vendor name is required")
	}

	return s.repo.UpdateVendor(ctx, v)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteVendor(ctx, id)
}
