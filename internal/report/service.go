package report

import (
	"context"

	"github.com/google/uuid"
)

// Repository runs the aggregate queries. All joins and sums happen in the
// database; a summary is one round trip per subject, not one per row.
type Repository interface {
	CustomerName(ctx context.Context, customerID uuid.UUID) (string, error)
	CustomerSales(ctx context.Context, customerID uuid.UUID) ([]CustomerSaleRow, error)
	ProjectSummary(ctx context.Context, projectID uuid.UUID) (*ProjectSummary, error)
	ProjectSummaries(ctx context.Context) ([]*ProjectSummary, error)

	SalesRegister(ctx context.Context) ([]SaleRow, error)
	CollectionsRegister(ctx context.Context) ([]CollectionRow, error)
	PaymentsRegister(ctx context.Context) ([]PaymentRow, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CustomerSummary assembles the customer statement with grand totals.
func (s *Service) CustomerSummary(ctx context.Context, customerID uuid.UUID) (*CustomerSummary, error) {
	name, err := s.repo.CustomerName(ctx, customerID)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.CustomerSales(ctx, customerID)
	if err != nil {
		return nil, err
	}

	summary := &CustomerSummary{
		CustomerID:   customerID,
		CustomerName: name,
		Rows:         rows,
	}
	for _, row := range rows {
		summary.TotalPrice += row.TotalPrice
		summary.TotalCollected += row.Collected
		summary.TotalDue += row.Due
	}

	return summary, nil
}

func (s *Service) ProjectSummary(ctx context.Context, projectID uuid.UUID) (*ProjectSummary, error) {
	return s.repo.ProjectSummary(ctx, projectID)
}

// Dashboard returns every project's summary for the back-office overview.
func (s *Service) Dashboard(ctx context.Context) ([]*ProjectSummary, error) {
	return s.repo.ProjectSummaries(ctx)
}

func (s *Service) SalesRegister(ctx context.Context) ([]SaleRow, error) {
	return s.repo.SalesRegister(ctx)
}

func (s *Service) CollectionsRegister(ctx context.Context) ([]CollectionRow, error) {
	return s.repo.CollectionsRegister(ctx)
}

func (s *Service) PaymentsRegister(ctx context.Context) ([]PaymentRow, error) {
	return s.repo.PaymentsRegister(ctx)
}
