package project

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=project
type Repository interface {
	CreateProject(ctx context.Context, p *Project) error
	GetProject(ctx context.Context, id uuid.UUID) (*Project, error)
	ListProjects(ctx context.Context) ([]*Project, error)
	UpdateProject(ctx context.Context, p *Project) error
	DeleteProject(ctx context.Context, id uuid.UUID) error

	CreateFlat(ctx context.Context, f *Flat) error
	GetFlat(ctx context.Context, id uuid.UUID) (*Flat, error)
	ListFlats(ctx context.Context, projectID uuid.UUID) ([]*Flat, error)
	UpdateFlat(ctx context.Context, f *Flat) error
	// SwapFlatStatus changes a flat's status only if it currently holds the
	// expected one. Returns ErrFlatConflict when a concurrent writer got
	// there first.
	SwapFlatStatus(ctx context.Context, id uuid.UUID, from, to FlatStatus) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	ProjectName     string
	Location        string
	TotalFlats      int
	DeveloperShare  int
	LandownerShare  int
	StartDate       time.Time
	Status          Status
	EstimatedBudget int64
	TargetSell      int64
}

func (p CreateParams) validate() error {
	if p.ProjectName == "" {
		return fmt.Errorf("project name is required: %w", ErrValidation)
	}

	if p.TotalFlats <= 0 {
		return fmt.Errorf("total flats must be positive, got %d: %w", p.TotalFlats, ErrValidation)
	}

	if p.DeveloperShare+p.LandownerShare != 100 {
		return fmt.Errorf("developer and landowner shares must sum to 100, got %d+%d: %w",
			p.DeveloperShare, p.LandownerShare, ErrValidation)
	}

	if p.Status != "" && !p.Status.Valid() {
		return fmt.Errorf("unknown project status %q: %w", p.Status, ErrValidation)
	}

	return nil
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Project, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	if params.Status == "" {
		params.Status = StatusPlanning
	}

	if params.StartDate.IsZero() {
		params.StartDate = time.Now()
	}

	p := &Project{
		ProjectName:     params.ProjectName,
		Location:        params.Location,
		TotalFlats:      params.TotalFlats,
		DeveloperShare:  params.DeveloperShare,
		LandownerShare:  params.LandownerShare,
		StartDate:       params.StartDate,
		Status:          params.Status,
		EstimatedBudget: params.EstimatedBudget,
		TargetSell:      params.TargetSell,
	}
	if err := s.repo.CreateProject(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Project, error) {
	return s.repo.GetProject(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Project, error) {
	return s.repo.ListProjects(ctx)
}

func (s *Service) Update(ctx context.Context, p *Project) error {
	params := CreateParams{
		ProjectName:    p.ProjectName,
		TotalFlats:     p.TotalFlats,
		DeveloperShare: p.DeveloperShare,
		LandownerShare: p.LandownerShare,
		Status:         p.Status,
	}
	if err := params.validate(); err != nil {
		return err
	}

	return s.repo.UpdateProject(ctx, p)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteProject(ctx, id)
}

type FlatParams struct {
	ProjectID  uuid.UUID
	FlatNumber string
	FlatSize   int
	Ownership  Ownership
}

func (s *Service) AddFlat(ctx context.Context, params FlatParams) (*Flat, error) {
	if params.ProjectID == uuid.Nil {
		return nil, fmt.Errorf("flat requires a project: %w", ErrValidation)
	}

	if params.FlatNumber == "" {
		return nil, fmt.Errorf("flat number is required: %w", ErrValidation)
	}

	if params.Ownership == "" {
		params.Ownership = OwnershipDeveloper
	}

	if !params.Ownership.Valid() {
		return nil, fmt.Errorf("unknown ownership %q: %w", params.Ownership, ErrValidation)
	}

	f := &Flat{
		ProjectID:  params.ProjectID,
		FlatNumber: params.FlatNumber,
		FlatSize:   params.FlatSize,
		Ownership:  params.Ownership,
		Status:     FlatAvailable,
	}
	if err := s.repo.CreateFlat(ctx, f); err != nil {
		return nil, err
	}

	return f, nil
}

func (s *Service) GetFlat(ctx context.Context, id uuid.UUID) (*Flat, error) {
	return s.repo.GetFlat(ctx, id)
}

func (s *Service) ListFlats(ctx context.Context, projectID uuid.UUID) ([]*Flat, error) {
	return s.repo.ListFlats(ctx, projectID)
}

func (s *Service) UpdateFlat(ctx context.Context, f *Flat) error {
	if f.FlatNumber == "" {
		return fmt.Errorf("flat number is required: %w", ErrValidation)
	}

	if !f.Ownership.Valid() {
		return fmt.Errorf("unknown ownership %q: %w", f.Ownership, ErrValidation)
	}

	return s.repo.UpdateFlat(ctx, f)
}

// ReserveFlat holds an available flat for a prospective buyer.
func (s *Service) ReserveFlat(ctx context.Context, id uuid.UUID) error {
	return s.repo.SwapFlatStatus(ctx, id, FlatAvailable, FlatReserved)
}

// ReleaseFlat drops a reservation. Sold flats are released only by the sale
// lifecycle, never here.
func (s *Service) ReleaseFlat(ctx context.Context, id uuid.UUID) error {
	return s.repo.SwapFlatStatus(ctx, id, FlatReserved, FlatAvailable)
}
