package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/rhasan/estatedesk/internal/project"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

const selectProjectColumns = `
	id, project_name, location, total_flats, developer_share, landowner_share,
	start_date, status, estimated_budget, target_sell, created_at, updated_at, deleted_at
`

func scanProject(s scanner) (*project.Project, error) {
	var p project.Project

	var statusStr string

	if err := s.Scan(
		&p.ID, &p.ProjectName, &p.Location, &p.TotalFlats, &p.DeveloperShare, &p.LandownerShare,
		&p.StartDate, &statusStr, &p.EstimatedBudget, &p.TargetSell,
		&p.CreatedAt, &p.UpdatedAt, &p.DeletedAt,
	); err != nil {
		return nil, err
	}

	p.Status = project.Status(statusStr)

	return &p, nil
}

func (s *Store) CreateProject(ctx context.Context, p *project.Project) error {
	query := `
		INSERT INTO projects
			(project_name, location, total_flats, developer_share, landowner_share,
			 start_date, status, estimated_budget, target_sell)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		p.ProjectName,
		p.Location,
		p.TotalFlats,
		p.DeveloperShare,
		p.LandownerShare,
		p.StartDate,
		p.Status,
		p.EstimatedBudget,
		p.TargetSell,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating project: %w", err)
	}

	return nil
}

func (s *Store) GetProject(ctx context.Context, id uuid.UUID) (*project.Project, error) {
	query := `SELECT ` + selectProjectColumns + ` FROM projects WHERE id = $1 AND deleted_at IS NULL`

	p, err := scanProject(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, project.ErrNotFound
		}

		return nil, fmt.Errorf("getting project: %w", err)
	}

	return p, nil
}

func (s *Store) ListProjects(ctx context.Context) ([]*project.Project, error) {
	query := `SELECT ` + selectProjectColumns + ` FROM projects WHERE deleted_at IS NULL ORDER BY created_at ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	defer rows.Close()

	var ps []*project.Project

	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning project: %w", err)
		}

		ps = append(ps, p)
	}

	return ps, rows.Err()
}

func (s *Store) UpdateProject(ctx context.Context, p *project.Project) error {
	query := `
		UPDATE projects
		SET project_name = $1, location = $2, total_flats = $3, developer_share = $4,
		    landowner_share = $5, start_date = $6, status = $7, estimated_budget = $8,
		    target_sell = $9, updated_at = NOW()
		WHERE id = $10 AND deleted_at IS NULL
	`

	res, err := s.db.ExecContext(ctx, query,
		p.ProjectName,
		p.Location,
		p.TotalFlats,
		p.DeveloperShare,
		p.LandownerShare,
		p.StartDate,
		p.Status,
		p.EstimatedBudget,
		p.TargetSell,
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating project: %w", err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return project.ErrNotFound
	}

	return nil
}

func (s *Store) DeleteProject(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE projects SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return project.ErrNotFound
	}

	return nil
}

const selectFlatColumns = `
	id, project_id, flat_number, flat_size, ownership, status, created_at, updated_at
`

func scanFlat(s scanner) (*project.Flat, error) {
	var f project.Flat

	var ownershipStr, statusStr string

	if err := s.Scan(
		&f.ID, &f.ProjectID, &f.FlatNumber, &f.FlatSize, &ownershipStr, &statusStr,
		&f.CreatedAt, &f.UpdatedAt,
	); err != nil {
		return nil, err
	}

	f.Ownership = project.Ownership(ownershipStr)
	f.Status = project.FlatStatus(statusStr)

	return &f, nil
}

func (s *Store) CreateFlat(ctx context.Context, f *project.Flat) error {
	query := `
		INSERT INTO flats (project_id, flat_number, flat_size, ownership, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		f.ProjectID,
		f.FlatNumber,
		f.FlatSize,
		f.Ownership,
		f.Status,
	).Scan(&f.ID, &f.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating flat: %w", err)
	}

	return nil
}

func (s *Store) GetFlat(ctx context.Context, id uuid.UUID) (*project.Flat, error) {
	query := `SELECT ` + selectFlatColumns + ` FROM flats WHERE id = $1`

	f, err := scanFlat(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, project.ErrFlatNotFound
		}

		return nil, fmt.Errorf("getting flat: %w", err)
	}

	return f, nil
}

func (s *Store) ListFlats(ctx context.Context, projectID uuid.UUID) ([]*project.Flat, error) {
	query := `SELECT ` + selectFlatColumns + ` FROM flats WHERE project_id = $1 ORDER BY flat_number ASC`

	rows, err := s.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing flats: %w", err)
	}
	defer rows.Close()

	var fs []*project.Flat

	for rows.Next() {
		f, err := scanFlat(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning flat: %w", err)
		}

		fs = append(fs, f)
	}

	return fs, rows.Err()
}

func (s *Store) UpdateFlat(ctx context.Context, f *project.Flat) error {
	query := `
		UPDATE flats
		SET flat_number = $1, flat_size = $2, ownership = $3, updated_at = NOW()
		WHERE id = $4
	`

	res, err := s.db.ExecContext(ctx, query, f.FlatNumber, f.FlatSize, f.Ownership, f.ID)
	if err != nil {
		return fmt.Errorf("updating flat: %w", err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return project.ErrFlatNotFound
	}

	return nil
}

// SwapFlatStatus is a compare-and-swap on the status column, so two
// concurrent transitions on the same flat cannot both win.
func (s *Store) SwapFlatStatus(ctx context.Context, id uuid.UUID, from, to project.FlatStatus) error {
	query := `
		UPDATE flats
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = $3
	`

	res, err := s.db.ExecContext(ctx, query, to, id, from)
	if err != nil {
		return fmt.Errorf("swapping flat status: %w", err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		if _, err := s.GetFlat(ctx, id); err != nil {
			return err
		}

		return project.ErrFlatConflict
	}

	return nil
}
