package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/rhasan/estatedesk/internal/opcost"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

const selectColumns = `
	c.id, c.cost_date, c.item_id, c.amount, c.description, c.reference, c.created_at, i.name
`

const joins = `
	FROM operating_costs c
	JOIN operating_cost_items i ON i.id = c.item_id
`

type scanner interface {
	Scan(dest ...any) error
}

func scan(s scanner) (*opcost.OperatingCost, error) {
	var c opcost.OperatingCost

	if err := s.Scan(
		&c.ID, &c.CostDate, &c.ItemID, &c.Amount, &c.Description,
		&c.Reference, &c.CreatedAt, &c.ItemName,
	); err != nil {
		return nil, err
	}

	return &c, nil
}

func (s *Store) Create(ctx context.Context, c *opcost.OperatingCost) error {
	query := `
		INSERT INTO operating_costs (cost_date, item_id, amount, description, reference)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		c.CostDate, c.ItemID, c.Amount, c.Description, c.Reference,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating operating cost: %w", err)
	}

	return nil
}

func (s *Store) Get(ctx context.Context, id uuid.UUID) (*opcost.OperatingCost, error) {
	query := `SELECT ` + selectColumns + joins + ` WHERE c.id = $1`

	c, err := scan(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, opcost.ErrNotFound
		}

		return nil, fmt.Errorf("getting operating cost: %w", err)
	}

	return c, nil
}

func (s *Store) List(ctx context.Context, filter opcost.ListFilter) ([]*opcost.OperatingCost, error) {
	query := `SELECT ` + selectColumns + joins + ` WHERE 1=1`

	var args []any

	argIdx := 1

	if filter.ItemID != nil {
		query += fmt.Sprintf(" AND c.item_id = $%d", argIdx)

		args = append(args, *filter.ItemID)
		argIdx++
	}

	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND c.cost_date >= $%d", argIdx)

		args = append(args, *filter.StartDate)
		argIdx++
	}

	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND c.cost_date <= $%d", argIdx)

		args = append(args, *filter.EndDate)
		argIdx++
	}

	query += " ORDER BY c.cost_date DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing operating costs: %w", err)
	}
	defer rows.Close()

	var costs []*opcost.OperatingCost

	for rows.Next() {
		c, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning operating cost: %w", err)
		}

		costs = append(costs, c)
	}

	return costs, rows.Err()
}

func (s *Store) Update(ctx context.Context, c *opcost.OperatingCost) error {
	query := `
		UPDATE operating_costs
		SET cost_date = $1, item_id = $2, amount = $3, description = $4, reference = $5
		WHERE id = $6
	`

	res, err := s.db.ExecContext(ctx, query,
		c.CostDate, c.ItemID, c.Amount, c.Description, c.Reference, c.ID,
	)
	if err != nil {
		return fmt.Errorf("updating operating cost: %w", err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return opcost.ErrNotFound
	}

	return nil
}

func (s *Store) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM operating_costs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting operating cost: %w", err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return opcost.ErrNotFound
	}

	return nil
}

func (s *Store) ListItems(ctx context.Context) ([]*opcost.Item, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM operating_cost_items ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("listing cost items: %w", err)
	}
	defer rows.Close()

	var items []*opcost.Item

	for rows.Next() {
		var it opcost.Item
		if err := rows.Scan(&it.ID, &it.Name); err != nil {
			return nil, fmt.Errorf("scanning cost item: %w", err)
		}

		items = append(items, &it)
	}

	return items, rows.Err()
}

func (s *Store) EnsureItem(ctx context.Context, name string) (*opcost.Item, error) {
	query := `
		INSERT INTO operating_cost_items (name)
		VALUES ($1)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id, name
	`

	var it opcost.Item
	if err := s.db.QueryRowContext(ctx, query, name).Scan(&it.ID, &it.Name); err != nil {
		return nil, fmt.Errorf("ensuring cost item %q: %w", name, err)
	}

	return &it, nil
}
