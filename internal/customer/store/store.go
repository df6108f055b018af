package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/rhasan/estatedesk/internal/customer"
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

const selectCustomerColumns = `
	id, full_name, mobile, address, nid_number, created_at, updated_at, deleted_at
`

func scanCustomer(s scanner) (*customer.Customer, error) {
	var c customer.Customer

	if err := s.Scan(
		&c.ID, &c.FullName, &c.Mobile, &c.Address, &c.NIDNumber,
		&c.CreatedAt, &c.UpdatedAt, &c.DeletedAt,
	); err != nil {
		return nil, err
	}

	return &c, nil
}

func (s *Store) CreateCustomer(ctx context.Context, c *customer.Customer) error {
	query := `
		INSERT INTO customers (full_name, mobile, address, nid_number)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		c.FullName, c.Mobile, c.Address, c.NIDNumber,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating customer: %w", err)
	}

	return nil
}

func (s *Store) GetCustomer(ctx context.Context, id uuid.UUID) (*customer.Customer, error) {
	query := `SELECT ` + selectCustomerColumns + ` FROM customers WHERE id = $1 AND deleted_at IS NULL`

	c, err := scanCustomer(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, customer.ErrNotFound
		}

		return nil, fmt.Errorf("getting customer: %w", err)
	}

	return c, nil
}

func (s *Store) ListCustomers(ctx context.Context) ([]*customer.Customer, error) {
	query := `SELECT ` + selectCustomerColumns + ` FROM customers WHERE deleted_at IS NULL ORDER BY full_name ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing customers: %w", err)
	}
	defer rows.Close()

	var cs []*customer.Customer

	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning customer: %w", err)
		}

		cs = append(cs, c)
	}

	return cs, rows.Err()
}

func (s *Store) UpdateCustomer(ctx context.Context, c *customer.Customer) error {
	query := `
		UPDATE customers
		SET full_name = $1, mobile = $2, address = $3, nid_number = $4, updated_at = NOW()
		WHERE id = $5 AND deleted_at IS NULL
	`

	res, err := s.db.ExecContext(ctx, query, c.FullName, c.Mobile, c.Address, c.NIDNumber, c.ID)
	if err != nil {
		return fmt.Errorf("updating customer: %w", err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return customer.ErrNotFound
	}

	return nil
}

func (s *Store) DeleteCustomer(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE customers SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return fmt.Errorf("deleting customer: %w", err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return customer.ErrNotFound
	}

	return nil
}
