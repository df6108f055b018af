package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/rhasan/estatedesk/internal/vendors"
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

const selectVendorColumns = `
	id, vendor_name, phone_number, enterprise_name, details, created_at, updated_at, deleted_at
`

func scanVendor(s scanner) (*vendor.Vendor, error) {
	var v vendor.Vendor

	if err := s.Scan(
		&v.ID, &v.VendorName, &v.PhoneNumber, &v.EnterpriseName, &v.Details,
		&v.CreatedAt, &v.UpdatedAt, &v.DeletedAt,
	); err != nil {
		return nil, err
	}

	return &v, nil
}

func (s *Store) CreateVendor(ctx context.Context, v *vendor.Vendor) error {
	query := `
		INSERT INTO vendors (vendor_name, phone_number, enterprise_name, details)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		v.VendorName, v.PhoneNumber, v.EnterpriseName, v.Details,
	).Scan(&v.ID, &v.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating vendor: %w", err)
	}

	return nil
}

func (s *Store) GetVendor(ctx context.Context, id uuid.UUID) (*vendor.Vendor, error) {
	query := `SELECT ` + selectVendorColumns + ` FROM vendors WHERE id = $1 AND deleted_at IS NULL`

	v, err := scanVendor(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, vendor.ErrNotFound
		}

		return nil, fmt.Errorf("getting vendor: %w", err)
	}

	return v, nil
}

func (s *Store) ListVendors(ctx context.Context) ([]*vendor.Vendor, error) {
	query := `SELECT ` + selectVendorColumns + ` FROM vendors WHERE deleted_at IS NULL ORDER BY vendor_name ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing vendors: %w", err)
	}
	defer rows.Close()

	var vs []*vendor.Vendor

	for rows.Next() {
		v, err := scanVendor(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning vendor: %w", err)
		}

		vs = append(vs, v)
	}

	return vs, rows.Err()
}

func (s *Store) UpdateVendor(ctx context.Context, v *vendor.Vendor) error {
	query := `
		UPDATE vendors
		SET vendor_name = $1, phone_number = $2, enterprise_name = $3, details = $4, updated_at = NOW()
		WHERE id = $5 AND deleted_at IS NULL
	`

	res, err := s.db.ExecContext(ctx, query, v.VendorName, v.PhoneNumber, v.EnterpriseName, v.Details, v.ID)
	if err != nil {
		return fmt.Errorf("updating vendor: %w", err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return vendor.ErrNotFound
	}

	return nil
}

func (s *Store) DeleteVendor(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE vendors SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return fmt.Errorf("deleting vendor: %w", err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return vendor.ErrNotFound
	}

	return nil
}
