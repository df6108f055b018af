package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/rhasan/estatedesk/internal/ledger"
	"github.com/rhasan/estatedesk/internal/project"
	"github.com/rhasan/estatedesk/internal/sale"
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

const selectSaleColumns = `
	id, project_id, flat_id, customer_id, base_price, parking_charge, utility_charge,
	total_price, downpayment, monthly_installment, sale_date, note, deed_link,
	created_at, updated_at, deleted_at
`

func scanSale(s scanner) (*sale.Sale, error) {
	var sl sale.Sale

	if err := s.Scan(
		&sl.ID, &sl.ProjectID, &sl.FlatID, &sl.CustomerID, &sl.BasePrice, &sl.ParkingCharge,
		&sl.UtilityCharge, &sl.TotalPrice, &sl.Downpayment, &sl.MonthlyInstallment,
		&sl.SaleDate, &sl.Note, &sl.DeedLink, &sl.CreatedAt, &sl.UpdatedAt, &sl.DeletedAt,
	); err != nil {
		return nil, err
	}

	return &sl, nil
}

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// lockFlatForSale locks the flat row and verifies it can be sold.
func lockFlatForSale(ctx context.Context, q querier, flatID uuid.UUID) error {
	var status string

	err := q.QueryRowContext(ctx,
		`SELECT status FROM flats WHERE id = $1 FOR UPDATE`, flatID,
	).Scan(&status)
	if err != nil {
		if err == sql.ErrNoRows {
			return project.ErrFlatNotFound
		}

		return fmt.Errorf("locking flat: %w", err)
	}

	if project.FlatStatus(status) != project.FlatAvailable {
		return sale.ErrFlatUnavailable
	}

	return nil
}

func insertExtraCosts(ctx context.Context, q querier, saleID uuid.UUID, extras []sale.ExtraCost) error {
	query := `
		INSERT INTO sale_extra_costs (sale_id, position, purpose, amount)
		VALUES ($1, $2, $3, $4)
	`

	for i, e := range extras {
		if _, err := q.ExecContext(ctx, query, saleID, i, e.Purpose, e.Amount); err != nil {
			return fmt.Errorf("inserting extra cost %d: %w", i, err)
		}
	}

	return nil
}

func loadExtraCosts(ctx context.Context, q querier, saleID uuid.UUID) ([]sale.ExtraCost, error) {
	rows, err := q.QueryContext(ctx,
		`SELECT purpose, amount FROM sale_extra_costs WHERE sale_id = $1 ORDER BY position ASC`, saleID)
	if err != nil {
		return nil, fmt.Errorf("loading extra costs: %w", err)
	}
	defer rows.Close()

	var extras []sale.ExtraCost

	for rows.Next() {
		var e sale.ExtraCost
		if err := rows.Scan(&e.Purpose, &e.Amount); err != nil {
			return nil, fmt.Errorf("scanning extra cost: %w", err)
		}

		extras = append(extras, e)
	}

	return extras, rows.Err()
}

// CreateSale inserts the sale, flips the flat to Sold and seeds the booking
// inflow in a single database transaction. The flat row is locked first so a
// concurrent sale of the same flat blocks and then fails the Available check.
func (s *Store) CreateSale(ctx context.Context, sl *sale.Sale, booking *ledger.Inflow) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning sale tx: %w", err)
	}
	defer tx.Rollback()

	if err := lockFlatForSale(ctx, tx, sl.FlatID); err != nil {
		return err
	}

	query := `
		INSERT INTO sales
			(project_id, flat_id, customer_id, base_price, parking_charge, utility_charge,
			 total_price, downpayment, monthly_installment, sale_date, note, deed_link)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at
	`

	err = tx.QueryRowContext(ctx, query,
		sl.ProjectID,
		sl.FlatID,
		sl.CustomerID,
		sl.BasePrice,
		sl.ParkingCharge,
		sl.UtilityCharge,
		sl.TotalPrice,
		sl.Downpayment,
		sl.MonthlyInstallment,
		sl.SaleDate,
		sl.Note,
		sl.DeedLink,
	).Scan(&sl.ID, &sl.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating sale: %w", err)
	}

	if err := insertExtraCosts(ctx, tx, sl.ID, sl.ExtraCosts); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE flats SET status = $1, updated_at = NOW() WHERE id = $2`,
		project.FlatSold, sl.FlatID,
	); err != nil {
		return fmt.Errorf("marking flat sold: %w", err)
	}

	if booking != nil {
		inflowQuery := `
			INSERT INTO inflow_transactions
				(project_id, flat_id, customer_id, amount, tx_date, payment_type, payment_method, receipt_no, reference)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING id, created_at
		`

		err = tx.QueryRowContext(ctx, inflowQuery,
			booking.ProjectID,
			booking.FlatID,
			booking.CustomerID,
			booking.Amount,
			booking.Date,
			booking.PaymentType,
			booking.PaymentMethod,
			booking.ReceiptNo,
			booking.Reference,
		).Scan(&booking.ID, &booking.CreatedAt)
		if err != nil {
			return fmt.Errorf("seeding booking inflow: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing sale: %w", err)
	}

	return nil
}

func (s *Store) GetSale(ctx context.Context, id uuid.UUID) (*sale.Sale, error) {
	query := `SELECT ` + selectSaleColumns + ` FROM sales WHERE id = $1 AND deleted_at IS NULL`

	sl, err := scanSale(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, sale.ErrNotFound
		}

		return nil, fmt.Errorf("getting sale: %w", err)
	}

	if sl.ExtraCosts, err = loadExtraCosts(ctx, s.db, sl.ID); err != nil {
		return nil, err
	}

	return sl, nil
}

func (s *Store) ListSales(ctx context.Context, filter sale.ListFilter) ([]*sale.Sale, error) {
	query := `SELECT ` + selectSaleColumns + ` FROM sales WHERE deleted_at IS NULL`

	var args []any

	argIdx := 1

	if filter.ProjectID != nil {
		query += fmt.Sprintf(" AND project_id = $%d", argIdx)

		args = append(args, *filter.ProjectID)
		argIdx++
	}

	if filter.CustomerID != nil {
		query += fmt.Sprintf(" AND customer_id = $%d", argIdx)

		args = append(args, *filter.CustomerID)
		argIdx++
	}

	query += " ORDER BY sale_date ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing sales: %w", err)
	}
	defer rows.Close()

	var sales []*sale.Sale

	for rows.Next() {
		sl, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning sale: %w", err)
		}

		sales = append(sales, sl)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sales: %w", err)
	}

	for _, sl := range sales {
		if sl.ExtraCosts, err = loadExtraCosts(ctx, s.db, sl.ID); err != nil {
			return nil, err
		}
	}

	return sales, nil
}

// UpdateSale rewrites the sale and its extra-cost lines. When the flat was
// reassigned, the old flat is released and the new one claimed inside the
// same transaction, so a failure can never leave a ghost-sold flat behind.
func (s *Store) UpdateSale(ctx context.Context, sl *sale.Sale, previousFlatID uuid.UUID) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning sale tx: %w", err)
	}
	defer tx.Rollback()

	if sl.FlatID != previousFlatID {
		if err := lockFlatForSale(ctx, tx, sl.FlatID); err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx,
			`UPDATE flats SET status = $1, updated_at = NOW() WHERE id = $2`,
			project.FlatAvailable, previousFlatID,
		); err != nil {
			return fmt.Errorf("releasing previous flat: %w", err)
		}

		if _, err := tx.ExecContext(ctx,
			`UPDATE flats SET status = $1, updated_at = NOW() WHERE id = $2`,
			project.FlatSold, sl.FlatID,
		); err != nil {
			return fmt.Errorf("claiming new flat: %w", err)
		}
	}

	query := `
		UPDATE sales
		SET project_id = $1, flat_id = $2, customer_id = $3, base_price = $4,
		    parking_charge = $5, utility_charge = $6, total_price = $7, downpayment = $8,
		    monthly_installment = $9, sale_date = $10, note = $11, deed_link = $12,
		    updated_at = NOW()
		WHERE id = $13 AND deleted_at IS NULL
	`

	res, err := tx.ExecContext(ctx, query,
		sl.ProjectID,
		sl.FlatID,
		sl.CustomerID,
		sl.BasePrice,
		sl.ParkingCharge,
		sl.UtilityCharge,
		sl.TotalPrice,
		sl.Downpayment,
		sl.MonthlyInstallment,
		sl.SaleDate,
		sl.Note,
		sl.DeedLink,
		sl.ID,
	)
	if err != nil {
		return fmt.Errorf("updating sale: %w", err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return sale.ErrNotFound
	}

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM sale_extra_costs WHERE sale_id = $1`, sl.ID,
	); err != nil {
		return fmt.Errorf("clearing extra costs: %w", err)
	}

	if err := insertExtraCosts(ctx, tx, sl.ID, sl.ExtraCosts); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing sale update: %w", err)
	}

	return nil
}

// DeleteSale soft-deletes the sale and puts its flat back on the market in
// one transaction.
func (s *Store) DeleteSale(ctx context.Context, id uuid.UUID) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning sale tx: %w", err)
	}
	defer tx.Rollback()

	var flatID uuid.UUID

	err = tx.QueryRowContext(ctx,
		`SELECT flat_id FROM sales WHERE id = $1 AND deleted_at IS NULL FOR UPDATE`, id,
	).Scan(&flatID)
	if err != nil {
		if err == sql.ErrNoRows {
			return sale.ErrNotFound
		}

		return fmt.Errorf("locking sale: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE sales SET deleted_at = NOW() WHERE id = $1`, id,
	); err != nil {
		return fmt.Errorf("deleting sale: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE flats SET status = $1, updated_at = NOW() WHERE id = $2`,
		project.FlatAvailable, flatID,
	); err != nil {
		return fmt.Errorf("releasing flat: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing sale delete: %w", err)
	}

	return nil
}
