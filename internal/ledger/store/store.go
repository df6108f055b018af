package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/rhasan/estatedesk/internal/ledger"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectInflowColumns = `
	id, project_id, flat_id, customer_id, amount, tx_date,
	payment_type, payment_method, receipt_no, reference, created_at
`

func scanInflow(s scanner) (*ledger.Inflow, error) {
	var in ledger.Inflow

	var typeStr string

	if err := s.Scan(
		&in.ID, &in.ProjectID, &in.FlatID, &in.CustomerID, &in.Amount, &in.Date,
		&typeStr, &in.PaymentMethod, &in.ReceiptNo, &in.Reference, &in.CreatedAt,
	); err != nil {
		return nil, err
	}

	in.PaymentType = ledger.PaymentType(typeStr)

	return &in, nil
}

const selectOutflowColumns = `
	id, project_id, amount, tx_date, expense_category, supplier_vendor,
	expense_no, payment_method, reference, created_at
`

func scanOutflow(s scanner) (*ledger.Outflow, error) {
	var out ledger.Outflow

	var expenseNo sql.NullString

	if err := s.Scan(
		&out.ID, &out.ProjectID, &out.Amount, &out.Date, &out.Category, &out.SupplierVendor,
		&expenseNo, &out.PaymentMethod, &out.Reference, &out.CreatedAt,
	); err != nil {
		return nil, err
	}

	out.ExpenseNo = expenseNo.String

	return &out, nil
}

func (s *Store) CreateInflow(ctx context.Context, in *ledger.Inflow) error {
	query := `
		INSERT INTO inflow_transactions
			(project_id, flat_id, customer_id, amount, tx_date, payment_type, payment_method, receipt_no, reference)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		in.ProjectID,
		in.FlatID,
		in.CustomerID,
		in.Amount,
		in.Date,
		in.PaymentType,
		in.PaymentMethod,
		in.ReceiptNo,
		in.Reference,
	).Scan(&in.ID, &in.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating inflow: %w", err)
	}

	return nil
}

func (s *Store) GetInflow(ctx context.Context, id uuid.UUID) (*ledger.Inflow, error) {
	query := `SELECT ` + selectInflowColumns + ` FROM inflow_transactions WHERE id = $1`

	in, err := scanInflow(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ledger.ErrNotFound
		}

		return nil, fmt.Errorf("getting inflow: %w", err)
	}

	return in, nil
}

func (s *Store) ListInflows(ctx context.Context, filter ledger.InflowFilter) ([]*ledger.Inflow, error) {
	query := `SELECT ` + selectInflowColumns + ` FROM inflow_transactions WHERE 1=1`

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

	if filter.FlatID != nil {
		query += fmt.Sprintf(" AND flat_id = $%d", argIdx)

		args = append(args, *filter.FlatID)
		argIdx++
	}

	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND tx_date >= $%d", argIdx)

		args = append(args, *filter.StartDate)
		argIdx++
	}

	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND tx_date <= $%d", argIdx)

		args = append(args, *filter.EndDate)
		argIdx++
	}

	query += " ORDER BY tx_date ASC, created_at ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing inflows: %w", err)
	}
	defer rows.Close()

	var ins []*ledger.Inflow

	for rows.Next() {
		in, err := scanInflow(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning inflow: %w", err)
		}

		ins = append(ins, in)
	}

	return ins, rows.Err()
}

func (s *Store) DeleteInflow(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM inflow_transactions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting inflow: %w", err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return ledger.ErrNotFound
	}

	return nil
}

func (s *Store) CreateOutflow(ctx context.Context, out *ledger.Outflow) error {
	if out.Linked() {
		return ledger.ErrLinked
	}

	query := `
		INSERT INTO outflow_transactions
			(project_id, amount, tx_date, expense_category, supplier_vendor, payment_method, reference)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		out.ProjectID,
		out.Amount,
		out.Date,
		out.Category,
		out.SupplierVendor,
		out.PaymentMethod,
		out.Reference,
	).Scan(&out.ID, &out.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating outflow: %w", err)
	}

	return nil
}

func (s *Store) GetOutflow(ctx context.Context, id uuid.UUID) (*ledger.Outflow, error) {
	query := `SELECT ` + selectOutflowColumns + ` FROM outflow_transactions WHERE id = $1`

	out, err := scanOutflow(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ledger.ErrNotFound
		}

		return nil, fmt.Errorf("getting outflow: %w", err)
	}

	return out, nil
}

func (s *Store) ListOutflows(ctx context.Context, filter ledger.OutflowFilter) ([]*ledger.Outflow, error) {
	query := `SELECT ` + selectOutflowColumns + ` FROM outflow_transactions WHERE 1=1`

	var args []any

	argIdx := 1

	if filter.ProjectID != nil {
		query += fmt.Sprintf(" AND project_id = $%d", argIdx)

		args = append(args, *filter.ProjectID)
		argIdx++
	}

	if filter.Category != nil {
		query += fmt.Sprintf(" AND expense_category = $%d", argIdx)

		args = append(args, *filter.Category)
		argIdx++
	}

	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND tx_date >= $%d", argIdx)

		args = append(args, *filter.StartDate)
		argIdx++
	}

	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND tx_date <= $%d", argIdx)

		args = append(args, *filter.EndDate)
		argIdx++
	}

	query += " ORDER BY tx_date ASC, created_at ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing outflows: %w", err)
	}
	defer rows.Close()

	var outs []*ledger.Outflow

	for rows.Next() {
		out, err := scanOutflow(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning outflow: %w", err)
		}

		outs = append(outs, out)
	}

	return outs, rows.Err()
}
