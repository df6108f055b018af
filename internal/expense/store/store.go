package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/rhasan/estatedesk/internal/expense"
	"github.com/rhasan/estatedesk/internal/ledger"
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

const selectExpenseColumns = `
	e.id, e.expense_no, e.vendor_id, e.project_id, e.item_id, e.quantity, e.price,
	e.paid_amount, e.status, e.created_at, e.updated_at, e.deleted_at,
	v.vendor_name, i.name
`

const expenseJoins = `
	FROM expenses e
	JOIN vendors v ON v.id = e.vendor_id
	JOIN expense_items i ON i.id = e.item_id
`

func scanExpense(s scanner) (*expense.Expense, error) {
	var e expense.Expense

	if err := s.Scan(
		&e.ID, &e.ExpenseNo, &e.VendorID, &e.ProjectID, &e.ItemID, &e.Quantity, &e.Price,
		&e.PaidAmount, &e.Status, &e.CreatedAt, &e.UpdatedAt, &e.DeletedAt,
		&e.VendorName, &e.ItemName,
	); err != nil {
		return nil, err
	}

	return &e, nil
}

func (s *Store) CreateExpense(ctx context.Context, e *expense.Expense) error {
	query := `
		INSERT INTO expenses (expense_no, vendor_id, project_id, item_id, quantity, price, paid_amount, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		e.ExpenseNo, e.VendorID, e.ProjectID, e.ItemID, e.Quantity, e.Price, e.PaidAmount, e.Status,
	).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating expense: %w", err)
	}

	return nil
}

func (s *Store) GetExpense(ctx context.Context, id uuid.UUID) (*expense.Expense, error) {
	query := `SELECT ` + selectExpenseColumns + expenseJoins + ` WHERE e.id = $1 AND e.deleted_at IS NULL`

	e, err := scanExpense(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, expense.ErrNotFound
		}

		return nil, fmt.Errorf("getting expense: %w", err)
	}

	return e, nil
}

func (s *Store) GetExpenseByNo(ctx context.Context, expenseNo string) (*expense.Expense, error) {
	query := `SELECT ` + selectExpenseColumns + expenseJoins + ` WHERE e.expense_no = $1 AND e.deleted_at IS NULL`

	e, err := scanExpense(s.db.QueryRowContext(ctx, query, expenseNo))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, expense.ErrNotFound
		}

		return nil, fmt.Errorf("getting expense %s: %w", expenseNo, err)
	}

	return e, nil
}

func (s *Store) ListExpenses(ctx context.Context, filter expense.ListFilter) ([]*expense.Expense, error) {
	query := `SELECT ` + selectExpenseColumns + expenseJoins + ` WHERE e.deleted_at IS NULL`

	var args []any

	argIdx := 1

	if filter.ProjectID != nil {
		query += fmt.Sprintf(" AND e.project_id = $%d", argIdx)

		args = append(args, *filter.ProjectID)
		argIdx++
	}

	if filter.VendorID != nil {
		query += fmt.Sprintf(" AND e.vendor_id = $%d", argIdx)

		args = append(args, *filter.VendorID)
		argIdx++
	}

	if filter.Status != nil {
		query += fmt.Sprintf(" AND e.status = $%d", argIdx)

		args = append(args, *filter.Status)
		argIdx++
	}

	query += " ORDER BY e.created_at DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*expense.Expense

	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning expense: %w", err)
		}

		expenses = append(expenses, e)
	}

	return expenses, rows.Err()
}

// DeleteExpense soft-deletes the expense unless payments are still recorded
// against its expense number.
func (s *Store) DeleteExpense(ctx context.Context, id uuid.UUID) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning expense delete: %w", err)
	}
	defer tx.Rollback()

	var expenseNo string

	err = tx.QueryRowContext(ctx,
		`SELECT expense_no FROM expenses WHERE id = $1 AND deleted_at IS NULL FOR UPDATE`, id,
	).Scan(&expenseNo)
	if err != nil {
		if err == sql.ErrNoRows {
			return expense.ErrNotFound
		}

		return fmt.Errorf("locking expense: %w", err)
	}

	var payments int

	err = tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM outflow_transactions WHERE expense_no = $1`, expenseNo,
	).Scan(&payments)
	if err != nil {
		return fmt.Errorf("counting payments: %w", err)
	}

	if payments > 0 {
		return expense.ErrHasPayments
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE expenses SET deleted_at = NOW() WHERE id = $1`, id,
	); err != nil {
		return fmt.Errorf("deleting expense: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing expense delete: %w", err)
	}

	return nil
}

const selectOutflowColumns = `
	id, project_id, amount, tx_date, expense_category, supplier_vendor,
	COALESCE(expense_no, ''), payment_method, reference, created_at
`

func scanOutflow(s scanner) (*ledger.Outflow, error) {
	var out ledger.Outflow

	if err := s.Scan(
		&out.ID, &out.ProjectID, &out.Amount, &out.Date, &out.Category,
		&out.SupplierVendor, &out.ExpenseNo, &out.PaymentMethod, &out.Reference,
		&out.CreatedAt,
	); err != nil {
		return nil, err
	}

	return &out, nil
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

// UpdateOutflow rewrites a standalone outflow row. Linked rows change only
// inside a reconcile transaction.
func (s *Store) UpdateOutflow(ctx context.Context, out *ledger.Outflow) error {
	query := `
		UPDATE outflow_transactions
		SET amount = $1, tx_date = $2, expense_category = $3, supplier_vendor = $4,
		    payment_method = $5, reference = $6
		WHERE id = $7 AND expense_no IS NULL
	`

	res, err := s.db.ExecContext(ctx, query,
		out.Amount, out.Date, out.Category, out.SupplierVendor,
		out.PaymentMethod, out.Reference, out.ID,
	)
	if err != nil {
		return fmt.Errorf("updating outflow: %w", err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return ledger.ErrNotFound
	}

	return nil
}

func (s *Store) DeleteOutflow(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM outflow_transactions WHERE id = $1 AND expense_no IS NULL`, id)
	if err != nil {
		return fmt.Errorf("deleting outflow: %w", err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return ledger.ErrNotFound
	}

	return nil
}

func (s *Store) ListItems(ctx context.Context) ([]*expense.Item, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM expense_items ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	defer rows.Close()

	var items []*expense.Item

	for rows.Next() {
		var it expense.Item
		if err := rows.Scan(&it.ID, &it.Name); err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}

		items = append(items, &it)
	}

	return items, rows.Err()
}

// EnsureItem returns the item with the given name, creating it on first use.
func (s *Store) EnsureItem(ctx context.Context, name string) (*expense.Item, error) {
	query := `
		INSERT INTO expense_items (name)
		VALUES ($1)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id, name
	`

	var it expense.Item
	if err := s.db.QueryRowContext(ctx, query, name).Scan(&it.ID, &it.Name); err != nil {
		return nil, fmt.Errorf("ensuring item %q: %w", name, err)
	}

	return &it, nil
}

// reconcileTx holds the locked expense and the open database transaction.
type reconcileTx struct {
	tx      *sql.Tx
	expense *expense.Expense
}

// BeginReconcile opens a transaction and locks the expense row, so
// concurrent payments against one expense serialize here.
func (s *Store) BeginReconcile(ctx context.Context, expenseNo string) (expense.ReconcileTx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning reconcile: %w", err)
	}

	query := `SELECT ` + selectExpenseColumns + expenseJoins + `
		WHERE e.expense_no = $1 AND e.deleted_at IS NULL
		FOR UPDATE OF e`

	e, err := scanExpense(tx.QueryRowContext(ctx, query, expenseNo))
	if err != nil {
		tx.Rollback()

		if err == sql.ErrNoRows {
			return nil, expense.ErrNotFound
		}

		return nil, fmt.Errorf("locking expense %s: %w", expenseNo, err)
	}

	return &reconcileTx{tx: tx, expense: e}, nil
}

func (r *reconcileTx) Expense() *expense.Expense {
	return r.expense
}

// UpdateExpense rewrites the expense row. The row is already locked by
// BeginReconcile, so the status written here was derived from a paid amount
// no concurrent payment can have moved.
func (r *reconcileTx) UpdateExpense(ctx context.Context, e *expense.Expense) error {
	query := `
		UPDATE expenses
		SET vendor_id = $1, project_id = $2, item_id = $3, quantity = $4, price = $5,
		    status = $6, updated_at = NOW()
		WHERE id = $7 AND deleted_at IS NULL
	`

	res, err := r.tx.ExecContext(ctx, query,
		e.VendorID, e.ProjectID, e.ItemID, e.Quantity, e.Price, e.Status, e.ID,
	)
	if err != nil {
		return fmt.Errorf("updating expense: %w", err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return expense.ErrNotFound
	}

	return nil
}

func (r *reconcileTx) UpdateExpensePayment(ctx context.Context, paidAmount int64, status expense.Status) error {
	_, err := r.tx.ExecContext(ctx,
		`UPDATE expenses SET paid_amount = $1, status = $2, updated_at = NOW() WHERE id = $3`,
		paidAmount, status, r.expense.ID,
	)
	if err != nil {
		return fmt.Errorf("updating paid amount: %w", err)
	}

	return nil
}

func (r *reconcileTx) InsertOutflow(ctx context.Context, out *ledger.Outflow) error {
	query := `
		INSERT INTO outflow_transactions
			(project_id, amount, tx_date, expense_category, supplier_vendor, expense_no, payment_method, reference)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`

	err := r.tx.QueryRowContext(ctx, query,
		out.ProjectID, out.Amount, out.Date, out.Category, out.SupplierVendor,
		out.ExpenseNo, out.PaymentMethod, out.Reference,
	).Scan(&out.ID, &out.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting payment outflow: %w", err)
	}

	return nil
}

// Outflow reads a payment outflow of the locked expense inside the
// transaction, locking the row as well.
func (r *reconcileTx) Outflow(ctx context.Context, id uuid.UUID) (*ledger.Outflow, error) {
	query := `SELECT ` + selectOutflowColumns + `
		FROM outflow_transactions WHERE id = $1 AND expense_no = $2
		FOR UPDATE`

	out, err := scanOutflow(r.tx.QueryRowContext(ctx, query, id, r.expense.ExpenseNo))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ledger.ErrNotFound
		}

		return nil, fmt.Errorf("locking payment outflow: %w", err)
	}

	return out, nil
}

func (r *reconcileTx) UpdateOutflow(ctx context.Context, out *ledger.Outflow) error {
	query := `
		UPDATE outflow_transactions
		SET amount = $1, tx_date = $2, payment_method = $3, reference = $4
		WHERE id = $5 AND expense_no = $6
	`

	res, err := r.tx.ExecContext(ctx, query,
		out.Amount, out.Date, out.PaymentMethod, out.Reference, out.ID, r.expense.ExpenseNo,
	)
	if err != nil {
		return fmt.Errorf("updating payment outflow: %w", err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return ledger.ErrNotFound
	}

	return nil
}

func (r *reconcileTx) DeleteOutflow(ctx context.Context, id uuid.UUID) error {
	res, err := r.tx.ExecContext(ctx,
		`DELETE FROM outflow_transactions WHERE id = $1 AND expense_no = $2`,
		id, r.expense.ExpenseNo,
	)
	if err != nil {
		return fmt.Errorf("deleting payment outflow: %w", err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return ledger.ErrNotFound
	}

	return nil
}

func (r *reconcileTx) Commit() error {
	return r.tx.Commit()
}

func (r *reconcileTx) Rollback() error {
	return r.tx.Rollback()
}
