package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/rhasan/estatedesk/internal/report"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) CustomerName(ctx context.Context, customerID uuid.UUID) (string, error) {
	var name string

	err := s.db.QueryRowContext(ctx,
		`SELECT full_name FROM customers WHERE id = $1 AND deleted_at IS NULL`, customerID,
	).Scan(&name)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", report.ErrNotFound
		}

		return "", fmt.Errorf("getting customer: %w", err)
	}

	return name, nil
}

// CustomerSales returns one row per non-deleted sale of the customer, with
// the collected sum folded in by a correlated subquery instead of a query
// per sale.
func (s *Store) CustomerSales(ctx context.Context, customerID uuid.UUID) ([]report.CustomerSaleRow, error) {
	query := `
		SELECT
			COALESCE(p.project_name, ''),
			COALESCE(f.flat_number, ''),
			s.total_price,
			COALESCE((
				SELECT SUM(i.amount) FROM inflow_transactions i
				WHERE i.flat_id = s.flat_id AND i.customer_id = s.customer_id
			), 0) AS collected
		FROM sales s
		LEFT JOIN projects p ON p.id = s.project_id
		LEFT JOIN flats f ON f.id = s.flat_id
		WHERE s.customer_id = $1 AND s.deleted_at IS NULL
		ORDER BY s.sale_date ASC
	`

	rows, err := s.db.QueryContext(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("listing customer sales: %w", err)
	}
	defer rows.Close()

	var result []report.CustomerSaleRow

	for rows.Next() {
		var row report.CustomerSaleRow
		if err := rows.Scan(&row.ProjectName, &row.FlatNumber, &row.TotalPrice, &row.Collected); err != nil {
			return nil, fmt.Errorf("scanning customer sale: %w", err)
		}

		row.Due = row.TotalPrice - row.Collected
		result = append(result, row)
	}

	return result, rows.Err()
}

const projectSummaryQuery = `
	SELECT
		p.id,
		p.project_name,
		p.status,
		p.total_flats,
		COALESCE((SELECT COUNT(*) FROM flats f WHERE f.project_id = p.id AND f.status = 'Sold'), 0),
		COALESCE((SELECT COUNT(*) FROM flats f WHERE f.project_id = p.id AND f.status = 'Available'), 0),
		COALESCE((SELECT COUNT(*) FROM flats f WHERE f.project_id = p.id AND f.status = 'Reserved'), 0),
		COALESCE((SELECT SUM(s.total_price) FROM sales s WHERE s.project_id = p.id AND s.deleted_at IS NULL), 0),
		COALESCE((SELECT SUM(i.amount) FROM inflow_transactions i WHERE i.project_id = p.id), 0),
		COALESCE((SELECT SUM(o.amount) FROM outflow_transactions o WHERE o.project_id = p.id), 0),
		COALESCE((SELECT SUM(e.price) FROM expenses e WHERE e.project_id = p.id AND e.deleted_at IS NULL), 0),
		COALESCE((SELECT SUM(e.paid_amount) FROM expenses e WHERE e.project_id = p.id AND e.deleted_at IS NULL), 0)
	FROM projects p
`

type scanner interface {
	Scan(dest ...any) error
}

func scanSummary(s scanner) (*report.ProjectSummary, error) {
	var sum report.ProjectSummary

	if err := s.Scan(
		&sum.ProjectID, &sum.ProjectName, &sum.Status, &sum.TotalFlats,
		&sum.SoldFlats, &sum.AvailableFlats, &sum.ReservedFlats,
		&sum.SalesValue, &sum.Collected, &sum.Spent,
		&sum.ExpenseBilled, &sum.ExpensePaid,
	); err != nil {
		return nil, err
	}

	sum.ExpenseOutstanding = sum.ExpenseBilled - sum.ExpensePaid

	return &sum, nil
}

func (s *Store) ProjectSummary(ctx context.Context, projectID uuid.UUID) (*report.ProjectSummary, error) {
	query := projectSummaryQuery + ` WHERE p.id = $1 AND p.deleted_at IS NULL`

	sum, err := scanSummary(s.db.QueryRowContext(ctx, query, projectID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, report.ErrNotFound
		}

		return nil, fmt.Errorf("summarizing project: %w", err)
	}

	return sum, nil
}

func (s *Store) ProjectSummaries(ctx context.Context) ([]*report.ProjectSummary, error) {
	query := projectSummaryQuery + ` WHERE p.deleted_at IS NULL ORDER BY p.start_date ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("summarizing projects: %w", err)
	}
	defer rows.Close()

	var summaries []*report.ProjectSummary

	for rows.Next() {
		sum, err := scanSummary(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning project summary: %w", err)
		}

		summaries = append(summaries, sum)
	}

	return summaries, rows.Err()
}

func (s *Store) SalesRegister(ctx context.Context) ([]report.SaleRow, error) {
	query := `
		SELECT
			s.sale_date,
			COALESCE(p.project_name, ''),
			COALESCE(f.flat_number, ''),
			COALESCE(c.full_name, ''),
			s.base_price,
			COALESCE((SELECT SUM(x.amount) FROM sale_extra_costs x WHERE x.sale_id = s.id), 0),
			s.total_price,
			s.downpayment
		FROM sales s
		LEFT JOIN projects p ON p.id = s.project_id
		LEFT JOIN flats f ON f.id = s.flat_id
		LEFT JOIN customers c ON c.id = s.customer_id
		WHERE s.deleted_at IS NULL
		ORDER BY s.sale_date ASC, s.created_at ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("reading sales register: %w", err)
	}
	defer rows.Close()

	var result []report.SaleRow

	for rows.Next() {
		var row report.SaleRow
		if err := rows.Scan(
			&row.Date, &row.ProjectName, &row.FlatNumber, &row.CustomerName,
			&row.BasePrice, &row.ExtraCosts, &row.TotalPrice, &row.Downpayment,
		); err != nil {
			return nil, fmt.Errorf("scanning sales register: %w", err)
		}

		result = append(result, row)
	}

	return result, rows.Err()
}

func (s *Store) CollectionsRegister(ctx context.Context) ([]report.CollectionRow, error) {
	query := `
		SELECT
			i.tx_date,
			COALESCE(p.project_name, ''),
			COALESCE(f.flat_number, ''),
			COALESCE(c.full_name, ''),
			i.payment_type,
			i.payment_method,
			i.receipt_no,
			i.amount
		FROM inflow_transactions i
		LEFT JOIN projects p ON p.id = i.project_id
		LEFT JOIN flats f ON f.id = i.flat_id
		LEFT JOIN customers c ON c.id = i.customer_id
		ORDER BY i.tx_date ASC, i.created_at ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("reading collections register: %w", err)
	}
	defer rows.Close()

	var result []report.CollectionRow

	for rows.Next() {
		var row report.CollectionRow
		if err := rows.Scan(
			&row.Date, &row.ProjectName, &row.FlatNumber, &row.CustomerName,
			&row.PaymentType, &row.Method, &row.ReceiptNo, &row.Amount,
		); err != nil {
			return nil, fmt.Errorf("scanning collections register: %w", err)
		}

		result = append(result, row)
	}

	return result, rows.Err()
}

func (s *Store) PaymentsRegister(ctx context.Context) ([]report.PaymentRow, error) {
	query := `
		SELECT
			o.tx_date,
			COALESCE(p.project_name, ''),
			o.expense_category,
			o.supplier_vendor,
			COALESCE(o.expense_no, ''),
			o.payment_method,
			o.reference,
			o.amount
		FROM outflow_transactions o
		LEFT JOIN projects p ON p.id = o.project_id
		ORDER BY o.tx_date ASC, o.created_at ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("reading payments register: %w", err)
	}
	defer rows.Close()

	var result []report.PaymentRow

	for rows.Next() {
		var row report.PaymentRow
		if err := rows.Scan(
			&row.Date, &row.ProjectName, &row.Category, &row.Vendor,
			&row.ExpenseNo, &row.Method, &row.Reference, &row.Amount,
		); err != nil {
			return nil, fmt.Errorf("scanning payments register: %w", err)
		}

		result = append(result, row)
	}

	return result, rows.Err()
}
