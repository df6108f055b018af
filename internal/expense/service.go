package expense

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rhasan/estatedesk/internal/ledger"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=expense
type Repository interface {
	CreateExpense(ctx context.Context, e *Expense) error
	GetExpense(ctx context.Context, id uuid.UUID) (*Expense, error)
	GetExpenseByNo(ctx context.Context, expenseNo string) (*Expense, error)
	ListExpenses(ctx context.Context, filter ListFilter) ([]*Expense, error)
	// DeleteExpense soft-deletes the expense. It fails with ErrHasPayments
	// when outflows are still settled against it.
	DeleteExpense(ctx context.Context, id uuid.UUID) error

	GetOutflow(ctx context.Context, id uuid.UUID) (*ledger.Outflow, error)
	// UpdateOutflow and DeleteOutflow serve standalone outflows only; rows
	// linked to an expense change through a reconcile transaction.
	UpdateOutflow(ctx context.Context, out *ledger.Outflow) error
	DeleteOutflow(ctx context.Context, id uuid.UUID) error

	// BeginReconcile opens a transaction that locks the expense row named by
	// expenseNo. Every write issued through the returned ReconcileTx commits
	// or rolls back as one unit, so the expense's paid amount and the outflow
	// log can never disagree.
	BeginReconcile(ctx context.Context, expenseNo string) (ReconcileTx, error)

	ListItems(ctx context.Context) ([]*Item, error)
	EnsureItem(ctx context.Context, name string) (*Item, error)
}

// ReconcileTx is a unit of work over one expense and its payment outflows.
// The expense row is locked for the duration, serializing concurrent
// payments against the same expense.
type ReconcileTx interface {
	Expense() *Expense
	UpdateExpense(ctx context.Context, e *Expense) error
	UpdateExpensePayment(ctx context.Context, paidAmount int64, status Status) error
	// Outflow re-reads a payment outflow under the expense lock. Amount math
	// must start from this row, not from a read taken before the lock.
	Outflow(ctx context.Context, id uuid.UUID) (*ledger.Outflow, error)
	InsertOutflow(ctx context.Context, out *ledger.Outflow) error
	UpdateOutflow(ctx context.Context, out *ledger.Outflow) error
	DeleteOutflow(ctx context.Context, id uuid.UUID) error
	Commit() error
	Rollback() error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	ExpenseNo string
	VendorID  uuid.UUID
	ProjectID uuid.UUID
	ItemID    uuid.UUID
	Quantity  int64
	Price     int64
}

type ListFilter struct {
	ProjectID *uuid.UUID
	VendorID  *uuid.UUID
	Status    *Status
}

func (p CreateParams) validate() error {
	if p.VendorID == uuid.Nil || p.ProjectID == uuid.Nil || p.ItemID == uuid.Nil {
		return fmt.Errorf("expense requires vendor, project and item: %w", ErrValidation)
	}

	if p.Price <= 0 {
		return fmt.Errorf("price must be positive, got %d: %w", p.Price, ErrValidation)
	}

	if p.Quantity <= 0 {
		return fmt.Errorf("quantity must be positive, got %d: %w", p.Quantity, ErrValidation)
	}

	return nil
}

// newExpenseNo mints a voucher number like EXP-20240310-1A2B3C4D.
func newExpenseNo(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("EXP-%s-%s", now.Format("20060102"), suffix)
}

// Create records a new expense. It starts Unpaid with nothing paid; money
// moves against it only through MakePayment.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Expense, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	if params.ExpenseNo == "" {
		params.ExpenseNo = newExpenseNo(time.Now())
	}

	e := &Expense{
		ExpenseNo: params.ExpenseNo,
		VendorID:  params.VendorID,
		ProjectID: params.ProjectID,
		ItemID:    params.ItemID,
		Quantity:  params.Quantity,
		Price:     params.Price,
		Status:    StatusUnpaid,
	}
	if err := s.repo.CreateExpense(ctx, e); err != nil {
		return nil, err
	}

	return e, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Expense, error) {
	return s.repo.GetExpense(ctx, id)
}

func (s *Service) GetByNo(ctx context.Context, expenseNo string) (*Expense, error) {
	return s.repo.GetExpenseByNo(ctx, expenseNo)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Expense, error) {
	return s.repo.ListExpenses(ctx, filter)
}

// Update revises the expense's vendor, item, quantity or price. The price
// can never drop below what has already been paid, and the status is
// re-derived so a price cut can flip Partially Paid to Paid. The write runs
// under the same expense lock as payments: the paid amount the status is
// derived from is the locked row's, so a payment landing mid-edit cannot be
// overwritten with a stale status.
func (s *Service) Update(ctx context.Context, id uuid.UUID, params CreateParams) (*Expense, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetExpense(ctx, id)
	if err != nil {
		return nil, err
	}

	tx, err := s.repo.BeginReconcile(ctx, existing.ExpenseNo)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	locked := tx.Expense()

	if params.Price < locked.PaidAmount {
		return nil, fmt.Errorf("price %d below paid amount %d: %w",
			params.Price, locked.PaidAmount, ErrInvalidAmount)
	}

	updated := &Expense{
		ID:         locked.ID,
		ExpenseNo:  locked.ExpenseNo,
		VendorID:   params.VendorID,
		ProjectID:  params.ProjectID,
		ItemID:     params.ItemID,
		Quantity:   params.Quantity,
		Price:      params.Price,
		PaidAmount: locked.PaidAmount,
		Status:     StatusFor(locked.PaidAmount, params.Price),
		CreatedAt:  locked.CreatedAt,
	}
	if err := tx.UpdateExpense(ctx, updated); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing expense update: %w", err)
	}

	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteExpense(ctx, id)
}

func (s *Service) Items(ctx context.Context) ([]*Item, error) {
	return s.repo.ListItems(ctx)
}

func (s *Service) EnsureItem(ctx context.Context, name string) (*Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("item name is required: %w", ErrValidation)
	}

	return s.repo.EnsureItem(ctx, name)
}

type PaymentParams struct {
	ExpenseNo     string
	Amount        int64
	Date          time.Time
	PaymentMethod string
	Reference     string
}

// MakePayment settles part or all of an expense. It appends an outflow
// carrying the expense number and advances the expense's paid amount and
// status in the same transaction. A payment that would overshoot the price
// is rejected whole.
func (s *Service) MakePayment(ctx context.Context, params PaymentParams) (*ledger.Outflow, error) {
	if params.Amount <= 0 {
		return nil, fmt.Errorf("payment must be positive, got %d: %w", params.Amount, ErrInvalidAmount)
	}

	if params.Date.IsZero() {
		params.Date = time.Now()
	}

	tx, err := s.repo.BeginReconcile(ctx, params.ExpenseNo)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	e := tx.Expense()

	newPaid := e.PaidAmount + params.Amount
	if newPaid > e.Price {
		return nil, fmt.Errorf("payment %d exceeds remaining balance %d: %w",
			params.Amount, e.Remaining(), ErrInvalidAmount)
	}

	out := &ledger.Outflow{
		ProjectID:      new(e.ProjectID),
		Amount:         params.Amount,
		Date:           params.Date,
		Category:       e.ItemName,
		SupplierVendor: e.VendorName,
		ExpenseNo:      e.ExpenseNo,
		PaymentMethod:  params.PaymentMethod,
		Reference:      params.Reference,
	}
	if err := tx.InsertOutflow(ctx, out); err != nil {
		return nil, err
	}

	if err := tx.UpdateExpensePayment(ctx, newPaid, StatusFor(newPaid, e.Price)); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing payment: %w", err)
	}

	return out, nil
}

type EditPaymentParams struct {
	Amount        int64
	Date          time.Time
	PaymentMethod string
	Reference     string
}

// EditPayment corrects a recorded outflow. For an outflow linked to an
// expense the paid amount is re-derived under the expense lock: the old
// amount comes off, the new one goes on, and the result must stay within
// zero and the price. Standalone outflows are plain row updates.
func (s *Service) EditPayment(ctx context.Context, id uuid.UUID, params EditPaymentParams) (*ledger.Outflow, error) {
	if params.Amount < 0 {
		return nil, fmt.Errorf("payment cannot be negative, got %d: %w", params.Amount, ErrInvalidAmount)
	}

	out, err := s.repo.GetOutflow(ctx, id)
	if err != nil {
		return nil, err
	}

	if !out.Linked() {
		out.Amount = params.Amount
		if !params.Date.IsZero() {
			out.Date = params.Date
		}
		out.PaymentMethod = params.PaymentMethod
		out.Reference = params.Reference

		if err := s.repo.UpdateOutflow(ctx, out); err != nil {
			return nil, err
		}

		return out, nil
	}

	tx, err := s.repo.BeginReconcile(ctx, out.ExpenseNo)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	e := tx.Expense()

	// The plain read above only routed us here; the amount coming off the
	// paid total must be the row as it stands under the lock.
	cur, err := tx.Outflow(ctx, id)
	if err != nil {
		return nil, err
	}

	newPaid := e.PaidAmount - cur.Amount + params.Amount
	if newPaid < 0 || newPaid > e.Price {
		return nil, fmt.Errorf("edit would leave paid amount %d outside 0..%d: %w",
			newPaid, e.Price, ErrInvalidAmount)
	}

	cur.Amount = params.Amount
	if !params.Date.IsZero() {
		cur.Date = params.Date
	}
	cur.PaymentMethod = params.PaymentMethod
	cur.Reference = params.Reference

	if err := tx.UpdateOutflow(ctx, cur); err != nil {
		return nil, err
	}

	if err := tx.UpdateExpensePayment(ctx, newPaid, StatusFor(newPaid, e.Price)); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing payment edit: %w", err)
	}

	return cur, nil
}

// DeletePayment removes an outflow. A linked outflow rolls its amount back
// off the expense in the same transaction; the paid amount is clamped at
// zero in case the ledger and expense drifted through an old import. An
// outflow tied to neither an expense nor a project is refused.
func (s *Service) DeletePayment(ctx context.Context, id uuid.UUID) error {
	out, err := s.repo.GetOutflow(ctx, id)
	if err != nil {
		return err
	}

	if !out.Linked() {
		if out.ProjectID == nil {
			return ErrNotAssociated
		}

		return s.repo.DeleteOutflow(ctx, id)
	}

	tx, err := s.repo.BeginReconcile(ctx, out.ExpenseNo)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	e := tx.Expense()

	cur, err := tx.Outflow(ctx, id)
	if err != nil {
		return err
	}

	newPaid := e.PaidAmount - cur.Amount
	if newPaid < 0 {
		newPaid = 0
	}

	if err := tx.DeleteOutflow(ctx, id); err != nil {
		return err
	}

	if err := tx.UpdateExpensePayment(ctx, newPaid, statusAfterReversal(newPaid)); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing payment delete: %w", err)
	}

	return nil
}
