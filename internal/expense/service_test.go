package expense_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/rhasan/estatedesk/internal/expense"
	"github.com/rhasan/estatedesk/internal/ledger"
)

func TestStatusFor(t *testing.T) {
	cases := []struct {
		name  string
		paid  int64
		price int64
		want  expense.Status
	}{
		{"NothingPaid", 0, 100_000, expense.StatusUnpaid},
		{"Partial", 40_000, 100_000, expense.StatusPartiallyPaid},
		{"Exact", 100_000, 100_000, expense.StatusPaid},
		{"NegativeClampsToUnpaid", -10, 100_000, expense.StatusUnpaid},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, expense.StatusFor(tc.paid, tc.price))
		})
	}
}

func lockedExpense(expenseNo string, paid, price int64) *expense.Expense {
	return &expense.Expense{
		ID:         uuid.New(),
		ExpenseNo:  expenseNo,
		VendorID:   uuid.New(),
		ProjectID:  uuid.New(),
		ItemID:     uuid.New(),
		Quantity:   100,
		Price:      price,
		PaidAmount: paid,
		Status:     expense.StatusFor(paid, price),
		CreatedAt:  time.Now(),
		VendorName: "Mahbub Traders",
		ItemName:   "Cement",
	}
}

// newReconcileTx wires a mock unit of work around the given expense. The
// rollback expectation is permissive because the service defers Rollback
// even on the commit path.
func newReconcileTx(ctrl *gomock.Controller, e *expense.Expense) *expense.MockReconcileTx {
	tx := expense.NewMockReconcileTx(ctrl)
	tx.EXPECT().Expense().Return(e).AnyTimes()
	tx.EXPECT().Rollback().Return(sql.ErrTxDone).AnyTimes()

	return tx
}

func TestService_MakePayment(t *testing.T) {
	const expenseNo = "EXP-20240310-AB12CD34"

	t.Run("PartialPayment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := expense.NewMockRepository(ctrl)
		svc := expense.NewService(repo)

		e := lockedExpense(expenseNo, 0, 100_000)
		tx := newReconcileTx(ctrl, e)

		repo.EXPECT().BeginReconcile(gomock.Any(), expenseNo).Return(tx, nil)
		tx.EXPECT().
			InsertOutflow(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, out *ledger.Outflow) error {
				assert.Equal(t, int64(40_000), out.Amount)
				assert.Equal(t, expenseNo, out.ExpenseNo)
				assert.Equal(t, "Cement", out.Category)
				assert.Equal(t, "Mahbub Traders", out.SupplierVendor)

				require.NotNil(t, out.ProjectID)
				assert.Equal(t, e.ProjectID, *out.ProjectID)

				out.ID = uuid.New()
				return nil
			})
		tx.EXPECT().
			UpdateExpensePayment(gomock.Any(), int64(40_000), expense.StatusPartiallyPaid).
			Return(nil)
		tx.EXPECT().Commit().Return(nil)

		out, err := svc.MakePayment(context.Background(), expense.PaymentParams{
			ExpenseNo: expenseNo,
			Amount:    40_000,
		})
		require.NoError(t, err)
		assert.NotEmpty(t, out.ID)
	})

	t.Run("FinalPaymentFlipsToPaid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := expense.NewMockRepository(ctrl)
		svc := expense.NewService(repo)

		tx := newReconcileTx(ctrl, lockedExpense(expenseNo, 40_000, 100_000))

		repo.EXPECT().BeginReconcile(gomock.Any(), expenseNo).Return(tx, nil)
		tx.EXPECT().InsertOutflow(gomock.Any(), gomock.Any()).Return(nil)
		tx.EXPECT().
			UpdateExpensePayment(gomock.Any(), int64(100_000), expense.StatusPaid).
			Return(nil)
		tx.EXPECT().Commit().Return(nil)

		_, err := svc.MakePayment(context.Background(), expense.PaymentParams{
			ExpenseNo: expenseNo,
			Amount:    60_000,
		})
		require.NoError(t, err)
	})

	t.Run("OverpaymentRejectedWholesale", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := expense.NewMockRepository(ctrl)
		svc := expense.NewService(repo)

		tx := newReconcileTx(ctrl, lockedExpense(expenseNo, 90_000, 100_000))

		repo.EXPECT().BeginReconcile(gomock.Any(), expenseNo).Return(tx, nil)

		_, err := svc.MakePayment(context.Background(), expense.PaymentParams{
			ExpenseNo: expenseNo,
			Amount:    20_000,
		})
		assert.ErrorIs(t, err, expense.ErrInvalidAmount)
	})

	t.Run("NonPositiveAmount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := expense.NewMockRepository(ctrl)
		svc := expense.NewService(repo)

		for _, amount := range []int64{0, -500} {
			_, err := svc.MakePayment(context.Background(), expense.PaymentParams{
				ExpenseNo: expenseNo,
				Amount:    amount,
			})
			assert.ErrorIs(t, err, expense.ErrInvalidAmount)
		}
	})

	t.Run("UnknownExpense", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := expense.NewMockRepository(ctrl)
		svc := expense.NewService(repo)

		repo.EXPECT().
			BeginReconcile(gomock.Any(), "EXP-MISSING").
			Return(nil, expense.ErrNotFound)

		_, err := svc.MakePayment(context.Background(), expense.PaymentParams{
			ExpenseNo: "EXP-MISSING",
			Amount:    10_000,
		})
		assert.ErrorIs(t, err, expense.ErrNotFound)
	})
}

func TestService_EditPayment(t *testing.T) {
	const expenseNo = "EXP-20240310-AB12CD34"

	outflowID := uuid.New()

	linkedOutflow := func(amount int64) *ledger.Outflow {
		return &ledger.Outflow{
			ID:        outflowID,
			Amount:    amount,
			Date:      time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			ExpenseNo: expenseNo,
		}
	}

	t.Run("LinkedReDerivesPaidAmount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := expense.NewMockRepository(ctrl)
		svc := expense.NewService(repo)

		tx := newReconcileTx(ctrl, lockedExpense(expenseNo, 40_000, 100_000))

		repo.EXPECT().GetOutflow(gomock.Any(), outflowID).Return(linkedOutflow(40_000), nil)
		repo.EXPECT().BeginReconcile(gomock.Any(), expenseNo).Return(tx, nil)
		tx.EXPECT().Outflow(gomock.Any(), outflowID).Return(linkedOutflow(40_000), nil)
		tx.EXPECT().
			UpdateOutflow(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, out *ledger.Outflow) error {
				assert.Equal(t, int64(25_000), out.Amount)
				return nil
			})
		tx.EXPECT().
			UpdateExpensePayment(gomock.Any(), int64(25_000), expense.StatusPartiallyPaid).
			Return(nil)
		tx.EXPECT().Commit().Return(nil)

		out, err := svc.EditPayment(context.Background(), outflowID, expense.EditPaymentParams{
			Amount: 25_000,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(25_000), out.Amount)
	})

	t.Run("LinkedEditUpToPaid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := expense.NewMockRepository(ctrl)
		svc := expense.NewService(repo)

		tx := newReconcileTx(ctrl, lockedExpense(expenseNo, 40_000, 100_000))

		repo.EXPECT().GetOutflow(gomock.Any(), outflowID).Return(linkedOutflow(40_000), nil)
		repo.EXPECT().BeginReconcile(gomock.Any(), expenseNo).Return(tx, nil)
		tx.EXPECT().Outflow(gomock.Any(), outflowID).Return(linkedOutflow(40_000), nil)
		tx.EXPECT().UpdateOutflow(gomock.Any(), gomock.Any()).Return(nil)
		tx.EXPECT().
			UpdateExpensePayment(gomock.Any(), int64(100_000), expense.StatusPaid).
			Return(nil)
		tx.EXPECT().Commit().Return(nil)

		_, err := svc.EditPayment(context.Background(), outflowID, expense.EditPaymentParams{
			Amount: 100_000,
		})
		require.NoError(t, err)
	})

	t.Run("LinkedEditPastPriceRejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := expense.NewMockRepository(ctrl)
		svc := expense.NewService(repo)

		tx := newReconcileTx(ctrl, lockedExpense(expenseNo, 40_000, 100_000))

		repo.EXPECT().GetOutflow(gomock.Any(), outflowID).Return(linkedOutflow(40_000), nil)
		repo.EXPECT().BeginReconcile(gomock.Any(), expenseNo).Return(tx, nil)
		tx.EXPECT().Outflow(gomock.Any(), outflowID).Return(linkedOutflow(40_000), nil)

		_, err := svc.EditPayment(context.Background(), outflowID, expense.EditPaymentParams{
			Amount: 120_000,
		})
		assert.ErrorIs(t, err, expense.ErrInvalidAmount)
	})

	// Another edit can commit between the routing read and the lock. The
	// amount coming off the paid total must be the locked row's, or the
	// paid amount drifts away from the outflow log.
	t.Run("ConcurrentEditUsesLockedAmount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := expense.NewMockRepository(ctrl)
		svc := expense.NewService(repo)

		tx := newReconcileTx(ctrl, lockedExpense(expenseNo, 10_000, 100_000))

		repo.EXPECT().GetOutflow(gomock.Any(), outflowID).Return(linkedOutflow(40_000), nil)
		repo.EXPECT().BeginReconcile(gomock.Any(), expenseNo).Return(tx, nil)
		tx.EXPECT().Outflow(gomock.Any(), outflowID).Return(linkedOutflow(10_000), nil)
		tx.EXPECT().
			UpdateOutflow(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, out *ledger.Outflow) error {
				assert.Equal(t, int64(25_000), out.Amount)
				return nil
			})
		tx.EXPECT().
			UpdateExpensePayment(gomock.Any(), int64(25_000), expense.StatusPartiallyPaid).
			Return(nil)
		tx.EXPECT().Commit().Return(nil)

		out, err := svc.EditPayment(context.Background(), outflowID, expense.EditPaymentParams{
			Amount: 25_000,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(25_000), out.Amount)
	})

	t.Run("NegativeAmountRejectedEarly", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := expense.NewMockRepository(ctrl)
		svc := expense.NewService(repo)

		_, err := svc.EditPayment(context.Background(), outflowID, expense.EditPaymentParams{
			Amount: -1,
		})
		assert.ErrorIs(t, err, expense.ErrInvalidAmount)
	})

	t.Run("StandaloneSkipsReconcile", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := expense.NewMockRepository(ctrl)
		svc := expense.NewService(repo)

		projectID := uuid.New()
		standalone := &ledger.Outflow{
			ID:        outflowID,
			ProjectID: &projectID,
			Amount:    5_000,
			Date:      time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		}

		repo.EXPECT().GetOutflow(gomock.Any(), outflowID).Return(standalone, nil)
		repo.EXPECT().
			UpdateOutflow(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, out *ledger.Outflow) error {
				assert.Equal(t, int64(7_500), out.Amount)
				return nil
			})

		out, err := svc.EditPayment(context.Background(), outflowID, expense.EditPaymentParams{
			Amount: 7_500,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(7_500), out.Amount)
	})
}

func TestService_DeletePayment(t *testing.T) {
	const expenseNo = "EXP-20240310-AB12CD34"

	outflowID := uuid.New()

	t.Run("LinkedRollsBackPaidAmount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := expense.NewMockRepository(ctrl)
		svc := expense.NewService(repo)

		tx := newReconcileTx(ctrl, lockedExpense(expenseNo, 100_000, 100_000))

		repo.EXPECT().GetOutflow(gomock.Any(), outflowID).Return(&ledger.Outflow{
			ID:        outflowID,
			Amount:    60_000,
			ExpenseNo: expenseNo,
		}, nil)
		repo.EXPECT().BeginReconcile(gomock.Any(), expenseNo).Return(tx, nil)
		tx.EXPECT().Outflow(gomock.Any(), outflowID).Return(&ledger.Outflow{
			ID:        outflowID,
			Amount:    60_000,
			ExpenseNo: expenseNo,
		}, nil)
		tx.EXPECT().DeleteOutflow(gomock.Any(), outflowID).Return(nil)
		tx.EXPECT().
			UpdateExpensePayment(gomock.Any(), int64(40_000), expense.StatusPartiallyPaid).
			Return(nil)
		tx.EXPECT().Commit().Return(nil)

		require.NoError(t, svc.DeletePayment(context.Background(), outflowID))
	})

	// The routing read can be stale by the time the lock is taken; the
	// reversal must subtract the amount the locked row actually carries.
	t.Run("ConcurrentEditReversesLockedAmount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := expense.NewMockRepository(ctrl)
		svc := expense.NewService(repo)

		tx := newReconcileTx(ctrl, lockedExpense(expenseNo, 70_000, 100_000))

		repo.EXPECT().GetOutflow(gomock.Any(), outflowID).Return(&ledger.Outflow{
			ID:        outflowID,
			Amount:    60_000,
			ExpenseNo: expenseNo,
		}, nil)
		repo.EXPECT().BeginReconcile(gomock.Any(), expenseNo).Return(tx, nil)
		tx.EXPECT().Outflow(gomock.Any(), outflowID).Return(&ledger.Outflow{
			ID:        outflowID,
			Amount:    30_000,
			ExpenseNo: expenseNo,
		}, nil)
		tx.EXPECT().DeleteOutflow(gomock.Any(), outflowID).Return(nil)
		tx.EXPECT().
			UpdateExpensePayment(gomock.Any(), int64(40_000), expense.StatusPartiallyPaid).
			Return(nil)
		tx.EXPECT().Commit().Return(nil)

		require.NoError(t, svc.DeletePayment(context.Background(), outflowID))
	})

	// Removing the only payment drops the expense back to Unpaid; the paid
	// amount is clamped at zero even if an old import left the ledger ahead
	// of the expense.
	t.Run("FullReversalClampsAtZero", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := expense.NewMockRepository(ctrl)
		svc := expense.NewService(repo)

		tx := newReconcileTx(ctrl, lockedExpense(expenseNo, 40_000, 100_000))

		repo.EXPECT().GetOutflow(gomock.Any(), outflowID).Return(&ledger.Outflow{
			ID:        outflowID,
			Amount:    55_000,
			ExpenseNo: expenseNo,
		}, nil)
		repo.EXPECT().BeginReconcile(gomock.Any(), expenseNo).Return(tx, nil)
		tx.EXPECT().Outflow(gomock.Any(), outflowID).Return(&ledger.Outflow{
			ID:        outflowID,
			Amount:    55_000,
			ExpenseNo: expenseNo,
		}, nil)
		tx.EXPECT().DeleteOutflow(gomock.Any(), outflowID).Return(nil)
		tx.EXPECT().
			UpdateExpensePayment(gomock.Any(), int64(0), expense.StatusUnpaid).
			Return(nil)
		tx.EXPECT().Commit().Return(nil)

		require.NoError(t, svc.DeletePayment(context.Background(), outflowID))
	})

	t.Run("DoubleDelete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := expense.NewMockRepository(ctrl)
		svc := expense.NewService(repo)

		repo.EXPECT().GetOutflow(gomock.Any(), outflowID).Return(nil, ledger.ErrNotFound)

		err := svc.DeletePayment(context.Background(), outflowID)
		assert.ErrorIs(t, err, ledger.ErrNotFound)
	})

	t.Run("StandaloneProjectOutflow", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := expense.NewMockRepository(ctrl)
		svc := expense.NewService(repo)

		projectID := uuid.New()

		repo.EXPECT().GetOutflow(gomock.Any(), outflowID).Return(&ledger.Outflow{
			ID:        outflowID,
			ProjectID: &projectID,
			Amount:    5_000,
		}, nil)
		repo.EXPECT().DeleteOutflow(gomock.Any(), outflowID).Return(nil)

		require.NoError(t, svc.DeletePayment(context.Background(), outflowID))
	})

	t.Run("OrphanOutflowRefused", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := expense.NewMockRepository(ctrl)
		svc := expense.NewService(repo)

		repo.EXPECT().GetOutflow(gomock.Any(), outflowID).Return(&ledger.Outflow{
			ID:     outflowID,
			Amount: 5_000,
		}, nil)

		err := svc.DeletePayment(context.Background(), outflowID)
		assert.ErrorIs(t, err, expense.ErrNotAssociated)
	})
}

func TestService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := expense.NewMockRepository(ctrl)
	svc := expense.NewService(repo)

	t.Run("GeneratesExpenseNo", func(t *testing.T) {
		repo.EXPECT().
			CreateExpense(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e *expense.Expense) error {
				assert.Regexp(t, `^EXP-\d{8}-[0-9A-F]{8}$`, e.ExpenseNo)
				assert.Equal(t, expense.StatusUnpaid, e.Status)
				assert.Zero(t, e.PaidAmount)

				e.ID = uuid.New()
				return nil
			})

		got, err := svc.Create(context.Background(), expense.CreateParams{
			VendorID:  uuid.New(),
			ProjectID: uuid.New(),
			ItemID:    uuid.New(),
			Quantity:  500,
			Price:     250_000,
		})
		require.NoError(t, err)
		assert.NotEmpty(t, got.ExpenseNo)
	})

	t.Run("Validation", func(t *testing.T) {
		base := expense.CreateParams{
			VendorID:  uuid.New(),
			ProjectID: uuid.New(),
			ItemID:    uuid.New(),
			Quantity:  1,
			Price:     1_000,
		}

		noVendor := base
		noVendor.VendorID = uuid.Nil

		zeroPrice := base
		zeroPrice.Price = 0

		zeroQty := base
		zeroQty.Quantity = 0

		for _, params := range []expense.CreateParams{noVendor, zeroPrice, zeroQty} {
			_, err := svc.Create(context.Background(), params)
			assert.ErrorIs(t, err, expense.ErrValidation)
		}
	})
}

func TestService_Update(t *testing.T) {
	const expenseNo = "EXP-20240310-AB12CD34"

	id := uuid.New()

	expenseWith := func(paid, price int64) *expense.Expense {
		e := lockedExpense(expenseNo, paid, price)
		e.ID = id

		return e
	}

	params := func(price int64) expense.CreateParams {
		return expense.CreateParams{
			VendorID:  uuid.New(),
			ProjectID: uuid.New(),
			ItemID:    uuid.New(),
			Quantity:  100,
			Price:     price,
		}
	}

	t.Run("PriceBelowPaidRejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := expense.NewMockRepository(ctrl)
		svc := expense.NewService(repo)

		existing := expenseWith(60_000, 100_000)
		tx := newReconcileTx(ctrl, existing)

		repo.EXPECT().GetExpense(gomock.Any(), id).Return(existing, nil)
		repo.EXPECT().BeginReconcile(gomock.Any(), expenseNo).Return(tx, nil)

		_, err := svc.Update(context.Background(), id, params(50_000))
		assert.ErrorIs(t, err, expense.ErrInvalidAmount)
	})

	t.Run("PriceCutReDerivesStatus", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := expense.NewMockRepository(ctrl)
		svc := expense.NewService(repo)

		existing := expenseWith(60_000, 100_000)
		tx := newReconcileTx(ctrl, existing)

		repo.EXPECT().GetExpense(gomock.Any(), id).Return(existing, nil)
		repo.EXPECT().BeginReconcile(gomock.Any(), expenseNo).Return(tx, nil)
		tx.EXPECT().
			UpdateExpense(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e *expense.Expense) error {
				assert.Equal(t, expense.StatusPaid, e.Status)
				assert.Equal(t, int64(60_000), e.PaidAmount)
				return nil
			})
		tx.EXPECT().Commit().Return(nil)

		got, err := svc.Update(context.Background(), id, params(60_000))
		require.NoError(t, err)
		assert.Equal(t, expense.StatusPaid, got.Status)
	})

	// A payment can commit between the plain read and the lock. The status
	// written by the edit must be derived from the locked row's paid amount,
	// otherwise the edit would stamp Unpaid over a fully settled expense.
	t.Run("PaymentLandingMidEditSurvives", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := expense.NewMockRepository(ctrl)
		svc := expense.NewService(repo)

		stale := expenseWith(0, 100_000)
		settled := expenseWith(100_000, 100_000)
		tx := newReconcileTx(ctrl, settled)

		repo.EXPECT().GetExpense(gomock.Any(), id).Return(stale, nil)
		repo.EXPECT().BeginReconcile(gomock.Any(), expenseNo).Return(tx, nil)
		tx.EXPECT().
			UpdateExpense(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e *expense.Expense) error {
				assert.Equal(t, int64(100_000), e.PaidAmount)
				assert.Equal(t, expense.StatusPaid, e.Status)
				return nil
			})
		tx.EXPECT().Commit().Return(nil)

		got, err := svc.Update(context.Background(), id, params(100_000))
		require.NoError(t, err)
		assert.Equal(t, expense.StatusPaid, got.Status)
	})
}

func TestService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := expense.NewMockRepository(ctrl)
	svc := expense.NewService(repo)

	id := uuid.New()

	repo.EXPECT().DeleteExpense(gomock.Any(), id).Return(expense.ErrHasPayments)
	assert.ErrorIs(t, svc.Delete(context.Background(), id), expense.ErrHasPayments)
}
