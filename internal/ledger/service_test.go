package ledger_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/rhasan/estatedesk/internal/ledger"
)

func TestService_RecordInflow(t *testing.T) {
	validParams := func() ledger.InflowParams {
		return ledger.InflowParams{
			ProjectID:     uuid.New(),
			FlatID:        uuid.New(),
			CustomerID:    uuid.New(),
			Amount:        250_000,
			Date:          time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
			PaymentType:   ledger.PaymentTypeInstallment,
			PaymentMethod: "Bank Transfer",
			ReceiptNo:     "RCV-1042",
		}
	}

	t.Run("Success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := ledger.NewMockRepository(ctrl)
		repo.EXPECT().
			CreateInflow(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in *ledger.Inflow) error {
				in.ID = uuid.New()
				in.CreatedAt = time.Now()
				return nil
			})

		svc := ledger.NewService(repo)
		in, err := svc.RecordInflow(context.Background(), validParams())

		require.NoError(t, err)
		assert.NotEmpty(t, in.ID)
		assert.Equal(t, int64(250_000), in.Amount)
		assert.Equal(t, ledger.PaymentTypeInstallment, in.PaymentType)
	})

	t.Run("DefaultsToInstallment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := ledger.NewMockRepository(ctrl)
		repo.EXPECT().
			CreateInflow(gomock.Any(), gomock.Any()).
			Return(nil)

		params := validParams()
		params.PaymentType = ""

		svc := ledger.NewService(repo)
		in, err := svc.RecordInflow(context.Background(), params)

		require.NoError(t, err)
		assert.Equal(t, ledger.PaymentTypeInstallment, in.PaymentType)
	})

	t.Run("RejectsNonPositiveAmount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := ledger.NewService(ledger.NewMockRepository(ctrl))

		for _, amount := range []int64{0, -500} {
			params := validParams()
			params.Amount = amount

			_, err := svc.RecordInflow(context.Background(), params)
			assert.ErrorIs(t, err, ledger.ErrValidation)
		}
	})

	t.Run("RequiresProjectFlatCustomer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := ledger.NewService(ledger.NewMockRepository(ctrl))

		mutations := []func(*ledger.InflowParams){
			func(p *ledger.InflowParams) { p.ProjectID = uuid.Nil },
			func(p *ledger.InflowParams) { p.FlatID = uuid.Nil },
			func(p *ledger.InflowParams) { p.CustomerID = uuid.Nil },
		}
		for _, mutate := range mutations {
			params := validParams()
			mutate(&params)

			_, err := svc.RecordInflow(context.Background(), params)
			assert.ErrorIs(t, err, ledger.ErrValidation)
		}
	})

	t.Run("RepoError", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := ledger.NewMockRepository(ctrl)
		repo.EXPECT().
			CreateInflow(gomock.Any(), gomock.Any()).
			Return(errors.New("db error"))

		svc := ledger.NewService(repo)
		in, err := svc.RecordInflow(context.Background(), validParams())

		assert.Error(t, err)
		assert.Nil(t, in)
	})
}

func TestService_RecordOutflow(t *testing.T) {
	t.Run("StandaloneSiteCost", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		projectID := uuid.New()

		repo := ledger.NewMockRepository(ctrl)
		repo.EXPECT().
			CreateOutflow(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, out *ledger.Outflow) error {
				out.ID = uuid.New()
				return nil
			})

		svc := ledger.NewService(repo)
		out, err := svc.RecordOutflow(context.Background(), ledger.OutflowParams{
			ProjectID:     &projectID,
			Amount:        80_000,
			Date:          time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC),
			Category:      "Site Maintenance",
			Vendor:        "Karim Traders",
			PaymentMethod: "Cash",
		})

		require.NoError(t, err)
		assert.False(t, out.Linked())
		assert.Equal(t, "Karim Traders", out.SupplierVendor)
	})

	t.Run("OfficeCostWithoutProject", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := ledger.NewMockRepository(ctrl)
		repo.EXPECT().
			CreateOutflow(gomock.Any(), gomock.Any()).
			Return(nil)

		svc := ledger.NewService(repo)
		out, err := svc.RecordOutflow(context.Background(), ledger.OutflowParams{
			Amount:   25_000,
			Category: "Office Rent",
		})

		require.NoError(t, err)
		assert.Nil(t, out.ProjectID)
	})

	t.Run("RejectsNonPositiveAmount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := ledger.NewService(ledger.NewMockRepository(ctrl))

		_, err := svc.RecordOutflow(context.Background(), ledger.OutflowParams{Amount: 0})
		assert.ErrorIs(t, err, ledger.ErrValidation)
	})
}

func TestOutflow_Linked(t *testing.T) {
	assert.False(t, (&ledger.Outflow{}).Linked())
	assert.True(t, (&ledger.Outflow{ExpenseNo: "EXP-20240310-1A2B3C4D"}).Linked())
}
