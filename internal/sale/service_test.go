package sale_test

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
	"github.com/rhasan/estatedesk/internal/sale"
)

func validParams() sale.CreateParams {
	return sale.CreateParams{
		ProjectID:  uuid.New(),
		FlatID:     uuid.New(),
		CustomerID: uuid.New(),
		BasePrice:  5_000_000,
		SaleDate:   time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
	}
}

func TestTotal(t *testing.T) {
	extras := []sale.ExtraCost{
		{Purpose: "Interior", Amount: 300_000},
	}

	got := sale.Total(5_000_000, 200_000, 150_000, extras)
	assert.Equal(t, int64(5_650_000), got)

	assert.Equal(t, int64(1_000), sale.Total(1_000, 0, 0, nil))
}

func TestService_Create(t *testing.T) {
	saleDate := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("DerivesTotalAndSeedsBooking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := sale.NewMockRepository(ctrl)
		svc := sale.NewService(repo)

		params := validParams()
		params.ParkingCharge = 200_000
		params.UtilityCharge = 150_000
		params.ExtraCosts = []sale.ExtraCost{{Purpose: "Interior", Amount: 300_000}}
		params.Downpayment = 1_000_000

		repo.EXPECT().
			CreateSale(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, s *sale.Sale, booking *ledger.Inflow) error {
				assert.Equal(t, int64(5_650_000), s.TotalPrice)

				require.NotNil(t, booking)
				assert.Equal(t, int64(1_000_000), booking.Amount)
				assert.Equal(t, ledger.PaymentTypeBooking, booking.PaymentType)
				assert.Equal(t, saleDate, booking.Date)
				assert.Equal(t, params.FlatID, booking.FlatID)

				s.ID = uuid.New()
				s.CreatedAt = time.Now()
				return nil
			})

		got, err := svc.Create(context.Background(), params)
		require.NoError(t, err)
		assert.Equal(t, int64(5_650_000), got.TotalPrice)
		assert.NotEmpty(t, got.ID)
	})

	t.Run("NoDownpaymentNoBooking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := sale.NewMockRepository(ctrl)
		svc := sale.NewService(repo)

		repo.EXPECT().
			CreateSale(gomock.Any(), gomock.Any(), gomock.Nil()).
			Return(nil)

		got, err := svc.Create(context.Background(), validParams())
		require.NoError(t, err)
		assert.Equal(t, int64(5_000_000), got.TotalPrice)
	})

	t.Run("FlatUnavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := sale.NewMockRepository(ctrl)
		svc := sale.NewService(repo)

		repo.EXPECT().
			CreateSale(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(sale.ErrFlatUnavailable)

		_, err := svc.Create(context.Background(), validParams())
		assert.ErrorIs(t, err, sale.ErrFlatUnavailable)
	})

	t.Run("Validation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := sale.NewMockRepository(ctrl)
		svc := sale.NewService(repo)

		cases := []struct {
			name   string
			mutate func(*sale.CreateParams)
		}{
			{"ZeroBasePrice", func(p *sale.CreateParams) { p.BasePrice = 0 }},
			{"NegativeBasePrice", func(p *sale.CreateParams) { p.BasePrice = -1 }},
			{"MissingFlat", func(p *sale.CreateParams) { p.FlatID = uuid.Nil }},
			{"MissingCustomer", func(p *sale.CreateParams) { p.CustomerID = uuid.Nil }},
			{"NegativeParking", func(p *sale.CreateParams) { p.ParkingCharge = -5 }},
			{"ExtraCostNoPurpose", func(p *sale.CreateParams) {
				p.ExtraCosts = []sale.ExtraCost{{Amount: 10}}
			}},
			{"NegativeExtraCost", func(p *sale.CreateParams) {
				p.ExtraCosts = []sale.ExtraCost{{Purpose: "Interior", Amount: -10}}
			}},
			{"BadDeedLink", func(p *sale.CreateParams) { p.DeedLink = "not a url" }},
			{"DeedLinkWrongScheme", func(p *sale.CreateParams) { p.DeedLink = "ftp://deeds/1" }},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				params := validParams()
				tc.mutate(&params)

				_, err := svc.Create(context.Background(), params)
				assert.ErrorIs(t, err, sale.ErrValidation)
			})
		}
	})
}

func TestService_Update(t *testing.T) {
	saleID := uuid.New()
	oldFlatID := uuid.New()

	existing := &sale.Sale{
		ID:         saleID,
		ProjectID:  uuid.New(),
		FlatID:     oldFlatID,
		CustomerID: uuid.New(),
		BasePrice:  4_000_000,
		TotalPrice: 4_000_000,
		SaleDate:   time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		CreatedAt:  time.Now(),
	}

	t.Run("SameFlatRecomputesTotal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := sale.NewMockRepository(ctrl)
		svc := sale.NewService(repo)

		params := sale.CreateParams{
			ProjectID:     existing.ProjectID,
			FlatID:        oldFlatID,
			CustomerID:    existing.CustomerID,
			BasePrice:     4_000_000,
			ParkingCharge: 250_000,
		}

		repo.EXPECT().GetSale(gomock.Any(), saleID).Return(existing, nil)
		repo.EXPECT().
			UpdateSale(gomock.Any(), gomock.Any(), oldFlatID).
			DoAndReturn(func(_ context.Context, s *sale.Sale, _ uuid.UUID) error {
				assert.Equal(t, int64(4_250_000), s.TotalPrice)
				assert.Equal(t, oldFlatID, s.FlatID)
				return nil
			})

		got, err := svc.Update(context.Background(), saleID, params)
		require.NoError(t, err)
		assert.Equal(t, int64(4_250_000), got.TotalPrice)
	})

	t.Run("FlatReassignmentPassesPreviousFlat", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := sale.NewMockRepository(ctrl)
		svc := sale.NewService(repo)

		newFlatID := uuid.New()
		params := sale.CreateParams{
			ProjectID:  existing.ProjectID,
			FlatID:     newFlatID,
			CustomerID: existing.CustomerID,
			BasePrice:  4_000_000,
		}

		repo.EXPECT().GetSale(gomock.Any(), saleID).Return(existing, nil)
		repo.EXPECT().
			UpdateSale(gomock.Any(), gomock.Any(), oldFlatID).
			DoAndReturn(func(_ context.Context, s *sale.Sale, prev uuid.UUID) error {
				assert.Equal(t, newFlatID, s.FlatID)
				assert.Equal(t, oldFlatID, prev)
				return nil
			})

		_, err := svc.Update(context.Background(), saleID, params)
		require.NoError(t, err)
	})

	t.Run("NotFound", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := sale.NewMockRepository(ctrl)
		svc := sale.NewService(repo)

		repo.EXPECT().GetSale(gomock.Any(), saleID).Return(nil, sale.ErrNotFound)

		params := sale.CreateParams{
			ProjectID:  uuid.New(),
			FlatID:     uuid.New(),
			CustomerID: uuid.New(),
			BasePrice:  1,
		}

		_, err := svc.Update(context.Background(), saleID, params)
		assert.ErrorIs(t, err, sale.ErrNotFound)
	})

	// Editing a sale must not touch inflow transactions recorded for the
	// original booking; the only repository calls allowed are GetSale and
	// UpdateSale. The strict mock controller fails on anything else.
	t.Run("DoesNotTouchInflows", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := sale.NewMockRepository(ctrl)
		svc := sale.NewService(repo)

		params := sale.CreateParams{
			ProjectID:   existing.ProjectID,
			FlatID:      uuid.New(),
			CustomerID:  existing.CustomerID,
			BasePrice:   4_000_000,
			Downpayment: 500_000,
		}

		repo.EXPECT().GetSale(gomock.Any(), saleID).Return(existing, nil)
		repo.EXPECT().UpdateSale(gomock.Any(), gomock.Any(), oldFlatID).Return(nil)

		_, err := svc.Update(context.Background(), saleID, params)
		require.NoError(t, err)
	})
}

func TestService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := sale.NewMockRepository(ctrl)
	svc := sale.NewService(repo)

	id := uuid.New()
	repo.EXPECT().DeleteSale(gomock.Any(), id).Return(nil)

	require.NoError(t, svc.Delete(context.Background(), id))

	repo.EXPECT().DeleteSale(gomock.Any(), id).Return(errors.New("db error"))
	assert.Error(t, svc.Delete(context.Background(), id))
}
