package project_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/rhasan/estatedesk/internal/project"
)

func TestService_Create(t *testing.T) {
	validParams := func() project.CreateParams {
		return project.CreateParams{
			ProjectName:     "Lake View Residency",
			Location:        "Uttara, Dhaka",
			TotalFlats:      24,
			DeveloperShare:  60,
			LandownerShare:  40,
			StartDate:       time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
			Status:          project.StatusOngoing,
			EstimatedBudget: 120_000_000,
			TargetSell:      180_000_000,
		}
	}

	t.Run("Success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := project.NewMockRepository(ctrl)
		repo.EXPECT().
			CreateProject(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p *project.Project) error {
				p.ID = uuid.New()
				return nil
			})

		svc := project.NewService(repo)
		p, err := svc.Create(context.Background(), validParams())

		require.NoError(t, err)
		assert.NotEmpty(t, p.ID)
		assert.Equal(t, project.StatusOngoing, p.Status)
	})

	t.Run("DefaultsToPlanning", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := project.NewMockRepository(ctrl)
		repo.EXPECT().
			CreateProject(gomock.Any(), gomock.Any()).
			Return(nil)

		params := validParams()
		params.Status = ""

		svc := project.NewService(repo)
		p, err := svc.Create(context.Background(), params)

		require.NoError(t, err)
		assert.Equal(t, project.StatusPlanning, p.Status)
	})

	t.Run("Validation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := project.NewService(project.NewMockRepository(ctrl))

		tests := []struct {
			name   string
			mutate func(*project.CreateParams)
		}{
			{"EmptyName", func(p *project.CreateParams) { p.ProjectName = "" }},
			{"ZeroFlats", func(p *project.CreateParams) { p.TotalFlats = 0 }},
			{"SharesUnder100", func(p *project.CreateParams) { p.DeveloperShare = 50; p.LandownerShare = 40 }},
			{"SharesOver100", func(p *project.CreateParams) { p.DeveloperShare = 70; p.LandownerShare = 40 }},
			{"UnknownStatus", func(p *project.CreateParams) { p.Status = "Abandoned" }},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				params := validParams()
				tt.mutate(&params)

				_, err := svc.Create(context.Background(), params)
				assert.ErrorIs(t, err, project.ErrValidation)
			})
		}
	})
}

func TestService_AddFlat(t *testing.T) {
	t.Run("StartsAvailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := project.NewMockRepository(ctrl)
		repo.EXPECT().
			CreateFlat(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, f *project.Flat) error {
				f.ID = uuid.New()
				return nil
			})

		svc := project.NewService(repo)
		f, err := svc.AddFlat(context.Background(), project.FlatParams{
			ProjectID:  uuid.New(),
			FlatNumber: "A-3",
			FlatSize:   1250,
		})

		require.NoError(t, err)
		assert.Equal(t, project.FlatAvailable, f.Status)
		assert.Equal(t, project.OwnershipDeveloper, f.Ownership)
	})

	t.Run("RejectsUnknownOwnership", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := project.NewService(project.NewMockRepository(ctrl))

		_, err := svc.AddFlat(context.Background(), project.FlatParams{
			ProjectID:  uuid.New(),
			FlatNumber: "B-1",
			Ownership:  "Bank",
		})
		assert.ErrorIs(t, err, project.ErrValidation)
	})

	t.Run("RequiresFlatNumber", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := project.NewService(project.NewMockRepository(ctrl))

		_, err := svc.AddFlat(context.Background(), project.FlatParams{ProjectID: uuid.New()})
		assert.ErrorIs(t, err, project.ErrValidation)
	})
}

func TestService_ReserveFlat(t *testing.T) {
	t.Run("AvailableToReserved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		id := uuid.New()

		repo := project.NewMockRepository(ctrl)
		repo.EXPECT().
			SwapFlatStatus(gomock.Any(), id, project.FlatAvailable, project.FlatReserved).
			Return(nil)

		svc := project.NewService(repo)
		require.NoError(t, svc.ReserveFlat(context.Background(), id))
	})

	t.Run("LosesRaceToConcurrentSale", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		id := uuid.New()

		repo := project.NewMockRepository(ctrl)
		repo.EXPECT().
			SwapFlatStatus(gomock.Any(), id, project.FlatAvailable, project.FlatReserved).
			Return(project.ErrFlatConflict)

		svc := project.NewService(repo)
		err := svc.ReserveFlat(context.Background(), id)
		assert.ErrorIs(t, err, project.ErrFlatConflict)
	})
}

func TestService_ReleaseFlat(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()

	repo := project.NewMockRepository(ctrl)
	repo.EXPECT().
		SwapFlatStatus(gomock.Any(), id, project.FlatReserved, project.FlatAvailable).
		Return(nil)

	svc := project.NewService(repo)
	require.NoError(t, svc.ReleaseFlat(context.Background(), id))
}
