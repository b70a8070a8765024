package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aqua_distribution/internal/apperrors"
	"aqua_distribution/internal/lifecycle"
	"aqua_distribution/internal/models"
	"aqua_distribution/internal/store/memory"
)

var testTransition = time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)

func newFareFixture(now time.Time) (*FareService, *memory.FareStore) {
	st := memory.NewFareStore()
	svc := NewFareService(st, lifecycle.FixedClock{T: now}, FareSettings{
		TransitionDate:      testTransition,
		MonthlyAmountBefore: decimal.RequireFromString("15.00"),
		MonthlyAmountAfter:  decimal.RequireFromString("20.00"),
	}, nil)
	return svc, st
}

func TestFareCreateAssignsFirstCode(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	svc, _ := newFareFixture(now)

	fare, err := svc.Create(context.Background(), FareInput{
		OrganizationID: "org-1",
		FareName:       "Standard weekly",
		FareType:       models.FareTypeWeekly,
		FareAmount:     decimal.RequireFromString("5.00"),
		EffectiveDate:  "2025-07-01",
	})
	require.NoError(t, err)
	assert.Equal(t, "TAR001", fare.Code)
	assert.Equal(t, models.StatusActive, fare.Status)
}

func TestFareCreateIncrementsHighestCode(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	svc, st := newFareFixture(now)

	_, err := st.Save(context.Background(), &models.Fare{
		OrganizationID: "org-1",
		Code:           "TAR005",
		Status:         models.StatusInactive,
	})
	require.NoError(t, err)

	fare, err := svc.Create(context.Background(), FareInput{OrganizationID: "org-1"})
	require.NoError(t, err)
	assert.Equal(t, "TAR006", fare.Code)
}

func TestFareCreatePastEffectiveDateIsInactive(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	svc, _ := newFareFixture(now)

	fare, err := svc.Create(context.Background(), FareInput{
		OrganizationID: "org-1",
		EffectiveDate:  "2025-01-01",
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusInactive, fare.Status)
}

func TestFareCreateDefaultsEffectiveDateToTransition(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	svc, _ := newFareFixture(now)

	fare, err := svc.Create(context.Background(), FareInput{OrganizationID: "org-1"})
	require.NoError(t, err)
	assert.True(t, fare.EffectiveDate.Equal(testTransition))
	assert.Equal(t, models.StatusActive, fare.Status)
}

func TestFareCreateRejectsMalformedEffectiveDate(t *testing.T) {
	svc, _ := newFareFixture(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))

	_, err := svc.Create(context.Background(), FareInput{
		OrganizationID: "org-1",
		EffectiveDate:  "01/06/2025",
	})
	assert.True(t, apperrors.IsValidation(err))
}

func TestFareCreateMonthlyPricingEpoch(t *testing.T) {
	t.Run("before transition", func(t *testing.T) {
		svc, _ := newFareFixture(testTransition.AddDate(0, -1, 0))
		fare, err := svc.Create(context.Background(), FareInput{
			OrganizationID: "org-1",
			FareType:       models.FareTypeMonthly,
			FareAmount:     decimal.RequireFromString("99.00"),
		})
		require.NoError(t, err)
		assert.True(t, fare.FareAmount.Equal(decimal.RequireFromString("15.00")),
			"got %s", fare.FareAmount)
	})

	t.Run("after transition", func(t *testing.T) {
		svc, _ := newFareFixture(testTransition.AddDate(0, 1, 0))
		fare, err := svc.Create(context.Background(), FareInput{
			OrganizationID: "org-1",
			FareType:       models.FareTypeMonthly,
			FareAmount:     decimal.RequireFromString("99.00"),
		})
		require.NoError(t, err)
		assert.True(t, fare.FareAmount.Equal(decimal.RequireFromString("20.00")),
			"got %s", fare.FareAmount)
	})

	t.Run("non-monthly keeps requested amount", func(t *testing.T) {
		svc, _ := newFareFixture(testTransition.AddDate(0, 1, 0))
		fare, err := svc.Create(context.Background(), FareInput{
			OrganizationID: "org-1",
			FareType:       models.FareTypeAnnual,
			FareAmount:     decimal.RequireFromString("99.00"),
		})
		require.NoError(t, err)
		assert.True(t, fare.FareAmount.Equal(decimal.RequireFromString("99.00")))
	})
}

func TestFareCreateDeactivatesOtherActiveFares(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	svc, st := newFareFixture(now)
	ctx := context.Background()

	first, err := svc.Create(ctx, FareInput{OrganizationID: "org-1", EffectiveDate: "2025-07-01"})
	require.NoError(t, err)
	otherOrg, err := svc.Create(ctx, FareInput{OrganizationID: "org-2", EffectiveDate: "2025-07-01"})
	require.NoError(t, err)

	second, err := svc.Create(ctx, FareInput{OrganizationID: "org-1", EffectiveDate: "2025-08-01"})
	require.NoError(t, err)
	assert.Equal(t, models.StatusActive, second.Status)

	stored, err := st.FindByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusInactive, stored.Status, "older fare of same organization must be superseded")

	untouched, err := st.FindByID(ctx, otherOrg.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusActive, untouched.Status, "other organizations are unaffected")
}

func TestFareUpdatePreservesCodeAndCreatedAt(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	svc, _ := newFareFixture(now)
	ctx := context.Background()

	created, err := svc.Create(ctx, FareInput{OrganizationID: "org-1", EffectiveDate: "2025-07-01"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, FareInput{
		OrganizationID: "org-1",
		FareName:       "renamed",
		EffectiveDate:  "2025-01-01",
	})
	require.NoError(t, err)
	assert.Equal(t, created.Code, updated.Code)
	assert.True(t, updated.CreatedAt.Equal(created.CreatedAt))
	assert.Equal(t, "renamed", updated.FareName)
	assert.Equal(t, models.StatusInactive, updated.Status, "status re-derived from the new effective date")
}

func TestFareUpdateKeepsStoredEffectiveDateWhenOmitted(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	svc, _ := newFareFixture(now)
	ctx := context.Background()

	created, err := svc.Create(ctx, FareInput{OrganizationID: "org-1", EffectiveDate: "2025-07-01"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, FareInput{OrganizationID: "org-1"})
	require.NoError(t, err)
	assert.True(t, updated.EffectiveDate.Equal(created.EffectiveDate))
}

func TestFareActivateConflictsWhenAlreadyActive(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	svc, _ := newFareFixture(now)
	ctx := context.Background()

	created, err := svc.Create(ctx, FareInput{OrganizationID: "org-1", EffectiveDate: "2025-07-01"})
	require.NoError(t, err)
	require.Equal(t, models.StatusActive, created.Status)

	_, err = svc.Activate(ctx, created.ID)
	assert.True(t, apperrors.IsConflict(err))
}

func TestFareDeactivateConflictsWhenAlreadyInactive(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	svc, _ := newFareFixture(now)
	ctx := context.Background()

	created, err := svc.Create(ctx, FareInput{OrganizationID: "org-1", EffectiveDate: "2025-01-01"})
	require.NoError(t, err)
	require.Equal(t, models.StatusInactive, created.Status)

	_, err = svc.Deactivate(ctx, created.ID)
	assert.True(t, apperrors.IsConflict(err))
}

func TestFareActivateEnforcesExclusivity(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	svc, st := newFareFixture(now)
	ctx := context.Background()

	active, err := svc.Create(ctx, FareInput{OrganizationID: "org-1", EffectiveDate: "2025-07-01"})
	require.NoError(t, err)
	dormant, err := svc.Create(ctx, FareInput{OrganizationID: "org-1", EffectiveDate: "2025-01-01"})
	require.NoError(t, err)
	require.Equal(t, models.StatusInactive, dormant.Status)

	activated, err := svc.Activate(ctx, dormant.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusActive, activated.Status)

	stored, err := st.FindByID(ctx, active.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusInactive, stored.Status)
}

func TestFareStatusChangeUnknownIDIsNotFound(t *testing.T) {
	svc, _ := newFareFixture(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))

	_, err := svc.Activate(context.Background(), 42)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestFareDelete(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	svc, st := newFareFixture(now)
	ctx := context.Background()

	created, err := svc.Create(ctx, FareInput{OrganizationID: "org-1"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	stored, err := st.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, stored)

	err = svc.Delete(ctx, created.ID)
	assert.True(t, apperrors.IsNotFound(err))
}
