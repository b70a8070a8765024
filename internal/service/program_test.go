package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aqua_distribution/internal/apperrors"
	"aqua_distribution/internal/models"
	"aqua_distribution/internal/store/memory"
)

func newProgramFixture() (*ProgramService, *memory.ProgramStore) {
	st := memory.NewProgramStore()
	return NewProgramService(st, nil), st
}

func TestProgramCreateStartsPlanned(t *testing.T) {
	svc, _ := newProgramFixture()

	program, err := svc.Create(context.Background(), ProgramInput{
		OrganizationID: "org-1",
		ProgramDate:    "2025-06-10",
	})
	require.NoError(t, err)
	assert.Equal(t, "PRG001", program.Code)
	assert.Equal(t, models.StatusPlanned, program.Status)
}

func TestProgramCreateWithActualTimesStartsInProgress(t *testing.T) {
	svc, _ := newProgramFixture()

	program, err := svc.Create(context.Background(), ProgramInput{
		OrganizationID:  "org-1",
		ProgramDate:     "2025-06-10",
		ActualStartTime: "08:15",
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusInProgress, program.Status)
}

func TestProgramCreateRejectsMalformedDate(t *testing.T) {
	svc, _ := newProgramFixture()

	_, err := svc.Create(context.Background(), ProgramInput{
		OrganizationID: "org-1",
		ProgramDate:    "10-06-2025",
	})
	assert.True(t, apperrors.IsValidation(err))
}

func TestProgramUpdatePreservesCodeStatusAndActualTimes(t *testing.T) {
	svc, _ := newProgramFixture()
	ctx := context.Background()

	created, err := svc.Create(ctx, ProgramInput{
		OrganizationID:  "org-1",
		ProgramDate:     "2025-06-10",
		ActualStartTime: "08:15",
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, ProgramInput{
		OrganizationID:  "org-1",
		ProgramDate:     "2025-06-11",
		Observations:    "rescheduled",
		ActualStartTime: "09:00", // ignored, the reporting flow owns this
	})
	require.NoError(t, err)
	assert.Equal(t, created.Code, updated.Code)
	assert.Equal(t, created.Status, updated.Status)
	assert.Equal(t, "08:15", updated.ActualStartTime)
	assert.Equal(t, "rescheduled", updated.Observations)
	assert.True(t, updated.CreatedAt.Equal(created.CreatedAt))
}

func TestProgramActivateIsIdempotent(t *testing.T) {
	svc, _ := newProgramFixture()
	ctx := context.Background()

	created, err := svc.Create(ctx, ProgramInput{OrganizationID: "org-1", ProgramDate: "2025-06-10"})
	require.NoError(t, err)

	first, err := svc.Activate(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusActive, first.Status)

	second, err := svc.Activate(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusActive, second.Status)
}

func TestProgramDeleteIsUnconditional(t *testing.T) {
	svc, _ := newProgramFixture()

	assert.NoError(t, svc.Delete(context.Background(), 999))
}

func TestProgramGetUnknownIDIsNotFound(t *testing.T) {
	svc, _ := newProgramFixture()

	_, err := svc.GetByID(context.Background(), 1)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestProgramListByOrganization(t *testing.T) {
	svc, _ := newProgramFixture()
	ctx := context.Background()

	_, err := svc.Create(ctx, ProgramInput{OrganizationID: "org-1", ProgramDate: "2025-06-10"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, ProgramInput{OrganizationID: "org-2", ProgramDate: "2025-06-10"})
	require.NoError(t, err)

	programs, err := svc.ListByOrganization(ctx, "org-1")
	require.NoError(t, err)
	require.Len(t, programs, 1)
	assert.Equal(t, "org-1", programs[0].OrganizationID)
}
