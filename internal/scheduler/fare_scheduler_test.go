package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aqua_distribution/internal/lifecycle"
	"aqua_distribution/internal/models"
	"aqua_distribution/internal/store/memory"
)

var transition = time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)

func newSweepFixture(now time.Time) (*FareTransitionScheduler, *memory.FareStore) {
	st := memory.NewFareStore()
	return New(st, lifecycle.FixedClock{T: now}, transition, time.Hour), st
}

func seedFare(t *testing.T, st *memory.FareStore, org, code, status string, effective time.Time) *models.Fare {
	t.Helper()
	fare, err := st.Save(context.Background(), &models.Fare{
		OrganizationID: org,
		Code:           code,
		Status:         status,
		EffectiveDate:  effective,
	})
	require.NoError(t, err)
	return fare
}

func TestSweepActivatesDueFare(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	sched, st := newSweepFixture(now)
	ctx := context.Background()

	due := seedFare(t, st, "org-1", "TAR001", models.StatusInactive, now)
	future := seedFare(t, st, "org-1", "TAR002", models.StatusInactive, now.AddDate(0, 1, 0))

	require.True(t, sched.RunNow(ctx))

	stored, _ := st.FindByID(ctx, due.ID)
	assert.Equal(t, models.StatusActive, stored.Status)
	stored, _ = st.FindByID(ctx, future.ID)
	assert.Equal(t, models.StatusInactive, stored.Status)
}

func TestSweepActivationEnforcesExclusivity(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	sched, st := newSweepFixture(now)
	ctx := context.Background()

	incumbent := seedFare(t, st, "org-1", "TAR001", models.StatusActive, now)
	challenger := seedFare(t, st, "org-1", "TAR002", models.StatusInactive, now)

	require.True(t, sched.RunNow(ctx))

	active, err := st.FindByOrganizationAndStatus(ctx, "org-1", models.StatusActive)
	require.NoError(t, err)
	require.Len(t, active, 1, "at most one fare per organization may stay active")
	assert.Equal(t, challenger.ID, active[0].ID)

	stored, _ := st.FindByID(ctx, incumbent.ID)
	assert.Equal(t, models.StatusInactive, stored.Status)
}

func TestSweepExpiresPastFares(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	sched, st := newSweepFixture(now)
	ctx := context.Background()

	expired := seedFare(t, st, "org-1", "TAR001", models.StatusActive, now.AddDate(0, 0, -1))
	current := seedFare(t, st, "org-2", "TAR002", models.StatusActive, now)

	require.True(t, sched.RunNow(ctx))

	stored, _ := st.FindByID(ctx, expired.ID)
	assert.Equal(t, models.StatusInactive, stored.Status)
	stored, _ = st.FindByID(ctx, current.ID)
	assert.Equal(t, models.StatusActive, stored.Status, "a fare effective exactly now stays active")
}

func TestSweepSupersedesPreTransitionFares(t *testing.T) {
	now := transition.AddDate(0, 1, 0)
	sched, st := newSweepFixture(now)
	ctx := context.Background()

	old := seedFare(t, st, "org-1", "TAR001", models.StatusActive, transition.AddDate(0, -1, 0))

	require.True(t, sched.RunNow(ctx))

	stored, _ := st.FindByID(ctx, old.ID)
	assert.Equal(t, models.StatusInactive, stored.Status)
}

func TestSweepSkipsWhileTransitionDateNotReached(t *testing.T) {
	now := transition.AddDate(0, -1, 0)
	sched, st := newSweepFixture(now)
	ctx := context.Background()

	fare := seedFare(t, st, "org-1", "TAR001", models.StatusActive, now)

	require.True(t, sched.RunNow(ctx))

	stored, _ := st.FindByID(ctx, fare.ID)
	assert.Equal(t, models.StatusActive, stored.Status)
}

func TestSweepIsIdempotent(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	sched, st := newSweepFixture(now)
	ctx := context.Background()

	seedFare(t, st, "org-1", "TAR001", models.StatusInactive, now)
	seedFare(t, st, "org-2", "TAR002", models.StatusInactive, now.AddDate(0, 1, 0))

	require.True(t, sched.RunNow(ctx))
	first, err := st.FindAll(ctx)
	require.NoError(t, err)

	require.True(t, sched.RunNow(ctx))
	second, err := st.FindAll(ctx)
	require.NoError(t, err)

	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i].Status, second[i].Status, "fare %s changed on a repeated sweep", first[i].Code)
	}
}

func TestRunNowReleasesOverlapGuard(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	sched, _ := newSweepFixture(now)
	ctx := context.Background()

	assert.True(t, sched.RunNow(ctx))
	assert.True(t, sched.RunNow(ctx), "guard must release after a completed sweep")
}

func TestStartRunsImmediateSweepAndStops(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	sched, st := newSweepFixture(now)
	ctx := context.Background()

	due := seedFare(t, st, "org-1", "TAR001", models.StatusInactive, now)

	sched.Start()
	assert.Eventually(t, func() bool {
		stored, _ := st.FindByID(ctx, due.ID)
		return stored.Status == models.StatusActive
	}, time.Second, 10*time.Millisecond)
	sched.Stop()
}
