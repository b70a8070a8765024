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

func newRouteFixture() (*RouteService, *memory.RouteStore) {
	st := memory.NewRouteStore()
	return NewRouteService(st, nil), st
}

func TestRouteCreateStartsActive(t *testing.T) {
	svc, _ := newRouteFixture()

	route, err := svc.Create(context.Background(), RouteInput{
		OrganizationID: "org-1",
		RouteName:      "North loop",
		Zones: []RouteZoneInput{
			{ZoneID: "zone-a", Order: 1, EstimatedDuration: 30},
			{ZoneID: "zone-b", Order: 2, EstimatedDuration: 45},
		},
		TotalEstimatedDuration: 75,
	})
	require.NoError(t, err)
	assert.Equal(t, "RUT001", route.Code)
	assert.Equal(t, models.StatusActive, route.Status)
	require.Len(t, route.Zones, 2)
	assert.Equal(t, "zone-a", route.Zones[0].ZoneID)
}

func TestRouteUpdateReplacesZones(t *testing.T) {
	svc, _ := newRouteFixture()
	ctx := context.Background()

	created, err := svc.Create(ctx, RouteInput{
		OrganizationID: "org-1",
		Zones:          []RouteZoneInput{{ZoneID: "zone-a", Order: 1}},
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, RouteInput{
		OrganizationID: "org-1",
		Zones: []RouteZoneInput{
			{ZoneID: "zone-b", Order: 1},
			{ZoneID: "zone-c", Order: 2},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, created.Code, updated.Code)
	require.Len(t, updated.Zones, 2)
	assert.Equal(t, "zone-b", updated.Zones[0].ZoneID)
}

func TestRouteDeactivateThenActivate(t *testing.T) {
	svc, _ := newRouteFixture()
	ctx := context.Background()

	created, err := svc.Create(ctx, RouteInput{OrganizationID: "org-1"})
	require.NoError(t, err)

	deactivated, err := svc.Deactivate(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusInactive, deactivated.Status)

	// Repeating the same transition succeeds silently.
	again, err := svc.Deactivate(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusInactive, again.Status)

	activated, err := svc.Activate(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusActive, activated.Status)
}

func TestRouteDeleteUnknownIDIsNotFound(t *testing.T) {
	svc, _ := newRouteFixture()

	err := svc.Delete(context.Background(), 7)
	assert.True(t, apperrors.IsNotFound(err))
}
