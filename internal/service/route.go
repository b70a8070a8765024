package service

import (
	"context"

	"aqua_distribution/internal/apperrors"
	"aqua_distribution/internal/clients"
	"aqua_distribution/internal/models"
	"aqua_distribution/internal/store"
)

// RouteInput carries the mutable fields of a distribution route.
type RouteInput struct {
	OrganizationID         string           `json:"organization_id" binding:"required"`
	RouteName              string           `json:"route_name"`
	Zones                  []RouteZoneInput `json:"zones"`
	TotalEstimatedDuration int              `json:"total_estimated_duration"`
	ResponsibleUserID      string           `json:"responsible_user_id"`
}

type RouteZoneInput struct {
	ZoneID            string `json:"zone_id" binding:"required"`
	Order             int    `json:"order"`
	EstimatedDuration int    `json:"estimated_duration"`
}

// EnrichedRoute is a route response with profile data merged in.
type EnrichedRoute struct {
	models.Route
	Organization    *clients.Organization `json:"organization,omitempty"`
	ResponsibleUser *clients.User         `json:"responsible_user,omitempty"`
}

// RouteService manages the distribution route lifecycle.
type RouteService struct {
	store    store.RouteStore
	enricher *clients.Client
}

func NewRouteService(st store.RouteStore, enricher *clients.Client) *RouteService {
	return &RouteService{store: st, enricher: enricher}
}

// Create assigns the next RUT code and persists the route ACTIVE.
func (s *RouteService) Create(ctx context.Context, in RouteInput) (*models.Route, error) {
	code, err := nextEntityCode(ctx, s.store, models.RouteCodePrefix,
		func(r *models.Route) string { return r.Code })
	if err != nil {
		return nil, err
	}
	route := &models.Route{
		OrganizationID:         in.OrganizationID,
		Code:                   code,
		RouteName:              in.RouteName,
		Zones:                  toRouteZones(in.Zones),
		TotalEstimatedDuration: in.TotalEstimatedDuration,
		ResponsibleUserID:      in.ResponsibleUserID,
		Status:                 models.StatusActive,
	}
	return s.store.Save(ctx, route)
}

func toRouteZones(in []RouteZoneInput) []models.RouteZone {
	zones := make([]models.RouteZone, 0, len(in))
	for _, z := range in {
		zones = append(zones, models.RouteZone{
			ZoneID:            z.ZoneID,
			Order:             z.Order,
			EstimatedDuration: z.EstimatedDuration,
		})
	}
	return zones
}

func (s *RouteService) GetByID(ctx context.Context, id uint) (*models.Route, error) {
	route, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if route == nil {
		return nil, apperrors.NotFound("route", id)
	}
	return route, nil
}

func (s *RouteService) ListAll(ctx context.Context) ([]models.Route, error) {
	return s.store.FindAll(ctx)
}

func (s *RouteService) ListByStatus(ctx context.Context, status string) ([]models.Route, error) {
	return s.store.FindAllByStatus(ctx, status)
}

func (s *RouteService) ListByOrganization(ctx context.Context, organizationID string) ([]models.Route, error) {
	return s.store.FindByOrganization(ctx, organizationID)
}

// Update overwrites the mutable fields, replacing the zone list wholesale.
// Code and CreatedAt are preserved.
func (s *RouteService) Update(ctx context.Context, id uint, in RouteInput) (*models.Route, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	existing.OrganizationID = in.OrganizationID
	existing.RouteName = in.RouteName
	existing.Zones = toRouteZones(in.Zones)
	existing.TotalEstimatedDuration = in.TotalEstimatedDuration
	existing.ResponsibleUserID = in.ResponsibleUserID
	return s.store.Save(ctx, existing)
}

// Activate sets status ACTIVE unconditionally (idempotent).
func (s *RouteService) Activate(ctx context.Context, id uint) (*models.Route, error) {
	return s.changeStatus(ctx, id, models.StatusActive)
}

// Deactivate sets status INACTIVE unconditionally (idempotent).
func (s *RouteService) Deactivate(ctx context.Context, id uint) (*models.Route, error) {
	return s.changeStatus(ctx, id, models.StatusInactive)
}

func (s *RouteService) changeStatus(ctx context.Context, id uint, status string) (*models.Route, error) {
	route, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	route.Status = status
	return s.store.Save(ctx, route)
}

// Delete removes the route and its zones; NotFound when the id is absent.
func (s *RouteService) Delete(ctx context.Context, id uint) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.store.Delete(ctx, id)
}

func (s *RouteService) GetEnrichedByID(ctx context.Context, id uint) (*EnrichedRoute, error) {
	route, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, route), nil
}

func (s *RouteService) ListAllEnriched(ctx context.Context) ([]EnrichedRoute, error) {
	routes, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]EnrichedRoute, 0, len(routes))
	for i := range routes {
		out = append(out, *s.enrich(ctx, &routes[i]))
	}
	return out, nil
}

func (s *RouteService) enrich(ctx context.Context, route *models.Route) *EnrichedRoute {
	return &EnrichedRoute{
		Route:           *route,
		Organization:    s.enricher.GetOrganizationByID(ctx, route.OrganizationID),
		ResponsibleUser: s.enricher.GetUserByID(ctx, route.ResponsibleUserID),
	}
}
