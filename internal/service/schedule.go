package service

import (
	"context"

	"aqua_distribution/internal/apperrors"
	"aqua_distribution/internal/clients"
	"aqua_distribution/internal/models"
	"aqua_distribution/internal/store"
)

// ScheduleInput carries the mutable fields of a distribution schedule.
type ScheduleInput struct {
	OrganizationID string   `json:"organization_id" binding:"required"`
	ScheduleName   string   `json:"schedule_name"`
	ZoneID         string   `json:"zone_id"`
	StreetID       string   `json:"street_id"`
	DaysOfWeek     []string `json:"days_of_week"`
	StartTime      string   `json:"start_time"`
	EndTime        string   `json:"end_time"`
	DurationHours  int      `json:"duration_hours"`
}

// EnrichedSchedule is a schedule response with the organization profile
// merged in.
type EnrichedSchedule struct {
	models.Schedule
	Organization *clients.Organization `json:"organization,omitempty"`
}

// ScheduleService manages the distribution schedule lifecycle.
type ScheduleService struct {
	store    store.ScheduleStore
	enricher *clients.Client
}

func NewScheduleService(st store.ScheduleStore, enricher *clients.Client) *ScheduleService {
	return &ScheduleService{store: st, enricher: enricher}
}

// Create assigns the next HOR code and persists the schedule ACTIVE.
func (s *ScheduleService) Create(ctx context.Context, in ScheduleInput) (*models.Schedule, error) {
	code, err := nextEntityCode(ctx, s.store, models.ScheduleCodePrefix,
		func(sc *models.Schedule) string { return sc.Code })
	if err != nil {
		return nil, err
	}
	schedule := &models.Schedule{
		OrganizationID: in.OrganizationID,
		Code:           code,
		ScheduleName:   in.ScheduleName,
		ZoneID:         in.ZoneID,
		StreetID:       in.StreetID,
		DaysOfWeek:     in.DaysOfWeek,
		StartTime:      in.StartTime,
		EndTime:        in.EndTime,
		DurationHours:  in.DurationHours,
		Status:         models.StatusActive,
	}
	return s.store.Save(ctx, schedule)
}

func (s *ScheduleService) GetByID(ctx context.Context, id uint) (*models.Schedule, error) {
	schedule, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if schedule == nil {
		return nil, apperrors.NotFound("schedule", id)
	}
	return schedule, nil
}

func (s *ScheduleService) ListAll(ctx context.Context) ([]models.Schedule, error) {
	return s.store.FindAll(ctx)
}

func (s *ScheduleService) ListByStatus(ctx context.Context, status string) ([]models.Schedule, error) {
	return s.store.FindAllByStatus(ctx, status)
}

func (s *ScheduleService) ListByOrganization(ctx context.Context, organizationID string) ([]models.Schedule, error) {
	return s.store.FindByOrganization(ctx, organizationID)
}

// Update overwrites the mutable fields; Code and CreatedAt are preserved.
func (s *ScheduleService) Update(ctx context.Context, id uint, in ScheduleInput) (*models.Schedule, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	existing.OrganizationID = in.OrganizationID
	existing.ScheduleName = in.ScheduleName
	existing.ZoneID = in.ZoneID
	existing.StreetID = in.StreetID
	existing.DaysOfWeek = in.DaysOfWeek
	existing.StartTime = in.StartTime
	existing.EndTime = in.EndTime
	existing.DurationHours = in.DurationHours
	return s.store.Save(ctx, existing)
}

// Activate sets status ACTIVE unconditionally (idempotent).
func (s *ScheduleService) Activate(ctx context.Context, id uint) (*models.Schedule, error) {
	return s.changeStatus(ctx, id, models.StatusActive)
}

// Deactivate sets status INACTIVE unconditionally (idempotent).
func (s *ScheduleService) Deactivate(ctx context.Context, id uint) (*models.Schedule, error) {
	return s.changeStatus(ctx, id, models.StatusInactive)
}

func (s *ScheduleService) changeStatus(ctx context.Context, id uint, status string) (*models.Schedule, error) {
	schedule, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	schedule.Status = status
	return s.store.Save(ctx, schedule)
}

// Delete removes the schedule; NotFound when the id is absent.
func (s *ScheduleService) Delete(ctx context.Context, id uint) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.store.Delete(ctx, id)
}

func (s *ScheduleService) GetEnrichedByID(ctx context.Context, id uint) (*EnrichedSchedule, error) {
	schedule, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, schedule), nil
}

func (s *ScheduleService) ListAllEnriched(ctx context.Context) ([]EnrichedSchedule, error) {
	schedules, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]EnrichedSchedule, 0, len(schedules))
	for i := range schedules {
		out = append(out, *s.enrich(ctx, &schedules[i]))
	}
	return out, nil
}

func (s *ScheduleService) enrich(ctx context.Context, schedule *models.Schedule) *EnrichedSchedule {
	return &EnrichedSchedule{
		Schedule:     *schedule,
		Organization: s.enricher.GetOrganizationByID(ctx, schedule.OrganizationID),
	}
}
