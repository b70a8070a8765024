package service

import (
	"context"

	"aqua_distribution/internal/apperrors"
	"aqua_distribution/internal/clients"
	"aqua_distribution/internal/lifecycle"
	"aqua_distribution/internal/models"
	"aqua_distribution/internal/store"
)

// ProgramInput carries the mutable fields of a distribution program.
type ProgramInput struct {
	OrganizationID    string `json:"organization_id" binding:"required"`
	ScheduleID        string `json:"schedule_id"`
	RouteID           string `json:"route_id"`
	ZoneID            string `json:"zone_id"`
	StreetID          string `json:"street_id"`
	ProgramDate       string `json:"program_date" binding:"required"` // YYYY-MM-DD
	PlannedStartTime  string `json:"planned_start_time"`
	PlannedEndTime    string `json:"planned_end_time"`
	ActualStartTime   string `json:"actual_start_time"`
	ActualEndTime     string `json:"actual_end_time"`
	ResponsibleUserID string `json:"responsible_user_id"`
	Observations      string `json:"observations"`
}

// EnrichedProgram is a program response with organization and responsible
// user profiles merged in. Missing profiles mean enrichment degraded.
type EnrichedProgram struct {
	models.Program
	Organization    *clients.Organization `json:"organization,omitempty"`
	ResponsibleUser *clients.User         `json:"responsible_user,omitempty"`
}

// ProgramService manages the distribution program lifecycle.
type ProgramService struct {
	store    store.ProgramStore
	enricher *clients.Client
}

func NewProgramService(st store.ProgramStore, enricher *clients.Client) *ProgramService {
	return &ProgramService{store: st, enricher: enricher}
}

// Create assigns the next PRG code, derives the initial status from the
// actual-time fields and persists the program.
func (s *ProgramService) Create(ctx context.Context, in ProgramInput) (*models.Program, error) {
	code, err := nextEntityCode(ctx, s.store, models.ProgramCodePrefix,
		func(p *models.Program) string { return p.Code })
	if err != nil {
		return nil, err
	}
	date, err := parseDate("program_date", in.ProgramDate)
	if err != nil {
		return nil, err
	}
	program := &models.Program{
		OrganizationID:    in.OrganizationID,
		Code:              code,
		ScheduleID:        in.ScheduleID,
		RouteID:           in.RouteID,
		ZoneID:            in.ZoneID,
		StreetID:          in.StreetID,
		ProgramDate:       date,
		PlannedStartTime:  in.PlannedStartTime,
		PlannedEndTime:    in.PlannedEndTime,
		ActualStartTime:   in.ActualStartTime,
		ActualEndTime:     in.ActualEndTime,
		Status:            lifecycle.DeriveInitialProgramStatus(in.ActualStartTime, in.ActualEndTime),
		ResponsibleUserID: in.ResponsibleUserID,
		Observations:      in.Observations,
	}
	return s.store.Save(ctx, program)
}

func (s *ProgramService) GetByID(ctx context.Context, id uint) (*models.Program, error) {
	program, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if program == nil {
		return nil, apperrors.NotFound("program", id)
	}
	return program, nil
}

func (s *ProgramService) ListAll(ctx context.Context) ([]models.Program, error) {
	return s.store.FindAll(ctx)
}

func (s *ProgramService) ListByStatus(ctx context.Context, status string) ([]models.Program, error) {
	return s.store.FindAllByStatus(ctx, status)
}

func (s *ProgramService) ListByOrganization(ctx context.Context, organizationID string) ([]models.Program, error) {
	return s.store.FindByOrganization(ctx, organizationID)
}

// Update overwrites the mutable fields. Code, CreatedAt, status and the
// actual-time fields are preserved; status moves only through
// Activate/Deactivate and the actual times through their own reporting flow.
func (s *ProgramService) Update(ctx context.Context, id uint, in ProgramInput) (*models.Program, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	date, err := parseDate("program_date", in.ProgramDate)
	if err != nil {
		return nil, err
	}
	existing.OrganizationID = in.OrganizationID
	existing.ScheduleID = in.ScheduleID
	existing.RouteID = in.RouteID
	existing.ZoneID = in.ZoneID
	existing.StreetID = in.StreetID
	existing.ProgramDate = date
	existing.PlannedStartTime = in.PlannedStartTime
	existing.PlannedEndTime = in.PlannedEndTime
	existing.ResponsibleUserID = in.ResponsibleUserID
	existing.Observations = in.Observations
	return s.store.Save(ctx, existing)
}

// Activate sets status ACTIVE unconditionally; re-activating an already
// active program succeeds silently.
func (s *ProgramService) Activate(ctx context.Context, id uint) (*models.Program, error) {
	return s.changeStatus(ctx, id, models.StatusActive)
}

// Deactivate sets status INACTIVE unconditionally.
func (s *ProgramService) Deactivate(ctx context.Context, id uint) (*models.Program, error) {
	return s.changeStatus(ctx, id, models.StatusInactive)
}

func (s *ProgramService) changeStatus(ctx context.Context, id uint, status string) (*models.Program, error) {
	program, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	program.Status = status
	return s.store.Save(ctx, program)
}

// Delete removes the program without checking existence first; deleting an
// absent id succeeds.
func (s *ProgramService) Delete(ctx context.Context, id uint) error {
	return s.store.Delete(ctx, id)
}

func (s *ProgramService) GetEnrichedByID(ctx context.Context, id uint) (*EnrichedProgram, error) {
	program, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, program), nil
}

func (s *ProgramService) ListAllEnriched(ctx context.Context) ([]EnrichedProgram, error) {
	programs, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]EnrichedProgram, 0, len(programs))
	for i := range programs {
		out = append(out, *s.enrich(ctx, &programs[i]))
	}
	return out, nil
}

func (s *ProgramService) enrich(ctx context.Context, program *models.Program) *EnrichedProgram {
	return &EnrichedProgram{
		Program:         *program,
		Organization:    s.enricher.GetOrganizationByID(ctx, program.OrganizationID),
		ResponsibleUser: s.enricher.GetUserByID(ctx, program.ResponsibleUserID),
	}
}
