package service

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"aqua_distribution/internal/apperrors"
	"aqua_distribution/internal/clients"
	"aqua_distribution/internal/lifecycle"
	"aqua_distribution/internal/models"
	"aqua_distribution/internal/store"
)

// FareInput carries the mutable fields of a fare.
type FareInput struct {
	OrganizationID string          `json:"organization_id" binding:"required"`
	FareName       string          `json:"fare_name"`
	FareType       string          `json:"fare_type"`
	FareAmount     decimal.Decimal `json:"fare_amount"`
	EffectiveDate  string          `json:"effective_date"` // YYYY-MM-DD, optional
}

// EnrichedFare is a fare response with the organization profile merged in.
type EnrichedFare struct {
	models.Fare
	Organization *clients.Organization `json:"organization,omitempty"`
}

// FareSettings configures the pricing epoch: at the transition date the
// organization-wide monthly price changes, and pre-transition fares are
// superseded by the sweep.
type FareSettings struct {
	TransitionDate      time.Time
	MonthlyAmountBefore decimal.Decimal
	MonthlyAmountAfter  decimal.Decimal
}

// FareService manages the fare lifecycle. Fare status is time-derived: the
// service computes it from the clock on every create/update, and the
// transition sweep keeps stored fares converged afterwards.
type FareService struct {
	store    store.FareStore
	clock    lifecycle.Clock
	settings FareSettings
	enricher *clients.Client
}

func NewFareService(st store.FareStore, clock lifecycle.Clock, settings FareSettings, enricher *clients.Client) *FareService {
	return &FareService{store: st, clock: clock, settings: settings, enricher: enricher}
}

// Create assigns the next TAR code, derives the status from the effective
// date and restores the one-active-fare-per-organization invariant.
// A missing effective date defaults to the transition date.
func (s *FareService) Create(ctx context.Context, in FareInput) (*models.Fare, error) {
	code, err := nextEntityCode(ctx, s.store, models.FareCodePrefix,
		func(f *models.Fare) string { return f.Code })
	if err != nil {
		return nil, err
	}
	effective, err := parseDate("effective_date", in.EffectiveDate)
	if err != nil {
		return nil, err
	}
	now := s.clock.Now()
	if effective.IsZero() {
		effective = s.settings.TransitionDate
	}
	fare := &models.Fare{
		OrganizationID: in.OrganizationID,
		Code:           code,
		FareName:       in.FareName,
		FareType:       in.FareType,
		FareAmount:     s.epochAmount(in.FareType, in.FareAmount, now),
		EffectiveDate:  effective,
		Status:         lifecycle.DeriveFareStatus(now, effective),
	}
	saved, err := s.store.Save(ctx, fare)
	if err != nil {
		return nil, err
	}
	s.deactivateOthers(ctx, saved)
	return saved, nil
}

// epochAmount applies the pricing epoch: monthly fares are priced by which
// side of the transition date now falls on; other types keep the requested
// amount.
func (s *FareService) epochAmount(fareType string, requested decimal.Decimal, now time.Time) decimal.Decimal {
	if !strings.EqualFold(fareType, models.FareTypeMonthly) {
		return requested
	}
	if now.Before(s.settings.TransitionDate) {
		return s.settings.MonthlyAmountBefore
	}
	return s.settings.MonthlyAmountAfter
}

// deactivateOthers enforces the exclusivity invariant around fare: every
// other ACTIVE fare of the same organization goes INACTIVE. Failures on a
// single fare are logged and skipped so the rest still converge.
func (s *FareService) deactivateOthers(ctx context.Context, fare *models.Fare) {
	others, err := s.store.FindByOrganizationAndStatus(ctx, fare.OrganizationID, models.StatusActive)
	if err != nil {
		logrus.WithError(err).WithField("organization_id", fare.OrganizationID).
			Error("fare exclusivity: listing active fares failed")
		return
	}
	for i := range others {
		other := others[i]
		if other.ID == fare.ID {
			continue
		}
		other.Status = models.StatusInactive
		if _, err := s.store.Save(ctx, &other); err != nil {
			logrus.WithError(err).WithField("fare_code", other.Code).
				Error("fare exclusivity: deactivation failed")
		}
	}
}

func (s *FareService) GetByID(ctx context.Context, id uint) (*models.Fare, error) {
	fare, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if fare == nil {
		return nil, apperrors.NotFound("fare", id)
	}
	return fare, nil
}

func (s *FareService) ListAll(ctx context.Context) ([]models.Fare, error) {
	return s.store.FindAll(ctx)
}

func (s *FareService) ListByStatus(ctx context.Context, status string) ([]models.Fare, error) {
	return s.store.FindAllByStatus(ctx, status)
}

func (s *FareService) ListByOrganization(ctx context.Context, organizationID string) ([]models.Fare, error) {
	return s.store.FindByOrganization(ctx, organizationID)
}

// Update overwrites the mutable fields, re-derives status from the (possibly
// kept) effective date and re-enforces exclusivity. Code and CreatedAt are
// preserved. Omitting effective_date keeps the stored one.
func (s *FareService) Update(ctx context.Context, id uint, in FareInput) (*models.Fare, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	effective, err := parseDate("effective_date", in.EffectiveDate)
	if err != nil {
		return nil, err
	}
	if effective.IsZero() {
		effective = existing.EffectiveDate
	}
	now := s.clock.Now()
	existing.OrganizationID = in.OrganizationID
	existing.FareName = in.FareName
	existing.FareType = in.FareType
	existing.FareAmount = s.epochAmount(in.FareType, in.FareAmount, now)
	existing.EffectiveDate = effective
	existing.Status = lifecycle.DeriveFareStatus(now, effective)

	saved, err := s.store.Save(ctx, existing)
	if err != nil {
		return nil, err
	}
	if saved.Status == models.StatusActive {
		s.deactivateOthers(ctx, saved)
	}
	return saved, nil
}

// Activate sets status ACTIVE. Unlike the other kinds this is not
// idempotent: a fare already ACTIVE yields Conflict without a write.
func (s *FareService) Activate(ctx context.Context, id uint) (*models.Fare, error) {
	return s.changeStatus(ctx, id, models.StatusActive)
}

// Deactivate sets status INACTIVE; Conflict when already INACTIVE.
func (s *FareService) Deactivate(ctx context.Context, id uint) (*models.Fare, error) {
	return s.changeStatus(ctx, id, models.StatusInactive)
}

func (s *FareService) changeStatus(ctx context.Context, id uint, status string) (*models.Fare, error) {
	fare, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if strings.EqualFold(fare.Status, status) {
		return nil, apperrors.Conflict("fare already in status " + status)
	}
	fare.Status = status
	saved, err := s.store.Save(ctx, fare)
	if err != nil {
		return nil, err
	}
	if status == models.StatusActive {
		s.deactivateOthers(ctx, saved)
	}
	return saved, nil
}

// Delete removes the fare; NotFound when the id is absent.
func (s *FareService) Delete(ctx context.Context, id uint) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.store.Delete(ctx, id)
}

func (s *FareService) GetEnrichedByID(ctx context.Context, id uint) (*EnrichedFare, error) {
	fare, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, fare), nil
}

func (s *FareService) ListAllEnriched(ctx context.Context) ([]EnrichedFare, error) {
	fares, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]EnrichedFare, 0, len(fares))
	for i := range fares {
		out = append(out, *s.enrich(ctx, &fares[i]))
	}
	return out, nil
}

func (s *FareService) enrich(ctx context.Context, fare *models.Fare) *EnrichedFare {
	return &EnrichedFare{
		Fare:         *fare,
		Organization: s.enricher.GetOrganizationByID(ctx, fare.OrganizationID),
	}
}
