// Package store declares the persistence collaborator consumed by the
// lifecycle services and the transition sweep. Production uses the gormstore
// implementation; tests use the memory implementation.
package store

import (
	"context"

	"aqua_distribution/internal/models"
)

// ProgramStore persists distribution programs.
type ProgramStore interface {
	FindByID(ctx context.Context, id uint) (*models.Program, error)
	FindAll(ctx context.Context) ([]models.Program, error)
	FindAllByStatus(ctx context.Context, status string) ([]models.Program, error)
	FindByOrganization(ctx context.Context, organizationID string) ([]models.Program, error)

	// FindHighestByCode returns the record whose code sorts highest in
	// descending lexicographic order, or nil when the collection is empty.
	// With fixed-prefix zero-padded codes this coincides with the numeric
	// maximum; a historical code of a different digit width would break
	// that coincidence.
	FindHighestByCode(ctx context.Context) (*models.Program, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)

	Save(ctx context.Context, program *models.Program) (*models.Program, error)
	Delete(ctx context.Context, id uint) error
}

// RouteStore persists distribution routes with their ordered zones.
type RouteStore interface {
	FindByID(ctx context.Context, id uint) (*models.Route, error)
	FindAll(ctx context.Context) ([]models.Route, error)
	FindAllByStatus(ctx context.Context, status string) ([]models.Route, error)
	FindByOrganization(ctx context.Context, organizationID string) ([]models.Route, error)

	FindHighestByCode(ctx context.Context) (*models.Route, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)

	// Save replaces the route's zone rows wholesale on update.
	Save(ctx context.Context, route *models.Route) (*models.Route, error)
	Delete(ctx context.Context, id uint) error
}

// ScheduleStore persists distribution schedules.
type ScheduleStore interface {
	FindByID(ctx context.Context, id uint) (*models.Schedule, error)
	FindAll(ctx context.Context) ([]models.Schedule, error)
	FindAllByStatus(ctx context.Context, status string) ([]models.Schedule, error)
	FindByOrganization(ctx context.Context, organizationID string) ([]models.Schedule, error)

	FindHighestByCode(ctx context.Context) (*models.Schedule, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)

	Save(ctx context.Context, schedule *models.Schedule) (*models.Schedule, error)
	Delete(ctx context.Context, id uint) error
}

// FareStore persists fares and carries the extra queries the exclusivity
// invariant needs.
type FareStore interface {
	FindByID(ctx context.Context, id uint) (*models.Fare, error)
	FindAll(ctx context.Context) ([]models.Fare, error)
	FindAllByStatus(ctx context.Context, status string) ([]models.Fare, error)
	FindByOrganization(ctx context.Context, organizationID string) ([]models.Fare, error)

	// FindByOrganizationAndStatus returns the organization's fares in the
	// given status ordered by effective date descending.
	FindByOrganizationAndStatus(ctx context.Context, organizationID, status string) ([]models.Fare, error)

	FindHighestByCode(ctx context.Context) (*models.Fare, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)

	Save(ctx context.Context, fare *models.Fare) (*models.Fare, error)
	Delete(ctx context.Context, id uint) error
}
