// Package gormstore implements the store interfaces on gorm/postgres.
// Finders return (nil, nil) when no row matches; callers decide whether
// absence is an error.
package gormstore

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"aqua_distribution/internal/models"
)

func firstOrNil[T any](db *gorm.DB, dest *T) (*T, error) {
	if err := db.First(dest).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return dest, nil
}

// ProgramStore is the gorm-backed program collection.
type ProgramStore struct {
	db *gorm.DB
}

func NewProgramStore(db *gorm.DB) *ProgramStore { return &ProgramStore{db: db} }

func (s *ProgramStore) FindByID(ctx context.Context, id uint) (*models.Program, error) {
	var p models.Program
	return firstOrNil(s.db.WithContext(ctx).Where("id = ?", id), &p)
}

func (s *ProgramStore) FindAll(ctx context.Context) ([]models.Program, error) {
	var out []models.Program
	err := s.db.WithContext(ctx).Find(&out).Error
	return out, err
}

func (s *ProgramStore) FindAllByStatus(ctx context.Context, status string) ([]models.Program, error) {
	var out []models.Program
	err := s.db.WithContext(ctx).Where("status = ?", status).Find(&out).Error
	return out, err
}

func (s *ProgramStore) FindByOrganization(ctx context.Context, organizationID string) ([]models.Program, error) {
	var out []models.Program
	err := s.db.WithContext(ctx).Where("organization_id = ?", organizationID).Find(&out).Error
	return out, err
}

func (s *ProgramStore) FindHighestByCode(ctx context.Context) (*models.Program, error) {
	var p models.Program
	return firstOrNil(s.db.WithContext(ctx).Order("code DESC"), &p)
}

func (s *ProgramStore) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.Program{}).Where("code = ?", code).Count(&n).Error
	return n > 0, err
}

func (s *ProgramStore) Save(ctx context.Context, program *models.Program) (*models.Program, error) {
	if err := s.db.WithContext(ctx).Save(program).Error; err != nil {
		return nil, err
	}
	return program, nil
}

func (s *ProgramStore) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Delete(&models.Program{}, id).Error
}

// RouteStore is the gorm-backed route collection. Reads preload the zone
// rows; Save replaces them wholesale rather than diffing the zone list.
type RouteStore struct {
	db *gorm.DB
}

func NewRouteStore(db *gorm.DB) *RouteStore { return &RouteStore{db: db} }

func (s *RouteStore) FindByID(ctx context.Context, id uint) (*models.Route, error) {
	var r models.Route
	return firstOrNil(s.db.WithContext(ctx).Preload("Zones").Where("id = ?", id), &r)
}

func (s *RouteStore) FindAll(ctx context.Context) ([]models.Route, error) {
	var out []models.Route
	err := s.db.WithContext(ctx).Preload("Zones").Find(&out).Error
	return out, err
}

func (s *RouteStore) FindAllByStatus(ctx context.Context, status string) ([]models.Route, error) {
	var out []models.Route
	err := s.db.WithContext(ctx).Preload("Zones").Where("status = ?", status).Find(&out).Error
	return out, err
}

func (s *RouteStore) FindByOrganization(ctx context.Context, organizationID string) ([]models.Route, error) {
	var out []models.Route
	err := s.db.WithContext(ctx).Preload("Zones").Where("organization_id = ?", organizationID).Find(&out).Error
	return out, err
}

func (s *RouteStore) FindHighestByCode(ctx context.Context) (*models.Route, error) {
	var r models.Route
	return firstOrNil(s.db.WithContext(ctx).Order("code DESC"), &r)
}

func (s *RouteStore) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.Route{}).Where("code = ?", code).Count(&n).Error
	return n > 0, err
}

func (s *RouteStore) Save(ctx context.Context, route *models.Route) (*models.Route, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if route.ID != 0 {
			if err := tx.Where("route_id = ?", route.ID).Delete(&models.RouteZone{}).Error; err != nil {
				return err
			}
			for i := range route.Zones {
				route.Zones[i].ID = 0
				route.Zones[i].RouteID = route.ID
			}
		}
		return tx.Save(route).Error
	})
	if err != nil {
		return nil, err
	}
	return route, nil
}

func (s *RouteStore) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("route_id = ?", id).Delete(&models.RouteZone{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Route{}, id).Error
	})
}

// ScheduleStore is the gorm-backed schedule collection.
type ScheduleStore struct {
	db *gorm.DB
}

func NewScheduleStore(db *gorm.DB) *ScheduleStore { return &ScheduleStore{db: db} }

func (s *ScheduleStore) FindByID(ctx context.Context, id uint) (*models.Schedule, error) {
	var sc models.Schedule
	return firstOrNil(s.db.WithContext(ctx).Where("id = ?", id), &sc)
}

func (s *ScheduleStore) FindAll(ctx context.Context) ([]models.Schedule, error) {
	var out []models.Schedule
	err := s.db.WithContext(ctx).Find(&out).Error
	return out, err
}

func (s *ScheduleStore) FindAllByStatus(ctx context.Context, status string) ([]models.Schedule, error) {
	var out []models.Schedule
	err := s.db.WithContext(ctx).Where("status = ?", status).Find(&out).Error
	return out, err
}

func (s *ScheduleStore) FindByOrganization(ctx context.Context, organizationID string) ([]models.Schedule, error) {
	var out []models.Schedule
	err := s.db.WithContext(ctx).Where("organization_id = ?", organizationID).Find(&out).Error
	return out, err
}

func (s *ScheduleStore) FindHighestByCode(ctx context.Context) (*models.Schedule, error) {
	var sc models.Schedule
	return firstOrNil(s.db.WithContext(ctx).Order("code DESC"), &sc)
}

func (s *ScheduleStore) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.Schedule{}).Where("code = ?", code).Count(&n).Error
	return n > 0, err
}

func (s *ScheduleStore) Save(ctx context.Context, schedule *models.Schedule) (*models.Schedule, error) {
	if err := s.db.WithContext(ctx).Save(schedule).Error; err != nil {
		return nil, err
	}
	return schedule, nil
}

func (s *ScheduleStore) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Delete(&models.Schedule{}, id).Error
}

// FareStore is the gorm-backed fare collection.
type FareStore struct {
	db *gorm.DB
}

func NewFareStore(db *gorm.DB) *FareStore { return &FareStore{db: db} }

func (s *FareStore) FindByID(ctx context.Context, id uint) (*models.Fare, error) {
	var f models.Fare
	return firstOrNil(s.db.WithContext(ctx).Where("id = ?", id), &f)
}

func (s *FareStore) FindAll(ctx context.Context) ([]models.Fare, error) {
	var out []models.Fare
	err := s.db.WithContext(ctx).Find(&out).Error
	return out, err
}

func (s *FareStore) FindAllByStatus(ctx context.Context, status string) ([]models.Fare, error) {
	var out []models.Fare
	err := s.db.WithContext(ctx).Where("status = ?", status).Find(&out).Error
	return out, err
}

func (s *FareStore) FindByOrganization(ctx context.Context, organizationID string) ([]models.Fare, error) {
	var out []models.Fare
	err := s.db.WithContext(ctx).Where("organization_id = ?", organizationID).Find(&out).Error
	return out, err
}

func (s *FareStore) FindByOrganizationAndStatus(ctx context.Context, organizationID, status string) ([]models.Fare, error) {
	var out []models.Fare
	err := s.db.WithContext(ctx).
		Where("organization_id = ? AND status = ?", organizationID, status).
		Order("effective_date DESC").
		Find(&out).Error
	return out, err
}

func (s *FareStore) FindHighestByCode(ctx context.Context) (*models.Fare, error) {
	var f models.Fare
	return firstOrNil(s.db.WithContext(ctx).Order("code DESC"), &f)
}

func (s *FareStore) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.Fare{}).Where("code = ?", code).Count(&n).Error
	return n > 0, err
}

func (s *FareStore) Save(ctx context.Context, fare *models.Fare) (*models.Fare, error) {
	if err := s.db.WithContext(ctx).Save(fare).Error; err != nil {
		return nil, err
	}
	return fare, nil
}

func (s *FareStore) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Delete(&models.Fare{}, id).Error
}
