// Package memory provides in-memory store implementations for tests.
// Behavior mirrors gormstore: finders return (nil, nil) on absence,
// Save assigns ids and CreatedAt on first insert, Delete is a no-op for
// unknown ids.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"aqua_distribution/internal/models"
)

type accessors[T any] struct {
	id     func(*T) uint
	setID  func(*T, uint)
	code   func(*T) string
	status func(*T) string
	org    func(*T) string

	createdAt    func(*T) time.Time
	setCreatedAt func(*T, time.Time)
}

type collection[T any] struct {
	mu     sync.RWMutex
	rows   map[uint]T
	nextID uint
	acc    accessors[T]
}

func newCollection[T any](acc accessors[T]) *collection[T] {
	return &collection[T]{rows: make(map[uint]T), acc: acc}
}

func (c *collection[T]) FindByID(_ context.Context, id uint) (*T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	row, ok := c.rows[id]
	if !ok {
		return nil, nil
	}
	return &row, nil
}

func (c *collection[T]) FindAll(_ context.Context) ([]T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filterLocked(func(*T) bool { return true }), nil
}

func (c *collection[T]) FindAllByStatus(_ context.Context, status string) ([]T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filterLocked(func(row *T) bool { return c.acc.status(row) == status }), nil
}

func (c *collection[T]) FindByOrganization(_ context.Context, organizationID string) ([]T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filterLocked(func(row *T) bool { return c.acc.org(row) == organizationID }), nil
}

func (c *collection[T]) FindHighestByCode(_ context.Context) (*T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var best *T
	for id := range c.rows {
		row := c.rows[id]
		if best == nil || c.acc.code(&row) > c.acc.code(best) {
			best = &row
		}
	}
	return best, nil
}

func (c *collection[T]) ExistsByCode(_ context.Context, code string) (bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for id := range c.rows {
		row := c.rows[id]
		if c.acc.code(&row) == code {
			return true, nil
		}
	}
	return false, nil
}

func (c *collection[T]) Save(_ context.Context, row *T) (*T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.acc.id(row) == 0 {
		c.nextID++
		c.acc.setID(row, c.nextID)
	}
	if c.acc.createdAt(row).IsZero() {
		c.acc.setCreatedAt(row, time.Now())
	}
	c.rows[c.acc.id(row)] = *row
	return row, nil
}

func (c *collection[T]) Delete(_ context.Context, id uint) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.rows, id)
	return nil
}

func (c *collection[T]) filterLocked(keep func(*T) bool) []T {
	ids := make([]uint, 0, len(c.rows))
	for id := range c.rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]T, 0, len(ids))
	for _, id := range ids {
		row := c.rows[id]
		if keep(&row) {
			out = append(out, row)
		}
	}
	return out
}

// ProgramStore is the in-memory program collection.
type ProgramStore struct {
	*collection[models.Program]
}

func NewProgramStore() *ProgramStore {
	return &ProgramStore{newCollection(accessors[models.Program]{
		id:           func(p *models.Program) uint { return p.ID },
		setID:        func(p *models.Program, id uint) { p.ID = id },
		code:         func(p *models.Program) string { return p.Code },
		status:       func(p *models.Program) string { return p.Status },
		org:          func(p *models.Program) string { return p.OrganizationID },
		createdAt:    func(p *models.Program) time.Time { return p.CreatedAt },
		setCreatedAt: func(p *models.Program, t time.Time) { p.CreatedAt = t },
	})}
}

// RouteStore is the in-memory route collection.
type RouteStore struct {
	*collection[models.Route]
}

func NewRouteStore() *RouteStore {
	return &RouteStore{newCollection(accessors[models.Route]{
		id:           func(r *models.Route) uint { return r.ID },
		setID:        func(r *models.Route, id uint) { r.ID = id },
		code:         func(r *models.Route) string { return r.Code },
		status:       func(r *models.Route) string { return r.Status },
		org:          func(r *models.Route) string { return r.OrganizationID },
		createdAt:    func(r *models.Route) time.Time { return r.CreatedAt },
		setCreatedAt: func(r *models.Route, t time.Time) { r.CreatedAt = t },
	})}
}

// ScheduleStore is the in-memory schedule collection.
type ScheduleStore struct {
	*collection[models.Schedule]
}

func NewScheduleStore() *ScheduleStore {
	return &ScheduleStore{newCollection(accessors[models.Schedule]{
		id:           func(s *models.Schedule) uint { return s.ID },
		setID:        func(s *models.Schedule, id uint) { s.ID = id },
		code:         func(s *models.Schedule) string { return s.Code },
		status:       func(s *models.Schedule) string { return s.Status },
		org:          func(s *models.Schedule) string { return s.OrganizationID },
		createdAt:    func(s *models.Schedule) time.Time { return s.CreatedAt },
		setCreatedAt: func(s *models.Schedule, t time.Time) { s.CreatedAt = t },
	})}
}

// FareStore is the in-memory fare collection.
type FareStore struct {
	*collection[models.Fare]
}

func NewFareStore() *FareStore {
	return &FareStore{newCollection(accessors[models.Fare]{
		id:           func(f *models.Fare) uint { return f.ID },
		setID:        func(f *models.Fare, id uint) { f.ID = id },
		code:         func(f *models.Fare) string { return f.Code },
		status:       func(f *models.Fare) string { return f.Status },
		org:          func(f *models.Fare) string { return f.OrganizationID },
		createdAt:    func(f *models.Fare) time.Time { return f.CreatedAt },
		setCreatedAt: func(f *models.Fare, t time.Time) { f.CreatedAt = t },
	})}
}

// FindByOrganizationAndStatus returns the organization's fares in the given
// status, effective date descending.
func (s *FareStore) FindByOrganizationAndStatus(_ context.Context, organizationID, status string) ([]models.Fare, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := s.filterLocked(func(f *models.Fare) bool {
		return f.OrganizationID == organizationID && f.Status == status
	})
	sort.Slice(out, func(i, j int) bool { return out[i].EffectiveDate.After(out[j].EffectiveDate) })
	return out, nil
}
