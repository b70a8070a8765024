// Package scheduler runs the recurring fare transition sweep. Effective
// dates elapse with no intervening request, so stored fare statuses drift
// from what the clock says they should be; each sweep re-derives them and
// persists corrections using the same rules as the synchronous path.
package scheduler

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"aqua_distribution/internal/lifecycle"
	"aqua_distribution/internal/models"
	"aqua_distribution/internal/store"
)

// FareTransitionScheduler re-evaluates every fare against wall-clock time on
// a fixed interval. Also manually triggerable by operators for immediate
// reconciliation.
type FareTransitionScheduler struct {
	store          store.FareStore
	clock          lifecycle.Clock
	transitionDate time.Time
	interval       time.Duration

	ticker  *time.Ticker
	stop    chan struct{}
	wg      sync.WaitGroup
	mu      sync.Mutex
	running atomic.Bool
}

func New(st store.FareStore, clock lifecycle.Clock, transitionDate time.Time, interval time.Duration) *FareTransitionScheduler {
	return &FareTransitionScheduler{
		store:          st,
		clock:          clock,
		transitionDate: transitionDate,
		interval:       interval,
		stop:           make(chan struct{}),
	}
}

// Start begins the periodic sweep. The first sweep runs immediately.
func (s *FareTransitionScheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ticker = time.NewTicker(s.interval)
	s.wg.Add(1)
	go s.run()

	logrus.WithField("interval", s.interval.String()).Info("fare scheduler started")
}

// Stop halts the periodic sweep and waits for an in-flight run to finish.
func (s *FareTransitionScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ticker != nil {
		s.ticker.Stop()
		close(s.stop)
		s.wg.Wait()
		logrus.Info("fare scheduler stopped")
	}
}

func (s *FareTransitionScheduler) run() {
	defer s.wg.Done()

	s.RunNow(context.Background())

	for {
		select {
		case <-s.ticker.C:
			s.RunNow(context.Background())
		case <-s.stop:
			return
		}
	}
}

// RunNow performs one full sweep and reports whether it ran. The periodic
// trigger and the operator's manual trigger run this identical routine. A
// compare-and-swap running flag prevents overlapping sweeps; an overlapped
// call logs, skips, and returns false.
func (s *FareTransitionScheduler) RunNow(ctx context.Context) bool {
	if !s.running.CompareAndSwap(false, true) {
		logrus.Warn("fare sweep already running, skipping overlapping run")
		return false
	}
	defer s.running.Store(false)

	now := s.clock.Now()
	log := logrus.WithField("run_id", uuid.NewString())
	log.Info("processing fare transitions")

	s.supersedePreTransitionFares(ctx, now, log)
	s.activateScheduledFares(ctx, now, log)
	s.deactivateExpiredFares(ctx, now, log)

	log.Info("fare transition processing completed")
	return true
}

// supersedePreTransitionFares deactivates fares from the previous pricing
// epoch: once now is past the transition date, any ACTIVE fare whose
// effective date precedes that date is forced INACTIVE.
func (s *FareTransitionScheduler) supersedePreTransitionFares(ctx context.Context, now time.Time, log *logrus.Entry) {
	if !now.After(s.transitionDate) {
		return
	}
	active, err := s.store.FindAllByStatus(ctx, models.StatusActive)
	if err != nil {
		log.WithError(err).Error("supersession sweep: listing active fares failed")
		return
	}
	for i := range active {
		fare := active[i]
		if fare.EffectiveDate.IsZero() || !fare.EffectiveDate.Before(s.transitionDate) {
			continue
		}
		fare.Status = models.StatusInactive
		if _, err := s.store.Save(ctx, &fare); err != nil {
			log.WithError(err).WithField("fare_code", fare.Code).Error("supersession sweep: save failed")
			continue
		}
		log.WithField("fare_code", fare.Code).Info("superseded pre-transition fare")
	}
}

// activateScheduledFares flips INACTIVE fares whose effective date has
// arrived, then restores exclusivity for each one activated.
func (s *FareTransitionScheduler) activateScheduledFares(ctx context.Context, now time.Time, log *logrus.Entry) {
	inactive, err := s.store.FindAllByStatus(ctx, models.StatusInactive)
	if err != nil {
		log.WithError(err).Error("activation sweep: listing inactive fares failed")
		return
	}
	for i := range inactive {
		fare := inactive[i]
		if fare.EffectiveDate.IsZero() || fare.EffectiveDate.After(now) {
			continue
		}
		fare.Status = models.StatusActive
		saved, err := s.store.Save(ctx, &fare)
		if err != nil {
			log.WithError(err).WithField("fare_code", fare.Code).Error("activation sweep: save failed")
			continue
		}
		s.enforceExclusivity(ctx, saved, log)
		log.WithField("fare_code", fare.Code).Info("activated scheduled fare")
	}
}

// deactivateExpiredFares flips ACTIVE fares whose effective date is strictly
// in the past (a fare effective exactly now stays active).
func (s *FareTransitionScheduler) deactivateExpiredFares(ctx context.Context, now time.Time, log *logrus.Entry) {
	active, err := s.store.FindAllByStatus(ctx, models.StatusActive)
	if err != nil {
		log.WithError(err).Error("expiration sweep: listing active fares failed")
		return
	}
	for i := range active {
		fare := active[i]
		if fare.EffectiveDate.IsZero() || !fare.EffectiveDate.Before(now) {
			continue
		}
		fare.Status = models.StatusInactive
		if _, err := s.store.Save(ctx, &fare); err != nil {
			log.WithError(err).WithField("fare_code", fare.Code).Error("expiration sweep: save failed")
			continue
		}
		log.WithField("fare_code", fare.Code).Info("deactivated expired fare")
	}
}

// enforceExclusivity deactivates every other ACTIVE fare of the activated
// fare's organization, restoring the at-most-one-active invariant.
func (s *FareTransitionScheduler) enforceExclusivity(ctx context.Context, activated *models.Fare, log *logrus.Entry) {
	others, err := s.store.FindByOrganizationAndStatus(ctx, activated.OrganizationID, models.StatusActive)
	if err != nil {
		log.WithError(err).WithField("organization_id", activated.OrganizationID).
			Error("exclusivity: listing active fares failed")
		return
	}
	for i := range others {
		other := others[i]
		if other.ID == activated.ID {
			continue
		}
		other.Status = models.StatusInactive
		if _, err := s.store.Save(ctx, &other); err != nil {
			log.WithError(err).WithField("fare_code", other.Code).Error("exclusivity: save failed")
		}
	}
}
