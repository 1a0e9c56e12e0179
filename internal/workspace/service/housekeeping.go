package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/rexahq/workspace-service/internal/workspace/store"
)

// HousekeepingService periodically deletes long-expired pending invitations
// and sweeps orphaned memberships so drift is repaired without waiting for
// an affected user to hit it.
type HousekeepingService struct {
	Store  store.Store
	Repair *RepairService
	Logger *slog.Logger

	// Interval between cleanup runs.
	Interval time.Duration

	// Retention keeps expired pending invitations around for a grace
	// window before deletion, so admins can still see recent misses.
	Retention time.Duration

	// Internal channels for lifecycle management
	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService creates a housekeeping service. Interval defaults
// to 1 hour and retention to 30 days when zero or negative.
func NewHousekeepingService(st store.Store, repair *RepairService, logger *slog.Logger, interval, retention time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = 1 * time.Hour
	}
	if retention <= 0 {
		retention = 30 * 24 * time.Hour
	}

	return &HousekeepingService{
		Store:     st,
		Repair:    repair,
		Logger:    logger,
		Interval:  interval,
		Retention: retention,
		stopCh:    make(chan struct{}),
		doneCh:    make(chan struct{}),
	}
}

// Start begins the background worker. Non-blocking; call Stop() to shut it
// down gracefully.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started", "interval", s.Interval)
}

// Stop shuts down the background worker, blocking until any in-progress
// cleanup finishes.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	// Run cleanup immediately on startup
	s.cleanup()

	for {
		select {
		case <-ticker.C:
			s.cleanup()
		case <-s.stopCh:
			return
		}
	}
}

// cleanup performs one housekeeping pass. The two tasks are independent; a
// failure in one does not stop the other.
func (s *HousekeepingService) cleanup() {
	ctx := context.Background()
	s.Logger.Debug("starting housekeeping cleanup")

	cutoff := time.Now().UTC().Add(-s.Retention)
	if n, err := s.Store.Invitations().DeleteExpiredInvitations(ctx, cutoff); err != nil {
		s.Logger.Error("failed to delete expired invitations", "error", err)
	} else if n > 0 {
		s.Logger.Info("deleted expired invitations", "count", n)
	}

	if n, err := s.Repair.SweepOrphanedMemberships(ctx); err != nil {
		s.Logger.Error("orphan sweep failed", "error", err)
	} else if n > 0 {
		s.Logger.Info("orphan sweep removed memberships", "count", n)
	}

	s.Logger.Debug("housekeeping cleanup completed")
}
