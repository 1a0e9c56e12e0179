package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/rexahq/workspace-service/internal/workspace/domain"
	"github.com/rexahq/workspace-service/internal/workspace/store"
	"github.com/rexahq/workspace-service/pkg/idx"
	"github.com/rexahq/workspace-service/pkg/slogx"
)

// RepairService detects and heals the two membership drift classes: a user
// who founded a workspace but lost their member row, and member rows that
// point at workspaces which no longer exist. Every operation is idempotent;
// running a repair twice is always safe.
type RepairService struct {
	Store store.Store
}

// EnsureMembership backfills a missing founding-admin member row. It is a
// no-op when the user holds any member row at all; otherwise, if the user
// founded a workspace, an active admin membership with the full permission
// catalog is synthesized. Returns true when a row was created.
func (s *RepairService) EnsureMembership(ctx context.Context, userID string) (bool, error) {
	log := slogx.FromContext(ctx)

	// 1. Any existing row, active or not, means there is nothing to repair.
	members, err := s.Store.Members().ListMembersByUser(ctx, userID)
	if err != nil {
		log.Error("failed to list memberships", slog.Any("error", err))
		return false, err
	}
	if len(members) > 0 {
		return false, nil
	}

	// 2. Only founders can be backfilled; anyone else joins by invitation.
	ws, err := s.Store.Workspaces().FindWorkspaceByCreator(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	now := time.Now().UTC()
	member := domain.Member{
		ID:          idx.New().String(),
		WorkspaceID: ws.ID,
		UserID:      userID,
		Email:       "",
		Role:        domain.RoleAdmin,
		Permissions: domain.AllPermissions(),
		Status:      domain.MemberActive,
		JoinedAt:    &now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Store.Members().CreateMember(ctx, member); err != nil {
		// A concurrent repair beat us to the insert; the goal is met.
		if errors.Is(err, store.ErrAlreadyExists) {
			return false, nil
		}
		log.Error("failed to backfill founder membership",
			slog.String("workspace_id", ws.ID),
			slog.String("user_id", userID),
			slog.Any("error", err),
		)
		return false, err
	}

	log.Info("backfilled founder membership",
		slog.String("workspace_id", ws.ID),
		slog.String("user_id", userID),
		slog.String("member_id", member.ID),
	)
	return true, nil
}

// CleanupOrphanedMemberships deletes the user's active member rows whose
// workspace no longer exists. Deletions commit in one transaction. Zero
// orphans is success, not an error.
func (s *RepairService) CleanupOrphanedMemberships(ctx context.Context, userID string) (int, error) {
	log := slogx.FromContext(ctx)

	members, err := s.Store.Members().ListActiveMembersByUser(ctx, userID)
	if err != nil {
		return 0, err
	}

	orphans, err := s.findOrphans(ctx, members)
	if err != nil {
		return 0, err
	}
	if len(orphans) == 0 {
		return 0, nil
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		for _, m := range orphans {
			if err := tx.Members().DeleteMember(ctx, m.ID); err != nil {
				// Already gone is fine; someone else repaired it.
				if errors.Is(err, store.ErrNotFound) {
					continue
				}
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Error("failed to delete orphaned memberships",
			slog.String("user_id", userID),
			slog.Any("error", err),
		)
		return 0, err
	}

	log.Info("deleted orphaned memberships",
		slog.String("user_id", userID),
		slog.Int("count", len(orphans)),
	)
	return len(orphans), nil
}

// SweepOrphanedMemberships runs the orphan cleanup across every active
// member row. Used by the housekeeping worker so drift is repaired
// proactively instead of waiting for the affected user to trip over it.
func (s *RepairService) SweepOrphanedMemberships(ctx context.Context) (int, error) {
	log := slogx.FromContext(ctx)

	members, err := s.Store.Members().ListAllActiveMembers(ctx)
	if err != nil {
		return 0, err
	}

	orphans, err := s.findOrphans(ctx, members)
	if err != nil {
		return 0, err
	}

	deleted := 0
	for _, m := range orphans {
		if err := s.Store.Members().DeleteMember(ctx, m.ID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				continue
			}
			log.Error("failed to delete orphaned membership",
				slog.String("member_id", m.ID),
				slog.Any("error", err),
			)
			return deleted, err
		}
		deleted++
	}

	if deleted > 0 {
		log.Info("orphan sweep removed memberships", slog.Int("count", deleted))
	}
	return deleted, nil
}

// findOrphans probes each member's workspace and returns the rows whose
// workspace lookup comes back not-found. Workspace reads are cached per call
// so the global sweep stays cheap.
func (s *RepairService) findOrphans(ctx context.Context, members []domain.Member) ([]domain.Member, error) {
	exists := make(map[string]bool, len(members))

	var orphans []domain.Member
	for _, m := range members {
		live, seen := exists[m.WorkspaceID]
		if !seen {
			_, err := s.Store.Workspaces().GetWorkspace(ctx, m.WorkspaceID)
			switch {
			case err == nil:
				live = true
			case errors.Is(err, store.ErrNotFound):
				live = false
			default:
				return nil, err
			}
			exists[m.WorkspaceID] = live
		}
		if !live {
			orphans = append(orphans, m)
		}
	}
	return orphans, nil
}
