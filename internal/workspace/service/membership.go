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

var (
	ErrNotAMember        = errors.New("user has no workspace membership")
	ErrNotAdmin          = errors.New("user is not a workspace admin")
	ErrMemberNotFound    = errors.New("member not found")
	ErrWorkspaceNotFound = errors.New("workspace not found")
	ErrLastAdmin         = errors.New("cannot remove the last admin of a workspace")
	ErrInvalidRole       = errors.New("invalid role")
	ErrEmptyUpdate       = errors.New("update contains no fields")
)

// MembershipService owns workspace and member lifecycle: workspace creation
// with its founding admin, context resolution for a signed-in user, and the
// admin-gated member mutations.
type MembershipService struct {
	Store store.Store
}

// CreateWorkspace creates a workspace and its founding admin member in a
// single transaction. The founder gets the admin role and the full
// permission catalog.
func (s *MembershipService) CreateWorkspace(
	ctx context.Context,
	name string,
	founderID string,
	founderEmail string,
	description string,
	wsDomain string,
) (domain.Workspace, domain.Member, error) {
	log := slogx.FromContext(ctx)

	now := time.Now().UTC()
	ws := domain.Workspace{
		ID:          idx.New().String(),
		Name:        name,
		Domain:      wsDomain,
		Description: description,
		CreatedBy:   founderID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	joined := now
	member := domain.Member{
		ID:          idx.New().String(),
		WorkspaceID: ws.ID,
		UserID:      founderID,
		Email:       founderEmail,
		Role:        domain.RoleAdmin,
		Permissions: domain.AllPermissions(),
		Status:      domain.MemberActive,
		JoinedAt:    &joined,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	// One transaction so a crash can never leave a workspace without its
	// founding admin.
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Workspaces().CreateWorkspace(ctx, ws); err != nil {
			return err
		}
		return tx.Members().CreateMember(ctx, member)
	})
	if err != nil {
		log.Error("failed to create workspace",
			slog.String("name", name),
			slog.String("founder_id", founderID),
			slog.Any("error", err),
		)
		return domain.Workspace{}, domain.Member{}, err
	}

	log.Info("workspace created",
		slog.String("workspace_id", ws.ID),
		slog.String("founder_id", founderID),
	)
	return ws, member, nil
}

// GetWorkspace returns a workspace by id.
func (s *MembershipService) GetWorkspace(ctx context.Context, id string) (domain.Workspace, error) {
	ws, err := s.Store.Workspaces().GetWorkspace(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Workspace{}, ErrWorkspaceNotFound
		}
		return domain.Workspace{}, err
	}
	return ws, nil
}

// UpdateWorkspace applies a partial update to workspace metadata. Only an
// active admin of the workspace may call it.
func (s *MembershipService) UpdateWorkspace(
	ctx context.Context,
	workspaceID string,
	update domain.WorkspaceUpdate,
	actingUserID string,
) error {
	log := slogx.FromContext(ctx)

	if update.Empty() {
		return ErrEmptyUpdate
	}

	// 1. Re-verify the actor's admin standing in this workspace.
	if err := s.requireAdmin(ctx, workspaceID, actingUserID); err != nil {
		return err
	}

	// 2. Apply the merge.
	if err := s.Store.Workspaces().UpdateWorkspace(ctx, workspaceID, update); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrWorkspaceNotFound
		}
		log.Error("failed to update workspace",
			slog.String("workspace_id", workspaceID),
			slog.Any("error", err),
		)
		return err
	}

	log.Debug("workspace updated", slog.String("workspace_id", workspaceID))
	return nil
}

// ResolveContext resolves the user's current workspace context: their active
// memberships are probed oldest-first and the first one whose workspace still
// exists wins. Memberships pointing at missing workspaces are skipped, not
// deleted; repair is a separate, explicit operation.
func (s *MembershipService) ResolveContext(ctx context.Context, userID string) (domain.Context, error) {
	log := slogx.FromContext(ctx)

	members, err := s.Store.Members().ListActiveMembersByUser(ctx, userID)
	if err != nil {
		log.Error("failed to list memberships", slog.Any("error", err))
		return domain.Context{}, err
	}
	if len(members) == 0 {
		return domain.Context{}, ErrNotAMember
	}

	for _, m := range members {
		ws, err := s.Store.Workspaces().GetWorkspace(ctx, m.WorkspaceID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				log.Warn("membership references missing workspace",
					slog.String("member_id", m.ID),
					slog.String("workspace_id", m.WorkspaceID),
				)
				continue
			}
			return domain.Context{}, err
		}
		return domain.Context{
			Workspace:   ws,
			Member:      m,
			Permissions: m.Permissions,
			IsAdmin:     m.IsAdmin(),
		}, nil
	}

	// Every membership was orphaned.
	return domain.Context{}, ErrNotAMember
}

// ListMembers returns the members of a workspace, newest first.
func (s *MembershipService) ListMembers(ctx context.Context, workspaceID string) ([]domain.Member, error) {
	return s.Store.Members().ListWorkspaceMembers(ctx, workspaceID)
}

// UpdateMemberPermissions replaces a member's permission set. The acting
// user must be an active admin of the member's workspace; their standing is
// re-read from the store rather than trusted from claims.
func (s *MembershipService) UpdateMemberPermissions(
	ctx context.Context,
	memberID string,
	perms domain.Permissions,
	actingUserID string,
) error {
	log := slogx.FromContext(ctx)

	// 1. Load the target to learn which workspace gates the mutation.
	target, err := s.Store.Members().GetMember(ctx, memberID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrMemberNotFound
		}
		return err
	}

	// 2. Admin gate, scoped to the target's workspace.
	if err := s.requireAdmin(ctx, target.WorkspaceID, actingUserID); err != nil {
		return err
	}

	// 3. Replace the set.
	if err := s.Store.Members().UpdateMemberPermissions(ctx, memberID, perms.Normalize()); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrMemberNotFound
		}
		log.Error("failed to update member permissions",
			slog.String("member_id", memberID),
			slog.Any("error", err),
		)
		return err
	}

	log.Info("member permissions updated",
		slog.String("member_id", memberID),
		slog.String("updated_by", actingUserID),
	)
	return nil
}

// UpdateMemberRoleAndPermissions replaces a member's role and permission set
// in one row write, behind the same admin gate.
func (s *MembershipService) UpdateMemberRoleAndPermissions(
	ctx context.Context,
	memberID string,
	role domain.Role,
	perms domain.Permissions,
	actingUserID string,
) error {
	log := slogx.FromContext(ctx)

	if !role.Valid() {
		return ErrInvalidRole
	}

	target, err := s.Store.Members().GetMember(ctx, memberID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrMemberNotFound
		}
		return err
	}

	if err := s.requireAdmin(ctx, target.WorkspaceID, actingUserID); err != nil {
		return err
	}

	// Demoting an admin counts against the last-admin guard the same way
	// removal does.
	if target.IsAdmin() && role != domain.RoleAdmin {
		n, err := s.Store.Members().CountActiveAdmins(ctx, target.WorkspaceID)
		if err != nil {
			return err
		}
		if n <= 1 {
			return ErrLastAdmin
		}
	}

	if err := s.Store.Members().UpdateMemberRoleAndPermissions(ctx, memberID, role, perms.Normalize()); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrMemberNotFound
		}
		log.Error("failed to update member role",
			slog.String("member_id", memberID),
			slog.Any("error", err),
		)
		return err
	}

	log.Info("member role updated",
		slog.String("member_id", memberID),
		slog.String("role", string(role)),
		slog.String("updated_by", actingUserID),
	)
	return nil
}

// RemoveMember hard-deletes a member record. The acting user must be an
// active admin of the workspace, and the sole remaining active admin can
// never be removed.
func (s *MembershipService) RemoveMember(
	ctx context.Context,
	workspaceID string,
	memberID string,
	actingUserID string,
) error {
	log := slogx.FromContext(ctx)

	// 1. Admin gate.
	if err := s.requireAdmin(ctx, workspaceID, actingUserID); err != nil {
		return err
	}

	// 2. The target must belong to the workspace named in the request.
	target, err := s.Store.Members().GetMember(ctx, memberID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrMemberNotFound
		}
		return err
	}
	if target.WorkspaceID != workspaceID {
		return ErrMemberNotFound
	}

	// 3. Never orphan a workspace by deleting its last active admin.
	if target.IsAdmin() && target.Status == domain.MemberActive {
		n, err := s.Store.Members().CountActiveAdmins(ctx, workspaceID)
		if err != nil {
			return err
		}
		if n <= 1 {
			return ErrLastAdmin
		}
	}

	if err := s.Store.Members().DeleteMember(ctx, memberID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrMemberNotFound
		}
		log.Error("failed to remove member",
			slog.String("member_id", memberID),
			slog.Any("error", err),
		)
		return err
	}

	log.Info("member removed",
		slog.String("workspace_id", workspaceID),
		slog.String("member_id", memberID),
		slog.String("removed_by", actingUserID),
	)
	return nil
}

// SyncAdminPermissions brings the user's active admin membership up to the
// full permission catalog. Returns true when the stored set already matched
// and no write happened. Safe to call on every sign-in.
func (s *MembershipService) SyncAdminPermissions(ctx context.Context, userID string) (bool, error) {
	log := slogx.FromContext(ctx)

	admin, err := s.Store.Members().FindActiveAdminByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return false, ErrNotAdmin
		}
		return false, err
	}

	catalog := domain.AllPermissions()
	if admin.Permissions.Equal(catalog) {
		return true, nil
	}

	if err := s.Store.Members().UpdateMemberPermissions(ctx, admin.ID, catalog); err != nil {
		log.Error("failed to sync admin permissions",
			slog.String("member_id", admin.ID),
			slog.Any("error", err),
		)
		return false, err
	}

	log.Info("admin permissions synced to catalog",
		slog.String("member_id", admin.ID),
		slog.String("user_id", userID),
	)
	return false, nil
}

// IsActiveMember reports whether the user holds an active membership in the
// workspace. Read endpoints gate on membership, not admin standing.
func (s *MembershipService) IsActiveMember(ctx context.Context, workspaceID, userID string) (bool, error) {
	members, err := s.Store.Members().ListActiveMembersByUser(ctx, userID)
	if err != nil {
		return false, err
	}
	for _, m := range members {
		if m.WorkspaceID == workspaceID {
			return true, nil
		}
	}
	return false, nil
}

// requireAdmin re-reads the acting user's membership and fails with
// ErrNotAdmin unless they are an active admin of the workspace.
func (s *MembershipService) requireAdmin(ctx context.Context, workspaceID, userID string) error {
	_, err := s.Store.Members().FindActiveAdmin(ctx, workspaceID, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			slogx.FromContext(ctx).Warn("non-admin attempted privileged member mutation",
				slog.String("workspace_id", workspaceID),
				slog.String("user_id", userID),
			)
			return ErrNotAdmin
		}
		return err
	}
	return nil
}
