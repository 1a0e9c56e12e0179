package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rexahq/workspace-service/internal/workspace/domain"
	"github.com/rexahq/workspace-service/internal/workspace/mail"
	"github.com/rexahq/workspace-service/internal/workspace/store"
	"github.com/rexahq/workspace-service/pkg/idx"
)

// seedExpiredInvitation inserts a nominally pending invitation whose expiry
// has already passed.
func seedExpiredInvitation(t *testing.T, st store.Store, workspaceID, email string) domain.Invitation {
	t.Helper()

	inv := domain.Invitation{
		ID:          idx.New().String(),
		WorkspaceID: workspaceID,
		Email:       email,
		Role:        domain.RoleMember,
		Permissions: domain.Permissions{domain.PermReviewsRead},
		InvitedBy:   "someone",
		Status:      domain.InviteStatusPending,
		Token:       idx.New().String(),
		ExpiresAt:   time.Now().UTC().Add(-time.Hour),
	}
	require.NoError(t, st.Invitations().CreateInvitation(context.Background(), inv))
	return inv
}

func TestInvite(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st := newTestStore(t)
	members := &MembershipService{Store: st}
	svc := &InvitationService{Store: st, Mailer: mail.NopMailer{}}

	ws, _ := seedWorkspace(t, members, "Invite Co", "admin-1", "admin@test.dev")

	t.Run("unknown role rejected", func(t *testing.T) {
		_, err := svc.Invite(ctx, ws.ID, "new@test.dev", domain.Role("owner"), nil, "admin-1", ws.Name, "Admin")
		require.ErrorIs(t, err, ErrInvalidRole)
	})

	t.Run("mints a pending invitation", func(t *testing.T) {
		perms := domain.Permissions{domain.PermReviewsRead, domain.PermReviewsRead, domain.PermAnalyticsRead}
		inv, err := svc.Invite(ctx, ws.ID, "new@test.dev", domain.RoleMember, perms, "admin-1", ws.Name, "Admin")
		require.NoError(t, err)

		require.Equal(t, domain.InviteStatusPending, inv.Status)
		require.NotEmpty(t, inv.Token)
		require.Equal(t, domain.Permissions{domain.PermReviewsRead, domain.PermAnalyticsRead}, inv.Permissions)

		// TTL defaults when the service carries none.
		remaining := time.Until(inv.ExpiresAt)
		require.Greater(t, remaining, DefaultInviteTTL-time.Minute)
		require.LessOrEqual(t, remaining, DefaultInviteTTL)
	})

	t.Run("duplicate pending invitation rejected", func(t *testing.T) {
		_, err := svc.Invite(ctx, ws.ID, "new@test.dev", domain.RoleMember, nil, "admin-1", ws.Name, "Admin")
		require.ErrorIs(t, err, ErrDuplicateInvite)
	})

	t.Run("existing active member rejected", func(t *testing.T) {
		_, err := svc.Invite(ctx, ws.ID, "admin@test.dev", domain.RoleMember, nil, "admin-1", ws.Name, "Admin")
		require.ErrorIs(t, err, ErrAlreadyMember)
	})

	t.Run("custom TTL honoured", func(t *testing.T) {
		short := &InvitationService{Store: st, InviteTTL: time.Hour}
		inv, err := short.Invite(ctx, ws.ID, "short@test.dev", domain.RoleMember, nil, "admin-1", ws.Name, "Admin")
		require.NoError(t, err)
		require.LessOrEqual(t, time.Until(inv.ExpiresAt), time.Hour)
	})
}

func TestAccept(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st := newTestStore(t)
	members := &MembershipService{Store: st}
	svc := &InvitationService{Store: st}

	ws, _ := seedWorkspace(t, members, "Accept Co", "admin-1", "admin@test.dev")

	t.Run("missing invitation", func(t *testing.T) {
		_, err := svc.Accept(ctx, "missing", "user-1", "user@test.dev")
		require.ErrorIs(t, err, ErrInviteNotFound)
	})

	t.Run("redeems and creates membership", func(t *testing.T) {
		inv, err := svc.Invite(ctx, ws.ID, "joiner@test.dev", domain.RoleMember,
			domain.Permissions{domain.PermReviewsRead}, "admin-1", ws.Name, "Admin")
		require.NoError(t, err)

		member, err := svc.Accept(ctx, inv.ID, "joiner-id", "joiner@test.dev")
		require.NoError(t, err)
		require.Equal(t, ws.ID, member.WorkspaceID)
		require.Equal(t, "joiner-id", member.UserID)
		require.Equal(t, domain.RoleMember, member.Role)
		require.Equal(t, domain.MemberActive, member.Status)
		require.Equal(t, inv.Permissions, member.Permissions)
		require.NotNil(t, member.JoinedAt)

		stored, err := st.Invitations().GetInvitation(ctx, inv.ID)
		require.NoError(t, err)
		require.Equal(t, domain.InviteStatusAccepted, stored.Status)

		// A second redemption loses the pending-state race.
		_, err = svc.Accept(ctx, inv.ID, "joiner-id", "joiner@test.dev")
		require.ErrorIs(t, err, ErrInviteNotPending)
	})

	t.Run("email mismatch", func(t *testing.T) {
		inv, err := svc.Invite(ctx, ws.ID, "intended@test.dev", domain.RoleMember, nil, "admin-1", ws.Name, "Admin")
		require.NoError(t, err)

		_, err = svc.Accept(ctx, inv.ID, "impostor-id", "impostor@test.dev")
		require.ErrorIs(t, err, ErrEmailMismatch)

		// The invitation is untouched by the failed attempt.
		stored, err := st.Invitations().GetInvitation(ctx, inv.ID)
		require.NoError(t, err)
		require.Equal(t, domain.InviteStatusPending, stored.Status)
	})

	t.Run("expired invitation", func(t *testing.T) {
		inv := seedExpiredInvitation(t, st, ws.ID, "late@test.dev")

		_, err := svc.Accept(ctx, inv.ID, "late-id", "late@test.dev")
		require.ErrorIs(t, err, ErrInviteExpired)
	})

	t.Run("already a member", func(t *testing.T) {
		// The admin's own email invited to their own workspace: the
		// pre-check duplicate guard is bypassed by inserting directly.
		inv := domain.Invitation{
			ID:          idx.New().String(),
			WorkspaceID: ws.ID,
			Email:       "admin@test.dev",
			Role:        domain.RoleMember,
			InvitedBy:   "someone",
			Status:      domain.InviteStatusPending,
			Token:       idx.New().String(),
			ExpiresAt:   time.Now().UTC().Add(time.Hour),
		}
		require.NoError(t, st.Invitations().CreateInvitation(ctx, inv))

		_, err := svc.Accept(ctx, inv.ID, "admin-1", "admin@test.dev")
		require.ErrorIs(t, err, ErrAlreadyMember)

		// The losing insert rolled the status flip back.
		stored, err := st.Invitations().GetInvitation(ctx, inv.ID)
		require.NoError(t, err)
		require.Equal(t, domain.InviteStatusPending, stored.Status)
	})
}

func TestRejectAndRevoke(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st := newTestStore(t)
	members := &MembershipService{Store: st}
	svc := &InvitationService{Store: st}

	ws, _ := seedWorkspace(t, members, "Decline Co", "admin-1", "admin@test.dev")

	t.Run("reject", func(t *testing.T) {
		inv, err := svc.Invite(ctx, ws.ID, "declined@test.dev", domain.RoleMember, nil, "admin-1", ws.Name, "Admin")
		require.NoError(t, err)

		require.NoError(t, svc.Reject(ctx, inv.ID))

		stored, err := st.Invitations().GetInvitation(ctx, inv.ID)
		require.NoError(t, err)
		require.Equal(t, domain.InviteStatusRejected, stored.Status)

		require.ErrorIs(t, svc.Reject(ctx, "missing"), ErrInviteNotFound)
	})

	t.Run("revoke pending", func(t *testing.T) {
		inv, err := svc.Invite(ctx, ws.ID, "revoked@test.dev", domain.RoleMember, nil, "admin-1", ws.Name, "Admin")
		require.NoError(t, err)

		require.NoError(t, svc.Revoke(ctx, inv.ID, "admin-1"))

		stored, err := st.Invitations().GetInvitation(ctx, inv.ID)
		require.NoError(t, err)
		require.Equal(t, domain.InviteStatusRevoked, stored.Status)
		require.Equal(t, "admin-1", stored.RevokedBy)
		require.NotNil(t, stored.RevokedAt)
	})

	t.Run("revoke is pending-only", func(t *testing.T) {
		inv, err := svc.Invite(ctx, ws.ID, "settled@test.dev", domain.RoleMember, nil, "admin-1", ws.Name, "Admin")
		require.NoError(t, err)
		require.NoError(t, svc.Reject(ctx, inv.ID))

		require.ErrorIs(t, svc.Revoke(ctx, inv.ID, "admin-1"), ErrInviteNotPending)
	})

	t.Run("revoke missing", func(t *testing.T) {
		require.ErrorIs(t, svc.Revoke(ctx, "missing", "admin-1"), ErrInviteNotFound)
	})
}

func TestUpdateInvitation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st := newTestStore(t)
	members := &MembershipService{Store: st}
	svc := &InvitationService{Store: st}

	ws, _ := seedWorkspace(t, members, "Edit Co", "admin-1", "admin@test.dev")

	inv, err := svc.Invite(ctx, ws.ID, "editable@test.dev", domain.RoleMember,
		domain.Permissions{domain.PermReviewsRead}, "admin-1", ws.Name, "Admin")
	require.NoError(t, err)

	t.Run("nil fields leave values alone", func(t *testing.T) {
		role := domain.RoleAdmin
		updated, err := svc.Update(ctx, inv.ID, &role, nil)
		require.NoError(t, err)
		require.Equal(t, domain.RoleAdmin, updated.Role)
		// Permissions survive a role-only edit.
		require.Equal(t, inv.Permissions, updated.Permissions)
	})

	t.Run("permissions-only edit", func(t *testing.T) {
		perms := domain.Permissions{domain.PermReviewsRead, domain.PermReviewsWrite}
		updated, err := svc.Update(ctx, inv.ID, nil, perms)
		require.NoError(t, err)
		require.Equal(t, domain.RoleAdmin, updated.Role)
		require.Equal(t, perms, updated.Permissions)
	})

	t.Run("unknown role rejected", func(t *testing.T) {
		bad := domain.Role("owner")
		_, err := svc.Update(ctx, inv.ID, &bad, nil)
		require.ErrorIs(t, err, ErrInvalidRole)
	})

	t.Run("pending-only", func(t *testing.T) {
		require.NoError(t, svc.Reject(ctx, inv.ID))

		role := domain.RoleMember
		_, err := svc.Update(ctx, inv.ID, &role, nil)
		require.ErrorIs(t, err, ErrInviteNotPending)
	})

	t.Run("missing invitation", func(t *testing.T) {
		role := domain.RoleMember
		_, err := svc.Update(ctx, "missing", &role, nil)
		require.ErrorIs(t, err, ErrInviteNotFound)
	})

	t.Run("edit racing a terminal transition loses", func(t *testing.T) {
		// The service pre-checks pending outside the write, so the store
		// write itself must refuse a row that went terminal in between.
		racing, err := svc.Invite(ctx, ws.ID, "racer@test.dev", domain.RoleMember,
			domain.Permissions{domain.PermReviewsRead}, "admin-1", ws.Name, "Admin")
		require.NoError(t, err)

		_, err = svc.Accept(ctx, racing.ID, "racer-id", "racer@test.dev")
		require.NoError(t, err)

		role := domain.RoleAdmin
		err = st.Invitations().UpdateInvitationRoleAndPermissions(ctx, racing.ID, &role, domain.AllPermissions())
		require.ErrorIs(t, err, store.ErrNotFound)

		// The accepted invitation is untouched.
		stored, err := st.Invitations().GetInvitation(ctx, racing.ID)
		require.NoError(t, err)
		require.Equal(t, domain.InviteStatusAccepted, stored.Status)
		require.Equal(t, domain.RoleMember, stored.Role)
		require.Equal(t, domain.Permissions{domain.PermReviewsRead}, stored.Permissions)
	})
}

func TestListInvitations(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st := newTestStore(t)
	members := &MembershipService{Store: st}
	svc := &InvitationService{Store: st}

	ws, _ := seedWorkspace(t, members, "List Co", "admin-1", "admin@test.dev")

	first, err := svc.Invite(ctx, ws.ID, "one@test.dev", domain.RoleMember, nil, "admin-1", ws.Name, "Admin")
	require.NoError(t, err)
	_, err = svc.Invite(ctx, ws.ID, "two@test.dev", domain.RoleMember, nil, "admin-1", ws.Name, "Admin")
	require.NoError(t, err)
	require.NoError(t, svc.Reject(ctx, first.ID))

	t.Run("all statuses", func(t *testing.T) {
		got, err := svc.ListForWorkspace(ctx, ws.ID, "")
		require.NoError(t, err)
		require.Len(t, got, 2)
	})

	t.Run("filtered by status", func(t *testing.T) {
		got, err := svc.ListForWorkspace(ctx, ws.ID, domain.InviteStatusPending)
		require.NoError(t, err)
		require.Len(t, got, 1)
		require.Equal(t, "two@test.dev", got[0].Email)
	})

	t.Run("invalid filter rejected", func(t *testing.T) {
		_, err := svc.ListForWorkspace(ctx, ws.ID, domain.InvitationStatus("expired"))
		require.ErrorIs(t, err, ErrInvalidStatusFilter)
	})

	t.Run("pending by email across workspaces", func(t *testing.T) {
		other, _ := seedWorkspace(t, members, "Other List Co", "admin-2", "admin2@test.dev")
		_, err := svc.Invite(ctx, other.ID, "two@test.dev", domain.RoleMember, nil, "admin-2", other.Name, "Admin")
		require.NoError(t, err)

		got, err := svc.ListForEmail(ctx, "two@test.dev")
		require.NoError(t, err)
		require.Len(t, got, 2)

		// The rejected invitation never shows up for its invitee.
		got, err = svc.ListForEmail(ctx, "one@test.dev")
		require.NoError(t, err)
		require.Empty(t, got)
	})
}

func TestResolveToken(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st := newTestStore(t)
	members := &MembershipService{Store: st}
	svc := &InvitationService{Store: st}

	ws, _ := seedWorkspace(t, members, "Token Co", "admin-1", "admin@test.dev")

	t.Run("resolves a live token", func(t *testing.T) {
		inv, err := svc.Invite(ctx, ws.ID, "guest@test.dev", domain.RoleMember, nil, "admin-1", ws.Name, "Admin")
		require.NoError(t, err)

		got, err := svc.ResolveToken(ctx, inv.Token)
		require.NoError(t, err)
		require.Equal(t, inv.ID, got.ID)
	})

	t.Run("unknown token", func(t *testing.T) {
		_, err := svc.ResolveToken(ctx, "no-such-token")
		require.ErrorIs(t, err, ErrInviteNotFound)
	})

	t.Run("revoked token collapses to not found", func(t *testing.T) {
		inv, err := svc.Invite(ctx, ws.ID, "pulled@test.dev", domain.RoleMember, nil, "admin-1", ws.Name, "Admin")
		require.NoError(t, err)
		require.NoError(t, svc.Revoke(ctx, inv.ID, "admin-1"))

		_, err = svc.ResolveToken(ctx, inv.Token)
		require.ErrorIs(t, err, ErrInviteNotFound)
	})

	t.Run("expired token collapses to not found", func(t *testing.T) {
		inv := seedExpiredInvitation(t, st, ws.ID, "stale@test.dev")

		_, err := svc.ResolveToken(ctx, inv.Token)
		require.ErrorIs(t, err, ErrInviteNotFound)
	})
}

func TestDeleteExpiredInvitations(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st := newTestStore(t)
	members := &MembershipService{Store: st}
	svc := &InvitationService{Store: st}

	ws, _ := seedWorkspace(t, members, "Sweep Co", "admin-1", "admin@test.dev")

	expired := seedExpiredInvitation(t, st, ws.ID, "old@test.dev")
	live, err := svc.Invite(ctx, ws.ID, "fresh@test.dev", domain.RoleMember, nil, "admin-1", ws.Name, "Admin")
	require.NoError(t, err)

	// A terminal record past the cutoff is retained for auditability.
	rejected, err := svc.Invite(ctx, ws.ID, "kept@test.dev", domain.RoleMember, nil, "admin-1", ws.Name, "Admin")
	require.NoError(t, err)
	require.NoError(t, svc.Reject(ctx, rejected.ID))

	n, err := st.Invitations().DeleteExpiredInvitations(ctx, time.Now().UTC())
	require.NoError(t, err)
	require.Equal(t, 1, n)

	_, err = st.Invitations().GetInvitation(ctx, expired.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = st.Invitations().GetInvitation(ctx, live.ID)
	require.NoError(t, err)
	_, err = st.Invitations().GetInvitation(ctx, rejected.ID)
	require.NoError(t, err)
}
