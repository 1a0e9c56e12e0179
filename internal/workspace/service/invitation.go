package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/rexahq/workspace-service/internal/workspace/domain"
	"github.com/rexahq/workspace-service/internal/workspace/mail"
	"github.com/rexahq/workspace-service/internal/workspace/store"
	"github.com/rexahq/workspace-service/pkg/cryptox"
	"github.com/rexahq/workspace-service/pkg/idx"
	"github.com/rexahq/workspace-service/pkg/slogx"
)

// DefaultInviteTTL is how long a freshly minted invitation stays acceptable.
const DefaultInviteTTL = 7 * 24 * time.Hour

var (
	ErrAlreadyMember    = errors.New("user is already a member of this workspace")
	ErrDuplicateInvite  = errors.New("a pending invitation already exists for this email")
	ErrInviteNotFound   = errors.New("invitation not found")
	ErrInviteNotPending = errors.New("invitation is no longer pending")
	ErrInviteExpired    = errors.New("invitation has expired")
	ErrEmailMismatch    = errors.New("invitation was issued for a different email")

	ErrInvalidStatusFilter = errors.New("invalid invitation status filter")
)

// InvitationService owns the invitation lifecycle: minting, the pending ->
// accepted/rejected/revoked state machine, and token resolution. Email
// delivery is best-effort and never gates persistence.
type InvitationService struct {
	Store  store.Store
	Mailer mail.Mailer

	// InviteTTL is the validity window for new invitations. Zero means
	// DefaultInviteTTL.
	InviteTTL time.Duration
}

// Invite mints a pending invitation for an email address. Duplicate guards:
// the email must not belong to an active member, and at most one pending
// invitation may exist per (workspace, email) pair.
//
// workspaceName and inviterName only feed the notification email; when the
// mailer is absent the invitation is still created.
func (s *InvitationService) Invite(
	ctx context.Context,
	workspaceID string,
	email string,
	role domain.Role,
	perms domain.Permissions,
	invitedBy string,
	workspaceName string,
	inviterName string,
) (domain.Invitation, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate the role.
	if !role.Valid() {
		return domain.Invitation{}, ErrInvalidRole
	}

	// 2. Refuse when the email already holds an active membership.
	_, err := s.Store.Members().FindActiveMemberByEmail(ctx, workspaceID, email)
	if err == nil {
		return domain.Invitation{}, ErrAlreadyMember
	}
	if !errors.Is(err, store.ErrNotFound) {
		log.Error("failed to check existing membership", slog.Any("error", err))
		return domain.Invitation{}, err
	}

	// 3. Refuse when a pending invitation already exists.
	_, err = s.Store.Invitations().FindPendingInvitation(ctx, workspaceID, email)
	if err == nil {
		return domain.Invitation{}, ErrDuplicateInvite
	}
	if !errors.Is(err, store.ErrNotFound) {
		log.Error("failed to check pending invitations", slog.Any("error", err))
		return domain.Invitation{}, err
	}

	// 4. Generate the opaque token.
	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		log.Error("failed to generate invitation token", slog.Any("error", err))
		return domain.Invitation{}, err
	}

	ttl := s.InviteTTL
	if ttl <= 0 {
		ttl = DefaultInviteTTL
	}

	now := time.Now().UTC()
	inv := domain.Invitation{
		ID:          idx.New().String(),
		WorkspaceID: workspaceID,
		Email:       email,
		Role:        role,
		Permissions: perms.Normalize(),
		InvitedBy:   invitedBy,
		Status:      domain.InviteStatusPending,
		Token:       token,
		ExpiresAt:   now.Add(ttl),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	// 5. Persist before any delivery attempt.
	if err := s.Store.Invitations().CreateInvitation(ctx, inv); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Invitation{}, ErrDuplicateInvite
		}
		log.Error("failed to create invitation",
			slog.String("workspace_id", workspaceID),
			slog.Any("error", err),
		)
		return domain.Invitation{}, err
	}

	log.Info("invitation created",
		slog.String("invitation_id", inv.ID),
		slog.String("workspace_id", workspaceID),
		slog.String("role", string(role)),
		slog.String("invited_by", invitedBy),
	)

	// 6. Fire the notification email without blocking the caller. A
	// delivery failure is logged and swallowed; the invitation stands.
	if s.Mailer != nil {
		go func() {
			err := s.Mailer.SendInvitation(context.Background(), mail.Invitation{
				To:            inv.Email,
				WorkspaceName: workspaceName,
				InviterName:   inviterName,
				Token:         inv.Token,
				Role:          inv.Role,
				Permissions:   inv.Permissions,
			})
			if err != nil {
				log.Warn("failed to send invitation email",
					slog.String("invitation_id", inv.ID),
					slog.Any("error", err),
				)
			}
		}()
	}

	return inv, nil
}

// Accept redeems a pending invitation for the signed-in user and creates
// their membership. The status flip and the member insert commit in one
// transaction; when two acceptors race, exactly one wins and the loser gets
// ErrInviteNotPending.
func (s *InvitationService) Accept(
	ctx context.Context,
	inviteID string,
	userID string,
	userEmail string,
) (domain.Member, error) {
	log := slogx.FromContext(ctx)

	// 1. Load and pre-check outside the transaction for precise errors.
	inv, err := s.Store.Invitations().GetInvitation(ctx, inviteID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Member{}, ErrInviteNotFound
		}
		return domain.Member{}, err
	}

	now := time.Now().UTC()
	if inv.Status != domain.InviteStatusPending {
		return domain.Member{}, ErrInviteNotPending
	}
	if inv.Expired(now) {
		return domain.Member{}, ErrInviteExpired
	}
	if inv.Email != userEmail {
		log.Warn("invitation email mismatch on accept",
			slog.String("invitation_id", inv.ID),
			slog.String("user_id", userID),
		)
		return domain.Member{}, ErrEmailMismatch
	}

	member := domain.Member{
		ID:          idx.New().String(),
		WorkspaceID: inv.WorkspaceID,
		UserID:      userID,
		Email:       inv.Email,
		Role:        inv.Role,
		Permissions: inv.Permissions,
		Status:      domain.MemberActive,
		InvitedBy:   inv.InvitedBy,
		InvitedAt:   &inv.CreatedAt,
		JoinedAt:    &now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	// 2. Flip the status and insert the member atomically. The conditional
	// pending-only update doubles as the race guard.
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Invitations().MarkInvitationAccepted(ctx, inv.ID); err != nil {
			return err
		}
		return tx.Members().CreateMember(ctx, member)
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Lost the race: someone flipped the invitation first.
			return domain.Member{}, ErrInviteNotPending
		}
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Member{}, ErrAlreadyMember
		}
		log.Error("failed to accept invitation",
			slog.String("invitation_id", inv.ID),
			slog.Any("error", err),
		)
		return domain.Member{}, err
	}

	log.Info("invitation accepted",
		slog.String("invitation_id", inv.ID),
		slog.String("workspace_id", inv.WorkspaceID),
		slog.String("member_id", member.ID),
	)
	return member, nil
}

// Reject marks an invitation rejected. The write is unconditional: rejecting
// an already-terminal invitation simply restates the refusal. Ownership of
// the invitation is checked at the transport layer.
func (s *InvitationService) Reject(ctx context.Context, inviteID string) error {
	log := slogx.FromContext(ctx)

	if _, err := s.Store.Invitations().GetInvitation(ctx, inviteID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrInviteNotFound
		}
		return err
	}

	if err := s.Store.Invitations().MarkInvitationRejected(ctx, inviteID); err != nil {
		log.Error("failed to reject invitation",
			slog.String("invitation_id", inviteID),
			slog.Any("error", err),
		)
		return err
	}

	log.Info("invitation rejected", slog.String("invitation_id", inviteID))
	return nil
}

// Revoke withdraws a pending invitation, recording who revoked it and when.
// Terminal invitations cannot be revoked.
func (s *InvitationService) Revoke(ctx context.Context, inviteID, revokedBy string) error {
	log := slogx.FromContext(ctx)

	if _, err := s.Store.Invitations().GetInvitation(ctx, inviteID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrInviteNotFound
		}
		return err
	}

	err := s.Store.Invitations().MarkInvitationRevoked(ctx, inviteID, revokedBy, time.Now().UTC())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrInviteNotPending
		}
		log.Error("failed to revoke invitation",
			slog.String("invitation_id", inviteID),
			slog.Any("error", err),
		)
		return err
	}

	log.Info("invitation revoked",
		slog.String("invitation_id", inviteID),
		slog.String("revoked_by", revokedBy),
	)
	return nil
}

// Update edits a pending invitation's role and/or permissions in place. Nil
// role leaves the role alone; nil perms leave the set alone.
func (s *InvitationService) Update(
	ctx context.Context,
	inviteID string,
	role *domain.Role,
	perms domain.Permissions,
) (domain.Invitation, error) {
	log := slogx.FromContext(ctx)

	if role != nil && !role.Valid() {
		return domain.Invitation{}, ErrInvalidRole
	}

	inv, err := s.Store.Invitations().GetInvitation(ctx, inviteID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Invitation{}, ErrInviteNotFound
		}
		return domain.Invitation{}, err
	}
	if inv.Status != domain.InviteStatusPending {
		return domain.Invitation{}, ErrInviteNotPending
	}

	// A nil perms slice means "leave the stored set alone".
	if perms != nil {
		perms = perms.Normalize()
	}
	if err := s.Store.Invitations().UpdateInvitationRoleAndPermissions(ctx, inviteID, role, perms); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Invitation{}, ErrInviteNotPending
		}
		log.Error("failed to update invitation",
			slog.String("invitation_id", inviteID),
			slog.Any("error", err),
		)
		return domain.Invitation{}, err
	}

	updated, err := s.Store.Invitations().GetInvitation(ctx, inviteID)
	if err != nil {
		return domain.Invitation{}, err
	}

	log.Info("invitation updated", slog.String("invitation_id", inviteID))
	return updated, nil
}

// ListForWorkspace returns a workspace's invitations, optionally filtered by
// status. An empty filter lists everything.
func (s *InvitationService) ListForWorkspace(
	ctx context.Context,
	workspaceID string,
	status domain.InvitationStatus,
) ([]domain.Invitation, error) {
	if status != "" && !status.ValidFilter() {
		return nil, ErrInvalidStatusFilter
	}
	return s.Store.Invitations().ListWorkspaceInvitations(ctx, workspaceID, status)
}

// ListForEmail returns the pending invitations awaiting an email address
// across all workspaces.
func (s *InvitationService) ListForEmail(ctx context.Context, email string) ([]domain.Invitation, error) {
	return s.Store.Invitations().ListPendingInvitationsByEmail(ctx, email)
}

// ResolveToken resolves an invitation from its opaque token for the public
// invite landing page. Any miss, terminal status, or expiry collapses into
// ErrInviteNotFound so the token endpoint leaks nothing about why.
func (s *InvitationService) ResolveToken(ctx context.Context, token string) (domain.Invitation, error) {
	inv, err := s.Store.Invitations().GetPendingInvitationByToken(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Invitation{}, ErrInviteNotFound
		}
		return domain.Invitation{}, err
	}
	if !inv.Acceptable(time.Now().UTC()) {
		return domain.Invitation{}, ErrInviteNotFound
	}
	return inv, nil
}
