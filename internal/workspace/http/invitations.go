package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rexahq/workspace-service/internal/workspace/authz"
	"github.com/rexahq/workspace-service/internal/workspace/domain"
	"github.com/rexahq/workspace-service/internal/workspace/service"
	"github.com/rexahq/workspace-service/pkg/httpx"
	"github.com/rexahq/workspace-service/pkg/slogx"
	"github.com/rexahq/workspace-service/pkg/wssdk"
)

type InvitationsHandler struct {
	InvitationService *service.InvitationService
	MembershipService *service.MembershipService
}

// HandleCreate godoc
//
//	@Summary		Create Invitation
//	@Description	Invite an email address into a workspace with a role and permission set. Admin or team:invite permission required.
//	@Description	The invitee receives an email with a one-time link; the invitation expires after the configured TTL (7 days by default).
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Workspace ID"
//	@Param			request	body		wssdk.CreateInvitationRequest	true	"Invitation details"
//	@Success		201		{object}	wssdk.InvitationResponse		"invitation with token"
//	@Failure		400		{object}	wssdk.ErrorResponse				"error, error_description"
//	@Failure		401		{object}	wssdk.ErrorResponse				"error, error_description"
//	@Failure		403		{object}	wssdk.ErrorResponse				"error, error_description"
//	@Failure		409		{object}	wssdk.ErrorResponse				"error, error_description"
//	@Failure		500		{object}	wssdk.ErrorResponse				"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/workspaces/{id}/invitations [post].
func (h *InvitationsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	workspaceID := r.PathValue("id")

	var req wssdk.CreateInvitationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, wssdk.ErrorResponse{
			Error:            wssdk.ErrorCodeInvalidRequest,
			ErrorDescription: "Invalid JSON body",
		})
		return
	}
	if req.Email == "" {
		httpx.WriteJSON(w, http.StatusBadRequest, wssdk.ErrorResponse{
			Error:            wssdk.ErrorCodeInvalidRequest,
			ErrorDescription: "email is required",
		})
		return
	}

	perms, err := domain.ParsePermissions(req.Permissions)
	if err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, wssdk.ErrorResponse{
			Error:            wssdk.ErrorCodeInvalidRequest,
			ErrorDescription: err.Error(),
		})
		return
	}

	if !h.canInvite(r, workspaceID) {
		httpx.WriteJSON(w, http.StatusForbidden, wssdk.ErrorResponse{
			Error:            wssdk.ErrorCodeForbidden,
			ErrorDescription: "You do not have permission to invite members",
		})
		return
	}

	inv, err := h.InvitationService.Invite(
		ctx, workspaceID, normalizeEmail(req.Email), domain.Role(req.Role), perms,
		httpx.UserIDFromCtx(ctx), req.WorkspaceName, req.InviterName,
	)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRole):
			httpx.WriteJSON(w, http.StatusBadRequest, wssdk.ErrorResponse{
				Error:            wssdk.ErrorCodeInvalidRequest,
				ErrorDescription: "role must be admin or member",
			})
		case errors.Is(err, service.ErrAlreadyMember):
			httpx.WriteJSON(w, http.StatusConflict, wssdk.ErrorResponse{
				Error:            wssdk.ErrorCodeConflict,
				ErrorDescription: "This email already belongs to a member of the workspace",
			})
		case errors.Is(err, service.ErrDuplicateInvite):
			httpx.WriteJSON(w, http.StatusConflict, wssdk.ErrorResponse{
				Error:            wssdk.ErrorCodeConflict,
				ErrorDescription: "A pending invitation already exists for this email",
			})
		default:
			log.Error("failed to create invitation", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, wssdk.ErrorResponse{
				Error:            wssdk.ErrorCodeServerError,
				ErrorDescription: "Failed to create invitation",
			})
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toInvitationResponse(inv, true))
}

// HandleListWorkspace godoc
//
//	@Summary		List Workspace Invitations
//	@Description	List a workspace's invitations, newest first, optionally filtered by status (pending, accepted, rejected, revoked).
//	@Tags			Invitations
//	@Produce		json
//	@Param			id		path		string							true	"Workspace ID"
//	@Param			status	query		string							false	"Status filter"
//	@Success		200		{object}	wssdk.InvitationListResponse	"invitations"
//	@Failure		400		{object}	wssdk.ErrorResponse				"error, error_description"
//	@Failure		401		{object}	wssdk.ErrorResponse				"error, error_description"
//	@Failure		403		{object}	wssdk.ErrorResponse				"error, error_description"
//	@Failure		500		{object}	wssdk.ErrorResponse				"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/workspaces/{id}/invitations [get].
func (h *InvitationsHandler) HandleListWorkspace(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	workspaceID := r.PathValue("id")

	if !h.canInvite(r, workspaceID) {
		httpx.WriteJSON(w, http.StatusForbidden, wssdk.ErrorResponse{
			Error:            wssdk.ErrorCodeForbidden,
			ErrorDescription: "You do not have permission to view invitations",
		})
		return
	}

	status := domain.InvitationStatus(r.URL.Query().Get("status"))
	invs, err := h.InvitationService.ListForWorkspace(ctx, workspaceID, status)
	if err != nil {
		if errors.Is(err, service.ErrInvalidStatusFilter) {
			httpx.WriteJSON(w, http.StatusBadRequest, wssdk.ErrorResponse{
				Error:            wssdk.ErrorCodeInvalidRequest,
				ErrorDescription: "status must be pending, accepted, rejected or revoked",
			})
			return
		}
		log.Error("failed to list invitations", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, wssdk.ErrorResponse{
			Error:            wssdk.ErrorCodeServerError,
			ErrorDescription: "Failed to list invitations",
		})
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toInvitationListResponse(invs))
}

// HandleListMine godoc
//
//	@Summary		List My Invitations
//	@Description	List the caller's pending invitations across all workspaces, matched by the email in their identity token.
//	@Tags			Invitations
//	@Produce		json
//	@Success		200	{object}	wssdk.InvitationListResponse	"invitations"
//	@Failure		401	{object}	wssdk.ErrorResponse				"error, error_description"
//	@Failure		500	{object}	wssdk.ErrorResponse				"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/invitations [get].
func (h *InvitationsHandler) HandleListMine(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	email := normalizeEmail(httpx.UserEmailFromCtx(ctx))
	if email == "" {
		httpx.WriteJSON(w, http.StatusUnauthorized, wssdk.ErrorResponse{
			Error:            wssdk.ErrorCodeUnauthorized,
			ErrorDescription: "Identity token carries no email",
		})
		return
	}

	invs, err := h.InvitationService.ListForEmail(ctx, email)
	if err != nil {
		log.Error("failed to list invitations", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, wssdk.ErrorResponse{
			Error:            wssdk.ErrorCodeServerError,
			ErrorDescription: "Failed to list invitations",
		})
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toInvitationListResponse(invs))
}

// HandleResolveToken godoc
//
//	@Summary		Resolve Invitation Token
//	@Description	Resolve an invitation from its emailed token for the invite landing page. Misses, terminal states and expiry all surface the same way.
//	@Tags			Invitations
//	@Produce		json
//	@Param			token	path		string						true	"Invitation token"
//	@Success		200		{object}	wssdk.InvitationResponse	"invitation"
//	@Failure		404		{object}	wssdk.ErrorResponse			"error, error_description"
//	@Failure		500		{object}	wssdk.ErrorResponse			"error, error_description"
//	@Router			/v1/invitations/token/{token} [get].
func (h *InvitationsHandler) HandleResolveToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	inv, err := h.InvitationService.ResolveToken(ctx, r.PathValue("token"))
	if err != nil {
		if errors.Is(err, service.ErrInviteNotFound) {
			httpx.WriteJSON(w, http.StatusNotFound, wssdk.ErrorResponse{
				Error:            wssdk.ErrorCodeNotFound,
				ErrorDescription: "Invitation is invalid or has expired",
			})
			return
		}
		log.Error("failed to resolve invitation token", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, wssdk.ErrorResponse{
			Error:            wssdk.ErrorCodeServerError,
			ErrorDescription: "Failed to resolve invitation",
		})
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toInvitationResponse(inv, true))
}

// HandleUpdate godoc
//
//	@Summary		Update Invitation
//	@Description	Edit a pending invitation's role and/or permissions. Admin or team:invite permission required. Terminal invitations cannot be edited.
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Invitation ID"
//	@Param			request	body		wssdk.UpdateInvitationRequest	true	"Fields to update"
//	@Success		200		{object}	wssdk.InvitationResponse		"updated invitation"
//	@Failure		400		{object}	wssdk.ErrorResponse				"error, error_description"
//	@Failure		401		{object}	wssdk.ErrorResponse				"error, error_description"
//	@Failure		403		{object}	wssdk.ErrorResponse				"error, error_description"
//	@Failure		404		{object}	wssdk.ErrorResponse				"error, error_description"
//	@Failure		409		{object}	wssdk.ErrorResponse				"error, error_description"
//	@Failure		500		{object}	wssdk.ErrorResponse				"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/invitations/{id} [patch].
func (h *InvitationsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	inviteID := r.PathValue("id")

	var req wssdk.UpdateInvitationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, wssdk.ErrorResponse{
			Error:            wssdk.ErrorCodeInvalidRequest,
			ErrorDescription: "Invalid JSON body",
		})
		return
	}

	var perms domain.Permissions
	if req.Permissions != nil {
		parsed, err := domain.ParsePermissions(req.Permissions)
		if err != nil {
			httpx.WriteJSON(w, http.StatusBadRequest, wssdk.ErrorResponse{
				Error:            wssdk.ErrorCodeInvalidRequest,
				ErrorDescription: err.Error(),
			})
			return
		}
		perms = parsed
	}

	var role *domain.Role
	if req.Role != nil {
		v := domain.Role(*req.Role)
		role = &v
	}

	if !h.canManageInvitation(r, inviteID) {
		httpx.WriteJSON(w, http.StatusForbidden, wssdk.ErrorResponse{
			Error:            wssdk.ErrorCodeForbidden,
			ErrorDescription: "You do not have permission to manage invitations",
		})
		return
	}

	inv, err := h.InvitationService.Update(ctx, inviteID, role, perms)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRole):
			httpx.WriteJSON(w, http.StatusBadRequest, wssdk.ErrorResponse{
				Error:            wssdk.ErrorCodeInvalidRequest,
				ErrorDescription: "role must be admin or member",
			})
		case errors.Is(err, service.ErrInviteNotFound):
			httpx.WriteJSON(w, http.StatusNotFound, wssdk.ErrorResponse{
				Error:            wssdk.ErrorCodeNotFound,
				ErrorDescription: "Invitation not found",
			})
		case errors.Is(err, service.ErrInviteNotPending):
			httpx.WriteJSON(w, http.StatusConflict, wssdk.ErrorResponse{
				Error:            wssdk.ErrorCodeInvalidState,
				ErrorDescription: "Invitation is no longer pending",
			})
		default:
			log.Error("failed to update invitation", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, wssdk.ErrorResponse{
				Error:            wssdk.ErrorCodeServerError,
				ErrorDescription: "Failed to update invitation",
			})
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toInvitationResponse(inv, false))
}

// HandleAccept godoc
//
//	@Summary		Accept Invitation
//	@Description	Accept a pending invitation as the signed-in user, creating an active membership. The identity token's email must match the invitee's.
//	@Tags			Invitations
//	@Produce		json
//	@Param			id	path		string				true	"Invitation ID"
//	@Success		200	{object}	wssdk.MemberResponse	"new membership"
//	@Failure		401	{object}	wssdk.ErrorResponse		"error, error_description"
//	@Failure		403	{object}	wssdk.ErrorResponse		"error, error_description"
//	@Failure		404	{object}	wssdk.ErrorResponse		"error, error_description"
//	@Failure		409	{object}	wssdk.ErrorResponse		"error, error_description"
//	@Failure		410	{object}	wssdk.ErrorResponse		"error, error_description"
//	@Failure		500	{object}	wssdk.ErrorResponse		"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/invitations/{id}/accept [post].
func (h *InvitationsHandler) HandleAccept(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	member, err := h.InvitationService.Accept(
		ctx, r.PathValue("id"), httpx.UserIDFromCtx(ctx), normalizeEmail(httpx.UserEmailFromCtx(ctx)),
	)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInviteNotFound):
			httpx.WriteJSON(w, http.StatusNotFound, wssdk.ErrorResponse{
				Error:            wssdk.ErrorCodeNotFound,
				ErrorDescription: "Invitation not found",
			})
		case errors.Is(err, service.ErrInviteNotPending):
			httpx.WriteJSON(w, http.StatusConflict, wssdk.ErrorResponse{
				Error:            wssdk.ErrorCodeInvalidState,
				ErrorDescription: "Invitation is no longer valid",
			})
		case errors.Is(err, service.ErrInviteExpired):
			httpx.WriteJSON(w, http.StatusGone, wssdk.ErrorResponse{
				Error:            wssdk.ErrorCodeExpired,
				ErrorDescription: "Invitation has expired",
			})
		case errors.Is(err, service.ErrEmailMismatch):
			httpx.WriteJSON(w, http.StatusForbidden, wssdk.ErrorResponse{
				Error:            wssdk.ErrorCodeForbidden,
				ErrorDescription: "This invitation is for a different email address",
			})
		case errors.Is(err, service.ErrAlreadyMember):
			httpx.WriteJSON(w, http.StatusConflict, wssdk.ErrorResponse{
				Error:            wssdk.ErrorCodeConflict,
				ErrorDescription: "You are already a member of this workspace",
			})
		default:
			log.Error("failed to accept invitation", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, wssdk.ErrorResponse{
				Error:            wssdk.ErrorCodeServerError,
				ErrorDescription: "Failed to accept invitation",
			})
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toMemberResponse(member))
}

// HandleReject godoc
//
//	@Summary		Reject Invitation
//	@Description	Decline an invitation addressed to the caller's email. Rejecting is always allowed, even after expiry.
//	@Tags			Invitations
//	@Produce		json
//	@Param			id	path	string	true	"Invitation ID"
//	@Success		204	"rejected"
//	@Failure		401	{object}	wssdk.ErrorResponse	"error, error_description"
//	@Failure		403	{object}	wssdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	wssdk.ErrorResponse	"error, error_description"
//	@Failure		500	{object}	wssdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/invitations/{id}/reject [post].
func (h *InvitationsHandler) HandleReject(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	inviteID := r.PathValue("id")

	// Only the invitee may reject; ownership is the email on the invitation.
	inv, err := h.InvitationService.Store.Invitations().GetInvitation(ctx, inviteID)
	if err == nil && inv.Email != normalizeEmail(httpx.UserEmailFromCtx(ctx)) {
		httpx.WriteJSON(w, http.StatusForbidden, wssdk.ErrorResponse{
			Error:            wssdk.ErrorCodeForbidden,
			ErrorDescription: "This invitation is for a different email address",
		})
		return
	}

	if err := h.InvitationService.Reject(ctx, inviteID); err != nil {
		if errors.Is(err, service.ErrInviteNotFound) {
			httpx.WriteJSON(w, http.StatusNotFound, wssdk.ErrorResponse{
				Error:            wssdk.ErrorCodeNotFound,
				ErrorDescription: "Invitation not found",
			})
			return
		}
		log.Error("failed to reject invitation", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, wssdk.ErrorResponse{
			Error:            wssdk.ErrorCodeServerError,
			ErrorDescription: "Failed to reject invitation",
		})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleRevoke godoc
//
//	@Summary		Revoke Invitation
//	@Description	Withdraw a pending invitation. Admin or team:invite permission required. Terminal invitations cannot be revoked.
//	@Tags			Invitations
//	@Produce		json
//	@Param			id	path	string	true	"Invitation ID"
//	@Success		204	"revoked"
//	@Failure		401	{object}	wssdk.ErrorResponse	"error, error_description"
//	@Failure		403	{object}	wssdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	wssdk.ErrorResponse	"error, error_description"
//	@Failure		409	{object}	wssdk.ErrorResponse	"error, error_description"
//	@Failure		500	{object}	wssdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/invitations/{id}/revoke [post].
func (h *InvitationsHandler) HandleRevoke(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	inviteID := r.PathValue("id")

	if !h.canManageInvitation(r, inviteID) {
		httpx.WriteJSON(w, http.StatusForbidden, wssdk.ErrorResponse{
			Error:            wssdk.ErrorCodeForbidden,
			ErrorDescription: "You do not have permission to manage invitations",
		})
		return
	}

	err := h.InvitationService.Revoke(ctx, inviteID, httpx.UserIDFromCtx(ctx))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInviteNotFound):
			httpx.WriteJSON(w, http.StatusNotFound, wssdk.ErrorResponse{
				Error:            wssdk.ErrorCodeNotFound,
				ErrorDescription: "Invitation not found",
			})
		case errors.Is(err, service.ErrInviteNotPending):
			httpx.WriteJSON(w, http.StatusConflict, wssdk.ErrorResponse{
				Error:            wssdk.ErrorCodeInvalidState,
				ErrorDescription: "Invitation is no longer pending",
			})
		default:
			log.Error("failed to revoke invitation", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, wssdk.ErrorResponse{
				Error:            wssdk.ErrorCodeServerError,
				ErrorDescription: "Failed to revoke invitation",
			})
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// canInvite reports whether the caller may manage a workspace's invitations:
// an active admin, or a member holding the team:invite permission.
func (h *InvitationsHandler) canInvite(r *http.Request, workspaceID string) bool {
	ctx := r.Context()

	members, err := h.MembershipService.Store.Members().ListActiveMembersByUser(ctx, httpx.UserIDFromCtx(ctx))
	if err != nil {
		return false
	}
	for _, m := range members {
		if m.WorkspaceID == workspaceID {
			return authz.FromMember(m).CanInviteUsers()
		}
	}
	return false
}

// canManageInvitation resolves the invitation's workspace and applies the
// same invite-management gate.
func (h *InvitationsHandler) canManageInvitation(r *http.Request, inviteID string) bool {
	inv, err := h.InvitationService.Store.Invitations().GetInvitation(r.Context(), inviteID)
	if err != nil {
		// Let the service produce the 404.
		return true
	}
	return h.canInvite(r, inv.WorkspaceID)
}
