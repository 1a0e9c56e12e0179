package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/rexahq/workspace-service/internal/workspace/domain"
	"github.com/rexahq/workspace-service/internal/workspace/service"
	"github.com/rexahq/workspace-service/pkg/httpx"
	"github.com/rexahq/workspace-service/pkg/slogx"
	"github.com/rexahq/workspace-service/pkg/wssdk"
)

type MembersHandler struct {
	MembershipService *service.MembershipService
}

// normalizeEmail lowercases an email address so membership and invitation
// matching is case-insensitive at the API edge. The services compare exact
// strings.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// HandleList godoc
//
//	@Summary		List Workspace Members
//	@Description	List every member of a workspace, newest first. Caller must be an active member of the workspace.
//	@Tags			Members
//	@Produce		json
//	@Param			id	path		string						true	"Workspace ID"
//	@Success		200	{object}	wssdk.MemberListResponse	"members"
//	@Failure		401	{object}	wssdk.ErrorResponse			"error, error_description"
//	@Failure		403	{object}	wssdk.ErrorResponse			"error, error_description"
//	@Failure		500	{object}	wssdk.ErrorResponse			"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/workspaces/{id}/members [get].
func (h *MembersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	workspaceID := r.PathValue("id")

	// Membership of the workspace, not admin, gates reads.
	ok, err := h.MembershipService.IsActiveMember(ctx, workspaceID, httpx.UserIDFromCtx(ctx))
	if err != nil {
		log.Error("failed to check membership", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, wssdk.ErrorResponse{
			Error:            wssdk.ErrorCodeServerError,
			ErrorDescription: "Failed to list members",
		})
		return
	}
	if !ok {
		httpx.WriteJSON(w, http.StatusForbidden, wssdk.ErrorResponse{
			Error:            wssdk.ErrorCodeForbidden,
			ErrorDescription: "You are not a member of this workspace",
		})
		return
	}

	members, err := h.MembershipService.ListMembers(ctx, workspaceID)
	if err != nil {
		log.Error("failed to list members", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, wssdk.ErrorResponse{
			Error:            wssdk.ErrorCodeServerError,
			ErrorDescription: "Failed to list members",
		})
		return
	}

	resp := wssdk.MemberListResponse{Members: make([]wssdk.MemberResponse, 0, len(members))}
	for _, m := range members {
		resp.Members = append(resp.Members, toMemberResponse(m))
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleUpdatePermissions godoc
//
//	@Summary		Update Member Permissions
//	@Description	Replace a member's permission set. Admin only; the acting user's admin standing is re-read from the store.
//	@Tags			Members
//	@Accept			json
//	@Produce		json
//	@Param			id		path	string									true	"Member ID"
//	@Param			request	body	wssdk.UpdateMemberPermissionsRequest	true	"New permission set"
//	@Success		204		"updated"
//	@Failure		400		{object}	wssdk.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	wssdk.ErrorResponse	"error, error_description"
//	@Failure		403		{object}	wssdk.ErrorResponse	"error, error_description"
//	@Failure		404		{object}	wssdk.ErrorResponse	"error, error_description"
//	@Failure		500		{object}	wssdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/members/{id}/permissions [patch].
func (h *MembersHandler) HandleUpdatePermissions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req wssdk.UpdateMemberPermissionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, wssdk.ErrorResponse{
			Error:            wssdk.ErrorCodeInvalidRequest,
			ErrorDescription: "Invalid JSON body",
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

	err = h.MembershipService.UpdateMemberPermissions(ctx, r.PathValue("id"), perms, httpx.UserIDFromCtx(ctx))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotAdmin):
			httpx.WriteJSON(w, http.StatusForbidden, wssdk.ErrorResponse{
				Error:            wssdk.ErrorCodeForbidden,
				ErrorDescription: "Only admins can update member permissions",
			})
		case errors.Is(err, service.ErrMemberNotFound):
			httpx.WriteJSON(w, http.StatusNotFound, wssdk.ErrorResponse{
				Error:            wssdk.ErrorCodeNotFound,
				ErrorDescription: "Member not found",
			})
		default:
			log.Error("failed to update member permissions", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, wssdk.ErrorResponse{
				Error:            wssdk.ErrorCodeServerError,
				ErrorDescription: "Failed to update member permissions",
			})
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleUpdate godoc
//
//	@Summary		Update Member Role
//	@Description	Replace a member's role and permission set in one write. Admin only. The last remaining admin cannot be demoted.
//	@Tags			Members
//	@Accept			json
//	@Produce		json
//	@Param			id		path	string						true	"Member ID"
//	@Param			request	body	wssdk.UpdateMemberRequest	true	"New role and permission set"
//	@Success		204		"updated"
//	@Failure		400		{object}	wssdk.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	wssdk.ErrorResponse	"error, error_description"
//	@Failure		403		{object}	wssdk.ErrorResponse	"error, error_description"
//	@Failure		404		{object}	wssdk.ErrorResponse	"error, error_description"
//	@Failure		409		{object}	wssdk.ErrorResponse	"error, error_description"
//	@Failure		500		{object}	wssdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/members/{id} [patch].
func (h *MembersHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req wssdk.UpdateMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, wssdk.ErrorResponse{
			Error:            wssdk.ErrorCodeInvalidRequest,
			ErrorDescription: "Invalid JSON body",
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

	err = h.MembershipService.UpdateMemberRoleAndPermissions(
		ctx, r.PathValue("id"), domain.Role(req.Role), perms, httpx.UserIDFromCtx(ctx),
	)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRole):
			httpx.WriteJSON(w, http.StatusBadRequest, wssdk.ErrorResponse{
				Error:            wssdk.ErrorCodeInvalidRequest,
				ErrorDescription: "role must be admin or member",
			})
		case errors.Is(err, service.ErrNotAdmin):
			httpx.WriteJSON(w, http.StatusForbidden, wssdk.ErrorResponse{
				Error:            wssdk.ErrorCodeForbidden,
				ErrorDescription: "Only admins can update member roles",
			})
		case errors.Is(err, service.ErrMemberNotFound):
			httpx.WriteJSON(w, http.StatusNotFound, wssdk.ErrorResponse{
				Error:            wssdk.ErrorCodeNotFound,
				ErrorDescription: "Member not found",
			})
		case errors.Is(err, service.ErrLastAdmin):
			httpx.WriteJSON(w, http.StatusConflict, wssdk.ErrorResponse{
				Error:            wssdk.ErrorCodeConflict,
				ErrorDescription: "Cannot demote the last admin of a workspace",
			})
		default:
			log.Error("failed to update member role", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, wssdk.ErrorResponse{
				Error:            wssdk.ErrorCodeServerError,
				ErrorDescription: "Failed to update member",
			})
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleRemove godoc
//
//	@Summary		Remove Member
//	@Description	Hard-delete a member from a workspace. Admin only. The last remaining admin cannot be removed.
//	@Tags			Members
//	@Produce		json
//	@Param			id			path	string	true	"Workspace ID"
//	@Param			memberID	path	string	true	"Member ID"
//	@Success		204			"removed"
//	@Failure		401			{object}	wssdk.ErrorResponse	"error, error_description"
//	@Failure		403			{object}	wssdk.ErrorResponse	"error, error_description"
//	@Failure		404			{object}	wssdk.ErrorResponse	"error, error_description"
//	@Failure		409			{object}	wssdk.ErrorResponse	"error, error_description"
//	@Failure		500			{object}	wssdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/workspaces/{id}/members/{memberID} [delete].
func (h *MembersHandler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	err := h.MembershipService.RemoveMember(
		ctx, r.PathValue("id"), r.PathValue("memberID"), httpx.UserIDFromCtx(ctx),
	)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotAdmin):
			httpx.WriteJSON(w, http.StatusForbidden, wssdk.ErrorResponse{
				Error:            wssdk.ErrorCodeForbidden,
				ErrorDescription: "Only admins can remove members",
			})
		case errors.Is(err, service.ErrMemberNotFound):
			httpx.WriteJSON(w, http.StatusNotFound, wssdk.ErrorResponse{
				Error:            wssdk.ErrorCodeNotFound,
				ErrorDescription: "Member not found",
			})
		case errors.Is(err, service.ErrLastAdmin):
			httpx.WriteJSON(w, http.StatusConflict, wssdk.ErrorResponse{
				Error:            wssdk.ErrorCodeConflict,
				ErrorDescription: "Cannot remove the last admin of a workspace",
			})
		default:
			log.Error("failed to remove member", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, wssdk.ErrorResponse{
				Error:            wssdk.ErrorCodeServerError,
				ErrorDescription: "Failed to remove member",
			})
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
