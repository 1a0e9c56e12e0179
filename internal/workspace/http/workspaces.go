package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rexahq/workspace-service/internal/workspace/domain"
	"github.com/rexahq/workspace-service/internal/workspace/service"
	"github.com/rexahq/workspace-service/pkg/httpx"
	"github.com/rexahq/workspace-service/pkg/slogx"
	"github.com/rexahq/workspace-service/pkg/wssdk"
)

type WorkspacesHandler struct {
	MembershipService *service.MembershipService
}

// HandleCreate godoc
//
//	@Summary		Create Workspace
//	@Description	Create a workspace with the caller as founding admin. The founder receives the admin role and the full permission catalog.
//	@Tags			Workspaces
//	@Accept			json
//	@Produce		json
//	@Param			request	body		wssdk.CreateWorkspaceRequest	true	"Workspace details"
//	@Success		201		{object}	wssdk.CreateWorkspaceResponse	"workspace, member"
//	@Failure		400		{object}	wssdk.ErrorResponse				"error, error_description"
//	@Failure		401		{object}	wssdk.ErrorResponse				"error, error_description"
//	@Failure		500		{object}	wssdk.ErrorResponse				"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/workspaces [post].
func (h *WorkspacesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req wssdk.CreateWorkspaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, wssdk.ErrorResponse{
			Error:            wssdk.ErrorCodeInvalidRequest,
			ErrorDescription: "Invalid JSON body",
		})
		return
	}
	if req.Name == "" {
		httpx.WriteJSON(w, http.StatusBadRequest, wssdk.ErrorResponse{
			Error:            wssdk.ErrorCodeInvalidRequest,
			ErrorDescription: "name is required",
		})
		return
	}

	userID := httpx.UserIDFromCtx(ctx)
	userEmail := normalizeEmail(httpx.UserEmailFromCtx(ctx))

	ws, member, err := h.MembershipService.CreateWorkspace(
		ctx, req.Name, userID, userEmail, req.Description, req.Domain,
	)
	if err != nil {
		log.Error("failed to create workspace", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, wssdk.ErrorResponse{
			Error:            wssdk.ErrorCodeServerError,
			ErrorDescription: "Failed to create workspace",
		})
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, wssdk.CreateWorkspaceResponse{
		Workspace: toWorkspaceResponse(ws),
		Member:    toMemberResponse(member),
	})
}

// HandleContext godoc
//
//	@Summary		Resolve Workspace Context
//	@Description	Resolve the caller's current workspace: their active memberships are probed oldest-first and the first one backed by a live workspace wins.
//	@Tags			Workspaces
//	@Produce		json
//	@Success		200	{object}	wssdk.ContextResponse	"workspace, member, permissions, is_admin"
//	@Failure		401	{object}	wssdk.ErrorResponse		"error, error_description"
//	@Failure		404	{object}	wssdk.ErrorResponse		"error, error_description"
//	@Failure		500	{object}	wssdk.ErrorResponse		"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/workspaces/context [get].
func (h *WorkspacesHandler) HandleContext(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	wsCtx, err := h.MembershipService.ResolveContext(ctx, httpx.UserIDFromCtx(ctx))
	if err != nil {
		if errors.Is(err, service.ErrNotAMember) {
			httpx.WriteJSON(w, http.StatusNotFound, wssdk.ErrorResponse{
				Error:            wssdk.ErrorCodeNotFound,
				ErrorDescription: "You are not a member of any workspace",
			})
			return
		}
		log.Error("failed to resolve workspace context", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, wssdk.ErrorResponse{
			Error:            wssdk.ErrorCodeServerError,
			ErrorDescription: "Failed to resolve workspace context",
		})
		return
	}

	httpx.WriteJSON(w, http.StatusOK, wssdk.ContextResponse{
		Workspace:   toWorkspaceResponse(wsCtx.Workspace),
		Member:      toMemberResponse(wsCtx.Member),
		Permissions: wsCtx.Permissions.Strings(),
		IsAdmin:     wsCtx.IsAdmin,
	})
}

// HandleUpdate godoc
//
//	@Summary		Update Workspace
//	@Description	Apply a partial update to workspace metadata. Admin only; omitted fields are untouched.
//	@Tags			Workspaces
//	@Accept			json
//	@Produce		json
//	@Param			id		path	string							true	"Workspace ID"
//	@Param			request	body	wssdk.UpdateWorkspaceRequest	true	"Fields to update"
//	@Success		204		"updated"
//	@Failure		400		{object}	wssdk.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	wssdk.ErrorResponse	"error, error_description"
//	@Failure		403		{object}	wssdk.ErrorResponse	"error, error_description"
//	@Failure		404		{object}	wssdk.ErrorResponse	"error, error_description"
//	@Failure		500		{object}	wssdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/workspaces/{id} [patch].
func (h *WorkspacesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req wssdk.UpdateWorkspaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, wssdk.ErrorResponse{
			Error:            wssdk.ErrorCodeInvalidRequest,
			ErrorDescription: "Invalid JSON body",
		})
		return
	}

	update := domain.WorkspaceUpdate{
		Name:        req.Name,
		Domain:      req.Domain,
		Description: req.Description,
		Logo:        req.Logo,
	}

	err := h.MembershipService.UpdateWorkspace(ctx, r.PathValue("id"), update, httpx.UserIDFromCtx(ctx))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyUpdate):
			httpx.WriteJSON(w, http.StatusBadRequest, wssdk.ErrorResponse{
				Error:            wssdk.ErrorCodeInvalidRequest,
				ErrorDescription: "No fields to update",
			})
		case errors.Is(err, service.ErrNotAdmin):
			httpx.WriteJSON(w, http.StatusForbidden, wssdk.ErrorResponse{
				Error:            wssdk.ErrorCodeForbidden,
				ErrorDescription: "Only admins can update workspace settings",
			})
		case errors.Is(err, service.ErrWorkspaceNotFound):
			httpx.WriteJSON(w, http.StatusNotFound, wssdk.ErrorResponse{
				Error:            wssdk.ErrorCodeNotFound,
				ErrorDescription: "Workspace not found",
			})
		default:
			log.Error("failed to update workspace", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, wssdk.ErrorResponse{
				Error:            wssdk.ErrorCodeServerError,
				ErrorDescription: "Failed to update workspace",
			})
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
