package http

import (
	"errors"
	"net/http"

	"github.com/rexahq/workspace-service/internal/workspace/service"
	"github.com/rexahq/workspace-service/pkg/httpx"
	"github.com/rexahq/workspace-service/pkg/slogx"
	"github.com/rexahq/workspace-service/pkg/wssdk"
)

// RepairHandler exposes the self-service consistency repairs. Each operation
// is scoped to the caller and idempotent, so they are safe to run on every
// sign-in.
type RepairHandler struct {
	RepairService     *service.RepairService
	MembershipService *service.MembershipService
}

// HandleMembership godoc
//
//	@Summary		Repair Missing Membership
//	@Description	Backfill the caller's founding-admin member record when their workspace exists but the membership row is missing. No-op otherwise.
//	@Tags			Repair
//	@Produce		json
//	@Success		200	{object}	wssdk.RepairMembershipResponse	"repaired"
//	@Failure		401	{object}	wssdk.ErrorResponse				"error, error_description"
//	@Failure		500	{object}	wssdk.ErrorResponse				"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/repair/membership [post].
func (h *RepairHandler) HandleMembership(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	repaired, err := h.RepairService.EnsureMembership(ctx, httpx.UserIDFromCtx(ctx))
	if err != nil {
		log.Error("membership repair failed", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, wssdk.ErrorResponse{
			Error:            wssdk.ErrorCodeServerError,
			ErrorDescription: "Failed to repair membership",
		})
		return
	}

	httpx.WriteJSON(w, http.StatusOK, wssdk.RepairMembershipResponse{Repaired: repaired})
}

// HandleOrphans godoc
//
//	@Summary		Clean Up Orphaned Memberships
//	@Description	Delete the caller's member records whose workspace no longer exists. Zero orphans is success.
//	@Tags			Repair
//	@Produce		json
//	@Success		200	{object}	wssdk.OrphanCleanupResponse	"deleted"
//	@Failure		401	{object}	wssdk.ErrorResponse			"error, error_description"
//	@Failure		500	{object}	wssdk.ErrorResponse			"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/repair/orphans [post].
func (h *RepairHandler) HandleOrphans(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	deleted, err := h.RepairService.CleanupOrphanedMemberships(ctx, httpx.UserIDFromCtx(ctx))
	if err != nil {
		log.Error("orphan cleanup failed", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, wssdk.ErrorResponse{
			Error:            wssdk.ErrorCodeServerError,
			ErrorDescription: "Failed to clean up memberships",
		})
		return
	}

	httpx.WriteJSON(w, http.StatusOK, wssdk.OrphanCleanupResponse{Deleted: deleted})
}

// HandleSyncAdminPermissions godoc
//
//	@Summary		Sync Admin Permissions
//	@Description	Bring the caller's admin permission set up to the full catalog. Writes only when the stored set has drifted.
//	@Tags			Repair
//	@Produce		json
//	@Success		200	{object}	wssdk.SyncAdminPermissionsResponse	"already_current"
//	@Failure		401	{object}	wssdk.ErrorResponse					"error, error_description"
//	@Failure		403	{object}	wssdk.ErrorResponse					"error, error_description"
//	@Failure		500	{object}	wssdk.ErrorResponse					"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/repair/admin-permissions [post].
func (h *RepairHandler) HandleSyncAdminPermissions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	alreadyCurrent, err := h.MembershipService.SyncAdminPermissions(ctx, httpx.UserIDFromCtx(ctx))
	if err != nil {
		if errors.Is(err, service.ErrNotAdmin) {
			httpx.WriteJSON(w, http.StatusForbidden, wssdk.ErrorResponse{
				Error:            wssdk.ErrorCodeForbidden,
				ErrorDescription: "You are not an admin of any workspace",
			})
			return
		}
		log.Error("admin permission sync failed", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, wssdk.ErrorResponse{
			Error:            wssdk.ErrorCodeServerError,
			ErrorDescription: "Failed to sync admin permissions",
		})
		return
	}

	httpx.WriteJSON(w, http.StatusOK, wssdk.SyncAdminPermissionsResponse{AlreadyCurrent: alreadyCurrent})
}
