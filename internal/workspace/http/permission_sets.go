package http

import (
	"net/http"

	"github.com/rexahq/workspace-service/internal/workspace/domain"
	"github.com/rexahq/workspace-service/pkg/httpx"
	"github.com/rexahq/workspace-service/pkg/wssdk"
)

// PermissionSetsHandler godoc
//
//	@Summary		Permission Catalog
//	@Description	List every permission the service understands and the predefined bundles (Admin, Review Manager, Conversation Manager, Viewer).
//	@Tags			Permissions
//	@Produce		json
//	@Success		200	{object}	wssdk.PermissionCatalogResponse	"permissions, bundles"
//	@Router			/v1/permission-sets [get].
func PermissionSetsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bundles := domain.PermissionBundles()
		resp := wssdk.PermissionCatalogResponse{
			Permissions: domain.AllPermissions().Strings(),
			Bundles:     make([]wssdk.PermissionBundleResponse, 0, len(bundles)),
		}
		for _, b := range bundles {
			resp.Bundles = append(resp.Bundles, wssdk.PermissionBundleResponse{
				Key:         b.Key,
				Name:        b.Name,
				Description: b.Description,
				Permissions: b.Permissions.Strings(),
			})
		}
		httpx.WriteJSON(w, http.StatusOK, resp)
	}
}
