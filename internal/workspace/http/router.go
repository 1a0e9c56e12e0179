package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/rexahq/workspace-service/internal/workspace/service"
	"github.com/rexahq/workspace-service/internal/workspace/store"
	"github.com/rexahq/workspace-service/pkg/httpx"
	"github.com/rexahq/workspace-service/pkg/slogx"

	_ "github.com/rexahq/workspace-service/api/workspace" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	authSecret   []byte
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store             store.Store
	MembershipService *service.MembershipService
	InvitationService *service.InvitationService
	RepairService     *service.RepairService
}

func NewRouter(
	authSecret []byte,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		authSecret:   authSecret,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerWorkspaces()
	r.registerMembers()
	r.registerInvitations()
	r.registerRepair()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Rexa Workspace Service API
//	@version		0.1.0
//	@description	Multi-tenant workspace access control: workspaces, members, permission sets, and the invitation lifecycle.
//	@description
//	@description				Identity is consumed, not issued: every authenticated endpoint expects a bearer JWT from the identity provider.
//
//	@contact.name				Rexa Engineering
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerWorkspaces() {
	h := &WorkspacesHandler{MembershipService: r.MembershipService}

	// POST /workspaces - moderate rate limit by user (one-off setup operation)
	r.Mux.Handle("POST /v1/workspaces",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			httpx.AuthnMiddleware(r.authSecret),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	// GET /workspaces/context - hit on every sign-in, lenient limit
	r.Mux.Handle("GET /v1/workspaces/context",
		httpx.Chain(http.HandlerFunc(h.HandleContext),
			httpx.AuthnMiddleware(r.authSecret),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	// PATCH /workspaces/{id} - admin mutation, moderate limit
	r.Mux.Handle("PATCH /v1/workspaces/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleUpdate),
			httpx.AuthnMiddleware(r.authSecret),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerMembers() {
	h := &MembersHandler{MembershipService: r.MembershipService}

	r.Mux.Handle("GET /v1/workspaces/{id}/members",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.AuthnMiddleware(r.authSecret),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	r.Mux.Handle("PATCH /v1/members/{id}/permissions",
		httpx.Chain(http.HandlerFunc(h.HandleUpdatePermissions),
			httpx.AuthnMiddleware(r.authSecret),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	r.Mux.Handle("PATCH /v1/members/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleUpdate),
			httpx.AuthnMiddleware(r.authSecret),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	r.Mux.Handle("DELETE /v1/workspaces/{id}/members/{memberID}",
		httpx.Chain(http.HandlerFunc(h.HandleRemove),
			httpx.AuthnMiddleware(r.authSecret),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerInvitations() {
	h := &InvitationsHandler{
		InvitationService: r.InvitationService,
		MembershipService: r.MembershipService,
	}

	r.Mux.Handle("POST /v1/workspaces/{id}/invitations",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			httpx.AuthnMiddleware(r.authSecret),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	r.Mux.Handle("GET /v1/workspaces/{id}/invitations",
		httpx.Chain(http.HandlerFunc(h.HandleListWorkspace),
			httpx.AuthnMiddleware(r.authSecret),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	r.Mux.Handle("GET /v1/invitations",
		httpx.Chain(http.HandlerFunc(h.HandleListMine),
			httpx.AuthnMiddleware(r.authSecret),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	// Public token landing page lookup - strict limit by IP so tokens
	// cannot be enumerated.
	r.Mux.Handle("GET /v1/invitations/token/{token}",
		httpx.Chain(http.HandlerFunc(h.HandleResolveToken),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	r.Mux.Handle("PATCH /v1/invitations/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleUpdate),
			httpx.AuthnMiddleware(r.authSecret),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	r.Mux.Handle("POST /v1/invitations/{id}/accept",
		httpx.Chain(http.HandlerFunc(h.HandleAccept),
			httpx.AuthnMiddleware(r.authSecret),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	r.Mux.Handle("POST /v1/invitations/{id}/reject",
		httpx.Chain(http.HandlerFunc(h.HandleReject),
			httpx.AuthnMiddleware(r.authSecret),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	r.Mux.Handle("POST /v1/invitations/{id}/revoke",
		httpx.Chain(http.HandlerFunc(h.HandleRevoke),
			httpx.AuthnMiddleware(r.authSecret),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerRepair() {
	h := &RepairHandler{
		RepairService:     r.RepairService,
		MembershipService: r.MembershipService,
	}

	r.Mux.Handle("POST /v1/repair/membership",
		httpx.Chain(http.HandlerFunc(h.HandleMembership),
			httpx.AuthnMiddleware(r.authSecret),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	r.Mux.Handle("POST /v1/repair/orphans",
		httpx.Chain(http.HandlerFunc(h.HandleOrphans),
			httpx.AuthnMiddleware(r.authSecret),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	r.Mux.Handle("POST /v1/repair/admin-permissions",
		httpx.Chain(http.HandlerFunc(h.HandleSyncAdminPermissions),
			httpx.AuthnMiddleware(r.authSecret),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /v1/permission-sets",
		httpx.Chain(PermissionSetsHandler(),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)

	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)

	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}
