package http_test

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	wshttp "github.com/rexahq/workspace-service/internal/workspace/http"
	"github.com/rexahq/workspace-service/internal/workspace/mail"
	"github.com/rexahq/workspace-service/internal/workspace/service"
	"github.com/rexahq/workspace-service/internal/workspace/store/drivers/sqlite"
	"github.com/rexahq/workspace-service/pkg/httpx"
	"github.com/rexahq/workspace-service/pkg/wssdk"
)

var testAuthSecret = []byte("router-test-secret")

// newTestServer wires the full router over an in-memory store and serves it
// the way cmd/workspace does, minus SMTP.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	router := wshttp.NewRouter(testAuthSecret, "test", st, logger)
	router.MembershipService = &service.MembershipService{Store: st}
	router.InvitationService = &service.InvitationService{Store: st, Mailer: mail.NopMailer{}}
	router.RepairService = &service.RepairService{Store: st}
	router.ApplyRoutes()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

// clientFor returns an SDK client signed in as the given identity.
func clientFor(t *testing.T, srv *httptest.Server, userID, email string) *wssdk.Client {
	t.Helper()

	claims := httpx.IdentityClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testAuthSecret)
	require.NoError(t, err)

	return wssdk.NewClient(srv.URL, signed)
}

// apiError unwraps the SDK's error type so status assertions read cleanly.
func apiError(t *testing.T, err error) *wssdk.APIError {
	t.Helper()

	var apiErr *wssdk.APIError
	require.ErrorAs(t, err, &apiErr)
	return apiErr
}

func TestAcceptNormalizesEmail(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	srv := newTestServer(t)

	admin := clientFor(t, srv, "admin-1", "admin@test.dev")
	created, err := admin.CreateWorkspace(ctx, wssdk.CreateWorkspaceRequest{Name: "Acme"})
	require.NoError(t, err)

	// The invite arrives with display casing; the identity provider hands the
	// invitee's token back in caps. Neither side should block the accept.
	inv, err := admin.CreateInvitation(ctx, created.Workspace.ID, wssdk.CreateInvitationRequest{
		Email:       "Casey.Lee@Test.DEV",
		Role:        "member",
		Permissions: []string{"reviews:read"},
	})
	require.NoError(t, err)
	require.Equal(t, "casey.lee@test.dev", inv.Email)
	require.NotEmpty(t, inv.Token)

	invitee := clientFor(t, srv, "casey-1", "CASEY.LEE@TEST.DEV")
	member, err := invitee.AcceptInvitation(ctx, inv.ID)
	require.NoError(t, err)
	require.Equal(t, "casey-1", member.UserID)
	require.Equal(t, "casey.lee@test.dev", member.Email)
	require.Equal(t, created.Workspace.ID, member.WorkspaceID)

	// The invitee now resolves the workspace like any member.
	wsCtx, err := invitee.GetContext(ctx)
	require.NoError(t, err)
	require.Equal(t, created.Workspace.ID, wsCtx.Workspace.ID)
	require.False(t, wsCtx.IsAdmin)
}

func TestRejectRequiresInviteeEmail(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	srv := newTestServer(t)

	admin := clientFor(t, srv, "admin-1", "admin@test.dev")
	created, err := admin.CreateWorkspace(ctx, wssdk.CreateWorkspaceRequest{Name: "Acme"})
	require.NoError(t, err)

	inv, err := admin.CreateInvitation(ctx, created.Workspace.ID, wssdk.CreateInvitationRequest{
		Email:       "invitee@test.dev",
		Role:        "member",
		Permissions: []string{"reviews:read"},
	})
	require.NoError(t, err)

	t.Run("someone else's reject is refused", func(t *testing.T) {
		stranger := clientFor(t, srv, "stranger-1", "stranger@test.dev")
		err := stranger.RejectInvitation(ctx, inv.ID)
		require.Equal(t, 403, apiError(t, err).StatusCode)

		// The invitation must still be acceptable afterwards.
		pending, err := admin.ListWorkspaceInvitations(ctx, created.Workspace.ID, "pending")
		require.NoError(t, err)
		require.Len(t, pending.Invitations, 1)
	})

	t.Run("the invitee may reject", func(t *testing.T) {
		invitee := clientFor(t, srv, "invitee-1", "Invitee@Test.DEV")
		require.NoError(t, invitee.RejectInvitation(ctx, inv.ID))

		rejected, err := admin.ListWorkspaceInvitations(ctx, created.Workspace.ID, "rejected")
		require.NoError(t, err)
		require.Len(t, rejected.Invitations, 1)

		// Rejection is terminal.
		_, err = invitee.AcceptInvitation(ctx, inv.ID)
		require.Equal(t, 409, apiError(t, err).StatusCode)
	})
}

func TestInvitePermissionGate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	srv := newTestServer(t)

	admin := clientFor(t, srv, "admin-1", "admin@test.dev")
	created, err := admin.CreateWorkspace(ctx, wssdk.CreateWorkspaceRequest{Name: "Acme"})
	require.NoError(t, err)

	// Seed two members over the wire: one viewer, one with team:invite.
	joinAs := func(userID, email string, perms []string) {
		inv, err := admin.CreateInvitation(ctx, created.Workspace.ID, wssdk.CreateInvitationRequest{
			Email:       email,
			Role:        "member",
			Permissions: perms,
		})
		require.NoError(t, err)
		_, err = clientFor(t, srv, userID, email).AcceptInvitation(ctx, inv.ID)
		require.NoError(t, err)
	}
	joinAs("viewer-1", "viewer@test.dev", []string{"reviews:read"})
	joinAs("recruiter-1", "recruiter@test.dev", []string{"reviews:read", "team:invite"})

	t.Run("member without team:invite is refused", func(t *testing.T) {
		viewer := clientFor(t, srv, "viewer-1", "viewer@test.dev")
		_, err := viewer.CreateInvitation(ctx, created.Workspace.ID, wssdk.CreateInvitationRequest{
			Email:       "friend@test.dev",
			Role:        "member",
			Permissions: []string{"reviews:read"},
		})
		require.Equal(t, 403, apiError(t, err).StatusCode)
	})

	t.Run("member with team:invite may invite", func(t *testing.T) {
		recruiter := clientFor(t, srv, "recruiter-1", "recruiter@test.dev")
		inv, err := recruiter.CreateInvitation(ctx, created.Workspace.ID, wssdk.CreateInvitationRequest{
			Email:       "hire@test.dev",
			Role:        "member",
			Permissions: []string{"reviews:read"},
		})
		require.NoError(t, err)
		require.Equal(t, "pending", inv.Status)
		require.Equal(t, "recruiter-1", inv.InvitedBy)
	})

	t.Run("outsiders cannot invite at all", func(t *testing.T) {
		outsider := clientFor(t, srv, "outsider-1", "outsider@test.dev")
		_, err := outsider.CreateInvitation(ctx, created.Workspace.ID, wssdk.CreateInvitationRequest{
			Email:       "anyone@test.dev",
			Role:        "member",
			Permissions: []string{"reviews:read"},
		})
		require.Equal(t, 403, apiError(t, err).StatusCode)
	})
}

func TestUnauthenticatedRequestsAreRejected(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	srv := newTestServer(t)

	anon := wssdk.NewClient(srv.URL, "")
	_, err := anon.GetContext(ctx)
	require.Equal(t, 401, apiError(t, err).StatusCode)

	forged := clientFor(t, srv, "admin-1", "admin@test.dev")
	forged.AccessToken += "tampered"
	_, err = forged.GetContext(ctx)
	require.Equal(t, 401, apiError(t, err).StatusCode)
}
