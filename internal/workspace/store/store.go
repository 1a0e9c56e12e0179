package store

import (
	"context"
	"errors"
	"time"

	"github.com/rexahq/workspace-service/internal/workspace/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite,
// postgres) implement this. It exposes sub-repositories to keep concerns
// tidy and testable, and gives the services one place to run multi-document
// writes atomically.
type Store interface {
	Workspaces() Workspaces
	Members() Members
	Invitations() Invitations

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed. This is the
	// recommended way to make multi-document writes atomic (invitation
	// acceptance, workspace creation).
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds
// Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Workspaces interface {
	// CreateWorkspace inserts a new workspace (id is provided by app via ULID).
	CreateWorkspace(ctx context.Context, w domain.Workspace) error

	// GetWorkspace returns a workspace by id.
	GetWorkspace(ctx context.Context, id string) (domain.Workspace, error)

	// UpdateWorkspace merges the non-nil fields of u and bumps updated_at.
	UpdateWorkspace(ctx context.Context, id string, u domain.WorkspaceUpdate) error

	// FindWorkspaceByCreator returns the earliest workspace founded by the
	// user, if any. Used by the membership repair path.
	FindWorkspaceByCreator(ctx context.Context, userID string) (domain.Workspace, error)
}

type Members interface {
	// CreateMember inserts a new member record.
	CreateMember(ctx context.Context, m domain.Member) error

	// GetMember returns a member by id.
	GetMember(ctx context.Context, id string) (domain.Member, error)

	// DeleteMember hard-deletes a member record.
	DeleteMember(ctx context.Context, id string) error

	// ListWorkspaceMembers returns every member of a workspace ordered by
	// creation time, newest first.
	ListWorkspaceMembers(ctx context.Context, workspaceID string) ([]domain.Member, error)

	// ListActiveMembersByUser returns every active membership for a user,
	// oldest first so earlier memberships are probed first.
	ListActiveMembersByUser(ctx context.Context, userID string) ([]domain.Member, error)

	// ListMembersByUser returns every membership for a user regardless of status.
	ListMembersByUser(ctx context.Context, userID string) ([]domain.Member, error)

	// FindActiveAdminByUser returns the user's active admin membership, if any.
	FindActiveAdminByUser(ctx context.Context, userID string) (domain.Member, error)

	// FindActiveAdmin returns the user's active admin membership in a
	// specific workspace. Privileged mutations re-verify admin status
	// through this lookup at call time.
	FindActiveAdmin(ctx context.Context, workspaceID, userID string) (domain.Member, error)

	// FindActiveMemberByEmail returns the active member of a workspace with
	// the given email, if any. Used to reject duplicate invitations.
	FindActiveMemberByEmail(ctx context.Context, workspaceID, email string) (domain.Member, error)

	// CountActiveAdmins returns the number of active admin members in a workspace.
	CountActiveAdmins(ctx context.Context, workspaceID string) (int, error)

	// UpdateMemberPermissions replaces the member's permission set and bumps
	// updated_at.
	UpdateMemberPermissions(ctx context.Context, memberID string, perms domain.Permissions) error

	// UpdateMemberRoleAndPermissions replaces role and permissions in a
	// single row write.
	UpdateMemberRoleAndPermissions(ctx context.Context, memberID string, role domain.Role, perms domain.Permissions) error

	// ListAllActiveMembers returns every active member across all workspaces,
	// used by the background orphan sweep.
	ListAllActiveMembers(ctx context.Context) ([]domain.Member, error)
}

type Invitations interface {
	// CreateInvitation inserts a new invitation (token must be unique).
	CreateInvitation(ctx context.Context, inv domain.Invitation) error

	// GetInvitation returns an invitation by id.
	GetInvitation(ctx context.Context, id string) (domain.Invitation, error)

	// GetPendingInvitationByToken resolves a pending invitation via an
	// equality query on its opaque token.
	GetPendingInvitationByToken(ctx context.Context, token string) (domain.Invitation, error)

	// FindPendingInvitation returns the pending invitation for a
	// (workspace, email) pair, if any.
	FindPendingInvitation(ctx context.Context, workspaceID, email string) (domain.Invitation, error)

	// ListWorkspaceInvitations returns a workspace's invitations ordered by
	// creation time, newest first. An empty status lists all of them.
	ListWorkspaceInvitations(ctx context.Context, workspaceID string, status domain.InvitationStatus) ([]domain.Invitation, error)

	// ListPendingInvitationsByEmail returns the pending invitations awaiting
	// an invitee across all workspaces, newest first.
	ListPendingInvitationsByEmail(ctx context.Context, email string) ([]domain.Invitation, error)

	// MarkInvitationAccepted flips a pending invitation to accepted.
	// Returns ErrNotFound when the invitation is no longer pending, so a
	// losing racer surfaces as an invalid-state failure rather than a
	// double accept.
	MarkInvitationAccepted(ctx context.Context, id string) error

	// MarkInvitationRejected sets status=rejected.
	MarkInvitationRejected(ctx context.Context, id string) error

	// MarkInvitationRevoked flips a pending invitation to revoked, recording
	// who revoked it and when. Returns ErrNotFound when no longer pending.
	MarkInvitationRevoked(ctx context.Context, id string, revokedBy string, revokedAt time.Time) error

	// UpdateInvitationRoleAndPermissions edits a pending invitation in
	// place. Returns ErrNotFound when the invitation is no longer pending,
	// so an edit racing a terminal transition cannot rewrite it.
	UpdateInvitationRoleAndPermissions(ctx context.Context, id string, role *domain.Role, perms domain.Permissions) error

	// DeleteExpiredInvitations removes pending invitations whose expiry
	// passed before the cutoff. Housekeeping only; terminal records are kept.
	DeleteExpiredInvitations(ctx context.Context, cutoff time.Time) (int, error)
}
