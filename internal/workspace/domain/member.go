package domain

import "time"

// Role is a member's workspace role. Admin overrides granular permission
// checks with full access.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleMember
}

// MemberStatus is the lifecycle state of a membership record.
type MemberStatus string

const (
	MemberActive    MemberStatus = "active"
	MemberPending   MemberStatus = "pending"
	MemberSuspended MemberStatus = "suspended"
)

// Member is an active association between a user identity and a workspace,
// carrying a role and a permission set. At most one active member record may
// exist per (workspace, user) pair.
type Member struct {
	ID          string
	WorkspaceID string
	UserID      string
	Email       string
	Role        Role
	Permissions Permissions
	Status      MemberStatus
	InvitedBy   string // User ID who invited this member; empty for founders
	InvitedAt   *time.Time
	JoinedAt    *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsAdmin reports whether the member holds the admin role.
func (m Member) IsAdmin() bool { return m.Role == RoleAdmin }

// Context is a user's resolved workspace membership: the workspace they
// belong to, their member record, and the derived authorization inputs.
type Context struct {
	Workspace   Workspace
	Member      Member
	Permissions Permissions
	IsAdmin     bool
}
