package wssdk

// ErrorResponse is the standard error envelope returned by every endpoint.
type ErrorResponse struct {
	// Error is the machine-readable error code (e.g., "invalid_request")
	Error string `json:"error"`

	// ErrorDescription is a human-readable description of the error
	ErrorDescription string `json:"error_description"`
}

// HealthChecks reports the status of critical dependencies.
type HealthChecks struct {
	Database string `json:"database"`
}

// HealthResponse is returned by the /livez and /readyz probes.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// ============================================================================
// Workspace Types
// ============================================================================

// WorkspaceResponse is the JSON shape of a workspace.
type WorkspaceResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Domain      string `json:"domain,omitempty"`
	Description string `json:"description,omitempty"`
	Logo        string `json:"logo,omitempty"`
	CreatedBy   string `json:"created_by"`
	CreatedAt   int64  `json:"created_at"`
	UpdatedAt   int64  `json:"updated_at"`
}

// CreateWorkspaceRequest creates a workspace with the caller as founding admin.
type CreateWorkspaceRequest struct {
	// Name is the workspace display name (required)
	Name string `json:"name"`

	// Domain is an optional company domain (e.g., "example.com")
	Domain string `json:"domain,omitempty"`

	// Description is an optional free-text description
	Description string `json:"description,omitempty"`
}

// UpdateWorkspaceRequest is a partial update; omitted fields are untouched.
type UpdateWorkspaceRequest struct {
	Name        *string `json:"name,omitempty"`
	Domain      *string `json:"domain,omitempty"`
	Description *string `json:"description,omitempty"`
	Logo        *string `json:"logo,omitempty"`
}

// CreateWorkspaceResponse returns the new workspace and founding membership.
type CreateWorkspaceResponse struct {
	Workspace WorkspaceResponse `json:"workspace"`
	Member    MemberResponse    `json:"member"`
}

// ContextResponse is the caller's resolved workspace context.
type ContextResponse struct {
	Workspace   WorkspaceResponse `json:"workspace"`
	Member      MemberResponse    `json:"member"`
	Permissions []string          `json:"permissions"`
	IsAdmin     bool              `json:"is_admin"`
}

// ============================================================================
// Member Types
// ============================================================================

// MemberResponse is the JSON shape of a workspace member.
type MemberResponse struct {
	ID          string   `json:"id"`
	WorkspaceID string   `json:"workspace_id"`
	UserID      string   `json:"user_id"`
	Email       string   `json:"email,omitempty"`
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
	Status      string   `json:"status"`
	InvitedBy   string   `json:"invited_by,omitempty"`
	InvitedAt   int64    `json:"invited_at,omitempty"`
	JoinedAt    int64    `json:"joined_at,omitempty"`
	CreatedAt   int64    `json:"created_at"`
	UpdatedAt   int64    `json:"updated_at"`
}

// UpdateMemberPermissionsRequest replaces a member's permission set.
type UpdateMemberPermissionsRequest struct {
	Permissions []string `json:"permissions"`
}

// UpdateMemberRequest replaces a member's role and permission set together.
type UpdateMemberRequest struct {
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
}

// MemberListResponse wraps a member listing.
type MemberListResponse struct {
	Members []MemberResponse `json:"members"`
}

// ============================================================================
// Invitation Types
// ============================================================================

// InvitationResponse is the JSON shape of an invitation. Token is only
// populated on creation and on the public token-resolution endpoint.
type InvitationResponse struct {
	ID          string   `json:"id"`
	WorkspaceID string   `json:"workspace_id"`
	Email       string   `json:"email"`
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
	InvitedBy   string   `json:"invited_by"`
	Status      string   `json:"status"`
	Token       string   `json:"token,omitempty"`
	ExpiresAt   int64    `json:"expires_at"`
	CreatedAt   int64    `json:"created_at"`
	UpdatedAt   int64    `json:"updated_at"`
	RevokedBy   string   `json:"revoked_by,omitempty"`
	RevokedAt   int64    `json:"revoked_at,omitempty"`
}

// CreateInvitationRequest invites an email address into a workspace.
type CreateInvitationRequest struct {
	// Email is the invitee's address (required)
	Email string `json:"email"`

	// Role is "admin" or "member" (required)
	Role string `json:"role"`

	// Permissions is the granted permission set. May name a catalog bundle's
	// exact permissions or any custom combination.
	Permissions []string `json:"permissions"`

	// WorkspaceName and InviterName feed the notification email only.
	WorkspaceName string `json:"workspace_name,omitempty"`
	InviterName   string `json:"inviter_name,omitempty"`
}

// UpdateInvitationRequest edits a pending invitation; omitted fields keep
// their stored value.
type UpdateInvitationRequest struct {
	Role        *string  `json:"role,omitempty"`
	Permissions []string `json:"permissions,omitempty"`
}

// InvitationListResponse wraps an invitation listing.
type InvitationListResponse struct {
	Invitations []InvitationResponse `json:"invitations"`
}

// ============================================================================
// Repair Types
// ============================================================================

// RepairMembershipResponse reports whether a missing founder membership was
// backfilled.
type RepairMembershipResponse struct {
	Repaired bool `json:"repaired"`
}

// OrphanCleanupResponse reports how many orphaned member records were removed.
type OrphanCleanupResponse struct {
	Deleted int `json:"deleted"`
}

// SyncAdminPermissionsResponse reports whether the caller's admin permission
// set already matched the catalog.
type SyncAdminPermissionsResponse struct {
	AlreadyCurrent bool `json:"already_current"`
}

// ============================================================================
// Permission Catalog Types
// ============================================================================

// PermissionBundleResponse is a named, predefined permission set.
type PermissionBundleResponse struct {
	Key         string   `json:"key"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Permissions []string `json:"permissions"`
}

// PermissionCatalogResponse lists every permission and bundle the service
// understands.
type PermissionCatalogResponse struct {
	Permissions []string                   `json:"permissions"`
	Bundles     []PermissionBundleResponse `json:"bundles"`
}
