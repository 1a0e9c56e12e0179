package domain

import "time"

// Workspace is the tenant boundary. It owns members, invitations, and every
// product resource (widgets, review forms). Workspaces are never hard-deleted
// by this service.
type Workspace struct {
	ID          string
	Name        string
	Domain      string
	Description string
	Logo        string
	CreatedBy   string // User ID of the founding admin
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// WorkspaceUpdate carries a partial update; nil fields are left untouched.
type WorkspaceUpdate struct {
	Name        *string
	Domain      *string
	Description *string
	Logo        *string
}

// Empty reports whether the update would change nothing.
func (u WorkspaceUpdate) Empty() bool {
	return u.Name == nil && u.Domain == nil && u.Description == nil && u.Logo == nil
}
