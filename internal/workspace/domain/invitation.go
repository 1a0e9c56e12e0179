package domain

import "time"

// InvitationStatus is the stored lifecycle state of an invitation.
// Expiry is never a stored transition: a pending invitation past its
// ExpiresAt is treated as invalid by every read path without a write.
type InvitationStatus string

const (
	InviteStatusPending  InvitationStatus = "pending"
	InviteStatusAccepted InvitationStatus = "accepted"
	InviteStatusRejected InvitationStatus = "rejected"
	InviteStatusRevoked  InvitationStatus = "revoked"
)

// Terminal reports whether s is a terminal state. No transition leaves a
// terminal state.
func (s InvitationStatus) Terminal() bool {
	return s == InviteStatusAccepted || s == InviteStatusRejected || s == InviteStatusRevoked
}

// ValidFilter reports whether s is usable as a list filter value.
func (s InvitationStatus) ValidFilter() bool {
	switch s {
	case InviteStatusPending, InviteStatusAccepted, InviteStatusRejected, InviteStatusRevoked:
		return true
	}
	return false
}

// Invitation is a time-boxed, token-addressable offer to become a Member.
// The token is globally unique, unguessable, and the sole credential needed
// to resolve the invitation. At most one pending invitation may exist per
// (workspace, email) pair.
type Invitation struct {
	ID          string
	WorkspaceID string
	Email       string
	Role        Role
	Permissions Permissions
	InvitedBy   string
	Status      InvitationStatus
	Token       string
	ExpiresAt   time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
	RevokedBy   string
	RevokedAt   *time.Time
}

// Expired reports whether the invitation's expiry has passed at the given
// instant. Expiry applies on top of a nominally pending status.
func (i Invitation) Expired(now time.Time) bool {
	return now.After(i.ExpiresAt)
}

// Acceptable reports whether the invitation can still be accepted at the
// given instant.
func (i Invitation) Acceptable(now time.Time) bool {
	return i.Status == InviteStatusPending && !i.Expired(now)
}
