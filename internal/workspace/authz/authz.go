// Package authz provides pure capability checks over a resolved membership.
// It performs no I/O; callers resolve the membership first and consult the
// resulting Grant for every privileged decision.
package authz

import "github.com/rexahq/workspace-service/internal/workspace/domain"

// Grant is the authorization view of a resolved membership. Admin is always a
// superset override: every check passes for an admin even when the stored
// permission array has drifted stale.
type Grant struct {
	Permissions domain.Permissions
	IsAdmin     bool
}

// FromContext builds a Grant from a resolved workspace context.
func FromContext(c domain.Context) Grant {
	return Grant{Permissions: c.Permissions, IsAdmin: c.IsAdmin}
}

// FromMember builds a Grant directly from a member record.
func FromMember(m domain.Member) Grant {
	return Grant{Permissions: m.Permissions, IsAdmin: m.IsAdmin()}
}

// Has reports whether the grant holds the permission or is admin.
func (g Grant) Has(p domain.Permission) bool {
	return g.IsAdmin || g.Permissions.Contains(p)
}

// HasAny reports whether the grant holds at least one of the permissions,
// or is admin.
func (g Grant) HasAny(ps ...domain.Permission) bool {
	return g.IsAdmin || g.Permissions.ContainsAny(ps...)
}

// HasAll reports whether the grant holds every one of the permissions,
// or is admin.
func (g Grant) HasAll(ps ...domain.Permission) bool {
	return g.IsAdmin || g.Permissions.ContainsAll(ps...)
}

func (g Grant) CanManageTeam() bool {
	return g.Has(domain.PermTeamManage)
}

func (g Grant) CanInviteUsers() bool {
	return g.Has(domain.PermTeamInvite)
}

func (g Grant) CanManageConversations() bool {
	return g.HasAny(domain.PermConversationsWrite, domain.PermConversationsDelete)
}

func (g Grant) CanManageReviews() bool {
	return g.HasAny(domain.PermReviewsWrite, domain.PermReviewsDelete)
}

func (g Grant) CanViewAnalytics() bool {
	return g.Has(domain.PermAnalyticsRead)
}

func (g Grant) CanManageSettings() bool {
	return g.Has(domain.PermSettingsWrite)
}
