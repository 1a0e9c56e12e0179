package domain

// Permission is an atomic capability tag of the form resource:action.
// The vocabulary is closed; anything outside it is rejected at the API
// boundary and classified as unknown everywhere else.
type Permission string

const (
	PermConversationsRead   Permission = "conversations:read"
	PermConversationsWrite  Permission = "conversations:write"
	PermConversationsDelete Permission = "conversations:delete"
	PermReviewsRead         Permission = "reviews:read"
	PermReviewsWrite        Permission = "reviews:write"
	PermReviewsDelete       Permission = "reviews:delete"
	PermAnalyticsRead       Permission = "analytics:read"
	PermSettingsRead        Permission = "settings:read"
	PermSettingsWrite       Permission = "settings:write"
	PermTeamInvite          Permission = "team:invite"
	PermTeamManage          Permission = "team:manage"
	PermWorkspaceManage     Permission = "workspace:manage"
)

// allPermissions lists the full vocabulary in declaration order.
var allPermissions = Permissions{
	PermConversationsRead,
	PermConversationsWrite,
	PermConversationsDelete,
	PermReviewsRead,
	PermReviewsWrite,
	PermReviewsDelete,
	PermAnalyticsRead,
	PermSettingsRead,
	PermSettingsWrite,
	PermTeamInvite,
	PermTeamManage,
	PermWorkspaceManage,
}

// AllPermissions returns a copy of the full permission vocabulary.
func AllPermissions() Permissions {
	out := make(Permissions, len(allPermissions))
	copy(out, allPermissions)
	return out
}

// Valid reports whether p is part of the closed vocabulary.
func (p Permission) Valid() bool {
	for _, known := range allPermissions {
		if p == known {
			return true
		}
	}
	return false
}

func (p Permission) String() string { return string(p) }

// Permissions is a permission collection. Stored as a list, compared as a set:
// order and duplicates never affect equality or containment.
type Permissions []Permission

// Contains reports whether p is present.
func (ps Permissions) Contains(p Permission) bool {
	for _, have := range ps {
		if have == p {
			return true
		}
	}
	return false
}

// ContainsAny reports whether at least one of want is present.
func (ps Permissions) ContainsAny(want ...Permission) bool {
	for _, p := range want {
		if ps.Contains(p) {
			return true
		}
	}
	return false
}

// ContainsAll reports whether every element of want is present.
func (ps Permissions) ContainsAll(want ...Permission) bool {
	for _, p := range want {
		if !ps.Contains(p) {
			return false
		}
	}
	return true
}

// Equal reports set equality: both sides contain exactly the same
// permissions regardless of order or duplication.
func (ps Permissions) Equal(other Permissions) bool {
	return ps.ContainsAll(other...) && other.ContainsAll(ps...)
}

// Normalize returns a copy with duplicates removed, preserving first-seen order.
func (ps Permissions) Normalize() Permissions {
	seen := make(map[Permission]struct{}, len(ps))
	out := make(Permissions, 0, len(ps))
	for _, p := range ps {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}

// Strings converts to a plain string slice for storage and transport.
func (ps Permissions) Strings() []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = string(p)
	}
	return out
}

// PermissionsFromStrings converts stored string values back into Permissions.
// It does not validate against the vocabulary; classification and capability
// checks simply never match unknown values.
func PermissionsFromStrings(values []string) Permissions {
	out := make(Permissions, 0, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		out = append(out, Permission(v))
	}
	return out
}

// ParsePermissions validates incoming permission strings against the closed
// vocabulary. Used at the API boundary so invalid tags never reach storage.
func ParsePermissions(values []string) (Permissions, error) {
	out := make(Permissions, 0, len(values))
	for _, v := range values {
		p := Permission(v)
		if !p.Valid() {
			return nil, &UnknownPermissionError{Value: v}
		}
		out = append(out, p)
	}
	return out.Normalize(), nil
}

// UnknownPermissionError reports a permission tag outside the vocabulary.
type UnknownPermissionError struct {
	Value string
}

func (e *UnknownPermissionError) Error() string {
	return "unknown permission: " + e.Value
}
