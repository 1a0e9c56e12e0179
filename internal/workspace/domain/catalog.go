package domain

// PermissionBundle is a named, pre-curated permission group offered as a
// convenience during invitation and role assignment. Bundles are static;
// member permissions remain a free set once assigned.
type PermissionBundle struct {
	Key         string
	Name        string
	Description string
	Permissions Permissions
}

// BundleCustom is the classification for permission sets that match no bundle.
const BundleCustom = "Custom"

var permissionBundles = []PermissionBundle{
	{
		Key:         "admin",
		Name:        "Admin",
		Description: "Full access to all features",
		Permissions: AllPermissions(),
	},
	{
		Key:         "review_manager",
		Name:        "Review Manager",
		Description: "Manage reviews and analytics",
		Permissions: Permissions{
			PermConversationsRead,
			PermReviewsRead,
			PermReviewsWrite,
			PermReviewsDelete,
			PermAnalyticsRead,
			PermSettingsRead,
		},
	},
	{
		Key:         "conversation_manager",
		Name:        "Conversation Manager",
		Description: "Manage customer conversations",
		Permissions: Permissions{
			PermConversationsRead,
			PermConversationsWrite,
			PermConversationsDelete,
			PermReviewsRead,
			PermAnalyticsRead,
			PermSettingsRead,
		},
	},
	{
		Key:         "viewer",
		Name:        "Viewer",
		Description: "Read-only access to conversations and reviews",
		Permissions: Permissions{
			PermConversationsRead,
			PermReviewsRead,
			PermAnalyticsRead,
		},
	},
}

// PermissionBundles returns the static catalog in display order.
func PermissionBundles() []PermissionBundle {
	out := make([]PermissionBundle, len(permissionBundles))
	copy(out, permissionBundles)
	return out
}

// BundleByKey looks up a bundle by its catalog key.
func BundleByKey(key string) (PermissionBundle, bool) {
	for _, b := range permissionBundles {
		if b.Key == key {
			return b, true
		}
	}
	return PermissionBundle{}, false
}

// ClassifyPermissions maps a permission set back to the bundle it is
// set-equal to, or BundleCustom when none matches. Comparison is
// order-independent so stored arrays classify the same however they were
// written.
func ClassifyPermissions(ps Permissions) string {
	for _, b := range permissionBundles {
		if b.Permissions.Equal(ps) {
			return b.Name
		}
	}
	return BundleCustom
}
