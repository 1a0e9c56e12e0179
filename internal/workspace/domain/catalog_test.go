package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassifyPermissions(t *testing.T) {
	t.Parallel()

	t.Run("matches bundles regardless of order", func(t *testing.T) {
		viewer, ok := BundleByKey("viewer")
		require.True(t, ok)

		reversed := make(Permissions, 0, len(viewer.Permissions))
		for i := len(viewer.Permissions) - 1; i >= 0; i-- {
			reversed = append(reversed, viewer.Permissions[i])
		}

		require.Equal(t, "Viewer", ClassifyPermissions(reversed))
	})

	t.Run("duplicates do not affect classification", func(t *testing.T) {
		viewer, _ := BundleByKey("viewer")
		doubled := append(Permissions{}, viewer.Permissions...)
		doubled = append(doubled, viewer.Permissions...)

		require.Equal(t, "Viewer", ClassifyPermissions(doubled))
	})

	t.Run("full catalog classifies as Admin", func(t *testing.T) {
		require.Equal(t, "Admin", ClassifyPermissions(AllPermissions()))
	})

	t.Run("subsets and supersets are Custom", func(t *testing.T) {
		viewer, _ := BundleByKey("viewer")

		subset := viewer.Permissions[:len(viewer.Permissions)-1]
		require.Equal(t, BundleCustom, ClassifyPermissions(subset))

		superset := append(append(Permissions{}, viewer.Permissions...), PermTeamInvite)
		require.Equal(t, BundleCustom, ClassifyPermissions(superset))
	})

	t.Run("unknown tags never match a bundle", func(t *testing.T) {
		viewer, _ := BundleByKey("viewer")
		withUnknown := append(append(Permissions{}, viewer.Permissions...), Permission("bogus:perm"))
		require.Equal(t, BundleCustom, ClassifyPermissions(withUnknown))
	})

	t.Run("empty set is Custom", func(t *testing.T) {
		require.Equal(t, BundleCustom, ClassifyPermissions(nil))
	})
}

func TestBundleCatalog(t *testing.T) {
	t.Parallel()

	t.Run("every bundle permission is in the vocabulary", func(t *testing.T) {
		for _, b := range PermissionBundles() {
			for _, p := range b.Permissions {
				require.True(t, p.Valid(), "bundle %s carries unknown permission %s", b.Key, p)
			}
		}
	})

	t.Run("admin bundle carries the full catalog", func(t *testing.T) {
		admin, ok := BundleByKey("admin")
		require.True(t, ok)
		require.True(t, admin.Permissions.Equal(AllPermissions()))
	})

	t.Run("unknown key misses", func(t *testing.T) {
		_, ok := BundleByKey("superuser")
		require.False(t, ok)
	})
}

func TestPermissionsSetSemantics(t *testing.T) {
	t.Parallel()

	t.Run("equality ignores order and duplicates", func(t *testing.T) {
		a := Permissions{PermReviewsRead, PermReviewsWrite}
		b := Permissions{PermReviewsWrite, PermReviewsRead, PermReviewsRead}
		require.True(t, a.Equal(b))
		require.True(t, b.Equal(a))
	})

	t.Run("normalize removes duplicates keeping order", func(t *testing.T) {
		got := Permissions{PermReviewsRead, PermReviewsRead, PermReviewsWrite}.Normalize()
		require.Equal(t, Permissions{PermReviewsRead, PermReviewsWrite}, got)
	})

	t.Run("parse rejects unknown tags", func(t *testing.T) {
		_, err := ParsePermissions([]string{"reviews:read", "nope:nope"})
		require.Error(t, err)

		var unknownErr *UnknownPermissionError
		require.ErrorAs(t, err, &unknownErr)
		require.Equal(t, "nope:nope", unknownErr.Value)
	})

	t.Run("from strings keeps unknown tags", func(t *testing.T) {
		got := PermissionsFromStrings([]string{"reviews:read", "legacy:tag"})
		require.Len(t, got, 2)
		require.True(t, got.Contains(Permission("legacy:tag")))
	})
}
