package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestInvitationAcceptable(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()

	t.Run("pending before expiry", func(t *testing.T) {
		inv := Invitation{Status: InviteStatusPending, ExpiresAt: now.Add(time.Hour)}
		require.True(t, inv.Acceptable(now))
		require.False(t, inv.Expired(now))
	})

	t.Run("pending past expiry", func(t *testing.T) {
		inv := Invitation{Status: InviteStatusPending, ExpiresAt: now.Add(-time.Second)}
		require.True(t, inv.Expired(now))
		require.False(t, inv.Acceptable(now))
	})

	t.Run("terminal statuses are never acceptable", func(t *testing.T) {
		for _, status := range []InvitationStatus{InviteStatusAccepted, InviteStatusRejected, InviteStatusRevoked} {
			inv := Invitation{Status: status, ExpiresAt: now.Add(time.Hour)}
			require.False(t, inv.Acceptable(now), "status %s", status)
			require.True(t, status.Terminal())
		}
	})

	t.Run("pending is not terminal", func(t *testing.T) {
		require.False(t, InviteStatusPending.Terminal())
	})
}

func TestInvitationStatusFilter(t *testing.T) {
	t.Parallel()

	for _, status := range []InvitationStatus{InviteStatusPending, InviteStatusAccepted, InviteStatusRejected, InviteStatusRevoked} {
		require.True(t, status.ValidFilter(), "status %s", status)
	}

	// Expiry is derived, never stored, so it is not a filter value.
	require.False(t, InvitationStatus("expired").ValidFilter())
	require.False(t, InvitationStatus("").ValidFilter())
}
