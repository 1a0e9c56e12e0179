// Package mail is the outbound email collaborator. Sending is strictly
// best-effort: an invitation is durable before any email is attempted, and a
// delivery failure never surfaces to the inviter.
package mail

import (
	"context"

	"github.com/rexahq/workspace-service/internal/workspace/domain"
)

// Invitation carries everything the invitation notice template needs.
type Invitation struct {
	To            string
	WorkspaceName string
	InviterName   string
	Token         string
	Role          domain.Role
	Permissions   domain.Permissions
}

// Mailer delivers invitation notices. Implementations must be safe for
// concurrent use.
type Mailer interface {
	SendInvitation(ctx context.Context, inv Invitation) error
}

// NopMailer discards every message. Used in tests and when SMTP is not
// configured.
type NopMailer struct{}

func (NopMailer) SendInvitation(ctx context.Context, inv Invitation) error { return nil }
