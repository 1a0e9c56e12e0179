package http

import (
	"time"

	"github.com/rexahq/workspace-service/internal/workspace/domain"
	"github.com/rexahq/workspace-service/pkg/wssdk"
)

func toWorkspaceResponse(w domain.Workspace) wssdk.WorkspaceResponse {
	return wssdk.WorkspaceResponse{
		ID:          w.ID,
		Name:        w.Name,
		Domain:      w.Domain,
		Description: w.Description,
		Logo:        w.Logo,
		CreatedBy:   w.CreatedBy,
		CreatedAt:   w.CreatedAt.UnixMilli(),
		UpdatedAt:   w.UpdatedAt.UnixMilli(),
	}
}

func toMemberResponse(m domain.Member) wssdk.MemberResponse {
	return wssdk.MemberResponse{
		ID:          m.ID,
		WorkspaceID: m.WorkspaceID,
		UserID:      m.UserID,
		Email:       m.Email,
		Role:        string(m.Role),
		Permissions: m.Permissions.Strings(),
		Status:      string(m.Status),
		InvitedBy:   m.InvitedBy,
		InvitedAt:   optionalMs(m.InvitedAt),
		JoinedAt:    optionalMs(m.JoinedAt),
		CreatedAt:   m.CreatedAt.UnixMilli(),
		UpdatedAt:   m.UpdatedAt.UnixMilli(),
	}
}

// toInvitationResponse maps an invitation. The raw token is included only
// where the caller is entitled to it (creation and token resolution).
func toInvitationResponse(inv domain.Invitation, includeToken bool) wssdk.InvitationResponse {
	resp := wssdk.InvitationResponse{
		ID:          inv.ID,
		WorkspaceID: inv.WorkspaceID,
		Email:       inv.Email,
		Role:        string(inv.Role),
		Permissions: inv.Permissions.Strings(),
		InvitedBy:   inv.InvitedBy,
		Status:      string(inv.Status),
		ExpiresAt:   inv.ExpiresAt.UnixMilli(),
		CreatedAt:   inv.CreatedAt.UnixMilli(),
		UpdatedAt:   inv.UpdatedAt.UnixMilli(),
		RevokedBy:   inv.RevokedBy,
		RevokedAt:   optionalMs(inv.RevokedAt),
	}
	if includeToken {
		resp.Token = inv.Token
	}
	return resp
}

func toInvitationListResponse(invs []domain.Invitation) wssdk.InvitationListResponse {
	out := wssdk.InvitationListResponse{
		Invitations: make([]wssdk.InvitationResponse, 0, len(invs)),
	}
	for _, inv := range invs {
		out.Invitations = append(out.Invitations, toInvitationResponse(inv, false))
	}
	return out
}

func optionalMs(t *time.Time) int64 {
	if t == nil {
		return 0
	}
	return t.UnixMilli()
}
