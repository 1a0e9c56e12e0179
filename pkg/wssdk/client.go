package wssdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client is a client for the workspace service. The access token comes from
// the identity provider; the client only attaches it.
type Client struct {
	BaseURL     string
	AccessToken string
	HTTPClient  *http.Client
}

// NewClient creates a workspace service client.
func NewClient(baseURL, accessToken string) *Client {
	return &Client{
		BaseURL:     strings.TrimSuffix(baseURL, "/"),
		AccessToken: accessToken,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// CreateWorkspace creates a workspace with the caller as founding admin.
func (c *Client) CreateWorkspace(ctx context.Context, req CreateWorkspaceRequest) (*CreateWorkspaceResponse, error) {
	var resp CreateWorkspaceResponse
	if err := c.doJSON(ctx, http.MethodPost, "/v1/workspaces", req, &resp, http.StatusCreated); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetContext resolves the caller's current workspace context.
func (c *Client) GetContext(ctx context.Context) (*ContextResponse, error) {
	var resp ContextResponse
	if err := c.doJSON(ctx, http.MethodGet, "/v1/workspaces/context", nil, &resp, http.StatusOK); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateWorkspace applies a partial update to workspace metadata.
func (c *Client) UpdateWorkspace(ctx context.Context, workspaceID string, req UpdateWorkspaceRequest) error {
	path := "/v1/workspaces/" + url.PathEscape(workspaceID)
	return c.doJSON(ctx, http.MethodPatch, path, req, nil, http.StatusNoContent)
}

// ListMembers lists a workspace's members, newest first.
func (c *Client) ListMembers(ctx context.Context, workspaceID string) (*MemberListResponse, error) {
	path := "/v1/workspaces/" + url.PathEscape(workspaceID) + "/members"
	var resp MemberListResponse
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &resp, http.StatusOK); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateMemberPermissions replaces a member's permission set.
func (c *Client) UpdateMemberPermissions(ctx context.Context, memberID string, req UpdateMemberPermissionsRequest) error {
	path := "/v1/members/" + url.PathEscape(memberID) + "/permissions"
	return c.doJSON(ctx, http.MethodPatch, path, req, nil, http.StatusNoContent)
}

// UpdateMember replaces a member's role and permission set.
func (c *Client) UpdateMember(ctx context.Context, memberID string, req UpdateMemberRequest) error {
	path := "/v1/members/" + url.PathEscape(memberID)
	return c.doJSON(ctx, http.MethodPatch, path, req, nil, http.StatusNoContent)
}

// RemoveMember removes a member from a workspace.
func (c *Client) RemoveMember(ctx context.Context, workspaceID, memberID string) error {
	path := "/v1/workspaces/" + url.PathEscape(workspaceID) + "/members/" + url.PathEscape(memberID)
	return c.doJSON(ctx, http.MethodDelete, path, nil, nil, http.StatusNoContent)
}

// CreateInvitation invites an email address into a workspace.
func (c *Client) CreateInvitation(ctx context.Context, workspaceID string, req CreateInvitationRequest) (*InvitationResponse, error) {
	path := "/v1/workspaces/" + url.PathEscape(workspaceID) + "/invitations"
	var resp InvitationResponse
	if err := c.doJSON(ctx, http.MethodPost, path, req, &resp, http.StatusCreated); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListWorkspaceInvitations lists a workspace's invitations. status may be
// empty to list all of them.
func (c *Client) ListWorkspaceInvitations(ctx context.Context, workspaceID, status string) (*InvitationListResponse, error) {
	path := "/v1/workspaces/" + url.PathEscape(workspaceID) + "/invitations"
	if status != "" {
		path += "?status=" + url.QueryEscape(status)
	}
	var resp InvitationListResponse
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &resp, http.StatusOK); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListMyInvitations lists the caller's pending invitations across workspaces.
func (c *Client) ListMyInvitations(ctx context.Context) (*InvitationListResponse, error) {
	var resp InvitationListResponse
	if err := c.doJSON(ctx, http.MethodGet, "/v1/invitations", nil, &resp, http.StatusOK); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ResolveInvitationToken resolves an invitation from its emailed token.
func (c *Client) ResolveInvitationToken(ctx context.Context, token string) (*InvitationResponse, error) {
	path := "/v1/invitations/token/" + url.PathEscape(token)
	var resp InvitationResponse
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &resp, http.StatusOK); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateInvitation edits a pending invitation's role and/or permissions.
func (c *Client) UpdateInvitation(ctx context.Context, inviteID string, req UpdateInvitationRequest) (*InvitationResponse, error) {
	path := "/v1/invitations/" + url.PathEscape(inviteID)
	var resp InvitationResponse
	if err := c.doJSON(ctx, http.MethodPatch, path, req, &resp, http.StatusOK); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AcceptInvitation accepts a pending invitation, returning the new membership.
func (c *Client) AcceptInvitation(ctx context.Context, inviteID string) (*MemberResponse, error) {
	path := "/v1/invitations/" + url.PathEscape(inviteID) + "/accept"
	var resp MemberResponse
	if err := c.doJSON(ctx, http.MethodPost, path, nil, &resp, http.StatusOK); err != nil {
		return nil, err
	}
	return &resp, nil
}

// RejectInvitation declines a pending invitation.
func (c *Client) RejectInvitation(ctx context.Context, inviteID string) error {
	path := "/v1/invitations/" + url.PathEscape(inviteID) + "/reject"
	return c.doJSON(ctx, http.MethodPost, path, nil, nil, http.StatusNoContent)
}

// RevokeInvitation withdraws a pending invitation.
func (c *Client) RevokeInvitation(ctx context.Context, inviteID string) error {
	path := "/v1/invitations/" + url.PathEscape(inviteID) + "/revoke"
	return c.doJSON(ctx, http.MethodPost, path, nil, nil, http.StatusNoContent)
}

// RepairMembership backfills the caller's missing founder membership, if any.
func (c *Client) RepairMembership(ctx context.Context) (*RepairMembershipResponse, error) {
	var resp RepairMembershipResponse
	if err := c.doJSON(ctx, http.MethodPost, "/v1/repair/membership", nil, &resp, http.StatusOK); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CleanupOrphans removes the caller's member records whose workspace no
// longer exists.
func (c *Client) CleanupOrphans(ctx context.Context) (*OrphanCleanupResponse, error) {
	var resp OrphanCleanupResponse
	if err := c.doJSON(ctx, http.MethodPost, "/v1/repair/orphans", nil, &resp, http.StatusOK); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SyncAdminPermissions brings the caller's admin permission set up to the
// full catalog.
func (c *Client) SyncAdminPermissions(ctx context.Context) (*SyncAdminPermissionsResponse, error) {
	var resp SyncAdminPermissionsResponse
	if err := c.doJSON(ctx, http.MethodPost, "/v1/repair/admin-permissions", nil, &resp, http.StatusOK); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetPermissionCatalog lists every permission and bundle the service knows.
func (c *Client) GetPermissionCatalog(ctx context.Context) (*PermissionCatalogResponse, error) {
	var resp PermissionCatalogResponse
	if err := c.doJSON(ctx, http.MethodGet, "/v1/permission-sets", nil, &resp, http.StatusOK); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Livez checks the liveness probe.
func (c *Client) Livez(ctx context.Context) (*HealthResponse, error) {
	var resp HealthResponse
	if err := c.doJSON(ctx, http.MethodGet, "/livez", nil, &resp, http.StatusOK); err != nil {
		return nil, err
	}
	return &resp, nil
}

// doJSON performs a request with an optional JSON body, decodes the response
// into out (when non-nil), and converts error envelopes into *APIError.
func (c *Client) doJSON(ctx context.Context, method, path string, in, out any, expectedStatus int) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.AccessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.AccessToken)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != expectedStatus {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if decodeErr := json.NewDecoder(resp.Body).Decode(apiErr); decodeErr != nil {
			apiErr.Code = ErrorCodeServerError
			apiErr.Description = fmt.Sprintf("unexpected status %d", resp.StatusCode)
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
