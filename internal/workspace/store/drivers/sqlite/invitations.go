package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/rexahq/workspace-service/internal/workspace/domain"
)

type invitationsRepo struct {
	db dbtx
}

const invitationColumns = `id, workspace_id, email, role, permissions, status, token,
	invited_by, expires_at, created_at, updated_at, revoked_by, revoked_at`

func (r *invitationsRepo) CreateInvitation(ctx context.Context, inv domain.Invitation) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO workspace_invitations
			(id, workspace_id, email, role, permissions, status, token,
			 invited_by, expires_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		inv.ID, inv.WorkspaceID, inv.Email, string(inv.Role),
		joinPermissions(inv.Permissions), string(inv.Status), inv.Token,
		inv.InvitedBy, timeToMs(inv.ExpiresAt), timeToMs(now), timeToMs(now),
	)
	return mapConflict(err)
}

func (r *invitationsRepo) GetInvitation(ctx context.Context, id string) (domain.Invitation, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+invitationColumns+` FROM workspace_invitations WHERE id = ?`, id)
	return scanInvitation(row)
}

func (r *invitationsRepo) GetPendingInvitationByToken(ctx context.Context, token string) (domain.Invitation, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+invitationColumns+` FROM workspace_invitations
		WHERE token = ? AND status = ?`, token, string(domain.InviteStatusPending))
	return scanInvitation(row)
}

func (r *invitationsRepo) FindPendingInvitation(ctx context.Context, workspaceID, email string) (domain.Invitation, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+invitationColumns+` FROM workspace_invitations
		WHERE workspace_id = ? AND email = ? AND status = ?`,
		workspaceID, email, string(domain.InviteStatusPending))
	return scanInvitation(row)
}

func (r *invitationsRepo) ListWorkspaceInvitations(ctx context.Context, workspaceID string, status domain.InvitationStatus) ([]domain.Invitation, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if status == "" {
		rows, err = r.db.QueryContext(ctx, `
			SELECT `+invitationColumns+` FROM workspace_invitations
			WHERE workspace_id = ?
			ORDER BY created_at DESC`, workspaceID)
	} else {
		rows, err = r.db.QueryContext(ctx, `
			SELECT `+invitationColumns+` FROM workspace_invitations
			WHERE workspace_id = ? AND status = ?
			ORDER BY created_at DESC`, workspaceID, string(status))
	}
	if err != nil {
		return nil, err
	}
	return collectInvitations(rows)
}

func (r *invitationsRepo) ListPendingInvitationsByEmail(ctx context.Context, email string) ([]domain.Invitation, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+invitationColumns+` FROM workspace_invitations
		WHERE email = ? AND status = ?
		ORDER BY created_at DESC`, email, string(domain.InviteStatusPending))
	if err != nil {
		return nil, err
	}
	return collectInvitations(rows)
}

// MarkInvitationAccepted requires the row to still be pending so a racing
// second accept loses cleanly.
func (r *invitationsRepo) MarkInvitationAccepted(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE workspace_invitations SET status = ?, updated_at = ?
		WHERE id = ? AND status = ?`,
		string(domain.InviteStatusAccepted), timeToMs(time.Now().UTC()),
		id, string(domain.InviteStatusPending))
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *invitationsRepo) MarkInvitationRejected(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE workspace_invitations SET status = ?, updated_at = ?
		WHERE id = ?`,
		string(domain.InviteStatusRejected), timeToMs(time.Now().UTC()), id)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *invitationsRepo) MarkInvitationRevoked(ctx context.Context, id string, revokedBy string, revokedAt time.Time) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE workspace_invitations
		SET status = ?, revoked_by = ?, revoked_at = ?, updated_at = ?
		WHERE id = ? AND status = ?`,
		string(domain.InviteStatusRevoked), revokedBy, timeToMs(revokedAt),
		timeToMs(time.Now().UTC()), id, string(domain.InviteStatusPending))
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

// UpdateInvitationRoleAndPermissions requires the row to still be pending,
// like the accept and revoke flips: an edit racing a terminal transition
// loses with ErrNotFound instead of rewriting a settled invitation.
func (r *invitationsRepo) UpdateInvitationRoleAndPermissions(ctx context.Context, id string, role *domain.Role, perms domain.Permissions) error {
	var roleVal sql.NullString
	if role != nil {
		roleVal = sql.NullString{String: string(*role), Valid: true}
	}
	var permsVal sql.NullString
	if perms != nil {
		permsVal = sql.NullString{String: joinPermissions(perms), Valid: true}
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE workspace_invitations SET
			role        = COALESCE(?, role),
			permissions = COALESCE(?, permissions),
			updated_at  = ?
		WHERE id = ? AND status = ?`,
		roleVal, permsVal, timeToMs(time.Now().UTC()),
		id, string(domain.InviteStatusPending))
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *invitationsRepo) DeleteExpiredInvitations(ctx context.Context, cutoff time.Time) (int, error) {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM workspace_invitations
		WHERE status = ? AND expires_at < ?`,
		string(domain.InviteStatusPending), timeToMs(cutoff))
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	return int(n), err
}

func scanInvitation(row rowScanner) (domain.Invitation, error) {
	var (
		inv                             domain.Invitation
		role, status, perms             string
		revokedBy                       sql.NullString
		revokedMs                       sql.NullInt64
		expiresMs, createdMs, updatedMs int64
	)
	err := row.Scan(
		&inv.ID, &inv.WorkspaceID, &inv.Email, &role, &perms, &status, &inv.Token,
		&inv.InvitedBy, &expiresMs, &createdMs, &updatedMs, &revokedBy, &revokedMs,
	)
	if err != nil {
		return domain.Invitation{}, mapNotFound(err)
	}
	inv.Role = domain.Role(role)
	inv.Status = domain.InvitationStatus(status)
	inv.Permissions = splitPermissions(perms)
	inv.ExpiresAt = msToTime(expiresMs)
	inv.CreatedAt = msToTime(createdMs)
	inv.UpdatedAt = msToTime(updatedMs)
	inv.RevokedBy = mapNullString(revokedBy)
	inv.RevokedAt = msToOptionalTime(revokedMs)
	return inv, nil
}

func collectInvitations(rows *sql.Rows) ([]domain.Invitation, error) {
	defer rows.Close()

	var out []domain.Invitation
	for rows.Next() {
		inv, err := scanInvitation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}
