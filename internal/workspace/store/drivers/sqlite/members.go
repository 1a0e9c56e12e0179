package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/rexahq/workspace-service/internal/workspace/domain"
)

type membersRepo struct {
	db dbtx
}

const memberColumns = `id, workspace_id, user_id, email, role, permissions, status,
	invited_by, invited_at, joined_at, created_at, updated_at`

func (r *membersRepo) CreateMember(ctx context.Context, m domain.Member) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO workspace_members
			(id, workspace_id, user_id, email, role, permissions, status,
			 invited_by, invited_at, joined_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.ID, m.WorkspaceID, m.UserID, m.Email, string(m.Role),
		joinPermissions(m.Permissions), string(m.Status),
		mapStringNull(m.InvitedBy), optionalTimeToMs(m.InvitedAt), optionalTimeToMs(m.JoinedAt),
		timeToMs(now), timeToMs(now),
	)
	return mapConflict(err)
}

func (r *membersRepo) GetMember(ctx context.Context, id string) (domain.Member, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+memberColumns+` FROM workspace_members WHERE id = ?`, id)
	return scanMember(row)
}

func (r *membersRepo) DeleteMember(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM workspace_members WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *membersRepo) ListWorkspaceMembers(ctx context.Context, workspaceID string) ([]domain.Member, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+memberColumns+` FROM workspace_members
		WHERE workspace_id = ?
		ORDER BY created_at DESC`, workspaceID)
	if err != nil {
		return nil, err
	}
	return collectMembers(rows)
}

func (r *membersRepo) ListActiveMembersByUser(ctx context.Context, userID string) ([]domain.Member, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+memberColumns+` FROM workspace_members
		WHERE user_id = ? AND status = ?
		ORDER BY created_at ASC`, userID, string(domain.MemberActive))
	if err != nil {
		return nil, err
	}
	return collectMembers(rows)
}

func (r *membersRepo) ListMembersByUser(ctx context.Context, userID string) ([]domain.Member, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+memberColumns+` FROM workspace_members
		WHERE user_id = ?
		ORDER BY created_at ASC`, userID)
	if err != nil {
		return nil, err
	}
	return collectMembers(rows)
}

func (r *membersRepo) FindActiveAdminByUser(ctx context.Context, userID string) (domain.Member, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+memberColumns+` FROM workspace_members
		WHERE user_id = ? AND role = ? AND status = ?
		ORDER BY created_at ASC
		LIMIT 1`, userID, string(domain.RoleAdmin), string(domain.MemberActive))
	return scanMember(row)
}

func (r *membersRepo) FindActiveAdmin(ctx context.Context, workspaceID, userID string) (domain.Member, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+memberColumns+` FROM workspace_members
		WHERE workspace_id = ? AND user_id = ? AND role = ? AND status = ?`,
		workspaceID, userID, string(domain.RoleAdmin), string(domain.MemberActive))
	return scanMember(row)
}

func (r *membersRepo) FindActiveMemberByEmail(ctx context.Context, workspaceID, email string) (domain.Member, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+memberColumns+` FROM workspace_members
		WHERE workspace_id = ? AND email = ? AND status = ?
		LIMIT 1`, workspaceID, email, string(domain.MemberActive))
	return scanMember(row)
}

func (r *membersRepo) CountActiveAdmins(ctx context.Context, workspaceID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM workspace_members
		WHERE workspace_id = ? AND role = ? AND status = ?`,
		workspaceID, string(domain.RoleAdmin), string(domain.MemberActive),
	).Scan(&n)
	return n, err
}

func (r *membersRepo) UpdateMemberPermissions(ctx context.Context, memberID string, perms domain.Permissions) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE workspace_members SET permissions = ?, updated_at = ?
		WHERE id = ?`,
		joinPermissions(perms), timeToMs(time.Now().UTC()), memberID)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *membersRepo) UpdateMemberRoleAndPermissions(ctx context.Context, memberID string, role domain.Role, perms domain.Permissions) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE workspace_members SET role = ?, permissions = ?, updated_at = ?
		WHERE id = ?`,
		string(role), joinPermissions(perms), timeToMs(time.Now().UTC()), memberID)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *membersRepo) ListAllActiveMembers(ctx context.Context) ([]domain.Member, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+memberColumns+` FROM workspace_members
		WHERE status = ?
		ORDER BY created_at ASC`, string(domain.MemberActive))
	if err != nil {
		return nil, err
	}
	return collectMembers(rows)
}

func scanMember(row rowScanner) (domain.Member, error) {
	var (
		m                    domain.Member
		role, status, perms  string
		invitedBy            sql.NullString
		invitedMs, joinedMs  sql.NullInt64
		createdMs, updatedMs int64
	)
	err := row.Scan(
		&m.ID, &m.WorkspaceID, &m.UserID, &m.Email, &role, &perms, &status,
		&invitedBy, &invitedMs, &joinedMs, &createdMs, &updatedMs,
	)
	if err != nil {
		return domain.Member{}, mapNotFound(err)
	}
	m.Role = domain.Role(role)
	m.Status = domain.MemberStatus(status)
	m.Permissions = splitPermissions(perms)
	m.InvitedBy = mapNullString(invitedBy)
	m.InvitedAt = msToOptionalTime(invitedMs)
	m.JoinedAt = msToOptionalTime(joinedMs)
	m.CreatedAt = msToTime(createdMs)
	m.UpdatedAt = msToTime(updatedMs)
	return m, nil
}

func collectMembers(rows *sql.Rows) ([]domain.Member, error) {
	defer rows.Close()

	var out []domain.Member
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
