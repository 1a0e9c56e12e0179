package sqlite

import (
	"context"
	"time"

	"github.com/rexahq/workspace-service/internal/workspace/domain"
)

type workspacesRepo struct {
	db dbtx
}

const workspaceColumns = `id, name, domain, description, logo, created_by, created_at, updated_at`

func (r *workspacesRepo) CreateWorkspace(ctx context.Context, w domain.Workspace) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO workspaces (id, name, domain, description, logo, created_by, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		w.ID, w.Name, w.Domain, w.Description, w.Logo, w.CreatedBy,
		timeToMs(now), timeToMs(now),
	)
	return mapConflict(err)
}

func (r *workspacesRepo) GetWorkspace(ctx context.Context, id string) (domain.Workspace, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+workspaceColumns+` FROM workspaces WHERE id = ?`, id)
	return scanWorkspace(row)
}

func (r *workspacesRepo) UpdateWorkspace(ctx context.Context, id string, u domain.WorkspaceUpdate) error {
	// Merge non-nil fields only; COALESCE keeps the stored value otherwise.
	res, err := r.db.ExecContext(ctx, `
		UPDATE workspaces SET
			name        = COALESCE(?, name),
			domain      = COALESCE(?, domain),
			description = COALESCE(?, description),
			logo        = COALESCE(?, logo),
			updated_at  = ?
		WHERE id = ?`,
		nullableString(u.Name), nullableString(u.Domain),
		nullableString(u.Description), nullableString(u.Logo),
		timeToMs(time.Now().UTC()), id,
	)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *workspacesRepo) FindWorkspaceByCreator(ctx context.Context, userID string) (domain.Workspace, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+workspaceColumns+` FROM workspaces
		WHERE created_by = ? ORDER BY created_at ASC LIMIT 1`, userID)
	return scanWorkspace(row)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanWorkspace(row rowScanner) (domain.Workspace, error) {
	var (
		w                    domain.Workspace
		createdMs, updatedMs int64
	)
	err := row.Scan(
		&w.ID, &w.Name, &w.Domain, &w.Description, &w.Logo, &w.CreatedBy,
		&createdMs, &updatedMs,
	)
	if err != nil {
		return domain.Workspace{}, mapNotFound(err)
	}
	w.CreatedAt = msToTime(createdMs)
	w.UpdatedAt = msToTime(updatedMs)
	return w, nil
}
