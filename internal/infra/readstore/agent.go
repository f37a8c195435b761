package readstore

import (
	"context"

	"cargo-consolidation/internal/infra"
	"cargo-consolidation/internal/infra/db"
	"cargo-consolidation/internal/pkg/pgconv"
	"cargo-consolidation/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const agentViewSelect = `
SELECT id, name, email, phone, company, experience, status, submitted_at, reviewed_at, reviewed_by, admin_notes
FROM agent_applications`

const (
	getAgentApplicationByIDSQL = agentViewSelect + ` WHERE id = $1`

	listAgentApplicationsSQL = agentViewSelect + `
WHERE ($1 = '' OR status = $1)
  AND ($2::timestamptz IS NULL OR (submitted_at, id) < ($2, $3::uuid))
ORDER BY submitted_at DESC, id DESC
LIMIT $4`
)

type AgentReadStore struct {
	db db.DBTX
}

func NewAgentReadStore(db db.DBTX) *AgentReadStore {
	return &AgentReadStore{db: db}
}

func (r *AgentReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AgentApplicationView, error) {
	v, err := scanAgentApplication(r.db.QueryRow(ctx, getAgentApplicationByIDSQL, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("agent application not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get agent application", err)
	}
	return v, nil
}

func (r *AgentReadStore) List(ctx context.Context, status string, after *queries.Keyset, limit int32) ([]*queries.AgentApplicationView, error) {
	afterAt, afterID := keysetArgs(after)
	rows, err := r.db.Query(ctx, listAgentApplicationsSQL, status, afterAt, afterID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list agent applications", err)
	}
	views, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*queries.AgentApplicationView, error) {
		return scanAgentApplication(row)
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan agent applications", err)
	}
	return views, nil
}

func scanAgentApplication(row pgx.Row) (*queries.AgentApplicationView, error) {
	var (
		v          queries.AgentApplicationView
		reviewedAt pgtype.Timestamptz
		reviewedBy pgtype.UUID
	)
	err := row.Scan(
		&v.ID, &v.Name, &v.Email, &v.Phone, &v.Company, &v.Experience, &v.Status,
		&v.SubmittedAt, &reviewedAt, &reviewedBy, &v.AdminNotes,
	)
	if err != nil {
		return nil, err
	}
	v.ReviewedAt = pgconv.TimePtrFromPgtype(reviewedAt)
	v.ReviewedBy = pgconv.UUIDPtrFromPgtype(reviewedBy)
	return &v, nil
}
