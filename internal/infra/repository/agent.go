package repository

import (
	"context"

	"cargo-consolidation/internal/domain/agent"
	"cargo-consolidation/internal/infra"
	"cargo-consolidation/internal/infra/db"
	"cargo-consolidation/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	createAgentApplicationSQL = `
INSERT INTO agent_applications (id, name, email, phone, company, experience, status, submitted_at, admin_notes)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	selectAgentApplicationForUpdateSQL = `
SELECT id, name, email, phone, company, experience, status, submitted_at, reviewed_at, reviewed_by, admin_notes
FROM agent_applications
WHERE id = $1
FOR UPDATE`

	updateAgentApplicationSQL = `
UPDATE agent_applications
SET status = $2, reviewed_at = $3, reviewed_by = $4, admin_notes = $5
WHERE id = $1`
)

type AgentRepository struct{}

func NewAgentRepository() *AgentRepository {
	return &AgentRepository{}
}

func (r *AgentRepository) Create(ctx context.Context, tx db.DBTX, a *agent.Application) error {
	_, err := tx.Exec(ctx, createAgentApplicationSQL,
		a.ID, a.Name, a.Email, a.Phone, a.Company, a.Experience,
		string(a.Status), pgconv.TimeToPgtype(a.SubmittedAt), a.AdminNotes,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create agent application", err)
	}
	return nil
}

func (r *AgentRepository) FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*agent.Application, error) {
	var (
		a          agent.Application
		status     string
		reviewedAt pgtype.Timestamptz
		reviewedBy pgtype.UUID
	)
	err := tx.QueryRow(ctx, selectAgentApplicationForUpdateSQL, id).Scan(
		&a.ID, &a.Name, &a.Email, &a.Phone, &a.Company, &a.Experience,
		&status, &a.SubmittedAt, &reviewedAt, &reviewedBy, &a.AdminNotes,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock agent application", err)
	}
	a.Status = agent.Status(status)
	a.ReviewedAt = pgconv.TimePtrFromPgtype(reviewedAt)
	a.ReviewedBy = pgconv.UUIDPtrFromPgtype(reviewedBy)
	return &a, nil
}

func (r *AgentRepository) Save(ctx context.Context, tx db.DBTX, a *agent.Application) error {
	return execOne(ctx, tx, "agent application", updateAgentApplicationSQL,
		a.ID,
		string(a.Status),
		pgconv.TimePtrToPgtype(a.ReviewedAt),
		pgconv.UUIDPtrToPgtype(a.ReviewedBy),
		a.AdminNotes,
	)
}
