package repository

import (
	"context"
	"time"

	"cargo-consolidation/internal/domain/notification"
	"cargo-consolidation/internal/infra"
	"cargo-consolidation/internal/infra/db"
	"cargo-consolidation/internal/pkg/pgconv"
)

// TemplateNameConstraint is the unique index on template names.
const TemplateNameConstraint = "notification_templates_name_key"

const (
	createTemplateSQL = `
INSERT INTO notification_templates (name, description, subject, body, channel, is_active, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id`

	selectTemplateForUpdateSQL = `
SELECT id, name, description, subject, body, channel, is_active, created_at, updated_at
FROM notification_templates
WHERE id = $1
FOR UPDATE`

	updateTemplateSQL = `
UPDATE notification_templates
SET name = $2, description = $3, subject = $4, body = $5, channel = $6, is_active = $7, updated_at = $8
WHERE id = $1`

	deleteTemplateSQL = `DELETE FROM notification_templates WHERE id = $1`
)

type TemplateRepository struct{}

func NewTemplateRepository() *TemplateRepository {
	return &TemplateRepository{}
}

func (r *TemplateRepository) Create(ctx context.Context, tx db.DBTX, t *notification.Template) (int64, error) {
	var id int64
	err := tx.QueryRow(ctx, createTemplateSQL,
		t.Name(), t.Description(), t.Subject(), t.Body(), t.Channel().String(), t.IsActive(),
		pgconv.TimeToPgtype(t.CreatedAt()), pgconv.TimeToPgtype(t.UpdatedAt()),
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create notification template", err)
	}
	return id, nil
}

func (r *TemplateRepository) FindByIDForUpdate(ctx context.Context, tx db.DBTX, id int64) (*notification.Template, error) {
	var (
		tid                                int64
		name, desc, subject, body, channel string
		active                             bool
		createdAt, updatedAt               time.Time
	)
	err := tx.QueryRow(ctx, selectTemplateForUpdateSQL, id).Scan(
		&tid, &name, &desc, &subject, &body, &channel, &active, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock notification template", err)
	}
	return notification.ReconstructTemplate(
		tid, name, desc, subject, body, notification.Channel(channel), active, createdAt, updatedAt,
	), nil
}

func (r *TemplateRepository) Update(ctx context.Context, tx db.DBTX, t *notification.Template) error {
	return execOne(ctx, tx, "notification template", updateTemplateSQL,
		t.ID(), t.Name(), t.Description(), t.Subject(), t.Body(), t.Channel().String(), t.IsActive(),
		pgconv.TimeToPgtype(t.UpdatedAt()),
	)
}

func (r *TemplateRepository) Delete(ctx context.Context, tx db.DBTX, id int64) error {
	return execOne(ctx, tx, "notification template", deleteTemplateSQL, id)
}
