package readstore

import (
	"context"

	"cargo-consolidation/internal/infra"
	"cargo-consolidation/internal/infra/db"
	"cargo-consolidation/internal/pkg/pgconv"
	"cargo-consolidation/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const templateViewSelect = `
SELECT id, name, description, subject, body, channel, is_active, created_at, updated_at
FROM notification_templates`

const (
	getTemplateByIDSQL   = templateViewSelect + ` WHERE id = $1`
	getTemplateByNameSQL = templateViewSelect + ` WHERE name = $1`
	listTemplatesSQL     = templateViewSelect + ` WHERE ($1 = '' OR channel = $1) ORDER BY name`

	listNotificationLogsSQL = `
SELECT id, booking_id, channel, recipient, template, status, error_message, created_at
FROM notification_logs
WHERE ($1::uuid IS NULL OR booking_id = $1)
  AND ($2 = '' OR channel = $2)
  AND ($3 = '' OR status = $3)
  AND ($4::timestamptz IS NULL OR (created_at, id) < ($4, $5::bigint))
ORDER BY created_at DESC, id DESC
LIMIT $6`
)

type TemplateReadStore struct {
	db db.DBTX
}

func NewTemplateReadStore(db db.DBTX) *TemplateReadStore {
	return &TemplateReadStore{db: db}
}

func (r *TemplateReadStore) FindByID(ctx context.Context, id int64) (*queries.TemplateView, error) {
	return r.findOne(ctx, getTemplateByIDSQL, id)
}

func (r *TemplateReadStore) FindByName(ctx context.Context, name string) (*queries.TemplateView, error) {
	return r.findOne(ctx, getTemplateByNameSQL, name)
}

func (r *TemplateReadStore) findOne(ctx context.Context, sql string, arg any) (*queries.TemplateView, error) {
	rows, err := r.db.Query(ctx, sql, arg)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get notification template", err)
	}
	v, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByPos[queries.TemplateView])
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("notification template not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan notification template", err)
	}
	return v, nil
}

func (r *TemplateReadStore) List(ctx context.Context, channel string) ([]*queries.TemplateView, error) {
	rows, err := r.db.Query(ctx, listTemplatesSQL, channel)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list notification templates", err)
	}
	views, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByPos[queries.TemplateView])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan notification templates", err)
	}
	return views, nil
}

type NotificationLogReadStore struct {
	db db.DBTX
}

func NewNotificationLogReadStore(db db.DBTX) *NotificationLogReadStore {
	return &NotificationLogReadStore{db: db}
}

func (r *NotificationLogReadStore) List(ctx context.Context, filter queries.NotificationLogFilter, after *queries.SeqKeyset, limit int32) ([]*queries.NotificationLogView, error) {
	afterAt, afterID := seqKeysetArgs(after)
	rows, err := r.db.Query(ctx, listNotificationLogsSQL,
		uuidArg(filter.BookingID),
		filter.Channel,
		filter.Status,
		afterAt, afterID,
		limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list notification logs", err)
	}
	views, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*queries.NotificationLogView, error) {
		var (
			v         queries.NotificationLogView
			bookingID pgtype.UUID
		)
		err := row.Scan(&v.ID, &bookingID, &v.Channel, &v.Recipient, &v.Template, &v.Status, &v.ErrorMessage, &v.CreatedAt)
		if err != nil {
			return nil, err
		}
		v.BookingID = pgconv.UUIDPtrFromPgtype(bookingID)
		return &v, nil
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan notification logs", err)
	}
	return views, nil
}
