package queries

import (
	"context"

	"cargo-consolidation/internal/infra"
	"cargo-consolidation/internal/pkg/errs"
)

var ErrTemplateNotFound = errs.New("notification template not found")

type TemplateReadStore interface {
	FindByID(ctx context.Context, id int64) (*TemplateView, error)
	List(ctx context.Context, channel string) ([]*TemplateView, error)
}

type NotificationLogReadStore interface {
	List(ctx context.Context, filter NotificationLogFilter, after *SeqKeyset, limit int32) ([]*NotificationLogView, error)
}

type NotificationQueries interface {
	GetTemplate(ctx context.Context, id int64) (*TemplateView, error)
	ListTemplates(ctx context.Context, channel string) ([]*TemplateView, error)
	ListLogs(ctx context.Context, filter NotificationLogFilter, cursor *Cursor, limit int) ([]*NotificationLogView, *Cursor, error)
}

type notificationQueriesImpl struct {
	templates TemplateReadStore
	logs      NotificationLogReadStore
}

func NewNotificationQueries(templates TemplateReadStore, logs NotificationLogReadStore) NotificationQueries {
	return &notificationQueriesImpl{templates: templates, logs: logs}
}

func (q *notificationQueriesImpl) GetTemplate(ctx context.Context, id int64) (*TemplateView, error) {
	v, err := q.templates.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrTemplateNotFound)
		}
		return nil, err
	}
	return v, nil
}

func (q *notificationQueriesImpl) ListTemplates(ctx context.Context, channel string) ([]*TemplateView, error) {
	return q.templates.List(ctx, channel)
}

func (q *notificationQueriesImpl) ListLogs(ctx context.Context, filter NotificationLogFilter, cursor *Cursor, limit int) ([]*NotificationLogView, *Cursor, error) {
	limit = ValidateLimit(limit)
	after, err := DecodeSeqKeyset(cursor)
	if err != nil {
		return nil, nil, err
	}
	rows, err := q.logs.List(ctx, filter, after, int32(limit+1))
	if err != nil {
		return nil, nil, err
	}
	rows, next := Page(rows, limit, func(l *NotificationLogView) string {
		return EncodeAfterSeqCursor(l.CreatedAt, l.ID)
	})
	return rows, next, nil
}
