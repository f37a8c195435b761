package queries

import (
	"context"

	"cargo-consolidation/internal/infra"
	"cargo-consolidation/internal/pkg/errs"
)

var ErrBatchNotFound = errs.New("container batch not found")

type BatchReadStore interface {
	FindByID(ctx context.Context, id int64) (*BatchView, error)
	List(ctx context.Context, status string, after *SeqKeyset, limit int32) ([]*BatchView, error)
}

type BatchQueries interface {
	GetByID(ctx context.Context, id int64) (*BatchView, error)
	List(ctx context.Context, status string, cursor *Cursor, limit int) ([]*BatchView, *Cursor, error)
}

type batchQueriesImpl struct {
	store BatchReadStore
}

func NewBatchQueries(store BatchReadStore) BatchQueries {
	return &batchQueriesImpl{store: store}
}

func (q *batchQueriesImpl) GetByID(ctx context.Context, id int64) (*BatchView, error) {
	v, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrBatchNotFound)
		}
		return nil, err
	}
	return v, nil
}

func (q *batchQueriesImpl) List(ctx context.Context, status string, cursor *Cursor, limit int) ([]*BatchView, *Cursor, error) {
	limit = ValidateLimit(limit)
	after, err := DecodeSeqKeyset(cursor)
	if err != nil {
		return nil, nil, err
	}
	rows, err := q.store.List(ctx, status, after, int32(limit+1))
	if err != nil {
		return nil, nil, err
	}
	rows, next := Page(rows, limit, func(b *BatchView) string {
		return EncodeAfterSeqCursor(b.CreatedAt, b.ID)
	})
	return rows, next, nil
}
