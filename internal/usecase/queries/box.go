package queries

import (
	"context"

	"cargo-consolidation/internal/infra"
	"cargo-consolidation/internal/pkg/errs"
)

var ErrBoxTypeNotFound = errs.New("box type not found")

type BoxReadStore interface {
	FindByID(ctx context.Context, id int64) (*BoxTypeView, error)
	FindByIDs(ctx context.Context, ids []int64) ([]*BoxTypeView, error)
	List(ctx context.Context) ([]*BoxTypeView, error)
}

type BoxQueries interface {
	GetByID(ctx context.Context, id int64) (*BoxTypeView, error)
	List(ctx context.Context) ([]*BoxTypeView, error)
}

type boxQueriesImpl struct {
	store BoxReadStore
}

func NewBoxQueries(store BoxReadStore) BoxQueries {
	return &boxQueriesImpl{store: store}
}

func (q *boxQueriesImpl) GetByID(ctx context.Context, id int64) (*BoxTypeView, error) {
	v, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrBoxTypeNotFound)
		}
		return nil, err
	}
	return v, nil
}

func (q *boxQueriesImpl) List(ctx context.Context) ([]*BoxTypeView, error) {
	return q.store.List(ctx)
}
