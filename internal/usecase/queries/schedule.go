package queries

import "context"

type ScheduleReadStore interface {
	List(ctx context.Context) ([]*ScheduleView, error)
}

type ScheduleQueries interface {
	List(ctx context.Context) ([]*ScheduleView, error)
}

type scheduleQueriesImpl struct {
	store ScheduleReadStore
}

func NewScheduleQueries(store ScheduleReadStore) ScheduleQueries {
	return &scheduleQueriesImpl{store: store}
}

func (q *scheduleQueriesImpl) List(ctx context.Context) ([]*ScheduleView, error) {
	return q.store.List(ctx)
}
