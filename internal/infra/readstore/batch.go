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

// Current volume is aggregated on every read; batches carry no counter.
const batchViewSelect = `
SELECT cb.id, cb.target_volume,
       COALESCE(SUM(bt.length_cm::numeric * bt.width_cm * bt.height_cm * b.quantity), 0) / 1000000,
       COUNT(b.id), cb.status, cb.created_at, cb.ready_at, cb.dispatched_at
FROM container_batches cb
LEFT JOIN bookings b ON b.batch_id = cb.id
LEFT JOIN box_types bt ON bt.id = b.box_type_id`

const (
	getBatchByIDSQL = batchViewSelect + `
WHERE cb.id = $1
GROUP BY cb.id`

	listBatchesSQL = batchViewSelect + `
WHERE ($1 = '' OR cb.status = $1)
  AND ($2::timestamptz IS NULL OR (cb.created_at, cb.id) < ($2, $3::bigint))
GROUP BY cb.id
ORDER BY cb.created_at DESC, cb.id DESC
LIMIT $4`
)

type BatchReadStore struct {
	db db.DBTX
}

func NewBatchReadStore(db db.DBTX) *BatchReadStore {
	return &BatchReadStore{db: db}
}

func (r *BatchReadStore) FindByID(ctx context.Context, id int64) (*queries.BatchView, error) {
	v, err := scanBatch(r.db.QueryRow(ctx, getBatchByIDSQL, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("container batch not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get container batch", err)
	}
	return v, nil
}

func (r *BatchReadStore) List(ctx context.Context, status string, after *queries.SeqKeyset, limit int32) ([]*queries.BatchView, error) {
	afterAt, afterID := seqKeysetArgs(after)
	rows, err := r.db.Query(ctx, listBatchesSQL, status, afterAt, afterID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list container batches", err)
	}
	views, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*queries.BatchView, error) {
		return scanBatch(row)
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan container batches", err)
	}
	return views, nil
}

func scanBatch(row pgx.Row) (*queries.BatchView, error) {
	var (
		v               queries.BatchView
		target, current pgtype.Numeric
		readyAt         pgtype.Timestamptz
		dispatchedAt    pgtype.Timestamptz
		err             error
	)
	err = row.Scan(&v.ID, &target, &current, &v.BookingCount, &v.Status, &v.CreatedAt, &readyAt, &dispatchedAt)
	if err != nil {
		return nil, err
	}
	if v.TargetVolume, err = pgconv.DecimalFromNumeric(target); err != nil {
		return nil, err
	}
	if v.CurrentVolume, err = pgconv.DecimalFromNumeric(current); err != nil {
		return nil, err
	}
	v.ReadyAt = pgconv.TimePtrFromPgtype(readyAt)
	v.DispatchedAt = pgconv.TimePtrFromPgtype(dispatchedAt)
	return &v, nil
}
