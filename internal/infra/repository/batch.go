package repository

import (
	"context"
	"time"

	"cargo-consolidation/internal/domain/batch"
	"cargo-consolidation/internal/infra"
	"cargo-consolidation/internal/infra/db"
	"cargo-consolidation/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

const batchColumns = `id, target_volume, status, created_at, ready_at, dispatched_at`

const (
	insertOpenBatchSQL = `
INSERT INTO container_batches (target_volume, status, created_at)
VALUES ($1, 'open', $2)
ON CONFLICT (status) WHERE status = 'open' DO NOTHING`

	// FOR SHARE lets concurrent bookings attach while blocking a mark-ready
	// run until they commit.
	selectOpenBatchForShareSQL = `SELECT ` + batchColumns + ` FROM container_batches WHERE status = 'open' FOR SHARE`

	selectBatchForUpdateSQL       = `SELECT ` + batchColumns + ` FROM container_batches WHERE id = $1 FOR UPDATE`
	selectOpenBatchesForUpdateSQL = `SELECT ` + batchColumns + ` FROM container_batches WHERE status = 'open' ORDER BY id FOR UPDATE`

	batchVolumeSQL = `
SELECT COALESCE(SUM(bt.length_cm::numeric * bt.width_cm * bt.height_cm * b.quantity), 0) / 1000000
FROM bookings b
JOIN box_types bt ON bt.id = b.box_type_id
WHERE b.batch_id = $1`

	updateBatchSQL = `
UPDATE container_batches
SET status = $2, ready_at = $3, dispatched_at = $4
WHERE id = $1`
)

// An open batch can turn ready between the insert and the select; a few
// rounds are enough for the next insert to win.
const getOrCreateOpenAttempts = 3

type BatchRepository struct{}

func NewBatchRepository() *BatchRepository {
	return &BatchRepository{}
}

func (r *BatchRepository) GetOrCreateOpen(ctx context.Context, tx db.DBTX, target decimal.Decimal, now time.Time) (*batch.ContainerBatch, error) {
	for range getOrCreateOpenAttempts {
		if _, err := tx.Exec(ctx, insertOpenBatchSQL, pgconv.DecimalToNumeric(target), pgconv.TimeToPgtype(now)); err != nil {
			return nil, infra.WrapRepoErr("failed to create open batch", err)
		}
		b, err := scanBatch(tx.QueryRow(ctx, selectOpenBatchForShareSQL))
		if err == nil {
			return b, nil
		}
		if !pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("failed to get open batch", err)
		}
	}
	return nil, infra.WrapRepoErr("open batch unavailable", nil, infra.KindDBFailure)
}

func (r *BatchRepository) FindByIDForUpdate(ctx context.Context, tx db.DBTX, id int64) (*batch.ContainerBatch, error) {
	b, err := scanBatch(tx.QueryRow(ctx, selectBatchForUpdateSQL, id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock container batch", err)
	}
	return b, nil
}

func (r *BatchRepository) ListOpenForUpdate(ctx context.Context, tx db.DBTX) ([]*batch.ContainerBatch, error) {
	rows, err := tx.Query(ctx, selectOpenBatchesForUpdateSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock open batches", err)
	}
	batches, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*batch.ContainerBatch, error) {
		return scanBatch(row)
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan open batches", err)
	}
	return batches, nil
}

func (r *BatchRepository) Volume(ctx context.Context, tx db.DBTX, id int64) (decimal.Decimal, error) {
	var v pgtype.Numeric
	if err := tx.QueryRow(ctx, batchVolumeSQL, id).Scan(&v); err != nil {
		return decimal.Zero, infra.WrapRepoErr("failed to aggregate batch volume", err)
	}
	d, err := pgconv.DecimalFromNumeric(v)
	if err != nil {
		return decimal.Zero, infra.WrapRepoErr("failed to convert batch volume", err)
	}
	return d, nil
}

func (r *BatchRepository) Save(ctx context.Context, tx db.DBTX, b *batch.ContainerBatch) error {
	return execOne(ctx, tx, "container batch", updateBatchSQL,
		b.ID(),
		string(b.Status()),
		pgconv.TimePtrToPgtype(b.ReadyAt()),
		pgconv.TimePtrToPgtype(b.DispatchedAt()),
	)
}

func scanBatch(row pgx.Row) (*batch.ContainerBatch, error) {
	var (
		id           int64
		target       pgtype.Numeric
		status       string
		createdAt    time.Time
		readyAt      pgtype.Timestamptz
		dispatchedAt pgtype.Timestamptz
	)
	if err := row.Scan(&id, &target, &status, &createdAt, &readyAt, &dispatchedAt); err != nil {
		return nil, err
	}
	t, err := pgconv.DecimalFromNumeric(target)
	if err != nil {
		return nil, err
	}
	return batch.ReconstructContainerBatch(
		id, t, batch.Status(status), createdAt,
		pgconv.TimePtrFromPgtype(readyAt),
		pgconv.TimePtrFromPgtype(dispatchedAt),
	), nil
}
