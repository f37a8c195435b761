package repository

import (
	"context"
	"encoding/json"
	"time"

	"cargo-consolidation/internal/domain/notification"
	"cargo-consolidation/internal/infra"
	"cargo-consolidation/internal/infra/db"
	"cargo-consolidation/internal/pkg/pgconv"
	"cargo-consolidation/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// A running job whose worker vanished is reclaimed after this long.
const staleJobAfter = 10 * time.Minute

const (
	createNotificationJobSQL = `
INSERT INTO notification_jobs (kind, topic, payload, status, max_attempts, run_at)
VALUES ($1, $2, $3, 'queued', $4, $5)`

	claimDueJobsSQL = `
UPDATE notification_jobs
SET status = 'running', attempts = attempts + 1, updated_at = $1
WHERE id IN (
    SELECT id FROM notification_jobs
    WHERE (status = 'queued' AND run_at <= $1)
       OR (status = 'running' AND updated_at < $2 AND attempts < max_attempts)
    ORDER BY run_at
    LIMIT $3
    FOR UPDATE SKIP LOCKED
)
RETURNING id, kind, topic, payload, attempts, max_attempts, run_at`

	abandonStaleJobsSQL = `
UPDATE notification_jobs
SET status = 'failed', last_error = $3, updated_at = $1
WHERE status = 'running' AND updated_at < $2 AND attempts >= max_attempts
RETURNING id, kind, topic, payload, attempts, max_attempts, run_at`

	completeJobSQL = `
UPDATE notification_jobs
SET status = 'done', last_error = NULL, updated_at = now()
WHERE id = $1`

	rescheduleJobSQL = `
UPDATE notification_jobs
SET status = 'queued', run_at = $2, last_error = $3, updated_at = now()
WHERE id = $1`

	failJobSQL = `
UPDATE notification_jobs
SET status = 'failed', last_error = $2, updated_at = now()
WHERE id = $1`

	appendNotificationLogSQL = `
INSERT INTO notification_logs (booking_id, channel, recipient, template, payload, status, error_message, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
)

type NotificationRepository struct{}

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, tx db.DBTX, kind, topic string, payload []byte, runAt time.Time, maxAttempts int) error {
	_, err := tx.Exec(ctx, createNotificationJobSQL, kind, topic, payload, maxAttempts, pgconv.TimeToPgtype(runAt))
	if err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}
	return nil
}

// ClaimDueJobs marks due jobs running and bumps their attempt counter, so the
// returned Attempts is the number of the attempt about to run.
func (r *NotificationRepository) ClaimDueJobs(ctx context.Context, tx db.DBTX, now time.Time, limit int) ([]*shared.NotificationJob, error) {
	rows, err := tx.Query(ctx, claimDueJobsSQL,
		pgconv.TimeToPgtype(now),
		pgconv.TimeToPgtype(now.Add(-staleJobAfter)),
		limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim notification jobs", err)
	}
	jobs, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByPos[shared.NotificationJob])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan notification jobs", err)
	}
	return jobs, nil
}

// AbandonStaleJobs fails running jobs whose worker vanished during their
// final attempt. Reclaiming them would exceed max_attempts.
func (r *NotificationRepository) AbandonStaleJobs(ctx context.Context, tx db.DBTX, now time.Time) ([]*shared.NotificationJob, error) {
	rows, err := tx.Query(ctx, abandonStaleJobsSQL,
		pgconv.TimeToPgtype(now),
		pgconv.TimeToPgtype(now.Add(-staleJobAfter)),
		shared.ErrJobAbandoned.Error(),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to abandon stale notification jobs", err)
	}
	jobs, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByPos[shared.NotificationJob])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan notification jobs", err)
	}
	return jobs, nil
}

func (r *NotificationRepository) CompleteJob(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	return execOne(ctx, tx, "notification job", completeJobSQL, id)
}

func (r *NotificationRepository) RescheduleJob(ctx context.Context, tx db.DBTX, id uuid.UUID, runAt time.Time, lastError string) error {
	return execOne(ctx, tx, "notification job", rescheduleJobSQL, id, pgconv.TimeToPgtype(runAt), lastError)
}

func (r *NotificationRepository) FailJob(ctx context.Context, tx db.DBTX, id uuid.UUID, lastError string) error {
	return execOne(ctx, tx, "notification job", failJobSQL, id, lastError)
}

func (r *NotificationRepository) AppendLog(ctx context.Context, tx db.DBTX, entry notification.LogEntry) error {
	payload, err := json.Marshal(entry.Payload)
	if err != nil {
		return infra.WrapRepoErr("failed to encode notification log payload", err, infra.KindDBFailure)
	}
	_, err = tx.Exec(ctx, appendNotificationLogSQL,
		pgconv.UUIDPtrToPgtype(entry.BookingID),
		entry.Channel.String(),
		entry.Recipient,
		entry.Template,
		payload,
		string(entry.Status),
		entry.ErrorMessage,
		pgconv.TimeToPgtype(entry.CreatedAt),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to append notification log", err)
	}
	return nil
}
