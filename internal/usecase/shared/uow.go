package shared

import (
	"context"
	"time"

	"cargo-consolidation/internal/domain/agent"
	"cargo-consolidation/internal/domain/batch"
	"cargo-consolidation/internal/domain/booking"
	"cargo-consolidation/internal/domain/box"
	"cargo-consolidation/internal/domain/capacity"
	"cargo-consolidation/internal/domain/notification"
	"cargo-consolidation/internal/domain/referral"
	"cargo-consolidation/internal/domain/schedule"
	"cargo-consolidation/internal/domain/tracking"
	"cargo-consolidation/internal/infra/db"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Boxes() BoxRepository
	Bookings() BookingRepository
	Batches() BatchRepository
	Referrals() ReferralRepository
	Agents() AgentRepository
	Tracking() TrackingRepository
	Templates() TemplateRepository
	Notifications() NotificationRepository
	Capacity() CapacityRepository
	Schedules() ScheduleRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	BoxTypeByID(ctx context.Context, id int64) (*box.BoxType, error)
	ReferenceCodeExists(ctx context.Context, code string) (bool, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
	TemplateByName(ctx context.Context, name string) (*notification.Template, error)
}

type BoxRepository interface {
	Create(ctx context.Context, tx db.DBTX, bt *box.BoxType) (int64, error)
}

type BookingRepository interface {
	Create(ctx context.Context, tx db.DBTX, b *booking.Booking, batchID int64) error
	MarkConfirmed(ctx context.Context, tx db.DBTX, id uuid.UUID) error
	MarkNotificationFailed(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

type BatchRepository interface {
	GetOrCreateOpen(ctx context.Context, tx db.DBTX, target decimal.Decimal, now time.Time) (*batch.ContainerBatch, error)
	FindByIDForUpdate(ctx context.Context, tx db.DBTX, id int64) (*batch.ContainerBatch, error)
	ListOpenForUpdate(ctx context.Context, tx db.DBTX) ([]*batch.ContainerBatch, error)
	Volume(ctx context.Context, tx db.DBTX, id int64) (decimal.Decimal, error)
	Save(ctx context.Context, tx db.DBTX, b *batch.ContainerBatch) error
}

type ReferralRepository interface {
	Create(ctx context.Context, tx db.DBTX, r *referral.Referral) error
	FindByCodeForUpdate(ctx context.Context, tx db.DBTX, code string) (*referral.Referral, error)
	FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*referral.Referral, error)
	Save(ctx context.Context, tx db.DBTX, r *referral.Referral) error
}

type AgentRepository interface {
	Create(ctx context.Context, tx db.DBTX, a *agent.Application) error
	FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*agent.Application, error)
	Save(ctx context.Context, tx db.DBTX, a *agent.Application) error
}

type TrackingRepository interface {
	Create(ctx context.Context, tx db.DBTX, r *tracking.Record) (int64, error)
}

type TemplateRepository interface {
	Create(ctx context.Context, tx db.DBTX, t *notification.Template) (int64, error)
	FindByIDForUpdate(ctx context.Context, tx db.DBTX, id int64) (*notification.Template, error)
	Update(ctx context.Context, tx db.DBTX, t *notification.Template) error
	Delete(ctx context.Context, tx db.DBTX, id int64) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx db.DBTX, kind, topic string, payload []byte, runAt time.Time, maxAttempts int) error
	ClaimDueJobs(ctx context.Context, tx db.DBTX, now time.Time, limit int) ([]*NotificationJob, error)
	AbandonStaleJobs(ctx context.Context, tx db.DBTX, now time.Time) ([]*NotificationJob, error)
	CompleteJob(ctx context.Context, tx db.DBTX, id uuid.UUID) error
	RescheduleJob(ctx context.Context, tx db.DBTX, id uuid.UUID, runAt time.Time, lastError string) error
	FailJob(ctx context.Context, tx db.DBTX, id uuid.UUID, lastError string) error
	AppendLog(ctx context.Context, tx db.DBTX, entry notification.LogEntry) error
}

type CapacityRepository interface {
	TotalBookedVolume(ctx context.Context, tx db.DBTX) (decimal.Decimal, error)
	RecordSnapshot(ctx context.Context, tx db.DBTX, s capacity.Snapshot) error
}

type ScheduleRepository interface {
	Ensure(ctx context.Context, tx db.DBTX, t *schedule.Task) error
	ClaimDue(ctx context.Context, tx db.DBTX, now time.Time) ([]*schedule.Task, error)
	FindForUpdate(ctx context.Context, tx db.DBTX, name string) (*schedule.Task, error)
	Save(ctx context.Context, tx db.DBTX, t *schedule.Task) error
}
