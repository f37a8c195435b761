package uow

import (
	"cargo-consolidation/internal/infra/db"
	"cargo-consolidation/internal/infra/repository"
	"cargo-consolidation/internal/usecase/shared"
)

// Repositories hold no state, so one set serves every transaction.
type repositories struct {
	boxes         shared.BoxRepository
	bookings      shared.BookingRepository
	batches       shared.BatchRepository
	referrals     shared.ReferralRepository
	agents        shared.AgentRepository
	tracking      shared.TrackingRepository
	templates     shared.TemplateRepository
	notifications shared.NotificationRepository
	capacity      shared.CapacityRepository
	schedules     shared.ScheduleRepository
}

func newRepositories() *repositories {
	return &repositories{
		boxes:         repository.NewBoxRepository(),
		bookings:      repository.NewBookingRepository(),
		batches:       repository.NewBatchRepository(),
		referrals:     repository.NewReferralRepository(),
		agents:        repository.NewAgentRepository(),
		tracking:      repository.NewTrackingRepository(),
		templates:     repository.NewTemplateRepository(),
		notifications: repository.NewNotificationRepository(),
		capacity:      repository.NewCapacityRepository(),
		schedules:     repository.NewScheduleRepository(),
	}
}

type pgTx struct {
	dbtx  db.DBTX
	repos *repositories
}

func (t *pgTx) DB() db.DBTX                                  { return t.dbtx }
func (t *pgTx) Boxes() shared.BoxRepository                  { return t.repos.boxes }
func (t *pgTx) Bookings() shared.BookingRepository           { return t.repos.bookings }
func (t *pgTx) Batches() shared.BatchRepository              { return t.repos.batches }
func (t *pgTx) Referrals() shared.ReferralRepository         { return t.repos.referrals }
func (t *pgTx) Agents() shared.AgentRepository               { return t.repos.agents }
func (t *pgTx) Tracking() shared.TrackingRepository          { return t.repos.tracking }
func (t *pgTx) Templates() shared.TemplateRepository         { return t.repos.templates }
func (t *pgTx) Notifications() shared.NotificationRepository { return t.repos.notifications }
func (t *pgTx) Capacity() shared.CapacityRepository          { return t.repos.capacity }
func (t *pgTx) Schedules() shared.ScheduleRepository         { return t.repos.schedules }

// Reads run inside the transaction so they see its uncommitted writes.
func (t *pgTx) Reads() shared.CommandReads { return &commandReads{dbtx: t.dbtx} }
