package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"cargo-consolidation/internal/domain/batch"
	"cargo-consolidation/internal/domain/capacity"
	"cargo-consolidation/internal/domain/notification"
	"cargo-consolidation/internal/infra"
	"cargo-consolidation/internal/pkg/clock"
	"cargo-consolidation/internal/pkg/errs"
	"cargo-consolidation/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

// AdminContacts receive operational alerts. An empty WhatsApp disables that channel.
type AdminContacts struct {
	Email    string
	WhatsApp string
}

type MilestoneResult struct {
	Percent   int
	Threshold decimal.Decimal
	Notified  bool
	Error     string
}

type MilestoneReport struct {
	Progress capacity.Progress
	Reached  []MilestoneResult
}

type DispatchReport struct {
	Ready     bool
	Progress  capacity.Progress
	Remaining decimal.Decimal
	BatchID   *int64
	Notified  []notification.Channel
	Message   string
}

type BatchReadiness struct {
	BatchID       int64
	CurrentVolume decimal.Decimal
	TargetVolume  decimal.Decimal
	Ready         bool
	Line          string
}

type ContainerCommands interface {
	CheckMilestones(ctx context.Context) (*MilestoneReport, error)
	CheckDispatch(ctx context.Context) (*DispatchReport, error)
	MarkReadyBatches(ctx context.Context) ([]BatchReadiness, error)
	DispatchBatch(ctx context.Context, id int64) error
}

type containerUseCaseImpl struct {
	uow        shared.UnitOfWork
	dispatcher NotificationDispatcher
	admin      AdminContacts
	clock      clock.Clock
	logger     *slog.Logger
}

func NewContainerUseCase(
	uow shared.UnitOfWork,
	dispatcher NotificationDispatcher,
	admin AdminContacts,
	clk clock.Clock,
	logger *slog.Logger,
) ContainerCommands {
	return &containerUseCaseImpl{
		uow:        uow,
		dispatcher: dispatcher,
		admin:      admin,
		clock:      clk,
		logger:     logger.With("component", "container"),
	}
}

// CheckMilestones alerts the admin for every milestone band the booked volume
// sits in and records a capacity snapshot. Alert failures are reported, not returned.
func (uc *containerUseCaseImpl) CheckMilestones(ctx context.Context) (*MilestoneReport, error) {
	var progress capacity.Progress
	var total decimal.Decimal
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		t, err := tx.Capacity().TotalBookedVolume(ctx, tx.DB())
		if err != nil {
			return err
		}
		total = t
		progress = capacity.NewProgress(t, capacity.Capacity)
		return tx.Capacity().RecordSnapshot(ctx, tx.DB(), capacity.NewSnapshot(progress, uc.clock.Now()))
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	report := &MilestoneReport{Progress: progress}
	for _, m := range capacity.ReachedMilestones(total, capacity.Capacity) {
		vars := progressVars(progress)
		vars["milestone"] = strconv.Itoa(m.Percent)

		res := MilestoneResult{Percent: m.Percent, Threshold: m.Threshold}
		err := uc.dispatcher.Dispatch(ctx, DispatchRequest{
			Channel:   notification.ChannelEmail,
			Recipient: uc.admin.Email,
			Template:  notification.TemplateMilestoneReached,
			Vars:      vars,
		})
		if err != nil {
			res.Error = err.Error()
		} else {
			res.Notified = true
		}
		report.Reached = append(report.Reached, res)
	}
	uc.logger.InfoContext(ctx, "milestone check finished",
		"total_volume", progress.TotalVolume.StringFixed(2), "reached", len(report.Reached))
	return report, nil
}

// CheckDispatch marks the open batch ready and alerts the admin once the
// booked volume reaches container capacity.
func (uc *containerUseCaseImpl) CheckDispatch(ctx context.Context) (*DispatchReport, error) {
	var total decimal.Decimal
	var readyBatch *int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		readyBatch = nil
		t, err := tx.Capacity().TotalBookedVolume(ctx, tx.DB())
		if err != nil {
			return err
		}
		total = t
		if !capacity.IsDispatchReady(total, capacity.Capacity) {
			return nil
		}
		open, err := tx.Batches().ListOpenForUpdate(ctx, tx.DB())
		if err != nil {
			return err
		}
		for _, b := range open {
			vol, err := tx.Batches().Volume(ctx, tx.DB(), b.ID())
			if err != nil {
				return err
			}
			ready, err := b.MarkReady(vol, uc.clock.Now())
			if err != nil {
				return err
			}
			if !ready {
				continue
			}
			if err := tx.Batches().Save(ctx, tx.DB(), b); err != nil {
				return err
			}
			id := b.ID()
			readyBatch = &id
		}
		return nil
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	progress := capacity.NewProgress(total, capacity.Capacity)
	report := &DispatchReport{
		Progress:  progress,
		Remaining: capacity.Remaining(total, capacity.Capacity),
		BatchID:   readyBatch,
	}
	if !capacity.IsDispatchReady(total, capacity.Capacity) {
		report.Message = fmt.Sprintf("%sm³ booked (%s%%). %sm³ remaining.",
			progress.TotalVolume.StringFixed(2), progress.Percent.StringFixed(2), report.Remaining.StringFixed(2))
		return report, nil
	}

	report.Ready = true
	vars := progressVars(progress)
	if readyBatch != nil {
		vars["batch_id"] = strconv.FormatInt(*readyBatch, 10)
	}
	if err := uc.dispatcher.Dispatch(ctx, DispatchRequest{
		Channel:   notification.ChannelEmail,
		Recipient: uc.admin.Email,
		Template:  notification.TemplateDispatchReady,
		Vars:      vars,
	}); err == nil {
		report.Notified = append(report.Notified, notification.ChannelEmail)
	}
	if uc.admin.WhatsApp != "" {
		if err := uc.dispatcher.Dispatch(ctx, DispatchRequest{
			Channel:   notification.ChannelWhatsApp,
			Recipient: uc.admin.WhatsApp,
			Template:  notification.TemplateDispatchReadyWhatsApp,
			Vars:      vars,
		}); err == nil {
			report.Notified = append(report.Notified, notification.ChannelWhatsApp)
		}
	}
	report.Message = fmt.Sprintf("Capacity reached: %sm³ ≥ %sm³. Ready to dispatch.",
		progress.TotalVolume.StringFixed(2), progress.GoalVolume.StringFixed(2))
	uc.logger.InfoContext(ctx, "container ready to dispatch",
		"total_volume", progress.TotalVolume.StringFixed(2), "batch_id", readyBatch)
	return report, nil
}

func (uc *containerUseCaseImpl) MarkReadyBatches(ctx context.Context) ([]BatchReadiness, error) {
	var out []BatchReadiness
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		out = nil
		open, err := tx.Batches().ListOpenForUpdate(ctx, tx.DB())
		if err != nil {
			return err
		}
		for _, b := range open {
			vol, err := tx.Batches().Volume(ctx, tx.DB(), b.ID())
			if err != nil {
				return err
			}
			ready, err := b.MarkReady(vol, uc.clock.Now())
			if err != nil {
				return err
			}
			if ready {
				if err := tx.Batches().Save(ctx, tx.DB(), b); err != nil {
					return err
				}
			}
			out = append(out, BatchReadiness{
				BatchID:       b.ID(),
				CurrentVolume: vol,
				TargetVolume:  b.TargetVolume(),
				Ready:         ready,
				Line:          batch.ReadinessLine(b.ID(), vol, b.TargetVolume(), ready),
			})
		}
		return nil
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return out, nil
}

func (uc *containerUseCaseImpl) DispatchBatch(ctx context.Context, id int64) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Batches().FindByIDForUpdate(ctx, tx.DB(), id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrBatchNotFound)
			}
			return err
		}
		if err := b.Dispatch(uc.clock.Now()); err != nil {
			return errs.Mark(err, ErrInvalidTransition)
		}
		if err := tx.Batches().Save(ctx, tx.DB(), b); err != nil {
			return err
		}
		uc.logger.InfoContext(ctx, "batch dispatched", "batch_id", id)
		return nil
	})
}

func progressVars(p capacity.Progress) map[string]string {
	return map[string]string{
		"total_volume": p.TotalVolume.StringFixed(2),
		"goal_volume":  p.GoalVolume.StringFixed(2),
		"percent":      p.Percent.StringFixed(2),
	}
}
