package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"cargo-consolidation/internal/domain/notification"
	"cargo-consolidation/internal/pkg/clock"
	"cargo-consolidation/internal/pkg/errs"
	"cargo-consolidation/internal/usecase/shared"

	"github.com/cockroachdb/errors"
)

// Outcome writes outlive the loop context so a shutdown mid-send still
// records the attempt.
const outcomeWriteTimeout = 5 * time.Second

// JobProcessor claims due outbox jobs and runs them through their handlers.
type JobProcessor interface {
	ProcessDue(ctx context.Context, limit int) (int, error)
}

type jobProcessorImpl struct {
	uow        shared.UnitOfWork
	handlers   map[string]JobHandler
	retryDelay time.Duration
	clock      clock.Clock
	logger     *slog.Logger
}

func NewJobProcessor(uow shared.UnitOfWork, retryDelay time.Duration, clk clock.Clock, logger *slog.Logger, handlers ...JobHandler) JobProcessor {
	byKind := make(map[string]JobHandler, len(handlers))
	for _, h := range handlers {
		byKind[h.Kind()] = h
	}
	return &jobProcessorImpl{
		uow:        uow,
		handlers:   byKind,
		retryDelay: retryDelay,
		clock:      clk,
		logger:     logger.With("component", "job_processor"),
	}
}

func (p *jobProcessorImpl) ProcessDue(ctx context.Context, limit int) (int, error) {
	var jobs, abandoned []*shared.NotificationJob
	err := p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := p.clock.Now()
		stale, err := tx.Notifications().AbandonStaleJobs(ctx, tx.DB(), now)
		if err != nil {
			return err
		}
		claimed, err := tx.Notifications().ClaimDueJobs(ctx, tx.DB(), now, limit)
		if err != nil {
			return err
		}
		abandoned, jobs = stale, claimed
		return nil
	})
	if err != nil {
		return 0, errs.Wrap(err, "failed to claim jobs")
	}

	for _, job := range abandoned {
		p.abandon(ctx, job)
	}
	for _, job := range jobs {
		p.run(ctx, job)
	}
	return len(jobs), nil
}

// abandon runs the exhausted hook for a job the store already failed.
func (p *jobProcessorImpl) abandon(ctx context.Context, job *shared.NotificationJob) {
	log := p.logger.With("job_id", job.ID, "kind", job.Kind, "attempt", job.Attempts)
	log.ErrorContext(ctx, "job abandoned by a stopped worker")
	if h, ok := p.handlers[job.Kind]; ok {
		p.exhausted(ctx, log, h, job, shared.ErrJobAbandoned)
	}
}

func (p *jobProcessorImpl) run(ctx context.Context, job *shared.NotificationJob) {
	log := p.logger.With("job_id", job.ID, "kind", job.Kind, "attempt", job.Attempts)

	h, ok := p.handlers[job.Kind]
	if !ok {
		log.WarnContext(ctx, "no handler registered for job kind")
		p.finish(ctx, log, func(ctx context.Context, tx shared.Tx) error {
			return tx.Notifications().FailJob(ctx, tx.DB(), job.ID, "no handler registered for kind "+job.Kind)
		})
		return
	}

	runErr := p.safeHandle(ctx, h, job)
	if runErr == nil {
		log.InfoContext(ctx, "job completed")
		p.finish(ctx, log, func(ctx context.Context, tx shared.Tx) error {
			return tx.Notifications().CompleteJob(ctx, tx.DB(), job.ID)
		})
		return
	}

	policy := notification.RetryPolicy{MaxAttempts: job.MaxAttempts, Delay: p.retryDelay}
	if errors.Is(runErr, ErrPermanent) || policy.IsFinal(job.Attempts) {
		log.ErrorContext(ctx, "job failed permanently", "error", runErr)
		p.finish(ctx, log, func(ctx context.Context, tx shared.Tx) error {
			return tx.Notifications().FailJob(ctx, tx.DB(), job.ID, runErr.Error())
		})
		p.exhausted(ctx, log, h, job, runErr)
		return
	}

	next := policy.NextRun(p.clock.Now())
	log.WarnContext(ctx, "job failed, will retry", "error", runErr, "next_run_at", next)
	p.finish(ctx, log, func(ctx context.Context, tx shared.Tx) error {
		return tx.Notifications().RescheduleJob(ctx, tx.DB(), job.ID, next, runErr.Error())
	})
}

func (p *jobProcessorImpl) safeHandle(ctx context.Context, h JobHandler, job *shared.NotificationJob) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errs.New(fmt.Sprintf("job handler panic: %v", r))
		}
	}()
	return h.Handle(ctx, job)
}

func (p *jobProcessorImpl) exhausted(ctx context.Context, log *slog.Logger, h JobHandler, job *shared.NotificationJob, cause error) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), outcomeWriteTimeout)
	defer cancel()
	if err := h.Exhausted(ctx, job, cause); err != nil {
		log.ErrorContext(ctx, "exhausted hook failed", "error", err)
	}
}

// finish records the job outcome. fn receives the detached context through
// the transaction, never the caller's.
func (p *jobProcessorImpl) finish(ctx context.Context, log *slog.Logger, fn func(ctx context.Context, tx shared.Tx) error) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), outcomeWriteTimeout)
	defer cancel()
	if err := p.uow.Within(ctx, fn); err != nil {
		log.ErrorContext(ctx, "failed to record job outcome", "error", err)
	}
}
