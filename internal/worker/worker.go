// Package worker runs the in-process background loops: the notification
// outbox poller and the periodic task scheduler.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"cargo-consolidation/internal/pkg/tracing"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// Loop runs fn on every tick until the context ends.
type Loop struct {
	Name     string
	Interval time.Duration
	Fn       func(ctx context.Context) error
}

type Runner struct {
	loops  []Loop
	logger *slog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewRunner(logger *slog.Logger, loops ...Loop) *Runner {
	return &Runner{loops: loops, logger: logger.With("component", "worker")}
}

// Start launches every loop in its own goroutine and returns immediately.
func (r *Runner) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel != nil {
		return
	}
	ctx, r.cancel = context.WithCancel(context.WithoutCancel(ctx))
	for _, l := range r.loops {
		r.wg.Add(1)
		go func(l Loop) {
			defer r.wg.Done()
			r.runLoop(ctx, l)
		}(l)
	}
	r.logger.Info("background loops started", "loops", len(r.loops))
}

// Stop cancels the loops and waits for in-flight ticks, bounded by ctx.
func (r *Runner) Stop(ctx context.Context) error {
	r.mu.Lock()
	cancel := r.cancel
	r.cancel = nil
	r.mu.Unlock()
	if cancel == nil {
		return nil
	}
	cancel()

	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		r.logger.Info("background loops stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *Runner) runLoop(ctx context.Context, l Loop) {
	interval := l.Interval
	if interval <= 0 {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.logger.Debug("loop stopped", "loop", l.Name)
			return
		case <-ticker.C:
			r.tick(ctx, l)
		}
	}
}

func (r *Runner) tick(ctx context.Context, l Loop) {
	ctx, span := tracing.Tracer("worker").Start(ctx, "worker."+l.Name)
	span.SetAttributes(attribute.String("worker.loop", l.Name))
	defer span.End()

	defer func() {
		if rec := recover(); rec != nil {
			err := fmt.Errorf("panic: %v", rec)
			span.RecordError(err)
			span.SetStatus(codes.Error, "panic")
			r.logger.ErrorContext(ctx, "loop tick panicked", "loop", l.Name, "panic", rec)
		}
	}()

	if err := l.Fn(ctx); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		r.logger.WarnContext(ctx, "loop tick failed", "loop", l.Name, "error", err)
	}
}
