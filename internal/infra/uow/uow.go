package uow

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"time"

	"cargo-consolidation/internal/infra/db"
	"cargo-consolidation/internal/pkg/errs"
	"cargo-consolidation/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	errTxBegin         = errs.New("begin transaction")
	errTxCommit        = errs.New("commit transaction")
	errRetriesExceeded = errs.New("transaction retries exhausted")
)

// RetryPolicy bounds how often a write transaction is replayed after a
// serialization failure or deadlock. Booking creation and batch dispatch
// both lock the open batch row, so they are the usual contenders.
type RetryPolicy struct {
	MaxRetries int
	BaseDelay  time.Duration
}

var DefaultRetryPolicy = RetryPolicy{MaxRetries: 3, BaseDelay: 100 * time.Millisecond}

// Backoff doubles per attempt and adds up to 20% jitter.
func (p RetryPolicy) Backoff(attempt int) time.Duration {
	d := p.BaseDelay << attempt
	if jitter := int64(d / 5); jitter > 0 {
		d += time.Duration(rand.Int64N(jitter))
	}
	return d
}

type PostgresUoW struct {
	pool   *pgxpool.Pool
	repos  *repositories
	policy RetryPolicy
	logger *slog.Logger
}

func NewPostgresUoW(pool *pgxpool.Pool, logger *slog.Logger) shared.UnitOfWork {
	return &PostgresUoW{
		pool:   pool,
		repos:  newRepositories(),
		policy: DefaultRetryPolicy,
		logger: logger.With("component", "uow"),
	}
}

func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	var err error
	for attempt := 0; ; attempt++ {
		err = u.attempt(ctx, fn)
		if err == nil || !IsRetryable(err) {
			return err
		}
		if attempt == u.policy.MaxRetries {
			break
		}

		wait := u.policy.Backoff(attempt)
		u.logger.WarnContext(ctx, "retrying transaction",
			"attempt", attempt+1,
			"wait_ms", wait.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}

	u.logger.ErrorContext(ctx, "transaction retries exhausted", "attempts", u.policy.MaxRetries+1, "error", err.Error())
	return errs.Mark(err, errRetriesExceeded)
}

// attempt keeps its own deferred rollback so retries never stack defers.
func (u *PostgresUoW) attempt(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	tx, err := u.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return errs.Mark(err, errTxBegin)
	}
	defer u.rollback(ctx, tx)

	if err := fn(ctx, &pgTx{dbtx: tx, repos: u.repos}); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return errs.Mark(err, errTxCommit)
	}
	return nil
}

func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	tx, err := u.pool.BeginTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly})
	if err != nil {
		return errs.Mark(err, errTxBegin)
	}
	defer u.rollback(ctx, tx)

	if err := fn(ctx, tx); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, u.pool)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{dbtx: u.pool}
}

func (u *PostgresUoW) rollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errs.Is(err, pgx.ErrTxClosed) {
		u.logger.WarnContext(ctx, "rollback failed", "error", err.Error())
	}
}

// IsRetryable reports serialization failures (40001) and deadlocks (40P01).
func IsRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if !errs.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == "40001" || pgErr.Code == "40P01"
}
