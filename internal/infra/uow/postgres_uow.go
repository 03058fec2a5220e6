package uow

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"time"

	"restaurant-booking/internal/infra/db"
	"restaurant-booking/internal/infra/repository"
	"restaurant-booking/internal/pkg/errs"
	"restaurant-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type retryPolicy struct {
	maxRetries int
	base       time.Duration
}

// backoff doubles per attempt and adds up to 20% jitter so that bookings
// that collided on the same table do not collide again.
func (p retryPolicy) backoff(attempt int) time.Duration {
	wait := time.Duration(1<<attempt) * p.base
	if spread := int64(wait / 5); spread > 0 {
		wait += time.Duration(rand.Int64N(spread))
	}
	return wait
}

type Option func(*PostgresUoW)

// WithRetry overrides the retry policy. Non-positive values keep the default.
func WithRetry(maxRetries int, base time.Duration) Option {
	return func(u *PostgresUoW) {
		if maxRetries > 0 {
			u.retry.maxRetries = maxRetries
		}
		if base > 0 {
			u.retry.base = base
		}
	}
}

type PostgresUoW struct {
	pool  *pgxpool.Pool
	retry retryPolicy
}

func NewPostgresUoW(pool *pgxpool.Pool, opts ...Option) shared.UnitOfWork {
	u := &PostgresUoW{
		pool:  pool,
		retry: retryPolicy{maxRetries: 3, base: 100 * time.Millisecond},
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Within runs fn at READ COMMITTED. The booking commands lock the table row
// they write against, which is what serializes competing bookings.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	var err error
	for attempt := 0; ; attempt++ {
		err = u.attempt(ctx, fn)
		if err == nil || !isRetryableError(err) {
			return err
		}
		if attempt == u.retry.maxRetries {
			break
		}

		wait := u.retry.backoff(attempt)
		slog.Warn("retrying booking transaction",
			"attempt", attempt+1,
			"wait_ms", wait.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}

	slog.Error("booking transaction gave up", "attempts", u.retry.maxRetries+1, "error", err.Error())
	return errs.Mark(errs.Mark(err, errMaxRetriesExceeded), errs.ErrStore)
}

// attempt is one begin/commit round. The rollback is explicit rather than
// deferred so retries never hold more than one connection.
func (u *PostgresUoW) attempt(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return errs.Mark(errs.Mark(err, errTransactionBegin), errs.ErrStore)
	}

	if err := fn(ctx, &pgTx{dbtx: pgxTx}); err != nil {
		rollback(ctx, pgxTx)
		return err
	}
	if err := pgxTx.Commit(ctx); err != nil {
		rollback(ctx, pgxTx)
		return errs.Mark(errs.Mark(err, errTransactionCommit), errs.ErrStore)
	}
	return nil
}

// WithinReadOnly gives analytics a single snapshot across its queries.
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	if err != nil {
		return errs.Mark(errs.Mark(err, errTransactionBegin), errs.ErrStore)
	}
	defer rollback(ctx, pgxTx)

	if err := fn(ctx, pgxTx); err != nil {
		return err
	}
	return pgxTx.Commit(ctx)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error {
	return fn(ctx, u.pool)
}

func rollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		slog.Warn("rollback failed", "error", err.Error())
	}
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == pgErrCodeSerializationFailure || pgErr.Code == pgErrCodeDeadlockDetected
}

// pgTx hands out repositories bound to one transaction.
type pgTx struct {
	dbtx db.DBTX

	tables       shared.TableRepository
	customers    shared.CustomerRepository
	reservations shared.ReservationRepository
}

func (t *pgTx) DB() db.DBTX {
	return t.dbtx
}

func (t *pgTx) Tables() shared.TableRepository {
	if t.tables == nil {
		t.tables = repository.NewTableRepository()
	}
	return t.tables
}

func (t *pgTx) Customers() shared.CustomerRepository {
	if t.customers == nil {
		t.customers = repository.NewCustomerRepository()
	}
	return t.customers
}

func (t *pgTx) Reservations() shared.ReservationRepository {
	if t.reservations == nil {
		t.reservations = repository.NewReservationRepository()
	}
	return t.reservations
}
