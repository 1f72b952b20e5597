package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"consult-booking/internal/infra/readstore"
	"consult-booking/internal/infra/repository"
	sqlc "consult-booking/internal/infra/sqlc/generated"
	"consult-booking/internal/pkg/config"
	"consult-booking/internal/pkg/errs"
	"consult-booking/internal/pkg/tracing"
	"consult-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"

	maxBackoff = time.Second
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool       *pgxpool.Pool
	q          *sqlc.Queries
	maxRetries int
	base       time.Duration
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries, cfg config.DBConfig) shared.UnitOfWork {
	maxRetries := cfg.TxMaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}
	base := cfg.TxRetryBase
	if base <= 0 {
		base = 20 * time.Millisecond
	}
	return &PostgresUoW{
		pool:       pool,
		q:          q,
		maxRetries: maxRetries,
		base:       base,
	}
}

// Within runs fn in a serializable transaction. Two claims racing for the last
// seat cannot both commit; the loser sees 40001 and fn runs again from scratch.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) (err error) {
	ctx, span := tracing.Start(ctx, "uow.Within")
	defer func() { tracing.End(span, err) }()

	attempts, err := u.runInTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable}, fn)
	span.SetAttributes(attribute.Int("tx.attempts", attempts))
	return err
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) (int, error) {
	for attempt := 0; attempt <= u.maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return attempt + 1, errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{dbtx: pgxTx, q: u.q}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return attempt + 1, nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !isRetryableError(err) {
			return attempt + 1, err
		}
		if attempt == u.maxRetries {
			slog.Error("transaction failed after max retries",
				"attempts", attempt+1,
				"error", err.Error())
			return attempt + 1, errs.Mark(err, errMaxRetriesExceeded)
		}

		waitTime := calculateBackoff(attempt, u.base)

		slog.Debug("retrying serializable transaction",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return attempt + 1, ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return u.maxRetries + 1, errMaxRetriesExceeded
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	if attempt > 16 {
		attempt = 16
	}
	waitTime := time.Duration(1<<attempt) * base
	if waitTime > maxBackoff {
		waitTime = maxBackoff
	}
	jitter := cryptoRandInt63n(int64(waitTime / 2))
	return waitTime/2 + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx sqlc.DBTX
	q    *sqlc.Queries

	// Lazy-initialized repositories
	slotRepo             shared.SlotRepository
	reservationRepo      shared.ReservationRepository
	reservationTokenRepo shared.ReservationTokenRepository
	invitationRepo       shared.InvitationRepository
	notificationRepo     shared.NotificationRepository
	commandReads         shared.CommandReads
}

func (t *pgTx) DB() sqlc.DBTX {
	return t.dbtx
}

func (t *pgTx) Slots() shared.SlotRepository {
	if t.slotRepo == nil {
		t.slotRepo = repository.NewSlotRepository(t.q, t.dbtx)
	}
	return t.slotRepo
}

func (t *pgTx) Reservations() shared.ReservationRepository {
	if t.reservationRepo == nil {
		t.reservationRepo = repository.NewReservationRepository(t.q, t.dbtx)
	}
	return t.reservationRepo
}

func (t *pgTx) ReservationTokens() shared.ReservationTokenRepository {
	if t.reservationTokenRepo == nil {
		t.reservationTokenRepo = repository.NewReservationTokenRepository(t.q, t.dbtx)
	}
	return t.reservationTokenRepo
}

func (t *pgTx) Invitations() shared.InvitationRepository {
	if t.invitationRepo == nil {
		t.invitationRepo = repository.NewInvitationRepository(t.q, t.dbtx)
	}
	return t.invitationRepo
}

func (t *pgTx) Notifications() shared.NotificationRepository {
	if t.notificationRepo == nil {
		t.notificationRepo = repository.NewNotificationRepository(t.q, t.dbtx)
	}
	return t.notificationRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{q: t.q, dbtx: t.dbtx}
	}
	return t.commandReads
}

// commandReads maps read-side views onto write-side snapshots. Inside a
// transaction it reads through the same tx.
type commandReads struct {
	q    *sqlc.Queries
	dbtx sqlc.DBTX

	// Lazy-initialized readstores
	slotStore        *readstore.SlotReadStore
	reservationStore *readstore.ReservationReadStore
	tokenStore       *readstore.ReservationTokenReadStore
}

func (r *commandReads) SlotByID(ctx context.Context, id uuid.UUID) (*shared.SlotSnapshot, error) {
	if r.slotStore == nil {
		r.slotStore = readstore.NewSlotReadStore(r.q, r.dbtx)
	}

	v, err := r.slotStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &shared.SlotSnapshot{
		ID:        v.ID,
		OwnerID:   v.CounselorID,
		StartAt:   v.StartAt,
		EndAt:     v.EndAt,
		Capacity:  v.Capacity,
		Booked:    v.BookedCount,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}, nil
}

func (r *commandReads) ReservationByID(ctx context.Context, id uuid.UUID) (*shared.ReservationSnapshot, error) {
	if r.reservationStore == nil {
		r.reservationStore = readstore.NewReservationReadStore(r.q, r.dbtx)
	}

	v, err := r.reservationStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &shared.ReservationSnapshot{
		ID:          v.ID,
		SlotID:      v.SlotID,
		Email:       v.Email,
		Name:        v.Name,
		Note:        v.Note,
		Status:      v.Status,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
		CancelledAt: v.CancelledAt,
	}, nil
}

func (r *commandReads) ReservationTokenByToken(ctx context.Context, token string) (*shared.ReservationTokenSnapshot, error) {
	if r.tokenStore == nil {
		r.tokenStore = readstore.NewReservationTokenReadStore(r.q, r.dbtx)
	}
	return r.tokenStore.FindByToken(ctx, token)
}
