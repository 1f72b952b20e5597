package shared

import (
	"context"
	"time"

	"consult-booking/internal/domain/invitation"
	"consult-booking/internal/domain/reservation"
	"consult-booking/internal/domain/slot"
	sqlc "consult-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

// UnitOfWork runs write use cases. Within executes fn in one serializable
// transaction and may call fn more than once when the store reports a
// serialization conflict, so fn must not leak side effects outside tx.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Slots() SlotRepository
	Reservations() ReservationRepository
	ReservationTokens() ReservationTokenRepository
	Invitations() InvitationRepository
	Notifications() NotificationRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

// CommandReads are only reachable through Tx, so every read a command
// decides on belongs to the transaction that writes.
type CommandReads interface {
	SlotByID(ctx context.Context, id uuid.UUID) (*SlotSnapshot, error)
	ReservationByID(ctx context.Context, id uuid.UUID) (*ReservationSnapshot, error)
	ReservationTokenByToken(ctx context.Context, token string) (*ReservationTokenSnapshot, error)
}

// SlotRepository is the capacity ledger plus slot lifecycle. Claim and
// Release are the only writers of a slot's booked counter.
type SlotRepository interface {
	Claim(ctx context.Context, tx sqlc.DBTX, slotID uuid.UUID) (slot.ClaimResult, error)
	// Release reports whether a seat was given back; a slot already at zero is a no-op.
	Release(ctx context.Context, tx sqlc.DBTX, slotID uuid.UUID) (bool, error)
	Create(ctx context.Context, tx sqlc.DBTX, s *slot.Slot) error
	// CreateBatch skips slots that already exist and returns how many were inserted.
	CreateBatch(ctx context.Context, tx sqlc.DBTX, slots []*slot.Slot) (int, error)
	// Delete removes the slot only while it is owned by ownerID and has no bookings.
	Delete(ctx context.Context, tx sqlc.DBTX, slotID, ownerID uuid.UUID) (bool, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error
	// Transition moves a BOOKED reservation to target. false means the row
	// was not BOOKED (or does not exist) and nothing changed.
	Transition(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, target reservation.Status, at time.Time) (bool, error)
}

type ReservationTokenRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, reservationID uuid.UUID, token string, expiresAt time.Time) error
}

type InvitationRepository interface {
	// Replace stores inv, dropping any earlier invite for the same counselor and email.
	Replace(ctx context.Context, tx sqlc.DBTX, inv *invitation.Invitation) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}
