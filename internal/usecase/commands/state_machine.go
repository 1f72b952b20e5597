package commands

import (
	"context"
	"time"

	"consult-booking/internal/domain/reservation"
	"consult-booking/internal/domain/slot"
	"consult-booking/internal/infra"
	"consult-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// BookOutcome is the tagged result of a booking attempt. Everything except
// Booked is an expected rejection and must abort the surrounding transaction
// so a claimed seat is given back.
type BookOutcome int

const (
	BookUnknown BookOutcome = iota
	Booked
	BookSlotNotFound
	BookSlotFull
	BookDuplicateActive
)

func (o BookOutcome) String() string {
	switch o {
	case Booked:
		return "booked"
	case BookSlotNotFound:
		return "slot_not_found"
	case BookSlotFull:
		return "slot_full"
	case BookDuplicateActive:
		return "duplicate_active_reservation"
	default:
		return "unknown"
	}
}

// Err maps a rejection to its use-case error. Booked maps to nil.
func (o BookOutcome) Err() error {
	switch o {
	case Booked:
		return nil
	case BookSlotNotFound:
		return shared.ErrSlotNotFound
	case BookSlotFull:
		return ErrSlotFull
	case BookDuplicateActive:
		return ErrDuplicateActiveReservation
	default:
		return ErrBookingFailed
	}
}

// TransitionResult reports whether a transition changed anything and the
// reservation as it stands afterwards. Updated=false on an existing
// reservation is the idempotent no-op, not a failure.
type TransitionResult struct {
	Updated     bool
	Reservation shared.ReservationSnapshot
}

// StateMachine owns the reservation lifecycle inside a caller's transaction.
type StateMachine struct{}

func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// Book claims a seat and inserts res in tx.
func (m *StateMachine) Book(ctx context.Context, tx shared.Tx, res *reservation.Reservation) (BookOutcome, error) {
	claim, err := tx.Slots().Claim(ctx, tx.DB(), res.SlotID())
	if err != nil {
		return BookUnknown, err
	}
	switch claim {
	case slot.Claimed:
	case slot.ClaimSlotNotFound:
		return BookSlotNotFound, nil
	case slot.ClaimSlotFull:
		return BookSlotFull, nil
	default:
		return BookUnknown, ErrBookingFailed
	}

	if err := tx.Reservations().Create(ctx, tx.DB(), res); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return BookDuplicateActive, nil
		}
		return BookUnknown, err
	}
	return Booked, nil
}

// Transition moves reservation id to target with one conditional update and
// gives the seat back exactly once when the move was a cancellation.
func (m *StateMachine) Transition(ctx context.Context, tx shared.Tx, id uuid.UUID, target reservation.Status, at time.Time) (*TransitionResult, error) {
	if !target.IsTerminal() {
		return nil, ErrInvalidTarget
	}

	updated, err := tx.Reservations().Transition(ctx, tx.DB(), id, target, at)
	if err != nil {
		return nil, err
	}

	snap, err := tx.Reads().ReservationByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, shared.ErrReservationNotFound
		}
		return nil, err
	}

	if updated && target == reservation.StatusCancelled {
		if _, err := tx.Slots().Release(ctx, tx.DB(), snap.SlotID); err != nil {
			return nil, err
		}
	}

	return &TransitionResult{Updated: updated, Reservation: *snap}, nil
}
